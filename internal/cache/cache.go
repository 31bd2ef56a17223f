// Package cache persists alignment results in a single SQLite file so
// repeated primer/template combinations skip the window scan. Entries are
// content-addressed and expire after a configurable TTL.
//
// Every public operation opens and closes its own connection; handles are
// never shared across goroutines, SQLite's file locking arbitrates
// concurrent access.
package cache

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	_ "modernc.org/sqlite"
)

const schema = `CREATE TABLE IF NOT EXISTS alignment_cache (
	cache_key    TEXT PRIMARY KEY,
	primer_name  TEXT,
	species_name TEXT,
	result_json  TEXT NOT NULL,
	created_at   INTEGER NOT NULL
)`

// Store is a handle on one cache database. Construct it explicitly and pass
// it where it is needed; there is no package-level instance.
type Store struct {
	path string
	ttl  time.Duration
	log  *logrus.Entry
}

// Stats summarizes cache occupancy.
type Stats struct {
	TotalEntries   int    `json:"totalEntries"`
	ValidEntries   int    `json:"validEntries"`
	ExpiredEntries int    `json:"expiredEntries"`
	Path           string `json:"path"`
}

// DefaultPath returns the per-user cache database location.
func DefaultPath() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		dir = os.TempDir()
	}
	return filepath.Join(dir, "primerlab", "alignments.db")
}

// New creates the database file and schema if missing and returns a store
// whose entries live for ttlDays.
func New(path string, ttlDays int) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create cache dir: %w", err)
	}
	s := &Store{
		path: path,
		ttl:  time.Duration(ttlDays) * 24 * time.Hour,
		log:  logrus.WithField("component", "cache"),
	}
	db, err := s.open()
	if err != nil {
		return nil, err
	}
	defer db.Close()
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("init cache schema: %w", err)
	}
	return s, nil
}

func (s *Store) open() (*sql.DB, error) {
	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return nil, fmt.Errorf("open cache db: %w", err)
	}
	return db, nil
}

// Key derives the content hash for a primer/template combination: the first
// 32 hex characters of SHA-256 over "<PRIMER>:<TEMPLATE>", both uppercased.
func Key(primerSeq, templateSeq string) string {
	sum := sha256.Sum256([]byte(strings.ToUpper(primerSeq) + ":" + strings.ToUpper(templateSeq)))
	return hex.EncodeToString(sum[:])[:32]
}

// Get returns the stored result for the combination, or ok=false on a miss.
// An entry older than the TTL is deleted and reported as a miss. Any cache
// failure is logged and reported as a miss; it never reaches the caller.
func (s *Store) Get(primerSeq, templateSeq string) ([]byte, bool) {
	db, err := s.open()
	if err != nil {
		s.log.WithError(err).Warn("cache read failed")
		return nil, false
	}
	defer db.Close()

	key := Key(primerSeq, templateSeq)
	var (
		resultJSON string
		createdAt  int64
	)
	err = db.QueryRow(
		`SELECT result_json, created_at FROM alignment_cache WHERE cache_key = ?`, key,
	).Scan(&resultJSON, &createdAt)
	if err == sql.ErrNoRows {
		return nil, false
	}
	if err != nil {
		s.log.WithError(err).Warn("cache read failed")
		return nil, false
	}

	if time.Since(time.Unix(createdAt, 0)) > s.ttl {
		if _, err := db.Exec(`DELETE FROM alignment_cache WHERE cache_key = ?`, key); err != nil {
			s.log.WithError(err).Warn("evicting expired cache entry failed")
		}
		return nil, false
	}
	return []byte(resultJSON), true
}

// Set upserts the result for the combination with a fresh timestamp.
// Failures are logged and dropped.
func (s *Store) Set(primerSeq, templateSeq, primerName, speciesName string, result []byte) {
	db, err := s.open()
	if err != nil {
		s.log.WithError(err).Warn("cache write failed")
		return
	}
	defer db.Close()

	_, err = db.Exec(
		`INSERT OR REPLACE INTO alignment_cache
		 (cache_key, primer_name, species_name, result_json, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		Key(primerSeq, templateSeq), primerName, speciesName, string(result), time.Now().Unix(),
	)
	if err != nil {
		s.log.WithError(err).Warn("cache write failed")
	}
}

// CleanupExpired bulk-deletes all entries older than the TTL and returns
// how many were removed.
func (s *Store) CleanupExpired() (int, error) {
	db, err := s.open()
	if err != nil {
		return 0, err
	}
	defer db.Close()

	cutoff := time.Now().Add(-s.ttl).Unix()
	res, err := db.Exec(`DELETE FROM alignment_cache WHERE created_at <= ?`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("cleanup cache: %w", err)
	}
	n, _ := res.RowsAffected()
	return int(n), nil
}

// ClearAll wipes every entry.
func (s *Store) ClearAll() error {
	db, err := s.open()
	if err != nil {
		return err
	}
	defer db.Close()
	if _, err := db.Exec(`DELETE FROM alignment_cache`); err != nil {
		return fmt.Errorf("clear cache: %w", err)
	}
	return nil
}

// Stats counts total, still-valid, and expired entries.
func (s *Store) Stats() (Stats, error) {
	db, err := s.open()
	if err != nil {
		return Stats{}, err
	}
	defer db.Close()

	st := Stats{Path: s.path}
	cutoff := time.Now().Add(-s.ttl).Unix()
	if err := db.QueryRow(`SELECT COUNT(*) FROM alignment_cache`).Scan(&st.TotalEntries); err != nil {
		return Stats{}, fmt.Errorf("cache stats: %w", err)
	}
	if err := db.QueryRow(
		`SELECT COUNT(*) FROM alignment_cache WHERE created_at > ?`, cutoff,
	).Scan(&st.ValidEntries); err != nil {
		return Stats{}, fmt.Errorf("cache stats: %w", err)
	}
	st.ExpiredEntries = st.TotalEntries - st.ValidEntries
	return st, nil
}
