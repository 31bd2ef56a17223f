package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/engkinandatama/primerlab/config"
	"github.com/engkinandatama/primerlab/internal/cache"
)

// cacheCmd groups alignment-cache maintenance commands.
var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Inspect and maintain the alignment cache",
}

var cacheStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show cache occupancy",
	Run: func(cmd *cobra.Command, args []string) {
		st, err := mustCache().Stats()
		if err != nil {
			stderr.Fatalf("%v", err)
		}
		fmt.Printf("Cache: %s\n", st.Path)
		fmt.Printf("Entries: %d total, %d valid, %d expired\n",
			st.TotalEntries, st.ValidEntries, st.ExpiredEntries)
	},
}

var cacheCleanupCmd = &cobra.Command{
	Use:   "cleanup",
	Short: "Delete expired cache entries",
	Run: func(cmd *cobra.Command, args []string) {
		n, err := mustCache().CleanupExpired()
		if err != nil {
			stderr.Fatalf("%v", err)
		}
		fmt.Printf("Removed %d expired entries\n", n)
	},
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete every cache entry",
	Run: func(cmd *cobra.Command, args []string) {
		if err := mustCache().ClearAll(); err != nil {
			stderr.Fatalf("%v", err)
		}
		fmt.Println("Cache cleared")
	},
}

func mustCache() *cache.Store {
	c := config.New()
	store, err := cache.New(c.Cache.Path, c.Cache.TTLDays)
	if err != nil {
		stderr.Fatalf("open cache: %v", err)
	}
	return store
}

func init() {
	rootCmd.AddCommand(cacheCmd)
	cacheCmd.AddCommand(cacheStatsCmd, cacheCleanupCmd, cacheClearCmd)
}
