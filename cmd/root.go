// Package cmd is for command line interactions with the primerlab
// specificity engine.
package cmd

import (
	"log"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/engkinandatama/primerlab/config"
	"github.com/engkinandatama/primerlab/internal/cache"
)

var (
	// stderr is for logging to Stderr (without an annoying timestamp)
	stderr = log.New(os.Stderr, "", 0)

	verbose bool
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use: "primerlab",
	Short: `Check PCR primer pairs for cross-species specificity.
Primers are scanned against a target template and a panel of off-target
references; binding sites on both strands feed a primer-by-species matrix
that is scored and graded`,
	Version: "0.1.0",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logrus.SetOutput(os.Stderr)
		logrus.SetLevel(logrus.WarnLevel)
		if verbose {
			logrus.SetLevel(logrus.InfoLevel)
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		stderr.Fatalf("%v", err)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log progress and skipped inputs")
}

// openCache builds a cache handle from settings, or nil when caching is off.
// Cache setup failures degrade to an uncached run.
func openCache(c *config.Config, disabled bool) *cache.Store {
	if disabled || c.Cache.Disabled {
		return nil
	}
	store, err := cache.New(c.Cache.Path, c.Cache.TTLDays)
	if err != nil {
		logrus.WithError(err).Warn("alignment cache unavailable, continuing without it")
		return nil
	}
	return store
}
