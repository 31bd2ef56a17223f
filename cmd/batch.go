package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/engkinandatama/primerlab/config"
	"github.com/engkinandatama/primerlab/internal/batch"
	"github.com/engkinandatama/primerlab/internal/seqio"
	"github.com/engkinandatama/primerlab/internal/specificity"
)

var (
	batchDir           string
	batchPattern       string
	batchTargetPath    string
	batchTargetName    string
	batchOfftargetPath string
	batchCSVPath       string
	batchNoCache       bool
)

// batchCmd checks many primer files concurrently against one target.
var batchCmd = &cobra.Command{
	Use:   "batch [primer files]",
	Short: "Run specificity checks over many primer files in parallel",
	Long: `Run one specificity check per primer file on a worker pool and aggregate
pass/fail statistics. Files that fail to load or check are counted and
skipped; the rest of the batch continues.`,
	Example: "  primerlab batch --dir ./primers -t target.fa -o panel.fa --csv out.csv",
	Run: func(cmd *cobra.Command, args []string) {
		c := config.New()

		var (
			in  *batch.Input
			err error
		)
		if batchDir != "" {
			if in, err = batch.LoadPrimersFromDirectory(batchDir, batchPattern); err != nil {
				stderr.Fatalf("%v", err)
			}
		} else if len(args) > 0 {
			in = batch.LoadPrimerFiles(args)
		} else {
			cmd.Help()
			stderr.Fatal("no primer files: pass paths or --dir")
		}

		target, err := seqio.LoadTemplate(batchTargetPath, batchTargetName)
		if err != nil {
			stderr.Fatalf("load target: %v", err)
		}
		var offtargets []seqio.Template
		if batchOfftargetPath != "" {
			if offtargets, err = seqio.LoadTemplates(batchOfftargetPath); err != nil {
				stderr.Fatalf("load off-targets: %v", err)
			}
		}

		runner := &batch.Runner{
			Analyzer: specificity.NewAnalyzer(specificity.Options{
				MinMatchPercent: c.Binding.MinMatchPercent,
				MaxMismatches:   c.Binding.MaxMismatches,
			}, openCache(c, batchNoCache)),
			Config:  specificity.CheckConfig{OfftargetThreshold: c.Specificity.OfftargetThreshold},
			Workers: c.Batch.Workers,
			Timeout: time.Duration(c.Batch.TimeoutSeconds) * time.Second,
			Progress: func(processed, total int) {
				fmt.Printf("\rchecked %d/%d primer files", processed, total)
			},
		}

		result := runner.Run(context.Background(), in, target, offtargets)
		fmt.Println()
		fmt.Printf("Processed: %d  Passed: %d  Failed: %d\n",
			result.Processed, result.Passed, result.Failed)
		fmt.Printf("Scores: avg %.1f, min %.1f, max %.1f  Pass rate: %.1f%%\n",
			result.Summary.AvgScore, result.Summary.MinScore,
			result.Summary.MaxScore, result.Summary.PassRate)

		if batchCSVPath != "" {
			if err := batch.WriteBatchCSV(result, batchCSVPath); err != nil {
				stderr.Fatalf("write csv: %v", err)
			}
			fmt.Printf("Wrote %s\n", batchCSVPath)
		}
	},
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().StringVarP(&batchDir, "dir", "d", "", "directory of JSON primer files")
	batchCmd.Flags().StringVar(&batchPattern, "pattern", "*.json", "glob pattern for primer files in --dir")
	batchCmd.Flags().StringVarP(&batchTargetPath, "target", "t", "", "path to the target template FASTA file")
	batchCmd.Flags().StringVarP(&batchTargetName, "target-name", "n", "", "override the target species name from the FASTA header")
	batchCmd.Flags().StringVarP(&batchOfftargetPath, "offtargets", "o", "", "path to a multi-FASTA file of off-target templates")
	batchCmd.Flags().IntP("workers", "w", 4, "worker pool size")
	batchCmd.Flags().Int("timeout", 120, "per-file timeout in seconds; 0 disables it")
	batchCmd.Flags().StringVar(&batchCSVPath, "csv", "", "write a per-file CSV summary to this path")
	batchCmd.Flags().BoolVar(&batchNoCache, "no-cache", false, "skip the alignment cache")

	batchCmd.MarkFlagRequired("target")

	viper.BindPFlag("batch.workers", batchCmd.Flags().Lookup("workers"))
	viper.BindPFlag("batch.timeout", batchCmd.Flags().Lookup("timeout"))
}
