package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/engkinandatama/primerlab/internal/align"
)

var (
	alignMatch    int
	alignMismatch int
	alignGap      int
)

// alignCmd exposes the Smith-Waterman primitive for inspecting ambiguous
// near-threshold candidates by hand.
var alignCmd = &cobra.Command{
	Use:     "align [seq1] [seq2]",
	Short:   "Locally align two sequences (Smith-Waterman)",
	Args:    cobra.ExactArgs(2),
	Example: "  primerlab align ATCGATCG ATCGTTCG",
	Run: func(cmd *cobra.Command, args []string) {
		seq1 := strings.ToUpper(args[0])
		seq2 := strings.ToUpper(args[1])
		score, a1, a2 := align.LocalAlign(seq1, seq2, alignMatch, alignMismatch, alignGap)
		fmt.Printf("Score: %d\n", score)
		fmt.Println(a1)
		fmt.Println(a2)
	},
}

func init() {
	rootCmd.AddCommand(alignCmd)

	alignCmd.Flags().IntVar(&alignMatch, "match", 2, "score for a matching position")
	alignCmd.Flags().IntVar(&alignMismatch, "mismatch", -1, "penalty for a mismatching position")
	alignCmd.Flags().IntVar(&alignGap, "gap", -2, "penalty for a gap position")
}
