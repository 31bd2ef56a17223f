package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/engkinandatama/primerlab/config"
	"github.com/engkinandatama/primerlab/internal/seqio"
	"github.com/engkinandatama/primerlab/internal/specificity"
)

var (
	checkTargetPath    string
	checkTargetName    string
	checkOfftargetPath string
	checkPrimerPath    string
	checkShowMatrix    bool
	checkJSONOut       bool
	checkNoCache       bool
)

// checkCmd runs one specificity check: one primer set against one target
// and a panel of off-target templates.
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check a primer set's specificity against off-target species",
	Long: `Check every primer in a JSON primer file against a target template and a
multi-FASTA panel of off-target references. Each primer's forward and reverse
sequence is scanned on both strands of every template; binding above the
off-target threshold is flagged and the whole set is graded A-F.`,
	Example: "  primerlab check -t target.fa -o panel.fa -p primers.json --matrix",
	Run: func(cmd *cobra.Command, args []string) {
		c := config.New()

		target, err := seqio.LoadTemplate(checkTargetPath, checkTargetName)
		if err != nil {
			stderr.Fatalf("load target: %v", err)
		}
		var offtargets []seqio.Template
		if checkOfftargetPath != "" {
			if offtargets, err = seqio.LoadTemplates(checkOfftargetPath); err != nil {
				stderr.Fatalf("load off-targets: %v", err)
			}
		}
		pairs, err := seqio.LoadPrimerJSON(checkPrimerPath)
		if err != nil {
			stderr.Fatalf("load primers: %v", err)
		}

		analyzer := specificity.NewAnalyzer(specificity.Options{
			MinMatchPercent: c.Binding.MinMatchPercent,
			MaxMismatches:   c.Binding.MaxMismatches,
		}, openCache(c, checkNoCache))

		result, err := analyzer.CheckSpeciesSpecificity(pairs, target, offtargets,
			specificity.CheckConfig{OfftargetThreshold: c.Specificity.OfftargetThreshold})
		if err != nil {
			stderr.Fatalf("%v", err)
		}

		if checkJSONOut {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			if err := enc.Encode(result); err != nil {
				stderr.Fatalf("encode result: %v", err)
			}
			return
		}

		fmt.Printf("Target: %s\n", result.TargetSpecies)
		fmt.Printf("Primers checked: %d  Species checked: %d\n",
			result.PrimersChecked, result.SpeciesChecked)
		fmt.Printf("Overall score: %.1f (%s)  Specific: %t\n",
			result.OverallScore, result.Grade, result.IsSpecific)
		for _, primer := range result.Matrix.PrimerNames {
			cr := specificity.CrossReactivityScore(result.Matrix, primer,
				c.Specificity.CrossReactivityThreshold)
			fmt.Printf("  %s: target %.1f%%, worst off-target %.1f%%, score %.1f (%s)\n",
				primer, cr.TargetBinding, cr.MaxOfftargetBinding, cr.SpecificityScore, cr.Grade)
		}
		for _, w := range result.Warnings {
			fmt.Printf("WARNING: %s\n", w)
		}
		for _, r := range result.Recommendations {
			fmt.Printf("RECOMMENDATION: %s\n", r)
		}
		if checkShowMatrix {
			fmt.Println()
			fmt.Print(specificity.MatrixTable(result.Matrix))
		}
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().StringVarP(&checkTargetPath, "target", "t", "", "path to the target template FASTA file")
	checkCmd.Flags().StringVarP(&checkTargetName, "target-name", "n", "", "override the target species name from the FASTA header")
	checkCmd.Flags().StringVarP(&checkOfftargetPath, "offtargets", "o", "", "path to a multi-FASTA file of off-target templates")
	checkCmd.Flags().StringVarP(&checkPrimerPath, "primers", "p", "", "path to a JSON primer list")
	checkCmd.Flags().BoolVar(&checkShowMatrix, "matrix", false, "print the primer x species binding matrix")
	checkCmd.Flags().BoolVar(&checkJSONOut, "json", false, "write the full check result as JSON to stdout")
	checkCmd.Flags().BoolVar(&checkNoCache, "no-cache", false, "skip the alignment cache")
	checkCmd.Flags().Float64("min-match", 80, "lowest window match percent reported as a binding site")
	checkCmd.Flags().Int("max-mismatches", 3, "most mismatched positions a binding site may carry")
	checkCmd.Flags().Float64("threshold", 80, "off-target match percent at which a warning fires")

	checkCmd.MarkFlagRequired("target")
	checkCmd.MarkFlagRequired("primers")

	viper.BindPFlag("binding.min-match-percent", checkCmd.Flags().Lookup("min-match"))
	viper.BindPFlag("binding.max-mismatches", checkCmd.Flags().Lookup("max-mismatches"))
	viper.BindPFlag("specificity.offtarget-threshold", checkCmd.Flags().Lookup("threshold"))
}
