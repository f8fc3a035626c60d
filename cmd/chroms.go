package cmd

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/yech1990/chromwin/internal/config"
	"github.com/yech1990/chromwin/internal/genome"
	"github.com/yech1990/chromwin/internal/logging"
	"github.com/yech1990/chromwin/internal/report"
	"github.com/yech1990/chromwin/internal/window"
)

var chromsBases string

var chromsCmd = &cobra.Command{
	Use:   "chroms [filename]",
	Short: "Show per-chromosome sequence statistics",
	Long: `Parses a FASTA file (default output.txt, '-' for stdin, .gz supported)
the same way split does, and prints the total length, ambiguous-base count
and longest ambiguous run of every chromosome label. Labels without data
are shown as N/A.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		input := config.Default().Input
		if len(args) > 0 {
			input = args[0]
		}
		return runChroms(cmd, input)
	},
}

func init() {
	rootCmd.AddCommand(chromsCmd)
	chromsCmd.Flags().StringVarP(&chromsBases, "bases", "b", window.DefaultBases, "Bases that are not counted as ambiguous")
}

func runChroms(cmd *cobra.Command, input string) error {
	log, err := logging.New(cmd.ErrOrStderr(), "warn")
	if err != nil {
		return err
	}
	store, err := genome.NewParser(genome.DefaultLabelMatcher(), log).ParseFile(input)
	if err != nil {
		return err
	}

	scanner := window.NewScanner(chromsBases, 0)
	var stats []report.ChromosomeStat
	found := false
	for _, label := range store.Labels() {
		seq := store.Sequence(label)
		if seq != "" {
			found = true
		}
		stats = append(stats, report.ChromosomeStat{
			Label:      label,
			Length:     len(seq),
			Ambiguous:  scanner.AmbiguousCount(seq),
			LongestRun: scanner.LongestRun(seq),
		})
	}
	if !found {
		color.New(color.FgYellow).Fprintf(cmd.OutOrStdout(), "No chromosome sequences found in %s\n", input)
		return nil
	}
	report.RenderChromosomes(cmd.OutOrStdout(), stats)
	return nil
}
