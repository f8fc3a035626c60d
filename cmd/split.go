package cmd

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/yech1990/chromwin/internal/config"
	"github.com/yech1990/chromwin/internal/genome"
	"github.com/yech1990/chromwin/internal/logging"
	"github.com/yech1990/chromwin/internal/pipeline"
	"github.com/yech1990/chromwin/internal/report"
)

var (
	splitConfigFile   string
	splitInput        string
	splitOutDir       string
	splitThreads      int
	splitThreshold    int
	splitFullCoverage bool
	splitQuiet        bool
	splitLogLevel     string
)

var splitCmd = &cobra.Command{
	Use:   "split <sequence_length>",
	Short: "Write one window table per chromosome",
	Long: `Splits every chromosome into windows of <sequence_length> bases that
start every <sequence_length>/2 bases, and writes chromosome_<label>.csv
for each chromosome with sequence data.

Each row holds the window ID, its length, the number of bases outside
ACTG, the longest run of such bases (only when it exceeds the threshold),
the 1-based start position and the window sequence.

Settings may also come from a YAML file (-c); flags override it.`,
	Example: `  chromwin split 10000
  chromwin split 2000 -i GRCh38.fa.gz -o windows -t 4
  chromwin split 500 -c chromwin.yaml --full-coverage`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSplit(cmd, args[0])
	},
}

func init() {
	rootCmd.AddCommand(splitCmd)
	splitCmd.Flags().StringVarP(&splitConfigFile, "config", "c", "", "YAML config file")
	splitCmd.Flags().StringVarP(&splitInput, "input", "i", "output.txt", "Input FASTA file (.gz supported, '-' for stdin)")
	splitCmd.Flags().StringVarP(&splitOutDir, "outdir", "o", ".", "Directory for the chromosome tables")
	splitCmd.Flags().IntVarP(&splitThreads, "threads", "t", 1, "Number of chromosomes processed in parallel")
	splitCmd.Flags().IntVar(&splitThreshold, "threshold", 5000, "Report ambiguous runs longer than this")
	splitCmd.Flags().BoolVar(&splitFullCoverage, "full-coverage", false, "Emit a window for sequences shorter than half the window length")
	splitCmd.Flags().BoolVarP(&splitQuiet, "quiet", "q", false, "Hide progress and summary output")
	splitCmd.Flags().StringVar(&splitLogLevel, "log-level", "info", "Log level (debug, info, warn, error)")
}

// splitConfig merges the config file, changed flags and the positional
// length, in increasing priority.
func splitConfig(cmd *cobra.Command, lengthArg string) (config.Config, error) {
	cfg := config.Default()
	if splitConfigFile != "" {
		var err error
		if cfg, err = config.Load(splitConfigFile); err != nil {
			return cfg, err
		}
	}
	flags := cmd.Flags()
	if flags.Changed("input") {
		cfg.Input = splitInput
	}
	if flags.Changed("outdir") {
		cfg.OutputDir = splitOutDir
	}
	if flags.Changed("threads") {
		cfg.Threads = splitThreads
	}
	if flags.Changed("threshold") {
		cfg.Threshold = splitThreshold
	}
	if flags.Changed("full-coverage") {
		cfg.FullCoverage = splitFullCoverage
	}
	if flags.Changed("quiet") {
		cfg.Quiet = splitQuiet
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = splitLogLevel
	}

	n, err := strconv.Atoi(lengthArg)
	if err != nil {
		return cfg, fmt.Errorf("sequence_length must be an integer, got %q", lengthArg)
	}
	cfg.WindowLength = n
	return cfg, cfg.Validate()
}

func runSplit(cmd *cobra.Command, lengthArg string) error {
	cfg, err := splitConfig(cmd, lengthArg)
	if err != nil {
		return err
	}
	log, err := logging.New(cmd.ErrOrStderr(), cfg.LogLevel)
	if err != nil {
		return err
	}
	matcher, err := cfg.LabelMatcher()
	if err != nil {
		return err
	}

	store, err := genome.NewParser(matcher, log).ParseFile(cfg.Input)
	if err != nil {
		return err
	}

	opts := pipeline.Options{
		NominalLength: cfg.WindowLength,
		Threads:       cfg.Threads,
		Segmenter:     cfg.Segmenter(),
		Writer:        report.NewWriter(cfg.OutputDir),
		Log:           log,
	}
	if !cfg.Quiet {
		opts.Progress = cmd.ErrOrStderr()
	}
	summaries, err := pipeline.Run(store, opts)
	if err != nil {
		return err
	}
	if cfg.Quiet {
		return nil
	}

	out := cmd.OutOrStdout()
	if len(summaries) == 0 {
		color.New(color.FgYellow).Fprintf(out, "No chromosome sequences found in %s\n", cfg.Input)
		return nil
	}
	green := color.New(color.FgGreen)
	for _, s := range summaries {
		green.Fprintf(out, "Table written to %s\n", s.Path)
	}
	fmt.Fprintln(out)
	report.RenderSummary(out, summaries)
	return nil
}
