package cmd

import (
	"fmt"
	"os"

	cc "github.com/ivanpirog/coloredcobra"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "chromwin",
	Short: "Split chromosome sequences into overlapping windows",
	Long: `Reads a multi-record FASTA file, groups the records by chromosome
(1-22, x, y, unplaced) and writes one fixed-column table per chromosome,
listing overlapping windows with their ambiguous-base statistics.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

func Execute() {
	cc.Init(&cc.Config{
		RootCmd:  rootCmd,
		Headings: cc.HiCyan + cc.Bold + cc.Underline,
		Commands: cc.HiYellow + cc.Bold,
		Example:  cc.Italic,
		ExecName: cc.Bold,
		Flags:    cc.Bold,
	})
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
