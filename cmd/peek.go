package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yech1990/chromwin/internal/report"
)

var (
	peekRows     int
	peekSeqWidth int
)

var peekCmd = &cobra.Command{
	Use:   "peek <chromosome_table>",
	Short: "Preview a chromosome table",
	Long:  `Preview the first and last windows of a table written by split, with colored bases`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if peekRows < 1 {
			return fmt.Errorf("--rows must be at least 1")
		}
		file, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("opening table: %w", err)
		}
		defer file.Close()
		return report.Preview(cmd.OutOrStdout(), file, peekRows, peekSeqWidth)
	},
}

func init() {
	rootCmd.AddCommand(peekCmd)
	peekCmd.Flags().IntVarP(&peekRows, "rows", "r", 10, "Maximum number of windows to display")
	peekCmd.Flags().IntVarP(&peekSeqWidth, "width", "w", 40, "Maximum sequence characters per window (0 for all)")
}
