package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tipcredit/fica-tip-credit/internal/output"
)

var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "List available output formats",
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "  Formats: %s\n", strings.Join(output.AvailableFormatterNames(), ", "))
		fmt.Fprintf(cmd.OutOrStdout(), "  Aliases: %s\n", strings.Join(output.AvailableFormatAliases(), ", "))
	},
}

func init() {
	rootCmd.AddCommand(formatsCmd)
}
