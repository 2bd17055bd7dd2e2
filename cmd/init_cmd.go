package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tipcredit/fica-tip-credit/internal/config"
	"github.com/tipcredit/fica-tip-credit/internal/output"
)

var flagForce bool

var initCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write an example scenario file",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runInit,
}

func init() {
	initCmd.Flags().BoolVar(&flagForce, "force", false, "Overwrite an existing file")
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	path := "scenarios.yaml"
	if len(args) == 1 {
		path = args[0]
	}
	if _, err := os.Stat(path); err == nil && !flagForce {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}

	example := config.NewInputParser().CreateExampleConfiguration()
	if err := output.SaveConfiguration(example, path); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "  Wrote %d example scenarios to %s\n", len(example.Scenarios), path)
	fmt.Fprintf(cmd.OutOrStdout(), "  Run `tipcredit calculate --file %s` to see the estimate.\n", path)
	return nil
}
