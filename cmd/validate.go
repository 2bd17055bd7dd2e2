package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tipcredit/fica-tip-credit/internal/calculation"
	"github.com/tipcredit/fica-tip-credit/internal/config"
)

var validateFlags inputFlags

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check inputs or a scenario file without calculating",
	RunE:  runValidate,
}

func init() {
	validateFlags.register(validateCmd)
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()

	if validateFlags.file != "" {
		cfg, err := config.NewInputParserWithBase(prefs.InputDefaults()).LoadFromFile(validateFlags.file)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "  %s: %d scenario(s) valid.\n", validateFlags.file, len(cfg.Scenarios))
		return nil
	}

	p, err := validateFlags.partial(cmd)
	if err != nil {
		return err
	}
	res := calculation.Validate(p.WithDefaults(prefs.InputDefaults()))
	printValidation(out, res)
	return res.Err()
}
