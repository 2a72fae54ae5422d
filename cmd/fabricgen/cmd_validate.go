package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fabricgen-network/fabricgen/pkg/cli"
	"github.com/fabricgen-network/fabricgen/pkg/model"
	"github.com/fabricgen-network/fabricgen/pkg/util"
	"github.com/fabricgen-network/fabricgen/pkg/validate"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check a standardized switch object for consistency",
	Long: `Run the cross-reference checks against a standardized switch JSON
object and report every violation found.

Example:
  fabricgen validate -f tor1_standard.json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := os.ReadFile(inputFile)
		if err != nil {
			return util.NewInputError(inputFile, err.Error())
		}
		if !model.IsStandardFormat(raw) {
			return util.NewInputError(inputFile, "not a standardized switch object")
		}
		cfg, err := parseStandard(raw)
		if err != nil {
			return err
		}

		violations := validate.Validate(cfg)
		if len(violations) == 0 {
			fmt.Printf("%s %s\n", cli.Green("valid:"), cfg.Switch.Hostname)
			return nil
		}
		for _, v := range violations {
			fmt.Printf("  %s %s\n", cli.Red(v.Check+":"), v.Detail)
		}
		return fmt.Errorf("%d violations: %w", len(violations), util.ErrValidationFailed)
	},
}

func init() {
	validateCmd.Flags().StringVarP(&inputFile, "file", "f", "", "standardized switch JSON (required)")
	validateCmd.MarkFlagRequired("file")
}
