// Fabricgen - network switch configuration generator
//
// Converts a lab topology description into standardized per-switch
// configuration objects, validates them, and renders vendor-specific
// configuration text:
//
//	fabricgen generate -f topology.json -o ./out
//	fabricgen validate -f tor1_standard.json
//	fabricgen render -f tor1_standard.json -o ./out
//	fabricgen inspect ./submission-dir
//
// Input format is auto-detected: a lab topology runs the full pipeline, a
// standardized switch object skips straight to validation and rendering.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fabricgen-network/fabricgen/pkg/util"
)

var (
	inputFile    string
	outputDir    string
	templateDir  string
	ifaceTmplDir string
	convertor    string
	skipRender   bool
	debug        bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "fabricgen",
	Short:         "Network switch configuration generator",
	SilenceUsage:  true,
	SilenceErrors: true,
	Long: `Fabricgen converts a lab topology description into vendor-neutral
switch configuration objects and renders them into per-vendor
configuration files. The generated output is a reference
configuration and requires review before deployment.`,
	CompletionOptions: cobra.CompletionOptions{HiddenDefaultCmd: true},
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if debug {
			return util.SetLogLevel("debug")
		}
		return util.SetLogLevel("warn")
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "v", false, "enable debug logging")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(versionCmd)
}
