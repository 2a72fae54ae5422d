package main

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/fabricgen-network/fabricgen/configs"
	"github.com/fabricgen-network/fabricgen/pkg/cli"
	"github.com/fabricgen-network/fabricgen/pkg/lab"
	"github.com/fabricgen-network/fabricgen/pkg/model"
	"github.com/fabricgen-network/fabricgen/pkg/pipeline"
	"github.com/fabricgen-network/fabricgen/pkg/util"
	"github.com/fabricgen-network/fabricgen/templates"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Convert a topology into rendered switch configurations",
	Long: `Convert an input file into per-switch configuration files.

The input format is auto-detected: a lab topology description runs the
full build/validate/render pipeline; a standardized switch object skips
the build stage.

Examples:
  fabricgen generate -f topology.json -o ./out
  fabricgen generate -f topology.json -o ./out --convertor bmc
  fabricgen generate -f tor1_standard.json -o ./out`,
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := os.ReadFile(inputFile)
		if err != nil {
			return util.NewInputError(inputFile, err.Error())
		}

		opts := pipeline.Options{
			OutputDir:          outputDir,
			Templates:          templateFS(),
			InterfaceTemplates: ifaceTemplateFS(),
			Convertor:          convertor,
			SkipRender:         skipRender,
		}

		var report *pipeline.Report
		if model.IsStandardFormat(raw) {
			cfg, err := parseStandard(raw)
			if err != nil {
				return err
			}
			report = pipeline.RunStandard([]*model.SwitchConfig{cfg}, opts)
		} else {
			topo, err := lab.Parse(raw)
			if err != nil {
				return err
			}
			report = pipeline.Run(topo, opts)
		}

		printReport(report)
		if n := report.Failed(); n > 0 {
			return fmt.Errorf("%d of %d switches failed", n, len(report.Results))
		}
		return nil
	},
}

func init() {
	generateCmd.Flags().StringVarP(&inputFile, "file", "f", "", "input file: lab topology or standard switch JSON (required)")
	generateCmd.Flags().StringVarP(&outputDir, "output", "o", "output", "output directory")
	generateCmd.Flags().StringVar(&templateDir, "templates", "", "template directory overriding the built-in sets")
	generateCmd.Flags().StringVar(&ifaceTmplDir, "interface-templates", "", "interface template directory overriding the built-in tree")
	generateCmd.Flags().StringVar(&convertor, "convertor", "", "restrict conversion: lab (TOR pair) or bmc")
	generateCmd.Flags().BoolVar(&skipRender, "skip-render", false, "write standard JSON only, skip rendering")
	generateCmd.MarkFlagRequired("file")
}

func templateFS() fs.FS {
	if templateDir != "" {
		return os.DirFS(templateDir)
	}
	return templates.FS
}

func ifaceTemplateFS() fs.FS {
	if ifaceTmplDir != "" {
		return os.DirFS(ifaceTmplDir)
	}
	return configs.SwitchInterfaceTemplates
}

func parseStandard(raw []byte) (*model.SwitchConfig, error) {
	var cfg model.SwitchConfig
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return nil, util.NewInputError(inputFile, err.Error())
	}
	if cfg.Switch.Hostname == "" {
		return nil, util.NewInputError(inputFile, "switch.hostname is required")
	}
	return &cfg, nil
}

func printReport(report *pipeline.Report) {
	fmt.Printf("Run %s\n", cli.Dim(report.RunID))
	for _, res := range report.Results {
		name := cli.DotPad(res.Hostname+" ("+res.Role+")", 40)
		if res.OK() {
			fmt.Printf("  %s %s  %d files\n", name, cli.Green("ok"), len(res.Files))
			continue
		}
		fmt.Printf("  %s %s\n", name, cli.Red("failed"))
		fmt.Fprintf(os.Stderr, "    %v\n", res.Err)
	}
}
