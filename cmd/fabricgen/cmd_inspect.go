package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fabricgen-network/fabricgen/pkg/cli"
	"github.com/fabricgen-network/fabricgen/pkg/submission"
	"github.com/fabricgen-network/fabricgen/pkg/util"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <submission-dir>",
	Short: "Inspect a configuration submission directory",
	Long: `Process a submission directory (config.txt plus optional
metadata.yaml): normalize the metadata, detect the vendor from the
configuration content, and summarise the sections found.

Example:
  fabricgen inspect ./submissions/rack12-tor1`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := submission.Process(args[0])
		if err != nil {
			return err
		}

		m := res.Metadata
		fmt.Printf("%s\n", cli.Bold(args[0]))
		fmt.Printf("  %s %s\n", cli.DotPad("vendor", 24), m.Vendor)
		fmt.Printf("  %s %s\n", cli.DotPad("firmware", 24), m.Firmware)
		if m.Model != "" {
			fmt.Printf("  %s %s\n", cli.DotPad("model", 24), m.Model)
		}
		if m.Hostname != "" {
			fmt.Printf("  %s %s\n", cli.DotPad("hostname", 24), m.Hostname)
		}
		if m.Role != "" {
			fmt.Printf("  %s %s\n", cli.DotPad("role", 24), m.Role)
		}
		if res.NewVendor {
			fmt.Printf("  %s\n", cli.Yellow("new-vendor contribution"))
		}

		fmt.Println("\nSections:")
		for _, s := range res.Summary.Present {
			fmt.Printf("  %s %d lines\n", cli.DotPad(s, 24), res.Summary.Lines[s])
		}
		if len(res.Summary.VLANs) > 0 {
			fmt.Printf("  %s %s\n", cli.DotPad("vlans declared", 24), util.CompactRange(res.Summary.VLANs))
		}

		for _, w := range res.Warnings {
			fmt.Printf("%s %s\n", cli.Yellow("warning:"), w)
		}
		return nil
	},
}
