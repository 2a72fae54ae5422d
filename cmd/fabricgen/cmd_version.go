package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fabricgen-network/fabricgen/pkg/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("fabricgen %s\n", version.Info())
	},
}
