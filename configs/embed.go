// Package configs embeds the shipped switch interface templates so the
// binary works without a checkout. A directory on disk can still override
// them via the generate command's --interface-templates flag.
package configs

import (
	"embed"
	"io/fs"
)

//go:embed switch_interface_templates
var fsys embed.FS

// SwitchInterfaceTemplates is the shipped template tree, rooted at the
// per-vendor directories.
var SwitchInterfaceTemplates fs.FS

func init() {
	sub, err := fs.Sub(fsys, "switch_interface_templates")
	if err != nil {
		panic(err)
	}
	SwitchInterfaceTemplates = sub
}
