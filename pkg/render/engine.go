// Package render turns standardized switch objects into configuration text.
// Template sets are discovered by directory convention — <vendor>/<firmware>
// — and every *.tmpl file inside a set is one independently renderable
// configuration section. The engine itself contains no vendor branching; all
// vendor variation lives in the template files.
package render

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"text/template"

	"github.com/fabricgen-network/fabricgen/pkg/model"
	"github.com/fabricgen-network/fabricgen/pkg/util"
)

// sectionOrder fixes the concatenation order of the full configuration.
// Sections not listed here render after these, alphabetically.
var sectionOrder = []string{
	"system",
	"login",
	"qos",
	"vlans",
	"interfaces",
	"port_channels",
	"mlag",
	"bgp",
	"prefix_lists",
	"static_routes",
}

// Result holds the rendered output for one switch: the per-section texts and
// the concatenated full configuration. Full is only populated when every
// section rendered cleanly.
type Result struct {
	Sections map[string]string
	Full     string
}

// Engine renders switch objects through per-vendor template sets. It is
// stateless apart from the immutable template filesystem and safe for
// concurrent use.
type Engine struct {
	fsys fs.FS
}

// NewEngine creates a rendering engine over a template filesystem laid out
// as <vendor>/<firmware>/<section>.tmpl.
func NewEngine(fsys fs.FS) *Engine {
	return &Engine{fsys: fsys}
}

func funcMap() template.FuncMap {
	return template.FuncMap{
		"subnetMask": util.SubnetMask,
		"vlanList":   util.CompactRange,
		"join":       strings.Join,
		"add":        func(a, b int) int { return a + b },
		"seq10":      func(i int) int { return (i + 1) * 10 },
		"upper":      strings.ToUpper,
		"lower":      strings.ToLower,
	}
}

// Render executes every section of the switch's template set. Section
// failures do not stop the remaining sections; when any section fails the
// returned error aggregates the per-section errors and Full stays empty so
// an incomplete configuration is never distributed.
func (e *Engine) Render(cfg *model.SwitchConfig) (*Result, error) {
	setDir := path.Join(cfg.Switch.Vendor, cfg.Switch.Firmware)
	entries, err := fs.ReadDir(e.fsys, setDir)
	if err != nil {
		return nil, fmt.Errorf("template set %s for switch %s: %w",
			setDir, cfg.Switch.Hostname, util.ErrNoTemplateSet)
	}

	ctx := NewContext(cfg)
	res := &Result{Sections: make(map[string]string)}
	var errs []error

	var sections []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".tmpl") {
			continue
		}
		section := strings.TrimSuffix(entry.Name(), ".tmpl")
		sections = append(sections, section)

		text, rerr := e.renderSection(setDir, section, ctx)
		if rerr != nil {
			errs = append(errs, rerr)
			continue
		}
		res.Sections[section] = text
	}
	if len(sections) == 0 {
		return nil, fmt.Errorf("template set %s is empty: %w", setDir, util.ErrNoTemplateSet)
	}

	if len(errs) > 0 {
		return res, errors.Join(errs...)
	}

	res.Full = concatenate(res.Sections)
	return res, nil
}

func (e *Engine) renderSection(setDir, section string, ctx *Context) (string, error) {
	raw, err := fs.ReadFile(e.fsys, path.Join(setDir, section+".tmpl"))
	if err != nil {
		return "", util.NewRenderError(section, err.Error())
	}

	tmpl, err := template.New(section).Funcs(funcMap()).Parse(string(raw))
	if err != nil {
		return "", util.NewRenderError(section, "parse: "+err.Error())
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, ctx); err != nil {
		return "", util.NewRenderError(section, "execute: "+err.Error())
	}
	return strings.TrimLeft(buf.String(), "\n"), nil
}

// concatenate joins the section outputs in the fixed order, skipping empty
// sections, so regeneration of the same object is byte-identical.
func concatenate(sections map[string]string) string {
	known := make(map[string]bool, len(sectionOrder))
	ordered := make([]string, 0, len(sections))
	for _, s := range sectionOrder {
		known[s] = true
		if _, ok := sections[s]; ok {
			ordered = append(ordered, s)
		}
	}
	var extras []string
	for s := range sections {
		if !known[s] {
			extras = append(extras, s)
		}
	}
	sort.Strings(extras)
	ordered = append(ordered, extras...)

	var b strings.Builder
	for _, s := range ordered {
		text := strings.TrimRight(sections[s], "\n")
		if text == "" {
			continue
		}
		b.WriteString(text)
		b.WriteString("\n")
	}
	return b.String()
}
