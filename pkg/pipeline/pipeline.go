// Package pipeline orchestrates one conversion run: every switch entry is
// built, validated, rendered, and written out independently. Switches are
// processed concurrently; a failure for one switch never aborts the others,
// and the caller receives a per-switch report.
package pipeline

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/fabricgen-network/fabricgen/configs"
	"github.com/fabricgen-network/fabricgen/pkg/builder"
	"github.com/fabricgen-network/fabricgen/pkg/lab"
	"github.com/fabricgen-network/fabricgen/pkg/model"
	"github.com/fabricgen-network/fabricgen/pkg/render"
	"github.com/fabricgen-network/fabricgen/pkg/spec"
	"github.com/fabricgen-network/fabricgen/pkg/util"
	"github.com/fabricgen-network/fabricgen/pkg/validate"
	"github.com/fabricgen-network/fabricgen/templates"
)

// Convertor selectors for Run.
const (
	ConvertorAll = ""
	ConvertorLab = "lab" // TOR pair only
	ConvertorBMC = "bmc" // BMC switch only
)

// Options configure one conversion run. Nil template filesystems fall back
// to the sets embedded in the binary.
type Options struct {
	OutputDir          string
	Templates          fs.FS // rendering template sets
	InterfaceTemplates fs.FS // switch interface template tree
	Convertor          string
	SkipRender         bool
}

func (o Options) templates() fs.FS {
	if o.Templates != nil {
		return o.Templates
	}
	return templates.FS
}

func (o Options) interfaceTemplates() fs.FS {
	if o.InterfaceTemplates != nil {
		return o.InterfaceTemplates
	}
	return configs.SwitchInterfaceTemplates
}

// SwitchResult is the outcome for one switch entry.
type SwitchResult struct {
	Hostname   string
	Role       string
	Err        error
	Violations []validate.Violation
	Files      []string
}

// OK reports whether the switch completed without error.
func (r SwitchResult) OK() bool { return r.Err == nil }

// Report aggregates one conversion run.
type Report struct {
	RunID   string
	Results []SwitchResult
}

// Failed counts the switches that did not complete.
func (r *Report) Failed() int {
	n := 0
	for _, res := range r.Results {
		if !res.OK() {
			n++
		}
	}
	return n
}

// Run converts a lab topology end to end. Entries are processed one
// goroutine per switch; results come back ordered by hostname so output and
// exit status are deterministic regardless of scheduling.
func Run(topo *lab.Topology, opts Options) *Report {
	run := builder.NewRun(topo)
	b := builder.New(spec.NewLoader(opts.interfaceTemplates()))

	type job struct {
		entry lab.SwitchEntry
		bmc   bool
	}
	var jobs []job
	if opts.Convertor == ConvertorAll || opts.Convertor == ConvertorLab {
		for _, e := range topo.TORSwitches() {
			jobs = append(jobs, job{entry: e})
		}
	}
	if opts.Convertor == ConvertorAll || opts.Convertor == ConvertorBMC {
		// Zero BMC entries is success: the builder is simply skipped.
		for _, e := range topo.BMCSwitches() {
			jobs = append(jobs, job{entry: e, bmc: true})
		}
	}

	log := util.WithRun(run.ID)
	log.Infof("converting %d switch entries", len(jobs))

	results := make([]SwitchResult, len(jobs))
	var wg sync.WaitGroup
	for i, j := range jobs {
		wg.Add(1)
		go func(i int, j job) {
			defer wg.Done()

			var cfg *model.SwitchConfig
			var err error
			if j.bmc {
				cfg, err = b.BuildBMC(j.entry, topo, run)
			} else {
				cfg, err = b.Build(j.entry, topo, run)
			}
			if err != nil {
				results[i] = SwitchResult{Hostname: j.entry.Hostname, Role: strings.ToUpper(j.entry.Type), Err: err}
				return
			}
			results[i] = process(cfg, opts)
		}(i, j)
	}
	wg.Wait()

	sort.Slice(results, func(i, k int) bool { return results[i].Hostname < results[k].Hostname })
	report := &Report{RunID: run.ID, Results: results}
	log.Infof("run complete: %d ok, %d failed", len(results)-report.Failed(), report.Failed())
	return report
}

// RunStandard validates and renders pre-built standardized objects, e.g.
// wizard exports. The build stage is skipped.
func RunStandard(cfgs []*model.SwitchConfig, opts Options) *Report {
	report := &Report{RunID: builder.NewRunID()}
	for _, cfg := range cfgs {
		report.Results = append(report.Results, process(cfg, opts))
	}
	sort.Slice(report.Results, func(i, k int) bool {
		return report.Results[i].Hostname < report.Results[k].Hostname
	})
	return report
}

// process takes one built object through validation, rendering, and output.
func process(cfg *model.SwitchConfig, opts Options) SwitchResult {
	res := SwitchResult{Hostname: cfg.Switch.Hostname, Role: cfg.Switch.Role}

	res.Violations = validate.Validate(cfg)
	if len(res.Violations) > 0 {
		details := make([]string, len(res.Violations))
		for i, v := range res.Violations {
			details[i] = v.String()
		}
		res.Err = fmt.Errorf("%w:\n  %s", util.ErrValidationFailed, strings.Join(details, "\n  "))
		return res
	}

	dir := filepath.Join(opts.OutputDir, cfg.Switch.Hostname)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		res.Err = err
		return res
	}

	if err := writeStandardJSON(dir, cfg, &res); err != nil {
		res.Err = err
		return res
	}
	if opts.SkipRender {
		return res
	}

	out, err := render.NewEngine(opts.templates()).Render(cfg)
	if err != nil {
		res.Err = err
		return res
	}

	sections := make([]string, 0, len(out.Sections))
	for s := range out.Sections {
		sections = append(sections, s)
	}
	sort.Strings(sections)
	for _, s := range sections {
		text := out.Sections[s]
		if strings.TrimSpace(text) == "" {
			continue
		}
		if err := writeFile(dir, s+".cfg", text, &res); err != nil {
			res.Err = err
			return res
		}
	}
	if err := writeFile(dir, "full_config.cfg", out.Full, &res); err != nil {
		res.Err = err
	}
	return res
}

func writeStandardJSON(dir string, cfg *model.SwitchConfig, res *SwitchResult) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return writeFile(dir, cfg.Switch.Hostname+"_standard.json", string(data)+"\n", res)
}

func writeFile(dir, name, content string, res *SwitchResult) error {
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return err
	}
	res.Files = append(res.Files, path)
	return nil
}
