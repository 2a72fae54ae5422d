// Package submission processes vendor configuration submissions: a directory
// holding a raw config.txt plus an optional metadata.yaml describing it.
// Metadata values are normalized, the configuration content is scanned for
// vendor markers, and the two are merged with explicit priority so a sloppy
// metadata file cannot silently override what the content clearly shows.
package submission

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/fabricgen-network/fabricgen/pkg/platform"
	"github.com/fabricgen-network/fabricgen/pkg/sectioner"
	"github.com/fabricgen-network/fabricgen/pkg/util"
)

const (
	configFile   = "config.txt"
	metadataFile = "metadata.yaml"
)

// Metadata is the submitter-provided description of a configuration.
type Metadata struct {
	Vendor            string `yaml:"vendor"`
	Firmware          string `yaml:"firmware"`
	Model             string `yaml:"model"`
	Hostname          string `yaml:"hostname"`
	Role              string `yaml:"role"`
	DeploymentPattern string `yaml:"deployment_pattern"`
}

// UnmarshalYAML accepts the legacy field names still used by older
// submission tooling: make, os, and type.
func (m *Metadata) UnmarshalYAML(value *yaml.Node) error {
	type plain Metadata
	aux := struct {
		plain `yaml:",inline"`
		Make  string `yaml:"make"`
		OS    string `yaml:"os"`
		Type  string `yaml:"type"`
	}{}
	if err := value.Decode(&aux); err != nil {
		return err
	}
	*m = Metadata(aux.plain)
	if m.Vendor == "" {
		m.Vendor = aux.Make
	}
	if m.Firmware == "" {
		m.Firmware = aux.OS
	}
	if m.Role == "" {
		m.Role = aux.Type
	}
	return nil
}

// Result is the processed submission: the merged metadata, what the content
// scan found, the sectioned configuration, and any warnings raised while
// reconciling the two.
type Result struct {
	Metadata  Metadata
	Detected  platform.Detection
	Sections  map[string][]string
	Summary   sectioner.Summary
	Warnings  []string
	NewVendor bool
}

// Process loads and reconciles one submission directory. A missing
// metadata.yaml is tolerated; a missing config.txt is not. An unknown vendor
// is a new-vendor contribution, reported through NewVendor rather than as an
// error.
func Process(dir string) (*Result, error) {
	configPath := filepath.Join(dir, configFile)
	raw, err := os.ReadFile(configPath)
	if err != nil {
		return nil, util.NewInputError(configPath, err.Error())
	}
	content := string(raw)

	var user Metadata
	metaPath := filepath.Join(dir, metadataFile)
	if data, err := os.ReadFile(metaPath); err == nil {
		if err := yaml.Unmarshal(data, &user); err != nil {
			return nil, util.NewInputError(metaPath, "parsing metadata: "+err.Error())
		}
	} else if !os.IsNotExist(err) {
		return nil, util.NewInputError(metaPath, err.Error())
	}

	res := &Result{Detected: platform.Detect(content)}
	res.Metadata, res.Warnings = merge(user, res.Detected)

	if res.Metadata.Vendor == "" {
		return nil, util.NewInputError(configPath,
			"vendor not declared in metadata and not detectable from content")
	}
	if !platform.KnownVendor(res.Metadata.Vendor) {
		res.NewVendor = true
		res.Warnings = append(res.Warnings, fmt.Sprintf(
			"vendor %q has no built-in support; treating this as a new-vendor contribution",
			res.Metadata.Vendor))
	}
	if res.Metadata.Firmware == "" {
		res.Metadata.Firmware = platform.FirmwareFor(res.Metadata.Vendor)
	}

	res.Sections = sectioner.Split(content, res.Metadata.Firmware)
	res.Summary = sectioner.Analyze(content, res.Metadata.Firmware)
	return res, nil
}

// merge reconciles the submitter's metadata with the content scan. Priority
// per field: a normalized user value wins, then the raw user value, then the
// detected one. Fuzzy normalization and user/detection disagreements produce
// warnings, not failures.
func merge(user Metadata, det platform.Detection) (Metadata, []string) {
	var warnings []string

	vendor, vendorWarn := normalizeField("vendor", user.Vendor, platform.NormalizeVendor)
	warnings = append(warnings, vendorWarn...)
	firmware, fwWarn := normalizeField("firmware", user.Firmware, platform.NormalizeFirmware)
	warnings = append(warnings, fwWarn...)
	role, roleWarn := normalizeField("role", user.Role, platform.NormalizeRole)
	warnings = append(warnings, roleWarn...)
	pattern, patWarn := normalizeField("deployment_pattern", user.DeploymentPattern, platform.NormalizePattern)
	warnings = append(warnings, patWarn...)

	out := Metadata{
		Vendor:            firstNonEmpty(vendor, user.Vendor, det.Vendor),
		Firmware:          firstNonEmpty(firmware, user.Firmware, det.Firmware),
		Model:             firstNonEmpty(user.Model, det.Model),
		Hostname:          firstNonEmpty(user.Hostname, det.Hostname),
		Role:              firstNonEmpty(role, user.Role),
		DeploymentPattern: firstNonEmpty(pattern, user.DeploymentPattern),
	}

	if det.Vendor != "" && out.Vendor != det.Vendor {
		warnings = append(warnings, fmt.Sprintf(
			"metadata names vendor %q but the configuration content looks like %q",
			out.Vendor, det.Vendor))
	}
	return out, warnings
}

func normalizeField(field, value string, fn func(string) (string, string)) (string, []string) {
	if value == "" {
		return "", nil
	}
	canonical, match := fn(value)
	switch match {
	case platform.MatchExact, platform.MatchVariation:
		return canonical, nil
	case platform.MatchFuzzy:
		return canonical, []string{fmt.Sprintf(
			"%s %q fuzzily matched %q; please use the canonical value", field, value, canonical)}
	default:
		return "", []string{fmt.Sprintf("%s %q is not a recognized value", field, value)}
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
