// Package lab parses the lab topology description — the site-specific input
// document listing switches and supernets that the builders convert into
// standardized switch objects.
package lab

import (
	"strings"

	"github.com/fabricgen-network/fabricgen/pkg/model"
	"github.com/fabricgen-network/fabricgen/pkg/platform"
)

// Topology is the top-level lab input document.
type Topology struct {
	Version     string    `json:"Version"`
	Description string    `json:"Description"`
	InputData   InputData `json:"InputData"`
}

// InputData carries the environment, switch, and supernet declarations.
type InputData struct {
	MainEnvData []EnvData      `json:"MainEnvData"`
	Switches    []SwitchEntry  `json:"Switches"`
	Supernets   []SupernetEntry `json:"Supernets"`
}

// EnvData holds site-wide settings.
type EnvData struct {
	Site              string `json:"Site"`
	DeploymentPattern string `json:"DeploymentPattern"`
}

// SwitchEntry declares one switch in the topology.
type SwitchEntry struct {
	Make     string `json:"Make"`
	Model    string `json:"Model"`
	Type     string `json:"Type"` // role: TOR1, TOR2, BMC, Border1, Border2
	Hostname string `json:"Hostname"`
	ASN      uint32 `json:"ASN"`
	Firmware string `json:"Firmware"` // firmware version hint, e.g. "10.4.5"
}

// SupernetEntry declares one named IP pool tagged with a symbolic role.
type SupernetEntry struct {
	GroupName string `json:"GroupName"`
	Name      string `json:"Name"`
	IPv4      IPv4   `json:"IPv4"`
}

// IPv4 holds the address details of a supernet.
type IPv4 struct {
	Name      string `json:"Name"`
	VLANID    int    `json:"VLANID"`
	Network   string `json:"Network"`
	Cidr      int    `json:"Cidr"`
	Gateway   string `json:"Gateway"`
	SwitchSVI bool   `json:"SwitchSVI"`
}

// Site returns the site name from the environment data, or empty.
func (t *Topology) Site() string {
	if len(t.InputData.MainEnvData) == 0 {
		return ""
	}
	return t.InputData.MainEnvData[0].Site
}

// DeploymentPattern returns the normalized deployment pattern. The
// customer-facing "HyperConverged" name maps to fully_converged. Defaults to
// fully_converged when unset.
func (t *Topology) DeploymentPattern() string {
	raw := ""
	if len(t.InputData.MainEnvData) > 0 {
		raw = t.InputData.MainEnvData[0].DeploymentPattern
	}
	if raw == "" {
		return model.PatternFullyConverged
	}
	if p, match := platform.NormalizePattern(raw); match != platform.MatchNone {
		return p
	}
	return strings.ToLower(raw)
}

// SwitchesByType returns the switch entries with the given role.
func (t *Topology) SwitchesByType(role string) []SwitchEntry {
	var out []SwitchEntry
	for _, sw := range t.InputData.Switches {
		if strings.EqualFold(sw.Type, role) {
			out = append(out, sw)
		}
	}
	return out
}

// TORSwitches returns the entries that go through the standard TOR builder.
func (t *Topology) TORSwitches() []SwitchEntry {
	var out []SwitchEntry
	for _, sw := range t.InputData.Switches {
		role := strings.ToUpper(sw.Type)
		if role == model.RoleTOR1 || role == model.RoleTOR2 {
			out = append(out, sw)
		}
	}
	return out
}

// BMCSwitches returns the BMC entries. An empty result is not an error — the
// caller simply skips the BMC builder.
func (t *Topology) BMCSwitches() []SwitchEntry {
	return t.SwitchesByType(model.RoleBMC)
}

// SupernetsBySymbol returns the supernets whose group classifies to the given
// symbolic VLAN-set key, in declaration order.
func (t *Topology) SupernetsBySymbol(symbol string) []SupernetEntry {
	var out []SupernetEntry
	for _, net := range t.InputData.Supernets {
		if platform.ClassifyVLANGroup(net.GroupName) == symbol {
			out = append(out, net)
		}
	}
	return out
}

// SupernetByGroupPrefix returns the first supernet whose GroupName starts
// with prefix (case-insensitive), or nil.
func (t *Topology) SupernetByGroupPrefix(prefix string) *SupernetEntry {
	upper := strings.ToUpper(prefix)
	for i, net := range t.InputData.Supernets {
		if strings.HasPrefix(strings.ToUpper(net.GroupName), upper) {
			return &t.InputData.Supernets[i]
		}
	}
	return nil
}

// ASNByRole builds the role → AS number map for one conversion run. It is
// assembled once by the caller and passed to every builder invocation so that
// no cross-switch state lives inside the builders.
func (t *Topology) ASNByRole() map[string]uint32 {
	m := make(map[string]uint32)
	for _, sw := range t.InputData.Switches {
		if sw.ASN != 0 {
			m[strings.ToUpper(sw.Type)] = sw.ASN
		}
	}
	return m
}
