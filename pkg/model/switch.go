// Package model defines the standardized switch object — the vendor-neutral
// contract between the builders, the validator, and the rendering engine.
package model

import "encoding/json"

// Switch roles
const (
	RoleTOR1 = "TOR1"
	RoleTOR2 = "TOR2"
	RoleBMC  = "BMC"
)

// Deployment patterns
const (
	PatternFullyConverged = "fully_converged"
	PatternSwitched       = "switched"
	PatternSwitchless     = "switchless"
)

// JumboMTU is the default MTU applied to host-facing and storage interfaces.
const JumboMTU = 9216

// SwitchConfig is the standardized per-switch configuration object.
// It is created fresh per switch entry, never mutated after hand-off to the
// validator, and discarded after rendering.
type SwitchConfig struct {
	Switch       SwitchInfo          `json:"switch"`
	VLANs        []VLAN              `json:"vlans,omitempty"`
	Interfaces   []Interface         `json:"interfaces,omitempty"`
	PortChannels []PortChannel       `json:"port_channels,omitempty"`
	MLAG         *MLAG               `json:"mlag,omitempty"`
	BGP          *BGP                `json:"bgp,omitempty"`
	PrefixLists  map[string][]string `json:"prefix_lists,omitempty"`
	StaticRoutes []StaticRoute       `json:"static_routes,omitempty"`
}

// SwitchInfo identifies the switch and selects the template set.
type SwitchInfo struct {
	Vendor            string `json:"vendor"`
	Firmware          string `json:"firmware"`
	Model             string `json:"model"`
	Hostname          string `json:"hostname"`
	Role              string `json:"role"`
	DeploymentPattern string `json:"deployment_pattern,omitempty"`
	Version           string `json:"version,omitempty"`
	Site              string `json:"site,omitempty"`
}

// UnmarshalJSON accepts legacy field names alongside the current ones:
// "make" for vendor, "os" for firmware, "type" for role. Exports from older
// tooling and the wizard UI still carry them.
func (s *SwitchInfo) UnmarshalJSON(data []byte) error {
	type plain SwitchInfo
	aux := struct {
		*plain
		Make string `json:"make"`
		OS   string `json:"os"`
		Type string `json:"type"`
	}{plain: (*plain)(s)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if s.Vendor == "" && aux.Make != "" {
		s.Vendor = aux.Make
	}
	if s.Firmware == "" && aux.OS != "" {
		s.Firmware = aux.OS
	}
	if s.Role == "" && aux.Type != "" {
		s.Role = aux.Type
	}
	return nil
}

// IsStandardFormat reports whether raw JSON looks like a per-switch standard
// object rather than a lab topology description.
func IsStandardFormat(raw []byte) bool {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(raw, &probe); err != nil {
		return false
	}

	standard := false
	for _, k := range []string{"switch", "vlans", "interfaces"} {
		if _, ok := probe[k]; ok {
			standard = true
			break
		}
	}
	for _, k := range []string{"Version", "Description", "InputData"} {
		if _, ok := probe[k]; ok {
			return false
		}
	}
	return standard
}

// VLANIDs returns the set of declared VLAN IDs.
func (c *SwitchConfig) VLANIDs() map[int]bool {
	ids := make(map[int]bool, len(c.VLANs))
	for _, v := range c.VLANs {
		ids[v.ID] = true
	}
	return ids
}

// StorageVLANIDs returns the IDs of storage-purpose VLANs.
func (c *SwitchConfig) StorageVLANIDs() []int {
	var ids []int
	for _, v := range c.VLANs {
		if v.Purpose == PurposeStorage1 || v.Purpose == PurposeStorage2 {
			ids = append(ids, v.ID)
		}
	}
	return ids
}

// PeerLink returns the MLAG peer-link port-channel, or nil if none is declared.
func (c *SwitchConfig) PeerLink() *PortChannel {
	for i := range c.PortChannels {
		if c.PortChannels[i].VPCPeerLink {
			return &c.PortChannels[i]
		}
	}
	return nil
}

// Loopback returns the loopback interface, or nil if none is declared.
func (c *SwitchConfig) Loopback() *Interface {
	for i := range c.Interfaces {
		if c.Interfaces[i].Type == InterfaceLoopback {
			return &c.Interfaces[i]
		}
	}
	return nil
}
