// Package spec loads the switch interface templates: per hardware-model,
// per deployment-pattern port-role definitions declared in JSON files.
//
// Template files live at <vendor>/<MODEL>.json in the loader's filesystem,
// shipped embedded in the binary. VLAN references inside
// them are symbolic ("M", "C", "S", "NATIVE", "UNUSED"); the builder resolves
// them to concrete VLAN IDs from the topology's supernets.
package spec

// Interface roles used by the templates.
const (
	RoleHost          = "host"
	RoleUplinkBorder1 = "uplink_border1"
	RoleUplinkBorder2 = "uplink_border2"
	RolePeerLink      = "peerlink"
	RoleUplink        = "uplink"
	RoleUnused        = "unused"
	RoleLoopback      = "loopback"
)

// Port-channel roles.
const (
	ChannelPeerLink = "peerlink"
	ChannelIBGP     = "ibgp"
	ChannelUplink   = "uplink"
)

// Template is one hardware model's port layout definition.
type Template struct {
	Model              string                         `json:"model"`
	InterfaceTemplates map[string][]InterfaceTemplate `json:"interface_templates"`
	PortChannels       []PortChannelTemplate          `json:"port_channels"`
}

// InterfaceTemplate declares a port or port range with symbolic VLAN
// references.
type InterfaceTemplate struct {
	Name         string   `json:"name"` // single interface or range, e.g. "Ethernet1/1-16"
	Role         string   `json:"role"`
	Type         string   `json:"type"` // access, trunk, l3, loopback
	Description  string   `json:"description,omitempty"`
	MTU          int      `json:"mtu,omitempty"`
	QoS          bool     `json:"qos,omitempty"`
	Shutdown     bool     `json:"shutdown,omitempty"`
	AccessVLAN   string   `json:"access_vlan,omitempty"`
	NativeVLAN   string   `json:"native_vlan,omitempty"`
	TaggedVLANs  []string `json:"tagged_vlans,omitempty"`
	ChannelGroup int      `json:"channel_group,omitempty"`
}

// PortChannelTemplate declares an aggregated link with symbolic VLAN
// references.
type PortChannelTemplate struct {
	ID          int      `json:"id"`
	Role        string   `json:"role"`
	Mode        string   `json:"mode"`
	Members     string   `json:"members"` // interface range
	Description string   `json:"description,omitempty"`
	NativeVLAN  string   `json:"native_vlan,omitempty"`
	TaggedVLANs []string `json:"tagged_vlans,omitempty"`
	MTU         int      `json:"mtu,omitempty"`
}

// Section returns the interface templates for one section name (a deployment
// pattern or "common"). Missing sections return nil.
func (t *Template) Section(name string) []InterfaceTemplate {
	if t.InterfaceTemplates == nil {
		return nil
	}
	return t.InterfaceTemplates[name]
}

// HasSection reports whether the template declares the named section.
func (t *Template) HasSection(name string) bool {
	_, ok := t.InterfaceTemplates[name]
	return ok
}
