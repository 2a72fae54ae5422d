package model

// Interface types
const (
	InterfaceAccess   = "access"
	InterfaceTrunk    = "trunk"
	InterfaceL3       = "l3"
	InterfaceLoopback = "loopback"
)

// Interface represents one physical or loopback interface. Port ranges from
// the interface templates are expanded to concrete entries by the builder, so
// every entry here names exactly one interface.
type Interface struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Description string `json:"description,omitempty"`
	MTU         int    `json:"mtu,omitempty"`
	QoS         bool   `json:"qos,omitempty"`
	Shutdown    bool   `json:"shutdown,omitempty"`

	// L2 membership
	AccessVLAN  int   `json:"access_vlan,omitempty"`
	NativeVLAN  int   `json:"native_vlan,omitempty"`
	TaggedVLANs []int `json:"tagged_vlans,omitempty"`

	// L3 addressing
	IP   string `json:"ip,omitempty"`
	Cidr int    `json:"cidr,omitempty"`

	// Port-channel membership (0 = standalone)
	ChannelGroup int `json:"channel_group,omitempty"`
}

// PortChannel represents an aggregated link. Exactly one port-channel carries
// vpc_peer_link when MLAG is configured; that channel never carries
// storage-purpose VLANs.
type PortChannel struct {
	ID          int      `json:"id"`
	Description string   `json:"description,omitempty"`
	Mode        string   `json:"mode"` // trunk or l3
	Members     []string `json:"members"`
	VPCPeerLink bool     `json:"vpc_peer_link,omitempty"`
	MLAGID      int      `json:"mlag_id,omitempty"`

	NativeVLAN  int   `json:"native_vlan,omitempty"`
	TaggedVLANs []int `json:"tagged_vlans,omitempty"`

	IP   string `json:"ip,omitempty"`
	Cidr int    `json:"cidr,omitempty"`
	MTU  int    `json:"mtu,omitempty"`
}

// MLAG describes the redundant-pair peering (Cisco vPC, Dell VLT).
type MLAG struct {
	Domain          int    `json:"domain"`
	PeerLinkChannel int    `json:"peer_link_channel"`
	PeerIP          string `json:"peer_ip"`
	SourceIP        string `json:"source_ip"`
	RolePriority    int    `json:"role_priority"`
}
