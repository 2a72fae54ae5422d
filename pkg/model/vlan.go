package model

// VLAN purposes, derived from the supernet group classification.
const (
	PurposeManagement = "management"
	PurposeCompute    = "compute"
	PurposeStorage1   = "storage_1"
	PurposeStorage2   = "storage_2"
	PurposeUnused     = "unused"
	PurposeNative     = "native"
	PurposeBMC        = "bmc"
)

// VLAN represents one VLAN on a switch, optionally with a routed SVI.
type VLAN struct {
	ID       int    `json:"vlan_id"`
	Name     string `json:"name"`
	Purpose  string `json:"purpose,omitempty"`
	Shutdown bool   `json:"shutdown,omitempty"`
	SVI      *SVI   `json:"interface,omitempty"`
}

// SVI is the Layer-3 interface attached to a VLAN.
type SVI struct {
	IP         string      `json:"ip"`
	Cidr       int         `json:"cidr"`
	MTU        int         `json:"mtu,omitempty"`
	Redundancy *Redundancy `json:"redundancy,omitempty"`
}

// Redundancy is the active/standby gateway block on an SVI. The protocol
// (hsrp or vrrp) varies by vendor; the priorities are a pure function of the
// switch role.
type Redundancy struct {
	Type      string `json:"type"`
	Group     int    `json:"group"`
	Priority  int    `json:"priority"`
	VirtualIP string `json:"virtual_ip"`
}
