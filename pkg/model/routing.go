package model

// BGP holds the dynamic routing block. The AS number is a uint32 so both
// 16-bit and 32-bit AS numbers survive without truncation. RouterID always
// equals the loopback interface address.
type BGP struct {
	ASN          uint32        `json:"asn"`
	RouterID     string        `json:"router_id"`
	Networks     []string      `json:"networks,omitempty"`
	MaximumPaths int           `json:"maximum_paths,omitempty"`
	Neighbors    []BGPNeighbor `json:"neighbors,omitempty"`
}

// BGPNeighbor is one BGP peer.
type BGPNeighbor struct {
	Address       string `json:"address"`
	RemoteAS      uint32 `json:"remote_as"`
	Description   string `json:"description,omitempty"`
	UpdateSource  string `json:"update_source,omitempty"`
	PrefixListIn  string `json:"prefix_list_in,omitempty"`
	PrefixListOut string `json:"prefix_list_out,omitempty"`
}

// StaticRoute is one static route entry. A switch object carries either BGP
// or static routes, never both.
type StaticRoute struct {
	Prefix      string `json:"prefix"`
	NextHop     string `json:"next_hop"`
	Description string `json:"description,omitempty"`
}

// DefaultRoutePrefixList is the prefix list name attached inbound on border
// neighbors so only a default route is accepted.
const DefaultRoutePrefixList = "DEFAULT-ROUTE"
