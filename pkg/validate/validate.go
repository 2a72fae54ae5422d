// Package validate checks standardized switch objects for internal
// consistency before rendering. Validation is a pure function of the object:
// it holds no state and reports every violation found, not just the first.
package validate

import (
	"fmt"

	"github.com/fabricgen-network/fabricgen/pkg/model"
	"github.com/fabricgen-network/fabricgen/pkg/util"
)

// Violation is one consistency failure. Check names the rule, Detail the
// offending data.
type Violation struct {
	Check  string
	Detail string
}

func (v Violation) String() string {
	return v.Check + ": " + v.Detail
}

// Validate runs every cross-reference check against the object and returns
// all violations found. An empty result means the object is safe to render.
func Validate(cfg *model.SwitchConfig) []Violation {
	var out []Violation

	out = append(out, checkVLANs(cfg)...)
	out = append(out, checkInterfaceRefs(cfg)...)
	out = append(out, checkPortChannels(cfg)...)
	out = append(out, checkMLAG(cfg)...)
	out = append(out, checkRouting(cfg)...)

	return out
}

// checkVLANs enforces VLAN ID uniqueness and bans VLAN 1.
func checkVLANs(cfg *model.SwitchConfig) []Violation {
	var out []Violation
	seen := make(map[int]bool)
	for _, v := range cfg.VLANs {
		if v.ID == 1 {
			out = append(out, Violation{"vlan-id", fmt.Sprintf("VLAN 1 must not be used (%q)", v.Name)})
		}
		if seen[v.ID] {
			out = append(out, Violation{"vlan-id", fmt.Sprintf("duplicate VLAN %d", v.ID)})
		}
		seen[v.ID] = true
	}
	return out
}

// checkInterfaceRefs verifies every VLAN referenced by an interface exists.
func checkInterfaceRefs(cfg *model.SwitchConfig) []Violation {
	var out []Violation
	ids := cfg.VLANIDs()

	ref := func(where string, id int) {
		if id != 0 && !ids[id] {
			out = append(out, Violation{"vlan-ref", fmt.Sprintf("%s references undeclared VLAN %d", where, id)})
		}
	}

	for _, ifc := range cfg.Interfaces {
		ref(ifc.Name+" access_vlan", ifc.AccessVLAN)
		ref(ifc.Name+" native_vlan", ifc.NativeVLAN)
		for _, id := range ifc.TaggedVLANs {
			ref(ifc.Name+" tagged_vlans", id)
		}
	}
	for _, pc := range cfg.PortChannels {
		where := fmt.Sprintf("port-channel %d", pc.ID)
		ref(where+" native_vlan", pc.NativeVLAN)
		for _, id := range pc.TaggedVLANs {
			ref(where+" tagged_vlans", id)
		}
	}
	return out
}

// checkPortChannels verifies channel members against declared interfaces and
// that member channel-group assignments point back at a declared channel.
func checkPortChannels(cfg *model.SwitchConfig) []Violation {
	var out []Violation

	declared := make(map[string]bool, len(cfg.Interfaces))
	for _, ifc := range cfg.Interfaces {
		declared[ifc.Name] = true
	}
	channels := make(map[int]bool, len(cfg.PortChannels))
	for _, pc := range cfg.PortChannels {
		channels[pc.ID] = true
		if len(pc.Members) == 0 {
			out = append(out, Violation{"channel-member",
				fmt.Sprintf("port-channel %d has no member interfaces", pc.ID)})
		}
		for _, m := range pc.Members {
			if !declared[m] {
				out = append(out, Violation{"channel-member",
					fmt.Sprintf("port-channel %d member %s is not a declared interface", pc.ID, m)})
			}
		}
	}
	for _, ifc := range cfg.Interfaces {
		if ifc.ChannelGroup != 0 && !channels[ifc.ChannelGroup] {
			out = append(out, Violation{"channel-member",
				fmt.Sprintf("%s joins undeclared port-channel %d", ifc.Name, ifc.ChannelGroup)})
		}
	}
	return out
}

// checkMLAG requires exactly one peer-link channel when MLAG is configured
// and keeps storage VLANs off it.
func checkMLAG(cfg *model.SwitchConfig) []Violation {
	if cfg.MLAG == nil {
		return nil
	}
	var out []Violation

	var peerLinks []*model.PortChannel
	for i := range cfg.PortChannels {
		if cfg.PortChannels[i].VPCPeerLink {
			peerLinks = append(peerLinks, &cfg.PortChannels[i])
		}
	}
	if len(peerLinks) != 1 {
		out = append(out, Violation{"peer-link",
			fmt.Sprintf("MLAG requires exactly one peer-link channel, found %d", len(peerLinks))})
		return out
	}

	pl := peerLinks[0]
	if pl.ID != cfg.MLAG.PeerLinkChannel {
		out = append(out, Violation{"peer-link",
			fmt.Sprintf("MLAG names channel %d but peer-link flag is on channel %d",
				cfg.MLAG.PeerLinkChannel, pl.ID)})
	}

	storage := make(map[int]bool)
	for _, id := range cfg.StorageVLANIDs() {
		storage[id] = true
	}
	for _, id := range pl.TaggedVLANs {
		if storage[id] {
			out = append(out, Violation{"peer-link",
				fmt.Sprintf("storage VLAN %d must not ride the peer-link", id)})
		}
	}
	return out
}

// checkRouting enforces router-id/loopback equality, prefix-list reference
// existence, and BGP/static mutual exclusion.
func checkRouting(cfg *model.SwitchConfig) []Violation {
	var out []Violation

	if cfg.BGP != nil && len(cfg.StaticRoutes) > 0 {
		out = append(out, Violation{"routing", "bgp and static_routes are mutually exclusive"})
	}
	if cfg.BGP == nil {
		return out
	}

	if err := util.ValidateASN(int64(cfg.BGP.ASN)); err != nil {
		out = append(out, Violation{"bgp-asn", err.Error()})
	}

	lo := cfg.Loopback()
	if lo == nil {
		out = append(out, Violation{"router-id", "BGP configured without a loopback interface"})
	} else if cfg.BGP.RouterID != lo.IP {
		out = append(out, Violation{"router-id",
			fmt.Sprintf("router-id %s does not equal loopback address %s", cfg.BGP.RouterID, lo.IP)})
	}

	var loAdvertised bool
	for _, n := range cfg.BGP.Networks {
		if _, _, err := util.ParseIPWithMask(n); err != nil {
			out = append(out, Violation{"bgp-network", fmt.Sprintf("advertised network %q: %v", n, err)})
			continue
		}
		if lo != nil {
			if ip, mask := util.SplitIPMask(n); ip == lo.IP && mask == 32 {
				loAdvertised = true
			}
		}
	}
	if lo != nil && !loAdvertised {
		out = append(out, Violation{"bgp-network",
			fmt.Sprintf("loopback %s/32 is not advertised", lo.IP)})
	}

	for _, n := range cfg.BGP.Neighbors {
		for _, name := range []string{n.PrefixListIn, n.PrefixListOut} {
			if name == "" {
				continue
			}
			if _, ok := cfg.PrefixLists[name]; !ok {
				out = append(out, Violation{"prefix-list",
					fmt.Sprintf("neighbor %s references undeclared prefix list %q", n.Address, name)})
			}
		}
	}
	return out
}
