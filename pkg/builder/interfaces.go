package builder

import (
	"fmt"

	"github.com/fabricgen-network/fabricgen/pkg/model"
	"github.com/fabricgen-network/fabricgen/pkg/spec"
	"github.com/fabricgen-network/fabricgen/pkg/util"
)

// buildInterfaces expands the template sections that apply to this switch
// into concrete interface entries. Port ranges become one entry per port;
// symbolic VLAN references resolve against the VLAN plan.
func buildInterfaces(tmpl *spec.Template, sections []string, hostname, role string,
	vlans *vlanPlan, addrs *addressPlan) ([]model.Interface, error) {

	var out []model.Interface
	for _, section := range sections {
		for _, it := range tmpl.Section(section) {
			entries, err := expandTemplate(it, hostname, role, vlans, addrs)
			if err != nil {
				return nil, err
			}
			out = append(out, entries...)
		}
	}
	return out, nil
}

func expandTemplate(it spec.InterfaceTemplate, hostname, role string,
	vlans *vlanPlan, addrs *addressPlan) ([]model.Interface, error) {

	switch it.Role {
	case spec.RoleLoopback:
		return loopbackInterface(it, addrs), nil
	case spec.RoleUplinkBorder1:
		return borderInterface(it, addrs.Border1), nil
	case spec.RoleUplinkBorder2:
		return borderInterface(it, addrs.Border2), nil
	}

	names, err := util.ExpandInterfaceRange(it.Name)
	if err != nil {
		return nil, util.NewBuildError(hostname, "interface_templates",
			fmt.Sprintf("bad interface range %q: %v", it.Name, err))
	}

	base := model.Interface{
		Type:         it.Type,
		Description:  it.Description,
		MTU:          it.MTU,
		QoS:          it.QoS,
		Shutdown:     it.Shutdown,
		ChannelGroup: it.ChannelGroup,
	}

	if it.AccessVLAN != "" {
		id, err := vlans.resolveOne(hostname, "access_vlan", it.AccessVLAN, role)
		if err != nil {
			return nil, err
		}
		base.AccessVLAN = id
	}
	if it.NativeVLAN != "" {
		id, err := vlans.resolveOne(hostname, "native_vlan", it.NativeVLAN, role)
		if err != nil {
			return nil, err
		}
		base.NativeVLAN = id
	}
	if len(it.TaggedVLANs) > 0 {
		ids, err := vlans.resolveTagged(hostname, it.TaggedVLANs)
		if err != nil {
			return nil, err
		}
		base.TaggedVLANs = ids
	}

	out := make([]model.Interface, 0, len(names))
	for _, name := range names {
		entry := base
		entry.Name = name
		out = append(out, entry)
	}
	return out, nil
}

// loopbackInterface emits the loopback only when a loopback pool exists in
// the topology; without one the switch simply has no loopback.
func loopbackInterface(it spec.InterfaceTemplate, addrs *addressPlan) []model.Interface {
	if addrs.Loopback == "" {
		return nil
	}
	return []model.Interface{{
		Name:        it.Name,
		Type:        model.InterfaceLoopback,
		Description: it.Description,
		IP:          addrs.Loopback,
		Cidr:        32,
	}}
}

// borderInterface emits a border uplink. When the matching point-to-point
// pool is absent the port is kept shut down and unaddressed rather than
// dropped, so the physical layout stays visible in the output.
func borderInterface(it spec.InterfaceTemplate, link *p2pLink) []model.Interface {
	entry := model.Interface{
		Name:        it.Name,
		Type:        model.InterfaceL3,
		Description: it.Description,
		MTU:         it.MTU,
	}
	if link == nil {
		entry.Shutdown = true
		return []model.Interface{entry}
	}
	entry.IP = link.Local
	entry.Cidr = 31
	return []model.Interface{entry}
}

// buildPortChannels expands the template's aggregated links. The peer-link
// channel never carries storage VLANs regardless of what the template tags;
// storage traffic must stay local to each switch of the pair.
func buildPortChannels(tmpl *spec.Template, hostname, role string,
	vlans *vlanPlan, addrs *addressPlan) ([]model.PortChannel, error) {

	var out []model.PortChannel
	for _, pt := range tmpl.PortChannels {
		members, err := util.ExpandInterfaceRange(pt.Members)
		if err != nil {
			return nil, util.NewBuildError(hostname, "port_channels",
				fmt.Sprintf("bad member range %q: %v", pt.Members, err))
		}

		pc := model.PortChannel{
			ID:          pt.ID,
			Description: pt.Description,
			Mode:        pt.Mode,
			Members:     members,
			MTU:         pt.MTU,
		}

		if pt.NativeVLAN != "" {
			id, err := vlans.resolveOne(hostname, "native_vlan", pt.NativeVLAN, role)
			if err != nil {
				return nil, err
			}
			pc.NativeVLAN = id
		}
		if len(pt.TaggedVLANs) > 0 {
			ids, err := vlans.resolveTagged(hostname, pt.TaggedVLANs)
			if err != nil {
				return nil, err
			}
			pc.TaggedVLANs = ids
		}

		switch pt.Role {
		case spec.ChannelPeerLink:
			pc.VPCPeerLink = true
			pc.TaggedVLANs = withoutStorage(pc.TaggedVLANs, vlans.storage)
		case spec.ChannelIBGP:
			// Without an inter-switch pool the channel stays unaddressed;
			// the member ports remain bundled either way.
			if addrs.IBGP != nil {
				pc.IP = addrs.IBGP.Local
				pc.Cidr = 31
			}
		}

		out = append(out, pc)
	}
	return out, nil
}

func withoutStorage(ids, storage []int) []int {
	drop := make(map[int]bool, len(storage))
	for _, id := range storage {
		drop[id] = true
	}
	var out []int
	for _, id := range ids {
		if !drop[id] {
			out = append(out, id)
		}
	}
	return out
}
