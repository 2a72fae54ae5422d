package builder

import (
	"fmt"
	"strings"

	"github.com/fabricgen-network/fabricgen/pkg/lab"
	"github.com/fabricgen-network/fabricgen/pkg/model"
	"github.com/fabricgen-network/fabricgen/pkg/platform"
	"github.com/fabricgen-network/fabricgen/pkg/util"
)

// BuildBMC produces the reduced standardized object for a BMC management
// switch: a fixed parking/native VLAN pair, the BMC management VLANs from
// the topology, host and uplink ports from the template's common section,
// and a static default route. No MLAG, no BGP, no prefix lists.
func (b *Builder) BuildBMC(entry lab.SwitchEntry, topo *lab.Topology, run *Run) (*model.SwitchConfig, error) {
	role := strings.ToUpper(entry.Type)
	if role != model.RoleBMC {
		return nil, util.NewBuildInputError(entry.Hostname, "Type",
			fmt.Sprintf("role %q is not the BMC role", entry.Type))
	}

	info := switchInfo(entry, run, role)
	tmpl, err := b.templates.Get(info.Vendor, info.Model)
	if err != nil {
		return nil, err
	}

	vlans, err := buildBMCVLANs(topo, info.Hostname)
	if err != nil {
		return nil, err
	}

	// BMC switches use only the common section; deployment patterns do not
	// change their port layout.
	interfaces, err := buildInterfaces(tmpl, []string{"common"}, info.Hostname, role, vlans, &addressPlan{})
	if err != nil {
		return nil, err
	}
	channels, err := buildPortChannels(tmpl, info.Hostname, role, vlans, &addressPlan{})
	if err != nil {
		return nil, err
	}

	cfg := &model.SwitchConfig{
		Switch:       info,
		VLANs:        vlans.vlans,
		Interfaces:   interfaces,
		PortChannels: channels,
		StaticRoutes: bmcStaticRoutes(topo),
	}

	util.WithSwitch(info.Hostname).Debug("built BMC switch object")
	return cfg, nil
}

// buildBMCVLANs assembles the minimal BMC VLAN table: the fixed parking and
// native VLANs plus every BMC-group supernet, whose management interface
// takes the highest usable address of the subnet.
func buildBMCVLANs(topo *lab.Topology, hostname string) (*vlanPlan, error) {
	plan := &vlanPlan{sets: make(map[string][]int)}

	plan.vlans = append(plan.vlans,
		model.VLAN{
			ID:       defaultUnusedVLAN,
			Name:     "UNUSED_VLAN",
			Purpose:  model.PurposeUnused,
			Shutdown: true,
		},
		model.VLAN{
			ID:      defaultNativeVLAN,
			Name:    "NATIVE_VLAN",
			Purpose: model.PurposeNative,
		},
	)
	plan.sets[platform.GroupUnused] = []int{defaultUnusedVLAN}
	plan.sets[platform.GroupNative] = []int{defaultNativeVLAN}

	for _, net := range topo.SupernetsBySymbol(platform.GroupBMC) {
		id := net.IPv4.VLANID
		if err := util.ValidateVLANID(id); err != nil {
			return nil, util.NewBuildError(hostname, "Supernets."+net.GroupName,
				fmt.Sprintf("VLANID %d: %v", id, err))
		}

		v := model.VLAN{
			ID:      id,
			Name:    supernetName(net),
			Purpose: model.PurposeBMC,
		}
		if net.IPv4.SwitchSVI {
			broadcast := util.ComputeBroadcastAddr(net.IPv4.Network, net.IPv4.Cidr)
			ip := util.OffsetAddr(broadcast, -1)
			if ip == "" {
				return nil, util.NewBuildError(hostname, "Supernets."+net.GroupName,
					fmt.Sprintf("cannot derive management address from %s/%d",
						net.IPv4.Network, net.IPv4.Cidr))
			}
			v.SVI = &model.SVI{IP: ip, Cidr: net.IPv4.Cidr}
		}

		plan.vlans = append(plan.vlans, v)
		plan.sets[platform.GroupBMC] = append(plan.sets[platform.GroupBMC], id)
	}

	if len(plan.sets[platform.GroupBMC]) == 0 {
		return nil, util.NewBuildError(hostname, "Supernets",
			"no BMC supernet declared for the BMC switch")
	}

	return plan, nil
}

func bmcStaticRoutes(topo *lab.Topology) []model.StaticRoute {
	for _, net := range topo.SupernetsBySymbol(platform.GroupBMC) {
		if net.IPv4.Gateway != "" {
			return []model.StaticRoute{{
				Prefix:      "0.0.0.0/0",
				NextHop:     net.IPv4.Gateway,
				Description: "DEFAULT_VIA_BMC_GW",
			}}
		}
	}
	return nil
}
