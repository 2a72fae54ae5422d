package builder

import (
	"fmt"
	"sort"

	"github.com/fabricgen-network/fabricgen/pkg/lab"
	"github.com/fabricgen-network/fabricgen/pkg/model"
	"github.com/fabricgen-network/fabricgen/pkg/platform"
	"github.com/fabricgen-network/fabricgen/pkg/util"
)

// Built-in parking and native VLANs, used when the topology does not declare
// its own UNUSED/NATIVE supernets.
const (
	defaultUnusedVLAN = 2
	defaultNativeVLAN = 99
)

// vlanPlan is the outcome of VLAN construction: the concrete VLAN list for
// the switch object plus the symbol → VLAN-ID sets the interface templates
// resolve against.
type vlanPlan struct {
	vlans []model.VLAN

	// sets maps a symbolic VLAN-set key (M, C, S, NATIVE, UNUSED, BMC) to
	// the VLAN IDs it resolves to, in supernet declaration order.
	sets map[string][]int

	// storage holds the storage VLAN IDs in declaration order, so the
	// first storage supernet serves the first role of the pair.
	storage []int
}

// buildVLANs walks the topology's supernets in declaration order and
// constructs the switch's VLAN table. Supernets classified to the
// point-to-point or loopback pools carry no VLANs and are skipped here.
func buildVLANs(topo *lab.Topology, role, vendor string) (*vlanPlan, error) {
	plan := &vlanPlan{sets: make(map[string][]int)}
	defaults := model.RoleDefaultsFor(role)

	storageIndex := 0
	for _, net := range topo.InputData.Supernets {
		symbol := platform.ClassifyVLANGroup(net.GroupName)
		if symbol == "" {
			continue
		}

		id := net.IPv4.VLANID
		if err := util.ValidateVLANID(id); err != nil {
			return nil, util.NewBuildInputError("", "Supernets."+net.GroupName,
				fmt.Sprintf("VLANID %d: %v", id, err))
		}

		v := model.VLAN{
			ID:      id,
			Name:    supernetName(net),
			Purpose: vlanPurpose(symbol, storageIndex),
		}
		if symbol == platform.GroupStorage {
			plan.storage = append(plan.storage, id)
			storageIndex++
		}
		if symbol == platform.GroupUnused {
			v.Shutdown = true
		}

		if net.IPv4.SwitchSVI && net.IPv4.Gateway != "" && defaults.HasRedundancy {
			svi, err := buildSVI(net, role, vendor, defaults)
			if err != nil {
				return nil, err
			}
			v.SVI = svi
		}

		plan.vlans = append(plan.vlans, v)
		plan.sets[symbol] = append(plan.sets[symbol], id)
	}

	// Parking and native VLANs are always present on a switch even when the
	// topology declares no pool for them.
	if len(plan.sets[platform.GroupUnused]) == 0 {
		plan.vlans = append(plan.vlans, model.VLAN{
			ID:       defaultUnusedVLAN,
			Name:     "UNUSED_VLAN",
			Purpose:  model.PurposeUnused,
			Shutdown: true,
		})
		plan.sets[platform.GroupUnused] = []int{defaultUnusedVLAN}
	}
	if len(plan.sets[platform.GroupNative]) == 0 {
		plan.vlans = append(plan.vlans, model.VLAN{
			ID:      defaultNativeVLAN,
			Name:    "NATIVE_VLAN",
			Purpose: model.PurposeNative,
		})
		plan.sets[platform.GroupNative] = []int{defaultNativeVLAN}
	}

	return plan, nil
}

// buildSVI attaches the routed interface for a gateway-bearing supernet.
// The switch owns a physical address offset from the network base by its
// role position; the supernet's gateway becomes the shared virtual address.
func buildSVI(net lab.SupernetEntry, role, vendor string, defaults model.RoleDefaults) (*model.SVI, error) {
	base := util.ComputeNetworkAddr(net.IPv4.Network, net.IPv4.Cidr)
	if base == "" {
		return nil, util.NewBuildInputError("", "Supernets."+net.GroupName+".Network",
			fmt.Sprintf("cannot derive network address from %q/%d", net.IPv4.Network, net.IPv4.Cidr))
	}

	// Physical SVI addresses sit just above the virtual gateway: the first
	// role of the pair takes network+2, the second network+3.
	offset := 2 + roleIndex(role)
	ip := util.OffsetAddr(base, offset)
	if ip == "" {
		return nil, util.NewBuildError("", "Supernets."+net.GroupName+".Network",
			fmt.Sprintf("supernet %s/%d too small for SVI addressing", base, net.IPv4.Cidr))
	}

	return &model.SVI{
		IP:   ip,
		Cidr: net.IPv4.Cidr,
		MTU:  model.JumboMTU,
		Redundancy: &model.Redundancy{
			Type:      platform.RedundancyProtocolFor(vendor),
			Group:     net.IPv4.VLANID,
			Priority:  defaults.GatewayPriority,
			VirtualIP: net.IPv4.Gateway,
		},
	}, nil
}

// vlanPurpose maps a symbolic VLAN-set key to the per-VLAN purpose label.
// Storage purposes alternate by declaration order.
func vlanPurpose(symbol string, storageIndex int) string {
	switch symbol {
	case platform.GroupManagement:
		return model.PurposeManagement
	case platform.GroupCompute:
		return model.PurposeCompute
	case platform.GroupStorage:
		if storageIndex%2 == 0 {
			return model.PurposeStorage1
		}
		return model.PurposeStorage2
	case platform.GroupUnused:
		return model.PurposeUnused
	case platform.GroupNative:
		return model.PurposeNative
	case platform.GroupBMC:
		return model.PurposeBMC
	}
	return ""
}

func supernetName(net lab.SupernetEntry) string {
	if net.IPv4.Name != "" {
		return util.SanitizeName(net.IPv4.Name)
	}
	if net.Name != "" {
		return util.SanitizeName(net.Name)
	}
	return util.SanitizeName(net.GroupName)
}

// resolveTagged resolves a list of symbolic VLAN references to the union of
// their VLAN-ID sets, sorted ascending. The S symbol expands to every
// storage VLAN.
func (p *vlanPlan) resolveTagged(hostname string, symbols []string) ([]int, error) {
	seen := make(map[int]bool)
	var out []int
	for _, sym := range symbols {
		ids, ok := p.sets[sym]
		if !ok || len(ids) == 0 {
			return nil, util.NewBuildError(hostname, "tagged_vlans",
				fmt.Sprintf("no supernet resolves VLAN group %q", sym))
		}
		for _, id := range ids {
			if !seen[id] {
				seen[id] = true
				out = append(out, id)
			}
		}
	}
	sort.Ints(out)
	return out, nil
}

// resolveOne resolves a symbolic reference to a single VLAN ID for access and
// native membership. The S symbol resolves role-indexed: the first role of
// the pair owns the first declared storage VLAN, the second the second.
func (p *vlanPlan) resolveOne(hostname, field, symbol, role string) (int, error) {
	if symbol == platform.GroupStorage {
		idx := roleIndex(role)
		if idx < 0 || idx >= len(p.storage) {
			return 0, util.NewBuildError(hostname, field,
				fmt.Sprintf("no storage supernet for role %s (have %d)", role, len(p.storage)))
		}
		return p.storage[idx], nil
	}

	ids, ok := p.sets[symbol]
	if !ok || len(ids) == 0 {
		return 0, util.NewBuildError(hostname, field,
			fmt.Sprintf("no supernet resolves VLAN group %q", symbol))
	}
	return ids[0], nil
}

// roleIndex returns a switch role's position in the redundant pair: 0 for
// the primary, 1 for the standby, -1 for unpaired roles.
func roleIndex(role string) int {
	switch role {
	case model.RoleTOR1:
		return 0
	case model.RoleTOR2:
		return 1
	}
	return -1
}
