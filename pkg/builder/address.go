package builder

import (
	"fmt"

	"github.com/fabricgen-network/fabricgen/pkg/lab"
	"github.com/fabricgen-network/fabricgen/pkg/platform"
	"github.com/fabricgen-network/fabricgen/pkg/util"
)

// p2pLink is one /31 point-to-point pair. Local is this switch's side.
type p2pLink struct {
	Local   string
	Peer    string
	Network string // network/cidr notation for BGP advertisement
}

// addressPlan holds every derived address for one switch: the loopback, the
// border point-to-point pairs, and the inter-switch link. Absent pools leave
// the corresponding field nil or empty; consumers decide whether that is
// fatal for them.
type addressPlan struct {
	Loopback    string // /32 host address, empty when no loopback pool exists
	LoopbackNet string
	Border1     *p2pLink
	Border2     *p2pLink
	IBGP        *p2pLink
}

// deriveAddresses computes the switch's point-to-point and loopback
// addressing from the topology's address pools. All addresses are carved
// deterministically by role position so that both switches of a pair derive
// each other's side without coordination.
func deriveAddresses(topo *lab.Topology, hostname, role string) (*addressPlan, error) {
	idx := roleIndex(role)
	if idx < 0 {
		return &addressPlan{}, nil
	}

	plan := &addressPlan{}

	if lo := topo.SupernetByGroupPrefix(platform.GroupLoopback); lo != nil {
		base := util.ComputeNetworkAddr(lo.IPv4.Network, lo.IPv4.Cidr)
		ip := util.OffsetAddr(base, idx)
		if ip == "" {
			return nil, util.NewBuildError(hostname, "Supernets."+lo.GroupName,
				fmt.Sprintf("loopback pool %s/%d too small", lo.IPv4.Network, lo.IPv4.Cidr))
		}
		plan.Loopback = ip
		plan.LoopbackNet = ip + "/32"
	}

	var err error
	if plan.Border1, err = borderLink(topo, hostname, platform.GroupP2PBorder1, idx); err != nil {
		return nil, err
	}
	if plan.Border2, err = borderLink(topo, hostname, platform.GroupP2PBorder2, idx); err != nil {
		return nil, err
	}

	if ib := topo.SupernetByGroupPrefix(platform.GroupP2PIBGP); ib != nil {
		base := util.ComputeNetworkAddr(ib.IPv4.Network, ib.IPv4.Cidr)
		local := util.OffsetAddr(base, idx)
		peer := util.ComputeNeighborIP(local, 31)
		if local == "" || peer == "" {
			return nil, util.NewBuildError(hostname, "Supernets."+ib.GroupName,
				fmt.Sprintf("inter-switch pool %s/%d too small", ib.IPv4.Network, ib.IPv4.Cidr))
		}
		plan.IBGP = &p2pLink{
			Local:   local,
			Peer:    peer,
			Network: fmt.Sprintf("%s/%d", base, ib.IPv4.Cidr),
		}
	}

	return plan, nil
}

// borderLink carves the switch's /31 out of a border point-to-point pool.
// Pairs are allocated in role order; within each pair the border device takes
// the even address and the switch the odd one.
func borderLink(topo *lab.Topology, hostname, groupPrefix string, idx int) (*p2pLink, error) {
	net := topo.SupernetByGroupPrefix(groupPrefix)
	if net == nil {
		return nil, nil
	}

	base := util.ComputeNetworkAddr(net.IPv4.Network, net.IPv4.Cidr)
	local := util.OffsetAddr(base, 2*idx+1)
	peer := util.ComputeNeighborIP(local, 31)
	if local == "" || peer == "" {
		return nil, util.NewBuildError(hostname, "Supernets."+net.GroupName,
			fmt.Sprintf("point-to-point pool %s/%d too small for role pair %d",
				net.IPv4.Network, net.IPv4.Cidr, idx))
	}

	return &p2pLink{
		Local:   local,
		Peer:    peer,
		Network: peer + "/31",
	}, nil
}
