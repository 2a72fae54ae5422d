package builder

import (
	"fmt"

	"github.com/fabricgen-network/fabricgen/pkg/lab"
	"github.com/fabricgen-network/fabricgen/pkg/model"
	"github.com/fabricgen-network/fabricgen/pkg/platform"
	"github.com/fabricgen-network/fabricgen/pkg/util"
)

const defaultMaximumPaths = 8

// buildBGP assembles the dynamic routing block for a switch entry that
// carries an AS number. The router-id is always the loopback address, the
// advertised networks cover the loopback, the point-to-point links, and
// every routed VLAN, and the neighbor list covers the border devices plus
// the other switch of the pair.
func buildBGP(entry lab.SwitchEntry, run *Run, role string,
	vlans *vlanPlan, addrs *addressPlan) (*model.BGP, map[string][]string, error) {

	hostname := entry.Hostname
	if addrs.Loopback == "" {
		return nil, nil, util.NewBuildError(hostname, "Supernets",
			"BGP requires a LOOPBACK0 supernet for the router-id")
	}

	bgp := &model.BGP{
		ASN:          entry.ASN,
		RouterID:     addrs.Loopback,
		MaximumPaths: defaultMaximumPaths,
	}

	bgp.Networks = append(bgp.Networks, addrs.LoopbackNet)
	for _, link := range []*p2pLink{addrs.Border1, addrs.Border2, addrs.IBGP} {
		if link != nil {
			bgp.Networks = append(bgp.Networks, link.Network)
		}
	}
	for _, v := range vlans.vlans {
		if v.SVI == nil {
			continue
		}
		base := util.ComputeNetworkAddr(v.SVI.IP, v.SVI.Cidr)
		bgp.Networks = append(bgp.Networks, fmt.Sprintf("%s/%d", base, v.SVI.Cidr))
	}

	for _, b := range []struct {
		role string
		link *p2pLink
	}{
		{"BORDER1", addrs.Border1},
		{"BORDER2", addrs.Border2},
	} {
		asn, declared := run.ASNByRole[b.role]
		if !declared {
			continue
		}
		if b.link == nil {
			return nil, nil, util.NewBuildError(hostname, "Supernets",
				fmt.Sprintf("switch entry %s declared but no %s supernet provides its link address",
					b.role, "P2P_"+b.role))
		}
		bgp.Neighbors = append(bgp.Neighbors, model.BGPNeighbor{
			Address:      b.link.Peer,
			RemoteAS:     asn,
			Description:  "TO_" + b.role,
			PrefixListIn: model.DefaultRoutePrefixList,
		})
	}

	if addrs.IBGP != nil {
		peerRole := model.PairedRole(role)
		peerASN := entry.ASN
		if asn, ok := run.ASNByRole[peerRole]; ok {
			peerASN = asn
		}
		bgp.Neighbors = append(bgp.Neighbors, model.BGPNeighbor{
			Address:      addrs.IBGP.Peer,
			RemoteAS:     peerASN,
			Description:  "TO_" + peerRole,
			UpdateSource: addrs.IBGP.Local,
		})
	}

	prefixLists := map[string][]string{
		model.DefaultRoutePrefixList: {"permit 0.0.0.0/0"},
	}
	return bgp, prefixLists, nil
}

// buildStaticRoutes is the fallback when the switch entry carries no AS
// number: a default route through the management gateway, when one exists.
func buildStaticRoutes(topo *lab.Topology) []model.StaticRoute {
	for _, net := range topo.SupernetsBySymbol(platform.GroupManagement) {
		if net.IPv4.Gateway != "" {
			return []model.StaticRoute{{
				Prefix:      "0.0.0.0/0",
				NextHop:     net.IPv4.Gateway,
				Description: "DEFAULT_VIA_MGMT",
			}}
		}
	}
	return nil
}
