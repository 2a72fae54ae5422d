// Package builder converts lab topology switch entries into standardized
// switch objects. The standard-form builder handles the TOR pair; a reduced
// variant handles the optional BMC management switch. Each invocation is a
// pure function of the entry, the topology, and the run-scoped state passed
// in by the caller.
package builder

import (
	"fmt"
	"strings"

	"github.com/fabricgen-network/fabricgen/pkg/lab"
	"github.com/fabricgen-network/fabricgen/pkg/model"
	"github.com/fabricgen-network/fabricgen/pkg/platform"
	"github.com/fabricgen-network/fabricgen/pkg/spec"
	"github.com/fabricgen-network/fabricgen/pkg/util"
)

const mlagDomain = 1

// Builder turns topology switch entries into standardized switch objects.
// It holds only the immutable template store and is safe for concurrent use.
type Builder struct {
	templates *spec.Loader
}

// New creates a builder over the given template store.
func New(templates *spec.Loader) *Builder {
	return &Builder{templates: templates}
}

// Build produces the standardized object for one TOR switch entry.
func (b *Builder) Build(entry lab.SwitchEntry, topo *lab.Topology, run *Run) (*model.SwitchConfig, error) {
	role := strings.ToUpper(entry.Type)
	if roleIndex(role) < 0 {
		return nil, util.NewBuildInputError(entry.Hostname, "Type",
			fmt.Sprintf("role %q is not a TOR role", entry.Type))
	}

	info := switchInfo(entry, run, role)
	log := util.WithSwitch(info.Hostname)

	tmpl, err := b.templates.Get(info.Vendor, info.Model)
	if err != nil {
		return nil, err
	}
	if !tmpl.HasSection(run.Pattern) {
		return nil, util.NewBuildInputError(info.Hostname, "DeploymentPattern",
			fmt.Sprintf("template %s has no %q section", info.Model, run.Pattern))
	}

	vlans, err := buildVLANs(topo, role, info.Vendor)
	if err != nil {
		return nil, err
	}
	addrs, err := deriveAddresses(topo, info.Hostname, role)
	if err != nil {
		return nil, err
	}

	sections := []string{"common", run.Pattern}
	interfaces, err := buildInterfaces(tmpl, sections, info.Hostname, role, vlans, addrs)
	if err != nil {
		return nil, err
	}
	channels, err := buildPortChannels(tmpl, info.Hostname, role, vlans, addrs)
	if err != nil {
		return nil, err
	}

	cfg := &model.SwitchConfig{
		Switch:       info,
		VLANs:        vlans.vlans,
		Interfaces:   interfaces,
		PortChannels: channels,
		MLAG:         buildMLAG(tmpl, role, addrs),
	}

	if entry.ASN != 0 {
		bgp, prefixLists, err := buildBGP(entry, run, role, vlans, addrs)
		if err != nil {
			return nil, err
		}
		cfg.BGP = bgp
		cfg.PrefixLists = prefixLists
	} else {
		cfg.StaticRoutes = buildStaticRoutes(topo)
	}

	log.WithField("role", role).Debug("built standardized switch object")
	return cfg, nil
}

// switchInfo derives the identity block. Unknown vendors are not rejected
// here: the firmware field passes through and, without a matching template
// set, the failure surfaces at render time instead.
func switchInfo(entry lab.SwitchEntry, run *Run, role string) model.SwitchInfo {
	vendor := strings.ToLower(strings.TrimSpace(entry.Make))
	if !platform.KnownVendor(vendor) {
		util.WithSwitch(entry.Hostname).Warnf(
			"unknown vendor %q: no built-in firmware mapping, expecting a matching template directory", vendor)
	}
	return model.SwitchInfo{
		Vendor:            vendor,
		Firmware:          platform.FirmwareFor(vendor),
		Model:             strings.ToUpper(strings.TrimSpace(entry.Model)),
		Hostname:          entry.Hostname,
		Role:              role,
		DeploymentPattern: run.Pattern,
		Version:           entry.Firmware,
		Site:              run.Site,
	}
}

// buildMLAG emits the pair peering block. It needs both a peer-link channel
// in the template and an inter-switch pool for the keepalive addresses.
func buildMLAG(tmpl *spec.Template, role string, addrs *addressPlan) *model.MLAG {
	if addrs.IBGP == nil {
		return nil
	}
	for _, pc := range tmpl.PortChannels {
		if pc.Role == spec.ChannelPeerLink {
			return &model.MLAG{
				Domain:          mlagDomain,
				PeerLinkChannel: pc.ID,
				PeerIP:          addrs.IBGP.Peer,
				SourceIP:        addrs.IBGP.Local,
				RolePriority:    model.RoleDefaultsFor(role).MLAGRolePriority,
			}
		}
	}
	return nil
}
