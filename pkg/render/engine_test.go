package render

import (
	"errors"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/fabricgen-network/fabricgen/pkg/model"
	"github.com/fabricgen-network/fabricgen/pkg/util"
	"github.com/fabricgen-network/fabricgen/templates"
)

func torConfig() *model.SwitchConfig {
	return &model.SwitchConfig{
		Switch: model.SwitchInfo{
			Vendor:   "cisco",
			Firmware: "nxos",
			Model:    "93180YC-FX3",
			Hostname: "tor1-sw",
			Role:     model.RoleTOR1,
		},
		VLANs: []model.VLAN{
			{ID: 7, Name: "Management", Purpose: model.PurposeManagement, SVI: &model.SVI{
				IP: "10.0.0.2", Cidr: 24, MTU: 9216,
				Redundancy: &model.Redundancy{Type: "hsrp", Group: 7, Priority: 150, VirtualIP: "10.0.0.1"},
			}},
			{ID: 711, Name: "Storage1", Purpose: model.PurposeStorage1},
			{ID: 99, Name: "NATIVE_VLAN", Purpose: model.PurposeNative},
		},
		Interfaces: []model.Interface{
			{Name: "loopback0", Type: model.InterfaceLoopback, IP: "10.0.8.0", Cidr: 32},
			{Name: "Ethernet1/1", Type: model.InterfaceTrunk, MTU: 9216, QoS: true,
				NativeVLAN: 99, TaggedVLANs: []int{7, 711}},
			{Name: "Ethernet1/53", Type: model.InterfaceTrunk, ChannelGroup: 50},
			{Name: "Ethernet1/54", Type: model.InterfaceTrunk, ChannelGroup: 50},
		},
		PortChannels: []model.PortChannel{
			{ID: 50, Mode: "trunk", VPCPeerLink: true, MTU: 9216,
				Members: []string{"Ethernet1/53", "Ethernet1/54"}, NativeVLAN: 99, TaggedVLANs: []int{7}},
		},
		MLAG: &model.MLAG{Domain: 1, PeerLinkChannel: 50,
			PeerIP: "10.0.9.1", SourceIP: "10.0.9.0", RolePriority: 1},
		BGP: &model.BGP{
			ASN: 4200003000, RouterID: "10.0.8.0", MaximumPaths: 8,
			Networks: []string{"10.0.8.0/32", "10.0.0.0/24"},
			Neighbors: []model.BGPNeighbor{
				{Address: "10.0.10.0", RemoteAS: 64846, Description: "TO_BORDER1",
					PrefixListIn: model.DefaultRoutePrefixList},
			},
		},
		PrefixLists: map[string][]string{model.DefaultRoutePrefixList: {"permit 0.0.0.0/0"}},
	}
}

func bmcConfig() *model.SwitchConfig {
	return &model.SwitchConfig{
		Switch: model.SwitchInfo{
			Vendor:   "cisco",
			Firmware: "nxos",
			Model:    "9348GC-FXP",
			Hostname: "bmc-sw",
			Role:     model.RoleBMC,
		},
		VLANs: []model.VLAN{
			{ID: 2, Name: "UNUSED_VLAN", Purpose: model.PurposeUnused, Shutdown: true},
			{ID: 99, Name: "NATIVE_VLAN", Purpose: model.PurposeNative},
			{ID: 125, Name: "BMCMgmt", Purpose: model.PurposeBMC, SVI: &model.SVI{IP: "10.9.0.254", Cidr: 24}},
		},
		Interfaces: []model.Interface{
			{Name: "Ethernet1/1", Type: model.InterfaceAccess, AccessVLAN: 125},
			{Name: "Ethernet1/47", Type: model.InterfaceTrunk, ChannelGroup: 102, NativeVLAN: 99, TaggedVLANs: []int{125}},
		},
		PortChannels: []model.PortChannel{
			{ID: 102, Mode: "trunk", Members: []string{"Ethernet1/47"}, NativeVLAN: 99, TaggedVLANs: []int{125}},
		},
		StaticRoutes: []model.StaticRoute{{Prefix: "0.0.0.0/0", NextHop: "10.9.0.1"}},
	}
}

func TestRenderTOR(t *testing.T) {
	e := NewEngine(templates.FS)
	res, err := e.Render(torConfig())
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	for _, section := range []string{"system", "vlans", "interfaces", "port_channels", "mlag", "bgp", "prefix_lists", "qos", "login"} {
		if _, ok := res.Sections[section]; !ok {
			t.Errorf("missing section %q", section)
		}
	}

	checks := map[string]string{
		"system":        "hostname tor1-sw",
		"vlans":         "ip address 10.0.0.2/24",
		"interfaces":    "switchport trunk allowed vlan 7,711",
		"port_channels": "vpc peer-link",
		"mlag":          "peer-keepalive destination 10.0.9.1 source 10.0.9.0",
		"bgp":           "router bgp 4200003000",
		"prefix_lists":  "ip prefix-list DEFAULT-ROUTE seq 10 permit 0.0.0.0/0",
		"qos":           "pause pfc-cos 3",
	}
	for section, want := range checks {
		if !strings.Contains(res.Sections[section], want) {
			t.Errorf("section %s missing %q:\n%s", section, want, res.Sections[section])
		}
	}

	// Storage VLANs never ride the peer-link in the rendered text either.
	pc := res.Sections["port_channels"]
	if strings.Contains(pc, "711") {
		t.Errorf("storage VLAN leaked into port channels:\n%s", pc)
	}

	if res.Full == "" {
		t.Fatal("full configuration not produced")
	}
	if !strings.Contains(res.Full, "router bgp 4200003000") {
		t.Error("32-bit ASN missing from full configuration")
	}
	// The full config concatenates in fixed order: system before bgp.
	if strings.Index(res.Full, "hostname tor1-sw") > strings.Index(res.Full, "router bgp") {
		t.Error("section order not deterministic: system must precede bgp")
	}
}

func TestRenderIdempotent(t *testing.T) {
	e := NewEngine(templates.FS)
	cfg := torConfig()

	first, err := e.Render(cfg)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	second, err := e.Render(cfg)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if first.Full != second.Full {
		t.Error("full configuration differs between identical renders")
	}
	for section, text := range first.Sections {
		if second.Sections[section] != text {
			t.Errorf("section %s differs between identical renders", section)
		}
	}
}

// A BMC object carries no BGP, MLAG, or prefix lists. The same template set
// used for the TOR pair must render it without error, with those sections
// empty.
func TestRenderBMCGuards(t *testing.T) {
	e := NewEngine(templates.FS)
	res, err := e.Render(bmcConfig())
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	for _, section := range []string{"bgp", "mlag", "prefix_lists", "qos"} {
		if got := res.Sections[section]; strings.TrimSpace(got) != "" {
			t.Errorf("section %s should render empty for a BMC object, got:\n%s", section, got)
		}
	}
	if !strings.Contains(res.Sections["static_routes"], "ip route 0.0.0.0/0 10.9.0.1") {
		t.Errorf("static routes = %q", res.Sections["static_routes"])
	}
	if res.Full == "" {
		t.Error("full configuration not produced")
	}
}

func TestRenderDell(t *testing.T) {
	cfg := torConfig()
	cfg.Switch.Vendor = "dellemc"
	cfg.Switch.Firmware = "os10"
	cfg.VLANs[0].SVI.Redundancy.Type = "vrrp"

	res, err := NewEngine(templates.FS).Render(cfg)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(res.Sections["vlans"], "vrrp-group 7") {
		t.Errorf("os10 vlans section:\n%s", res.Sections["vlans"])
	}
	if !strings.Contains(res.Sections["mlag"], "vlt-domain 1") {
		t.Errorf("os10 mlag section:\n%s", res.Sections["mlag"])
	}
}

func TestRenderNoTemplateSet(t *testing.T) {
	cfg := torConfig()
	cfg.Switch.Vendor = "aristanetworks"
	cfg.Switch.Firmware = "aristanetworks"

	_, err := NewEngine(templates.FS).Render(cfg)
	if !errors.Is(err, util.ErrNoTemplateSet) {
		t.Errorf("err = %v, want ErrNoTemplateSet", err)
	}
}

func TestRenderSectionFailureIsolated(t *testing.T) {
	fsys := fstest.MapFS{
		"cisco/nxos/system.tmpl": {Data: []byte("hostname {{.Switch.Hostname}}\n")},
		"cisco/nxos/broken.tmpl": {Data: []byte("{{.NoSuchField}}\n")},
	}

	res, err := NewEngine(fsys).Render(torConfig())
	if err == nil {
		t.Fatal("expected error from broken section")
	}
	var rerr *util.RenderError
	if !errors.As(err, &rerr) || rerr.Section != "broken" {
		t.Errorf("err = %v, want RenderError for section broken", err)
	}
	// The healthy section still rendered; the full artifact did not.
	if !strings.Contains(res.Sections["system"], "hostname tor1-sw") {
		t.Errorf("system section = %q", res.Sections["system"])
	}
	if res.Full != "" {
		t.Error("full configuration must not be produced with a failed section")
	}
}
