package builder

import (
	"errors"
	"testing"

	"github.com/fabricgen-network/fabricgen/pkg/lab"
	"github.com/fabricgen-network/fabricgen/pkg/model"
	"github.com/fabricgen-network/fabricgen/pkg/util"
)

func bmcEntry() lab.SwitchEntry {
	return lab.SwitchEntry{
		Make:     "cisco",
		Model:    "9348GC-FXP",
		Type:     "BMC",
		Hostname: "bmc-sw",
	}
}

func bmcTopology() *lab.Topology {
	topo := fourVLANTopology()
	topo.InputData.Switches = append(topo.InputData.Switches, bmcEntry())
	topo.InputData.Supernets = append(topo.InputData.Supernets,
		supernet("BMCGroup", "BMCMgmt", 125, "10.9.0.0", 24, "10.9.0.1", true))
	return topo
}

func TestBuildBMC(t *testing.T) {
	b := testBuilder()
	topo := bmcTopology()
	run := NewRun(topo)

	cfg, err := b.BuildBMC(bmcEntry(), topo, run)
	if err != nil {
		t.Fatalf("BuildBMC: %v", err)
	}

	// Fixed parking and native VLANs plus the BMC management VLAN.
	unused := findVLAN(t, cfg, 2)
	if !unused.Shutdown {
		t.Error("parking VLAN 2 must be shut down")
	}
	findVLAN(t, cfg, 99)

	bmc := findVLAN(t, cfg, 125)
	if bmc.SVI == nil {
		t.Fatal("BMC VLAN has no management interface")
	}
	// Highest usable address of 10.9.0.0/24.
	if bmc.SVI.IP != "10.9.0.254" || bmc.SVI.Cidr != 24 {
		t.Errorf("BMC SVI = %s/%d, want 10.9.0.254/24", bmc.SVI.IP, bmc.SVI.Cidr)
	}
	if bmc.SVI.Redundancy != nil {
		t.Error("BMC role carries no gateway redundancy")
	}

	// Host ports sit in the BMC VLAN; uplinks bundle into the trunk channel.
	var hostPorts, uplinkPorts int
	for _, ifc := range cfg.Interfaces {
		switch {
		case ifc.Type == model.InterfaceAccess && ifc.AccessVLAN == 125:
			hostPorts++
		case ifc.ChannelGroup == 102:
			uplinkPorts++
			if ifc.NativeVLAN != 99 {
				t.Errorf("uplink %s native = %d, want 99", ifc.Name, ifc.NativeVLAN)
			}
		}
	}
	if hostPorts != 44 {
		t.Errorf("BMC host ports = %d, want 44", hostPorts)
	}
	if uplinkPorts != 2 {
		t.Errorf("uplink ports = %d, want 2", uplinkPorts)
	}

	if len(cfg.PortChannels) != 1 || cfg.PortChannels[0].ID != 102 {
		t.Fatalf("port channels = %+v, want single channel 102", cfg.PortChannels)
	}
	if got := cfg.PortChannels[0].TaggedVLANs; len(got) != 1 || got[0] != 125 {
		t.Errorf("uplink channel tagged = %v, want [125]", got)
	}

	// Reduced object: no routing protocol, no redundancy peering.
	if cfg.BGP != nil || cfg.MLAG != nil || cfg.PrefixLists != nil {
		t.Error("BMC object must not carry BGP, MLAG, or prefix lists")
	}
	if len(cfg.StaticRoutes) != 1 || cfg.StaticRoutes[0].NextHop != "10.9.0.1" {
		t.Errorf("static routes = %+v, want default via 10.9.0.1", cfg.StaticRoutes)
	}
}

func TestBuildBMCNoSupernet(t *testing.T) {
	b := testBuilder()
	topo := fourVLANTopology()
	run := NewRun(topo)

	_, err := b.BuildBMC(bmcEntry(), topo, run)
	if !errors.Is(err, util.ErrUnresolved) {
		t.Errorf("err = %v, want ErrUnresolved", err)
	}
}

func TestBuildBMCWrongRole(t *testing.T) {
	b := testBuilder()
	topo := bmcTopology()

	if _, err := b.BuildBMC(torEntry("TOR1", 0), topo, NewRun(topo)); !errors.Is(err, util.ErrInvalidInput) {
		t.Errorf("err = %v, want ErrInvalidInput for non-BMC role", err)
	}
	if _, err := b.Build(bmcEntry(), topo, NewRun(topo)); !errors.Is(err, util.ErrInvalidInput) {
		t.Errorf("err = %v, want ErrInvalidInput for BMC entry through the TOR builder", err)
	}
}
