package lab

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const validInput = `{
  "Version": "1.0",
  "Description": "two-rack lab",
  "InputData": {
    "MainEnvData": [{"Site": "rack12", "DeploymentPattern": "HyperConverged"}],
    "Switches": [
      {"Make": "Cisco", "Model": "93180YC-FX3", "Type": "TOR1", "Hostname": "tor-1", "ASN": 65001, "Firmware": "10.3.1"},
      {"Make": "Cisco", "Model": "93180YC-FX3", "Type": "TOR2", "Hostname": "tor-2", "ASN": 65001, "Firmware": "10.3.1"},
      {"Make": "Cisco", "Model": "9348GC-FXP", "Type": "BMC", "Hostname": "bmc-1", "Firmware": "10.3.1"},
      {"Make": "", "Model": "", "Type": "Border1", "Hostname": "border-1", "ASN": 64846}
    ],
    "Supernets": [
      {"GroupName": "InfraGroup", "Name": "Management_7",
       "IPv4": {"Name": "Management_7", "VLANID": 7, "Network": "10.0.0.0", "Cidr": 24, "Gateway": "10.0.0.1", "SwitchSVI": true}},
      {"GroupName": "TenantGroup", "Name": "Compute_201",
       "IPv4": {"Name": "Compute_201", "VLANID": 201, "Network": "10.1.0.0", "Cidr": 24, "Gateway": "10.1.0.1"}},
      {"GroupName": "StorageGroup1", "Name": "Storage_711",
       "IPv4": {"Name": "Storage_711", "VLANID": 711, "Network": "10.2.0.0", "Cidr": 25}},
      {"GroupName": "StorageGroup2", "Name": "Storage_712",
       "IPv4": {"Name": "Storage_712", "VLANID": 712, "Network": "10.2.0.128", "Cidr": 25}},
      {"GroupName": "LOOPBACK0", "Name": "Loopback",
       "IPv4": {"Name": "Loopback", "Network": "10.0.8.0", "Cidr": 29}},
      {"GroupName": "P2P_IBGP", "Name": "IBGP",
       "IPv4": {"Name": "IBGP", "Network": "10.0.9.0", "Cidr": 31}}
    ]
  }
}`

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lab.json")
	if err := os.WriteFile(path, []byte(validInput), 0644); err != nil {
		t.Fatal(err)
	}

	topo, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if topo.Site() != "rack12" {
		t.Errorf("site = %q, want rack12", topo.Site())
	}
	if got := topo.DeploymentPattern(); got != "fully_converged" {
		t.Errorf("pattern = %q, want fully_converged (normalized from HyperConverged)", got)
	}
	if n := len(topo.TORSwitches()); n != 2 {
		t.Errorf("TOR switch count = %d, want 2", n)
	}
	if n := len(topo.BMCSwitches()); n != 1 {
		t.Errorf("BMC switch count = %d, want 1", n)
	}
}

func TestLoadFileNotFound(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestParseReportsAllViolations(t *testing.T) {
	bad := `{
  "Version": "1.0",
  "InputData": {
    "Switches": [{"Make": "", "Model": "", "Type": "TOR1", "Hostname": "tor-1"}],
    "Supernets": [
      {"GroupName": "", "IPv4": {"Network": "999.0.0.0", "Cidr": 24}},
      {"GroupName": "InfraGroup", "IPv4": {"VLANID": 1, "Network": "10.0.0.0", "Cidr": 24}}
    ]
  }
}`
	_, err := Parse([]byte(bad))
	if err == nil {
		t.Fatal("expected validation error")
	}
	msg := err.Error()
	for _, want := range []string{
		"Switches[0].Make",
		"Switches[0].Model",
		"Supernets[0].GroupName",
		"Supernets[0].IPv4",
		"Supernets[1].IPv4.VLANID",
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("error should mention %s, got:\n%s", want, msg)
		}
	}
}

func TestASNByRole(t *testing.T) {
	topo, err := Parse([]byte(validInput))
	if err != nil {
		t.Fatal(err)
	}
	asns := topo.ASNByRole()
	if asns["TOR1"] != 65001 {
		t.Errorf("TOR1 ASN = %d, want 65001", asns["TOR1"])
	}
	if asns["BORDER1"] != 64846 {
		t.Errorf("BORDER1 ASN = %d, want 64846", asns["BORDER1"])
	}
	if _, ok := asns["BMC"]; ok {
		t.Error("BMC has no ASN and must not appear in the map")
	}
}

func TestSupernetsBySymbol(t *testing.T) {
	topo, err := Parse([]byte(validInput))
	if err != nil {
		t.Fatal(err)
	}

	storage := topo.SupernetsBySymbol("S")
	if len(storage) != 2 {
		t.Fatalf("storage supernet count = %d, want 2", len(storage))
	}
	// Declaration order decides storage_1 vs storage_2
	if storage[0].IPv4.VLANID != 711 || storage[1].IPv4.VLANID != 712 {
		t.Errorf("storage order = %d,%d want 711,712", storage[0].IPv4.VLANID, storage[1].IPv4.VLANID)
	}

	if mgmt := topo.SupernetsBySymbol("M"); len(mgmt) != 1 || mgmt[0].IPv4.VLANID != 7 {
		t.Errorf("management supernets = %+v", mgmt)
	}
}
