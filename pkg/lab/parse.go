package lab

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/fabricgen-network/fabricgen/pkg/model"
	"github.com/fabricgen-network/fabricgen/pkg/util"
)

// Load parses a lab topology JSON file and validates required fields.
func Load(path string) (*Topology, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading topology file: %w", err)
	}
	return Parse(data)
}

// Parse parses and validates lab topology JSON.
func Parse(data []byte) (*Topology, error) {
	var topo Topology
	if err := json.Unmarshal(data, &topo); err != nil {
		return nil, fmt.Errorf("parsing topology JSON: %w", err)
	}

	if err := validate(&topo); err != nil {
		return nil, fmt.Errorf("validating topology: %w", err)
	}

	return &topo, nil
}

// validate reports every schema violation with its field path rather than
// stopping at the first.
func validate(topo *Topology) error {
	var vb util.ValidationBuilder

	vb.Add(len(topo.InputData.Switches) > 0, "InputData.Switches: at least one switch is required")

	for i, sw := range topo.InputData.Switches {
		path := fmt.Sprintf("InputData.Switches[%d]", i)
		vb.Add(sw.Type != "", path+".Type: role is required")
		vb.Add(sw.Hostname != "", path+".Hostname: hostname is required")
		// Border entries are routing peers only; vendor and model are needed
		// just for switches that get built.
		role := strings.ToUpper(sw.Type)
		if role == model.RoleTOR1 || role == model.RoleTOR2 || role == model.RoleBMC {
			vb.Add(sw.Make != "", path+".Make: vendor is required")
			vb.Add(sw.Model != "", path+".Model: model is required")
		}
	}

	for i, net := range topo.InputData.Supernets {
		path := fmt.Sprintf("InputData.Supernets[%d]", i)
		vb.Add(net.GroupName != "", path+".GroupName: group name is required")
		if net.IPv4.Network != "" {
			cidr := fmt.Sprintf("%s/%d", net.IPv4.Network, net.IPv4.Cidr)
			vb.Add(util.IsValidIPv4CIDR(cidr),
				fmt.Sprintf("%s.IPv4: invalid network %s", path, cidr))
		}
		if net.IPv4.Gateway != "" {
			vb.Add(util.IsValidIPv4(net.IPv4.Gateway),
				fmt.Sprintf("%s.IPv4.Gateway: invalid address %s", path, net.IPv4.Gateway))
		}
		if net.IPv4.VLANID != 0 {
			vb.Add(util.ValidateVLANID(net.IPv4.VLANID) == nil,
				fmt.Sprintf("%s.IPv4.VLANID: invalid VLAN ID %d", path, net.IPv4.VLANID))
		}
	}

	return vb.Build()
}
