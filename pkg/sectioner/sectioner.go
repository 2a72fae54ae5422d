// Package sectioner splits existing vendor configuration text into the
// logical sections used elsewhere in the pipeline. Section boundaries are
// recognized by per-firmware marker tables; indented lines attach to the
// section opened by the last marker.
package sectioner

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/fabricgen-network/fabricgen/pkg/util"
)

type marker struct {
	re      *regexp.Regexp
	section string
}

var nxosMarkers = []marker{
	{regexp.MustCompile(`^hostname\s`), "system"},
	{regexp.MustCompile(`^(feature|spanning-tree|no ip domain|ip domain)\s`), "system"},
	{regexp.MustCompile(`^vlan\s+\d`), "vlans"},
	{regexp.MustCompile(`^interface Vlan\d`), "vlans"},
	{regexp.MustCompile(`^interface port-channel\d`), "port_channels"},
	{regexp.MustCompile(`^interface (Ethernet|loopback)`), "interfaces"},
	{regexp.MustCompile(`^vpc domain\s`), "mlag"},
	{regexp.MustCompile(`^router bgp\s`), "bgp"},
	{regexp.MustCompile(`^ip prefix-list\s`), "prefix_lists"},
	{regexp.MustCompile(`^ip route\s`), "static_routes"},
	{regexp.MustCompile(`^(class-map|policy-map|system qos)`), "qos"},
	{regexp.MustCompile(`^(username|line|banner)\s`), "login"},
}

var os10Markers = []marker{
	{regexp.MustCompile(`^hostname\s`), "system"},
	{regexp.MustCompile(`^(spanning-tree|dcbx)\s`), "system"},
	{regexp.MustCompile(`^interface vlan\d`), "vlans"},
	{regexp.MustCompile(`^interface port-channel\d`), "port_channels"},
	{regexp.MustCompile(`^interface (ethernet|loopback|mgmt)`), "interfaces"},
	{regexp.MustCompile(`^vlt-domain\s`), "mlag"},
	{regexp.MustCompile(`^router bgp\s`), "bgp"},
	{regexp.MustCompile(`^ip prefix-list\s`), "prefix_lists"},
	{regexp.MustCompile(`^ip route\s`), "static_routes"},
	{regexp.MustCompile(`^(class-map|policy-map)\s`), "qos"},
	{regexp.MustCompile(`^(username|line|ip ssh)\s`), "login"},
}

func markersFor(firmware string) []marker {
	switch strings.ToLower(firmware) {
	case "os10":
		return os10Markers
	default:
		return nxosMarkers
	}
}

// Split partitions configuration text by section. Lines before the first
// recognized marker land in "preamble". Unrecognized top-level lines stay
// with the current section.
func Split(config, firmware string) map[string][]string {
	markers := markersFor(firmware)
	sections := make(map[string][]string)
	current := "preamble"

	for _, line := range strings.Split(config, "\n") {
		trimmed := strings.TrimRight(line, " \t")
		if trimmed == "" {
			continue
		}
		if !strings.HasPrefix(trimmed, " ") && !strings.HasPrefix(trimmed, "\t") {
			for _, m := range markers {
				if m.re.MatchString(trimmed) {
					current = m.section
					break
				}
			}
		}
		sections[current] = append(sections[current], trimmed)
	}
	if len(sections["preamble"]) == 0 {
		delete(sections, "preamble")
	}
	return sections
}

// Summary describes which sections a configuration contains.
type Summary struct {
	Firmware string
	Present  []string
	Lines    map[string]int
	VLANs    []int
}

// Analyze sections the configuration and summarises what it found, with the
// section names sorted for stable reporting.
func Analyze(config, firmware string) Summary {
	sections := Split(config, firmware)
	s := Summary{
		Firmware: strings.ToLower(firmware),
		Lines:    make(map[string]int, len(sections)),
	}
	for name, lines := range sections {
		s.Present = append(s.Present, name)
		s.Lines[name] = len(lines)
	}
	sort.Strings(s.Present)
	s.VLANs = declaredVLANs(sections["vlans"])
	return s
}

var (
	vlanDeclRe = regexp.MustCompile(`^vlan\s+([\d,-]+)$`)
	sviDeclRe  = regexp.MustCompile(`^interface [Vv]lan\s?(\d+)$`)
)

// declaredVLANs extracts VLAN IDs from the vlans section. NX-OS declares
// them in range notation ("vlan 2,99,711-712"), OS10 per routed interface
// ("interface vlan711"). Malformed declarations are skipped.
func declaredVLANs(lines []string) []int {
	seen := make(map[int]bool)
	for _, line := range lines {
		var ids []int
		if m := vlanDeclRe.FindStringSubmatch(line); m != nil {
			ids, _ = util.ExpandVLANRange(m[1])
		} else if m := sviDeclRe.FindStringSubmatch(line); m != nil {
			id, _ := strconv.Atoi(m[1])
			ids = []int{id}
		}
		for _, id := range ids {
			seen[id] = true
		}
	}
	if len(seen) == 0 {
		return nil
	}
	out := make([]int, 0, len(seen))
	for id := range seen {
		out = append(out, id)
	}
	sort.Ints(out)
	return out
}
