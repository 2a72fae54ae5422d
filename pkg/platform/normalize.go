package platform

import (
	"github.com/fabricgen-network/fabricgen/pkg/util"
)

// Match types returned by the normalizers.
const (
	MatchExact     = "exact"
	MatchVariation = "variation"
	MatchFuzzy     = "fuzzy"
	MatchNone      = "none"
)

// Common variations and typos seen in submitted metadata. Validation guides
// rather than blocks: an unmatched vendor is a new-vendor contribution, not
// an error.
var vendorVariations = map[string][]string{
	VendorDellEMC: {
		"dell emc", "dell-emc", "dell_emc", "dell", "delltech",
		"dell technologies", "dell tech", "emc", "dell/emc",
		"dellmc", "dellem", "delemc", "del emc",
	},
	VendorCisco: {
		"cisco systems", "cisco-systems", "cisco_systems",
		"csco", "cisc", "ciscco", "cisoc",
	},
}

var firmwareVariations = map[string][]string{
	FirmwareNXOS: {
		"nx-os", "nx os", "nexus", "nexus-os", "nexus os",
		"cisco nxos", "cisco nx-os", "nxox", "nxso", "nox",
	},
	FirmwareOS10: {
		"os-10", "os 10", "dnos10", "dnos-10", "dn-os10",
		"dell os10", "dellemc os10", "smartfabric os10", "os1o", "os01",
	},
}

var roleVariations = map[string][]string{
	"TOR1": {"tor1", "tor-1", "tor 1", "top-of-rack-1", "switch1", "sw1"},
	"TOR2": {"tor2", "tor-2", "tor 2", "top-of-rack-2", "switch2", "sw2"},
	"BMC":  {"bmc", "bmc-switch", "bmc switch", "baseboard", "management", "mgmt", "oob"},
}

var patternVariations = map[string][]string{
	"fully_converged": {
		"fully-converged", "fullyconverged", "converged", "hyperconverged",
		"full-converged", "full_converged", "fc",
	},
	"switched":   {"switch", "switched-mode", "switched_mode"},
	"switchless": {"switch-less", "switch_less", "storage-only", "storage_only", "no-switch", "direct"},
}

// NormalizeVendor maps a free-text vendor value to its canonical identifier.
func NormalizeVendor(value string) (string, string) {
	return normalize(value, vendorVariations)
}

// NormalizeFirmware maps a free-text firmware value to its canonical identifier.
func NormalizeFirmware(value string) (string, string) {
	return normalize(value, firmwareVariations)
}

// NormalizeRole maps a free-text role value to TOR1, TOR2, or BMC.
func NormalizeRole(value string) (string, string) {
	return normalize(value, roleVariations)
}

// NormalizePattern maps a free-text deployment-pattern value to its canonical
// key. The customer-facing "HyperConverged" name maps to fully_converged.
func NormalizePattern(value string) (string, string) {
	return normalize(value, patternVariations)
}

// normalize matches value against canonical names, then known variations,
// then fuzzy similarity. Returns the canonical value and the match type.
func normalize(value string, variations map[string][]string) (string, string) {
	norm := util.NormalizeToken(value)
	if norm == "" {
		return "", MatchNone
	}

	for canonical := range variations {
		if norm == util.NormalizeToken(canonical) {
			return canonical, MatchExact
		}
	}

	for canonical, list := range variations {
		for _, v := range list {
			if norm == util.NormalizeToken(v) {
				return canonical, MatchVariation
			}
		}
	}

	// Fuzzy: closest candidate by edit-distance similarity
	bestSim, bestCanonical := 0.0, ""
	for canonical, list := range variations {
		for _, cand := range append([]string{canonical}, list...) {
			sim := similarity(norm, util.NormalizeToken(cand))
			if sim > bestSim {
				bestSim, bestCanonical = sim, canonical
			}
		}
	}
	if bestSim >= 0.6 {
		return bestCanonical, MatchFuzzy
	}

	return "", MatchNone
}

// similarity returns 1 - distance/maxLen, a rough edit-distance ratio.
func similarity(a, b string) float64 {
	if a == b {
		return 1
	}
	maxLen := len(a)
	if len(b) > maxLen {
		maxLen = len(b)
	}
	if maxLen == 0 {
		return 0
	}
	return 1 - float64(levenshtein(a, b))/float64(maxLen)
}

func levenshtein(a, b string) int {
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min3(curr[j-1]+1, prev[j]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}
