// Package platform holds the static vendor knowledge: vendor → firmware and
// vendor → redundancy-protocol tables, supernet group classification, and
// vendor detection from raw configuration text.
//
// Everything here is read-only, process-lifetime data. The builders contain
// no vendor-name literals; all vendor variation flows through these tables
// and the per-vendor template sets.
package platform

import "strings"

// Canonical vendor identifiers
const (
	VendorCisco   = "cisco"
	VendorDellEMC = "dellemc"
)

// Firmware families
const (
	FirmwareNXOS = "nxos"
	FirmwareOS10 = "os10"
)

// Gateway redundancy protocols
const (
	RedundancyHSRP = "hsrp"
	RedundancyVRRP = "vrrp"
)

var vendorFirmware = map[string]string{
	VendorCisco:   FirmwareNXOS,
	VendorDellEMC: FirmwareOS10,
}

var vendorRedundancy = map[string]string{
	VendorCisco:   RedundancyHSRP,
	VendorDellEMC: RedundancyVRRP,
}

// FirmwareFor derives the firmware family from a vendor string. Unknown
// vendors are not rejected: the lower-cased vendor value passes through and
// failure, if any, is deferred to template discovery at render time. New
// vendor contributions only need to add a template directory.
func FirmwareFor(vendor string) string {
	v := strings.ToLower(strings.TrimSpace(vendor))
	if fw, ok := vendorFirmware[v]; ok {
		return fw
	}
	return v
}

// RedundancyProtocolFor returns the active/standby gateway protocol used by a
// vendor. Unknown vendors default to VRRP, the standards-based choice.
func RedundancyProtocolFor(vendor string) string {
	v := strings.ToLower(strings.TrimSpace(vendor))
	if p, ok := vendorRedundancy[v]; ok {
		return p
	}
	return RedundancyVRRP
}

// KnownVendor reports whether the vendor has a built-in firmware mapping.
func KnownVendor(vendor string) bool {
	_, ok := vendorFirmware[strings.ToLower(strings.TrimSpace(vendor))]
	return ok
}

// VLAN group symbols used by the interface templates.
const (
	GroupManagement = "M"
	GroupCompute    = "C"
	GroupStorage    = "S"
	GroupUnused     = "UNUSED"
	GroupNative     = "NATIVE"
	GroupBMC        = "BMC"
)

// vlanGroupPrefixes maps a supernet GroupName prefix to its symbolic VLAN-set
// key. Order matters only for readability; prefixes do not overlap.
var vlanGroupPrefixes = []struct {
	prefix string
	symbol string
}{
	{"HNVPA", GroupCompute},
	{"INFRA", GroupManagement},
	{"TENANT", GroupCompute},
	{"L3FORWARD", GroupCompute},
	{"STORAGE", GroupStorage},
	{"UNUSED", GroupUnused},
	{"NATIVE", GroupNative},
	{"BMC", GroupBMC},
}

// ClassifyVLANGroup maps a supernet GroupName to its symbolic VLAN-set key.
// This is the single classification function used everywhere VLAN membership
// is decided. Returns empty string when no prefix matches.
func ClassifyVLANGroup(groupName string) string {
	upper := strings.ToUpper(groupName)
	for _, e := range vlanGroupPrefixes {
		if strings.HasPrefix(upper, e.prefix) {
			return e.symbol
		}
	}
	return ""
}

// Supernet GroupName prefixes for the point-to-point and loopback pools. The
// builder assembles role-scoped keys from these (e.g. "P2P_BORDER1_TOR1").
const (
	GroupP2PBorder1 = "P2P_BORDER1"
	GroupP2PBorder2 = "P2P_BORDER2"
	GroupLoopback   = "LOOPBACK0"
	GroupP2PIBGP    = "P2P_IBGP"
)
