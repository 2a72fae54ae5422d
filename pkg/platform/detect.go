package platform

import "regexp"

// vendorPattern scores one vendor-specific syntax marker in raw config text.
type vendorPattern struct {
	re     *regexp.Regexp
	vendor string
}

var vendorPatterns = []vendorPattern{
	// Dell EMC OS10 markers
	{regexp.MustCompile(`(?mi)^\s*ztd cancel`), VendorDellEMC},
	{regexp.MustCompile(`(?mi)^\s*vlt domain`), VendorDellEMC},
	{regexp.MustCompile(`(?mi)^\s*vlt-port-channel`), VendorDellEMC},
	{regexp.MustCompile(`(?mi)! Vendor:\s*dellemc`), VendorDellEMC},
	{regexp.MustCompile(`(?mi)^\s*interface vlan\d+`), VendorDellEMC},
	{regexp.MustCompile(`(?mi)^\s*interface Ethernet\s+\d+/\d+/\d+`), VendorDellEMC},

	// Cisco NX-OS markers
	{regexp.MustCompile(`(?mi)^\s*feature vpc`), VendorCisco},
	{regexp.MustCompile(`(?mi)^\s*feature bgp`), VendorCisco},
	{regexp.MustCompile(`(?mi)^\s*feature interface-vlan`), VendorCisco},
	{regexp.MustCompile(`(?mi)^\s*vpc domain`), VendorCisco},
	{regexp.MustCompile(`(?mi)^\s*vpc peer-link`), VendorCisco},
	{regexp.MustCompile(`(?mi)! Vendor:\s*cisco`), VendorCisco},
	{regexp.MustCompile(`(?m)^\s*interface Ethernet\d+/\d+$`), VendorCisco},
	{regexp.MustCompile(`(?mi)^\s*no feature telnet`), VendorCisco},
}

var modelPatterns = []*regexp.Regexp{
	regexp.MustCompile(`! Model:\s*(\S+)`),
	regexp.MustCompile(`(?i)(S5248F-ON|S5232F-ON|S5224F-ON|S4148F-ON|S4128F-ON)`),
	regexp.MustCompile(`(93180[A-Z]{2,3}-[A-Z0-9]+|9336[A-Z]{1,2}-[A-Z0-9]+|9348[A-Z]{2}-[A-Z0-9]+|9364[A-Z]{1,2}-[A-Z0-9]+)`),
}

var hostnameRe = regexp.MustCompile(`(?m)^hostname\s+(\S+)`)

// Detection is the result of scanning raw configuration text.
type Detection struct {
	Vendor   string
	Firmware string
	Model    string
	Hostname string
}

// Detect identifies vendor, firmware, model, and hostname from configuration
// content by scoring vendor-specific syntax markers. A tie or zero score
// leaves Vendor and Firmware empty — the caller decides how to proceed.
func Detect(configText string) Detection {
	scores := map[string]int{}
	for _, p := range vendorPatterns {
		if p.re.MatchString(configText) {
			scores[p.vendor]++
		}
	}

	var det Detection
	best, runnerUp := "", 0
	for vendor, score := range scores {
		if score > runnerUp {
			best, runnerUp = vendor, score
		} else if score == runnerUp {
			best = "" // tie — inconclusive
		}
	}
	if best != "" {
		det.Vendor = best
		det.Firmware = FirmwareFor(best)
	}

	for _, re := range modelPatterns {
		if m := re.FindStringSubmatch(configText); m != nil {
			det.Model = m[1]
			break
		}
	}
	if m := hostnameRe.FindStringSubmatch(configText); m != nil {
		det.Hostname = m[1]
	}

	return det
}
