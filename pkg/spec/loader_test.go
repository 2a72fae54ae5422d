package spec

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/fabricgen-network/fabricgen/configs"
	"github.com/fabricgen-network/fabricgen/pkg/util"
)

const testTemplate = `{
  "model": "TEST-1",
  "interface_templates": {
    "common": [
      {"name": "Ethernet1/49-50", "role": "peerlink", "type": "trunk", "channel_group": 50}
    ],
    "fully_converged": [
      {"name": "Ethernet1/1-16", "role": "host", "type": "trunk", "tagged_vlans": ["M", "C", "S"]}
    ]
  },
  "port_channels": [
    {"id": 50, "role": "peerlink", "mode": "trunk", "members": "Ethernet1/49-50"}
  ]
}`

func writeTemplate(t *testing.T, dir, vendor, model, body string) {
	t.Helper()
	vdir := filepath.Join(dir, vendor)
	if err := os.MkdirAll(vdir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(vdir, model+".json"), []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoaderGet(t *testing.T) {
	dir := t.TempDir()
	writeTemplate(t, dir, "cisco", "TEST-1", testTemplate)

	l := NewDirLoader(dir)
	tmpl, err := l.Get("cisco", "test-1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if tmpl.Model != "TEST-1" {
		t.Errorf("model = %q, want TEST-1", tmpl.Model)
	}
	if !tmpl.HasSection("common") || !tmpl.HasSection("fully_converged") {
		t.Error("expected common and fully_converged sections")
	}
	if tmpl.HasSection("switched") {
		t.Error("unexpected switched section")
	}
	if got := tmpl.Section("common"); len(got) != 1 || got[0].ChannelGroup != 50 {
		t.Errorf("common section = %+v", got)
	}

	// Vendor and model lookups are case-insensitive and cached.
	again, err := l.Get("Cisco", "Test-1")
	if err != nil {
		t.Fatalf("Get cached: %v", err)
	}
	if again != tmpl {
		t.Error("expected cached template pointer")
	}
}

func TestLoaderGetNotFound(t *testing.T) {
	l := NewDirLoader(t.TempDir())
	_, err := l.Get("cisco", "NO-SUCH-MODEL")
	if !errors.Is(err, util.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestLoaderGetInvalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"malformed json", `{"model": "X"`},
		{"missing sections", `{"model": "X"}`},
		{"missing interface name", `{"interface_templates": {"common": [{"type": "trunk"}]}}`},
		{"missing interface type", `{"interface_templates": {"common": [{"name": "Ethernet1/1"}]}}`},
		{"duplicate channel id", `{
			"interface_templates": {"common": [{"name": "Ethernet1/1", "type": "trunk"}]},
			"port_channels": [
				{"id": 50, "members": "Ethernet1/1"},
				{"id": 50, "members": "Ethernet1/2"}
			]
		}`},
		{"mtu out of range", `{
			"interface_templates": {"common": [{"name": "Ethernet1/1", "type": "trunk", "mtu": 10000}]}
		}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeTemplate(t, dir, "cisco", "BAD", tt.body)
			if _, err := NewDirLoader(dir).Get("cisco", "BAD"); err == nil {
				t.Error("expected error")
			}
		})
	}
}

// TestShippedTemplates loads every built-in template through the embedded
// filesystem, so the shipped tree stays valid and reachable without a
// checkout on disk.
func TestShippedTemplates(t *testing.T) {
	l := NewLoader(configs.SwitchInterfaceTemplates)

	tests := []struct {
		vendor, model string
		wantSections  []string
		wantChannels  []int
	}{
		{"cisco", "93180YC-FX3",
			[]string{"common", "fully_converged", "switched", "switchless"},
			[]int{50, 101}},
		{"cisco", "9348GC-FXP", []string{"common"}, []int{102}},
		{"dellemc", "S5248F-ON",
			[]string{"common", "fully_converged", "switched", "switchless"},
			[]int{50, 101}},
		{"dellemc", "N3248TE-ON", []string{"common"}, []int{102}},
	}
	for _, tt := range tests {
		t.Run(tt.vendor+"/"+tt.model, func(t *testing.T) {
			tmpl, err := l.Get(tt.vendor, tt.model)
			if err != nil {
				t.Fatalf("Get: %v", err)
			}
			for _, s := range tt.wantSections {
				if !tmpl.HasSection(s) {
					t.Errorf("missing section %q", s)
				}
			}
			if len(tmpl.PortChannels) != len(tt.wantChannels) {
				t.Fatalf("port channels = %d, want %d", len(tmpl.PortChannels), len(tt.wantChannels))
			}
			for i, id := range tt.wantChannels {
				if tmpl.PortChannels[i].ID != id {
					t.Errorf("port_channels[%d].id = %d, want %d", i, tmpl.PortChannels[i].ID, id)
				}
			}
		})
	}
}
