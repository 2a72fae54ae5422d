package spec

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"strings"
	"sync"

	"github.com/fabricgen-network/fabricgen/pkg/util"
)

// Loader loads and caches switch interface templates from a filesystem
// rooted at the per-vendor directories. Templates are loaded once and never
// mutated, so a Loader is safe for concurrent readers across parallel
// switch builds.
type Loader struct {
	fsys fs.FS

	mu    sync.Mutex
	cache map[string]*Template
}

// NewLoader creates a template loader over fsys.
func NewLoader(fsys fs.FS) *Loader {
	return &Loader{
		fsys:  fsys,
		cache: make(map[string]*Template),
	}
}

// NewDirLoader creates a template loader rooted at a directory on disk.
func NewDirLoader(dir string) *Loader {
	return NewLoader(os.DirFS(dir))
}

// Get loads the interface template for a vendor and hardware model.
func (l *Loader) Get(vendor, model string) (*Template, error) {
	vendor = strings.ToLower(strings.TrimSpace(vendor))
	model = strings.ToUpper(strings.TrimSpace(model))
	key := vendor + "/" + model

	l.mu.Lock()
	defer l.mu.Unlock()

	if t, ok := l.cache[key]; ok {
		return t, nil
	}

	name := path.Join(vendor, model+".json")
	data, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("interface template for %s/%s: %w (looked for %s)",
				vendor, model, util.ErrNotFound, name)
		}
		return nil, fmt.Errorf("reading interface template %s: %w", name, err)
	}

	var t Template
	if err := json.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parsing interface template %s: %w", name, err)
	}

	if err := validateTemplate(&t, name); err != nil {
		return nil, err
	}

	l.cache[key] = &t
	return &t, nil
}

func validateTemplate(t *Template, path string) error {
	var vb util.ValidationBuilder

	vb.Add(len(t.InterfaceTemplates) > 0,
		fmt.Sprintf("%s: interface_templates section is required", path))

	for section, entries := range t.InterfaceTemplates {
		for i, e := range entries {
			p := fmt.Sprintf("%s: interface_templates.%s[%d]", path, section, i)
			vb.Add(e.Name != "", p+": name is required")
			vb.Add(e.Type != "", p+": type is required")
			if e.MTU != 0 {
				vb.Add(util.ValidateMTU(e.MTU) == nil,
					fmt.Sprintf("%s: invalid mtu %d", p, e.MTU))
			}
		}
	}

	seen := make(map[int]bool)
	for i, pc := range t.PortChannels {
		p := fmt.Sprintf("%s: port_channels[%d]", path, i)
		vb.Add(pc.ID > 0, p+": id is required")
		vb.Add(pc.Members != "", p+": members is required")
		vb.Add(!seen[pc.ID], fmt.Sprintf("%s: duplicate port-channel id %d", p, pc.ID))
		seen[pc.ID] = true
		if pc.MTU != 0 {
			vb.Add(util.ValidateMTU(pc.MTU) == nil,
				fmt.Sprintf("%s: invalid mtu %d", p, pc.MTU))
		}
	}

	return vb.Build()
}
