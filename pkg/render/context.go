package render

import (
	"github.com/fabricgen-network/fabricgen/pkg/model"
	"github.com/fabricgen-network/fabricgen/pkg/util"
)

// Context is the data every template section executes against. It embeds the
// standardized object and precomputes the guards and derived values the
// sections share, so the templates stay declarative.
type Context struct {
	*model.SwitchConfig

	HasBGP          bool
	HasMLAG         bool
	HasStaticRoutes bool
	IsPrimary       bool
	StorageVLANs    []int
	AllVLANIDs      []int
	MSTPriority     int
}

// NewContext derives the render context for one switch object.
func NewContext(cfg *model.SwitchConfig) *Context {
	var ids []int
	for _, v := range cfg.VLANs {
		ids = append(ids, v.ID)
	}
	defaults := model.RoleDefaultsFor(cfg.Switch.Role)

	return &Context{
		SwitchConfig:    cfg,
		HasBGP:          cfg.BGP != nil,
		HasMLAG:         cfg.MLAG != nil,
		HasStaticRoutes: len(cfg.StaticRoutes) > 0,
		IsPrimary:       cfg.Switch.Role == model.RoleTOR1,
		StorageVLANs:    cfg.StorageVLANIDs(),
		AllVLANIDs:      ids,
		MSTPriority:     defaults.MSTPriority,
	}
}

// VLANRange returns the switch's VLAN IDs in compact range notation, e.g.
// "2,7,99,201,711-712".
func (c *Context) VLANRange() string {
	return util.CompactRange(c.AllVLANIDs)
}

// HasGatewayRedundancy reports whether any SVI carries an active/standby
// gateway block. Gates the protocol feature lines in the system section.
func (c *Context) HasGatewayRedundancy() bool {
	for _, v := range c.VLANs {
		if v.SVI != nil && v.SVI.Redundancy != nil {
			return true
		}
	}
	return false
}

// HasQoS reports whether any interface asks for the lossless storage
// policy. Gates the qos section.
func (c *Context) HasQoS() bool {
	for _, ifc := range c.Interfaces {
		if ifc.QoS {
			return true
		}
	}
	return false
}
