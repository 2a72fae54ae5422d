package model

// RoleDefaults are the role-derived priorities. They are a pure function of
// the switch role: the first role of a redundant pair always outranks the
// second, and the BMC role carries no redundancy group at all.
type RoleDefaults struct {
	GatewayPriority  int  // HSRP/VRRP priority
	MLAGRolePriority int  // vPC/VLT role priority (lower wins primary)
	MSTPriority      int  // spanning-tree priority
	HasRedundancy    bool // false for non-paired roles
}

var roleDefaults = map[string]RoleDefaults{
	RoleTOR1: {GatewayPriority: 150, MLAGRolePriority: 1, MSTPriority: 8192, HasRedundancy: true},
	RoleTOR2: {GatewayPriority: 140, MLAGRolePriority: 32667, MSTPriority: 16384, HasRedundancy: true},
	RoleBMC:  {MSTPriority: 32768},
}

// RoleDefaultsFor returns the defaults for a role. Unknown roles get the BMC
// profile shape: no redundancy, default spanning-tree priority.
func RoleDefaultsFor(role string) RoleDefaults {
	if d, ok := roleDefaults[role]; ok {
		return d
	}
	return RoleDefaults{MSTPriority: 32768}
}

// PairedRole returns the other role of a TOR pair, or empty for unpaired roles.
func PairedRole(role string) string {
	switch role {
	case RoleTOR1:
		return RoleTOR2
	case RoleTOR2:
		return RoleTOR1
	}
	return ""
}
