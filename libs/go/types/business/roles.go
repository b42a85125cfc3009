package business

import (
	"sort"

	"github.com/rescuedao/rescuedao-api/libs/go/constants"
)

// RoleEntry is the per-address payload stored for shelters and donors.
type RoleEntry struct {
	Name string `json:"name"`
}

// RoleConfig is the persisted mapping of addresses to roles. Keys of
// Shelters and Donors are always lowercase.
type RoleConfig struct {
	Admin    string               `json:"admin,omitempty"`
	Shelters map[string]RoleEntry `json:"shelters"`
	Donors   map[string]RoleEntry `json:"donors"`
}

// NewRoleConfig returns an empty configuration with initialized maps.
func NewRoleConfig() RoleConfig {
	return RoleConfig{
		Shelters: map[string]RoleEntry{},
		Donors:   map[string]RoleEntry{},
	}
}

// DefaultRoleConfig is the configuration persisted on first load.
func DefaultRoleConfig() RoleConfig {
	cfg := NewRoleConfig()
	cfg.Admin = constants.DefaultAdminAddress
	cfg.Shelters[constants.DefaultShelterAddress] = RoleEntry{Name: constants.DefaultShelterName}
	cfg.Donors[constants.DefaultDonorAddress] = RoleEntry{Name: constants.DefaultDonorName}
	return cfg
}

// Clone returns a deep copy so snapshots handed out never alias store state.
func (c RoleConfig) Clone() RoleConfig {
	out := RoleConfig{
		Admin:    c.Admin,
		Shelters: make(map[string]RoleEntry, len(c.Shelters)),
		Donors:   make(map[string]RoleEntry, len(c.Donors)),
	}
	for k, v := range c.Shelters {
		out.Shelters[k] = v
	}
	for k, v := range c.Donors {
		out.Donors[k] = v
	}
	return out
}

// Equal reports whether two configurations hold the same entries.
func (c RoleConfig) Equal(other RoleConfig) bool {
	if c.Admin != other.Admin || len(c.Shelters) != len(other.Shelters) || len(c.Donors) != len(other.Donors) {
		return false
	}
	for k, v := range c.Shelters {
		if o, ok := other.Shelters[k]; !ok || o != v {
			return false
		}
	}
	for k, v := range c.Donors {
		if o, ok := other.Donors[k]; !ok || o != v {
			return false
		}
	}
	return true
}

// RoleListing is a single {address, name} row of the shelter or donor list.
type RoleListing struct {
	Address string `json:"address"`
	Name    string `json:"name"`
}

// ShelterList returns the shelters sorted by address.
func (c RoleConfig) ShelterList() []RoleListing {
	return listEntries(c.Shelters)
}

// DonorList returns the donors sorted by address.
func (c RoleConfig) DonorList() []RoleListing {
	return listEntries(c.Donors)
}

func listEntries(entries map[string]RoleEntry) []RoleListing {
	out := make([]RoleListing, 0, len(entries))
	for addr, entry := range entries {
		out = append(out, RoleListing{Address: addr, Name: entry.Name})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Address < out[j].Address })
	return out
}

// Role is the effective role of a connected address.
type Role string

const (
	RoleAdmin   Role = constants.AdminRole
	RoleShelter Role = constants.ShelterRole
	RoleDonor   Role = constants.DonorRole
	RoleNone    Role = constants.NoRole
)

// RoleFlags holds the resolved role booleans. At most one is true.
type RoleFlags struct {
	IsAdmin   bool `json:"is_admin"`
	IsShelter bool `json:"is_shelter"`
	IsDonor   bool `json:"is_donor"`
}

// Role collapses the flags into a single role value.
func (f RoleFlags) Role() Role {
	switch {
	case f.IsAdmin:
		return RoleAdmin
	case f.IsShelter:
		return RoleShelter
	case f.IsDonor:
		return RoleDonor
	default:
		return RoleNone
	}
}
