package responses

import (
	"github.com/rescuedao/rescuedao-api/libs/go/types/business"
)

// RoleConfigResponse is the persisted role configuration
type RoleConfigResponse struct {
	Object   string                 `json:"object"`
	Admin    string                 `json:"admin"`
	Shelters []business.RoleListing `json:"shelters"`
	Donors   []business.RoleListing `json:"donors"`
}

// ResolvedRoleResponse is the effective role of one address
type ResolvedRoleResponse struct {
	Address string        `json:"address"`
	Role    business.Role `json:"role"`
	business.RoleFlags
}
