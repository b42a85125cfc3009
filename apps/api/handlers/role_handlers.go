package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	apiconstants "github.com/rescuedao/rescuedao-api/apps/api/constants"
	"github.com/rescuedao/rescuedao-api/libs/go/helpers"
	"github.com/rescuedao/rescuedao-api/libs/go/types/api/requests"
	"github.com/rescuedao/rescuedao-api/libs/go/types/api/responses"
	"github.com/rescuedao/rescuedao-api/libs/go/types/business"
)

// RoleHandler manages the persisted role configuration
type RoleHandler struct {
	common *CommonServices
}

// NewRoleHandler creates a new role handler
func NewRoleHandler(common *CommonServices) *RoleHandler {
	return &RoleHandler{common: common}
}

func toRoleConfigResponse(cfg business.RoleConfig) responses.RoleConfigResponse {
	return responses.RoleConfigResponse{
		Object:   "role_config",
		Admin:    cfg.Admin,
		Shelters: cfg.ShelterList(),
		Donors:   cfg.DonorList(),
	}
}

// roleMutation runs fn and answers with the refreshed configuration.
func (h *RoleHandler) roleMutation(c *gin.Context, fn func() error) {
	if err := fn(); err != nil {
		handleServiceError(c, err)
		return
	}
	sendSuccess(c, http.StatusOK, toRoleConfigResponse(h.common.Roles.Snapshot()))
}

// GetRoles returns the current role configuration
func (h *RoleHandler) GetRoles(c *gin.Context) {
	sendSuccess(c, http.StatusOK, toRoleConfigResponse(h.common.Roles.Snapshot()))
}

// SetAdmin replaces the admin address
func (h *RoleHandler) SetAdmin(c *gin.Context) {
	var req requests.SetAdminRequest
	if !bindJSON(c, &req) {
		return
	}
	h.roleMutation(c, func() error {
		return h.common.Roles.SetAdmin(c.Request.Context(), req.Address)
	})
}

// AddShelter adds or renames a shelter entry
func (h *RoleHandler) AddShelter(c *gin.Context) {
	var req requests.RoleEntryRequest
	if !bindJSON(c, &req) {
		return
	}
	h.roleMutation(c, func() error {
		return h.common.Roles.AddShelter(c.Request.Context(), req.Address, req.Name)
	})
}

// AddDonor adds or renames a donor entry
func (h *RoleHandler) AddDonor(c *gin.Context) {
	var req requests.RoleEntryRequest
	if !bindJSON(c, &req) {
		return
	}
	h.roleMutation(c, func() error {
		return h.common.Roles.AddDonor(c.Request.Context(), req.Address, req.Name)
	})
}

// RemoveShelter deletes a shelter entry
func (h *RoleHandler) RemoveShelter(c *gin.Context) {
	h.roleMutation(c, func() error {
		return h.common.Roles.RemoveShelter(c.Request.Context(), c.Param("address"))
	})
}

// RemoveDonor deletes a donor entry
func (h *RoleHandler) RemoveDonor(c *gin.Context) {
	h.roleMutation(c, func() error {
		return h.common.Roles.RemoveDonor(c.Request.Context(), c.Param("address"))
	})
}

// ClearRoles deletes the persisted configuration
func (h *RoleHandler) ClearRoles(c *gin.Context) {
	if err := h.common.Roles.Clear(c.Request.Context()); err != nil {
		handleServiceError(c, err)
		return
	}
	sendSuccessMessage(c, http.StatusOK, apiconstants.RoleConfigurationClear)
}

// ResolveRole returns the effective role of an address
func (h *RoleHandler) ResolveRole(c *gin.Context) {
	address := c.Param("address")
	flags := h.common.Resolver.Resolve(c.Request.Context(), address)
	sendSuccess(c, http.StatusOK, responses.ResolvedRoleResponse{
		Address:   helpers.NormalizeAddress(address),
		Role:      flags.Role(),
		RoleFlags: flags,
	})
}
