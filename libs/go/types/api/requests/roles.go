package requests

// SetAdminRequest replaces the configured admin.
type SetAdminRequest struct {
	Address string `json:"address" binding:"required"`
}

// RoleEntryRequest adds a shelter or donor entry.
type RoleEntryRequest struct {
	Address string `json:"address" binding:"required"`
	Name    string `json:"name"`
}
