package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rescuedao/rescuedao-api/libs/go/types/api/responses"
)

type HealthHandler struct {
	mode string
}

func NewHealthHandler(mode string) *HealthHandler {
	return &HealthHandler{mode: mode}
}

// Use types from the centralized packages
type HealthResponse = responses.HealthResponse

// Health reports liveness and the execution mode
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status: "ok",
		Mode:   h.mode,
	})
}
