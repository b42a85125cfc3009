package responses

import (
	"time"

	"github.com/rescuedao/rescuedao-api/libs/go/types/business"
)

// HealthResponse is returned by the health endpoints
type HealthResponse struct {
	Status string `json:"status"`
	Mode   string `json:"mode,omitempty"`
}

// OperationResponse wraps an accepted action's token
type OperationResponse struct {
	Object    string                     `json:"object"`
	Operation business.OperationSnapshot `json:"operation"`
}

// AnimalResponse is the public view of an animal
type AnimalResponse struct {
	ID           uint64    `json:"id"`
	Shelter      string    `json:"shelter"`
	Name         string    `json:"name"`
	Species      string    `json:"species"`
	Balance      string    `json:"balance"`
	Active       bool      `json:"active"`
	RegisteredAt time.Time `json:"registered_at"`
}

// StateResponse is the orchestrator snapshot for the connected wallet
type StateResponse struct {
	Object string `json:"object"`
	business.DonationState
}

// ListResponse is a non-paginated list
type ListResponse struct {
	Object string      `json:"object"`
	Data   interface{} `json:"data"`
}
