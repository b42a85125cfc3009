package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	apiconstants "github.com/rescuedao/rescuedao-api/apps/api/constants"
	"github.com/rescuedao/rescuedao-api/libs/go/constants"
	"github.com/rescuedao/rescuedao-api/libs/go/helpers"
	"github.com/rescuedao/rescuedao-api/libs/go/interfaces"
	"github.com/rescuedao/rescuedao-api/libs/go/services"
	"github.com/rescuedao/rescuedao-api/libs/go/types/api/requests"
	"github.com/rescuedao/rescuedao-api/libs/go/types/api/responses"
	"github.com/rescuedao/rescuedao-api/libs/go/types/business"
)

// DonationHandler exposes the orchestrator actions
type DonationHandler struct {
	common *CommonServices
}

// NewDonationHandler creates a new donation handler
func NewDonationHandler(common *CommonServices) *DonationHandler {
	return &DonationHandler{common: common}
}

func (h *DonationHandler) orchestrator() interfaces.DonationOrchestrator {
	return h.common.Orchestrator
}

// accepted answers 202 with the operation token, or maps the synchronous
// rejection.
func accepted(c *gin.Context, op interfaces.Operation, err error) {
	if err != nil {
		handleServiceError(c, err)
		return
	}
	sendSuccess(c, http.StatusAccepted, responses.OperationResponse{
		Object:    "operation",
		Operation: op.Snapshot(),
	})
}

func bindJSON(c *gin.Context, dst interface{}) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		sendError(c, http.StatusBadRequest, apiconstants.InvalidRequestBody, err)
		return false
	}
	return true
}

// GetState returns the orchestrator snapshot
func (h *DonationHandler) GetState(c *gin.Context) {
	sendSuccess(c, http.StatusOK, responses.StateResponse{
		Object:        "state",
		DonationState: h.orchestrator().State(),
	})
}

// AddShelter registers a shelter
func (h *DonationHandler) AddShelter(c *gin.Context) {
	var req requests.AddShelterRequest
	if !bindJSON(c, &req) {
		return
	}
	op, err := h.orchestrator().AddShelter(c.Request.Context(), req.Address, req.Name)
	accepted(c, op, err)
}

// AddAnimal registers an animal for the connected shelter
func (h *DonationHandler) AddAnimal(c *gin.Context) {
	var req requests.AddAnimalRequest
	if !bindJSON(c, &req) {
		return
	}
	op, err := h.orchestrator().AddAnimal(c.Request.Context(), req.Name, req.Species)
	accepted(c, op, err)
}

// GetAnimal returns one animal by id
func (h *DonationHandler) GetAnimal(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("animal_id"), 10, 64)
	if err != nil {
		sendError(c, http.StatusBadRequest, apiconstants.InvalidAnimalID, err)
		return
	}

	animal := h.orchestrator().FetchAnimal(c.Request.Context(), id)
	if animal == nil {
		sendError(c, http.StatusNotFound, apiconstants.AnimalNotFound, services.ErrNotFound)
		return
	}
	sendSuccess(c, http.StatusOK, toAnimalResponse(animal))
}

// Donate sends a one-off donation
func (h *DonationHandler) Donate(c *gin.Context) {
	var req requests.DonateRequest
	if !bindJSON(c, &req) {
		return
	}
	op, err := h.orchestrator().Donate(c.Request.Context(), req.Amount, req.ShelterAddress)
	accepted(c, op, err)
}

// DonateRecurring configures a recurring donation
func (h *DonationHandler) DonateRecurring(c *gin.Context) {
	var req requests.DonateRecurringRequest
	if !bindJSON(c, &req) {
		return
	}
	op, err := h.orchestrator().DonateRecurring(c.Request.Context(), req.Amount, req.Frequency, req.Occurrences, req.ShelterAddress)
	accepted(c, op, err)
}

// ListRecurring lists recorded recurring donation schedules
func (h *DonationHandler) ListRecurring(c *gin.Context) {
	sendList(c, h.orchestrator().Schedules())
}

// Withdraw moves pool funds to a wallet
func (h *DonationHandler) Withdraw(c *gin.Context) {
	var req requests.WithdrawRequest
	if !bindJSON(c, &req) {
		return
	}
	op, err := h.orchestrator().Withdraw(c.Request.Context(), req.Amount, req.DestinationAddress)
	accepted(c, op, err)
}

// MarkSpent records pool funds as spent
func (h *DonationHandler) MarkSpent(c *gin.Context) {
	var req requests.MarkSpentRequest
	if !bindJSON(c, &req) {
		return
	}
	op, err := h.orchestrator().MarkSpent(c.Request.Context(), req.Amount)
	accepted(c, op, err)
}

// GetOperation returns the current snapshot of an operation token
func (h *DonationHandler) GetOperation(c *gin.Context) {
	id, err := uuid.Parse(c.Param("operation_id"))
	if err != nil {
		sendError(c, http.StatusBadRequest, apiconstants.InvalidOperationID, err)
		return
	}
	op, ok := h.orchestrator().Operation(id)
	if !ok {
		sendError(c, http.StatusNotFound, apiconstants.OperationNotFound, services.ErrNotFound)
		return
	}
	sendSuccess(c, http.StatusOK, responses.OperationResponse{Object: "operation", Operation: op.Snapshot()})
}

func toAnimalResponse(a *business.Animal) responses.AnimalResponse {
	return responses.AnimalResponse{
		ID:           a.ID,
		Shelter:      a.Shelter,
		Name:         a.Name,
		Species:      a.Species,
		Balance:      helpers.FormatUnitsTrimmed(a.Balance, constants.StableTokenDecimals),
		Active:       a.Active,
		RegisteredAt: a.RegisteredAt,
	}
}
