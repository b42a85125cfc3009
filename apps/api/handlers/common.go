package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	apiconstants "github.com/rescuedao/rescuedao-api/apps/api/constants"
	"github.com/rescuedao/rescuedao-api/libs/go/interfaces"
	"github.com/rescuedao/rescuedao-api/libs/go/logger"
	"github.com/rescuedao/rescuedao-api/libs/go/middleware"
	"github.com/rescuedao/rescuedao-api/libs/go/services"
	"github.com/rescuedao/rescuedao-api/libs/go/types/api/responses"
	"go.uber.org/zap"
)

// CommonServices holds the dependencies shared across handlers
type CommonServices struct {
	Orchestrator interfaces.DonationOrchestrator
	Roles        interfaces.RoleStore
	Resolver     interfaces.RoleResolver
	logger       *zap.Logger
}

// CommonServicesConfig contains all dependencies needed to create CommonServices
type CommonServicesConfig struct {
	Orchestrator interfaces.DonationOrchestrator
	Roles        interfaces.RoleStore
	Resolver     interfaces.RoleResolver
	Logger       *zap.Logger
}

// NewCommonServices creates a new instance of CommonServices
func NewCommonServices(config CommonServicesConfig) *CommonServices {
	if config.Logger == nil {
		config.Logger = logger.Log
	}
	return &CommonServices{
		Orchestrator: config.Orchestrator,
		Roles:        config.Roles,
		Resolver:     config.Resolver,
		logger:       config.Logger,
	}
}

// sendError logs the failure and writes a JSON error carrying the
// correlation id.
func sendError(c *gin.Context, statusCode int, message string, err error) {
	correlationID := middleware.GetCorrelationID(c)

	fields := []zap.Field{
		zap.Error(err),
		zap.String("path", c.Request.URL.Path),
		zap.String("method", c.Request.Method),
		zap.String("correlation_id", correlationID),
	}
	if statusCode >= http.StatusInternalServerError {
		logger.Error(message, fields...)
	} else {
		logger.Debug(message, fields...)
	}

	resp := responses.ErrorResponse{Error: message, CorrelationID: correlationID}
	var validationErr *services.ValidationError
	if errors.As(err, &validationErr) {
		resp.Field = validationErr.Field
	}
	c.JSON(statusCode, resp)
}

// handleServiceError maps service errors onto HTTP status codes.
func handleServiceError(c *gin.Context, err error) {
	var validationErr *services.ValidationError
	switch {
	case errors.As(err, &validationErr):
		sendError(c, http.StatusBadRequest, validationErr.Message, err)
	case errors.Is(err, services.ErrNotFound):
		sendError(c, http.StatusNotFound, apiconstants.ResourceNotFound, err)
	case errors.Is(err, services.ErrWalletNotConnected):
		sendError(c, http.StatusConflict, apiconstants.WalletNotConnected, err)
	case errors.Is(err, services.ErrContractUnavailable):
		sendError(c, http.StatusConflict, apiconstants.ContractUnavailable, err)
	case errors.Is(err, services.ErrInsufficientFunds):
		sendError(c, http.StatusUnprocessableEntity, apiconstants.InsufficientFunds, err)
	case errors.Is(err, services.ErrProviderUnavailable), errors.Is(err, services.ErrOrchestratorClosed):
		sendError(c, http.StatusServiceUnavailable, apiconstants.ServiceUnavailable, err)
	default:
		sendError(c, http.StatusInternalServerError, apiconstants.InternalServerError, err)
	}
}

// sendSuccess is a helper function that sends a success response
func sendSuccess(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// sendSuccessMessage is a helper function that sends a success message
func sendSuccessMessage(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, responses.SuccessResponse{Message: message})
}

// sendList is a helper function that sends a list response
func sendList(c *gin.Context, items interface{}) {
	c.JSON(http.StatusOK, responses.ListResponse{Object: "list", Data: items})
}
