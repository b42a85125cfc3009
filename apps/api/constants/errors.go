package constants

// Error messages used throughout the API handlers
const (
	// Not found errors
	AnimalNotFound    = "Animal not found"
	OperationNotFound = "Operation not found"
	ResourceNotFound  = "Resource not found"

	// Request errors
	InvalidRequestBody     = "Invalid request body"
	InvalidAnimalID        = "Invalid animal ID format"
	InvalidOperationID     = "Invalid operation ID format"
	WalletNotConnected     = "Wallet not connected"
	ContractUnavailable    = "Contract unavailable or wallet not connected"
	InsufficientFunds      = "Insufficient funds in pool"
	ServiceUnavailable     = "Service unavailable"
	InternalServerError    = "Internal server error"
	RoleConfigurationClear = "Role configuration cleared"
)
