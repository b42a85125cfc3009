package constants

// Common string constants used throughout the codebase
const (
	// Log levels
	ErrorLevel = "error"

	// Environments
	ProdEnvironment = "prod"

	// Roles
	AdminRole   = "admin"
	ShelterRole = "shelter"
	DonorRole   = "donor"
	NoRole      = "none"

	// Execution modes
	ContractMode   = "contract"
	SimulationMode = "simulation"

	// Contract names as they appear in deployment descriptors
	DonationSystemContract = "DonationSystem"

	// Role store persistence key
	RoleConfigKey = "donationSystemRoles"
)

// Token decimals
const (
	StableTokenDecimals = 6
	NativeTokenDecimals = 18
	StableTokenSymbol   = "USDC"
	NativeTokenSymbol   = "ETH"
)
