package constants

// Recurring donation frequencies
const (
	FrequencyDaily   = "daily"
	FrequencyWeekly  = "weekly"
	FrequencyMonthly = "monthly"
)

// Recurring donation bounds
const (
	MinOccurrences = 1
	MaxOccurrences = 100
)

// Default role configuration created on first load
const (
	DefaultAdminAddress   = "0x16b67e7cdc48ea1e9acb44965f26ddc6a1107c65"
	DefaultShelterAddress = "0x925d17c8ebb340f04dda7545ad6f193b353b29f3"
	DefaultShelterName    = "Protectora"
	DefaultDonorAddress   = DefaultAdminAddress
	DefaultDonorName      = "Donante Demo"
)

// Status messages surfaced through the orchestrator message channel
const (
	MsgTxConfirmed          = "Transaction confirmed successfully!"
	MsgContractUnavailable  = "Contract unavailable"
	MsgNoContractOrWallet   = "Contract unavailable or wallet not connected"
	MsgWalletNotConnected   = "Wallet not connected"
	MsgProviderUnavailable  = "Provider not available to send transaction"
	MsgInsufficientFundsSim = "Insufficient funds in pool (simulation)"
)
