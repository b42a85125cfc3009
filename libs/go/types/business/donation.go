package business

import (
	"math/big"
	"time"

	"github.com/google/uuid"
)

// Shelter is a registered rescue organization.
type Shelter struct {
	Address      string    `json:"address"`
	Name         string    `json:"name"`
	Active       bool      `json:"active"`
	RegisteredAt time.Time `json:"registered_at"`
}

// Animal is a rescued animal registered by its owning shelter.
type Animal struct {
	ID           uint64    `json:"id"`
	Shelter      string    `json:"shelter"`
	Name         string    `json:"name"`
	Species      string    `json:"species"`
	Balance      *big.Int  `json:"balance"`
	Active       bool      `json:"active"`
	RegisteredAt time.Time `json:"registered_at"`
}

// OperationKind names a mutating orchestrator action.
type OperationKind string

const (
	OperationAddShelter      OperationKind = "add_shelter"
	OperationAddAnimal       OperationKind = "add_animal"
	OperationDonate          OperationKind = "donate"
	OperationDonateRecurring OperationKind = "donate_recurring"
	OperationWithdraw        OperationKind = "withdraw"
	OperationMarkSpent       OperationKind = "mark_spent"
)

// OperationStatus tracks a single write through its lifecycle.
type OperationStatus string

const (
	StatusSubmitting OperationStatus = "submitting"
	StatusConfirming OperationStatus = "confirming"
	StatusConfirmed  OperationStatus = "confirmed"
	StatusFailed     OperationStatus = "failed"
)

// IsTerminal reports whether no further transitions can happen.
func (s OperationStatus) IsTerminal() bool {
	return s == StatusConfirmed || s == StatusFailed
}

// OperationSnapshot is the externally visible view of an operation token.
type OperationSnapshot struct {
	ID          uuid.UUID       `json:"id"`
	Kind        OperationKind   `json:"kind"`
	Mode        string          `json:"mode"`
	Status      OperationStatus `json:"status"`
	Message     string          `json:"message"`
	TxHash      string          `json:"tx_hash,omitempty"`
	StartedAt   time.Time       `json:"started_at"`
	CompletedAt *time.Time      `json:"completed_at,omitempty"`
}

// RecurringSchedule records the bookkeeping of a recurring donation. Nothing
// executes the listed occurrences; they only describe the intended cadence.
type RecurringSchedule struct {
	ID              uuid.UUID   `json:"id"`
	Donor           string      `json:"donor"`
	Shelter         string      `json:"shelter"`
	Amount          string      `json:"amount"`
	Frequency       string      `json:"frequency"`
	Occurrences     int         `json:"occurrences"`
	Total           string      `json:"total"`
	Mode            string      `json:"mode"`
	CreatedAt       time.Time   `json:"created_at"`
	OccurrenceDates []time.Time `json:"occurrence_dates"`
}

// DonationState is the snapshot of everything a view renders for the
// connected wallet.
type DonationState struct {
	ContractAddress string `json:"contract_address,omitempty"`
	Mode            string `json:"mode"`
	Role            Role   `json:"role"`
	RoleFlags
	Pool         string        `json:"pool"`
	ShelterInfo  *Shelter      `json:"shelter_info,omitempty"`
	AnimalIDs    []uint64      `json:"animal_ids"`
	Shelters     []RoleListing `json:"shelters"`
	Donors       []RoleListing `json:"donors"`
	Message      string        `json:"message"`
	IsProcessing bool          `json:"is_processing"`
	IsConnected  bool          `json:"is_connected"`
	UserAddress  string        `json:"user_address,omitempty"`
}
