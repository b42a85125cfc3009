package interfaces

//go:generate mockgen -source=services.go -destination=../mocks/mock_services.go -package=mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/rescuedao/rescuedao-api/libs/go/types/business"
)

// RoleStore is the persisted, reactive role configuration.
type RoleStore interface {
	Load(ctx context.Context) (business.RoleConfig, error)
	Save(ctx context.Context, cfg business.RoleConfig) error
	SetAdmin(ctx context.Context, address string) error
	AddShelter(ctx context.Context, address, name string) error
	AddDonor(ctx context.Context, address, name string) error
	RemoveShelter(ctx context.Context, address string) error
	RemoveDonor(ctx context.Context, address string) error
	Clear(ctx context.Context) error
	Snapshot() business.RoleConfig
	Subscribe(fn func(business.RoleConfig)) (unsubscribe func())
	Refresh(ctx context.Context) error
	Run(ctx context.Context) error
}

// RoleResolver determines the effective role of an address.
type RoleResolver interface {
	Resolve(ctx context.Context, address string) business.RoleFlags
}

// Operation is the per-call token returned by every mutating action.
type Operation interface {
	ID() uuid.UUID
	Done() <-chan struct{}
	Snapshot() business.OperationSnapshot
}

// DonationOrchestrator is the uniform action surface used by views.
type DonationOrchestrator interface {
	AddShelter(ctx context.Context, address, name string) (Operation, error)
	AddAnimal(ctx context.Context, name, species string) (Operation, error)
	Donate(ctx context.Context, amount, shelterAddress string) (Operation, error)
	DonateRecurring(ctx context.Context, amount, frequency string, occurrences int, shelterAddress string) (Operation, error)
	Withdraw(ctx context.Context, amount, destinationAddress string) (Operation, error)
	MarkSpent(ctx context.Context, amount string) (Operation, error)
	FetchAnimal(ctx context.Context, id uint64) *business.Animal
	Operation(id uuid.UUID) (Operation, bool)
	Schedules() []business.RecurringSchedule
	State() business.DonationState
	Refresh(ctx context.Context)
	Subscribe(fn func(business.DonationState)) (unsubscribe func())
	Close()
}
