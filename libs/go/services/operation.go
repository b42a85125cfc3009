package services

import (
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
	"github.com/rescuedao/rescuedao-api/libs/go/types/business"
)

// DonationOperation is the token handed back for every accepted action.
// It reaches exactly one terminal status, after which Done is closed.
type DonationOperation struct {
	mu   sync.RWMutex
	snap business.OperationSnapshot

	done chan struct{}
	once sync.Once
}

func newDonationOperation(kind business.OperationKind, mode, message string, now time.Time) *DonationOperation {
	return &DonationOperation{
		snap: business.OperationSnapshot{
			ID:        uuid.New(),
			Kind:      kind,
			Mode:      mode,
			Status:    business.StatusSubmitting,
			Message:   message,
			StartedAt: now,
		},
		done: make(chan struct{}),
	}
}

// ID returns the token id.
func (o *DonationOperation) ID() uuid.UUID {
	return o.snap.ID
}

// Done is closed once the operation is confirmed or failed.
func (o *DonationOperation) Done() <-chan struct{} {
	return o.done
}

// Snapshot returns the current view of the operation.
func (o *DonationOperation) Snapshot() business.OperationSnapshot {
	o.mu.RLock()
	defer o.mu.RUnlock()
	snap := o.snap
	if snap.CompletedAt != nil {
		completed := *snap.CompletedAt
		snap.CompletedAt = &completed
	}
	return snap
}

func (o *DonationOperation) setConfirming(hash common.Hash, message string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.snap.Status.IsTerminal() {
		return
	}
	o.snap.Status = business.StatusConfirming
	o.snap.TxHash = hash.Hex()
	o.snap.Message = message
}

func (o *DonationOperation) setTxHash(hash common.Hash) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.snap.TxHash = hash.Hex()
}

// complete moves the operation to a terminal status. Only the first call
// has any effect.
func (o *DonationOperation) complete(status business.OperationStatus, message string, now time.Time) bool {
	completed := false
	o.once.Do(func() {
		o.mu.Lock()
		o.snap.Status = status
		o.snap.Message = message
		o.snap.CompletedAt = &now
		o.mu.Unlock()
		close(o.done)
		completed = true
	})
	return completed
}
