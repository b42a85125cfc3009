package services

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
	"github.com/rescuedao/rescuedao-api/libs/go/constants"
	"github.com/rescuedao/rescuedao-api/libs/go/helpers"
	"github.com/rescuedao/rescuedao-api/libs/go/interfaces"
	"github.com/rescuedao/rescuedao-api/libs/go/logger"
	"github.com/rescuedao/rescuedao-api/libs/go/metrics"
	"github.com/rescuedao/rescuedao-api/libs/go/types/business"
)

var _ interfaces.DonationOrchestrator = (*DonationOrchestrator)(nil)

// ErrOrchestratorClosed is returned by actions issued after Close.
var ErrOrchestratorClosed = errors.New("orchestrator closed")

// maxRetainedOperations bounds the finished operations kept for lookup.
const maxRetainedOperations = 512

var failurePrefixes = map[business.OperationKind]string{
	business.OperationAddShelter:      "Failed to add shelter",
	business.OperationAddAnimal:       "Failed to add animal",
	business.OperationDonate:          "Failed to donate",
	business.OperationDonateRecurring: "Failed to configure recurring donation",
	business.OperationWithdraw:        "Failed to withdraw",
	business.OperationMarkSpent:       "Failed to mark as spent",
}

// OrchestratorConfig wires a DonationOrchestrator. Gateway selects the
// contract strategy; without it the simulation strategy is used.
type OrchestratorConfig struct {
	WalletAddress string
	Gateway       interfaces.ContractGateway
	Transferer    interfaces.NativeTransferer
	Roles         interfaces.RoleStore
	Simulation    *SimulationStore
	Schedules     *ScheduleBook
	Metrics       *metrics.Metrics
	Latency       LatencyConfig
	// Strategy overrides the gateway-based selection.
	Strategy ExecutionStrategy
}

// DonationOrchestrator is the single action surface over the contract or
// the simulation, tracking every write through its lifecycle.
type DonationOrchestrator struct {
	wallet    string
	strategy  ExecutionStrategy
	roles     interfaces.RoleStore
	schedules *ScheduleBook
	metrics   *metrics.Metrics
	logger    *logger.StructuredLogger

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu          sync.RWMutex
	closed      bool
	message     string
	inFlight    map[uuid.UUID]*DonationOperation
	operations  map[uuid.UUID]*DonationOperation
	order       []uuid.UUID
	flags       business.RoleFlags
	pool        *big.Int
	shelterInfo *business.Shelter
	animalIDs   []uint64

	refreshMu      sync.Mutex
	bus            *EventBus[business.DonationState]
	unsubscribeFns []func()
}

// NewDonationOrchestrator builds an orchestrator for the connected wallet and
// performs the initial read of roles, pool, shelter info and animal ids.
// Background work stops when ctx is cancelled or Close is called.
func NewDonationOrchestrator(ctx context.Context, cfg OrchestratorConfig) (*DonationOrchestrator, error) {
	if cfg.Roles == nil {
		return nil, fmt.Errorf("role store is required")
	}
	wallet := helpers.NormalizeAddress(cfg.WalletAddress)
	if wallet != "" && !helpers.IsAddressValid(wallet) {
		return nil, fmt.Errorf("invalid wallet address %q", cfg.WalletAddress)
	}
	if err := checkSigners(wallet, cfg.Gateway, cfg.Transferer); err != nil {
		return nil, err
	}

	strategy := cfg.Strategy
	if strategy == nil {
		if cfg.Gateway != nil {
			strategy = NewContractStrategy(cfg.Gateway, cfg.Roles)
		} else {
			strategy = NewSimulationStrategy(cfg.Simulation, cfg.Roles, cfg.Transferer, cfg.Latency)
		}
	}
	schedules := cfg.Schedules
	if schedules == nil {
		schedules = NewScheduleBook()
	}

	runCtx, cancel := context.WithCancel(ctx)
	o := &DonationOrchestrator{
		wallet:     wallet,
		strategy:   strategy,
		roles:      cfg.Roles,
		schedules:  schedules,
		metrics:    cfg.Metrics,
		logger:     logger.NewStructuredLogger(logger.ComponentOrchestrator).WithWallet(wallet).WithField("mode", strategy.Mode()),
		ctx:        runCtx,
		cancel:     cancel,
		inFlight:   make(map[uuid.UUID]*DonationOperation),
		operations: make(map[uuid.UUID]*DonationOperation),
		pool:       new(big.Int),
		bus:        NewEventBus[business.DonationState](),
	}

	o.unsubscribeFns = append(o.unsubscribeFns, cfg.Roles.Subscribe(func(business.RoleConfig) {
		o.goTracked(func() { o.Refresh(o.ctx) })
	}))

	o.Refresh(ctx)
	o.logger.Info("donation orchestrator ready")
	return o, nil
}

// signerReporter is implemented by gateways that sign writes locally.
type signerReporter interface {
	Signer() common.Address
}

// checkSigners rejects a connected wallet that differs from the account
// signing contract writes or native transfers.
func checkSigners(wallet string, gateway interfaces.ContractGateway, transferer interfaces.NativeTransferer) error {
	if wallet == "" {
		return nil
	}
	signers := make([]common.Address, 0, 2)
	if transferer != nil {
		signers = append(signers, transferer.From())
	}
	if g, ok := gateway.(signerReporter); ok && g.Signer() != (common.Address{}) {
		signers = append(signers, g.Signer())
	}
	for _, signer := range signers {
		if helpers.NormalizeAddress(signer.Hex()) != wallet {
			return fmt.Errorf("%w: wallet %s, signer %s", ErrSignerMismatch, wallet, signer.Hex())
		}
	}
	return nil
}

// Mode reports the active strategy.
func (o *DonationOrchestrator) Mode() string {
	return o.strategy.Mode()
}

// AddShelter registers a shelter on the contract.
func (o *DonationOrchestrator) AddShelter(ctx context.Context, address, name string) (interfaces.Operation, error) {
	kind := business.OperationAddShelter
	if err := o.checkCaller(ctx); err != nil {
		return nil, err
	}
	addr, err := requireAddress("address", address, "please enter the shelter address")
	if err != nil {
		return nil, err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, newValidationError("name", "please enter the shelter name")
	}
	if err := o.preflight(kind); err != nil {
		return nil, err
	}

	return o.start(kind, o.strategy.ProgressMessage(kind, ""), func(ctx context.Context) (Submission, error) {
		return o.strategy.AddShelter(ctx, addr, name)
	}, nil)
}

// AddAnimal registers an animal owned by the connected shelter.
func (o *DonationOrchestrator) AddAnimal(ctx context.Context, name, species string) (interfaces.Operation, error) {
	kind := business.OperationAddAnimal
	if err := o.checkCaller(ctx); err != nil {
		return nil, err
	}
	name = strings.TrimSpace(name)
	species = strings.TrimSpace(species)
	if name == "" || species == "" {
		return nil, newValidationError("animal", "please complete all fields")
	}
	if err := o.preflight(kind); err != nil {
		return nil, err
	}

	return o.start(kind, o.strategy.ProgressMessage(kind, ""), func(ctx context.Context) (Submission, error) {
		return o.strategy.AddAnimal(ctx, o.wallet, name, species)
	}, nil)
}

// Donate makes a one-time donation to a shelter.
func (o *DonationOrchestrator) Donate(ctx context.Context, amount, shelterAddress string) (interfaces.Operation, error) {
	kind := business.OperationDonate
	if err := o.checkCaller(ctx); err != nil {
		return nil, err
	}
	value, err := o.parseAmount(kind, amount)
	if err != nil {
		return nil, err
	}
	shelter, err := requireAddress("shelter_address", shelterAddress, "please select a shelter")
	if err != nil {
		return nil, err
	}
	if err := o.preflight(kind); err != nil {
		return nil, err
	}

	return o.start(kind, o.strategy.ProgressMessage(kind, ""), func(ctx context.Context) (Submission, error) {
		return o.strategy.Donate(ctx, value, shelter)
	}, nil)
}

// DonateRecurring sets up a recurring donation and records its schedule.
func (o *DonationOrchestrator) DonateRecurring(ctx context.Context, amount, frequency string, occurrences int, shelterAddress string) (interfaces.Operation, error) {
	kind := business.OperationDonateRecurring
	if err := o.checkCaller(ctx); err != nil {
		return nil, err
	}
	value, err := o.parseAmount(kind, amount)
	if err != nil {
		return nil, err
	}
	frequency = strings.ToLower(strings.TrimSpace(frequency))
	if !helpers.IsValidFrequency(frequency) {
		return nil, newValidationError("frequency", "frequency must be daily, weekly or monthly")
	}
	if occurrences < constants.MinOccurrences || occurrences > constants.MaxOccurrences {
		return nil, newValidationError("occurrences",
			fmt.Sprintf("number of occurrences must be between %d and %d", constants.MinOccurrences, constants.MaxOccurrences))
	}
	shelter, err := requireAddress("shelter_address", shelterAddress, "please select a shelter")
	if err != nil {
		return nil, err
	}
	if err := o.preflight(kind); err != nil {
		return nil, err
	}

	req := RecurringDonation{Shelter: shelter, Amount: value, Frequency: frequency, Occurrences: occurrences}
	return o.start(kind, o.strategy.ProgressMessage(kind, frequency), func(ctx context.Context) (Submission, error) {
		return o.strategy.DonateRecurring(ctx, req)
	}, func() {
		schedule, err := o.schedules.Record(o.wallet, shelter, value, frequency, occurrences, o.strategy.Mode())
		if err != nil {
			o.logger.Error("failed to record recurring schedule", err)
			return
		}
		o.logger.WithField("schedule_id", schedule.ID.String()).Info("recurring schedule recorded")
	})
}

// Withdraw moves funds from the connected shelter's pool to destination.
func (o *DonationOrchestrator) Withdraw(ctx context.Context, amount, destinationAddress string) (interfaces.Operation, error) {
	kind := business.OperationWithdraw
	if err := o.checkCaller(ctx); err != nil {
		return nil, err
	}
	value, err := o.parseAmount(kind, amount)
	if err != nil {
		return nil, err
	}
	destination, err := requireAddress("destination_address", destinationAddress, "please enter the destination address")
	if err != nil {
		return nil, err
	}
	if err := o.preflight(kind); err != nil {
		return nil, err
	}

	return o.start(kind, o.strategy.ProgressMessage(kind, ""), func(ctx context.Context) (Submission, error) {
		return o.strategy.Withdraw(ctx, o.wallet, value, destination)
	}, nil)
}

// MarkSpent records amount of the connected shelter's pool as spent.
func (o *DonationOrchestrator) MarkSpent(ctx context.Context, amount string) (interfaces.Operation, error) {
	kind := business.OperationMarkSpent
	if err := o.checkCaller(ctx); err != nil {
		return nil, err
	}
	value, err := o.parseAmount(kind, amount)
	if err != nil {
		return nil, err
	}
	if err := o.preflight(kind); err != nil {
		return nil, err
	}

	return o.start(kind, o.strategy.ProgressMessage(kind, ""), func(ctx context.Context) (Submission, error) {
		return o.strategy.MarkSpent(ctx, o.wallet, value)
	}, nil)
}

// FetchAnimal returns the animal with id, or nil when it cannot be read.
func (o *DonationOrchestrator) FetchAnimal(ctx context.Context, id uint64) *business.Animal {
	animal, err := o.strategy.FetchAnimal(ctx, id)
	if err != nil {
		o.logger.WithField("animal_id", id).Error("failed to fetch animal", err)
		return nil
	}
	return animal
}

// Operation looks up an operation token by id.
func (o *DonationOrchestrator) Operation(id uuid.UUID) (interfaces.Operation, bool) {
	o.mu.RLock()
	defer o.mu.RUnlock()
	op, ok := o.operations[id]
	if !ok {
		return nil, false
	}
	return op, true
}

// Schedules lists the recorded recurring donations.
func (o *DonationOrchestrator) Schedules() []business.RecurringSchedule {
	return o.schedules.List()
}

// State returns the current snapshot for the connected wallet.
func (o *DonationOrchestrator) State() business.DonationState {
	cfg := o.roles.Snapshot()

	o.mu.RLock()
	defer o.mu.RUnlock()

	var info *business.Shelter
	if o.shelterInfo != nil {
		copied := *o.shelterInfo
		info = &copied
	}
	ids := make([]uint64, len(o.animalIDs))
	copy(ids, o.animalIDs)

	return business.DonationState{
		ContractAddress: o.strategy.ContractAddress(),
		Mode:            o.strategy.Mode(),
		Role:            o.flags.Role(),
		RoleFlags:       o.flags,
		Pool:            helpers.FormatUnitsTrimmed(o.pool, constants.StableTokenDecimals),
		ShelterInfo:     info,
		AnimalIDs:       ids,
		Shelters:        cfg.ShelterList(),
		Donors:          cfg.DonorList(),
		Message:         o.message,
		IsProcessing:    len(o.inFlight) > 0,
		IsConnected:     o.wallet != "",
		UserAddress:     o.wallet,
	}
}

// Refresh re-reads roles, pool, shelter info and animal ids. Read failures
// are logged and leave zero values.
func (o *DonationOrchestrator) Refresh(ctx context.Context) {
	o.refreshMu.Lock()
	defer o.refreshMu.Unlock()

	flags := business.RoleFlags{}
	if o.wallet != "" {
		flags = o.strategy.ResolveRoles(ctx, o.wallet)
	}

	pool, err := o.strategy.Pool(ctx, o.wallet, flags)
	if err != nil {
		o.logger.Error("failed to read donation pool", err)
		pool = new(big.Int)
	}
	if pool == nil {
		pool = new(big.Int)
	}

	var info *business.Shelter
	var ids []uint64
	if o.wallet != "" {
		if info, err = o.strategy.ShelterInfo(ctx, o.wallet, flags); err != nil {
			o.logger.Error("failed to read shelter info", err)
			info = nil
		}
		if ids, err = o.strategy.AnimalIDs(ctx, o.wallet, flags); err != nil {
			o.logger.Error("failed to read animal ids", err)
			ids = nil
		}
	}

	o.mu.Lock()
	o.flags = flags
	o.pool = pool
	o.shelterInfo = info
	o.animalIDs = ids
	o.mu.Unlock()

	o.publish()
}

// Subscribe registers fn for every state change.
func (o *DonationOrchestrator) Subscribe(fn func(business.DonationState)) func() {
	return o.bus.Subscribe(fn)
}

// WaitIdle blocks until no operation is in flight or ctx is done.
func (o *DonationOrchestrator) WaitIdle(ctx context.Context) error {
	for {
		var pending *DonationOperation
		o.mu.RLock()
		for _, op := range o.inFlight {
			pending = op
			break
		}
		o.mu.RUnlock()
		if pending == nil {
			return nil
		}

		select {
		case <-pending.Done():
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// Close stops accepting actions and waits for in-flight operations, which
// observe a cancelled context.
func (o *DonationOrchestrator) Close() {
	o.mu.Lock()
	if o.closed {
		o.mu.Unlock()
		return
	}
	o.closed = true
	o.mu.Unlock()

	for _, unsubscribe := range o.unsubscribeFns {
		unsubscribe()
	}
	o.cancel()
	o.wg.Wait()
}

func (o *DonationOrchestrator) checkCaller(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if o.wallet == "" {
		o.setMessage(constants.MsgWalletNotConnected)
		return ErrWalletNotConnected
	}
	return nil
}

func (o *DonationOrchestrator) preflight(kind business.OperationKind) error {
	err := o.strategy.Preflight(kind)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrContractUnavailable):
		o.setMessage(constants.MsgNoContractOrWallet)
	case errors.Is(err, ErrProviderUnavailable):
		o.setMessage(constants.MsgProviderUnavailable)
	default:
		o.setMessage(fmt.Sprintf("%s: %v", failurePrefixes[kind], err))
	}
	return err
}

func (o *DonationOrchestrator) parseAmount(kind business.OperationKind, amount string) (*big.Int, error) {
	value, err := helpers.ParseUnits(amount, o.strategy.Decimals(kind))
	if err != nil || value.Sign() <= 0 {
		return nil, newValidationError("amount", "please enter a valid amount")
	}
	return value, nil
}

func requireAddress(field, value, missing string) (string, error) {
	addr := helpers.NormalizeAddress(value)
	if addr == "" {
		return "", newValidationError(field, missing)
	}
	if !helpers.IsAddressValid(addr) {
		return "", newValidationError(field, "invalid address format")
	}
	return addr, nil
}

func (o *DonationOrchestrator) start(kind business.OperationKind, progress string, exec func(context.Context) (Submission, error), onSuccess func()) (interfaces.Operation, error) {
	op := newDonationOperation(kind, o.strategy.Mode(), progress, time.Now().UTC())

	o.mu.Lock()
	if o.closed {
		o.mu.Unlock()
		return nil, ErrOrchestratorClosed
	}
	o.inFlight[op.ID()] = op
	o.rememberLocked(op)
	o.message = progress
	o.wg.Add(1)
	o.mu.Unlock()

	o.metrics.OperationStarted()
	o.logger.LogTransactionEvent(op.ID().String(), string(kind), string(business.StatusSubmitting), "")
	o.publish()

	go o.run(op, exec, onSuccess)
	return op, nil
}

func (o *DonationOrchestrator) run(op *DonationOperation, exec func(context.Context) (Submission, error), onSuccess func()) {
	defer o.wg.Done()
	kind := op.Snapshot().Kind

	sub, err := exec(o.ctx)
	if err != nil {
		o.finish(op, business.StatusFailed, o.failureMessage(kind, err), err)
		return
	}

	if !sub.AwaitReceipt {
		if sub.TxHash != (common.Hash{}) {
			op.setTxHash(sub.TxHash)
		}
		if onSuccess != nil {
			onSuccess()
		}
		o.Refresh(o.ctx)
		o.finish(op, business.StatusConfirmed, sub.Message, nil)
		return
	}

	op.setConfirming(sub.TxHash, op.Snapshot().Message)
	o.logger.LogTransactionEvent(op.ID().String(), string(kind), string(business.StatusConfirming), sub.TxHash.Hex())
	o.publish()

	if err := o.strategy.Confirm(o.ctx, sub.TxHash); err != nil {
		o.finish(op, business.StatusFailed, fmt.Sprintf("Error: %v", err), err)
		return
	}
	if onSuccess != nil {
		onSuccess()
	}
	o.Refresh(o.ctx)
	o.finish(op, business.StatusConfirmed, constants.MsgTxConfirmed, nil)
}

// finish clears the in-flight entry before closing Done so that a waiter
// observes IsProcessing already updated.
func (o *DonationOrchestrator) finish(op *DonationOperation, status business.OperationStatus, message string, cause error) {
	snap := op.Snapshot()
	if snap.Status.IsTerminal() {
		return
	}

	o.mu.Lock()
	delete(o.inFlight, snap.ID)
	o.message = message
	o.mu.Unlock()

	now := time.Now().UTC()
	if !op.complete(status, message, now) {
		return
	}
	o.metrics.OperationFinished(string(snap.Kind), snap.Mode, string(status), now.Sub(snap.StartedAt))

	log := o.logger.WithOperationID(snap.ID.String()).WithOperation(string(snap.Kind))
	if cause != nil {
		log.Error(message, cause)
	} else {
		log.Info(message)
	}
	o.logger.LogTransactionEvent(snap.ID.String(), string(snap.Kind), string(status), op.Snapshot().TxHash)
	o.publish()
}

func (o *DonationOrchestrator) failureMessage(kind business.OperationKind, err error) string {
	if errors.Is(err, ErrInsufficientFunds) {
		return constants.MsgInsufficientFundsSim
	}
	return fmt.Sprintf("%s: %v", failurePrefixes[kind], err)
}

func (o *DonationOrchestrator) setMessage(message string) {
	o.mu.Lock()
	o.message = message
	o.mu.Unlock()
	o.publish()
}

// rememberLocked keeps op for lookup, evicting the oldest finished
// operations past the retention bound. Callers hold o.mu.
func (o *DonationOrchestrator) rememberLocked(op *DonationOperation) {
	o.operations[op.ID()] = op
	o.order = append(o.order, op.ID())
	if len(o.order) <= maxRetainedOperations {
		return
	}
	kept := o.order[:0]
	excess := len(o.order) - maxRetainedOperations
	for _, id := range o.order {
		if excess > 0 {
			if _, running := o.inFlight[id]; !running {
				delete(o.operations, id)
				excess--
				continue
			}
		}
		kept = append(kept, id)
	}
	o.order = kept
}

func (o *DonationOrchestrator) goTracked(fn func()) {
	o.mu.Lock()
	if o.closed {
		o.mu.Unlock()
		return
	}
	o.wg.Add(1)
	o.mu.Unlock()

	go func() {
		defer o.wg.Done()
		fn()
	}()
}

func (o *DonationOrchestrator) publish() {
	if o.bus.Len() == 0 {
		return
	}
	o.bus.Publish(o.State())
}
