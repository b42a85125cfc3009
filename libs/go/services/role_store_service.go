package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/rescuedao/rescuedao-api/libs/go/helpers"
	"github.com/rescuedao/rescuedao-api/libs/go/interfaces"
	"github.com/rescuedao/rescuedao-api/libs/go/logger"
	"github.com/rescuedao/rescuedao-api/libs/go/metrics"
	"github.com/rescuedao/rescuedao-api/libs/go/types/business"
	"go.uber.org/zap"
)

// DefaultRolePollInterval is the same-process fallback refresh cadence.
const DefaultRolePollInterval = time.Second

// Refresh triggers, used as metric labels.
const (
	refreshTriggerExplicit = "explicit"
	refreshTriggerPoll     = "poll"
	refreshTriggerWatch    = "watch"
)

// RoleStoreService keeps the persisted role configuration and an in-memory
// snapshot of it in sync.
type RoleStoreService struct {
	backend      interfaces.RoleBackend
	metrics      *metrics.Metrics
	pollInterval time.Duration
	logger       *zap.Logger

	// writeMu serializes read-modify-write cycles against the backend.
	writeMu sync.Mutex

	mu       sync.RWMutex
	snapshot business.RoleConfig
	bus      *EventBus[business.RoleConfig]
}

// RoleStoreOption customizes a RoleStoreService.
type RoleStoreOption func(*RoleStoreService)

// WithRolePollInterval overrides the polling interval used by Run.
func WithRolePollInterval(d time.Duration) RoleStoreOption {
	return func(s *RoleStoreService) {
		if d > 0 {
			s.pollInterval = d
		}
	}
}

// WithRoleMetrics records refreshes on m.
func WithRoleMetrics(m *metrics.Metrics) RoleStoreOption {
	return func(s *RoleStoreService) {
		s.metrics = m
	}
}

// NewRoleStoreService creates a role store over backend. The snapshot starts
// empty until Load or Refresh is called.
func NewRoleStoreService(backend interfaces.RoleBackend, opts ...RoleStoreOption) *RoleStoreService {
	s := &RoleStoreService{
		backend:      backend,
		pollInterval: DefaultRolePollInterval,
		logger:       logger.Log,
		snapshot:     business.NewRoleConfig(),
		bus:          NewEventBus[business.RoleConfig](),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load returns the persisted configuration, creating and persisting the
// default one when nothing is stored yet.
func (s *RoleStoreService) Load(ctx context.Context) (business.RoleConfig, error) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	data, found, err := s.backend.Read(ctx)
	if err != nil {
		return business.RoleConfig{}, fmt.Errorf("failed to read role configuration: %w", err)
	}

	var cfg business.RoleConfig
	if !found {
		cfg = business.DefaultRoleConfig()
		if err := s.write(ctx, cfg); err != nil {
			return business.RoleConfig{}, err
		}
		s.logger.Info("persisted default role configuration",
			zap.String("admin", cfg.Admin),
			zap.Int("shelters", len(cfg.Shelters)),
			zap.Int("donors", len(cfg.Donors)))
	} else {
		cfg = s.decode(data)
	}

	s.setSnapshot(cfg)
	return cfg.Clone(), nil
}

// Save overwrites the persisted configuration.
func (s *RoleStoreService) Save(ctx context.Context, cfg business.RoleConfig) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	cfg = normalizeRoleConfig(cfg)
	if err := s.write(ctx, cfg); err != nil {
		return err
	}
	s.setSnapshot(cfg)
	return nil
}

// SetAdmin replaces the administrator address.
func (s *RoleStoreService) SetAdmin(ctx context.Context, address string) error {
	addr, err := validateRoleAddress(address)
	if err != nil {
		return err
	}
	return s.mutate(ctx, "set_admin", addr, func(cfg *business.RoleConfig) {
		cfg.Admin = addr
	})
}

// AddShelter adds or renames a shelter entry.
func (s *RoleStoreService) AddShelter(ctx context.Context, address, name string) error {
	addr, err := validateRoleAddress(address)
	if err != nil {
		return err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return newValidationError("name", "shelter name is required")
	}
	return s.mutate(ctx, "add_shelter", addr, func(cfg *business.RoleConfig) {
		cfg.Shelters[addr] = business.RoleEntry{Name: name}
	})
}

// AddDonor adds or renames a donor entry.
func (s *RoleStoreService) AddDonor(ctx context.Context, address, name string) error {
	addr, err := validateRoleAddress(address)
	if err != nil {
		return err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return newValidationError("name", "donor name is required")
	}
	return s.mutate(ctx, "add_donor", addr, func(cfg *business.RoleConfig) {
		cfg.Donors[addr] = business.RoleEntry{Name: name}
	})
}

// RemoveShelter deletes a shelter entry. Removing an unknown address is a no-op.
func (s *RoleStoreService) RemoveShelter(ctx context.Context, address string) error {
	addr, err := validateRoleAddress(address)
	if err != nil {
		return err
	}
	return s.mutate(ctx, "remove_shelter", addr, func(cfg *business.RoleConfig) {
		delete(cfg.Shelters, addr)
	})
}

// RemoveDonor deletes a donor entry. Removing an unknown address is a no-op.
func (s *RoleStoreService) RemoveDonor(ctx context.Context, address string) error {
	addr, err := validateRoleAddress(address)
	if err != nil {
		return err
	}
	return s.mutate(ctx, "remove_donor", addr, func(cfg *business.RoleConfig) {
		delete(cfg.Donors, addr)
	})
}

// Clear removes the persisted record and empties the snapshot.
func (s *RoleStoreService) Clear(ctx context.Context) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	if err := s.backend.Delete(ctx); err != nil {
		return fmt.Errorf("failed to clear role configuration: %w", err)
	}
	s.logger.Info("cleared role configuration")
	s.setSnapshot(business.NewRoleConfig())
	return nil
}

// Snapshot returns a copy of the in-memory configuration.
func (s *RoleStoreService) Snapshot() business.RoleConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot.Clone()
}

// Subscribe registers fn to be called with every new snapshot.
func (s *RoleStoreService) Subscribe(fn func(business.RoleConfig)) func() {
	return s.bus.Subscribe(fn)
}

// Refresh re-reads the backend into the snapshot. An absent record reads
// as an empty configuration.
func (s *RoleStoreService) Refresh(ctx context.Context) error {
	_, err := s.refresh(ctx, refreshTriggerExplicit)
	return err
}

// Run keeps the snapshot fresh until ctx is cancelled, reacting to backend
// change notifications and polling as a fallback.
func (s *RoleStoreService) Run(ctx context.Context) error {
	var changes <-chan struct{}
	watch, err := s.backend.Watch(ctx)
	if err != nil {
		s.logger.Warn("role backend watch unavailable, relying on polling", zap.Error(err))
	} else {
		changes = watch
	}

	ticker := time.NewTicker(s.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case _, ok := <-changes:
			if !ok {
				changes = nil
				continue
			}
			if _, err := s.refresh(ctx, refreshTriggerWatch); err != nil && ctx.Err() == nil {
				s.logger.Warn("role refresh after change notification failed", zap.Error(err))
			}
		case <-ticker.C:
			if _, err := s.refresh(ctx, refreshTriggerPoll); err != nil && ctx.Err() == nil {
				s.logger.Warn("role refresh poll failed", zap.Error(err))
			}
		}
	}
}

func (s *RoleStoreService) refresh(ctx context.Context, trigger string) (bool, error) {
	data, found, err := s.backend.Read(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to read role configuration: %w", err)
	}
	cfg := business.NewRoleConfig()
	if found {
		cfg = s.decode(data)
	}
	changed := s.setSnapshot(cfg)
	s.metrics.RoleRefresh(trigger, changed)
	return changed, nil
}

func (s *RoleStoreService) mutate(ctx context.Context, action, address string, apply func(*business.RoleConfig)) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	data, found, err := s.backend.Read(ctx)
	if err != nil {
		return fmt.Errorf("failed to read role configuration: %w", err)
	}
	cfg := business.NewRoleConfig()
	if found {
		cfg = s.decode(data)
	}

	apply(&cfg)
	if err := s.write(ctx, cfg); err != nil {
		return err
	}
	s.logger.Info("role configuration updated", zap.String("action", action), zap.String("address", address))
	s.setSnapshot(cfg)
	return nil
}

func (s *RoleStoreService) write(ctx context.Context, cfg business.RoleConfig) error {
	data, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode role configuration: %w", err)
	}
	if err := s.backend.Write(ctx, data); err != nil {
		return fmt.Errorf("failed to persist role configuration: %w", err)
	}
	return nil
}

// decode parses a stored blob. A corrupt blob reads as an empty configuration.
func (s *RoleStoreService) decode(data []byte) business.RoleConfig {
	var cfg business.RoleConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		s.logger.Warn("stored role configuration is corrupt, treating as empty", zap.Error(err))
		return business.NewRoleConfig()
	}
	return normalizeRoleConfig(cfg)
}

// setSnapshot replaces the snapshot and notifies subscribers when it changed.
func (s *RoleStoreService) setSnapshot(cfg business.RoleConfig) bool {
	s.mu.Lock()
	if s.snapshot.Equal(cfg) {
		s.mu.Unlock()
		return false
	}
	s.snapshot = cfg.Clone()
	s.mu.Unlock()

	s.bus.Publish(cfg.Clone())
	return true
}

func normalizeRoleConfig(cfg business.RoleConfig) business.RoleConfig {
	out := business.NewRoleConfig()
	out.Admin = helpers.NormalizeAddress(cfg.Admin)
	for addr, entry := range cfg.Shelters {
		out.Shelters[helpers.NormalizeAddress(addr)] = entry
	}
	for addr, entry := range cfg.Donors {
		out.Donors[helpers.NormalizeAddress(addr)] = entry
	}
	return out
}

func validateRoleAddress(address string) (string, error) {
	addr := helpers.NormalizeAddress(address)
	if addr == "" {
		return "", newValidationError("address", "address is required")
	}
	if !helpers.IsAddressValid(addr) {
		return "", newValidationError("address", "invalid address format")
	}
	return addr, nil
}
