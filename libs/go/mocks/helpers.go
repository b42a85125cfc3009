package mocks

import (
	"testing"

	"go.uber.org/mock/gomock"
)

// NewMockContractGatewayForTest creates a new mock ContractGateway for testing
func NewMockContractGatewayForTest(t *testing.T) *MockContractGateway {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockContractGateway(ctrl)
}

// NewMockNativeTransfererForTest creates a new mock NativeTransferer for testing
func NewMockNativeTransfererForTest(t *testing.T) *MockNativeTransferer {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockNativeTransferer(ctrl)
}

// NewMockRoleBackendForTest creates a new mock RoleBackend for testing
func NewMockRoleBackendForTest(t *testing.T) *MockRoleBackend {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockRoleBackend(ctrl)
}

// NewMockSecretsProviderForTest creates a new mock SecretsProvider for testing
func NewMockSecretsProviderForTest(t *testing.T) *MockSecretsProvider {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockSecretsProvider(ctrl)
}

// NewMockDonationOrchestratorForTest creates a new mock DonationOrchestrator for testing
func NewMockDonationOrchestratorForTest(t *testing.T) *MockDonationOrchestrator {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockDonationOrchestrator(ctrl)
}

// NewMockRoleStoreForTest creates a new mock RoleStore for testing
func NewMockRoleStoreForTest(t *testing.T) *MockRoleStore {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockRoleStore(ctrl)
}

// NewMockRoleResolverForTest creates a new mock RoleResolver for testing
func NewMockRoleResolverForTest(t *testing.T) *MockRoleResolver {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockRoleResolver(ctrl)
}
