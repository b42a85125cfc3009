package services

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/rescuedao/rescuedao-api/libs/go/helpers"
	"github.com/rescuedao/rescuedao-api/libs/go/interfaces"
	"github.com/rescuedao/rescuedao-api/libs/go/logger"
	"github.com/rescuedao/rescuedao-api/libs/go/types/business"
	"go.uber.org/zap"
)

// RoleResolverService resolves the effective role of any address. With a
// gateway, admin and shelter come from the contract; otherwise from the
// role store snapshot. Donors always come from the role store.
type RoleResolverService struct {
	gateway interfaces.ContractGateway
	roles   interfaces.RoleStore
	logger  *zap.Logger
}

// NewRoleResolverService creates a resolver. gateway may be nil.
func NewRoleResolverService(gateway interfaces.ContractGateway, roles interfaces.RoleStore) *RoleResolverService {
	return &RoleResolverService{
		gateway: gateway,
		roles:   roles,
		logger:  logger.Log,
	}
}

// Resolve returns the role flags of address. At most one flag is true.
func (r *RoleResolverService) Resolve(ctx context.Context, address string) business.RoleFlags {
	if r.gateway != nil {
		return resolveFromContract(ctx, r.gateway, r.roles.Snapshot(), address, r.logger)
	}
	return resolveFromConfig(r.roles.Snapshot(), address)
}

// resolveFromConfig checks admin, then shelters, then donors.
func resolveFromConfig(cfg business.RoleConfig, address string) business.RoleFlags {
	addr := helpers.NormalizeAddress(address)
	if addr == "" {
		return business.RoleFlags{}
	}
	if cfg.Admin != "" && cfg.Admin == addr {
		return business.RoleFlags{IsAdmin: true}
	}
	if _, ok := cfg.Shelters[addr]; ok {
		return business.RoleFlags{IsShelter: true}
	}
	if _, ok := cfg.Donors[addr]; ok {
		return business.RoleFlags{IsDonor: true}
	}
	return business.RoleFlags{}
}

// resolveFromContract treats the contract as authoritative for admin and
// shelter. A read failure resolves to no role.
func resolveFromContract(ctx context.Context, gateway interfaces.ContractGateway, cfg business.RoleConfig, address string, log *zap.Logger) business.RoleFlags {
	addr := helpers.NormalizeAddress(address)
	if !helpers.IsAddressValid(addr) {
		return business.RoleFlags{}
	}
	account := common.HexToAddress(addr)

	isAdmin, err := gateway.IsAdmin(ctx, account)
	if err != nil {
		log.Warn("failed to read admin role from contract", zap.String("address", addr), zap.Error(err))
		return business.RoleFlags{}
	}
	if isAdmin {
		return business.RoleFlags{IsAdmin: true}
	}

	isShelter, err := gateway.IsShelter(ctx, account)
	if err != nil {
		log.Warn("failed to read shelter role from contract", zap.String("address", addr), zap.Error(err))
		return business.RoleFlags{}
	}
	if isShelter {
		return business.RoleFlags{IsShelter: true}
	}

	if _, ok := cfg.Donors[addr]; ok {
		return business.RoleFlags{IsDonor: true}
	}
	return business.RoleFlags{}
}
