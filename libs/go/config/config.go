// Package config reads the process configuration from the environment.
package config

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rescuedao/rescuedao-api/libs/go/client/contract"
	"github.com/rescuedao/rescuedao-api/libs/go/helpers"
	"github.com/rescuedao/rescuedao-api/libs/go/interfaces"
	"github.com/rescuedao/rescuedao-api/libs/go/logger"
	"github.com/rescuedao/rescuedao-api/libs/go/services"
	"github.com/rescuedao/rescuedao-api/libs/go/storage/rolestore"
	"go.uber.org/zap"
)

// Environment variable names.
const (
	EnvStage             = "STAGE"
	EnvPort              = "PORT"
	EnvRPCURL            = "RPC_URL"
	EnvChainID           = "CHAIN_ID"
	EnvDeploymentsFile   = "DEPLOYMENTS_FILE"
	EnvSignerKey         = "SIGNER_PRIVATE_KEY"
	EnvSignerKeyARN      = "SIGNER_PRIVATE_KEY_ARN"
	EnvWalletAddress     = "WALLET_ADDRESS"
	EnvRoleStore         = "ROLE_STORE"
	EnvRoleStorePath     = "ROLE_STORE_PATH"
	EnvRedisURL          = "REDIS_URL"
	EnvDatabaseURL       = "DATABASE_URL"
	EnvSimulationLatency = "SIMULATION_LATENCY"
	EnvRateLimitRPS      = "RATE_LIMIT_RPS"
	EnvRateLimitBurst    = "RATE_LIMIT_BURST"
	EnvCORSOrigins       = "CORS_ALLOWED_ORIGINS"
)

// Defaults applied when a variable is unset.
const (
	DefaultPort            = "8000"
	DefaultDeploymentsFile = "deployments.yaml"
	DefaultRoleStorePath   = ".rescuedao/roles.json"
	DefaultRateLimitRPS    = 100
	DefaultRateLimitBurst  = 200
)

// Config is the resolved process configuration.
type Config struct {
	Stage           string
	Port            string
	RPCURL          string
	ChainID         int64 // 0 accepts whatever the RPC reports
	DeploymentsFile string
	WalletAddress   string
	RoleStore       rolestore.Config
	Latency         services.LatencyConfig
	RateLimitRPS    int
	RateLimitBurst  int
	CORSOrigins     []string
}

// LoadDotEnv loads the first .env file found among paths. A missing file is
// not an error.
func LoadDotEnv(paths ...string) {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if _, err := os.Stat(p); err != nil {
			continue
		}
		if err := godotenv.Load(p); err != nil {
			logger.Warn("Error loading .env file", zap.String("path", p), zap.Error(err))
		}
		return
	}
}

// Load reads the configuration from the environment.
func Load() (*Config, error) {
	stage := os.Getenv(EnvStage)
	if stage == "" {
		stage = helpers.StageLocal
	}
	if !helpers.IsValidStage(stage) {
		return nil, fmt.Errorf("invalid %s '%s': must be one of %s, %s, %s",
			EnvStage, stage, helpers.StageProd, helpers.StageDev, helpers.StageLocal)
	}

	cfg := &Config{
		Stage:           stage,
		Port:            getEnvWithDefault(EnvPort, DefaultPort),
		RPCURL:          os.Getenv(EnvRPCURL),
		DeploymentsFile: getEnvWithDefault(EnvDeploymentsFile, DefaultDeploymentsFile),
		WalletAddress:   strings.TrimSpace(os.Getenv(EnvWalletAddress)),
		RoleStore: rolestore.Config{
			Kind:        getEnvWithDefault(EnvRoleStore, rolestore.KindFile),
			Path:        getEnvWithDefault(EnvRoleStorePath, DefaultRoleStorePath),
			RedisURL:    os.Getenv(EnvRedisURL),
			DatabaseURL: os.Getenv(EnvDatabaseURL),
		},
		Latency:     services.DefaultLatencyConfig(),
		CORSOrigins: splitList(os.Getenv(EnvCORSOrigins)),
	}

	if cfg.WalletAddress != "" && !helpers.IsAddressValid(cfg.WalletAddress) {
		return nil, fmt.Errorf("%s is not a valid address", EnvWalletAddress)
	}

	var err error
	if cfg.ChainID, err = getInt64(EnvChainID, 0); err != nil {
		return nil, err
	}
	if cfg.RateLimitRPS, err = getInt(EnvRateLimitRPS, DefaultRateLimitRPS); err != nil {
		return nil, err
	}
	if cfg.RateLimitBurst, err = getInt(EnvRateLimitBurst, DefaultRateLimitBurst); err != nil {
		return nil, err
	}

	if raw := os.Getenv(EnvSimulationLatency); raw != "" {
		latency, err := time.ParseDuration(raw)
		if err != nil || latency < 0 {
			return nil, fmt.Errorf("invalid %s '%s'", EnvSimulationLatency, raw)
		}
		cfg.Latency = services.LatencyConfig{Default: latency, Recurring: latency * 3 / 2}
	}

	return cfg, nil
}

// SignerKey resolves the signer private key, preferring Secrets Manager when
// SIGNER_PRIVATE_KEY_ARN is set. It returns nil when no key is configured.
func SignerKey(ctx context.Context, secrets interfaces.SecretsProvider) (*ecdsa.PrivateKey, error) {
	if os.Getenv(EnvSignerKeyARN) == "" && os.Getenv(EnvSignerKey) == "" {
		return nil, nil
	}
	raw, err := secrets.GetSecretString(ctx, EnvSignerKeyARN, EnvSignerKey)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve signer key: %w", err)
	}
	return contract.ParsePrivateKey(raw)
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func getInt(key string, defaultValue int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		return 0, fmt.Errorf("invalid %s '%s': must be a positive integer", key, raw)
	}
	return v, nil
}

func getInt64(key string, defaultValue int64) (int64, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || v <= 0 {
		return 0, fmt.Errorf("invalid %s '%s': must be a positive integer", key, raw)
	}
	return v, nil
}

func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
