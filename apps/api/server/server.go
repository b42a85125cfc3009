package server

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rescuedao/rescuedao-api/apps/api/handlers"
	awsclient "github.com/rescuedao/rescuedao-api/libs/go/client/aws"
	"github.com/rescuedao/rescuedao-api/libs/go/client/contract"
	"github.com/rescuedao/rescuedao-api/libs/go/config"
	"github.com/rescuedao/rescuedao-api/libs/go/helpers"
	"github.com/rescuedao/rescuedao-api/libs/go/interfaces"
	"github.com/rescuedao/rescuedao-api/libs/go/logger"
	"github.com/rescuedao/rescuedao-api/libs/go/metrics"
	"github.com/rescuedao/rescuedao-api/libs/go/middleware"
	"github.com/rescuedao/rescuedao-api/libs/go/services"
	"github.com/rescuedao/rescuedao-api/libs/go/storage/rolestore"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

// Server owns the wired services and the gin router of the donation API.
type Server struct {
	cfg          *config.Config
	backend      interfaces.RoleBackend
	roles        *services.RoleStoreService
	orchestrator *services.DonationOrchestrator
	resolver     *services.RoleResolverService
	metrics      *metrics.Metrics
	conn         *contract.Connection
	router       *gin.Engine

	donationHandler *handlers.DonationHandler
	roleHandler     *handlers.RoleHandler
	healthHandler   *handlers.HealthHandler
}

// Option customizes New.
type Option func(*options)

type options struct {
	backend interfaces.RoleBackend
	secrets interfaces.SecretsProvider
}

// WithRoleBackend uses backend instead of opening the configured one.
func WithRoleBackend(backend interfaces.RoleBackend) Option {
	return func(o *options) { o.backend = backend }
}

// WithSecrets overrides the Secrets Manager client used for the signer key.
func WithSecrets(secrets interfaces.SecretsProvider) Option {
	return func(o *options) { o.secrets = secrets }
}

// New wires the role store, the optional chain connection and the
// orchestrator, then builds the router. Background work is bound to ctx.
func New(ctx context.Context, cfg *config.Config, opts ...Option) (*Server, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	s := &Server{cfg: cfg, metrics: metrics.New()}

	backend := o.backend
	if backend == nil {
		var err error
		if backend, err = rolestore.Open(ctx, cfg.RoleStore); err != nil {
			return nil, fmt.Errorf("failed to open role store: %w", err)
		}
	}
	s.backend = backend
	s.roles = services.NewRoleStoreService(backend, services.WithRoleMetrics(s.metrics))
	if _, err := s.roles.Load(ctx); err != nil {
		s.Close()
		return nil, err
	}

	secrets := o.secrets
	if secrets == nil {
		var err error
		if secrets, err = newSecretsProvider(ctx); err != nil {
			s.Close()
			return nil, err
		}
	}
	key, err := config.SignerKey(ctx, secrets)
	if err != nil {
		s.Close()
		return nil, err
	}
	wallet, err := connectedWallet(cfg.WalletAddress, key)
	if err != nil {
		s.Close()
		return nil, err
	}

	var (
		gateway    interfaces.ContractGateway
		transferer interfaces.NativeTransferer
	)
	if cfg.RPCURL != "" {
		setup, err := s.connect(ctx, key)
		if err != nil {
			s.Close()
			return nil, err
		}
		if setup.Gateway != nil {
			gateway = setup.Gateway
		}
		if setup.Transferer != nil {
			transferer = setup.Transferer
		}
	}

	s.orchestrator, err = services.NewDonationOrchestrator(ctx, services.OrchestratorConfig{
		WalletAddress: wallet,
		Gateway:       gateway,
		Transferer:    transferer,
		Roles:         s.roles,
		Simulation:    services.NewSimulationStore(),
		Metrics:       s.metrics,
		Latency:       cfg.Latency,
	})
	if err != nil {
		s.Close()
		return nil, err
	}
	s.resolver = services.NewRoleResolverService(gateway, s.roles)

	common := handlers.NewCommonServices(handlers.CommonServicesConfig{
		Orchestrator: s.orchestrator,
		Roles:        s.roles,
		Resolver:     s.resolver,
	})
	s.donationHandler = handlers.NewDonationHandler(common)
	s.roleHandler = handlers.NewRoleHandler(common)
	s.healthHandler = handlers.NewHealthHandler(s.orchestrator.Mode())

	if cfg.Stage == helpers.StageProd {
		gin.SetMode(gin.ReleaseMode)
	}
	s.router = gin.New()
	s.router.Use(gin.Recovery())
	s.InitializeRoutes(ctx, s.router)

	logger.Info("Donation API initialized",
		zap.String("stage", cfg.Stage),
		zap.String("mode", s.orchestrator.Mode()),
		zap.String("role_store", cfg.RoleStore.Kind),
		zap.String("wallet", wallet))
	return s, nil
}

// connect dials the RPC and resolves the DonationSystem deployment. A chain
// without a deployment yields an empty setup and the simulation is used.
func (s *Server) connect(ctx context.Context, key *ecdsa.PrivateKey) (*contract.Setup, error) {
	deployments, err := contract.LoadDeployments(s.cfg.DeploymentsFile)
	if err != nil {
		return nil, err
	}
	conn, err := contract.Dial(ctx, s.cfg.RPCURL)
	if err != nil {
		return nil, err
	}
	s.conn = conn
	if s.cfg.ChainID != 0 && conn.ChainID.Int64() != s.cfg.ChainID {
		return nil, fmt.Errorf("RPC reports chain %s but %s is %d",
			conn.ChainID.String(), config.EnvChainID, s.cfg.ChainID)
	}
	return contract.NewSetup(conn, deployments, key, contract.PollConfig{})
}

// newSecretsProvider only talks to AWS when a secret ARN is configured.
// connectedWallet returns the wallet the API acts as. With a signer key the
// wallet defaults to the key's address and must match it when configured.
func connectedWallet(configured string, key *ecdsa.PrivateKey) (string, error) {
	if key == nil {
		return configured, nil
	}
	signer := contract.AddressOf(key).Hex()
	if configured == "" {
		return signer, nil
	}
	if helpers.NormalizeAddress(configured) != helpers.NormalizeAddress(signer) {
		return "", fmt.Errorf("%w: %s=%s, signer %s", services.ErrSignerMismatch, config.EnvWalletAddress, configured, signer)
	}
	return configured, nil
}

func newSecretsProvider(ctx context.Context) (interfaces.SecretsProvider, error) {
	if os.Getenv(config.EnvSignerKeyARN) == "" {
		return awsclient.NewSecretsManagerClientWith(nil), nil
	}
	client, err := awsclient.NewSecretsManagerClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create secrets manager client: %w", err)
	}
	return client, nil
}

// InitializeRoutes installs the middleware chain and the API routes.
func (s *Server) InitializeRoutes(ctx context.Context, router *gin.Engine) {
	router.Use(configureCORS(s.cfg.CORSOrigins))

	// Add correlation ID middleware for request tracing
	router.Use(middleware.CorrelationIDMiddleware())

	router.Use(middleware.NewRateLimiter(ctx, s.cfg.RateLimitRPS, s.cfg.RateLimitBurst).Middleware())

	if s.cfg.Stage != helpers.StageProd {
		router.Use(middleware.EnhancedLoggingMiddleware())
	} else {
		router.Use(middleware.RequestLoggingMiddleware())
	}
	router.Use(s.metrics.GinMiddleware())

	router.GET("/health", s.healthHandler.Health)
	router.HEAD("/health", s.healthHandler.Health)
	router.GET("/metrics", gin.WrapH(s.metrics.Handler()))

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", s.healthHandler.Health)
		v1.GET("/state", s.donationHandler.GetState)

		v1.POST("/shelters", middleware.ValidateInput(middleware.AddShelterValidation), s.donationHandler.AddShelter)

		animals := v1.Group("/animals")
		{
			animals.POST("", middleware.ValidateInput(middleware.AddAnimalValidation), s.donationHandler.AddAnimal)
			animals.GET("/:animal_id", s.donationHandler.GetAnimal)
		}

		donations := v1.Group("/donations")
		{
			donations.POST("", middleware.ValidateInput(middleware.DonateValidation), s.donationHandler.Donate)
			donations.POST("/recurring", middleware.ValidateInput(middleware.DonateRecurringValidation), s.donationHandler.DonateRecurring)
			donations.GET("/recurring", s.donationHandler.ListRecurring)
		}

		withdrawals := v1.Group("/withdrawals")
		{
			withdrawals.POST("", middleware.ValidateInput(middleware.WithdrawValidation), s.donationHandler.Withdraw)
			withdrawals.POST("/spent", middleware.ValidateInput(middleware.MarkSpentValidation), s.donationHandler.MarkSpent)
		}

		v1.GET("/operations/:operation_id", s.donationHandler.GetOperation)

		roles := v1.Group("/roles")
		{
			roles.GET("", s.roleHandler.GetRoles)
			roles.DELETE("", s.roleHandler.ClearRoles)
			roles.PUT("/admin", middleware.ValidateInput(middleware.SetAdminValidation), s.roleHandler.SetAdmin)
			roles.POST("/shelters", middleware.ValidateInput(middleware.RoleEntryValidation), s.roleHandler.AddShelter)
			roles.DELETE("/shelters/:address", s.roleHandler.RemoveShelter)
			roles.POST("/donors", middleware.ValidateInput(middleware.RoleEntryValidation), s.roleHandler.AddDonor)
			roles.DELETE("/donors/:address", s.roleHandler.RemoveDonor)
			roles.GET("/resolve/:address", s.roleHandler.ResolveRole)
		}
	}
}

// Router returns the configured gin engine.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Mode reports whether actions run against the contract or the simulation.
func (s *Server) Mode() string {
	return s.orchestrator.Mode()
}

// RunBackground keeps the role snapshot fresh until ctx is cancelled. It is
// used where the process does not own the HTTP listener.
func (s *Server) RunBackground(ctx context.Context) error {
	return s.roles.Run(ctx)
}

// WaitIdle blocks until every accepted operation has finished or ctx is
// done. Hosts that freeze the process between requests call it before
// returning a response.
func (s *Server) WaitIdle(ctx context.Context) error {
	return s.orchestrator.WaitIdle(ctx)
}

// Run serves HTTP on the configured port alongside the role refresher and
// shuts both down when ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              ":" + s.cfg.Port,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return s.roles.Run(gctx)
	})
	g.Go(func() error {
		logger.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server failed: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Server is shutting down...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

// Close stops the orchestrator and releases the backend and RPC client.
func (s *Server) Close() {
	if s.orchestrator != nil {
		s.orchestrator.Close()
	}
	if s.backend != nil {
		if err := s.backend.Close(); err != nil {
			logger.Warn("Failed to close role backend", zap.Error(err))
		}
	}
	s.conn.Close()
}

// configureCORS returns a configured CORS middleware
func configureCORS(origins []string) gin.HandlerFunc {
	corsConfig := cors.DefaultConfig()

	if len(origins) == 0 {
		// Default to localhost if not set
		corsConfig.AllowOrigins = []string{"http://localhost:3000"}
	} else {
		corsConfig.AllowOrigins = origins
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "HEAD", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", middleware.CorrelationIDHeader}

	// Default exposed headers including rate limit headers
	corsConfig.ExposeHeaders = []string{
		"X-RateLimit-Limit",
		"X-RateLimit-Remaining",
		"X-RateLimit-Reset",
		"Retry-After",
		middleware.CorrelationIDHeader,
	}

	// Set credentials allowed
	corsConfig.AllowCredentials = os.Getenv("CORS_ALLOW_CREDENTIALS") == "true"

	return cors.New(corsConfig)
}
