package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	httpwrap "github.com/tbetti/solana-carbon-wallet/internal/api/infrastructure/http"
	authapp "github.com/tbetti/solana-carbon-wallet/internal/auth/application"
	authdomain "github.com/tbetti/solana-carbon-wallet/internal/auth/domain"
	authpostgres "github.com/tbetti/solana-carbon-wallet/internal/auth/infrastructure/postgres"
	carbonapp "github.com/tbetti/solana-carbon-wallet/internal/carbon/application"
	carbondomain "github.com/tbetti/solana-carbon-wallet/internal/carbon/domain"
	marketapp "github.com/tbetti/solana-carbon-wallet/internal/marketplace/application"
	"github.com/tbetti/solana-carbon-wallet/internal/marketplace/infrastructure/metrics"
	marketpostgres "github.com/tbetti/solana-carbon-wallet/internal/marketplace/infrastructure/postgres"
	"github.com/tbetti/solana-carbon-wallet/internal/pkg/database"
	"github.com/tbetti/solana-carbon-wallet/internal/pkg/jwt"
	"github.com/tbetti/solana-carbon-wallet/internal/pkg/logging"
	"github.com/tbetti/solana-carbon-wallet/migrations"
)

const metricsPath = "/metrics"

type APIApp struct {
	cfg    Config
	logger logging.Logger

	server *http.Server
	dbpool *pgxpool.Pool
}

func NewAPIApp(cfg Config, logger logging.Logger) *APIApp {
	return &APIApp{
		cfg:    cfg,
		logger: logger,
	}
}

// Run serves the API on lis until ctx is cancelled or the server fails.
func (a *APIApp) Run(ctx context.Context, lis net.Listener) error {
	logger := a.logger
	cfg := a.cfg
	dbURL := cfg.DbSettings.GetURL()

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	if cfg.MigrateOnStart {
		err := database.MigrateDatabase(dbURL, migrations.FS, migrations.Dir, database.PgxDriverName, database.PostgresDialect)
		if err != nil {
			return fmt.Errorf("failed to migrate database: %w", err)
		}
		logger.Info("database migrated")
	}

	dbpool, err := pgxpool.New(ctx, dbURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	a.dbpool = dbpool

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	router := createRouter(cfg, dbpool, registry, logger)
	router.GET(metricsPath, gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: cfg.CorsAllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	})

	a.server = &http.Server{
		Handler: corsHandler.Handler(router),
	}

	errChan := make(chan error, 1)
	go func() {
		logger.Info("starting http server", "addr", lis.Addr().String(), "auth_enabled", cfg.AuthEnabled)

		if err := a.server.Serve(lis); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("error while serving http: %w", err)
			return
		}

		errChan <- nil
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
		return nil
	}
}

func (a *APIApp) Shutdown() {
	if a.server == nil {
		return
	}

	a.logger.Info("shutting down http server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()

	if err := a.server.Shutdown(shutdownCtx); err != nil {
		a.logger.Error("server shutdown failed", "error", err.Error())
	}

	a.dbpool.Close()
	a.logger.Info("http server stopped")
}

func createRouter(cfg Config, dbpool *pgxpool.Pool, registerer prometheus.Registerer, logger logging.Logger) *gin.Engine {
	txManager := database.NewDelegateTxManager(dbpool, logger)

	listingsRepository := marketpostgres.NewListingsRepository(dbpool)
	creditsRepository := marketpostgres.NewCreditsRepository()
	historyRepository := marketpostgres.NewHistoryRepository(dbpool)
	recommendationsFinder := marketpostgres.NewRecommendationsFinder(dbpool)
	credentialsRepository := authpostgres.NewCredentialsRepository(dbpool, logger)

	emissionsCase := carbonapp.NewEmissionsCase(carbondomain.DefaultCatalog())
	listingsCase := marketapp.NewListingsCase(listingsRepository, creditsRepository, txManager)
	purchaseCase := marketapp.NewPurchaseCase(
		marketpostgres.NewListingLocker(),
		marketpostgres.NewPurchaser(),
		txManager,
		metrics.NewPurchaseMetrics(registerer),
	)
	historyCase := marketapp.NewHistoryCase(historyRepository)
	recommendCase := marketapp.NewRecommendCase(recommendationsFinder)
	authenticator := authapp.NewAuthenticator(
		credentialsRepository,
		authdomain.NewArgonPassphraseHasher(),
		jwt.NewJWTTokenIssuer(),
		cfg.JwtSecret,
	)

	handlers := httpwrap.Handlers{
		Carbon:      httpwrap.NewCarbonHandler(emissionsCase, logger),
		Marketplace: httpwrap.NewMarketplaceHandler(listingsCase, purchaseCase, logger),
		User:        httpwrap.NewUserHandler(historyCase, listingsCase, logger),
		Recommend:   httpwrap.NewRecommendHandler(recommendCase, logger),
		Auth:        httpwrap.NewAuthHandler(authenticator, logger),
		Info:        httpwrap.NewInfoHandler(dbpool, logger),
	}

	authMiddleware := httpwrap.NewAuthMiddleware(jwt.NewJWTTokenParser(), cfg.JwtSecret, cfg.AuthEnabled)

	return httpwrap.NewRouter(handlers, authMiddleware, httpwrap.NewHTTPMetrics(registerer), logger)
}
