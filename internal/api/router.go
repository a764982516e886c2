package api

import (
	"github.com/jmoiron/sqlx"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/parlevel/stocktake-api/internal/api/handler"
	"github.com/parlevel/stocktake-api/internal/api/middleware"
	"github.com/parlevel/stocktake-api/internal/core/service"
	"github.com/parlevel/stocktake-api/internal/infrastructure/artifact"
	"github.com/parlevel/stocktake-api/internal/infrastructure/config"
	redisdb "github.com/parlevel/stocktake-api/internal/infrastructure/db/redis"
	"github.com/parlevel/stocktake-api/internal/infrastructure/db/sqlite"
)

// NewRouter builds and returns the Echo instance with all routes registered.
//
// Open routes: catalog view, stock submission, login, register, health and
// metrics. Everything touching admin surfaces (catalog import, download
// listing and fetch, history, logout) sits behind the session middleware.
func NewRouter(cfg *config.Config, db *sqlx.DB, rdb *goredis.Client, artifacts *artifact.Store, log zerolog.Logger) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("stocktake"))

	// --- Dependencies ---
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}

	userRepo := sqlite.NewUserRepository(db)
	itemRepo := sqlite.NewItemRepository(db)
	stockRepo := sqlite.NewStockRecordRepository(db)
	revocations := redisdb.NewRevocationList(rdb)

	authService := service.NewAuthService(userRepo, revocations, cfg.JWTSecret, cfg.TokenTTL)
	catalogService := service.NewCatalogService(itemRepo, log)
	stockService := service.NewStockService(itemRepo, stockRepo, artifacts, log)
	historyService := service.NewHistoryService(itemRepo, stockRepo, loc)

	authHandler := handler.NewAuthHandler(authService, cfg.TokenTTL)
	stockHandler := handler.NewStockHandler(itemRepo, stockService)
	importHandler := handler.NewImportHandler(catalogService)
	historyHandler := handler.NewHistoryHandler(historyService)
	downloadHandler := handler.NewDownloadHandler(artifacts)

	sessionRequired := middleware.Auth(cfg.JWTSecret, revocations)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/logout", authHandler.Logout, sessionRequired)

	// --- Stock counting (no login needed, like the count sheet itself) ---
	e.GET("/v1/items", stockHandler.ListItems)
	e.POST("/v1/submissions", stockHandler.Submit)

	// --- Admin surfaces ---
	e.POST("/v1/catalog/import", importHandler.Import, sessionRequired, echomiddleware.BodyLimit("16M"))
	e.GET("/v1/history", historyHandler.View, sessionRequired)
	e.GET("/v1/downloads", downloadHandler.List, sessionRequired)
	e.GET("/v1/downloads/:filename", downloadHandler.Fetch, sessionRequired)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e, nil
}
