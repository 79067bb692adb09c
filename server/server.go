package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/SergioFerreira2020/GestorLotes/database"
	"github.com/SergioFerreira2020/GestorLotes/extractors"
	"github.com/SergioFerreira2020/GestorLotes/internal/config"
	"github.com/SergioFerreira2020/GestorLotes/server/handlers"
	"github.com/SergioFerreira2020/GestorLotes/server/middleware"
	"github.com/SergioFerreira2020/GestorLotes/server/services"
	"github.com/SergioFerreira2020/GestorLotes/stock"
)

// Server wires the document store, the services and the HTTP surface.
type Server struct {
	cfg    *config.Config
	store  database.DocumentStore
	logger *slog.Logger

	ledger        *stock.Ledger
	lots          *services.LoteService
	clients       *services.ClientService
	history       *services.HistoryService
	notifications *services.NotificationService

	engine *gin.Engine
	http   *http.Server
}

// NewServer builds the full service graph over the given store. The notifier
// is injected so main can pick Telegram or the no-op fallback.
func NewServer(cfg *config.Config, store database.DocumentStore, notifier services.Notifier, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	ledger := stock.NewLedger(store, logger)
	extractor := extractors.NewExtractor(cfg.ShoeSizeMin, cfg.ShoeSizeMax)
	notifications := services.NewNotificationService(ledger, notifier, cfg.LowStockLimit, logger)

	s := &Server{
		cfg:           cfg,
		store:         store,
		logger:        logger,
		ledger:        ledger,
		lots:          services.NewLoteService(store, ledger, extractor, notifications, logger, cfg.LoteCount),
		clients:       services.NewClientService(store, logger),
		history:       services.NewHistoryService(store, logger),
		notifications: notifications,
	}

	middleware.InitErrorMetrics()

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(
		middleware.GinRequestIDMiddleware(),
		middleware.GinLoggerMiddleware(logger),
		middleware.GinRecoveryMiddleware(logger),
		middleware.GinCORSMiddleware(),
		middleware.GinGzipMiddleware(),
		middleware.GinRateLimitMiddleware(cfg.RateLimitRPS, cfg.RateLimitBurst),
	)

	s.engine = engine
	s.setupRoutes(extractor)

	s.http = &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      engine,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
	}

	return s
}

func (s *Server) setupRoutes(extractor *extractors.Extractor) {
	lotesHandler := handlers.NewLotesHandler(s.lots)
	clientsHandler := handlers.NewClientsHandler(s.clients, s.lots)
	historyHandler := handlers.NewHistoryHandler(s.history)
	stockHandler := handlers.NewStockHandler(s.notifications, stock.NewExporter(), extractor)

	var pinger interface{ Ping() error }
	if p, ok := s.store.(interface{ Ping() error }); ok {
		pinger = p
	}
	healthHandler := handlers.NewHealthHandler(s.ledger, pinger)

	s.engine.GET("/health", healthHandler.HandleHealth)

	api := s.engine.Group("/api")
	{
		api.GET("/lotes", lotesHandler.HandleList)
		api.GET("/lotes/pending", lotesHandler.HandlePending)
		api.GET("/lotes/:id", lotesHandler.HandleGet)
		api.PUT("/lotes/:id/description", lotesHandler.HandleUpdateDescription)
		api.PUT("/lotes/:id/trade", lotesHandler.HandleUpdateTrade)
		api.POST("/lotes/:id/assign", lotesHandler.HandleAssign)
		api.POST("/lotes/:id/deliver", lotesHandler.HandleDeliver)

		api.GET("/clients", clientsHandler.HandleList)
		api.POST("/clients", clientsHandler.HandleCreate)
		api.GET("/clients/:id", clientsHandler.HandleGet)
		api.PUT("/clients/:id", clientsHandler.HandleUpdate)
		api.DELETE("/clients/:id", clientsHandler.HandleDelete)
		api.GET("/clients/:id/pending", clientsHandler.HandlePending)
		api.POST("/clients/:id/deliver-all", clientsHandler.HandleDeliverAll)

		api.GET("/history", historyHandler.HandleList)

		api.GET("/stock/low", stockHandler.HandleLowStock)
		api.GET("/stock/low/export", stockHandler.HandleLowStockExport)
		api.GET("/extract", stockHandler.HandleExtract)

		api.GET("/diagnostics/errors", healthHandler.HandleErrorMetrics)
	}

	handlers.RegisterSwaggerRoutes(s.engine, "localhost:"+s.cfg.Port)
}

// Engine exposes the router for the HTTP tests.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// Start runs the HTTP server until Shutdown is called.
func (s *Server) Start() error {
	s.logger.Info("server listening",
		"port", s.cfg.Port,
		"lotes", s.cfg.LoteCount,
		"low_stock_limit", s.cfg.LowStockLimit,
	)

	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

// Shutdown stops the server, letting in-flight requests finish.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}
