package main

import (
	"context"
	"encoding/json"
	"errors"
	stdlog "log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/username/autaxy/src/config"
	"github.com/username/autaxy/src/database"
	"github.com/username/autaxy/src/handlers"
	"github.com/username/autaxy/src/logger"
	"github.com/username/autaxy/src/metrics"
	"github.com/username/autaxy/src/parsers"
	"github.com/username/autaxy/src/processors"
	"github.com/username/autaxy/src/services"
	"golang.org/x/time/rate"
)

func rateLimitMiddleware(limiter *rate.Limiter, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !limiter.Allow() {
			http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
			logger.L.Warn("Rate limit exceeded",
				"method", r.Method,
				"path", r.URL.Path,
				"remoteAddr", r.RemoteAddr)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func enableCORS(origins []string, next http.Handler) http.Handler {
	allowedOrigins := make(map[string]bool, len(origins))
	for _, o := range origins {
		allowedOrigins[o] = true
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if allowedOrigins[origin] {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS, PUT")
			w.Header().Set("Access-Control-Allow-Headers", "Accept, Content-Type, Content-Length, Accept-Encoding, X-Requested-With, X-Request-ID, If-None-Match")
			w.Header().Set("Access-Control-Expose-Headers", "ETag, X-Request-ID, Content-Disposition")
		} else if origin == "" {
			w.Header().Set("Access-Control-Allow-Origin", "*")
		}

		if r.Method == http.MethodOptions {
			logger.L.Debug("Handling OPTIONS preflight request", "path", r.URL.Path, "origin", origin)
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func main() {
	config.LoadConfig()
	logger.InitLogger(config.Cfg.LogLevel)
	logger.L.Info("Autaxy report server starting...")

	logger.L.Info("Initializing database...", "path", config.Cfg.DatabasePath)
	database.InitDB(config.Cfg.DatabasePath)
	defer database.DB.Close()
	logger.L.Info("Database initialized successfully.")

	logger.L.Info("Initializing report cache...", "ttl", config.Cfg.ReportCacheTTL)
	reportCache := cache.New(config.Cfg.ReportCacheTTL, config.Cfg.ReportCacheCleanup)

	logger.L.Info("Initializing services and handlers...")
	parser, err := parsers.GetParser(parsers.DefaultSource)
	if err != nil {
		stdlog.Fatalf("Failed to create report parser: %v", err)
	}
	var recorder metrics.Recorder = metrics.NopRecorder{}
	if config.Cfg.MetricsEnabled {
		recorder = metrics.NewPrometheusRecorder()
	}
	store := services.NewSQLiteStore(database.DB)

	reportService := services.NewReportService(parser, processors.NewStatementProcessor(), store, store, recorder, reportCache)
	settingsService := services.NewSettingsService(store, recorder)

	reportHandler := handlers.NewReportHandler(reportService, config.Cfg.MaxUploadSizeBytes)
	settingsHandler := handlers.NewSettingsHandler(settingsService)

	logger.L.Info("Configuring routes...")
	rootMux := http.NewServeMux()
	apiRouter := http.NewServeMux()

	route := func(pattern, name string, h http.HandlerFunc) {
		apiRouter.Handle(pattern, metrics.Instrument(name, h))
	}
	route("POST /api/reports/parse", "reports_parse", reportHandler.HandleParse)
	route("POST /api/reports/statement", "reports_statement", reportHandler.HandleStatement)
	route("POST /api/reports/ledger.csv", "reports_ledger", reportHandler.HandleLedgerCSV)
	route("GET /api/reports/imports", "reports_imports", reportHandler.HandleListImports)
	route("GET /api/settings", "settings_get", settingsHandler.HandleGetSettings)
	route("PUT /api/settings", "settings_put", settingsHandler.HandleSaveSettings)

	rootMux.Handle("/api/", apiRouter)
	rootMux.HandleFunc("GET /healthz", handlers.HandleHealth)
	if config.Cfg.MetricsEnabled {
		rootMux.Handle("GET /metrics", metrics.Handler())
	}

	rootMux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/" && r.Method == http.MethodGet {
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(map[string]string{"message": "Autaxy report server is running"})
		} else if !strings.HasPrefix(r.URL.Path, "/api/") {
			logger.L.Warn("Root level path not found", "method", r.Method, "path", r.URL.Path)
			http.NotFound(w, r)
		}
	})

	logger.L.Info("Applying global middleware...")
	limiter := rate.NewLimiter(rate.Every(config.Cfg.RateLimitInterval), config.Cfg.RateLimitBurst)
	finalHandler := enableCORS(config.Cfg.AllowedOrigins, rateLimitMiddleware(limiter, handlers.RequestLogger(rootMux)))

	serverAddr := ":" + config.Cfg.Port
	server := &http.Server{
		Addr:         serverAddr,
		Handler:      finalHandler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.L.Error("Server shutdown failed", "error", err)
		}
	}()

	logger.L.Info("Server starting", "address", serverAddr)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.L.Error("Failed to start server", "error", err)
		stdlog.Fatalf("Failed to start server: %v", err)
	}
	logger.L.Info("Server stopped gracefully.")
}
