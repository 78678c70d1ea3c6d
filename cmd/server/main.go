package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"complyd/internal/audit"
	"complyd/internal/classification"
	classificationHandler "complyd/internal/classification/handler"
	"complyd/internal/jwttoken"
	"complyd/internal/platform/config"
	"complyd/internal/platform/httpserver"
	"complyd/internal/platform/logger"
	"complyd/internal/platform/metrics"
	"complyd/internal/platform/middleware"
	platformRedis "complyd/internal/platform/redis"
	"complyd/internal/reconcile"
	reconcileHandler "complyd/internal/reconcile/handler"
	riskHandler "complyd/internal/risk/handler"
	"complyd/internal/shipment"
	shipmentHandler "complyd/internal/shipment/handler"
	"complyd/internal/watchlist"
	watchlistHandler "complyd/internal/watchlist/handler"
	watchlistMetrics "complyd/internal/watchlist/metrics"
	watchlistStore "complyd/internal/watchlist/store"
	workflowHandler "complyd/internal/workflow/handler"
	workflowService "complyd/internal/workflow/service"
	workflowStore "complyd/internal/workflow/store"
)

// main wires dependencies and keeps the server lifecycle small. Business
// logic lives in the internal context packages.
func main() {
	cfg := config.FromEnv()
	log := logger.New()
	m := metrics.New()

	ctx := context.Background()

	// Screening record store: Postgres when configured, memory otherwise.
	var screenings workflowStore.Store
	if cfg.PostgresDSN != "" {
		db, err := sql.Open("postgres", cfg.PostgresDSN)
		if err != nil {
			log.Error("failed to open postgres", "error", err)
			os.Exit(1)
		}
		defer db.Close()
		pg := workflowStore.NewPostgresStore(db)
		if err := pg.EnsureSchema(ctx); err != nil {
			log.Error("failed to ensure postgres schema", "error", err)
			os.Exit(1)
		}
		screenings = pg
		log.Info("using postgres screening store")
	} else {
		screenings = workflowStore.NewInMemoryStore()
		log.Info("using in-memory screening store")
	}

	// Screening cache: Redis when configured.
	var cache watchlistStore.Cache
	redisClient, err := platformRedis.New(cfg.Redis())
	if err != nil {
		log.Error("failed to connect to redis", "error", err)
		os.Exit(1)
	}
	if redisClient != nil {
		defer redisClient.Close()
		cache = watchlistStore.NewRedisCache(redisClient.Client, 24*time.Hour)
		log.Info("screening cache enabled")
	}

	// Audit sink: Kafka when brokers are configured, memory otherwise.
	var auditSink audit.Publisher = audit.NewRecorder()
	if len(cfg.KafkaBrokers) > 0 {
		kafka, err := audit.NewKafkaPublisher(ctx, cfg.KafkaBrokers, cfg.AuditTopic)
		if err != nil {
			log.Error("failed to connect audit sink", "error", err)
			os.Exit(1)
		}
		defer kafka.Close()
		auditSink = kafka
		log.Info("audit sink enabled", "topic", cfg.AuditTopic)
	}

	screener := watchlist.New(watchlist.DefaultProviders(),
		watchlist.WithTimeout(cfg.LookupTimeout),
		watchlist.WithLogger(log),
		watchlist.WithMetrics(watchlistMetrics.New()),
	)
	cachedScreener := watchlist.NewCachedScreener(screener, cache, log)

	engine := classification.NewEngine(classification.DefaultRuleSet())
	workflow := workflowService.NewService(screenings, cachedScreener,
		workflowService.WithAuditPublisher(audit.NewLoggingPublisher(auditSink, log)),
		workflowService.WithMetrics(m),
		workflowService.WithLogger(log),
	)

	jwtService := jwttoken.NewJWTService(cfg.JWTSigningKey, "complyd", "complyd")

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Recovery(log))
	router.Use(middleware.Logger(log))
	router.Use(middleware.Timeout(30 * time.Second))
	router.Use(middleware.LatencyMiddleware(m))

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})
	router.Handle("/metrics", promhttp.Handler())

	// Stateless assessment endpoints.
	router.Group(func(r chi.Router) {
		r.Use(middleware.ContentTypeJSON)
		classificationHandler.New(engine, log).Register(r)
		reconcileHandler.New(reconcile.New(), log).Register(r)
		riskHandler.New(log).Register(r)
		shipmentHandler.New(shipment.New(engine), m, audit.NewLoggingPublisher(auditSink, log), log).Register(r)
		watchlistHandler.New(cachedScreener, log).Register(r)
	})

	// Workflow endpoints require an authenticated officer.
	router.Group(func(r chi.Router) {
		r.Use(middleware.ContentTypeJSON)
		r.Use(middleware.RequireAuth(jwtService, log))
		workflowHandler.New(workflow, log).Register(r)
	})

	srv := httpserver.New(cfg.Addr, router)

	go func() {
		log.Info("starting complyd", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
		os.Exit(1)
	}
}
