package server

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/lmittmann/tint"

	"github.com/NikGojani/san-rise-sub001/internal/domain/auth"
	"github.com/NikGojani/san-rise-sub001/internal/platform/config"
	"github.com/NikGojani/san-rise-sub001/internal/platform/db"
	"github.com/NikGojani/san-rise-sub001/internal/platform/metrics"
	authhandler "github.com/NikGojani/san-rise-sub001/internal/transport/http/handlers/auth"
	calculatorhandler "github.com/NikGojani/san-rise-sub001/internal/transport/http/handlers/calculator"
	contractshandler "github.com/NikGojani/san-rise-sub001/internal/transport/http/handlers/contracts"
	costshandler "github.com/NikGojani/san-rise-sub001/internal/transport/http/handlers/costs"
	dashboardhandler "github.com/NikGojani/san-rise-sub001/internal/transport/http/handlers/dashboard"
	employeeshandler "github.com/NikGojani/san-rise-sub001/internal/transport/http/handlers/employees"
	eventshandler "github.com/NikGojani/san-rise-sub001/internal/transport/http/handlers/events"
	reportshandler "github.com/NikGojani/san-rise-sub001/internal/transport/http/handlers/reports"
	settingshandler "github.com/NikGojani/san-rise-sub001/internal/transport/http/handlers/settings"
	taskshandler "github.com/NikGojani/san-rise-sub001/internal/transport/http/handlers/tasks"
	"github.com/NikGojani/san-rise-sub001/internal/transport/http/middleware"
)

func Run() {
	cfg := config.Load()
	setupLogger(cfg)

	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg)
	if err != nil {
		slog.Error("db connect failed", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	if cfg.RunMigrations {
		if err := db.Migrate(ctx, pool, "migrations"); err != nil {
			slog.Error("migrations failed", "error", err)
			os.Exit(1)
		}
	}

	if cfg.RunSeed {
		if err := db.Seed(ctx, pool, cfg); err != nil {
			slog.Error("seed failed", "error", err)
			os.Exit(1)
		}
	}

	collector := metrics.New()
	sessions := auth.NewStore(pool)

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.BodyLimit(cfg.MaxBodyBytes))
	router.Use(middleware.Metrics(collector))
	router.Use(middleware.Auth(cfg.JWTSecret, sessions))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	router.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := pool.Ping(ctx); err != nil {
			http.Error(w, "db not ready", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	if cfg.MetricsEnabled {
		router.Method(http.MethodGet, "/metrics", collector.Handler())
	}

	router.Route("/api/v1", func(r chi.Router) {
		authHandler := authhandler.NewHandler(pool, cfg.JWTSecret, cfg.SessionTTL)
		authHandler.RegisterRoutes(r)

		contractsHandler := contractshandler.NewHandler(pool)
		contractsHandler.RegisterRoutes(r)

		employeesHandler := employeeshandler.NewHandler(pool)
		employeesHandler.RegisterRoutes(r)

		costsHandler := costshandler.NewHandler(pool)
		costsHandler.RegisterRoutes(r)

		tasksHandler := taskshandler.NewHandler(pool)
		tasksHandler.RegisterRoutes(r)

		eventsHandler := eventshandler.NewHandler(pool)
		eventsHandler.RegisterRoutes(r)

		calculatorHandler := calculatorhandler.NewHandler(pool, cfg.SeedCompanyName)
		calculatorHandler.RegisterRoutes(r)

		settingsHandler := settingshandler.NewHandler(pool, cfg.SeedCompanyName)
		settingsHandler.RegisterRoutes(r)

		dashboardHandler := dashboardhandler.NewHandler(pool)
		dashboardHandler.RegisterRoutes(r)

		reportsHandler := reportshandler.NewHandler(pool, cfg.SeedCompanyName)
		reportsHandler.RegisterRoutes(r)
	})

	slog.Info("server listening", "addr", cfg.Addr, "env", cfg.Environment)
	if err := http.ListenAndServe(cfg.Addr, router); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}

func setupLogger(cfg config.Config) {
	var handler slog.Handler
	if cfg.Environment == "production" {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	} else {
		handler = tint.NewHandler(os.Stdout, &tint.Options{
			Level:      slog.LevelDebug,
			TimeFormat: time.Kitchen,
		})
	}
	slog.SetDefault(slog.New(handler))
}
