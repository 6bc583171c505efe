package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"hrportal/internal/domain/activity"
	"hrportal/internal/domain/authz"
	"hrportal/internal/domain/employee"
	"hrportal/internal/domain/leave"
	"hrportal/internal/domain/reports"
	"hrportal/internal/domain/support"
	"hrportal/internal/platform/config"
	"hrportal/internal/platform/db"
	"hrportal/internal/platform/metrics"
	activityhandler "hrportal/internal/transport/http/handlers/activity"
	authhandler "hrportal/internal/transport/http/handlers/auth"
	employeehandler "hrportal/internal/transport/http/handlers/employees"
	leavehandler "hrportal/internal/transport/http/handlers/leave"
	reportshandler "hrportal/internal/transport/http/handlers/reports"
	supporthandler "hrportal/internal/transport/http/handlers/support"
	"hrportal/internal/transport/http/middleware"
)

type App struct {
	Config config.Config
	DB     *pgxpool.Pool
	Router http.Handler
}

// New connects, migrates, seeds, and assembles the router. Callers own the
// returned pool via Close.
func New(ctx context.Context, cfg config.Config) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	pool, err := db.Connect(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("db connect: %w", err)
	}

	if cfg.RunMigrations {
		if err := db.Migrate(ctx, pool, cfg.MigrationsDir); err != nil {
			pool.Close()
			return nil, fmt.Errorf("migrations: %w", err)
		}
	}
	if cfg.RunSeed {
		if err := db.Seed(ctx, pool, cfg); err != nil {
			pool.Close()
			return nil, fmt.Errorf("seed: %w", err)
		}
	}

	secret := cfg.SessionSecret
	if secret == "" {
		secret = "insecure-dev-secret"
	}

	adminHash, err := authz.HashPassword(cfg.AdminPassword)
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("hash admin password: %w", err)
	}

	employeeStore := employee.NewStore(pool)
	leaveStore := leave.NewStore(pool)
	supportStore := support.NewStore(pool)

	employeeSvc := employee.NewService(employeeStore)
	leaveSvc := leave.NewService(leaveStore, employeeStore)
	supportSvc := support.NewService(supportStore, employeeStore)
	activitySvc := activity.New(pool)
	reportsSvc := reports.NewService(employeeStore, leaveStore, supportStore, activitySvc)

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	// Auth runs before Logger so access lines carry the session role.
	router.Use(middleware.Auth(secret))
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	if cfg.MetricsEnabled {
		router.Use(middleware.Metrics)
	}
	router.Use(middleware.BodyLimit(cfg.MaxBodyBytes))
	router.Use(middleware.RateLimit(cfg.RateLimitPerMinute, time.Minute))

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
		router.Method(http.MethodGet, "/metrics", metrics.Handler())
	}

	router.Route("/api", func(r chi.Router) {
		authhandler.NewHandler(employeeStore, employeeSvc, activitySvc, secret, cfg.SessionTTL, authhandler.Accounts{
			AdminEmail: cfg.AdminEmail,
			AdminName:  cfg.AdminName,
			AdminHash:  adminHash,
			HREmail:    cfg.HREmail,
			HRName:     cfg.HRName,
		}).RegisterRoutes(r)
		employeehandler.NewHandler(employeeSvc, reportsSvc).RegisterRoutes(r)
		leavehandler.NewHandler(leaveSvc, reportsSvc).RegisterRoutes(r)
		supporthandler.NewHandler(supportSvc, reportsSvc).RegisterRoutes(r)
		activityhandler.NewHandler(activitySvc, reportsSvc).RegisterRoutes(r)
		reportshandler.NewHandler(reportsSvc).RegisterRoutes(r)
	})

	return &App{Config: cfg, DB: pool, Router: router}, nil
}

func (a *App) Close() {
	if a.DB != nil {
		a.DB.Close()
	}
}

func Run() {
	ctx := context.Background()
	cfg := config.Load()

	app, err := New(ctx, cfg)
	if err != nil {
		log.Fatalf("startup failed: %v", err)
	}
	defer app.Close()

	log.Printf("HR portal listening on %s", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, app.Router); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
