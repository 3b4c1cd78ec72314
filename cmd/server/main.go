package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/caloria/webadmin/internal/config"
	appMiddleware "github.com/caloria/webadmin/internal/middleware"
	"github.com/caloria/webadmin/internal/repository"
	"github.com/caloria/webadmin/internal/service"
	"github.com/caloria/webadmin/internal/web"
	"github.com/caloria/webadmin/internal/ws"
	"github.com/caloria/webadmin/pkg/crypto"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file if present (for local development)
	if err := godotenv.Load(); err == nil {
		log.Println("loaded .env")
	}

	// Load config
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	ctx := context.Background()

	// Initialize database
	db, err := repository.NewDB(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("database error: %v", err)
	}
	defer db.Close()

	// Run migrations
	if err := repository.RunMigrations(ctx, db); err != nil {
		log.Fatalf("migration error: %v", err)
	}
	log.Println("database connected & migrated")

	// Initialize cookie encryptor
	enc, err := crypto.NewEncryptor(cfg.EncryptionKey)
	if err != nil {
		log.Fatalf("encryption error: %v", err)
	}

	// Stats cache (optional)
	cache := repository.NewStatsCache(cfg.RedisAddr)
	if cache.Enabled() {
		log.Println("redis connected")
	} else {
		log.Println("redis not configured, dashboard stats are uncached")
	}

	// Repositories
	adminRepo := repository.NewAdminRepository(db)
	userRepo := repository.NewUserRepository(db, enc)
	foodLogRepo := repository.NewFoodLogRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	activityRepo := repository.NewActivityRepository(db)

	// Services
	authSvc := service.NewAuthService(cfg.SessionSecret, cfg.AdminEmail, cfg.AdminPassword, adminRepo)
	if err := authSvc.SeedAdmin(ctx); err != nil {
		log.Fatalf("admin seed error: %v", err)
	}
	dashSvc := service.NewDashboardService(userRepo, foodLogRepo, paymentRepo, activityRepo, cache)
	userSvc := service.NewUserAdminService(userRepo, foodLogRepo, paymentRepo, activityRepo)

	// Rendering
	renderer, err := web.NewRenderer()
	if err != nil {
		log.Fatalf("template error: %v", err)
	}
	flash := web.NewFlashStore(enc)

	// Handlers
	authHandler := web.NewAuthHandler(authSvc, renderer, flash)
	publicHandler := web.NewPublicHandler(renderer)
	dashHandler := web.NewDashboardHandler(dashSvc, renderer, flash)
	userHandler := web.NewUserHandler(userSvc, renderer, flash)
	statusHandler := web.NewStatusHandler(db, cache, renderer, flash)
	liveHandler := ws.NewLiveStatsHandler(dashSvc, authSvc)

	// Build router
	r := chi.NewRouter()

	// Global middleware
	r.Use(appMiddleware.Recovery)
	r.Use(appMiddleware.Logger)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.BaseURL},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Global rate limiter (20 req/sec per IP, burst of 40)
	globalRL := appMiddleware.NewRateLimiter(20, 40)
	r.Use(globalRL.Middleware())

	// Public site and health check (no auth)
	r.Get("/", publicHandler.Index)
	r.Get("/privacy", publicHandler.Privacy)
	r.Get("/terms", publicHandler.Terms)
	r.Get("/health", statusHandler.Health)

	// Login routes
	r.Group(func(r chi.Router) {
		r.Use(appMiddleware.StrictRateLimiter())
		r.Get("/admin/login", authHandler.LoginPage)
		r.Post("/admin/login", authHandler.Login)
	})

	// Protected admin routes
	r.Group(func(r chi.Router) {
		r.Use(appMiddleware.SessionAuth(authSvc))
		r.Use(appMiddleware.AdminOnly)

		r.Post("/admin/logout", authHandler.Logout)
		r.Get("/admin", dashHandler.Show)
		r.Get("/admin/system-status", statusHandler.Show)

		// Specific routes BEFORE generic {userID} route
		r.Get("/admin/users/export.csv", userHandler.Export)
		r.Get("/admin/users", userHandler.List)
		r.Post("/admin/users/{userID}/toggle", userHandler.Toggle)
		r.Post("/admin/users/{userID}/delete", userHandler.Delete)
		r.Get("/admin/users/{userID}", userHandler.Detail)
	})

	// WebSocket live stats (auth via session cookie)
	r.HandleFunc("/admin/live", liveHandler.Handle)

	// Start server
	addr := fmt.Sprintf("0.0.0.0:%d", cfg.Port)
	server := &http.Server{
		Addr:        addr,
		Handler:     r,
		ReadTimeout: 30 * time.Second,
		// WriteTimeout must be 0 for WebSocket connections (they are long-lived)
		IdleTimeout: 120 * time.Second,
	}

	// Graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		log.Println("shutting down...")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		server.Shutdown(ctx)
	}()

	log.Printf("Caloria admin listening at http://%s", addr)
	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatalf("server error: %v", err)
	}
}
