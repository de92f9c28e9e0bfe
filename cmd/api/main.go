package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"shop-admin-api/internal/attachment"
	"shop-admin-api/internal/cache"
	"shop-admin-api/internal/calendar"
	"shop-admin-api/internal/handler"
	"shop-admin-api/internal/jobs"
	"shop-admin-api/internal/media"
	"shop-admin-api/internal/middleware"
	"shop-admin-api/internal/model"
	"shop-admin-api/internal/repository"
	"shop-admin-api/internal/service"
	"shop-admin-api/internal/ws"
	"shop-admin-api/pkg/config"
	"shop-admin-api/pkg/database"
	"shop-admin-api/pkg/jwt"
	"shop-admin-api/pkg/logger"
	"shop-admin-api/pkg/metrics"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

func main() {
	// 1. Load config and logger
	cfg := config.Load()
	if err := logger.Init(cfg.Log); err != nil {
		panic(err)
	}
	defer logger.L().Sync()
	log := logger.L()
	ctx := context.Background()

	// 2. Setup Database
	db, err := database.Connect(cfg.DB, cfg.Server.Env)
	if err != nil {
		log.Fatal("database connection failed", zap.Error(err))
	}
	if err := db.AutoMigrate(model.Tables()...); err != nil {
		log.Fatal("auto migrate failed", zap.Error(err))
	}

	// 3. Seed default privileges, roles, admin user and content rows
	seed(ctx, db, cfg.Server)

	// 4. Media store, calendar, cache
	httpMetrics := metrics.New(cfg.Log.ServiceName, prometheus.DefaultRegisterer)
	rawStore, err := media.New(ctx, cfg.Storage, cfg.Server.PublicURL)
	if err != nil {
		log.Fatal("media store setup failed", zap.Error(err))
	}
	store := media.WithMetrics(rawStore, httpMetrics)

	loc := calendar.LoadLocation(cfg.Chart.Location)
	cal, err := calendar.New(cfg.Chart.Calendar, loc)
	if err != nil {
		log.Fatal("calendar setup failed", zap.Error(err))
	}
	chartCache := cache.New(cfg.Redis)

	// 5. Setup WebSocket Hub
	wsHub := ws.NewHub()
	go wsHub.Run()

	// 6. Dependency Injection (Wiring Layers)
	tx := database.NewTransactor(db)
	namer := media.NewNamer(time.Now)
	productFiles := attachment.NewManager(store, tx, "images/products", namer)
	sliderFiles := attachment.NewManager(store, tx, "images/sliders", namer)

	productRepo := repository.NewProductRepo(db)
	categoryRepo := repository.NewCategoryRepo(db)
	userRepo := repository.NewUserRepo(db)
	roleRepo := repository.NewRoleRepo(db)
	privilegeRepo := repository.NewPrivilegeRepo(db)

	issuer := jwt.NewIssuer(cfg.JWT.Secret, time.Duration(cfg.JWT.ExpirationHours)*time.Hour, cfg.JWT.Issuer)
	authService := service.NewAuthService(userRepo, issuer)
	txService := service.NewTransactionService(repository.NewTransactionRepo(db), cal, chartCache,
		service.ChartOptions{Months: cfg.Chart.Months, CacheTTL: cfg.Chart.CacheTTL}, time.Now)

	presenter := handler.NewPresenter(productFiles, sliderFiles, cal, time.Now)
	handlers := &handler.Handlers{
		Auth: handler.NewAuthHandler(authService),
		Products: handler.NewProductHandler(
			service.NewProductService(productRepo, categoryRepo, productFiles, wsHub, loc, cfg.Storage.MaxUploadKB), presenter),
		Sliders: handler.NewSliderHandler(
			service.NewSliderService(repository.NewSliderRepo(db), sliderFiles, wsHub, cfg.Storage.MaxUploadKB), presenter),
		Categories:   handler.NewCategoryHandler(service.NewCategoryService(categoryRepo), presenter),
		Features:     handler.NewFeatureHandler(service.NewFeatureService(repository.NewFeatureRepo(db))),
		Coupons:      handler.NewCouponHandler(service.NewCouponService(repository.NewDiscountRepo(db), loc), presenter),
		Content:      handler.NewContentHandler(service.NewContentService(repository.NewContentRepo(db), repository.NewContactRepo(db))),
		Orders:       handler.NewOrderHandler(service.NewOrderService(repository.NewOrderRepo(db), wsHub), presenter),
		Transactions: handler.NewTransactionHandler(txService, presenter),
		Users:        handler.NewUserHandler(service.NewUserService(userRepo, roleRepo, tx), presenter),
		Roles:        handler.NewRoleHandler(service.NewRoleService(roleRepo, privilegeRepo)),
	}

	// 7. Background jobs
	var scheduler *jobs.Scheduler
	if cfg.Chart.RefreshEnabled() {
		scheduler, err = jobs.NewScheduler(cfg.Chart.RefreshInterval, txService.RefreshChart)
		if err != nil {
			log.Fatal("scheduler setup failed", zap.Error(err))
		}
		scheduler.Start()
	} else {
		log.Info("chart cache refresh disabled")
	}

	// 8. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName:      cfg.Server.AppName,
		ErrorHandler: handler.ErrorHandler,
		BodyLimit:    32 * 1024 * 1024,
	})

	// Middleware
	app.Use(requestid.New())
	app.Use(logger.Middleware())
	app.Use(httpMetrics.Middleware())
	app.Use(recover.New())
	app.Use(cors.New())

	app.Get("/metrics", metrics.Handler())
	if local, ok := rawStore.(*media.LocalStore); ok {
		app.Static("/storage", local.Root())
	}

	requireAuth := middleware.RequireAuth(authService)
	handlers.Register(app.Group("/api"), requireAuth)

	// WebSocket Route
	app.Use("/ws", requireAuth, func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})
	app.Get("/ws", websocket.New(func(c *websocket.Conn) {
		wsHub.Register <- c
		defer func() { wsHub.Unregister <- c }()

		for {
			// Keep alive loop
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	}))

	// 9. Graceful Shutdown
	go func() {
		if err := app.Listen(":" + cfg.Server.Port); err != nil {
			log.Panic("server stopped", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.Error("server forced to shutdown", zap.Error(err))
	}
	if err := scheduler.Stop(); err != nil {
		log.Warn("scheduler shutdown failed", zap.Error(err))
	}
	wsHub.Stop()
	if closer, ok := chartCache.(io.Closer); ok {
		closer.Close()
	}
	if closer, ok := rawStore.(io.Closer); ok {
		closer.Close()
	}
	log.Info("server exited")
}
