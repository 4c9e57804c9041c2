package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"shop-admin/internal/core/cache"
	"shop-admin/internal/core/config"
	"shop-admin/internal/core/httpclient"
	"shop-admin/internal/core/logger"
	"shop-admin/internal/core/server"
	categoryadapter "shop-admin/internal/features/categories/adapters"
	categoryhandler "shop-admin/internal/features/categories/handler"
	categoryservice "shop-admin/internal/features/categories/service"
	couponadapter "shop-admin/internal/features/coupons/adapters"
	couponhandler "shop-admin/internal/features/coupons/handler"
	couponservice "shop-admin/internal/features/coupons/service"
	dashboardhandler "shop-admin/internal/features/dashboard/handler"
	dashboardservice "shop-admin/internal/features/dashboard/service"
	fileadapter "shop-admin/internal/features/files/adapters"
	filehandler "shop-admin/internal/features/files/handler"
	fileservice "shop-admin/internal/features/files/service"
	orderadapter "shop-admin/internal/features/orders/adapters"
	orderhandler "shop-admin/internal/features/orders/handler"
	orderservice "shop-admin/internal/features/orders/service"
	productadapter "shop-admin/internal/features/products/adapters"
	producthandler "shop-admin/internal/features/products/handler"
	productservice "shop-admin/internal/features/products/service"

	"go.uber.org/zap"
)

// @title Shop Admin API
// @version 1.0
// @description Admin API for the e-commerce backend: categories, products and variants, coupons, orders, image uploads and the dashboard.
// @contact.name API Support
// @license.name MIT
// @host localhost:8090
// @BasePath /
func main() {
	cfg, err := config.Load(".")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Sync()

	l := logger.Get()
	l.Info("Application starting",
		zap.String("environment", cfg.Environment),
		zap.String("log_level", cfg.LogLevel),
		zap.String("backend_url", cfg.Backend.URL),
	)

	statsCache := newCache(cfg.Cache)
	defer statsCache.Close()

	transport := httpclient.WithTransport(cfg.Backend.Proxy.Transport())
	if cfg.Backend.Proxy.HasProxy() {
		l.Info("Backend calls go through proxy", zap.String("proxy", cfg.Backend.Proxy.Redacted()))
	}

	client := httpclient.NewRESTClient(cfg.Backend.URL, cfg.Backend.Timeout, transport)

	// Categories & products
	categorySvc := categoryservice.NewCategoryService(categoryadapter.NewRESTAdapter(client))
	productSvc := productservice.NewProductService(productadapter.NewRESTAdapter(client))

	// Coupons & orders keep their stats in the cache
	couponSvc := couponservice.NewCouponService(couponadapter.NewRESTAdapter(client), statsCache, cfg.Cache.StatsTTL)
	orderSvc := orderservice.NewOrderService(orderadapter.NewRESTAdapter(client), statsCache, cfg.Cache.StatsTTL)

	// Uploads stream through a client without the request timeout; the context bounds them.
	fileClient := httpclient.NewRESTClient(cfg.Backend.URL, 0, transport)
	fileSvc := fileservice.NewFileService(fileadapter.NewRESTAdapter(fileClient, cfg.Backend.PublicFilesURL()), cfg.Upload.MaxBytes, cfg.Upload.MaxFiles)

	dashboardSvc := dashboardservice.NewDashboardService(categorySvc, productSvc, statsCache, cfg.Cache.StatsTTL)

	srv := server.New(cfg)

	// Register Routes
	categoryhandler.NewCategoryHandler(categorySvc).Register(srv.Admin)
	producthandler.NewProductHandler(productSvc).Register(srv.Admin)
	couponhandler.NewCouponHandler(couponSvc).Register(srv.Admin)
	orderhandler.NewOrderHandler(orderSvc).Register(srv.Admin)
	filehandler.NewFileHandler(fileSvc).Register(srv.Admin)
	dashboardhandler.NewDashboardHandler(dashboardSvc).Register(srv.Admin)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Run()
	}()

	select {
	case err := <-errCh:
		if err != nil {
			l.Fatal("Server failed to start", zap.Error(err))
		}
	case <-ctx.Done():
		l.Info("Shutting down")
		if err := srv.Shutdown(); err != nil {
			l.Error("Shutdown failed", zap.Error(err))
		}
	}
}

// newCache connects to Redis when configured. An unreachable Redis downgrades
// to no caching rather than stopping the service.
func newCache(cfg config.CacheConfig) cache.Cache {
	l := logger.Get()
	if cfg.RedisURL == "" {
		l.Info("Stats cache disabled")
		return cache.NewNoop()
	}

	redisCache, err := cache.NewRedisAdapter(cfg.RedisURL, "shop-admin:")
	if err != nil {
		l.Warn("Invalid Redis URL, stats cache disabled", zap.Error(err))
		return cache.NewNoop()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := redisCache.Ping(ctx); err != nil {
		l.Warn("Redis unreachable, stats cache disabled", zap.Error(err))
		_ = redisCache.Close()
		return cache.NewNoop()
	}

	l.Info("Redis stats cache connected", zap.Duration("ttl", cfg.StatsTTL))
	return redisCache
}
