package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"fsanano/go-shop/internal/config"
	"fsanano/go-shop/internal/handler"
	"fsanano/go-shop/internal/logging"
	"fsanano/go-shop/internal/seed"
	"fsanano/go-shop/internal/service"
)

func main() {
	// 1. Load config
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	// 2. Setup Logic
	shop := service.NewShop(logger)

	if cfg.SeedFile != "" {
		f, err := seed.LoadFile(cfg.SeedFile)
		if err != nil {
			logger.Fatal("failed to load seed file", zap.String("path", cfg.SeedFile), zap.Error(err))
		}
		res := f.Apply(shop)
		logger.Info("seed applied",
			zap.String("path", cfg.SeedFile),
			zap.Int("users_added", res.UsersAdded),
			zap.Int("users_rejected", res.UsersRejected),
			zap.Int("products_added", res.ProductsAdded),
			zap.Int("orders_added", res.OrdersAdded),
			zap.Int("orders_rejected", res.OrdersRejected),
		)
	}

	shopHandler := handler.NewShopHandler(shop, logger)
	h := handler.NewHandler(shopHandler)

	// 3. Setup Server
	server := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: h,
	}

	// 4. Run Server with Graceful Shutdown
	go func() {
		logger.Info("starting server", zap.String("port", cfg.ServerPort))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 2)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server")

	// Create a deadline to wait for.
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Fatal("server forced to shutdown", zap.Error(err))
	}

	logger.Info("server exiting")
}
