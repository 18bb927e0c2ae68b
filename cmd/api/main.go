package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/Brandon-S-Engineer/Freelance-1-Back-End/internal/assets"
	"github.com/Brandon-S-Engineer/Freelance-1-Back-End/internal/config"
	"github.com/Brandon-S-Engineer/Freelance-1-Back-End/internal/delivery/http/route"
	repo "github.com/Brandon-S-Engineer/Freelance-1-Back-End/internal/repository/mongodb"
	utils "github.com/Brandon-S-Engineer/Freelance-1-Back-End/pkg"
	"github.com/Brandon-S-Engineer/Freelance-1-Back-End/pkg/sigctx"
)

// @title           E-Commerce Admin API
// @version         1.0
// @description     Store-scoped administration API: billboards, categories, sizes, colors, products and orders.
// @BasePath        /api
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
func main() {
	_ = godotenv.Load()

	cfg := config.Load()

	log := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(log)

	ctx, stop := sigctx.NotifyContext(context.Background())
	defer stop()

	client, err := repo.Connect(ctx, cfg.MongoURI, cfg.MongoDatabase)
	if err != nil {
		log.Error("failed to connect to database", "err", err)
		os.Exit(1)
	}

	destroyer, err := assets.NewCloudinary(cfg.CloudinaryURL)
	if err != nil {
		log.Error("failed to init asset cleanup", "err", err)
		os.Exit(1)
	}

	tokens := utils.NewTokenManager(utils.JWTConfig{
		Secret:         cfg.JWT.Secret,
		RefreshSecret:  cfg.JWT.RefreshSecret,
		Issuer:         cfg.JWT.Issuer,
		AccessTTLMin:   cfg.JWT.AccessTTLMin,
		RefreshTTLDays: cfg.JWT.RefreshTTLDays,
	})

	app := gin.Default()
	route.SetupRoute(app, client.Database(), tokens, destroyer)

	srv := &http.Server{
		Addr:              cfg.HTTPServerAddr,
		Handler:           app,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		defer stop()
		log.Info("listening", "addr", cfg.HTTPServerAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("unexpected server shutdown", "err", err)
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	log.Info("closing http server...")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("failed to shutdown gracefully", "err", err)
	}
	if err := client.Close(shutdownCtx); err != nil {
		log.Error("failed to disconnect from database", "err", err)
	}
	log.Info("server stopped")
}
