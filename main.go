package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"classmanager_backend/internals/configs"
	database "classmanager_backend/internals/databases"
	helper "classmanager_backend/internals/helpers"
	routes "classmanager_backend/internals/route"
	"classmanager_backend/internals/seeds"
)

func main() {
	log := configs.NewLogger(os.Getenv("LOG_LEVEL"))
	configs.LoadEnv(log)
	cfg := configs.Load(log)
	log = configs.NewLogger(cfg.LogLevel) // .env bisa mengubah LOG_LEVEL

	// 🔌 DB connect + migrate
	db, err := database.ConnectDB(cfg, log)
	if err != nil {
		log.WithError(err).Fatal("database connection failed")
	}

	tokens := helper.NewTokenIssuer(cfg.JWTSecret, cfg.JWTTTL)

	// 🌱 seed opsional (dev)
	if cfg.SeedUsersFile != "" {
		if err := seeds.RunAllSeeds(context.Background(), db, tokens, log, cfg.SeedUsersFile); err != nil {
			log.WithError(err).Error("seeding failed")
		}
	}

	app := routes.NewApp(cfg, routes.Deps{
		DB:        db,
		Log:       log,
		Tokens:    tokens,
		RateLimit: cfg.EnableRateLimit,
	})

	// 🔒 Keep-Alive & timeout koneksi server
	app.Server().ReadTimeout = 15 * time.Second
	app.Server().WriteTimeout = 30 * time.Second
	app.Server().IdleTimeout = 90 * time.Second

	// Start server non-blocking
	go func() {
		log.WithField("port", cfg.Port).Info("listening")
		if err := app.Listen("0.0.0.0:" + cfg.Port); err != nil {
			log.WithError(err).Fatal("server error")
		}
	}()

	// graceful shutdown + tutup pool DB
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		log.WithError(err).Warn("shutdown")
	}
	database.Close(db)
	log.Info("server stopped")
}
