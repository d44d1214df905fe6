package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	intconfig "carrental/internal/config"
	router "carrental/internal/http"
	"carrental/internal/http/handlers"
	"carrental/internal/services"
	"carrental/internal/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	env := intconfig.LoadEnv()
	if env.GinMode != "" {
		gin.SetMode(env.GinMode)
	}
	utils.InitLogger(env.LogLevel, env.LogFormat)
	log := utils.Logger()

	if env.UsingDefaultSecret() {
		if gin.Mode() == gin.ReleaseMode {
			log.Fatal("SESSION_SECRET must be set in release mode")
		}
		log.Warn("SESSION_SECRET not set, using development secret")
	}

	startCtx, cancelStart := context.WithTimeout(context.Background(), 30*time.Second)
	db, err := intconfig.ConnectDB(startCtx, env.DatabaseDSN)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	if err := intconfig.EnsureSchema(startCtx, db); err != nil {
		log.Fatalf("schema: %v", err)
	}
	if env.SeedData {
		if err := (services.Seeder{DB: db}).Seed(startCtx); err != nil {
			log.Fatalf("seed: %v", err)
		}
	}
	cancelStart()

	hd := &handlers.Handler{
		DB:           db,
		Sessions:     services.SessionManager{Secret: []byte(env.SessionSecret)},
		SecureCookie: env.SecureCookie,
	}
	r := router.NewRouter(env, hd)

	srv := &http.Server{
		Addr:              env.AppAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       20 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Infof("server listening on %s", env.AppAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("shutdown failed: %v", err)
	}

	log.Info("server stopped cleanly")
}
