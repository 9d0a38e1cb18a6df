package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"mentorportal/internal/config"
	"mentorportal/internal/docstore"
	"mentorportal/internal/domain/admin"
	"mentorportal/internal/logger"
	"mentorportal/internal/middleware"
	"mentorportal/internal/pkg/password"
	"mentorportal/internal/pkg/response"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logger.New(0).Fatal("failed to load config", "error", err.Error())
	}

	log := logger.New(cfg.LogLevel)

	if cfg.IsProdLike() {
		gin.SetMode(gin.ReleaseMode)
	}

	// the store client is opened on the first request that needs it
	stores := docstore.NewAccessor(docstore.OpenerFor(cfg, log))
	defer func() {
		if err := stores.Close(); err != nil {
			log.Error("failed to close document store", "error", err.Error())
		}
	}()

	adminService := admin.NewService(
		admin.NewRepository(stores),
		password.NewHasher(cfg.BcryptCost),
		log,
	)
	adminHandler := admin.NewHandler(adminService, log)

	r := gin.New()
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.ErrorLogger(log))
	r.Use(middleware.CORS(cfg.CORSOrigins))

	r.GET("/healthz", func(c *gin.Context) {
		response.OK(c, http.StatusOK, nil)
	})

	api := r.Group("/api")
	{
		adminHandler.RegisterRoutes(api)
	}

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info("http server listening",
			"addr", cfg.HTTPAddr,
			"backend", cfg.DocStore.Backend)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("http server failed", "error", err.Error())
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", "error", err.Error())
	}
}
