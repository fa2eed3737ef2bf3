package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/aouiniamine/hello-service/docs"

	"github.com/aouiniamine/hello-service/internal/config"
	"github.com/aouiniamine/hello-service/internal/features/greeting"
	"github.com/aouiniamine/hello-service/internal/features/health"
	"github.com/aouiniamine/hello-service/internal/features/metrics"
	"github.com/aouiniamine/hello-service/internal/server"
	"github.com/joho/godotenv"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// @title Hello Service API
// @version 1.0
// @description Greeting, liveness and readiness endpoints

// @host localhost:5000
// @BasePath /

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()

	srv := server.New(cfg)

	srv.Echo().GET("/swagger/*", echoSwagger.WrapHandler)

	greetingFeature := greeting.New()
	greetingFeature.RegisterRoutes(srv.Echo())

	healthFeature := health.New()
	healthFeature.RegisterRoutes(srv.Echo())

	if reg := srv.Registry(); reg != nil {
		metrics.New(reg).RegisterRoutes(srv.Echo())
	}

	go func() {
		log.Printf("Starting server on %s", srv.Addr())
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server stopped: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited gracefully")
}
