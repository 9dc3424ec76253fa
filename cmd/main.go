/**
 * @description
 * This is the main entry point for the support-console integration. Its role
 * is to start an HTTP server that answers the console's canvas webhooks with
 * a customer's trading-account overview.
 *
 * Key features:
 * - Loads application configuration from environment variables.
 * - Wires the admin API client, formatter, assembler and webhook service.
 * - Sets up an HTTP router (`chi`) for the initialize and submit webhooks.
 * - Implements graceful shutdown to ensure clean resource cleanup on
 *   termination.
 *
 * @dependencies
 * - github.com/go-chi/chi/v5: A lightweight and idiomatic router for building Go HTTP services.
 * - github.com/joho/godotenv: For loading .env files during local development.
 * - The service's internal packages for config, API handling and the admin client.
 */
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/kosarlukascz/intercomproxy/internal/api"
	"github.com/kosarlukascz/intercomproxy/internal/app"
	"github.com/kosarlukascz/intercomproxy/internal/config"
	"github.com/kosarlukascz/intercomproxy/pkg/adminclient"
)

func main() {
	// Load .env file for local development.
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Load application configuration.
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("cannot load config: %v", err)
	}

	// Wire the webhook service.
	gateway := adminclient.NewClient(cfg.AdminAPIBaseURL, cfg.AdminServiceToken)
	formatter := app.NewFormatter(app.DefaultGlyphPolicy(), cfg.AdminDashboardURL)
	assembler := app.NewAssembler(formatter, cfg.AdminDashboardURL)
	service := app.NewService(gateway, assembler)

	// Set up router and handlers.
	handler := api.NewHandler(service)
	router := api.NewRouter(handler)

	// Start the HTTP server.
	server := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: router,
	}

	go func() {
		log.Printf("Support console integration running on port %s", cfg.ServerPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Could not start server: %s\n", err)
		}
	}()

	// Graceful shutdown logic.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server shutdown failed: %v", err)
	}

	log.Println("Server gracefully stopped")
}
