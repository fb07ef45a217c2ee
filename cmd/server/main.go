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
	"github.com/sgoral/voe/internal/api"
	"github.com/sgoral/voe/internal/config"
	"github.com/sgoral/voe/internal/db"
	"github.com/sgoral/voe/internal/vote"
)

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	database, err := db.NewPostgres(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := db.RunMigrations(ctx, database.Pool()); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	store := vote.NewStore(database.Pool())
	directory := vote.NewDirectory(vote.DefaultEditors)
	log.Println("Vote store initialized")

	routerResult := api.NewRouter(&api.RouterConfig{
		Database: database,
		Handler:  api.NewVoteHandler(store, directory, cfg.PublicURL),
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      routerResult.Router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Starting server on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	log.Println("Stopping rate limiters...")
	routerResult.RateLimiters.Stop()

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Closing database connection...")
	database.Close()

	log.Println("Server exited")
}
