package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"meal-planner/internal/app"
	"meal-planner/internal/config"
	"meal-planner/internal/telegram"
	"meal-planner/internal/web"
)

func main() {
	// 1. Load Configuration
	cfg, err := config.NewFromEnv()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Open storage, metrics and the planner
	rt, err := app.Open(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize app: %v", err)
	}
	defer rt.Close()

	opts := web.Options{TokenSecret: cfg.APITokenSecret}
	if cfg.APITokenSecret == "" {
		log.Println("Warning: API_TOKEN_SECRET not set, mutating API routes are unauthenticated")
	}

	// 3. Initialize Telegram Bot (optional)
	if cfg.TelegramBotToken != "" {
		bot, err := telegram.NewBot(cfg, rt.App, rt.Metrics)
		if err != nil {
			log.Fatalf("Failed to initialize Telegram Bot: %v", err)
		}
		opts.Webhook = bot.WebhookHandler()
	}

	// 4. Start Server with Graceful Shutdown
	server, err := web.New(rt.App, opts)
	if err != nil {
		log.Fatalf("Failed to initialize web server: %v", err)
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           server.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("Meal planner server listening on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctxShutdown); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting")
}
