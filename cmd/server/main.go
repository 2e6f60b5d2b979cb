package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/invayl-academya/Ai-chatbot/internal/config"
	"github.com/invayl-academya/Ai-chatbot/internal/database"
	"github.com/invayl-academya/Ai-chatbot/internal/handlers"
	"github.com/invayl-academya/Ai-chatbot/internal/middleware"
	"github.com/invayl-academya/Ai-chatbot/internal/repository"
	"github.com/invayl-academya/Ai-chatbot/internal/router"
	"github.com/invayl-academya/Ai-chatbot/internal/services"
)

func main() {
	log.Println("🚀 Starting Invayl Chatbot Backend...")

	// ──── Step 1: Load Environment Variables ────
	cfg := config.Load()
	log.Println("✓ Environment variables loaded")

	// ──── Step 2: Initialize PostgreSQL Connection Pool ────
	pool, err := database.NewPostgresPool(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("✗ PostgreSQL connection failed: %v", err)
	}
	defer pool.Close()
	log.Println("✓ PostgreSQL connected")

	// ──── Step 3: Initialize Redis Client ────
	redisClient, err := database.NewRedisClient(cfg.RedisURL)
	if err != nil {
		log.Fatalf("✗ Redis connection failed: %v", err)
	}
	defer redisClient.Close()
	log.Println("✓ Redis connected")

	// ──── Step 4: Run Database Migrations ────
	if err := database.RunMigrations(pool, "migrations"); err != nil {
		log.Fatalf("✗ Database migration failed: %v", err)
	}
	log.Println("✓ Database migrations applied")

	// ──── Initialize Repositories ────
	userRepo := repository.NewUserRepo(pool)
	messageRepo := repository.NewMessageRepo(pool)

	// ──── Initialize Services ────
	jwtAuth := middleware.NewJWTAuth(cfg.JWTSecret, cfg.TokenExpireMinutes, userRepo)
	openaiService := services.NewOpenAIService(cfg.OpenAIAPIKey, cfg.OpenAIModel)
	authService := services.NewAuthService(userRepo, jwtAuth)
	chatService := services.NewChatService(messageRepo, openaiService)
	log.Printf("✓ OpenAI client initialized (model: %s)", cfg.OpenAIModel)

	// ──── Initialize Handlers ────
	authHandler := handlers.NewAuthHandler(authService)
	chatHandler := handlers.NewChatHandler(chatService)

	// ──── Step 5: Start HTTP Server ────
	r := router.New(jwtAuth, authHandler, chatHandler, redisClient, cfg.FrontendURL)

	server := &http.Server{
		Addr:        fmt.Sprintf(":%s", cfg.Port),
		Handler:     r,
		ReadTimeout: 15 * time.Second,
		// model calls can take a while; keep the write window generous
		WriteTimeout: 2 * time.Minute,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Println("Shutting down...")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		server.Shutdown(ctx)
	}()

	log.Printf("✓ Invayl Chatbot Backend ready on http://localhost:%s", cfg.Port)

	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatalf("Server error: %v", err)
	}
}
