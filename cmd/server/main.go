package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"discuss/internal/config"
	"discuss/internal/db"
	"discuss/internal/handlers"
	"discuss/internal/repository"
	"discuss/internal/router"
	"discuss/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}
	if cfg.UsingDefaultSecret() {
		log.Println("SESSION_SECRET not set, using the built-in development key")
	}

	// Initialize Database
	database, err := db.Open(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	redisClient := connectRedis(cfg.RedisURL)

	repos := repository.New(database)

	userService := services.NewUserService(repos.Users)
	authService := services.NewAuthService(repos.Users)
	postService := services.NewPostService(repos.Posts, repos.Users)
	likeService := services.NewLikeService(repos.Likes, repos.Posts, repos.Users)
	commentService := services.NewCommentService(repos.Comments, repos.Posts, repos.Users)

	paging := handlers.Paging{DefaultLimit: cfg.DefaultPageLimit, MaxLimit: cfg.MaxPageLimit}
	r := router.New(cfg, router.Handlers{
		Auth:     handlers.NewAuthHandler(authService, userService),
		Users:    handlers.NewUserHandler(userService, paging),
		Posts:    handlers.NewPostHandler(postService, paging),
		Likes:    handlers.NewLikeHandler(likeService, paging),
		Comments: handlers.NewCommentHandler(commentService, paging),
	}, redisClient)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		log.Printf("Server starting on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	if err := db.Close(database); err != nil {
		log.Printf("Error closing database: %v", err)
	}
	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Printf("Error closing Redis: %v", err)
		}
	}

	log.Println("Server exited")
}

// connectRedis returns nil when url is empty or unreachable; rate limiting is
// then disabled.
func connectRedis(url string) *redis.Client {
	if url == "" {
		log.Println("REDIS_URL not set, rate limiting disabled")
		return nil
	}

	opts, err := redis.ParseURL(url)
	if err != nil {
		log.Printf("Invalid REDIS_URL, rate limiting disabled: %v", err)
		return nil
	}
	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("Redis unreachable, rate limiting disabled: %v", err)
		_ = client.Close()
		return nil
	}
	return client
}
