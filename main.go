package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/avelaro/bookstore-be/internal/api"
	"github.com/avelaro/bookstore-be/internal/auth"
	"github.com/avelaro/bookstore-be/internal/config"
	"github.com/avelaro/bookstore-be/internal/logger"
	"github.com/avelaro/bookstore-be/internal/services"
	"github.com/avelaro/bookstore-be/internal/store"
)

func main() {
	logger.Init()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Set up the record stores
	var userStore store.UserStore
	var bookStore store.BookStore
	switch cfg.Storage {
	case "sqlite":
		db, err := store.OpenSQLite(cfg.DatabasePath)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize database")
		}
		defer db.Close()
		userStore = store.NewSQLiteUserStore(db)
		bookStore = store.NewSQLiteBookStore(db)
	default:
		if err := os.MkdirAll(cfg.DataDir, 0755); err != nil {
			log.Fatal().Err(err).Msg("Failed to create data directory")
		}
		userStore = store.NewJSONUserStore(cfg.DataDir)
		bookStore = store.NewJSONBookStore(cfg.DataDir)
	}

	// Set up services
	authenticator := auth.NewAuthenticator(cfg.JWTSecret)
	userService := services.NewUserService(userStore)
	bookService := services.NewBookService(bookStore)

	// Set up router
	router := api.NewRouter(authenticator, userService, bookService)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.ServerPort),
		Handler: router,
	}

	// Graceful shutdown
	go func() {
		log.Info().Int("port", cfg.ServerPort).Msg("Server starting")
		if err := srv.ListenAndServe(); err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("ListenAndServe()")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exiting")
}
