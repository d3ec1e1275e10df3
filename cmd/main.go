// cmd/main.go
package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/lmittmann/tint"
	"github.com/rs/cors"

	"sentencebase/internal/config"
	"sentencebase/internal/handlers"
	"sentencebase/internal/middleware"
	"sentencebase/internal/repository"
	"sentencebase/internal/service"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

func main() {
	//　設定ファイル読み込み用の一時的なロガー設定
	tempLogger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(tempLogger)
	log.Println("Log Config Loading...")

	// Configを読み込み
	if err := config.LoadConfig("./configs"); err != nil {
		slog.Error("Error loading configuration", slog.Any("error", err))
		os.Exit(1)
	}

	// === 設定に基づいて slog ロガーを初期化 ===
	logLevel := new(slog.LevelVar)
	switch strings.ToLower(config.Cfg.Log.Level) {
	case "debug":
		logLevel.Set(slog.LevelDebug)
	case "info":
		logLevel.Set(slog.LevelInfo)
	case "warn", "warning":
		logLevel.Set(slog.LevelWarn)
	case "error":
		logLevel.Set(slog.LevelError)
	default:
		logLevel.Set(slog.LevelInfo)
		slog.Warn("Unknown log level specified in config, defaulting to INFO", slog.String("level", config.Cfg.Log.Level))
	}

	var handler slog.Handler
	appEnv := os.Getenv("APP_ENV")
	if strings.ToLower(appEnv) == "dev" {
		tintOpts := &tint.Options{
			Level:      logLevel,
			TimeFormat: time.RFC3339,
		}
		handler = tint.NewHandler(os.Stderr, tintOpts)
		tempLogger.Info("Using TINT log handler", slog.String("APP_ENV", appEnv))
	} else {
		jsonOpts := &slog.HandlerOptions{
			Level:     logLevel,
			AddSource: true,
		}
		handler = slog.NewJSONHandler(os.Stderr, jsonOpts)
		tempLogger.Info("Using JSON log handler", slog.String("APP_ENV", appEnv))
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)

	slog.Info("Application starting...", slog.String("app", config.AppName))

	// 2. Firestoreクライアントの初期化
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	client, err := repository.NewClient(ctx, config.Cfg.Firestore.ProjectID, config.Cfg.Firestore.CredentialsFile, logger)
	if err != nil {
		slog.Error("Error initializing Firestore client", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := client.Close(); err != nil {
			slog.Error("Error closing Firestore client", slog.Any("error", err))
		} else {
			slog.Info("Firestore client closed.")
		}
	}()

	// 3. Dependency Injection
	runner := repository.NewTxRunner(client)
	wordRepo := repository.NewFirestoreWordRepository(client)
	sentenceRepo := repository.NewFirestoreSentenceRepository(client)
	batchRepo := repository.NewFirestoreBatchRepository(client)
	userRepo := repository.NewFirestoreUserRepository(client)
	metaRepo := repository.NewFirestoreMetaRepository(client)
	eventRepo := repository.NewFirestoreEventRepository(client)

	sentenceService := service.NewSentenceService(runner, wordRepo, sentenceRepo, userRepo, &config.Cfg)
	batchService := service.NewBatchService(runner, wordRepo, sentenceRepo, batchRepo, userRepo)
	counterService := service.NewCounterService(runner, userRepo, metaRepo, eventRepo, &config.Cfg)
	userService := service.NewUserService(runner, userRepo)

	sentenceHandler := handlers.NewSentenceHandler(sentenceService, logger)
	batchHandler := handlers.NewBatchHandler(batchService, &config.Cfg, logger)
	userHandler := handlers.NewUserHandler(userService, logger)
	eventHandler := handlers.NewEventHandler(counterService, logger)

	// 4. Setup Router
	r := chi.NewRouter()

	// Middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.LoggingMiddleware(logger))

	// CORS 設定と適用 (設定ファイルから読み込んだ値を使用)
	corsOptions := cors.Options{
		AllowedOrigins:   config.Cfg.CORS.AllowedOrigins,
		AllowedMethods:   config.Cfg.CORS.AllowedMethods,
		AllowedHeaders:   config.Cfg.CORS.AllowedHeaders,
		AllowCredentials: config.Cfg.CORS.AllowCredentials,
		MaxAge:           config.Cfg.CORS.MaxAge,
	}
	corsHandler := cors.New(corsOptions)
	r.Use(corsHandler.Handler)

	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	// API Routes
	r.Route("/api/v1", func(r chi.Router) {
		// --- Protected routes (require JWT) ---
		r.Group(func(r chi.Router) {
			r.Use(middleware.JWTAuthMiddleware(&config.Cfg))

			r.Route("/users", func(r chi.Router) {
				r.Post("/", userHandler.PostUser)
				r.Get("/me", userHandler.GetMe)
			})

			r.Route("/sentences", func(r chi.Router) {
				r.Get("/", sentenceHandler.GetSentences)
				r.Post("/", sentenceHandler.PostSentence)
				r.Post("/{sentenceId}", sentenceHandler.EditSentence)
				r.Delete("/{sentenceId}", sentenceHandler.DeleteSentence)
			})

			r.Route("/batches", func(r chi.Router) {
				r.Post("/", batchHandler.PostBatch)
				r.Post("/backlog", batchHandler.PostBacklogBatch)
			})
		})
	})

	// --- Internal routes (shared token) ---
	r.Route("/internal", func(r chi.Router) {
		r.Use(middleware.InternalTokenMiddleware(config.Cfg.Internal.EventToken))
		r.Post("/events", eventHandler.PostChangeEvent)
	})

	// Health Check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// 5. イベントID台帳の掃除ループを起動
	go counterService.RunEventIDCleanup(ctx, config.Cfg.App.EventIDCleanupInterval)

	// 6. Start Server
	server := &http.Server{
		Addr:         config.Cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		slog.Info("Server listening", slog.String("port", config.Cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Could not listen on port", slog.String("port", config.Cfg.Server.Port), slog.Any("error", err))
			os.Exit(1)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("Shutting down server...")

	// 掃除ループも止める
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server forced to shutdown", slog.Any("error", err))
	}

	log.Println("Server exiting")
}
