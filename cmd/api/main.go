package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"fitpulse/internal/config"
	"fitpulse/internal/db"
	apihttp "fitpulse/internal/http"
	"fitpulse/internal/repository"
	"fitpulse/internal/service"
	"fitpulse/internal/storage"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	ctx := context.Background()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: loading .env: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	if err := db.RunMigrations(ctx, cfg); err != nil {
		logger.Fatal("db migrate", zap.Error(err))
	}

	pool, err := db.NewPool(ctx, cfg)
	if err != nil {
		logger.Fatal("db connect", zap.Error(err))
	}
	defer pool.Close()

	userRepo := repository.NewPgUserRepository(pool)
	workoutRepo := repository.NewPgWorkoutRepository(pool)

	objectStore, err := storage.NewS3Client(ctx, cfg)
	if err != nil {
		logger.Fatal("object store init", zap.Error(err))
	}

	var userLocker service.UserLocker
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		ctxPing, cancel := context.WithTimeout(ctx, 2*time.Second)
		if err := redisClient.Ping(ctxPing).Err(); err != nil {
			logger.Warn("redis ping failed", zap.Error(err))
		} else {
			userLocker = service.NewRedisUserLocker(redisClient, 30*time.Second)
		}
		cancel()
	}
	if userLocker == nil {
		userLocker = service.NewMemoryUserLocker()
	}

	jwtSvc := service.NewJWTService(cfg.JWTSecret, time.Duration(cfg.JWTTTLHours)*time.Hour)
	userSvc := service.NewUserService(logger, userRepo, jwtSvc)
	favSvc := service.NewFavoritesService(logger, userRepo, workoutRepo)
	mediaSvc := service.NewMediaService(logger, userRepo, objectStore, userLocker)

	userHandler := apihttp.NewUserHandler(logger, userSvc)
	workoutHandler := apihttp.NewWorkoutHandler(logger, favSvc)
	mediaHandler := apihttp.NewMediaHandler(logger, mediaSvc)
	router := apihttp.NewRouter(logger, jwtSvc, userHandler, workoutHandler, mediaHandler)

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info("starting server", zap.String("port", cfg.HTTPPort))

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server error", zap.Error(err))
	}
}
