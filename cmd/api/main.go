package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"yoga-studio/internal/config"
	"yoga-studio/internal/db"
	apihttp "yoga-studio/internal/http"
	"yoga-studio/internal/repository"
	"yoga-studio/internal/service"
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

	if err := db.Migrate(cfg.DatabaseURL); err != nil {
		logger.Fatal("db migrate", zap.Error(err))
	}

	pool, err := db.NewPool(ctx, cfg)
	if err != nil {
		logger.Fatal("db connect", zap.Error(err))
	}
	defer pool.Close()

	userRepo := repository.NewPgUserRepository(pool)
	teacherRepo := repository.NewPgTeacherRepository(pool)
	sessionRepo := repository.NewPgSessionRepository(pool)

	var (
		loginLimiter service.LoginRateLimiter
		teacherCache *service.TeacherCache
	)
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
			loginLimiter = service.NewRedisLoginRateLimiter(redisClient, 10*time.Minute, 10)
			teacherCache = service.NewTeacherCache(redisClient, 5*time.Minute)
		}
		cancel()
	}

	jwtSvc := service.NewJWTService(cfg.JWTSecret, time.Duration(cfg.JWTTTLMinutes)*time.Minute)
	userSvc := service.NewUserService(logger, userRepo, loginLimiter)
	sessionSvc := service.NewSessionService(logger, sessionRepo, teacherRepo, userRepo)

	authHandler := apihttp.NewAuthHandler(logger, userSvc, jwtSvc)
	sessionHandler := apihttp.NewSessionHandler(logger, sessionSvc)
	userHandler := apihttp.NewUserHandler(logger, userSvc)
	teacherHandler := apihttp.NewTeacherHandler(logger, teacherRepo, teacherCache)
	router := apihttp.NewRouter(logger, jwtSvc, authHandler, sessionHandler, userHandler, teacherHandler, pool)

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
