package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"encuestas/internal/config"
	"encuestas/internal/db"
	apihttp "encuestas/internal/http"
	"encuestas/internal/repository"
	"encuestas/internal/service"

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

	pool, err := db.NewPool(ctx, cfg)
	if err != nil {
		logger.Fatal("db connect", zap.Error(err))
	}
	defer pool.Close()

	if err := db.Ping(ctx, pool); err != nil {
		logger.Fatal("db ping", zap.Error(err))
	}

	if err := db.Migrate(ctx, pool); err != nil {
		logger.Fatal("db migrate", zap.Error(err))
	}

	var surveyRepo repository.SurveyRepository = repository.NewPgSurveyRepository(pool)
	responseRepo := repository.NewPgResponseRepository(pool)

	if cfg.SeedDefaultSurveys {
		if err := seedDefaultSurveys(ctx, surveyRepo); err != nil {
			logger.Fatal("seed default surveys", zap.Error(err))
		}
	}

	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		ctxPing, cancel := context.WithTimeout(ctx, 2*time.Second)
		if err := redisClient.Ping(ctxPing).Err(); err != nil {
			logger.Warn("redis ping failed, survey cache disabled", zap.Error(err))
		} else {
			ttl := time.Duration(cfg.SurveyCacheTTLMinutes) * time.Minute
			surveyRepo = repository.NewCachedSurveyRepository(surveyRepo, redisClient, ttl, logger)
		}
		cancel()
	}

	riskDetector := service.NewRiskDetector(service.DefaultRiskRules())
	responseSvc := service.NewResponseService(logger, surveyRepo, responseRepo, riskDetector)

	surveyHandler := apihttp.NewSurveyHandler(logger, surveyRepo)
	responseHandler := apihttp.NewResponseHandler(logger, responseSvc)
	analyticsHandler := apihttp.NewAnalyticsHandler(logger, responseSvc)
	router := apihttp.NewRouter(logger, surveyHandler, responseHandler, analyticsHandler)

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

// seedDefaultSurveys inserta las encuestas base solo si el store está vacío,
// para no pisar definiciones administradas.
func seedDefaultSurveys(ctx context.Context, surveys repository.SurveyRepository) error {
	count, err := surveys.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	for _, survey := range service.DefaultSurveys(time.Now().UTC()) {
		if err := surveys.Insert(ctx, survey); err != nil {
			return err
		}
	}
	return nil
}
