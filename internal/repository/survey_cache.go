package repository

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"encuestas/internal/domain"
)

const surveyCacheKeyPrefix = "survey:def:"

// CachedSurveyRepository decora un SurveyRepository con una cache de lectura
// en Redis. Las definiciones son inmutables una vez creadas, así que una
// entrada cacheada nunca queda obsoleta; el TTL solo acota memoria. Cualquier
// falla de Redis degrada a leer del repositorio interno.
type CachedSurveyRepository struct {
	inner  SurveyRepository
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

func NewCachedSurveyRepository(inner SurveyRepository, client *redis.Client, ttl time.Duration, logger *zap.Logger) *CachedSurveyRepository {
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	return &CachedSurveyRepository{inner: inner, client: client, ttl: ttl, logger: logger}
}

func (r *CachedSurveyRepository) GetByID(ctx context.Context, id string) (*domain.Survey, error) {
	key := surveyCacheKeyPrefix + id

	if data, err := r.client.Get(ctx, key).Bytes(); err == nil {
		var survey domain.Survey
		if err := json.Unmarshal(data, &survey); err == nil {
			return &survey, nil
		}
		// Entrada corrupta: se descarta y se relee del repositorio interno.
		r.client.Del(ctx, key)
	}

	survey, err := r.inner.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(survey); err == nil {
		if err := r.client.Set(ctx, key, data, r.ttl).Err(); err != nil && r.logger != nil {
			r.logger.Warn("survey cache set failed", zap.Error(err), zap.String("survey_id", id))
		}
	}
	return survey, nil
}

func (r *CachedSurveyRepository) ListActive(ctx context.Context) ([]domain.Survey, error) {
	return r.inner.ListActive(ctx)
}

func (r *CachedSurveyRepository) Insert(ctx context.Context, survey domain.Survey) error {
	if err := r.inner.Insert(ctx, survey); err != nil {
		return err
	}
	r.client.Del(ctx, surveyCacheKeyPrefix+survey.ID)
	return nil
}

func (r *CachedSurveyRepository) Count(ctx context.Context) (int, error) {
	return r.inner.Count(ctx)
}
