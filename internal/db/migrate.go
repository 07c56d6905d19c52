package db

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Esquema mínimo del motor: definiciones de encuesta y registros de
// respuesta. Las preguntas, respuestas y derivados viajan como JSONB.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS surveys (
		survey_id          TEXT PRIMARY KEY,
		title              TEXT NOT NULL,
		description        TEXT NOT NULL DEFAULT '',
		questions          JSONB NOT NULL,
		is_active          BOOLEAN NOT NULL DEFAULT TRUE,
		estimated_duration INTEGER NOT NULL DEFAULT 10,
		created_at         TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS survey_responses (
		response_id      TEXT PRIMARY KEY,
		user_id          TEXT NOT NULL,
		survey_id        TEXT NOT NULL REFERENCES surveys (survey_id),
		answers          JSONB NOT NULL,
		completion_time  TIMESTAMPTZ NOT NULL,
		duration_minutes DOUBLE PRECISION NOT NULL CHECK (duration_minutes >= 0),
		category_scores  JSONB NOT NULL DEFAULT 'null',
		risk_flags       JSONB NOT NULL DEFAULT 'null'
	)`,
	`CREATE INDEX IF NOT EXISTS idx_survey_responses_survey ON survey_responses (survey_id, completion_time)`,
	`CREATE INDEX IF NOT EXISTS idx_survey_responses_user ON survey_responses (user_id, completion_time)`,
}

// Migrate aplica el esquema de forma idempotente.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range migrations {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
