package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"encuestas/internal/domain"
)

// SurveyRepository es el contrato de lectura/alta de definiciones de encuesta
// que consume el motor. GetByID devuelve domain.ErrSurveyNotFound si no existe.
type SurveyRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Survey, error)
	ListActive(ctx context.Context) ([]domain.Survey, error)
	Insert(ctx context.Context, survey domain.Survey) error
	Count(ctx context.Context) (int, error)
}

type PgSurveyRepository struct {
	pool *pgxpool.Pool
}

func NewPgSurveyRepository(pool *pgxpool.Pool) *PgSurveyRepository {
	return &PgSurveyRepository{pool: pool}
}

func (r *PgSurveyRepository) GetByID(ctx context.Context, id string) (*domain.Survey, error) {
	const query = `
		SELECT survey_id, title, description, questions, is_active, estimated_duration, created_at
		FROM surveys
		WHERE survey_id = $1
	`

	var (
		survey        domain.Survey
		questionsJSON []byte
	)
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&survey.ID,
		&survey.Title,
		&survey.Description,
		&questionsJSON,
		&survey.IsActive,
		&survey.EstimatedDuration,
		&survey.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrSurveyNotFound
	}
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(questionsJSON, &survey.Questions); err != nil {
		return nil, fmt.Errorf("decode questions for survey %s: %w", id, err)
	}
	return &survey, nil
}

func (r *PgSurveyRepository) ListActive(ctx context.Context) ([]domain.Survey, error) {
	const query = `
		SELECT survey_id, title, description, questions, is_active, estimated_duration, created_at
		FROM surveys
		WHERE is_active
		ORDER BY created_at, survey_id
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var surveys []domain.Survey
	for rows.Next() {
		var (
			survey        domain.Survey
			questionsJSON []byte
		)
		if err := rows.Scan(
			&survey.ID,
			&survey.Title,
			&survey.Description,
			&questionsJSON,
			&survey.IsActive,
			&survey.EstimatedDuration,
			&survey.CreatedAt,
		); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(questionsJSON, &survey.Questions); err != nil {
			return nil, fmt.Errorf("decode questions for survey %s: %w", survey.ID, err)
		}
		surveys = append(surveys, survey)
	}
	return surveys, rows.Err()
}

func (r *PgSurveyRepository) Insert(ctx context.Context, survey domain.Survey) error {
	const query = `
		INSERT INTO surveys (survey_id, title, description, questions, is_active, estimated_duration, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	questionsJSON, err := json.Marshal(survey.Questions)
	if err != nil {
		return fmt.Errorf("encode questions: %w", err)
	}

	_, err = r.pool.Exec(ctx, query,
		survey.ID,
		survey.Title,
		survey.Description,
		questionsJSON,
		survey.IsActive,
		survey.EstimatedDuration,
		survey.CreatedAt,
	)
	return err
}

func (r *PgSurveyRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM surveys`).Scan(&count)
	return count, err
}
