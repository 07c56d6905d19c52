package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"encuestas/internal/domain"
)

// ResponseRepository persiste y recupera registros de respuesta. Insert es
// una única sentencia: o el registro queda completo o no queda nada.
type ResponseRepository interface {
	Insert(ctx context.Context, record domain.ResponseRecord) error
	ListBySurvey(ctx context.Context, surveyID string) ([]domain.ResponseRecord, error)
	ListByUser(ctx context.Context, userID string) ([]domain.ResponseRecord, error)
}

type PgResponseRepository struct {
	pool *pgxpool.Pool
}

func NewPgResponseRepository(pool *pgxpool.Pool) *PgResponseRepository {
	return &PgResponseRepository{pool: pool}
}

func (r *PgResponseRepository) Insert(ctx context.Context, record domain.ResponseRecord) error {
	const query = `
		INSERT INTO survey_responses
			(response_id, user_id, survey_id, answers, completion_time, duration_minutes, category_scores, risk_flags)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	answersJSON, err := json.Marshal(record.Answers)
	if err != nil {
		return fmt.Errorf("encode answers: %w", err)
	}
	scoresJSON, err := json.Marshal(record.CategoryScores)
	if err != nil {
		return fmt.Errorf("encode category scores: %w", err)
	}
	flagsJSON, err := json.Marshal(record.RiskFlags)
	if err != nil {
		return fmt.Errorf("encode risk flags: %w", err)
	}

	_, err = r.pool.Exec(ctx, query,
		record.ID,
		record.UserID,
		record.SurveyID,
		answersJSON,
		record.CompletionTime,
		record.DurationMinutes,
		scoresJSON,
		flagsJSON,
	)
	return err
}

func (r *PgResponseRepository) ListBySurvey(ctx context.Context, surveyID string) ([]domain.ResponseRecord, error) {
	const query = `
		SELECT response_id, user_id, survey_id, answers, completion_time, duration_minutes, category_scores, risk_flags
		FROM survey_responses
		WHERE survey_id = $1
		ORDER BY completion_time, response_id
	`
	return r.list(ctx, query, surveyID)
}

func (r *PgResponseRepository) ListByUser(ctx context.Context, userID string) ([]domain.ResponseRecord, error) {
	const query = `
		SELECT response_id, user_id, survey_id, answers, completion_time, duration_minutes, category_scores, risk_flags
		FROM survey_responses
		WHERE user_id = $1
		ORDER BY completion_time, response_id
	`
	return r.list(ctx, query, userID)
}

func (r *PgResponseRepository) list(ctx context.Context, query string, arg any) ([]domain.ResponseRecord, error) {
	rows, err := r.pool.Query(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []domain.ResponseRecord
	for rows.Next() {
		var (
			record      domain.ResponseRecord
			answersJSON []byte
			scoresJSON  []byte
			flagsJSON   []byte
		)
		if err := rows.Scan(
			&record.ID,
			&record.UserID,
			&record.SurveyID,
			&answersJSON,
			&record.CompletionTime,
			&record.DurationMinutes,
			&scoresJSON,
			&flagsJSON,
		); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(answersJSON, &record.Answers); err != nil {
			return nil, fmt.Errorf("decode answers for response %s: %w", record.ID, err)
		}
		if err := json.Unmarshal(scoresJSON, &record.CategoryScores); err != nil {
			return nil, fmt.Errorf("decode category scores for response %s: %w", record.ID, err)
		}
		if err := json.Unmarshal(flagsJSON, &record.RiskFlags); err != nil {
			return nil, fmt.Errorf("decode risk flags for response %s: %w", record.ID, err)
		}
		// Todo lo que vive en la tabla ya pasó por el insert confirmado.
		record.Status = domain.ResponseSubmitted
		records = append(records, record)
	}
	return records, rows.Err()
}
