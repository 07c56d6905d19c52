package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"encuestas/internal/domain"
	"encuestas/internal/repository"
)

// ResponseService orquesta el ciclo de una entrega: validar, derivar
// puntajes y banderas, y pedir la persistencia al store inyectado.
type ResponseService struct {
	logger     *zap.Logger
	surveys    repository.SurveyRepository
	responses  repository.ResponseRepository
	validator  AnswerValidator
	scoring    ScoringEngine
	risk       *RiskDetector
	aggregator *AnalyticsAggregator
	now        func() time.Time
}

func NewResponseService(
	logger *zap.Logger,
	surveys repository.SurveyRepository,
	responses repository.ResponseRepository,
	risk *RiskDetector,
) *ResponseService {
	return &ResponseService{
		logger:     logger,
		surveys:    surveys,
		responses:  responses,
		risk:       risk,
		aggregator: NewAnalyticsAggregator(risk),
		now:        time.Now,
	}
}

// Submit procesa una entrega completa. El registro pasa por dos estados:
// draft mientras está validado solo en memoria, y submitted recién cuando el
// store confirmó el insert. Si el insert falla no se considera persistido
// nada, puntajes y banderas incluidos; el error del store se propaga tal
// cual, sin reintentos.
func (s *ResponseService) Submit(ctx context.Context, userID, surveyID string, answers domain.AnswerSet, startTime time.Time) (*domain.ResponseRecord, error) {
	survey, err := s.surveys.GetByID(ctx, surveyID)
	if err != nil {
		if errors.Is(err, domain.ErrSurveyNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("get survey %s: %w", surveyID, err)
	}

	if violations := s.validator.Validate(survey, answers); len(violations) > 0 {
		return nil, &domain.ValidationError{Violations: violations}
	}

	completion := s.now().UTC()
	duration := completion.Sub(startTime).Minutes()
	if duration < 0 {
		duration = 0
	}

	record := &domain.ResponseRecord{
		ID:              uuid.NewString(),
		UserID:          userID,
		SurveyID:        surveyID,
		Answers:         answers,
		CompletionTime:  completion,
		DurationMinutes: math.Round(duration*100) / 100,
		CategoryScores:  s.scoring.ComputeCategoryScores(survey, answers),
		RiskFlags:       s.risk.Detect(survey, answers),
		Status:          domain.ResponseDraft,
	}

	if err := s.responses.Insert(ctx, *record); err != nil {
		s.logger.Error("insert response failed",
			zap.Error(err),
			zap.String("survey_id", surveyID),
			zap.String("user_id", userID),
		)
		return nil, fmt.Errorf("insert response: %w", err)
	}
	record.Status = domain.ResponseSubmitted

	s.logger.Info("response submitted",
		zap.String("response_id", record.ID),
		zap.String("survey_id", surveyID),
		zap.Int("risk_flags", len(record.RiskFlags)),
	)
	return record, nil
}

// ValidateAnswers valida sin persistir. Devuelve la lista completa de
// violaciones; vacía significa que la entrega sería aceptada.
func (s *ResponseService) ValidateAnswers(ctx context.Context, surveyID string, answers domain.AnswerSet) ([]domain.Violation, error) {
	survey, err := s.surveys.GetByID(ctx, surveyID)
	if err != nil {
		if errors.Is(err, domain.ErrSurveyNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("get survey %s: %w", surveyID, err)
	}
	return s.validator.Validate(survey, answers), nil
}

// AnalyzeSurvey lee el conjunto de respuestas a través del store y arma el
// reporte agregado. La lectura es un snapshot: entregas que terminan después
// aparecen en la próxima corrida.
func (s *ResponseService) AnalyzeSurvey(ctx context.Context, surveyID string) (*Report, error) {
	survey, err := s.surveys.GetByID(ctx, surveyID)
	if err != nil {
		if errors.Is(err, domain.ErrSurveyNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("get survey %s: %w", surveyID, err)
	}

	records, err := s.responses.ListBySurvey(ctx, surveyID)
	if err != nil {
		return nil, fmt.Errorf("list responses for survey %s: %w", surveyID, err)
	}

	report := s.aggregator.BuildReport(survey, records)
	return &report, nil
}

// UserResponses lista el historial de entregas de un usuario.
func (s *ResponseService) UserResponses(ctx context.Context, userID string) ([]domain.ResponseRecord, error) {
	records, err := s.responses.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list responses for user %s: %w", userID, err)
	}
	return records, nil
}
