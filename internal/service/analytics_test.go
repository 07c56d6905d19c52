package service

import (
	"fmt"
	"reflect"
	"testing"
	"time"

	"encuestas/internal/domain"
)

func analyticsSurvey() *domain.Survey {
	return &domain.Survey{
		ID:    "s1",
		Title: "Bienestar",
		Questions: []domain.Question{
			{ID: "mood", Type: domain.QuestionLikertScale, ScaleMin: 1, ScaleMax: 5, Category: "animo"},
			{ID: "isolation", Type: domain.QuestionLikertScale, ScaleMin: 1, ScaleMax: 5,
				Category: "aislamiento", RiskTag: domain.RiskTagIsolation},
		},
	}
}

func makeRecord(i int, mood, isolation int, duration float64) domain.ResponseRecord {
	return domain.ResponseRecord{
		ID:              fmt.Sprintf("r%d", i),
		UserID:          fmt.Sprintf("user_%03d", i),
		SurveyID:        "s1",
		CompletionTime:  time.Date(2024, 3, 1, 10, i, 0, 0, time.UTC),
		DurationMinutes: duration,
		Answers: domain.AnswerSet{
			"mood":      domain.IntAnswer(mood),
			"isolation": domain.IntAnswer(isolation),
		},
		Status: domain.ResponseSubmitted,
	}
}

func TestBuildReportAggregates(t *testing.T) {
	agg := NewAnalyticsAggregator(NewRiskDetector(DefaultRiskRules()))
	records := []domain.ResponseRecord{
		makeRecord(1, 1, 1, 4), // animo 0
		makeRecord(2, 3, 2, 6), // animo 50
		makeRecord(3, 5, 5, 8), // animo 100, aislamiento dispara
	}

	report := agg.BuildReport(analyticsSurvey(), records)

	if report.TotalResponses != 3 {
		t.Fatalf("expected 3 responses, got %d", report.TotalResponses)
	}
	if report.AverageDurationMinutes != 6 {
		t.Fatalf("expected average duration 6, got %v", report.AverageDurationMinutes)
	}

	animo := report.CategoryScores["animo"]
	if animo.Count != 3 || animo.Min != 0 || animo.Max != 100 || animo.Average != 50 {
		t.Fatalf("unexpected animo stats: %+v", animo)
	}

	if len(report.FlaggedResponses) != 1 {
		t.Fatalf("expected one flagged response, got %+v", report.FlaggedResponses)
	}
	flagged := report.FlaggedResponses[0]
	if flagged.ResponseID != "r3" || flagged.UserID != "user_003" {
		t.Fatalf("unexpected flagged response: %+v", flagged)
	}
	if flagged.CompletionTime.IsZero() {
		t.Fatalf("flagged response must carry its completion time")
	}
}

func TestBuildReportEmptyInput(t *testing.T) {
	agg := NewAnalyticsAggregator(NewRiskDetector(DefaultRiskRules()))
	report := agg.BuildReport(analyticsSurvey(), nil)

	if report.TotalResponses != 0 || report.AverageDurationMinutes != 0 {
		t.Fatalf("expected empty report, got %+v", report)
	}
	if report.CategoryScores == nil || len(report.CategoryScores) != 0 {
		t.Fatalf("expected empty (non-nil) category scores, got %+v", report.CategoryScores)
	}
	if report.FlaggedResponses == nil || len(report.FlaggedResponses) != 0 {
		t.Fatalf("expected empty (non-nil) flagged list, got %+v", report.FlaggedResponses)
	}
}

func TestBuildReportIdempotent(t *testing.T) {
	agg := NewAnalyticsAggregator(NewRiskDetector(DefaultRiskRules()))
	records := []domain.ResponseRecord{
		makeRecord(1, 2, 4, 5.5),
		makeRecord(2, 4, 1, 7.25),
	}

	first := agg.BuildReport(analyticsSurvey(), records)
	second := agg.BuildReport(analyticsSurvey(), records)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("reports over the same record set must be identical:\n%+v\n%+v", first, second)
	}
}

func TestBuildReportRecomputesScoresFromStoredAnswers(t *testing.T) {
	// Los puntajes derivados al momento de la entrega deben coincidir con los
	// recomputados después desde las mismas respuestas almacenadas.
	var e ScoringEngine
	survey := analyticsSurvey()
	record := makeRecord(1, 4, 2, 5)
	record.CategoryScores = e.ComputeCategoryScores(survey, record.Answers)

	recomputed := e.ComputeCategoryScores(survey, record.Answers)
	if !reflect.DeepEqual(record.CategoryScores, recomputed) {
		t.Fatalf("stored scores %+v differ from recomputed %+v", record.CategoryScores, recomputed)
	}

	agg := NewAnalyticsAggregator(NewRiskDetector(DefaultRiskRules()))
	report := agg.BuildReport(survey, []domain.ResponseRecord{record})
	if got := report.CategoryScores["animo"].Average; got != record.CategoryScores["animo"] {
		t.Fatalf("aggregate average %v differs from the record's own score %v", got, record.CategoryScores["animo"])
	}
}
