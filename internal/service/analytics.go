package service

import (
	"time"

	"encuestas/internal/domain"
)

// Report es el resumen agregado del conjunto de respuestas de una encuesta.
type Report struct {
	SurveyID               string                          `json:"survey_id"`
	SurveyTitle            string                          `json:"survey_title"`
	TotalResponses         int                             `json:"total_responses"`
	AverageDurationMinutes float64                         `json:"average_duration_minutes"`
	CategoryScores         map[string]domain.CategoryStats `json:"category_scores"`
	FlaggedResponses       []FlaggedResponse               `json:"flagged_responses"`
}

// FlaggedResponse identifica una entrega que requiere revisión humana.
type FlaggedResponse struct {
	ResponseID     string            `json:"response_id"`
	UserID         string            `json:"user_id"`
	CompletionTime time.Time         `json:"completion_time"`
	Flags          []domain.RiskFlag `json:"flags"`
}

// AnalyticsAggregator produce reportes recomputando puntajes y banderas
// desde las respuestas almacenadas. No guarda estado entre llamadas: es una
// función pura de la lista de registros, así que recorrer dos veces el mismo
// conjunto da reportes idénticos. Cuando llegan respuestas nuevas se vuelve
// a correr sobre el conjunto actualizado, pasada completa.
type AnalyticsAggregator struct {
	scoring ScoringEngine
	risk    *RiskDetector
}

func NewAnalyticsAggregator(risk *RiskDetector) *AnalyticsAggregator {
	return &AnalyticsAggregator{risk: risk}
}

// BuildReport agrega conteo, duración media, distribución de puntajes por
// categoría y entregas con banderas. Una encuesta sin respuestas produce un
// reporte vacío bien formado, no un error.
func (a *AnalyticsAggregator) BuildReport(survey *domain.Survey, records []domain.ResponseRecord) Report {
	report := Report{
		SurveyID:         survey.ID,
		SurveyTitle:      survey.Title,
		TotalResponses:   len(records),
		CategoryScores:   make(map[string]domain.CategoryStats),
		FlaggedResponses: []FlaggedResponse{},
	}
	if len(records) == 0 {
		return report
	}

	var totalDuration float64
	samples := make(map[string][]float64)

	for _, record := range records {
		totalDuration += record.DurationMinutes

		scores := a.scoring.ComputeCategoryScores(survey, record.Answers)
		for category, score := range scores {
			samples[category] = append(samples[category], score)
		}

		if flags := a.risk.Detect(survey, record.Answers); len(flags) > 0 {
			report.FlaggedResponses = append(report.FlaggedResponses, FlaggedResponse{
				ResponseID:     record.ID,
				UserID:         record.UserID,
				CompletionTime: record.CompletionTime,
				Flags:          flags,
			})
		}
	}

	report.AverageDurationMinutes = totalDuration / float64(len(records))

	for category, values := range samples {
		stats := domain.CategoryStats{Min: values[0], Max: values[0], Count: len(values)}
		var sum float64
		for _, v := range values {
			sum += v
			if v < stats.Min {
				stats.Min = v
			}
			if v > stats.Max {
				stats.Max = v
			}
		}
		stats.Average = sum / float64(len(values))
		report.CategoryScores[category] = stats
	}

	return report
}
