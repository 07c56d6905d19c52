package domain

import "time"

// Estados del ciclo de vida de un ResponseRecord. La única transición es
// draft -> submitted y ocurre recién cuando el store confirmó el insert.
const (
	ResponseDraft     = "draft"
	ResponseSubmitted = "submitted"
)

// Severidades de una bandera de riesgo.
const (
	SeverityHigh   = "high"
	SeverityMedium = "medium"
	SeverityLow    = "low"
)

// Etiquetas de riesgo que las encuestas asignan a preguntas sensibles.
const (
	RiskTagSelfHarm     = "self_harm"
	RiskTagHopelessness = "hopelessness"
	RiskTagIsolation    = "isolation"
)

// ResponseRecord es el resultado inmutable de una entrega: respuestas más
// los puntajes y banderas derivados al momento de aceptarla. Nunca se muta
// después de creado; una corrección requiere un registro nuevo.
type ResponseRecord struct {
	ID              string             `json:"response_id"`
	UserID          string             `json:"user_id"`
	SurveyID        string             `json:"survey_id"`
	Answers         AnswerSet          `json:"answers"`
	CompletionTime  time.Time          `json:"completion_time"`
	DurationMinutes float64            `json:"duration_minutes"`
	CategoryScores  map[string]float64 `json:"category_scores,omitempty"`
	RiskFlags       []RiskFlag         `json:"risk_flags,omitempty"`
	Status          string             `json:"status"`
}

// RiskFlag marca que una regla heurística disparó sobre una respuesta.
type RiskFlag struct {
	RuleID     string `json:"rule_id"`
	QuestionID string `json:"question_id"`
	Severity   string `json:"severity,omitempty"`
}

// CategoryStats resume la distribución de puntajes normalizados (0-100)
// de una categoría a través de un conjunto de respuestas.
type CategoryStats struct {
	Average float64 `json:"average"`
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	Count   int     `json:"count"`
}
