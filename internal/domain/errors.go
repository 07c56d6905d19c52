package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrSurveyNotFound indica que la encuesta referida no existe en el catálogo.
var ErrSurveyNotFound = errors.New("survey not found")

// Violation describe el incumplimiento de una pregunta concreta.
type Violation struct {
	QuestionID string `json:"question_id"`
	Reason     string `json:"reason"`
}

// ValidationError transporta la lista completa de violaciones de una
// entrega, nunca solo la primera, para que el llamador las reporte juntas.
type ValidationError struct {
	Violations []Violation
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, fmt.Sprintf("%s: %s", v.QuestionID, v.Reason))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}
