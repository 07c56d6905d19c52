package domain

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// QuestionType identifica el tipo de una pregunta. Los switch sobre este
// tipo en validación y scoring deben cubrir todos los casos declarados aquí.
type QuestionType string

const (
	QuestionLikertScale    QuestionType = "likert_scale" // escala configurable, tipicamente 1-5 o 1-7
	QuestionRatingScale    QuestionType = "rating_scale" // escala configurable, tipicamente 1-10
	QuestionMultipleChoice QuestionType = "multiple_choice"
	QuestionCheckbox       QuestionType = "checkbox"
	QuestionYesNo          QuestionType = "yes_no"
	QuestionOpenText       QuestionType = "open_text"
)

// OpenTextMaxLen limita el largo de respuestas de texto libre.
const OpenTextMaxLen = 1000

// Question es la definición inmutable de una pregunta dentro de una encuesta.
type Question struct {
	ID       string       `json:"question_id"`
	Text     string       `json:"text"`
	Type     QuestionType `json:"question_type"`
	Options  []string     `json:"options,omitempty"`
	ScaleMin int          `json:"scale_min,omitempty"`
	ScaleMax int          `json:"scale_max,omitempty"`
	Required bool         `json:"required"`
	Category string       `json:"category"`
	RiskTag  string       `json:"risk_tag,omitempty"`
}

// IsNumericScale indica si la pregunta aporta valores al scoring por categoría.
func (q Question) IsNumericScale() bool {
	return q.Type == QuestionLikertScale || q.Type == QuestionRatingScale
}

// ValidateAnswer aplica la regla del tipo de pregunta sobre un valor.
// Devuelve (false, motivo) cuando el valor no cumple. Una pregunta
// obligatoria sin respuesta es inválida sin importar el tipo; una opcional
// sin respuesta siempre es válida.
func (q Question) ValidateAnswer(answer AnswerValue) (bool, string) {
	if answer.IsEmpty() {
		if q.Required {
			return false, "Esta pregunta es obligatoria"
		}
		return true, ""
	}

	switch q.Type {
	case QuestionLikertScale:
		if answer.Kind != AnswerInt || answer.Int < q.ScaleMin || answer.Int > q.ScaleMax {
			return false, fmt.Sprintf("La respuesta debe ser un número entre %d y %d", q.ScaleMin, q.ScaleMax)
		}
	case QuestionRatingScale:
		if answer.Kind != AnswerInt || answer.Int < q.ScaleMin || answer.Int > q.ScaleMax {
			return false, fmt.Sprintf("La calificación debe ser entre %d y %d", q.ScaleMin, q.ScaleMax)
		}
	case QuestionMultipleChoice:
		if answer.Kind != AnswerString || !q.hasOption(answer.Str) {
			return false, "Debe seleccionar una opción válida"
		}
	case QuestionCheckbox:
		if answer.Kind != AnswerStringList || len(answer.List) == 0 {
			return false, "Debe seleccionar al menos una opción"
		}
		for _, item := range answer.List {
			if !q.hasOption(item) {
				return false, fmt.Sprintf("'%s' no es una opción válida", item)
			}
		}
	case QuestionYesNo:
		if !answer.IsAffirmative() && !answer.IsNegative() {
			return false, "Debe responder Sí o No"
		}
	case QuestionOpenText:
		if answer.Kind != AnswerString {
			return false, "La respuesta debe ser texto"
		}
		// El límite es en caracteres, no en bytes: el texto acentuado no
		// debe descontar del máximo.
		if utf8.RuneCountInString(strings.TrimSpace(answer.Str)) > OpenTextMaxLen {
			return false, fmt.Sprintf("La respuesta no puede exceder %d caracteres", OpenTextMaxLen)
		}
	default:
		return false, fmt.Sprintf("Tipo de pregunta desconocido: %s", q.Type)
	}

	return true, ""
}

func (q Question) hasOption(value string) bool {
	for _, opt := range q.Options {
		if opt == value {
			return true
		}
	}
	return false
}
