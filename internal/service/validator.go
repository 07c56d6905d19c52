package service

import "encuestas/internal/domain"

// AnswerValidator valida un conjunto completo de respuestas contra la
// definición de una encuesta.
type AnswerValidator struct{}

// Validate recorre todas las preguntas de la encuesta, no solo las claves
// presentes en answers, para que una obligatoria omitida también se reporte.
// Nunca corta en la primera falla: devuelve la lista completa de violaciones
// (vacía = aceptado). Claves que no corresponden a ninguna pregunta se
// ignoran, tolerando campos superfluos enviados por el cliente.
func (AnswerValidator) Validate(survey *domain.Survey, answers domain.AnswerSet) []domain.Violation {
	var violations []domain.Violation
	for _, q := range survey.Questions {
		// El valor cero de AnswerValue representa "sin respuesta".
		answer := answers[q.ID]
		if ok, reason := q.ValidateAnswer(answer); !ok {
			violations = append(violations, domain.Violation{QuestionID: q.ID, Reason: reason})
		}
	}
	return violations
}
