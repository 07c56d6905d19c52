package service

import "encuestas/internal/domain"

// ScoringEngine normaliza respuestas numéricas a la escala común 0-100 y
// las promedia por categoría. Es puro y determinista: el mismo par
// (encuesta, respuestas) produce siempre el mismo resultado.
type ScoringEngine struct{}

// ComputeCategoryScores devuelve el puntaje promedio por categoría. Solo
// aportan las preguntas likert_scale y rating_scale respondidas con un
// entero; una categoría sin aportes queda ausente del mapa, no en cero.
func (ScoringEngine) ComputeCategoryScores(survey *domain.Survey, answers domain.AnswerSet) map[string]float64 {
	sums := make(map[string]float64)
	counts := make(map[string]int)

	for _, q := range survey.Questions {
		if !q.IsNumericScale() {
			continue
		}
		answer, ok := answers[q.ID]
		if !ok || answer.Kind != domain.AnswerInt {
			continue
		}
		if q.ScaleMax == q.ScaleMin {
			// Rango degenerado: no hay forma de normalizar.
			continue
		}
		normalized := float64(answer.Int-q.ScaleMin) / float64(q.ScaleMax-q.ScaleMin) * 100
		sums[q.Category] += normalized
		counts[q.Category]++
	}

	scores := make(map[string]float64, len(sums))
	for category, sum := range sums {
		scores[category] = sum / float64(counts[category])
	}
	return scores
}
