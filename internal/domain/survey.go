package domain

import "time"

// Survey es una encuesta completa: metadatos más sus preguntas en orden.
// Las preguntas no existen fuera de la encuesta que las declara.
type Survey struct {
	ID                string     `json:"survey_id"`
	Title             string     `json:"title"`
	Description       string     `json:"description"`
	Questions         []Question `json:"questions"`
	IsActive          bool       `json:"is_active"`
	EstimatedDuration int        `json:"estimated_duration"` // minutos
	CreatedAt         time.Time  `json:"created_at"`
}

// QuestionByID busca una pregunta por su id.
func (s *Survey) QuestionByID(id string) (Question, bool) {
	for _, q := range s.Questions {
		if q.ID == id {
			return q, true
		}
	}
	return Question{}, false
}

// QuestionsByCategory agrupa las preguntas por categoría preservando
// el orden de declaración dentro de cada grupo.
func (s *Survey) QuestionsByCategory() map[string][]Question {
	categories := make(map[string][]Question)
	for _, q := range s.Questions {
		categories[q.Category] = append(categories[q.Category], q)
	}
	return categories
}
