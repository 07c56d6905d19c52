package service

import (
	"time"

	"encuestas/internal/domain"
	"encuestas/internal/repository"
)

// DefaultSurveys construye las tres encuestas base del sistema: estado
// emocional, hábitos y evaluación de riesgo. Se usa para sembrar un store
// vacío y para armar catálogos en memoria.
func DefaultSurveys(now time.Time) []domain.Survey {
	return []domain.Survey{
		emotionalStateSurvey(now),
		habitsSurvey(now),
		riskAssessmentSurvey(now),
	}
}

// NewDefaultCatalog inicializa un catálogo en memoria con las encuestas base.
func NewDefaultCatalog(now time.Time) *repository.Catalog {
	return repository.NewCatalog(DefaultSurveys(now)...)
}

func emotionalStateSurvey(now time.Time) domain.Survey {
	return domain.Survey{
		ID:                "emotional_state",
		Title:             "Evaluación de Estado Emocional",
		Description:       "Encuesta para evaluar tu estado emocional actual y bienestar general.",
		IsActive:          true,
		EstimatedDuration: 5,
		CreatedAt:         now,
		Questions: []domain.Question{
			{
				ID:       "mood_current",
				Text:     "¿Cómo describirías tu estado de ánimo en este momento?",
				Type:     domain.QuestionLikertScale,
				ScaleMin: 1,
				ScaleMax: 5,
				Required: true,
				Category: "estado_emocional",
			},
			{
				ID:       "stress_level",
				Text:     "En una escala del 1 al 10, ¿qué tan estresado/a te sientes?",
				Type:     domain.QuestionRatingScale,
				ScaleMin: 1,
				ScaleMax: 10,
				Required: true,
				Category: "estres",
			},
			{
				ID:       "anxiety_level",
				Text:     "¿Con qué frecuencia has sentido ansiedad en la última semana?",
				Type:     domain.QuestionMultipleChoice,
				Options:  []string{"Nunca", "Raramente", "A veces", "Frecuentemente", "Siempre"},
				Required: true,
				Category: "ansiedad",
			},
			{
				ID:       "sleep_quality",
				Text:     "¿Cómo calificarías la calidad de tu sueño en la última semana?",
				Type:     domain.QuestionLikertScale,
				ScaleMin: 1,
				ScaleMax: 5,
				Required: true,
				Category: "bienestar_fisico",
			},
			{
				ID:       "social_support",
				Text:     "¿Sientes que tienes suficiente apoyo de familiares y amigos?",
				Type:     domain.QuestionYesNo,
				Required: true,
				Category: "apoyo_social",
			},
			{
				ID:       "emotional_concerns",
				Text:     "¿Hay algo específico que te preocupe emocionalmente en este momento?",
				Type:     domain.QuestionOpenText,
				Required: false,
				Category: "preocupaciones",
			},
		},
	}
}

func habitsSurvey(now time.Time) domain.Survey {
	return domain.Survey{
		ID:                "daily_habits",
		Title:             "Evaluación de Hábitos y Bienestar",
		Description:       "Encuesta sobre tus hábitos diarios y su impacto en tu bienestar.",
		IsActive:          true,
		EstimatedDuration: 8,
		CreatedAt:         now,
		Questions: []domain.Question{
			{
				ID:   "exercise_frequency",
				Text: "¿Con qué frecuencia realizas actividad física?",
				Type: domain.QuestionMultipleChoice,
				Options: []string{
					"Nunca", "1-2 veces por semana", "3-4 veces por semana",
					"5-6 veces por semana", "Todos los días",
				},
				Required: true,
				Category: "actividad_fisica",
			},
			{
				ID:   "screen_time",
				Text: "¿Cuántas horas al día pasas frente a pantallas (celular, computadora, TV)?",
				Type: domain.QuestionMultipleChoice,
				Options: []string{
					"Menos de 2 horas", "2-4 horas", "4-6 horas",
					"6-8 horas", "Más de 8 horas",
				},
				Required: true,
				Category: "uso_tecnologia",
			},
			{
				ID:       "social_activities",
				Text:     "¿Participas regularmente en actividades sociales o comunitarias?",
				Type:     domain.QuestionYesNo,
				Required: true,
				Category: "participacion_social",
			},
			{
				ID:       "healthy_eating",
				Text:     "¿Qué tan saludable consideras tu alimentación?",
				Type:     domain.QuestionLikertScale,
				ScaleMin: 1,
				ScaleMax: 5,
				Required: true,
				Category: "alimentacion",
			},
			{
				ID:       "substance_use",
				Text:     "¿Has consumido alcohol o sustancias en la última semana?",
				Type:     domain.QuestionCheckbox,
				Options:  []string{"Alcohol", "Tabaco", "Otras sustancias", "Ninguna"},
				Required: true,
				Category: "consumo_sustancias",
			},
		},
	}
}

func riskAssessmentSurvey(now time.Time) domain.Survey {
	return domain.Survey{
		ID:                "risk_assessment",
		Title:             "Evaluación de Factores de Riesgo",
		Description:       "Evaluación confidencial para identificar factores de riesgo y necesidades de apoyo.",
		IsActive:          true,
		EstimatedDuration: 10,
		CreatedAt:         now,
		Questions: []domain.Question{
			{
				ID:       "hopelessness",
				Text:     "¿Has sentido que no vale la pena vivir?",
				Type:     domain.QuestionMultipleChoice,
				Options:  []string{"Nunca", "Raramente", "A veces", "Frecuentemente", "Siempre"},
				Required: true,
				Category: "riesgo_alto",
				RiskTag:  domain.RiskTagHopelessness,
			},
			{
				ID:       "self_harm",
				Text:     "¿Has pensado en hacerte daño a ti mismo/a?",
				Type:     domain.QuestionYesNo,
				Required: true,
				Category: "riesgo_alto",
				RiskTag:  domain.RiskTagSelfHarm,
			},
			{
				ID:       "isolation",
				Text:     "¿Te sientes aislado/a de otras personas?",
				Type:     domain.QuestionLikertScale,
				ScaleMin: 1,
				ScaleMax: 5,
				Required: true,
				Category: "aislamiento",
				RiskTag:  domain.RiskTagIsolation,
			},
			{
				ID:       "family_problems",
				Text:     "¿Tienes problemas significativos en casa o con tu familia?",
				Type:     domain.QuestionYesNo,
				Required: true,
				Category: "problemas_familiares",
			},
			{
				ID:       "academic_stress",
				Text:     "¿Qué tan estresado/a te sientes por temas académicos o laborales?",
				Type:     domain.QuestionRatingScale,
				ScaleMin: 1,
				ScaleMax: 10,
				Required: true,
				Category: "estres_academico",
			},
			{
				ID:       "help_seeking",
				Text:     "¿Estarías dispuesto/a a buscar ayuda profesional si la necesitaras?",
				Type:     domain.QuestionYesNo,
				Required: true,
				Category: "disposicion_ayuda",
			},
		},
	}
}
