package service

import "encuestas/internal/domain"

// RiskRule asocia una etiqueta de riesgo con un predicado sobre la respuesta.
// La tabla es declarativa a propósito: los criterios se auditan y cambian
// sin tocar el detector.
type RiskRule struct {
	ID       string
	Tag      string
	Severity string
	Match    func(q domain.Question, answer domain.AnswerValue) bool
}

// RiskDetector evalúa una tabla de reglas heurísticas sobre las respuestas
// de una entrega.
type RiskDetector struct {
	rules []RiskRule
}

func NewRiskDetector(rules []RiskRule) *RiskDetector {
	return &RiskDetector{rules: rules}
}

// Detect devuelve las banderas de las reglas que dispararon. Una entrega sin
// banderas es el caso común, no un error. Las reglas se aplican a cada
// pregunta cuya etiqueta de riesgo coincide; preguntas sin responder no
// disparan nada.
func (d *RiskDetector) Detect(survey *domain.Survey, answers domain.AnswerSet) []domain.RiskFlag {
	var flags []domain.RiskFlag
	for _, rule := range d.rules {
		for _, q := range survey.Questions {
			if q.RiskTag == "" || q.RiskTag != rule.Tag {
				continue
			}
			answer, ok := answers[q.ID]
			if !ok || answer.IsEmpty() {
				continue
			}
			if rule.Match(q, answer) {
				flags = append(flags, domain.RiskFlag{
					RuleID:     rule.ID,
					QuestionID: q.ID,
					Severity:   rule.Severity,
				})
			}
		}
	}
	return flags
}

// DefaultRiskRules es la tabla de referencia del sistema:
//   - self_harm: respuesta afirmativa a una pregunta si/no.
//   - hopelessness: los dos niveles superiores de frecuencia de la escala
//     ordinal de cinco puntos.
//   - isolation: 4 o más en una escala likert 1-5.
func DefaultRiskRules() []RiskRule {
	return []RiskRule{
		{
			ID:       "self_harm_affirmative",
			Tag:      domain.RiskTagSelfHarm,
			Severity: domain.SeverityHigh,
			Match: func(_ domain.Question, answer domain.AnswerValue) bool {
				return answer.IsAffirmative()
			},
		},
		{
			ID:       "hopelessness_frequent",
			Tag:      domain.RiskTagHopelessness,
			Severity: domain.SeverityHigh,
			Match: func(_ domain.Question, answer domain.AnswerValue) bool {
				if answer.Kind != domain.AnswerString {
					return false
				}
				return answer.Str == "Frecuentemente" || answer.Str == "Siempre"
			},
		},
		{
			ID:       "isolation_elevated",
			Tag:      domain.RiskTagIsolation,
			Severity: domain.SeverityMedium,
			Match: func(_ domain.Question, answer domain.AnswerValue) bool {
				return answer.Kind == domain.AnswerInt && answer.Int >= 4
			},
		},
	}
}
