package domain

import (
	"strings"
	"testing"
)

func TestValidateAnswerLikertBounds(t *testing.T) {
	q := Question{ID: "mood", Type: QuestionLikertScale, ScaleMin: 1, ScaleMax: 5, Required: true}

	if ok, _ := q.ValidateAnswer(IntAnswer(3)); !ok {
		t.Fatalf("expected 3 to be valid on a 1-5 scale")
	}
	if ok, _ := q.ValidateAnswer(IntAnswer(0)); ok {
		t.Fatalf("expected 0 to be invalid on a 1-5 scale")
	}
	if ok, _ := q.ValidateAnswer(IntAnswer(6)); ok {
		t.Fatalf("expected 6 to be invalid on a 1-5 scale")
	}
	if ok, reason := q.ValidateAnswer(TextAnswer("3")); ok || reason == "" {
		t.Fatalf("expected non-integer answer to be invalid with a reason")
	}
}

func TestValidateAnswerRatingScale(t *testing.T) {
	q := Question{ID: "stress", Type: QuestionRatingScale, ScaleMin: 1, ScaleMax: 10, Required: true}

	if ok, _ := q.ValidateAnswer(IntAnswer(10)); !ok {
		t.Fatalf("expected 10 to be valid on a 1-10 scale")
	}
	if ok, _ := q.ValidateAnswer(IntAnswer(11)); ok {
		t.Fatalf("expected 11 to be invalid on a 1-10 scale")
	}
}

func TestValidateAnswerRequiredEmpty(t *testing.T) {
	types := []QuestionType{
		QuestionLikertScale, QuestionRatingScale, QuestionMultipleChoice,
		QuestionCheckbox, QuestionYesNo, QuestionOpenText,
	}
	for _, qt := range types {
		q := Question{ID: "q", Type: qt, Required: true, ScaleMin: 1, ScaleMax: 5, Options: []string{"A"}}
		if ok, reason := q.ValidateAnswer(AnswerValue{}); ok || reason != "Esta pregunta es obligatoria" {
			t.Fatalf("type %s: expected required-empty to be invalid, got ok=%v reason=%q", qt, ok, reason)
		}
	}
}

func TestValidateAnswerOptionalEmpty(t *testing.T) {
	q := Question{ID: "notes", Type: QuestionOpenText, Required: false}
	if ok, _ := q.ValidateAnswer(AnswerValue{}); !ok {
		t.Fatalf("expected optional unanswered question to be valid")
	}
	if ok, _ := q.ValidateAnswer(TextAnswer("   ")); !ok {
		t.Fatalf("expected blank text on optional question to be valid")
	}
}

func TestValidateAnswerMultipleChoice(t *testing.T) {
	q := Question{ID: "freq", Type: QuestionMultipleChoice, Required: true,
		Options: []string{"Nunca", "A veces", "Siempre"}}

	if ok, _ := q.ValidateAnswer(TextAnswer("A veces")); !ok {
		t.Fatalf("expected listed option to be valid")
	}
	if ok, _ := q.ValidateAnswer(TextAnswer("Jamás")); ok {
		t.Fatalf("expected unlisted option to be invalid")
	}
}

func TestValidateAnswerCheckboxSubset(t *testing.T) {
	q := Question{ID: "subs", Type: QuestionCheckbox, Required: true, Options: []string{"A", "B", "C"}}

	if ok, _ := q.ValidateAnswer(ListAnswer("A", "B")); !ok {
		t.Fatalf("expected [A B] to be valid")
	}
	if ok, reason := q.ValidateAnswer(ListAnswer("A", "D")); ok || !strings.Contains(reason, "'D'") {
		t.Fatalf("expected [A D] to be invalid naming D, got ok=%v reason=%q", ok, reason)
	}
	if ok, _ := q.ValidateAnswer(AnswerValue{Kind: AnswerStringList}); ok {
		t.Fatalf("expected empty checkbox selection on required question to be invalid")
	}
}

func TestValidateAnswerYesNoVocabulary(t *testing.T) {
	q := Question{ID: "support", Type: QuestionYesNo, Required: true}

	valid := []AnswerValue{
		TextAnswer("Sí"), TextAnswer("Si"), TextAnswer("sí"), TextAnswer("si"),
		TextAnswer("No"), TextAnswer("no"), BoolAnswer(true), BoolAnswer(false),
	}
	for _, a := range valid {
		if ok, reason := q.ValidateAnswer(a); !ok {
			t.Fatalf("expected %+v to be a valid yes/no answer, got %q", a, reason)
		}
	}
	if ok, _ := q.ValidateAnswer(TextAnswer("quizás")); ok {
		t.Fatalf("expected out-of-vocabulary answer to be invalid")
	}
	if ok, _ := q.ValidateAnswer(IntAnswer(1)); ok {
		t.Fatalf("expected integer yes/no answer to be invalid")
	}
}

func TestValidateAnswerOpenTextLength(t *testing.T) {
	q := Question{ID: "concerns", Type: QuestionOpenText, Required: false}

	if ok, _ := q.ValidateAnswer(TextAnswer(strings.Repeat("a", OpenTextMaxLen))); !ok {
		t.Fatalf("expected text of exactly %d chars to be valid", OpenTextMaxLen)
	}
	if ok, _ := q.ValidateAnswer(TextAnswer(strings.Repeat("a", OpenTextMaxLen+1))); ok {
		t.Fatalf("expected text over %d chars to be invalid", OpenTextMaxLen)
	}
}

func TestValidateAnswerOpenTextCountsRunesNotBytes(t *testing.T) {
	q := Question{ID: "concerns", Type: QuestionOpenText, Required: false}

	// 600 caracteres acentuados ocupan 1200 bytes; siguen bajo el límite.
	if ok, reason := q.ValidateAnswer(TextAnswer(strings.Repeat("á", 600))); !ok {
		t.Fatalf("expected 600 accented chars to be valid, got %q", reason)
	}
	if ok, _ := q.ValidateAnswer(TextAnswer(strings.Repeat("á", OpenTextMaxLen))); !ok {
		t.Fatalf("expected exactly %d accented chars to be valid", OpenTextMaxLen)
	}
	if ok, _ := q.ValidateAnswer(TextAnswer(strings.Repeat("á", OpenTextMaxLen+1))); ok {
		t.Fatalf("expected %d accented chars to be invalid", OpenTextMaxLen+1)
	}
}

func TestValidateAnswerUnknownType(t *testing.T) {
	q := Question{ID: "q", Type: QuestionType("slider"), Required: true}
	if ok, reason := q.ValidateAnswer(IntAnswer(1)); ok || !strings.Contains(reason, "slider") {
		t.Fatalf("expected unknown question type to be rejected, got ok=%v reason=%q", ok, reason)
	}
}
