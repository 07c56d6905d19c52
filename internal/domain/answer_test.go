package domain

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestAnswerSetUnmarshalTypesValues(t *testing.T) {
	raw := []byte(`{
		"mood": 4,
		"concerns": "todo bien",
		"substances": ["Alcohol", "Tabaco"],
		"support": true,
		"skipped": null
	}`)

	var answers AnswerSet
	if err := json.Unmarshal(raw, &answers); err != nil {
		t.Fatalf("unmarshal answer set: %v", err)
	}

	if got := answers["mood"]; got.Kind != AnswerInt || got.Int != 4 {
		t.Fatalf("expected integer 4 for mood, got %+v", got)
	}
	if got := answers["concerns"]; got.Kind != AnswerString || got.Str != "todo bien" {
		t.Fatalf("expected string answer, got %+v", got)
	}
	if got := answers["substances"]; got.Kind != AnswerStringList || !reflect.DeepEqual(got.List, []string{"Alcohol", "Tabaco"}) {
		t.Fatalf("expected string list answer, got %+v", got)
	}
	if got := answers["support"]; got.Kind != AnswerBool || !got.Bool {
		t.Fatalf("expected boolean answer, got %+v", got)
	}
	if got := answers["skipped"]; !got.IsEmpty() {
		t.Fatalf("expected null to decode as empty answer, got %+v", got)
	}
}

func TestAnswerValueRejectsFractionsAndObjects(t *testing.T) {
	var a AnswerValue
	if err := json.Unmarshal([]byte(`3.5`), &a); err == nil {
		t.Fatalf("expected fractional number to be rejected")
	}
	if err := json.Unmarshal([]byte(`{"v": 1}`), &a); err == nil {
		t.Fatalf("expected object value to be rejected")
	}
	if err := json.Unmarshal([]byte(`[1, 2]`), &a); err == nil {
		t.Fatalf("expected non-string list to be rejected")
	}
}

func TestAnswerValueMarshalRoundTrip(t *testing.T) {
	original := AnswerSet{
		"a": IntAnswer(7),
		"b": TextAnswer("Sí"),
		"c": ListAnswer("X"),
		"d": BoolAnswer(false),
	}
	data, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var decoded AnswerSet
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !reflect.DeepEqual(original, decoded) {
		t.Fatalf("round trip mismatch:\n  original %+v\n  decoded  %+v", original, decoded)
	}
}

func TestAnswerValueAffirmative(t *testing.T) {
	affirmatives := []AnswerValue{TextAnswer("Sí"), TextAnswer("si"), TextAnswer(" SI "), BoolAnswer(true)}
	for _, a := range affirmatives {
		if !a.IsAffirmative() {
			t.Fatalf("expected %+v to be affirmative", a)
		}
	}
	negatives := []AnswerValue{TextAnswer("No"), BoolAnswer(false), IntAnswer(1), AnswerValue{}}
	for _, a := range negatives {
		if a.IsAffirmative() {
			t.Fatalf("expected %+v to not be affirmative", a)
		}
	}
}
