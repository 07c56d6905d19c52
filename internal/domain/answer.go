package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// AnswerKind discrimina el tipo concreto guardado en un AnswerValue.
type AnswerKind int

const (
	AnswerEmpty AnswerKind = iota // sin respuesta
	AnswerInt
	AnswerString
	AnswerStringList
	AnswerBool
)

// AnswerValue es la unión etiquetada de valores admitidos como respuesta:
// entero, texto, lista de textos o booleano. El valor cero significa
// "sin respuesta" y es lo que recibe el validador para preguntas omitidas.
type AnswerValue struct {
	Kind AnswerKind
	Int  int
	Str  string
	List []string
	Bool bool
}

func IntAnswer(v int) AnswerValue     { return AnswerValue{Kind: AnswerInt, Int: v} }
func TextAnswer(s string) AnswerValue { return AnswerValue{Kind: AnswerString, Str: s} }
func ListAnswer(items ...string) AnswerValue {
	return AnswerValue{Kind: AnswerStringList, List: items}
}
func BoolAnswer(b bool) AnswerValue { return AnswerValue{Kind: AnswerBool, Bool: b} }

// IsEmpty indica si el valor cuenta como "no respondido".
func (a AnswerValue) IsEmpty() bool {
	switch a.Kind {
	case AnswerEmpty:
		return true
	case AnswerString:
		return strings.TrimSpace(a.Str) == ""
	case AnswerStringList:
		return len(a.List) == 0
	default:
		return false
	}
}

// IsAffirmative reconoce el vocabulario afirmativo de las preguntas si/no.
func (a AnswerValue) IsAffirmative() bool {
	switch a.Kind {
	case AnswerBool:
		return a.Bool
	case AnswerString:
		switch strings.ToLower(strings.TrimSpace(a.Str)) {
		case "sí", "si", "yes":
			return true
		}
	}
	return false
}

// IsNegative reconoce el vocabulario negativo de las preguntas si/no.
func (a AnswerValue) IsNegative() bool {
	switch a.Kind {
	case AnswerBool:
		return !a.Bool
	case AnswerString:
		return strings.EqualFold(strings.TrimSpace(a.Str), "no")
	}
	return false
}

// MarshalJSON serializa el valor subyacente sin envoltorio.
func (a AnswerValue) MarshalJSON() ([]byte, error) {
	switch a.Kind {
	case AnswerInt:
		return json.Marshal(a.Int)
	case AnswerString:
		return json.Marshal(a.Str)
	case AnswerStringList:
		if a.List == nil {
			return json.Marshal([]string{})
		}
		return json.Marshal(a.List)
	case AnswerBool:
		return json.Marshal(a.Bool)
	default:
		return []byte("null"), nil
	}
}

// UnmarshalJSON tipa un valor JSON dinámico en la unión. Números con parte
// fraccionaria y objetos se rechazan en esta frontera, antes de entrar al motor.
func (a *AnswerValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*a = AnswerValue{}
		return nil
	}
	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*a = TextAnswer(s)
		return nil
	case '[':
		var items []string
		if err := json.Unmarshal(data, &items); err != nil {
			return fmt.Errorf("answer list must contain only strings: %w", err)
		}
		*a = ListAnswer(items...)
		return nil
	case 't', 'f':
		var b bool
		if err := json.Unmarshal(data, &b); err != nil {
			return err
		}
		*a = BoolAnswer(b)
		return nil
	case '{':
		return fmt.Errorf("unsupported answer value: object")
	default:
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return err
		}
		v, err := strconv.ParseInt(n.String(), 10, 64)
		if err != nil {
			return fmt.Errorf("numeric answer must be an integer, got %s", n.String())
		}
		*a = IntAnswer(int(v))
		return nil
	}
}

// AnswerSet mapea id de pregunta a valor de respuesta. Es transitorio:
// solo se persiste envuelto en un ResponseRecord.
type AnswerSet map[string]AnswerValue
