package currency

import (
	"math"
	"strconv"
)

// Keypad models the calculator's two linked display fields: the JPY
// expression being typed and the TWD preview derived from it. Keys are
// single characters plus "C" (clear) and "=" (evaluate). There is no
// undo.
type Keypad struct {
	expr   string
	linked string
}

func NewKeypad() *Keypad {
	return &Keypad{}
}

// Expression is the primary (JPY) field as currently typed.
func (k *Keypad) Expression() string {
	return k.expr
}

// Linked is the converted (TWD) field.
func (k *Keypad) Linked() string {
	return k.linked
}

// Press applies one key. Operators never stack: a second consecutive
// operator is dropped. "=" collapses the expression to its value
// (capped at two decimals) and recomputes the linked field; on a
// malformed expression both fields are left as they are.
func (k *Keypad) Press(key string, rate float64) {
	switch key {
	case "C":
		k.expr = ""
		k.linked = ""
	case "=":
		result, err := Evaluate(k.expr)
		if err != nil {
			return
		}
		k.expr = formatAmount(math.Floor(result*100) / 100)
		k.linked = formatWhole(result * rate)
	case "+", "-", "*", "/":
		if k.expr == "" || isOperator(lastChar(k.expr)) {
			return
		}
		k.expr += key
	default:
		if !isDigitOrDot(key) {
			return
		}
		k.expr += key
		k.refreshLinked(rate)
	}
}

func (k *Keypad) refreshLinked(rate float64) {
	if isOperator(lastChar(k.expr)) {
		return
	}
	result, err := Evaluate(k.expr)
	if err != nil {
		k.linked = ""
		return
	}
	k.linked = formatWhole(result * rate)
}

func isDigitOrDot(key string) bool {
	if len(key) != 1 {
		return false
	}
	return key[0] >= '0' && key[0] <= '9' || key[0] == '.'
}

func isOperator(c string) bool {
	return c == "+" || c == "-" || c == "*" || c == "/"
}

func lastChar(s string) string {
	if s == "" {
		return ""
	}
	return s[len(s)-1:]
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatWhole(v float64) string {
	rounded := math.Round(v)
	if rounded == 0 {
		rounded = 0 // normalize -0
	}
	return strconv.FormatFloat(rounded, 'f', 0, 64)
}
