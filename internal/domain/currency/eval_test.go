package currency

import (
	"errors"
	"math"
	"testing"
)

func TestEvaluate(t *testing.T) {
	cases := []struct {
		expr string
		want float64
	}{
		{"1+2", 3},
		{"10-4", 6},
		{"6*7", 42},
		{"10/4", 2.5},
		{"2+3*4", 14},
		{"10-2*3+1", 5},
		{"100/10/2", 5},
		{"1.5+2.25", 3.75},
		{"-5+3", -2},
		{"2*-3", -6},
		{"+7", 7},
		{"42", 42},
		// Characters outside the calculator alphabet are stripped first.
		{"1 + 2", 3},
		{"(1+2)*3", 7}, // parens stripped, leaving 1+2*3
		{"１2", 2},      // fullwidth digit dropped
	}

	for _, tc := range cases {
		t.Run(tc.expr, func(t *testing.T) {
			got, err := Evaluate(tc.expr)
			if err != nil {
				t.Fatalf("Evaluate(%q): %v", tc.expr, err)
			}
			if math.Abs(got-tc.want) > 1e-9 {
				t.Fatalf("Evaluate(%q) = %v, want %v", tc.expr, got, tc.want)
			}
		})
	}
}

func TestEvaluateErrors(t *testing.T) {
	cases := []struct {
		name string
		expr string
		want error
	}{
		{"empty", "", ErrEmptyExpression},
		{"only stripped chars", "abc() ", ErrEmptyExpression},
		{"trailing operator", "1+", ErrInvalidExpression},
		{"double slash", "1//2", ErrInvalidExpression},
		{"double dot literal", "1.2.3", ErrInvalidExpression},
		{"lone dot", ".", ErrInvalidExpression},
		{"division by zero", "5/0", ErrDivisionByZero},
		{"division by zero nested", "1+2/0*3", ErrDivisionByZero},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Evaluate(tc.expr); !errors.Is(err, tc.want) {
				t.Fatalf("Evaluate(%q): want %v, got %v", tc.expr, tc.want, err)
			}
		})
	}
}
