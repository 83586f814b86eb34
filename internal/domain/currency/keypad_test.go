package currency

import "testing"

const testRate = 0.215

func press(k *Keypad, keys ...string) {
	for _, key := range keys {
		k.Press(key, testRate)
	}
}

func TestKeypadTypingUpdatesLinkedField(t *testing.T) {
	k := NewKeypad()
	press(k, "1", "0", "0", "0")

	if k.Expression() != "1000" {
		t.Fatalf("want expression 1000, got %q", k.Expression())
	}
	if k.Linked() != "215" {
		t.Fatalf("want linked 215, got %q", k.Linked())
	}
}

func TestKeypadConsecutiveOperatorsDropped(t *testing.T) {
	k := NewKeypad()
	press(k, "5", "+", "+", "*", "3")

	if k.Expression() != "5+3" {
		t.Fatalf("second operator must be dropped, got %q", k.Expression())
	}
}

func TestKeypadLeadingOperatorDropped(t *testing.T) {
	k := NewKeypad()
	press(k, "+", "7")

	if k.Expression() != "7" {
		t.Fatalf("operator on empty field must be dropped, got %q", k.Expression())
	}
}

func TestKeypadEvaluate(t *testing.T) {
	k := NewKeypad()
	press(k, "1", "0", "0", "+", "2", "0", "0", "=")

	if k.Expression() != "300" {
		t.Fatalf("want 300 after =, got %q", k.Expression())
	}
	if k.Linked() != "65" { // 300 * 0.215 = 64.5, rounded
		t.Fatalf("want linked 65, got %q", k.Linked())
	}
}

func TestKeypadEvaluateCapsDecimals(t *testing.T) {
	k := NewKeypad()
	press(k, "1", "0", "/", "3", "=")

	if k.Expression() != "3.33" {
		t.Fatalf("result must be floored to two decimals, got %q", k.Expression())
	}
}

func TestKeypadEvaluateMalformedKeepsFields(t *testing.T) {
	k := NewKeypad()
	press(k, "5", "+")
	before := k.Expression()

	k.Press("=", testRate)

	if k.Expression() != before {
		t.Fatalf("malformed = must leave the expression alone, got %q", k.Expression())
	}
}

func TestKeypadClear(t *testing.T) {
	k := NewKeypad()
	press(k, "4", "2", "C")

	if k.Expression() != "" || k.Linked() != "" {
		t.Fatalf("C must clear both fields, got %q / %q", k.Expression(), k.Linked())
	}
}

func TestKeypadIgnoresUnknownKeys(t *testing.T) {
	k := NewKeypad()
	press(k, "1", "x", "%", "2")

	if k.Expression() != "12" {
		t.Fatalf("unknown keys must be ignored, got %q", k.Expression())
	}
}
