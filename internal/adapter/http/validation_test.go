package http

import (
	"errors"
	"strings"
	"testing"
)

func TestHex32Validation(t *testing.T) {
	type P struct {
		BuyerID string `validate:"hex32"`
	}
	cv := NewValidator()

	// valid: 32-char lowercase hex
	ok := P{BuyerID: strings.Repeat("a", 32)}
	if err := cv.Validate(ok); err != nil {
		t.Fatalf("expected valid hex32, got err: %v", err)
	}

	// invalid samples
	for _, s := range []string{
		"",                                  // empty
		strings.Repeat("A", 32),             // uppercase
		"deadbeef",                          // too short
		strings.Repeat("g", 32),             // non-hex char
		"3f9a6a1b3d544fbe8b3a6b3e8d6b2c8",   // 31 chars
		"3f9a6a1b3d544fbe8b3a6b3e8d6b2c88x", // 33 with extra
	} {
		bad := P{BuyerID: s}
		err := cv.Validate(bad)
		if err == nil {
			t.Fatalf("expected error for %q", s)
		}
		fe := ToFieldErrors(err)
		if !containsFieldMsg(fe, "BuyerID", "32-char lowercase hex") {
			t.Fatalf("expected hex32 message for %q, got: %+v", s, fe)
		}
	}
}

func TestDec2Validation(t *testing.T) {
	type P struct {
		Amount float64 `validate:"dec2"`
	}
	cv := NewValidator()

	for _, v := range []float64{1.29, 2.00, 0.9, 50000, 1200000.25} {
		if err := cv.Validate(P{Amount: v}); err != nil {
			t.Fatalf("expected dec2 OK for %v, got %v", v, err)
		}
	}
	for _, v := range []float64{1.234, 2.9999, 1200000.001} {
		err := cv.Validate(P{Amount: v})
		if err == nil {
			t.Fatalf("expected dec2 error for %v", v)
		}
		fe := ToFieldErrors(err)
		if !containsFieldMsg(fe, "Amount", "at most 2 decimal places") {
			t.Fatalf("expected 'at most 2 decimal places' for %v, got %+v", v, fe)
		}
	}
}

func TestFreqValidation(t *testing.T) {
	type P struct {
		Frequency string `validate:"freq"`
	}
	cv := NewValidator()

	for _, s := range []string{"monthly", "quarterly", "bi-annual", "annual", "custom"} {
		if err := cv.Validate(P{Frequency: s}); err != nil {
			t.Fatalf("expected freq OK for %q, got %v", s, err)
		}
	}
	for _, s := range []string{"", "weekly", "Monthly", "biannual"} {
		err := cv.Validate(P{Frequency: s})
		if err == nil {
			t.Fatalf("expected freq error for %q", s)
		}
		fe := ToFieldErrors(err)
		if !containsFieldMsg(fe, "Frequency", "monthly") {
			t.Fatalf("expected freq message for %q, got %+v", s, fe)
		}
	}
}

func TestPaymethodAndPurposeValidation(t *testing.T) {
	type P struct {
		Method  string `validate:"paymethod"`
		Purpose string `validate:"purpose"`
	}
	cv := NewValidator()

	if err := cv.Validate(P{Method: "bank-transfer", Purpose: "down-payment"}); err != nil {
		t.Fatalf("expected valid, got %v", err)
	}

	err := cv.Validate(P{Method: "gold", Purpose: "tip"})
	if err == nil {
		t.Fatalf("expected validation errors")
	}
	fe := ToFieldErrors(err)
	if !containsFieldMsg(fe, "Method", "cash") {
		t.Fatalf("missing paymethod message: %+v", fe)
	}
	if !containsFieldMsg(fe, "Purpose", "token") {
		t.Fatalf("missing purpose message: %+v", fe)
	}
}

func TestRequiredAndBoundsMapping(t *testing.T) {
	type P struct {
		Name  string  `validate:"required"`
		Min   int     `validate:"gte=10"`
		Max   int     `validate:"lte=5"`
		Share float64 `validate:"dec2,gt=0,lte=100"`
	}
	cv := NewValidator()

	// Intentionally violate all
	err := cv.Validate(P{
		Name:  "",      // required
		Min:   9,       // gte=10
		Max:   6,       // lte=5
		Share: 100.333, // dec2 + lte fail, but dec2 will trigger first
	})
	if err == nil {
		t.Fatalf("expected validation errors")
	}
	fe := ToFieldErrors(err)

	if !containsFieldMsg(fe, "Name", "is required") {
		t.Fatalf("missing 'is required' for Name: %+v", fe)
	}
	if !containsFieldMsg(fe, "Min", "greater than or equal to 10") {
		t.Fatalf("missing gte message for Min: %+v", fe)
	}
	if !containsFieldMsg(fe, "Max", "less than or equal to 5") {
		t.Fatalf("missing lte message for Max: %+v", fe)
	}
	if !containsFieldMsg(fe, "Share", "at most 2 decimal places") {
		t.Fatalf("missing dec2 message for Share: %+v", fe)
	}
}

func TestToFieldErrors_NonValidation(t *testing.T) {
	err := errors.New("boom")
	fe := ToFieldErrors(err)
	if len(fe) != 1 {
		t.Fatalf("expected 1 field error, got %d", len(fe))
	}
	if fe[0].Field != "_" || fe[0].Message != "boom" {
		t.Fatalf("unexpected mapping: %+v", fe[0])
	}
}
