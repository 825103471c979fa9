package http

import (
	"errors"
	"testing"
)

func TestCustomRules(t *testing.T) {
	cv := NewValidator()

	type probe struct {
		ID     string  `validate:"omitempty,hex32"`
		Amount float64 `validate:"dec2"`
	}

	tests := []struct {
		name   string
		in     probe
		wantOK bool
	}{
		{"valid", probe{ID: "0123456789abcdef0123456789abcdef", Amount: 10.25}, true},
		{"empty id allowed", probe{Amount: 0}, true},
		{"uppercase hex rejected", probe{ID: "0123456789ABCDEF0123456789ABCDEF"}, false},
		{"short id", probe{ID: "abc123"}, false},
		{"three decimals", probe{Amount: 1.005}, false},
		{"large whole amount", probe{Amount: 600000000}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := cv.Validate(&tt.in)
			if (err == nil) != tt.wantOK {
				t.Fatalf("Validate(%+v) err = %v, wantOK %v", tt.in, err, tt.wantOK)
			}
		})
	}
}

func TestToFieldErrors_NonValidatorError(t *testing.T) {
	out := ToFieldErrors(errors.New("boom"))
	if len(out) != 1 || out[0].Field != "_" {
		t.Fatalf("out = %+v", out)
	}
}
