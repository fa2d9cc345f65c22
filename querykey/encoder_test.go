package querykey

import (
	"testing"
)

func TestDefaultEncoderBasicTypes(t *testing.T) {
	enc := NewDefaultEncoder()

	tests := []struct {
		name     string
		value    any
		expected string
	}{
		{"nil", nil, "nil"},
		{"string", "hello", "hello"},
		{"int", 42, "42"},
		{"bool", true, "true"},
		{"float", 1.5, "1.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := enc.Encode(tt.value); got != tt.expected {
				t.Errorf("Encode(%v) = %q, want %q", tt.value, got, tt.expected)
			}
		})
	}
}

func TestDefaultEncoderComposite(t *testing.T) {
	enc := NewDefaultEncoder()

	type params struct {
		Q      string
		Limit  int
		hidden string
	}

	tests := []struct {
		name     string
		value    any
		expected string
	}{
		{"slice", []string{"a", "b"}, "[a,b]"},
		{"nil slice", []string(nil), "nil"},
		{"map sorted", map[string]int{"b": 2, "a": 1}, "{a=1,b=2}"},
		{"struct skips unexported", params{Q: "x", Limit: 5, hidden: "no"}, "{Q=x,Limit=5}"},
		{"pointer dereferenced", &params{Q: "x"}, "{Q=x,Limit=0}"},
		{"nil pointer", (*params)(nil), "nil"},
		{"nested", map[string][]int{"ids": {1, 2}}, "{ids=[1,2]}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := enc.Encode(tt.value); got != tt.expected {
				t.Errorf("Encode(%+v) = %q, want %q", tt.value, got, tt.expected)
			}
		})
	}
}

func TestDefaultEncoderOmitsUnsetOptionalFields(t *testing.T) {
	enc := NewDefaultEncoder()

	type params struct {
		Q   *string
		IDs []string
	}

	q := "shirt"
	tests := []struct {
		name     string
		value    params
		expected string
	}{
		{"all unset", params{}, "{}"},
		{"pointer set", params{Q: &q}, "{Q=shirt}"},
		{"slice set", params{IDs: []string{"a"}}, "{IDs=[a]}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := enc.Encode(tt.value); got != tt.expected {
				t.Errorf("Encode(%+v) = %q, want %q", tt.value, got, tt.expected)
			}
		})
	}
}

func TestDefaultEncoderDeterministicAcrossCalls(t *testing.T) {
	enc := NewDefaultEncoder()

	value := map[string]any{
		"order":  "-created_at",
		"limit":  20,
		"offset": 0,
		"ids":    []string{"a", "b", "c"},
	}

	first := enc.Encode(value)
	for i := 0; i < 50; i++ {
		if got := enc.Encode(value); got != first {
			t.Fatalf("iteration %d produced %q, first call produced %q", i, got, first)
		}
	}
}
