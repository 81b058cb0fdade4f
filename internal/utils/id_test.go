package utils

import "testing"

func TestNewID(t *testing.T) {
	id, err := NewID()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !IsHexID(id) {
		t.Fatalf("generated id %q is not 24 hex characters", id)
	}

	other, err := NewID()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if id == other {
		t.Error("two generated ids collided")
	}
}

func TestIsHexID(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want bool
	}{
		{"Lowercase Hex", "0123456789abcdef01234567", true},
		{"Uppercase Hex", "0123456789ABCDEF01234567", true},
		{"Too Short", "abc123", false},
		{"Too Long", "0123456789abcdef012345678", false},
		{"Non Hex Characters", "0123456789abcdefg1234567", false},
		{"Empty", "", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsHexID(tc.in); got != tc.want {
				t.Errorf("IsHexID(%q) = %v, expected %v", tc.in, got, tc.want)
			}
		})
	}
}
