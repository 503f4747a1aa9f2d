package validation

import (
	"strings"
	"testing"
)

func TestValidEmail(t *testing.T) {
	v := New()

	tests := []struct {
		email string
		want  bool
	}{
		{"user@example.com", true},
		{"first.last+tag@sub.example.co.uk", true},
		{"not-an-email", false},
		{"@example.com", false},
		{"user@", false},
		{"user @example.com", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			if got := v.ValidEmail(tt.email); got != tt.want {
				t.Errorf("ValidEmail(%q) = %v; want %v", tt.email, got, tt.want)
			}
		})
	}
}

func TestValidPhone(t *testing.T) {
	v := New()

	tests := []struct {
		phone string
		want  bool
	}{
		{"555-123-4567", true},
		{"+1 (555) 123-4567", true},
		{"5551234567", true},
		{"abc", false},
		{"123", false},
		{"------------", false},
		{"555-123-4567 ext 9", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.phone, func(t *testing.T) {
			if got := v.ValidPhone(tt.phone); got != tt.want {
				t.Errorf("ValidPhone(%q) = %v; want %v", tt.phone, got, tt.want)
			}
		})
	}
}

func TestValidNameLength(t *testing.T) {
	v := New()

	tests := []struct {
		name  string
		value string
		want  bool
	}{
		{"single char", "A", false},
		{"exactly two", "Al", true},
		{"exactly hundred", strings.Repeat("a", 100), true},
		{"hundred and one", strings.Repeat("a", 101), false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := v.ValidNameLength(tt.value); got != tt.want {
				t.Errorf("ValidNameLength(len=%d) = %v; want %v", len(tt.value), got, tt.want)
			}
		})
	}
}

func TestValidMessageLength(t *testing.T) {
	v := New()

	tests := []struct {
		name  string
		value string
		want  bool
	}{
		{"nine chars", strings.Repeat("a", 9), false},
		{"exactly ten", strings.Repeat("a", 10), true},
		{"exactly two thousand", strings.Repeat("a", 2000), true},
		{"over two thousand", strings.Repeat("a", 2001), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := v.ValidMessageLength(tt.value); got != tt.want {
				t.Errorf("ValidMessageLength(len=%d) = %v; want %v", len(tt.value), got, tt.want)
			}
		})
	}
}
