package validate_test

import (
	"reflect"
	"testing"

	"github.com/medcard/medcard/internal/validate"
)

func TestEmail(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		{"alice@x.com", true},
		{"a.b+c_d%e@sub.domain.co", true},
		{"UPPER@EXAMPLE.ORG", true},
		{"no-at-sign.com", false},
		{"missing@tld", false},
		{"short@tld.c", false},
		{"", false},
		{"two@@example.com", false},
		{"spaces in@example.com", false},
	}

	for _, tc := range tests {
		if got := validate.Email(tc.email); got != tc.want {
			t.Errorf("Email(%q) = %v, want %v", tc.email, got, tc.want)
		}
	}
}

func TestPassword(t *testing.T) {
	if validate.Password("1234567") {
		t.Error("Password(7 chars) should be false")
	}
	if !validate.Password("12345678") {
		t.Error("Password(8 chars) should be true")
	}
	if validate.Password("") {
		t.Error("Password(empty) should be false")
	}
}

func TestPhone(t *testing.T) {
	tests := []struct {
		phone string
		want  bool
	}{
		{"(555) 123-4567", true},
		{"5551234567", true},
		{"555 123 4567 890", true},
		{"12345", false},
		{"555-123-456a", false},
		{"+15551234567", false},
		{"", false},
	}

	for _, tc := range tests {
		if got := validate.Phone(tc.phone); got != tc.want {
			t.Errorf("Phone(%q) = %v, want %v", tc.phone, got, tc.want)
		}
	}
}

func TestSplitList(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"a, b,, c ", []string{"a", "b", "c"}},
		{"", []string{}},
		{"   ", []string{}},
		{"peanuts", []string{"peanuts"}},
		{"peanuts, shellfish , latex", []string{"peanuts", "shellfish", "latex"}},
		{",,,", []string{}},
	}

	for _, tc := range tests {
		got := validate.SplitList(tc.in)
		if !reflect.DeepEqual(got, tc.want) {
			t.Errorf("SplitList(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestSplitList_Idempotent(t *testing.T) {
	first := validate.SplitList("a, b , c,")
	rejoined := ""
	for i, item := range first {
		if i > 0 {
			rejoined += ","
		}
		rejoined += item
	}
	second := validate.SplitList(rejoined)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("re-splitting rejoined list changed it: %v vs %v", first, second)
	}
}
