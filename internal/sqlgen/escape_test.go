package sqlgen

import (
	"errors"
	"strings"
	"testing"

	"github.com/kovka-shop/productseed/pkg/productseed"
)

func TestQuoteLiteral(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", "''"},
		{"SK.12", "'SK.12'"},
		{"Шары и сферы", "'Шары и сферы'"},
		{"O'Brien", "'O''Brien'"},
		{"''", "''''''"},
		{`back\slash "dq"`, `'back\slash "dq"'`},
	}
	for _, tc := range tests {
		if got := QuoteLiteral(tc.in); got != tc.want {
			t.Errorf("QuoteLiteral(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestValidateIdentifier(t *testing.T) {
	validCases := []string{
		"products",
		"productCategories",
		"_private",
		"Table123",
		strings.Repeat("a", 64),
	}
	for _, tc := range validCases {
		if err := ValidateIdentifier(tc); err != nil {
			t.Errorf("ValidateIdentifier(%q) should be valid, got error: %v", tc, err)
		}
	}

	invalidCases := []struct {
		input   string
		wantErr string
	}{
		{"", "empty identifier"},
		{strings.Repeat("a", 65), "exceeds 64 character limit"},
		{"123start", "not a valid identifier"},
		{"has-dash", "not a valid identifier"},
		{"has space", "not a valid identifier"},
		{"shop.products", "not a valid identifier"},
		{"products;DROP TABLE users", "not a valid identifier"},
	}
	for _, tc := range invalidCases {
		err := ValidateIdentifier(tc.input)
		if err == nil {
			t.Errorf("ValidateIdentifier(%q) should return error", tc.input)
			continue
		}
		if !strings.Contains(err.Error(), tc.wantErr) {
			t.Errorf("ValidateIdentifier(%q) error = %q, want containing %q", tc.input, err.Error(), tc.wantErr)
		}
		if !errors.Is(err, productseed.ErrInvalidConfig) {
			t.Errorf("ValidateIdentifier(%q) error should wrap ErrInvalidConfig", tc.input)
		}
	}
}

func TestValidateCharset(t *testing.T) {
	for _, ok := range []string{"utf8mb4", "utf8", "latin1"} {
		if err := ValidateCharset(ok); err != nil {
			t.Errorf("ValidateCharset(%q) = %v", ok, err)
		}
	}
	for _, bad := range []string{"", "utf8; DROP", "utf-8"} {
		if err := ValidateCharset(bad); err == nil {
			t.Errorf("ValidateCharset(%q) should fail", bad)
		}
	}
}
