package checksum

import (
	"testing"
)

func TestSHA256Calculator_CalculateRaw(t *testing.T) {
	calc := New()

	tests := []struct {
		name     string
		content  string
		expected string
	}{
		{
			name:     "Empty string",
			content:  "",
			expected: "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
		},
		{
			name:     "Charset statement",
			content:  "SET NAMES utf8mb4;",
			expected: "72b7aea09e79b33f78a442d6f82ac61b59416026adcd41cf72cacd0cbcc5509f",
		},
		{
			name:     "UTF-8 content",
			content:  "Шары и сферы",
			expected: "1e34dd6f4d590362388ac4f67628995ba7ea44559b05c054d319d48a58f3cf9a",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := calc.CalculateRaw([]byte(tt.content))
			if result != tt.expected {
				t.Errorf("CalculateRaw(%q) = %s, want %s", tt.content, result, tt.expected)
			}
		})
	}
}

func TestSame(t *testing.T) {
	calc := New()
	if !Same(calc, []byte("a\nb"), []byte("a\nb")) {
		t.Error("identical content should have the same checksum")
	}
	if Same(calc, []byte("a\nb"), []byte("a\nb\n")) {
		t.Error("a trailing newline must change the checksum")
	}
}

func TestCalculator_Interface(t *testing.T) {
	var _ Calculator = New()
}
