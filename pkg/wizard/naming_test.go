package wizard

import (
	"strings"
	"testing"

	"github.com/Rusal0/Wizard/pkg/wizard/models"
)

func TestSanitizeTitle(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Q1", "Q1"},
		{"Q1/Q2: [draft]?", "Q1Q2 draft"},
		{"'quoted'", "quoted"},
		{"  padded  ", "padded"},
		{"tab\there", "tabhere"},
		{"***", ""},
		{"Café", "Café"},
		{"A very long sheet title that exceeds the limit", "A very long sheet title that ex"},
		{strings.Repeat("😀", 20), strings.Repeat("😀", 15)},
	}

	for _, tt := range tests {
		result := SanitizeTitle(tt.input)
		if result != tt.expected {
			t.Errorf("SanitizeTitle(%q) = %q, expected %q", tt.input, result, tt.expected)
		}
		if result != "" {
			if err := models.ValidateTitle(result); err != nil {
				t.Errorf("SanitizeTitle(%q) = %q is not a legal title: %v", tt.input, result, err)
			}
		}
	}
}

func TestUniqueTitle(t *testing.T) {
	taken := make(titleSet)
	long := strings.Repeat("x", 31)

	tests := []struct {
		input    string
		expected string
	}{
		{"Data", "Data"},
		{"data", "data (2)"},
		{"Data", "Data (3)"},
		{long, long},
		{long, strings.Repeat("x", 27) + " (2)"},
	}

	for _, tt := range tests {
		result := uniqueTitle(tt.input, taken)
		taken.add(result)
		if result != tt.expected {
			t.Errorf("uniqueTitle(%q) = %q, expected %q", tt.input, result, tt.expected)
		}
	}
}

func TestMergeTitle(t *testing.T) {
	content := []byte(`[{"ref":"A1"}]`)

	a := mergeTitle(content, "Sheet1", make(titleSet))
	b := mergeTitle(content, "Sheet1", make(titleSet))
	if a != b {
		t.Fatalf("mergeTitle is not deterministic: %q vs %q", a, b)
	}
	if len(a) != DigestLength+len("_Sheet1") || !strings.HasSuffix(a, "_Sheet1") {
		t.Errorf("mergeTitle() = %q, expected {digest}_Sheet1", a)
	}

	other := mergeTitle([]byte(`[{"ref":"B1"}]`), "Sheet1", make(titleSet))
	if other == a {
		t.Errorf("different content produced the same title %q", a)
	}

	taken := make(titleSet)
	taken.add(a)
	retry := mergeTitle(content, "Sheet1", taken)
	if retry == a || !strings.HasSuffix(retry, "_Sheet1") {
		t.Errorf("mergeTitle() with collision = %q", retry)
	}

	long := mergeTitle(content, strings.Repeat("Quarterly ", 5), make(titleSet))
	if models.TitleLength(long) > models.MaxTitleLength {
		t.Errorf("mergeTitle() = %q exceeds the title limit", long)
	}
	if err := models.ValidateTitle(long); err != nil {
		t.Errorf("mergeTitle() = %q: %v", long, err)
	}
	if long[:DigestLength] != sheetDigest(content, strings.Repeat("Quarterly ", 5), 1) {
		t.Errorf("digest of %q was truncated", long)
	}
}
