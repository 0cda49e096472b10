package owl

import (
	"strings"
	"testing"

	"github.com/ricodraw/ricodraw/pkg/errors"
)

func strptr(s string) *string { return &s }

func TestSanitizeCapitalization(t *testing.T) {
	tests := []struct {
		name   string
		scheme Capitalization
		joiner string
		label  string
		want   string
	}{
		{"upper camel", CapUpperCamel, "", "jane doe", "JaneDoe"},
		{"upper camel preserves inner case", CapUpperCamel, "", "jane McDoe", "JaneMcDoe"},
		{"lower camel", CapLowerCamel, "", "Jane Doe", "janeDoe"},
		{"flat", CapFlat, "", "Jane Doe", "janedoe"},
		{"flat lowers first letter only", CapFlat, "", "JANE DOE", "jANEdOE"},
		{"none keeps words", CapNone, "_", "Jane Doe", "Jane_Doe"},
		{"joiner with upper camel", CapUpperCamel, "-", "jane doe", "Jane-Doe"},
		{"single word upper camel capitalized", CapUpperCamel, "", "janedoe", "Janedoe"},
		{"single word upper camel place name", CapUpperCamel, "", "oslo", "Oslo"},
		{"single word lower camel lowered", CapLowerCamel, "", "JaneDoe", "janeDoe"},
		{"single word flat lowered", CapFlat, "", "JaneDoe", "janeDoe"},
		{"collapses whitespace runs", CapUpperCamel, "", "jane \t doe", "JaneDoe"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Sanitizer{Scheme: tt.scheme, Joiner: strptr(tt.joiner)}
			got, err := s.Sanitize(tt.label)
			if err != nil {
				t.Fatalf("Sanitize(%q) error: %v", tt.label, err)
			}
			if got != tt.want {
				t.Errorf("Sanitize(%q) = %q, want %q", tt.label, got, tt.want)
			}
		})
	}
}

func TestSanitizeUntreatedSpace(t *testing.T) {
	s := Sanitizer{Scheme: CapUpperCamel} // no joiner configured
	_, err := s.Sanitize("Jane Doe")
	if !errors.Is(err, errors.ErrCodeUntreatedSpace) {
		t.Fatalf("got %v, want UNTREATED_SPACE", err)
	}
	if !strings.Contains(err.Error(), "Jane Doe") {
		t.Errorf("error %q should name the offending label", err)
	}
}

func TestSanitizeMetacharacterTotality(t *testing.T) {
	// Every metacharacter in the fixed set must either be covered by a rule
	// or fail sanitization; none may pass through silently.
	for _, meta := range Metacharacters {
		t.Run("unconfigured "+meta, func(t *testing.T) {
			s := Sanitizer{Scheme: CapNone, Joiner: strptr("")}
			_, err := s.Sanitize("label" + meta + "tail")
			if !errors.Is(err, errors.ErrCodeUntreatedMetacharacter) {
				t.Fatalf("metacharacter %q: got %v, want UNTREATED_METACHARACTER", meta, err)
			}
		})
		t.Run("blanket remove "+meta, func(t *testing.T) {
			s := Sanitizer{Scheme: CapNone, Joiner: strptr(""), Blanket: BlanketRemove}
			got, err := s.Sanitize("label" + meta + "tail")
			if err != nil {
				t.Fatalf("metacharacter %q: %v", meta, err)
			}
			if got != "labeltail" {
				t.Errorf("metacharacter %q: got %q, want %q", meta, got, "labeltail")
			}
		})
		t.Run("blanket url-escape "+meta, func(t *testing.T) {
			s := Sanitizer{Scheme: CapNone, Joiner: strptr(""), Blanket: BlanketURLEscape}
			got, err := s.Sanitize("label" + meta + "tail")
			if err != nil {
				t.Fatalf("metacharacter %q: %v", meta, err)
			}
			if strings.Contains(got, meta) || !strings.Contains(got, "%") {
				t.Errorf("metacharacter %q: got %q, want percent-escaped form", meta, got)
			}
		})
	}
}

func TestSanitizeExplicitSubstitutionWinsOverBlanket(t *testing.T) {
	s := Sanitizer{
		Scheme:        CapNone,
		Joiner:        strptr(""),
		Blanket:       BlanketRemove,
		Substitutions: map[string]string{",": "-"},
	}
	got, err := s.Sanitize("Doe, Jane (senior)")
	if err != nil {
		t.Fatalf("Sanitize() error: %v", err)
	}
	// "," uses its explicit rule; "(" and ")" fall to the blanket remove.
	if got != "Doe-Janesenior" {
		t.Errorf("got %q, want %q", got, "Doe-Janesenior")
	}
}

func TestSanitizeURLEscapeValues(t *testing.T) {
	s := Sanitizer{Scheme: CapNone, Joiner: strptr(""), Blanket: BlanketURLEscape}
	got, err := s.Sanitize("a.b/c")
	if err != nil {
		t.Fatalf("Sanitize() error: %v", err)
	}
	if got != "a%2Eb%2Fc" {
		t.Errorf("got %q, want %q", got, "a%2Eb%2Fc")
	}
}

func TestSanitizeDeterministic(t *testing.T) {
	s := Sanitizer{
		Scheme:        CapUpperCamel,
		Joiner:        strptr(""),
		Blanket:       BlanketRemove,
		Substitutions: map[string]string{"'": "_"},
	}
	first, err := s.Sanitize("jane's (old) file.txt")
	if err != nil {
		t.Fatalf("Sanitize() error: %v", err)
	}
	for i := 0; i < 10; i++ {
		again, err := s.Sanitize("jane's (old) file.txt")
		if err != nil {
			t.Fatalf("Sanitize() error: %v", err)
		}
		if again != first {
			t.Fatalf("run %d produced %q, first run produced %q", i, again, first)
		}
	}
}

func TestParseCapitalization(t *testing.T) {
	for _, valid := range []string{"upper-camel", "lower-camel", "flat", "none"} {
		if _, err := ParseCapitalization(valid); err != nil {
			t.Errorf("ParseCapitalization(%q) error: %v", valid, err)
		}
	}
	if _, err := ParseCapitalization("camel"); !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("got %v, want INVALID_CONFIG", err)
	}
}

func TestParseBlanketMode(t *testing.T) {
	for _, valid := range []string{"none", "remove", "url-escape"} {
		if _, err := ParseBlanketMode(valid); err != nil {
			t.Errorf("ParseBlanketMode(%q) error: %v", valid, err)
		}
	}
	if _, err := ParseBlanketMode("escape"); !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("got %v, want INVALID_CONFIG", err)
	}
}
