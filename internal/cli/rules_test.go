package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"

	"github.com/ricodraw/ricodraw/pkg/errors"
	"github.com/ricodraw/ricodraw/pkg/owl"
)

func newSanitizerCmd() (*cobra.Command, *sanitizerOpts, *string) {
	opts := &sanitizerOpts{
		capitalization: "upper-camel",
		wordJoiner:     "",
		metacharacters: "none",
	}
	var rulesPath string
	cmd := &cobra.Command{Use: "test"}
	addSanitizerFlags(cmd, opts, &rulesPath)
	return cmd, opts, &rulesPath
}

func writeRules(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rules.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestResolveSanitizerDefaults(t *testing.T) {
	cmd, opts, _ := newSanitizerCmd()
	san, err := resolveSanitizer(cmd, opts, "")
	if err != nil {
		t.Fatalf("resolveSanitizer() error: %v", err)
	}
	if san.Scheme != owl.CapUpperCamel {
		t.Errorf("Scheme = %q, want upper-camel", san.Scheme)
	}
	if san.Joiner == nil || *san.Joiner != "" {
		t.Errorf("Joiner = %v, want empty string", san.Joiner)
	}
	if san.Blanket != owl.BlanketNone {
		t.Errorf("Blanket = %q, want none", san.Blanket)
	}
}

func TestResolveSanitizerFromRulesFile(t *testing.T) {
	path := writeRules(t, `
capitalization = "flat"
word-joiner = "_"
metacharacters = "remove"

[substitute]
"," = "-"
`)
	cmd, opts, _ := newSanitizerCmd()
	san, err := resolveSanitizer(cmd, opts, path)
	if err != nil {
		t.Fatalf("resolveSanitizer() error: %v", err)
	}
	if san.Scheme != owl.CapFlat {
		t.Errorf("Scheme = %q, want flat", san.Scheme)
	}
	if *san.Joiner != "_" {
		t.Errorf("Joiner = %q, want _", *san.Joiner)
	}
	if san.Blanket != owl.BlanketRemove {
		t.Errorf("Blanket = %q, want remove", san.Blanket)
	}
	if san.Substitutions[","] != "-" {
		t.Errorf("Substitutions = %v, want comma rule", san.Substitutions)
	}
}

func TestResolveSanitizerFlagsOverrideFile(t *testing.T) {
	path := writeRules(t, `capitalization = "flat"`)
	cmd, opts, _ := newSanitizerCmd()
	if err := cmd.Flags().Set("capitalization", "lower-camel"); err != nil {
		t.Fatal(err)
	}
	san, err := resolveSanitizer(cmd, opts, path)
	if err != nil {
		t.Fatalf("resolveSanitizer() error: %v", err)
	}
	if san.Scheme != owl.CapLowerCamel {
		t.Errorf("Scheme = %q, want lower-camel (flag wins over file)", san.Scheme)
	}
}

func TestResolveSanitizerSubstituteFlag(t *testing.T) {
	cmd, opts, _ := newSanitizerCmd()
	opts.substitutions = []string{"'=", ",=-"}
	san, err := resolveSanitizer(cmd, opts, "")
	if err != nil {
		t.Fatalf("resolveSanitizer() error: %v", err)
	}
	if got, ok := san.Substitutions["'"]; !ok || got != "" {
		t.Errorf("Substitutions[\"'\"] = %q (%v), want empty replacement", got, ok)
	}
	if san.Substitutions[","] != "-" {
		t.Errorf("Substitutions = %v, want comma rule", san.Substitutions)
	}
}

func TestResolveSanitizerInvalidConfig(t *testing.T) {
	tests := []struct {
		name  string
		apply func(opts *sanitizerOpts)
	}{
		{"bad capitalization", func(o *sanitizerOpts) { o.capitalization = "camel" }},
		{"bad blanket mode", func(o *sanitizerOpts) { o.metacharacters = "escape" }},
		{"rule without equals", func(o *sanitizerOpts) { o.substitutions = []string{"comma-dash"} }},
		{"rule on non-metacharacter", func(o *sanitizerOpts) { o.substitutions = []string{"a=b"} }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, opts, _ := newSanitizerCmd()
			tt.apply(opts)
			_, err := resolveSanitizer(cmd, opts, "")
			if !errors.Is(err, errors.ErrCodeInvalidConfig) {
				t.Errorf("got %v, want INVALID_CONFIG", err)
			}
		})
	}
}

func TestResolveSanitizerMissingRulesFile(t *testing.T) {
	cmd, opts, _ := newSanitizerCmd()
	_, err := resolveSanitizer(cmd, opts, filepath.Join(t.TempDir(), "absent.toml"))
	if !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("got %v, want INVALID_CONFIG", err)
	}
}
