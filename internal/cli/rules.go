package cli

import (
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/ricodraw/ricodraw/pkg/errors"
	"github.com/ricodraw/ricodraw/pkg/owl"
)

// sanitizerOpts holds the flag-level identifier sanitization settings.
type sanitizerOpts struct {
	capitalization string   // scheme: upper-camel, lower-camel, flat, none
	wordJoiner     string   // string placed between words of a label
	metacharacters string   // blanket mode: none, remove, url-escape
	substitutions  []string // repeated "CHAR=REPLACEMENT" rules
}

// rulesFile is the TOML shape of a --rules file. Flags set on the command
// line override the file's values.
//
//	capitalization = "upper-camel"
//	word-joiner = "_"
//	metacharacters = "remove"
//
//	[substitute]
//	"," = "-"
//	"'" = ""
type rulesFile struct {
	Capitalization *string           `toml:"capitalization"`
	WordJoiner     *string           `toml:"word-joiner"`
	Metacharacters *string           `toml:"metacharacters"`
	Substitute     map[string]string `toml:"substitute"`
}

// addSanitizerFlags registers the sanitization flags shared by commands
// that build identifiers.
func addSanitizerFlags(cmd *cobra.Command, opts *sanitizerOpts, rulesPath *string) {
	cmd.Flags().StringVar(rulesPath, "rules", "", "TOML file with sanitization rules (flags override)")
	cmd.Flags().StringVar(&opts.capitalization, "capitalization", opts.capitalization, "identifier capitalization: upper-camel, lower-camel, flat, none")
	cmd.Flags().StringVar(&opts.wordJoiner, "word-joiner", opts.wordJoiner, "string joining the words of a multi-word label")
	cmd.Flags().StringVar(&opts.metacharacters, "metacharacters", opts.metacharacters, "blanket metacharacter treatment: none, remove, url-escape")
	cmd.Flags().StringArrayVar(&opts.substitutions, "substitute", nil, "per-character rule CHAR=REPLACEMENT (repeatable, wins over blanket mode)")
}

// resolveSanitizer merges the rules file (if any) with the command-line
// flags and builds the sanitizer. A flag explicitly set on the command line
// always wins over the file.
func resolveSanitizer(cmd *cobra.Command, opts *sanitizerOpts, rulesPath string) (owl.Sanitizer, error) {
	merged := *opts
	subs := make(map[string]string)

	if rulesPath != "" {
		var rules rulesFile
		if _, err := toml.DecodeFile(rulesPath, &rules); err != nil {
			return owl.Sanitizer{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "cannot read rules file %s", rulesPath)
		}
		if rules.Capitalization != nil && !cmd.Flags().Changed("capitalization") {
			merged.capitalization = *rules.Capitalization
		}
		if rules.WordJoiner != nil && !cmd.Flags().Changed("word-joiner") {
			merged.wordJoiner = *rules.WordJoiner
		}
		if rules.Metacharacters != nil && !cmd.Flags().Changed("metacharacters") {
			merged.metacharacters = *rules.Metacharacters
		}
		for char, repl := range rules.Substitute {
			if err := validateMetacharacter(char); err != nil {
				return owl.Sanitizer{}, err
			}
			subs[char] = repl
		}
	}

	for _, rule := range opts.substitutions {
		char, repl, ok := strings.Cut(rule, "=")
		if !ok {
			return owl.Sanitizer{}, errors.New(errors.ErrCodeInvalidConfig,
				"invalid substitution rule %q (expected CHAR=REPLACEMENT)", rule)
		}
		if err := validateMetacharacter(char); err != nil {
			return owl.Sanitizer{}, err
		}
		subs[char] = repl
	}

	return buildSanitizer(merged, subs)
}

func buildSanitizer(opts sanitizerOpts, subs map[string]string) (owl.Sanitizer, error) {
	scheme, err := owl.ParseCapitalization(opts.capitalization)
	if err != nil {
		return owl.Sanitizer{}, err
	}
	blanket, err := owl.ParseBlanketMode(opts.metacharacters)
	if err != nil {
		return owl.Sanitizer{}, err
	}
	joiner := opts.wordJoiner
	return owl.Sanitizer{
		Scheme:        scheme,
		Joiner:        &joiner,
		Blanket:       blanket,
		Substitutions: subs,
	}, nil
}

func validateMetacharacter(char string) error {
	for _, meta := range owl.Metacharacters {
		if char == meta {
			return nil
		}
	}
	return errors.New(errors.ErrCodeInvalidConfig,
		"%q is not a metacharacter (must be one of %s)", char, strings.Join(owl.Metacharacters, " "))
}
