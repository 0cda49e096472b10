// Package owl assembles interpreted diagram facts into OWL Manchester
// syntax individual blocks: identifier sanitization, block accumulation,
// and deterministic serialization.
package owl

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/ricodraw/ricodraw/pkg/errors"
)

// Capitalization names a scheme for turning a multi-word label into an
// identifier.
type Capitalization string

const (
	// CapUpperCamel capitalizes the first letter of every word.
	CapUpperCamel Capitalization = "upper-camel"

	// CapLowerCamel lower-cases the first word's first letter and
	// capitalizes the rest.
	CapLowerCamel Capitalization = "lower-camel"

	// CapFlat lower-cases every word's first letter.
	CapFlat Capitalization = "flat"

	// CapNone leaves every word untouched.
	CapNone Capitalization = "none"
)

// ParseCapitalization validates a scheme name from configuration.
func ParseCapitalization(s string) (Capitalization, error) {
	switch Capitalization(s) {
	case CapUpperCamel, CapLowerCamel, CapFlat, CapNone:
		return Capitalization(s), nil
	}
	return "", errors.New(errors.ErrCodeInvalidConfig,
		"invalid capitalization scheme: %q (must be 'upper-camel', 'lower-camel', 'flat', or 'none')", s)
}

// BlanketMode is the default treatment of metacharacters that have no
// explicit per-character substitution.
type BlanketMode string

const (
	// BlanketNone leaves unconfigured metacharacters untreated; a label
	// containing one fails sanitization.
	BlanketNone BlanketMode = "none"

	// BlanketRemove deletes unconfigured metacharacters.
	BlanketRemove BlanketMode = "remove"

	// BlanketURLEscape percent-encodes unconfigured metacharacters.
	BlanketURLEscape BlanketMode = "url-escape"
)

// ParseBlanketMode validates a blanket mode name from configuration.
func ParseBlanketMode(s string) (BlanketMode, error) {
	switch BlanketMode(s) {
	case BlanketNone, BlanketRemove, BlanketURLEscape:
		return BlanketMode(s), nil
	}
	return "", errors.New(errors.ErrCodeInvalidConfig,
		"invalid metacharacter mode: %q (must be 'none', 'remove', or 'url-escape')", s)
}

// Metacharacters is the fixed set of characters that are illegal in
// identifiers. Every occurrence in a label must be covered by an explicit
// substitution or the blanket mode.
var Metacharacters = []string{"(", ")", "[", "]", "/", ",", ":", ".", "'", `"`}

// Sanitizer turns raw labels into syntactically legal identifier tokens.
// Blanket mode and per-character overrides are two independent layers: an
// explicit substitution always wins, the blanket mode covers the rest.
//
// Sanitizers are pure values; the same configuration always yields the same
// output for a given label.
type Sanitizer struct {
	// Scheme selects the capitalization applied to words.
	Scheme Capitalization

	// Joiner is the string placed between words. Nil means unconfigured:
	// a label containing spaces then fails sanitization.
	Joiner *string

	// Blanket covers metacharacters with no explicit substitution.
	Blanket BlanketMode

	// Substitutions maps individual metacharacters to their replacements.
	Substitutions map[string]string
}

// Sanitize converts a raw label into a legal identifier, applying
// metacharacter substitutions first and word capitalization second.
func (s Sanitizer) Sanitize(label string) (string, error) {
	treated, err := s.replaceMetacharacters(label)
	if err != nil {
		return "", err
	}

	if !strings.ContainsAny(treated, " \t\n") {
		return s.capitalizeSingle(treated), nil
	}

	if s.Joiner == nil {
		return "", errors.New(errors.ErrCodeUntreatedSpace,
			"the label %q contains spaces but no word joiner is configured", label)
	}
	words := strings.Fields(treated)
	for i, w := range words {
		words[i] = s.capitalizeWord(w, i)
	}
	return strings.Join(words, *s.Joiner), nil
}

func (s Sanitizer) replaceMetacharacters(label string) (string, error) {
	out := label
	for _, meta := range Metacharacters {
		if !strings.Contains(out, meta) {
			continue
		}
		if sub, ok := s.Substitutions[meta]; ok {
			out = strings.ReplaceAll(out, meta, sub)
			continue
		}
		switch s.Blanket {
		case BlanketRemove:
			out = strings.ReplaceAll(out, meta, "")
		case BlanketURLEscape:
			out = strings.ReplaceAll(out, meta, percentEscape(meta))
		default:
			return "", errors.New(errors.ErrCodeUntreatedMetacharacter,
				"the label %q contains the metacharacter %q, for which no substitution is configured", label, meta)
		}
	}
	return out, nil
}

// capitalizeWord applies the scheme to the i-th word of a multi-word label.
func (s Sanitizer) capitalizeWord(word string, i int) string {
	switch s.Scheme {
	case CapUpperCamel:
		return upperFirst(word)
	case CapLowerCamel:
		if i == 0 {
			return lowerFirst(word)
		}
		return upperFirst(word)
	case CapFlat:
		return lowerFirst(word)
	default:
		return word
	}
}

// capitalizeSingle applies the scheme to a label with no spaces. A single
// word is still the first word, so its first letter follows the scheme.
func (s Sanitizer) capitalizeSingle(word string) string {
	switch s.Scheme {
	case CapUpperCamel:
		return upperFirst(word)
	case CapLowerCamel, CapFlat:
		return lowerFirst(word)
	default:
		return word
	}
}

func upperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

func lowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToLower(r)) + s[size:]
}

// percentEscape percent-encodes a single metacharacter. All metacharacters
// are single ASCII bytes; url.QueryEscape is unsuitable because it leaves
// unreserved characters such as '.' untouched.
func percentEscape(meta string) string {
	return fmt.Sprintf("%%%02X", meta[0])
}
