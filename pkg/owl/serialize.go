package owl

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/ricodraw/ricodraw/pkg/rico"
)

// DefaultIndentation is the default output indentation width in spaces.
const DefaultIndentation = 2

// Config holds the user-configurable serialization parameters. The zero
// value enables type inference, the preamble, and label annotations; the
// Omit/Disable fields mirror the converter's disable flags.
type Config struct {
	// DisableTypeInference always quotes datatype values as untyped
	// strings instead of inferring xsd types.
	DisableTypeInference bool

	// OmitPreamble suppresses the prefix/ontology/import header.
	OmitPreamble bool

	// OmitLabels suppresses the rdfs:label annotation recording each
	// entity's original label.
	OmitLabels bool

	// OntologyIRI overrides the generated timestamp-based ontology IRI.
	OntologyIRI string

	// Prefix is prepended (with a colon) to every generated identifier.
	// Empty means no prefix.
	Prefix string

	// PrefixIRI is the IRI bound to Prefix. Empty defaults to the
	// ontology IRI with "#" appended.
	PrefixIRI string

	// Indentation is the indentation width in spaces; zero means
	// DefaultIndentation.
	Indentation int
}

// Serialize renders the assembled blocks as OWL Manchester syntax. Blocks
// appear in insertion order; within a block, types and facts are sorted so
// the output is deterministic. The result ends with exactly one newline and
// no trailing blank lines.
func Serialize(bs *BlockSet, cfg Config) string {
	indent := cfg.Indentation
	if indent <= 0 {
		indent = DefaultIndentation
	}

	var out strings.Builder
	if !cfg.OmitPreamble {
		out.WriteString(preamble(cfg, indent))
	}
	for _, block := range bs.Blocks() {
		writeBlock(&out, block, cfg, indent)
	}
	return strings.TrimRight(out.String(), "\n") + "\n"
}

func writeBlock(out *strings.Builder, block *Block, cfg Config, indent int) {
	pad := strings.Repeat(" ", indent)

	fmt.Fprintf(out, "Individual: %s%s\n", prefixString(cfg.Prefix), block.Key.ID)
	if !cfg.OmitLabels {
		fmt.Fprintf(out, "%sAnnotations: rdfs:label %s\n", pad, quote(block.Key.Label))
	}
	if len(block.Types) > 0 {
		fmt.Fprintf(out, "%sTypes: %s\n", pad, typesLine(block.Types))
	}
	if len(block.Facts) > 0 {
		fmt.Fprintf(out, "%sFacts:\n", pad)
		facts := factLines(block.Facts, cfg)
		doublePad := strings.Repeat(" ", indent*2)
		for i, fact := range facts {
			sep := ","
			if i == len(facts)-1 {
				sep = ""
			}
			fmt.Fprintf(out, "%s%s%s\n", doublePad, fact, sep)
		}
	}
	out.WriteString("\n")
}

func typesLine(types map[string]struct{}) string {
	names := make([]string, 0, len(types))
	for t := range types {
		names = append(names, rico.NamespacePrefix+t)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}

// factLines renders every property/value pair in property-then-value sorted
// order.
func factLines(facts map[string]*Fact, cfg Config) []string {
	properties := make([]string, 0, len(facts))
	for p := range facts {
		properties = append(properties, p)
	}
	sort.Strings(properties)

	var lines []string
	for _, p := range properties {
		fact := facts[p]
		values := make([]string, 0, len(fact.Values))
		for v := range fact.Values {
			values = append(values, v)
		}
		sort.Strings(values)
		for _, v := range values {
			lines = append(lines, fmt.Sprintf("%s%s %s", rico.NamespacePrefix, p, formatValue(v, fact.Literal, cfg)))
		}
	}
	return lines
}

func formatValue(value string, literal bool, cfg Config) string {
	if !literal {
		return prefixString(cfg.Prefix) + value
	}
	if cfg.DisableTypeInference {
		return quote(value)
	}
	return inferType(value)
}

// dateTimeLayouts are the accepted dateTime shapes: RFC 3339 and the
// dash-separated time variant draw.io authors tend to type by hand, each
// with an optional Z or ±hh:mm zone.
var dateTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15-04-05",
	"2006-01-02T15-04-05Z07:00",
}

// inferType tries integer, date, and dateTime patterns in that order,
// falling back to an untyped quoted string.
func inferType(literal string) string {
	if isInteger(literal) {
		return quote(literal) + "^^xsd:integer"
	}
	if _, err := time.Parse("2006-01-02", literal); err == nil {
		return quote(literal) + "^^xsd:date"
	}
	for _, layout := range dateTimeLayouts {
		if _, err := time.Parse(layout, literal); err == nil {
			return quote(literal) + "^^xsd:dateTime"
		}
	}
	return quote(literal)
}

func isInteger(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func quote(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	return `"` + s + `"`
}

func prefixString(prefix string) string {
	if prefix == "" {
		return ""
	}
	return prefix + ":"
}

// preamble declares the ontology vocabulary prefix, the ontology IRI
// (generated from the current time when not overridden), the active
// prefix/IRI pair, and the vocabulary import.
func preamble(cfg Config, indent int) string {
	ontologyIRI := cfg.OntologyIRI
	if ontologyIRI == "" {
		ontologyIRI = "ontology://generated-from-draw-io/" + time.Now().Format("2006-01-02T15-04-05")
	}
	prefixIRI := cfg.PrefixIRI
	if prefixIRI == "" {
		prefixIRI = ontologyIRI + "#"
	}
	pad := strings.Repeat(" ", indent)

	var out strings.Builder
	fmt.Fprintf(&out, "Prefix: %s <%s>\n", rico.NamespacePrefix, rico.OntologyIRI)
	fmt.Fprintf(&out, "Prefix: %s: <%s>\n", cfg.Prefix, prefixIRI)
	fmt.Fprintf(&out, "Ontology: <%s>\n", ontologyIRI)
	fmt.Fprintf(&out, "%sImport: <%s>\n\n", pad, rico.ImportIRI)
	return out.String()
}
