// Package pipeline provides the core conversion pipeline for ricodraw.
//
// The pipeline consists of three stages:
//
//  1. Interpret: parse the draw.io XML and classify cells into individuals,
//     arrows, and literal shapes
//  2. Resolve: turn every arrow edge into a typed fact by resolving its
//     endpoints
//  3. Emit: assemble facts into per-entity blocks and serialize them as OWL
//     Manchester syntax
//
// Centralizing this logic keeps the convert and graph commands consistent.
//
// # Usage
//
//	opts := pipeline.Options{Strict: true}
//	result, err := pipeline.Convert(data, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Print(result.Output)
package pipeline

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/ricodraw/ricodraw/pkg/drawio"
	"github.com/ricodraw/ricodraw/pkg/errors"
	"github.com/ricodraw/ricodraw/pkg/owl"
	"github.com/ricodraw/ricodraw/pkg/rico"
)

// Options contains all configuration for the conversion pipeline.
type Options struct {
	// Resolution options
	Strict bool
	MaxGap float64

	// Identifier sanitization
	Sanitizer owl.Sanitizer

	// Serialization options
	DisableTypeInference bool
	OmitPreamble         bool
	OmitLabels           bool
	OntologyIRI          string
	Prefix               string
	PrefixIRI            string
	Indentation          int

	// Vocabulary overrides the built-in RiC-O vocabulary when non-empty.
	Vocabulary rico.Vocabulary

	// Logger receives stage progress; nil discards it.
	Logger *log.Logger

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Output is the serialized OWL Manchester syntax document.
	Output string

	// Individuals and Arrows are the interpreted diagram records, kept for
	// alternative renderings of the same parse.
	Individuals []drawio.Individual
	Arrows      []drawio.Arrow

	// Stats summarizes what the run produced.
	Stats Stats
}

// Stats contains conversion statistics.
type Stats struct {
	Individuals int
	Relations   int
	Blocks      int
}

// ValidateAndSetDefaults checks option values and applies defaults.
// This method is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.MaxGap < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "max gap must not be negative: %g", o.MaxGap)
	}
	if o.MaxGap == 0 {
		o.MaxGap = drawio.DefaultMaxGap
	}
	if o.Indentation < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "indentation must not be negative: %d", o.Indentation)
	}
	if o.Indentation == 0 {
		o.Indentation = owl.DefaultIndentation
	}
	if o.Sanitizer.Scheme == "" {
		o.Sanitizer.Scheme = owl.CapUpperCamel
	}
	if o.Sanitizer.Joiner == nil {
		joiner := ""
		o.Sanitizer.Joiner = &joiner
	}
	if o.Vocabulary.IsEmpty() {
		o.Vocabulary = rico.Default()
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}

// Convert runs the complete pipeline on raw draw.io XML.
func Convert(data []byte, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	logger := opts.Logger

	logger.Debug("interpreting diagram", "bytes", len(data))
	tree, err := drawio.Interpret(data, opts.Vocabulary)
	if err != nil {
		return nil, err
	}
	individuals := tree.Individuals()
	logger.Debug("classified cells", "individuals", len(individuals))

	arrows, err := tree.Arrows(drawio.ResolveOptions{Strict: opts.Strict, MaxGap: opts.MaxGap})
	if err != nil {
		return nil, err
	}
	logger.Debug("resolved arrows", "relations", len(arrows))

	blocks, err := owl.Assemble(individuals, arrows, opts.Vocabulary, opts.Sanitizer)
	if err != nil {
		return nil, err
	}
	logger.Debug("assembled blocks", "blocks", blocks.Len())

	output := owl.Serialize(blocks, owl.Config{
		DisableTypeInference: opts.DisableTypeInference,
		OmitPreamble:         opts.OmitPreamble,
		OmitLabels:           opts.OmitLabels,
		OntologyIRI:          opts.OntologyIRI,
		Prefix:               opts.Prefix,
		PrefixIRI:            opts.PrefixIRI,
		Indentation:          opts.Indentation,
	})

	return &Result{
		Output:      output,
		Individuals: individuals,
		Arrows:      arrows,
		Stats: Stats{
			Individuals: len(individuals),
			Relations:   len(arrows),
			Blocks:      blocks.Len(),
		},
	}, nil
}

// Interpret runs only the first two stages, returning the classified
// individuals and resolved arrows without serializing them. The graph
// command uses this to render a node-link view of the diagram.
func Interpret(data []byte, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	tree, err := drawio.Interpret(data, opts.Vocabulary)
	if err != nil {
		return nil, err
	}
	individuals := tree.Individuals()
	arrows, err := tree.Arrows(drawio.ResolveOptions{Strict: opts.Strict, MaxGap: opts.MaxGap})
	if err != nil {
		return nil, err
	}
	return &Result{
		Individuals: individuals,
		Arrows:      arrows,
		Stats:       Stats{Individuals: len(individuals), Relations: len(arrows)},
	}, nil
}
