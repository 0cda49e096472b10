package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/ricodraw/ricodraw/pkg/pipeline"
)

// convertOpts holds the command-line flags for the convert command.
type convertOpts struct {
	output       string  // output file path; empty means stdout
	rulesFile    string  // optional TOML ruleset file
	strict       bool    // require explicit arrow endpoint links
	maxGap       float64 // proximity tolerance in pixels
	indentation  int     // output indentation width
	noPreamble   bool    // suppress the prefix/ontology/import header
	noInferTypes bool    // emit all literals as untyped strings
	noLabels     bool    // suppress rdfs:label annotations
	ontologyIRI  string  // ontology IRI override
	prefix       string  // identifier prefix
	prefixIRI    string  // IRI bound to the identifier prefix

	sanitizer sanitizerOpts
}

// newConvertCmd creates the convert command, the main entry point of the
// tool. It reads draw.io XML from a file argument or stdin and writes OWL
// Manchester syntax to --output or stdout.
func newConvertCmd() *cobra.Command {
	opts := convertOpts{
		maxGap:      10,
		indentation: 2,
		sanitizer: sanitizerOpts{
			capitalization: "upper-camel",
			wordJoiner:     "",
			metacharacters: "none",
		},
	}

	cmd := &cobra.Command{
		Use:   "convert [file]",
		Short: "Convert a draw.io diagram to OWL Manchester syntax",
		Long: `Convert reads a draw.io (mxGraph) XML diagram and emits OWL Manchester
syntax individuals typed against RiC-O. When no file is given, the diagram
is read from stdin.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := ""
			if len(args) == 1 {
				input = args[0]
			}
			return runConvert(cmd, input, &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "require every arrow to be explicitly locked to its endpoints")
	cmd.Flags().Float64Var(&opts.maxGap, "max-gap", opts.maxGap, "proximity tolerance in pixels for unlocked arrow endpoints")
	cmd.Flags().IntVar(&opts.indentation, "indentation", opts.indentation, "output indentation width")
	cmd.Flags().BoolVar(&opts.noPreamble, "no-preamble", false, "omit the prefix/ontology/import preamble")
	cmd.Flags().BoolVar(&opts.noInferTypes, "no-infer-types", false, "emit all literal values as untyped strings")
	cmd.Flags().BoolVar(&opts.noLabels, "no-labels", false, "omit rdfs:label annotations")
	cmd.Flags().StringVar(&opts.ontologyIRI, "ontology-iri", "", "ontology IRI (default: a generated timestamped IRI)")
	cmd.Flags().StringVar(&opts.prefix, "prefix", "", "prefix prepended to every generated identifier")
	cmd.Flags().StringVar(&opts.prefixIRI, "prefix-iri", "", "IRI bound to --prefix (default: ontology IRI + '#')")
	addSanitizerFlags(cmd, &opts.sanitizer, &opts.rulesFile)

	return cmd
}

func runConvert(cmd *cobra.Command, input string, opts *convertOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	data, err := readInput(input)
	if err != nil {
		return err
	}

	san, err := resolveSanitizer(cmd, &opts.sanitizer, opts.rulesFile)
	if err != nil {
		return err
	}

	result, err := pipeline.Convert(data, pipeline.Options{
		Strict:               opts.strict,
		MaxGap:               opts.maxGap,
		Sanitizer:            san,
		DisableTypeInference: opts.noInferTypes,
		OmitPreamble:         opts.noPreamble,
		OmitLabels:           opts.noLabels,
		OntologyIRI:          opts.ontologyIRI,
		Prefix:               opts.prefix,
		PrefixIRI:            opts.prefixIRI,
		Indentation:          opts.indentation,
		Logger:               logger,
	})
	if err != nil {
		return err
	}

	out, err := openOutput(opts.output)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.WriteString(out, result.Output); err != nil {
		return err
	}

	if opts.output != "" {
		prog.done(fmt.Sprintf("Converted %s", inputName(input)))
		printSuccess("Wrote ontology document")
		printFile(opts.output)
		printStats(result.Stats.Individuals, result.Stats.Relations, result.Stats.Blocks)
	} else {
		logger.Debugf("converted %s: %d individuals, %d relations, %d blocks",
			inputName(input), result.Stats.Individuals, result.Stats.Relations, result.Stats.Blocks)
	}
	return nil
}

// readInput slurps the diagram XML from a file, or from stdin when path is
// empty.
func readInput(path string) ([]byte, error) {
	if path == "" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

func inputName(path string) string {
	if path == "" {
		return "stdin"
	}
	return path
}

// nopCloser wraps an io.Writer with a no-op Close method, making os.Stdout
// compatible with io.WriteCloser.
type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// openOutput returns a WriteCloser for the given path. If path is empty, it
// returns os.Stdout wrapped in nopCloser. Otherwise it creates the file at
// path, overwriting if it exists.
func openOutput(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{os.Stdout}, nil
	}
	return os.Create(path)
}
