package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/ricodraw/ricodraw/pkg/buildinfo"
)

// Execute runs the ricodraw CLI and returns an error if any command fails.
// This is the main entry point for the CLI application.
//
// Logging:
//   - Default: info level (logs to stderr)
//   - With --verbose (-v): debug level
//
// The logger is attached to the context and accessible to all commands via
// loggerFromContext.
func Execute(ctx context.Context) error {
	var verbose bool

	root := &cobra.Command{
		Use:          "ricodraw",
		Short:        "ricodraw converts draw.io diagrams into RiC-O ontology individuals",
		Long:         `ricodraw reads draw.io (mxGraph) XML and emits OWL Manchester syntax individuals typed against Records in Contexts (RiC-O), turning boxes into individuals and arrows into facts.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(os.Stderr, level)))
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newConvertCmd())
	root.AddCommand(newGraphCmd())

	return root.ExecuteContext(ctx)
}
