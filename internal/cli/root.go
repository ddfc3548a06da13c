// Package cli implements the mstctl command tree.
package cli

import (
	"context"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/spanning/edgefile"
	"github.com/katalvlaran/spanning/internal/logutil"
)

// options holds the persistent flags and the logger built from them.
type options struct {
	logLevel string
	output   string
	log      *zap.Logger
}

// NewRootCmd returns a fresh mstctl command tree.
func NewRootCmd() *cobra.Command {
	o := &options{log: zap.NewNop()}
	root := &cobra.Command{
		Use:          "mstctl",
		Short:        "Build minimum spanning trees from weighted edge lists",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			log, err := logutil.New(o.logLevel, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			o.log = log
			return nil
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = o.log.Sync()
		},
	}

	root.PersistentFlags().StringVar(&o.logLevel, "log-level", "info", "log level: debug, info, warn, error")
	root.PersistentFlags().StringVarP(&o.output, "output", "o", "-", "file receiving edge lists, - for stdout")

	root.AddCommand(newBuildCmd(o), newCompareCmd(o), newGenerateCmd(o))

	return root
}

// Execute runs mstctl with the process arguments.
func Execute(ctx context.Context) error {
	return NewRootCmd().ExecuteContext(ctx)
}

// writeDoc sends doc to --output.
func (o *options) writeDoc(cmd *cobra.Command, doc *edgefile.Document) error {
	if o.output == "-" {
		return edgefile.Encode(cmd.OutOrStdout(), doc)
	}

	return edgefile.WriteFile(o.output, doc)
}
