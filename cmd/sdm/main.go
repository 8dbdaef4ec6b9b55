// Command sdm computes standard bases of polynomial systems described in
// YAML files and converts them between monomial orders.
//
//	sdm groebner testdata/hyperbola.yaml --extended
//	sdm fglm testdata/hyperbola.yaml --to lex
//	sdm staircase testdata/hyperbola.yaml
//
// See package internal/system for the file format.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// app carries the state shared by all subcommands of one invocation.
type app struct {
	verbose bool
	asYAML  bool
	logger  *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{logger: zap.NewNop()}
	root := &cobra.Command{
		Use:   "sdm",
		Short: "Standard bases of submodules of free modules over polynomial rings",
		Long: `sdm reads a polynomial system (variables, monomial order, coefficient field
and generators as explicit term lists) from a YAML file and computes with it:

  groebner   minimal standard basis, optionally with transition coefficients
  fglm       reduced standard basis under another order via FGLM
  staircase  monomial basis and dimension of the quotient`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config := zap.NewProductionConfig()
			if a.verbose {
				config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			logger, err := config.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			a.logger = logger

			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log every critical pair and relation at debug level")
	root.PersistentFlags().BoolVar(&a.asYAML, "yaml", false, "print results as a YAML system instead of text")

	root.AddCommand(a.groebnerCmd(), a.fglmCmd(), a.staircaseCmd())

	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
