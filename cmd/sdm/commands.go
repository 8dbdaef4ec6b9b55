package main

import (
	"fmt"
	"io"
	"math/big"
	"strings"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/holiman/uint256"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/groebner/domain"
	"github.com/katalvlaran/groebner/fglm"
	"github.com/katalvlaran/groebner/groebner"
	"github.com/katalvlaran/groebner/internal/system"
	"github.com/katalvlaran/groebner/sdm"
)

var reducers = map[string]groebner.Reducer{
	"auto":       groebner.ReducerAuto,
	"mora":       groebner.ReducerMora,
	"buchberger": groebner.ReducerBuchberger,
	"reduced":    groebner.ReducerReduced,
}

type groebnerFlags struct {
	extended bool
	reducer  string
	raw      bool
	maxPairs int
}

func (a *app) groebnerCmd() *cobra.Command {
	var f groebnerFlags
	cmd := &cobra.Command{
		Use:   "groebner FILE",
		Short: "Compute a minimal standard basis",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, ok := reducers[strings.ToLower(f.reducer)]
			if !ok {
				return fmt.Errorf("unknown reducer %q (auto, mora, buchberger, reduced)", f.reducer)
			}
			if f.maxPairs < 0 {
				return fmt.Errorf("--max-pairs must be >= 0, got %d", f.maxPairs)
			}
			opts := []groebner.Option{
				groebner.WithReducer(r),
				groebner.WithMonic(!f.raw),
				groebner.WithMaxPairs(f.maxPairs),
				groebner.WithLogger(a.logger),
			}
			if f.extended {
				opts = append(opts, groebner.WithExtended())
			}

			return a.dispatch(cmd, args[0], job{groebner: opts})
		},
	}
	cmd.Flags().BoolVarP(&f.extended, "extended", "e", false, "also print every basis element in terms of the generators")
	cmd.Flags().StringVar(&f.reducer, "reducer", "auto", "normal form: auto, mora, buchberger or reduced")
	cmd.Flags().BoolVar(&f.raw, "raw", false, "keep leading coefficients instead of normalizing to 1")
	cmd.Flags().IntVar(&f.maxPairs, "max-pairs", 0, "abort after this many critical pairs (0 = no limit)")

	return cmd
}

func (a *app) fglmCmd() *cobra.Command {
	var (
		to     string
		maxDim int
	)
	cmd := &cobra.Command{
		Use:   "fglm FILE",
		Short: "Compute a basis under the file's order, then convert it to another order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if maxDim < 0 {
				return fmt.Errorf("--max-dim must be >= 0, got %d", maxDim)
			}

			return a.dispatch(cmd, args[0], job{
				convert: true,
				target:  to,
				groebner: []groebner.Option{
					groebner.WithLogger(a.logger),
				},
				fglm: []fglm.Option{
					fglm.WithLogger(a.logger),
					fglm.WithMaxDimension(maxDim),
				},
			})
		},
	}
	cmd.Flags().StringVar(&to, "to", "", "target order, e.g. lex or top(grlex) (default: the file's target, else pot(lex))")
	cmd.Flags().IntVar(&maxDim, "max-dim", 0, "refuse quotients of larger dimension (0 = no limit)")

	return cmd
}

func (a *app) staircaseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "staircase FILE",
		Short: "Print the monomial basis of the quotient by the generated submodule",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.dispatch(cmd, args[0], job{
				staircase: true,
				groebner:  []groebner.Option{groebner.WithLogger(a.logger)},
			})
		},
	}
}

// job is what one subcommand asks of the pipeline: always a standard basis,
// then optionally an order conversion or a staircase listing.
type job struct {
	groebner  []groebner.Option
	fglm      []fglm.Option
	convert   bool
	target    string
	staircase bool
}

// dispatch loads the file and runs the job over the coefficient field the
// file names.
func (a *app) dispatch(cmd *cobra.Command, path string, j job) error {
	d, err := system.Load(path)
	if err != nil {
		return err
	}
	spec, err := system.ParseField(d.Field)
	if err != nil {
		return err
	}
	a.logger.Debug("system loaded",
		zap.String("path", path),
		zap.Strings("variables", d.Variables),
		zap.Int("generators", len(d.Generators)),
		zap.String("field", d.Field))

	switch spec.Kind {
	case system.Prime:
		gf, err := domain.NewPrimeField(spec.Modulus)
		if err != nil {
			return err
		}

		return run[uint256.Int](a, cmd.OutOrStdout(), d, gf, j)
	case system.Curve:
		return run[fr.Element](a, cmd.OutOrStdout(), d, domain.BN254{}, j)
	default:
		return run[*big.Rat](a, cmd.OutOrStdout(), d, domain.Rationals{}, j)
	}
}

func run[E any](a *app, w io.Writer, d *system.Description, k domain.FieldCodec[E], j job) error {
	mod, G, err := system.Build[E](d, k)
	if err != nil {
		return err
	}
	res, err := groebner.Compute(mod, G, j.groebner...)
	if err != nil {
		return err
	}

	switch {
	case j.convert:
		if j.target != "" {
			d = &system.Description{Variables: d.Variables, Order: d.Order, Field: d.Field, Target: j.target}
		}
		target, err := d.TargetOrder()
		if err != nil {
			return err
		}
		out, err := fglm.Convert(mod, res.Basis, target, j.fglm...)
		if err != nil {
			return err
		}
		header := *d
		header.Order, header.Target = target.String(), ""

		return emit[E](w, a.asYAML, &header, out, k)
	case j.staircase:
		basis, err := fglm.Staircase(mod, res.Basis)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "dimension %d\n", len(basis)); err != nil {
			return err
		}
		for _, m := range basis {
			if _, err := fmt.Fprintln(w, m.Format(d.Variables)); err != nil {
				return err
			}
		}

		return nil
	default:
		if err := emit[E](w, a.asYAML, d, res.Basis, k); err != nil {
			return err
		}
		if res.Coefficients == nil {
			return nil
		}
		// f_i in a coefficient vector stands for the i-th input generator
		if _, err := fmt.Fprintln(w, "coefficients:"); err != nil {
			return err
		}

		return system.Render[E](w, res.Coefficients, k, d.Variables)
	}
}

// emit prints F as text or, with --yaml, as a system over the header's
// variables, order and field.
func emit[E any](w io.Writer, asYAML bool, header *system.Description, F []sdm.Element[E], k domain.Codec[E]) error {
	if asYAML {
		return system.Describe[E](header, F, k).Encode(w)
	}

	return system.Render[E](w, F, k, header.Variables)
}
