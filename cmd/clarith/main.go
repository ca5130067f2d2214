// Command clarith prints continued-logarithm expansions of exact values.
//
//	clarith table --upto 17
//	clarith ratio 5 3 --transform 1,1,0,1
//	clarith compare 1 3 2 5
//	clarith print --config values.yaml
//
// Expansions use one letter per symbol: N Z P for the specials, T R G for
// the primers, A U for the reductions and a final H for the remaining
// one-half.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"strconv"

	"github.com/katalvlaran/clarith/clog"
	"github.com/katalvlaran/clarith/compare"
	"github.com/spf13/cobra"
)

// app carries the flags shared by every subcommand.
type app struct {
	max     int
	verbose bool
	logger  *slog.Logger
}

func main() {
	if err := newRootCmd(os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd builds the command tree. Logs go to logOut.
func newRootCmd(logOut io.Writer) *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:          "clarith",
		Short:        "Print exact values in continued-logarithm form",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := slog.LevelInfo
			if a.verbose {
				level = slog.LevelDebug
			}
			a.logger = slog.New(slog.NewTextHandler(logOut, &slog.HandlerOptions{Level: level}))
			if a.max <= 0 {
				return fmt.Errorf("--max must be positive, got %d", a.max)
			}
			return nil
		},
	}
	root.PersistentFlags().IntVar(&a.max, "max", defaultMax, "maximum reductions printed per value")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(a.tableCmd(), a.ratioCmd(), a.compareCmd(), a.printCmd())
	return root
}

func (a *app) tableCmd() *cobra.Command {
	var upto int
	cmd := &cobra.Command{
		Use:   "table",
		Short: "Print n.0 and n.5 for n below --upto, then MaxInt, 1/MaxInt and -2",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for n := 0; n < upto; n++ {
				if err := a.line(out, fmt.Sprintf("%2d.0", n), n, 1); err != nil {
					return err
				}
				if err := a.line(out, fmt.Sprintf("%2d.5", n), 10*n+5, 10); err != nil {
					return err
				}
			}
			if err := a.line(out, strconv.Itoa(math.MaxInt), math.MaxInt, 1); err != nil {
				return err
			}
			if err := a.line(out, "1/"+strconv.Itoa(math.MaxInt), 1, math.MaxInt); err != nil {
				return err
			}
			return a.line(out, "-2", -2, 1)
		},
	}
	cmd.Flags().IntVar(&upto, "upto", 17, "number of integer rows")
	return cmd
}

// line prints "label: expansion" for num/den.
func (a *app) line(out io.Writer, label string, num, den int) error {
	v, err := clog.Ratio(num, den)
	if err != nil {
		return fmt.Errorf("%s: %w", label, err)
	}
	s, err := render(v, a.max)
	if err != nil {
		return fmt.Errorf("%s: %w", label, err)
	}
	a.logger.Debug("rendered", "label", label, "symbols", len(s))
	_, err = fmt.Fprintf(out, "%s: %s\n", label, s)
	return err
}

func (a *app) ratioCmd() *cobra.Command {
	var coef []int
	cmd := &cobra.Command{
		Use:   "ratio NUM DEN",
		Short: "Print NUM/DEN, optionally through (nx·x + n) / (dx·x + d)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ints, err := atoiAll(args)
			if err != nil {
				return err
			}
			spec := ValueSpec{Name: args[0] + "/" + args[1], Num: ints[0], Den: ints[1], Transform: coef}
			if err := spec.Validate(); err != nil {
				return err
			}
			return a.printSpec(cmd.OutOrStdout(), spec)
		},
	}
	cmd.Flags().IntSliceVar(&coef, "transform", nil, "homographic coefficients nx,n,dx,d")
	return cmd
}

func (a *app) compareCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "compare N1 D1 N2 D2",
		Short: "Print <, = or > for N1/D1 against N2/D2",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			ints, err := atoiAll(args)
			if err != nil {
				return err
			}
			x, err := clog.Ratio(ints[0], ints[1])
			if err != nil {
				return err
			}
			y, err := clog.Ratio(ints[2], ints[3])
			if err != nil {
				return err
			}
			o, err := compare.Compare(x, y)
			if err != nil {
				return err
			}
			a.logger.Debug("compared", "a", args[0]+"/"+args[1], "b", args[2]+"/"+args[3], "result", o.String())
			_, err = fmt.Fprintln(cmd.OutOrStdout(), o)
			return err
		},
	}
}

func (a *app) printCmd() *cobra.Command {
	var path string
	cmd := &cobra.Command{
		Use:   "print",
		Short: "Print every value listed in a YAML file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadConfig(path)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("max") || cfg.Max == 0 {
				cfg.Max = a.max
			}
			a.logger.Debug("loaded config", "path", path, "values", len(cfg.Values), "max", cfg.Max)
			sub := *a
			sub.max = cfg.Max
			for _, spec := range cfg.Values {
				if err := sub.printSpec(cmd.OutOrStdout(), spec); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&path, "config", "c", "", "YAML file listing values")
	_ = cmd.MarkFlagRequired("config")
	return cmd
}

func (a *app) printSpec(out io.Writer, spec ValueSpec) error {
	v, err := spec.Build()
	if err != nil {
		return fmt.Errorf("%s: %w", spec.Name, err)
	}
	s, err := render(v, a.max)
	if err != nil {
		return fmt.Errorf("%s: %w", spec.Name, err)
	}
	_, err = fmt.Fprintf(out, "%s: %s\n", spec.Name, s)
	return err
}

func atoiAll(args []string) ([]int, error) {
	ints := make([]int, len(args))
	for i, s := range args {
		n, err := strconv.Atoi(s)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i+1, err)
		}
		ints[i] = n
	}
	return ints, nil
}
