package main

import (
	"errors"
	"fmt"
	"io"
	"runtime"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/householder/hilbert"
	"github.com/katalvlaran/householder/matrix"
	"github.com/katalvlaran/householder/report"
)

var version = "0.1.0"

// app carries the state shared by the subcommands.
type app struct {
	configPath string
	flags      Config // values bound to flags; applied only when set
	cfg        Config // effective configuration
	n          int    // solve --n
	logger     *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{logger: zap.NewNop()}
	def := DefaultConfig()

	root := &cobra.Command{
		Use:   "hilbertqr",
		Short: "Householder QR solver study on Hilbert matrices",
		Long: `hilbertqr decomposes Hilbert matrices with Householder reflections,
solves H·x = 1 and reports the decomposition residual (err1) and the
solution residual (err2) for each order.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(*cobra.Command, []string) { _ = a.logger.Sync() },
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "Path to a YAML configuration file (${VAR} references are expanded)")
	pf.StringVar(&a.flags.Format, "format", def.Format, "Output format (text, json, yaml)")
	pf.BoolVar(&a.flags.TransposeQ, "transpose-q", def.TransposeQ, "Use Qᵀ instead of inverting Q")
	pf.Float64Var(&a.flags.ConditionLimit, "condition-limit", def.ConditionLimit, "Largest condition estimate accepted before a matrix counts as singular")
	pf.BoolVar(&a.flags.Verify, "verify", def.Verify, "Log whether R is upper-triangular and Q orthogonal for each size")
	pf.StringVar(&a.flags.Log.Level, "log-level", def.Log.Level, "Log level (debug, info, warn, error)")
	pf.StringVar(&a.flags.Log.Encoding, "log-encoding", def.Log.Encoding, "Log encoding (console, json)")

	root.AddCommand(newSolveCmd(a), newSweepCmd(a), newVersionCmd())

	return root
}

// setup resolves the effective configuration (defaults < file < flags) and
// builds the logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	a.cfg = DefaultConfig()
	if a.configPath != "" {
		if err := LoadConfig(a.configPath, &a.cfg); err != nil {
			return err
		}
	}
	a.applyFlags(cmd.Flags().Changed)
	if err := a.cfg.Validate(); err != nil {
		return err
	}

	logger, err := newLogger(a.cfg.Log)
	if err != nil {
		return err
	}
	a.logger = logger

	return nil
}

// applyFlags copies every flag the user set explicitly over the configuration.
func (a *app) applyFlags(changed func(name string) bool) {
	if changed("format") {
		a.cfg.Format = a.flags.Format
	}
	if changed("transpose-q") {
		a.cfg.TransposeQ = a.flags.TransposeQ
	}
	if changed("condition-limit") {
		a.cfg.ConditionLimit = a.flags.ConditionLimit
	}
	if changed("verify") {
		a.cfg.Verify = a.flags.Verify
	}
	if changed("log-level") {
		a.cfg.Log.Level = a.flags.Log.Level
	}
	if changed("log-encoding") {
		a.cfg.Log.Encoding = a.flags.Log.Encoding
	}
	if changed("from") {
		a.cfg.Sweep.From = a.flags.Sweep.From
	}
	if changed("to") {
		a.cfg.Sweep.To = a.flags.Sweep.To
	}
	if changed("plot") {
		a.cfg.Sweep.Plot = a.flags.Sweep.Plot
	}
}

// options translates the configuration into hilbert options.
func (a *app) options() []hilbert.Option {
	opts := []hilbert.Option{
		hilbert.WithConditionLimit(a.cfg.ConditionLimit),
		hilbert.WithLogger(a.logger),
	}
	if a.cfg.TransposeQ {
		opts = append(opts, hilbert.WithTransposeQ())
	}

	return opts
}

func newSolveCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve H·x = 1 for a single Hilbert order",
		Example: `  hilbertqr solve --n 5
  hilbertqr solve --n 14 --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := hilbert.Solve(a.n, a.options()...)
			switch {
			case errors.Is(err, matrix.ErrSingular):
				a.logger.Warn("singular system", zap.Int("n", a.n), zap.Error(err))
			case err != nil:
				return err
			}

			return a.emit(cmd.OutOrStdout(), []hilbert.Result{res})
		},
	}
	cmd.Flags().IntVar(&a.n, "n", 2, "Hilbert matrix order")

	return cmd
}

func newSweepCmd(a *app) *cobra.Command {
	def := DefaultConfig()
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Solve H·x = 1 for every order in a range",
		Example: `  hilbertqr sweep
  hilbertqr sweep --from 2 --to 12 --plot residuals.png`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s := a.cfg.Sweep
			results, err := hilbert.Sweep(s.From, s.To, a.options()...)
			if err != nil {
				return err
			}
			if s.Plot != "" {
				if err := report.WritePlot(s.Plot, results, report.DefaultPlotOptions()); err != nil {
					return err
				}
				a.logger.Info("plot written", zap.String("path", s.Plot))
			}

			return a.emit(cmd.OutOrStdout(), results)
		},
	}
	cmd.Flags().IntVar(&a.flags.Sweep.From, "from", def.Sweep.From, "First Hilbert order")
	cmd.Flags().IntVar(&a.flags.Sweep.To, "to", def.Sweep.To, "Last Hilbert order (inclusive)")
	cmd.Flags().StringVar(&a.flags.Sweep.Plot, "plot", def.Sweep.Plot, "Write a residual chart to this file (.png, .svg, .pdf)")

	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "hilbertqr v%s\n", version)
			fmt.Fprintf(out, "Go version: %s\n", runtime.Version())
			fmt.Fprintf(out, "OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
		},
	}
}

// emit runs the optional verification and writes results in the configured format.
func (a *app) emit(w io.Writer, results []hilbert.Result) error {
	if a.cfg.Verify {
		a.verify(results)
	}
	switch a.cfg.Format {
	case formatJSON:
		return report.WriteJSON(w, results)
	case formatYAML:
		return report.WriteYAML(w, results)
	default:
		return report.WriteText(w, results)
	}
}

func (a *app) verify(results []hilbert.Result) {
	for _, r := range results {
		if r.Decomposition == nil {
			continue
		}
		c, err := r.Decomposition.Verify(matrix.DefaultEpsilon)
		if err != nil {
			a.logger.Error("verify failed", zap.Int("n", r.N), zap.Error(err))
			continue
		}
		a.logger.Info("verify",
			zap.Int("n", r.N),
			zap.Bool("upper_triangular", c.UpperTriangular),
			zap.Bool("orthogonal", c.Orthogonal),
		)
	}
}
