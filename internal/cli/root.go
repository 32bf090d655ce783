// SPDX-License-Identifier: MIT

package cli

import (
	"io"

	"github.com/katalvlaran/linsys/internal/config"
	"github.com/katalvlaran/linsys/internal/logging"
	"github.com/spf13/cobra"
)

type rootFlags struct {
	logLevel string
	logJSON  bool
}

type problemFlags struct {
	file    string
	method  string
	eps     float64
	maxIter int
	pivot   bool
	zeroTol float64
}

// NewRootCommand builds the linsys command tree. Results go to out, log
// records to errOut.
func NewRootCommand(out, errOut io.Writer) *cobra.Command {
	var (
		rf  rootFlags
		log logging.Logger = logging.Nop()
	)

	rootCmd := &cobra.Command{
		Use:           "linsys",
		Short:         "dense linear system solver",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log = logging.NewLogger(errOut, rf.logLevel, rf.logJSON)
		},
	}
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)
	rootCmd.PersistentFlags().StringVar(&rf.logLevel, "log-level", "info", "log level (debug, info, warn, error, disabled)")
	rootCmd.PersistentFlags().BoolVar(&rf.logJSON, "log-json", false, "emit JSON log records")

	var solveFlags problemFlags
	solveCmd := &cobra.Command{
		Use:   "solve",
		Short: "solve A·x = b from a problem file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadProblem(cmd, &solveFlags)
			if err != nil {
				return logFailure(log, "solve", err)
			}

			return logFailure(log, "solve", RunSolve(out, log, p))
		},
	}
	addProblemFlags(solveCmd, &solveFlags)
	solveCmd.Flags().StringVar(&solveFlags.method, "method", config.DefaultMethod, "auto, gauss, tridiagonal or iteration")
	solveCmd.Flags().Float64Var(&solveFlags.eps, "eps", config.DefaultEpsilon, "iteration stopping tolerance")
	solveCmd.Flags().IntVar(&solveFlags.maxIter, "max-iter", config.DefaultMaxIterations, "iteration cap")
	solveCmd.Flags().BoolVar(&solveFlags.pivot, "pivot", false, "always choose the largest pivot")

	var invertFlags problemFlags
	invertCmd := &cobra.Command{
		Use:   "invert",
		Short: "print the inverse of the problem matrix",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadProblem(cmd, &invertFlags)
			if err != nil {
				return logFailure(log, "invert", err)
			}

			return logFailure(log, "invert", RunInvert(out, log, p))
		},
	}
	addProblemFlags(invertCmd, &invertFlags)
	invertCmd.Flags().BoolVar(&invertFlags.pivot, "pivot", false, "always choose the largest pivot")

	var detFlags problemFlags
	detCmd := &cobra.Command{
		Use:   "det",
		Short: "print the determinant of the problem matrix",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadProblem(cmd, &detFlags)
			if err != nil {
				return logFailure(log, "det", err)
			}

			return logFailure(log, "det", RunDet(out, log, p))
		},
	}
	addProblemFlags(detCmd, &detFlags)

	var (
		v      float64
		radius int
		eps    float64
	)
	sineCmd := &cobra.Command{
		Use:   "sine",
		Short: "tabulate the Taylor approximation of sin(v·i) for |i| <= radius",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return logFailure(log, "sine", RunSine(out, log, v, radius, eps))
		},
	}
	sineCmd.Flags().Float64Var(&v, "v", 1, "step between sample points")
	sineCmd.Flags().IntVar(&radius, "radius", 5, "number of steps on each side of zero")
	sineCmd.Flags().Float64Var(&eps, "eps", 0.1, "stop once a term is smaller than eps")

	rootCmd.AddCommand(solveCmd, invertCmd, detCmd, sineCmd)

	return rootCmd
}

func addProblemFlags(cmd *cobra.Command, f *problemFlags) {
	cmd.Flags().StringVarP(&f.file, "file", "f", "", "problem file (yaml)")
	cmd.Flags().Float64Var(&f.zeroTol, "zero-tol", config.DefaultZeroTolerance, "pivot and diagonal zero threshold")
	_ = cmd.MarkFlagRequired("file")
}

// loadProblem reads the problem file and applies the flags the user set
// explicitly; unset flags leave the file's values alone.
func loadProblem(cmd *cobra.Command, f *problemFlags) (*config.Problem, error) {
	p, err := config.Load(f.file)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("method") {
		p.Method = f.method
	}
	if flags.Changed("eps") {
		p.Epsilon = f.eps
	}
	if flags.Changed("max-iter") {
		p.MaxIterations = f.maxIter
	}
	if flags.Changed("pivot") {
		p.Pivot = f.pivot
	}
	if flags.Changed("zero-tol") {
		p.ZeroTolerance = f.zeroTol
	}
	if err = p.Validate(); err != nil {
		return nil, err
	}

	return p, nil
}

func logFailure(log logging.Logger, op string, err error) error {
	if err != nil {
		log.Error("command failed", err, logging.String("command", op))
	}

	return err
}
