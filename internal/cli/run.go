// SPDX-License-Identifier: MIT

// Package cli implements the linsys subcommands. Every runner writes its
// result to an io.Writer and reports diagnostics through a logging.Logger,
// so the commands are testable without a process boundary.
package cli

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/katalvlaran/linsys/internal/config"
	"github.com/katalvlaran/linsys/internal/logging"
	"github.com/katalvlaran/linsys/linsys"
	"github.com/katalvlaran/linsys/matrix"
	"github.com/katalvlaran/linsys/series"
)

// SelectMethod resolves config.MethodAuto for the coefficient matrix m:
// a strictly diagonally dominant tridiagonal matrix goes to the Thomas
// algorithm, everything else to elimination. Explicit methods pass through.
func SelectMethod(method string, m *matrix.Dense, eps float64) string {
	if method != config.MethodAuto {
		return method
	}
	if matrix.IsTridiagonal(m, eps) && matrix.IsDiagonallyDominant(m) {
		return config.MethodTridiagonal
	}

	return config.MethodGauss
}

// RunSolve solves p with its (resolved) method and prints one line per
// unknown: "x[i] = value".
//
// Parameters:
//   - out: destination of the solution vector.
//   - log: receives method, iteration count and residual.
//   - p: a validated problem.
//
// Returns:
//   - error: the solver's wrapped sentinel on failure.
func RunSolve(out io.Writer, log logging.Logger, p *config.Problem) error {
	s, err := p.System()
	if err != nil {
		return err
	}
	method := SelectMethod(p.Method, s.Matrix(), p.ZeroTolerance)
	log.Debug("problem loaded",
		logging.Int("rows", s.Size()),
		logging.Int("cols", s.Cols()),
		logging.String("requested", p.Method),
		logging.String("method", method),
	)

	var (
		x          []float64
		iterations int
	)
	switch method {
	case config.MethodGauss:
		x, err = s.SolveByElimination()
	case config.MethodTridiagonal:
		x, err = s.SolveTridiagonal()
	case config.MethodIteration:
		var res *linsys.IterationResult
		if res, err = s.Iterate(p.Epsilon); err == nil {
			x, iterations = res.X, res.Iterations
		}
	default:
		err = config.ValidateMethod(method)
	}
	if err != nil {
		return err
	}

	residual, err := s.Residual(x)
	if err != nil {
		return err
	}
	log.Info("solved",
		logging.String("method", method),
		logging.Int("iterations", iterations),
		logging.Float64("residual", residual),
	)

	return writeVector(out, "x", x)
}

// RunInvert prints the inverse of the problem's matrix in matrix.Dense
// String form. The RHS is ignored.
func RunInvert(out io.Writer, log logging.Logger, p *config.Problem) error {
	s, err := p.System()
	if err != nil {
		return err
	}
	inv, err := s.Invert()
	if err != nil {
		return err
	}

	orig := s.Matrix()
	prod, err := matrix.Mul(orig, inv)
	if err != nil {
		return err
	}
	id, err := matrix.NewIdentity(orig.Rows())
	if err != nil {
		return err
	}
	diff, err := matrix.MaxAbsDiff(prod, id)
	if err != nil {
		return err
	}
	log.Info("inverted", logging.Int("n", orig.Rows()), logging.Float64("identity_error", diff))

	return writeOut(out, inv.String()+"\n")
}

// RunDet prints the determinant of the problem's matrix. A singular matrix
// prints 0.
func RunDet(out io.Writer, log logging.Logger, p *config.Problem) error {
	s, err := p.System()
	if err != nil {
		return err
	}
	det, err := s.Determinant()
	if err != nil {
		return err
	}
	log.Debug("determinant", logging.Int("n", s.Size()), logging.Float64("det", det))

	return writeOut(out, formatFloat(det)+"\n")
}

// RunSine prints the Taylor sine table for x = v·i, i ∈ [-radius, radius],
// as aligned columns: x, partial sum, math.Sin, difference, term count.
func RunSine(out io.Writer, log logging.Logger, v float64, radius int, eps float64) error {
	table, err := series.SineTable(v, radius, eps)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "x\tS(x)\tsin(x)\tdelta\tterms")
	maxTerms := 0
	for _, a := range table {
		fmt.Fprintf(tw, "%s\t%.10f\t%.10f\t%.3e\t%d\n", formatFloat(a.X), a.Sum, a.Sum-a.Delta, a.Delta, a.Terms)
		if a.Terms > maxTerms {
			maxTerms = a.Terms
		}
	}
	log.Debug("sine table", logging.Int("points", len(table)), logging.Int("max_terms", maxTerms))

	return tw.Flush()
}

func writeVector(out io.Writer, name string, x []float64) error {
	for i, v := range x {
		if err := writeOut(out, fmt.Sprintf("%s[%d] = %s\n", name, i, formatFloat(v))); err != nil {
			return err
		}
	}

	return nil
}

// writeOut writes s to out, returning the write error.
func writeOut(out io.Writer, s string) error {
	_, err := io.WriteString(out, s)

	return err
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', 10, 64)
}
