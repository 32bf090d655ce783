// SPDX-License-Identifier: MIT

// Package config loads linear-system problem files for the linsys command.
//
// A problem file is YAML:
//
//	method: gauss          # auto | gauss | tridiagonal | iteration
//	epsilon: 1e-6          # iteration stopping tolerance
//	max_iterations: 10000
//	zero_tolerance: 1e-9   # pivot / diagonal / denominator threshold
//	pivot: false           # always pick the largest pivot
//	matrix:
//	  - [2, 1]
//	  - [1, 3]
//	rhs: [3, 5]
//
// Omitted scalar keys keep their DefaultProblem values.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/katalvlaran/linsys/linsys"
	"gopkg.in/yaml.v3"
)

// Method names accepted in problem files and on the command line.
const (
	MethodAuto        = "auto"
	MethodGauss       = "gauss"
	MethodTridiagonal = "tridiagonal"
	MethodIteration   = "iteration"
)

const (
	DefaultMethod        = MethodAuto
	DefaultEpsilon       = 1e-6
	DefaultMaxIterations = linsys.DefaultMaxIterations
	DefaultZeroTolerance = linsys.DefaultEpsilon
)

var (
	// ErrInvalidProblem wraps every validation failure of a problem file.
	ErrInvalidProblem = errors.New("config: invalid problem")

	// ErrUnknownMethod is returned for a method name outside the Method* set.
	ErrUnknownMethod = errors.New("config: unknown method")
)

// Problem is one linear system together with the solver settings.
type Problem struct {
	Method        string      `yaml:"method"`
	Epsilon       float64     `yaml:"epsilon"`
	MaxIterations int         `yaml:"max_iterations"`
	ZeroTolerance float64     `yaml:"zero_tolerance"`
	Pivot         bool        `yaml:"pivot"`
	Matrix        [][]float64 `yaml:"matrix"`
	RHS           []float64   `yaml:"rhs"`
}

// DefaultProblem returns a Problem with every scalar setting at its default
// and no data.
func DefaultProblem() *Problem {
	return &Problem{
		Method:        DefaultMethod,
		Epsilon:       DefaultEpsilon,
		MaxIterations: DefaultMaxIterations,
		ZeroTolerance: DefaultZeroTolerance,
	}
}

// Load reads and validates the problem file at path.
func Load(path string) (*Problem, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return Parse(data)
}

// Parse decodes YAML over DefaultProblem and validates the result.
func Parse(data []byte) (*Problem, error) {
	p := DefaultProblem()
	if err := yaml.Unmarshal(data, p); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	return p, nil
}

// ValidateMethod reports whether name is one of the Method* constants.
func ValidateMethod(name string) error {
	switch name {
	case MethodAuto, MethodGauss, MethodTridiagonal, MethodIteration:
		return nil
	}

	return fmt.Errorf("%w: %q", ErrUnknownMethod, name)
}

// Validate checks the settings and the shape of the data. Row count and RHS
// length must agree; squareness is left to the solvers, which report it
// with their own sentinel.
func (p *Problem) Validate() error {
	if err := ValidateMethod(p.Method); err != nil {
		return err
	}
	if !isPositiveFinite(p.Epsilon) {
		return fmt.Errorf("%w: epsilon must be finite and > 0, got %g", ErrInvalidProblem, p.Epsilon)
	}
	if p.MaxIterations <= 0 {
		return fmt.Errorf("%w: max_iterations must be > 0, got %d", ErrInvalidProblem, p.MaxIterations)
	}
	if math.IsNaN(p.ZeroTolerance) || math.IsInf(p.ZeroTolerance, 0) || p.ZeroTolerance < 0 {
		return fmt.Errorf("%w: zero_tolerance must be finite and >= 0, got %g", ErrInvalidProblem, p.ZeroTolerance)
	}
	if len(p.Matrix) == 0 {
		return fmt.Errorf("%w: matrix is empty", ErrInvalidProblem)
	}
	if len(p.RHS) != len(p.Matrix) {
		return fmt.Errorf("%w: %d matrix rows but %d rhs entries", ErrInvalidProblem, len(p.Matrix), len(p.RHS))
	}

	return nil
}

// Options converts the settings into linsys options.
func (p *Problem) Options() []linsys.Option {
	opts := []linsys.Option{
		linsys.WithEpsilon(p.ZeroTolerance),
		linsys.WithMaxIterations(p.MaxIterations),
	}
	if p.Pivot {
		opts = append(opts, linsys.WithPartialPivoting())
	}

	return opts
}

// System builds the linear system described by p.
func (p *Problem) System() (*linsys.System, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	return linsys.NewFromData(p.Matrix, p.RHS, p.Options()...)
}

func isPositiveFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v > 0
}
