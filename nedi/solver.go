// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package nedi

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// SolverConfig holds the thresholds of the weight solver.
//
// The normal equations G w = b are solved directly when G is comfortably
// non-singular. Otherwise a ridge term is added to the diagonal of G and the
// solve is retried; if that fails too the weights fall back to a plain
// average of the neighborhood.
type SolverConfig struct {
	// MinDeterminant is the smallest det(G) accepted for a direct solve.
	MinDeterminant float64
	// MaxCondition is the largest condition number accepted for a direct solve.
	MaxCondition float64
	// Ridge scales the regularization added to the diagonal of G, relative to
	// its mean diagonal entry plus one.
	Ridge float64
}

// DefaultSolverConfig returns the thresholds used when Options.Solver is
// left zero.
func DefaultSolverConfig() SolverConfig {
	return SolverConfig{
		MinDeterminant: 0x1p-52, // float64 machine epsilon
		MaxCondition:   1e12,
		Ridge:          1e-6,
	}
}

func (c SolverConfig) validate() error {
	for _, v := range []float64{c.MinDeterminant, c.MaxCondition, c.Ridge} {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return fmt.Errorf("%w: %+v", ErrInvalidSolverConfig, c)
		}
	}
	if c.Ridge == 0 {
		return fmt.Errorf("%w: ridge must be positive", ErrInvalidSolverConfig)
	}
	return nil
}

// solvePath records how a weight vector was obtained.
type solvePath int

const (
	solveExact solvePath = iota
	solveRegularized
	solveUniform
)

func (p solvePath) String() string {
	switch p {
	case solveExact:
		return "exact"
	case solveRegularized:
		return "regularized"
	case solveUniform:
		return "uniform"
	default:
		return "unknown"
	}
}

// uniformWeights average the prediction neighborhood.
var uniformWeights = [4]float64{0.25, 0.25, 0.25, 0.25}

// solver fits the four regression weights of one target. It keeps its gonum
// workspaces between targets and must not be shared between goroutines.
type solver struct {
	cfg  SolverConfig
	g    mat.SymDense
	reg  mat.SymDense
	b    mat.VecDense
	w    mat.VecDense
	chol mat.Cholesky
}

func newSolver(cfg SolverConfig) *solver {
	s := &solver{cfg: cfg}
	s.g.ReuseAsSym(4)
	s.reg.ReuseAsSym(4)
	s.b.ReuseAsVec(4)
	s.w.ReuseAsVec(4)
	return s
}

// solve returns convex weights for the training window win.
func (s *solver) solve(win *window) ([4]float64, solvePath) {
	n := len(win.y)
	a := mat.NewDense(n, 4, win.a)
	y := mat.NewVecDense(n, win.y)

	// G = AᵗA, b = Aᵗy
	s.g.SymOuterK(1, a.T())
	s.b.MulVec(a.T(), y)

	if s.chol.Factorize(&s.g) &&
		s.chol.Det() > s.cfg.MinDeterminant &&
		s.chol.Cond() <= s.cfg.MaxCondition {
		if w, ok := s.solveChol(); ok {
			return normalizeWeights(w), solveExact
		}
	}

	lambda := s.cfg.Ridge * (mat.Trace(&s.g)/4 + 1)
	s.reg.CopySym(&s.g)
	for i := range 4 {
		s.reg.SetSym(i, i, s.reg.At(i, i)+lambda)
	}
	if s.chol.Factorize(&s.reg) {
		if w, ok := s.solveChol(); ok {
			return normalizeWeights(w), solveRegularized
		}
	}

	return uniformWeights, solveUniform
}

// solveChol solves against the current factorization and rejects
// non-finite results.
func (s *solver) solveChol() ([4]float64, bool) {
	var w [4]float64
	if err := s.chol.SolveVecTo(&s.w, &s.b); err != nil {
		// A condition warning still carries a usable solution.
		var cond mat.Condition
		if !errors.As(err, &cond) {
			return w, false
		}
	}
	for i := range w {
		w[i] = s.w.AtVec(i)
	}
	if !finite(w[:]) {
		return w, false
	}
	return w, true
}

// normalizeWeights turns raw regression weights into a convex combination:
// the most negative weight is shifted to zero and the result divided by its
// sum. A zero sum yields uniform weights.
func normalizeWeights(w [4]float64) [4]float64 {
	lo := min(0, floats.Min(w[:]))
	for i := range w {
		w[i] -= lo
	}
	sum := floats.Sum(w[:])
	if !(sum > 0) || math.IsInf(sum, 0) {
		return uniformWeights
	}
	floats.Scale(1/sum, w[:])
	return w
}

func finite(s []float64) bool {
	for _, v := range s {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
