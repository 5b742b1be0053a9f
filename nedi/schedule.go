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
	"sync/atomic"

	"github.com/ajroetker/go-nedi/hwy/contrib/workerpool"
)

// state is a step of the lattice resolution.
type state int

const (
	stateDiagonal state = iota
	stateAxis
	stateDone
)

func (s state) String() string {
	switch s {
	case stateDiagonal:
		return "diagonal"
	case stateAxis:
		return "axis"
	case stateDone:
		return "done"
	default:
		return "unknown"
	}
}

// phase returns the phase resolved in state s.
func (s state) phase() *phase {
	switch s {
	case stateDiagonal:
		return &phases[diagonalPhase]
	case stateAxis:
		return &phases[axisPhase]
	default:
		return nil
	}
}

// Stats counts how the weight vectors of an upscale were obtained.
type Stats struct {
	// Exact solves passed the determinant and condition checks.
	Exact int64
	// Regularized solves needed the ridge term.
	Regularized int64
	// Uniform solves fell back to averaging the neighborhood.
	Uniform int64
}

// Total returns the number of weight vectors computed.
func (s Stats) Total() int64 {
	return s.Exact + s.Regularized + s.Uniform
}

func (s *Stats) add(o *Stats) {
	atomic.AddInt64(&s.Exact, o.Exact)
	atomic.AddInt64(&s.Regularized, o.Regularized)
	atomic.AddInt64(&s.Uniform, o.Uniform)
}

func (s *Stats) count(p solvePath) {
	switch p {
	case solveExact:
		s.Exact++
	case solveRegularized:
		s.Regularized++
	default:
		s.Uniform++
	}
}

// scheduler resolves a lattice in two phases. Cells of one phase are
// independent of each other and are spread over the pool by sub-grid row;
// the pool call returning is the barrier before the next phase.
type scheduler struct {
	lat      *lattice
	pool     *workerpool.Pool
	kernel   int
	perChan  bool
	solverCf SolverConfig
	stats    Stats

	// hook, when set, observes every state the scheduler enters.
	hook func(state)
}

func newScheduler(lat *lattice, pool *workerpool.Pool, o *Options) *scheduler {
	return &scheduler{
		lat:      lat,
		pool:     pool,
		kernel:   o.Kernel,
		perChan:  o.Channels == PerChannel,
		solverCf: o.Solver,
	}
}

// run drives the lattice from the diagonal state to done.
func (s *scheduler) run() {
	for st := stateDiagonal; ; st++ {
		if s.hook != nil {
			s.hook(st)
		}
		if st == stateDone {
			return
		}
		s.runPhase(st.phase())
	}
}

// runPhase resolves every target of ph and returns once all are written.
func (s *scheduler) runPhase(ph *phase) {
	smp := newSampler(s.lat, ph, s.kernel)
	rows := len(ph.targets) * s.lat.srcH

	s.pool.ParallelForAtomicBatched(rows, 1, func(start, end int) {
		var local Stats
		slv := newSolver(s.solverCf)
		win := newWindow(smp.size())
		for r := start; r < end; r++ {
			origin := ph.targets[r/s.lat.srcH]
			ty := 2*(r%s.lat.srcH) + origin.dy
			for i := 0; i < s.lat.srcW; i++ {
				tx := 2*i + origin.dx
				s.resolveCell(smp, slv, win, tx, ty, &local)
			}
		}
		s.stats.add(&local)
	})
}

// resolveCell predicts and writes the target (tx, ty).
func (s *scheduler) resolveCell(smp *sampler, slv *solver, win *window, tx, ty int, st *Stats) {
	nb := smp.neighborhood(tx, ty)
	if !s.perChan {
		smp.gather(tx, ty, lumaChannel, win)
		w, path := slv.solve(win)
		st.count(path)
		s.lat.write(tx, ty, predictAll(&w, &nb))
		return
	}

	var out [channels]float32
	for c := range out {
		smp.gather(tx, ty, c, win)
		w, path := slv.solve(win)
		st.count(path)
		out[c] = predict(&w, &nb, c)
	}
	s.lat.write(tx, ty, out)
}
