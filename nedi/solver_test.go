package nedi

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// flatWindow returns a window of n rows where every sample equals v.
func flatWindow(n int, v float64) *window {
	win := newWindow(n)
	for i := range win.a {
		win.a[i] = v
	}
	for i := range win.y {
		win.y[i] = v
	}
	return win
}

func TestSolverRecoversWeights(t *testing.T) {
	want := [4]float64{0.1, 0.2, 0.3, 0.4}
	r := rand.New(rand.NewPCG(7, 7))

	win := newWindow(36)
	for i := range win.y {
		row := win.a[i*4 : i*4+4]
		var y float64
		for j := range row {
			row[j] = r.Float64()
			y += want[j] * row[j]
		}
		win.y[i] = y
	}

	got, path := newSolver(DefaultSolverConfig()).solve(win)
	require.Equal(t, solveExact, path)
	if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Errorf("weights mismatch (-want +got):\n%s", diff)
	}
}

func TestSolverFlatWindow(t *testing.T) {
	for _, v := range []float64{0, 0.25, 1} {
		win := flatWindow(9, v)
		w, path := newSolver(DefaultSolverConfig()).solve(win)

		assert.NotEqual(t, solveExact, path, "flat window %v must not pass the direct solve", v)
		for i := range w {
			assert.InDelta(t, 0.25, w[i], 1e-9, "flat window %v weight %d", v, i)
		}

		// The prediction of a flat neighborhood is the constant itself.
		c := float32(v * 255)
		nb := [4][channels]float32{}
		for i := range nb {
			nb[i] = [channels]float32{c, c, c, c}
		}
		got := predictAll(&w, &nb)
		for ch := range got {
			assert.InDelta(t, c, got[ch], 1e-4, "flat window %v channel %d", v, ch)
		}
	}
}

func TestSolverZeroWindowIsUniform(t *testing.T) {
	w, path := newSolver(DefaultSolverConfig()).solve(flatWindow(16, 0))
	assert.Equal(t, solveRegularized, path)
	assert.Equal(t, uniformWeights, w)
}

func TestSolverNonFiniteInput(t *testing.T) {
	win := flatWindow(9, 0.5)
	win.a[5] = math.NaN()
	win.y[2] = math.Inf(1)

	w, path := newSolver(DefaultSolverConfig()).solve(win)
	assert.Equal(t, solveUniform, path)
	assert.Equal(t, uniformWeights, w)
}

func TestSolverThresholds(t *testing.T) {
	r := rand.New(rand.NewPCG(3, 4))
	win := newWindow(9)
	for i := range win.a {
		win.a[i] = r.Float64()
	}
	for i := range win.y {
		win.y[i] = r.Float64()
	}

	_, path := newSolver(DefaultSolverConfig()).solve(win)
	require.Equal(t, solveExact, path)

	strict := DefaultSolverConfig()
	strict.MinDeterminant = 1e300
	_, path = newSolver(strict).solve(win)
	assert.Equal(t, solveRegularized, path, "determinant threshold")

	strict = DefaultSolverConfig()
	strict.MaxCondition = 1
	_, path = newSolver(strict).solve(win)
	assert.Equal(t, solveRegularized, path, "condition threshold")
}

func TestSolverWeightsAreConvex(t *testing.T) {
	r := rand.New(rand.NewPCG(11, 12))
	slv := newSolver(DefaultSolverConfig())
	win := newWindow(25)
	for range 200 {
		for i := range win.a {
			win.a[i] = r.Float64()
		}
		for i := range win.y {
			win.y[i] = r.Float64()*2 - 0.5
		}
		w, _ := slv.solve(win)

		var sum float64
		for i, v := range w {
			require.GreaterOrEqual(t, v, 0.0, "weight %d", i)
			sum += v
		}
		require.InDelta(t, 1, sum, 1e-12)
	}
}

func TestNormalizeWeights(t *testing.T) {
	tests := []struct {
		name string
		in   [4]float64
		want [4]float64
	}{
		{"already convex", [4]float64{0.1, 0.2, 0.3, 0.4}, [4]float64{0.1, 0.2, 0.3, 0.4}},
		{"scaled", [4]float64{1, 1, 1, 1}, [4]float64{0.25, 0.25, 0.25, 0.25}},
		{"negative shifted", [4]float64{-1, 0, 1, 2}, [4]float64{0, 1.0 / 6, 2.0 / 6, 3.0 / 6}},
		{"all zero", [4]float64{}, uniformWeights},
		{"all equal negative", [4]float64{-2, -2, -2, -2}, uniformWeights},
		{"infinite", [4]float64{math.Inf(1), 0, 0, 0}, uniformWeights},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := normalizeWeights(tt.in)
			if diff := cmp.Diff(tt.want, got, cmpopts.EquateApprox(0, 1e-12)); diff != "" {
				t.Errorf("normalizeWeights(%v) mismatch (-want +got):\n%s", tt.in, diff)
			}
		})
	}
}

func TestSolverConfigValidate(t *testing.T) {
	assert.NoError(t, DefaultSolverConfig().validate())

	bad := []SolverConfig{
		{MinDeterminant: -1, MaxCondition: 1, Ridge: 1},
		{MinDeterminant: 0, MaxCondition: math.NaN(), Ridge: 1},
		{MinDeterminant: 0, MaxCondition: math.Inf(1), Ridge: 1},
		{MinDeterminant: 0, MaxCondition: 1, Ridge: 0},
	}
	for _, c := range bad {
		assert.ErrorIs(t, c.validate(), ErrInvalidSolverConfig, "%+v", c)
	}
}

func TestSolvePathString(t *testing.T) {
	assert.Equal(t, "exact", solveExact.String())
	assert.Equal(t, "regularized", solveRegularized.String())
	assert.Equal(t, "uniform", solveUniform.String())
}

func BenchmarkSolver(b *testing.B) {
	r := rand.New(rand.NewPCG(1, 1))
	win := newWindow(9)
	for i := range win.a {
		win.a[i] = r.Float64()
	}
	for i := range win.y {
		win.y[i] = r.Float64()
	}
	slv := newSolver(DefaultSolverConfig())
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		slv.solve(win)
	}
}
