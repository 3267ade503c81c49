package accuracy_test

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/beatoz/mixnum-go/libs/accuracy"
	"github.com/beatoz/mixnum-go/libs/backend"
	"github.com/beatoz/mixnum-go/types/xerrors"
	"github.com/stretchr/testify/require"
	"github.com/tendermint/tendermint/libs/log"
)

func lookup(t *testing.T, name string) backend.Backend {
	b, err := backend.Lookup(name)
	require.NoError(t, err)
	return b
}

func TestSweepKernelF64(t *testing.T) {
	b := lookup(t, "f64")
	bounds := map[backend.Kernel]float64{
		backend.KernelSin:   5e-6,
		backend.KernelCos:   5e-6,
		backend.KernelWrap:  1e-9,
		backend.KernelAtan2: 2e-5,
		backend.KernelSqrt:  2e-4,
		backend.KernelNiirf: 2e-4,
		backend.KernelExp:   1e-12,
		backend.KernelPowi:  1e-12,
	}
	for k, bound := range bounds {
		r, err := accuracy.SweepKernel(b, k, 300, accuracy.DefaultNiirfIterations)
		require.NoError(t, err)
		require.Equal(t, "f64", r.Backend)
		require.Equal(t, 300, r.Points)
		require.LessOrEqual(t, r.MaxErr, bound, k)
		require.LessOrEqual(t, r.MeanErr, r.MaxErr, k)
	}
}

func TestSweepKernelFixed(t *testing.T) {
	for _, name := range []string{"fxnum", "i32f16", "i32f22", "i64f32"} {
		b := lookup(t, name)
		for _, k := range []backend.Kernel{backend.KernelSin, backend.KernelCos, backend.KernelAtan2} {
			r, err := accuracy.SweepKernel(b, k, 200, accuracy.DefaultNiirfIterations)
			require.NoError(t, err)
			require.LessOrEqual(t, r.MaxErr, 1e-3, "%s %s", name, k)
		}
	}

	r, err := accuracy.SweepKernel(lookup(t, "uq128"), backend.KernelSqrt, 200, accuracy.DefaultNiirfIterations)
	require.NoError(t, err)
	require.LessOrEqual(t, r.MaxErr, 2e-4)

	_, err = accuracy.SweepKernel(lookup(t, "f64"), backend.KernelSin, 0, 3)
	require.ErrorIs(t, err, xerrors.ErrInvalidArgument)
}

func TestSweep(t *testing.T) {
	cfg := accuracy.DefaultSweepConfig()
	cfg.Backends = []string{"f64", "u32f16"}
	cfg.Points = 50

	results, err := accuracy.Sweep(context.Background(), log.NewNopLogger(), cfg)
	require.NoError(t, err)
	// u32f16 has no trigonometry
	require.Len(t, results, len(backend.AllKernels)+4)
	require.Equal(t, "f64", results[0].Backend)
	require.Equal(t, backend.KernelSin, results[0].Kernel)
	require.Equal(t, "u32f16", results[len(results)-1].Backend)

	cfg.Backends = []string{"f128"}
	_, err = accuracy.Sweep(context.Background(), log.NewNopLogger(), cfg)
	require.ErrorIs(t, err, xerrors.ErrUnknownBackend)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	cfg.Backends = []string{"f64"}
	_, err = accuracy.Sweep(ctx, log.NewNopLogger(), cfg)
	require.ErrorIs(t, err, context.Canceled)
}

func TestBench(t *testing.T) {
	cfg := accuracy.BenchConfig{
		Backends: []string{"i32f16", "uq128"},
		Kernels:  []backend.Kernel{backend.KernelSin, backend.KernelSqrt},
		Duration: time.Millisecond,
	}
	results, err := accuracy.Bench(context.Background(), log.NewNopLogger(), cfg)
	require.NoError(t, err)
	require.Len(t, results, 3)
	for _, r := range results {
		require.Positive(t, r.Ops)
		require.Positive(t, r.NsPerOp)
	}

	r, err := accuracy.BenchKernel(context.Background(), lookup(t, "f64"), backend.KernelExp, 0)
	require.NoError(t, err)
	require.Equal(t, 256, r.Ops)
}

func TestReference(t *testing.T) {
	require.Equal(t, math.Sin(1), accuracy.Reference(backend.KernelSin, 1))
	require.Equal(t, math.Atan2(1, -1), accuracy.Reference(backend.KernelAtan2, 1, -1))
	require.Equal(t, 3.0, accuracy.Reference(backend.KernelNiirf, 9, 5))
	require.Equal(t, 8.0, accuracy.Reference(backend.KernelPowi, 2, 3.7))
	require.True(t, math.IsNaN(accuracy.Reference(backend.KernelPowi, 2)))

	// relative for exp and powi
	require.InDelta(t, 0.01, accuracy.KernelError(backend.KernelExp, 101, 100), 1e-12)
	require.Equal(t, 1.0, accuracy.KernelError(backend.KernelSqrt, 101, 100))
	// -π and π are the same angle
	require.InDelta(t, 0, accuracy.KernelError(backend.KernelAtan2, -math.Pi, math.Pi), 1e-12)
}
