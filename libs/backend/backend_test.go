package backend_test

import (
	"math"
	"testing"

	"github.com/beatoz/mixnum-go/libs/backend"
	"github.com/beatoz/mixnum-go/types/xerrors"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	require.Equal(t,
		[]string{"f32", "f64", "fxnum", "i32f16", "i32f22", "i64f32", "u32f16", "uq128"},
		backend.Names())

	b, err := backend.Lookup("I32F16")
	require.NoError(t, err)
	require.Equal(t, "i32f16", b.Name())
	require.True(t, b.Signed())

	_, err = backend.Lookup("f16")
	require.ErrorIs(t, err, xerrors.ErrUnknownBackend)

	k, err := backend.ParseKernel("SIN")
	require.NoError(t, err)
	require.Equal(t, backend.KernelSin, k)
	_, err = backend.ParseKernel("tanh")
	require.ErrorIs(t, err, xerrors.ErrUnknownKernel)
}

func TestKernels(t *testing.T) {
	for _, name := range backend.Names() {
		b, err := backend.Lookup(name)
		require.NoError(t, err)
		if b.Signed() {
			require.Equal(t, backend.AllKernels, b.Kernels(), name)
		} else {
			require.Equal(t,
				[]backend.Kernel{backend.KernelSqrt, backend.KernelNiirf, backend.KernelExp, backend.KernelPowi},
				b.Kernels(), name)
		}

		v, err := b.Eval(backend.KernelSqrt, 4)
		require.NoError(t, err)
		require.InDelta(t, 2.0, v, 5e-4, name)

		v, err = b.Eval(backend.KernelPowi, 1.5, 2)
		require.NoError(t, err)
		require.InDelta(t, 2.25, v, 1e-6, name)

		v, err = b.Eval(backend.KernelExp, 1)
		require.NoError(t, err)
		require.InDelta(t, math.E, v, 1e-3, name)

		loop, err := b.Loop(backend.KernelNiirf, 2, 3)
		require.NoError(t, err)
		loop(10)
	}
}

func TestEvalSigned(t *testing.T) {
	b, err := backend.Lookup("fxnum")
	require.NoError(t, err)

	v, err := b.Eval(backend.KernelSin, math.Pi/6)
	require.NoError(t, err)
	require.InDelta(t, 0.5, v, 1e-5)

	v, err = b.Eval(backend.KernelAtan2, 1, -1)
	require.NoError(t, err)
	require.InDelta(t, 3*math.Pi/4, v, 1e-4)

	v, err = b.Eval(backend.KernelWrap, 7)
	require.NoError(t, err)
	require.InDelta(t, 7-2*math.Pi, v, 1e-6)

	_, err = b.Eval(backend.KernelAtan2, 1)
	require.ErrorIs(t, err, xerrors.ErrInvalidArgument)
}

func TestEvalCount(t *testing.T) {
	for _, name := range []string{"fxnum", "i32f16", "uq128"} {
		b, err := backend.Lookup(name)
		require.NoError(t, err)

		v, err := b.Eval(backend.KernelPowi, 2, -1)
		if b.Signed() {
			require.NoError(t, err, name)
			require.InDelta(t, 0.5, v, 1e-6, name)
		}
		_, err = b.Eval(backend.KernelPowi, 1, backend.MaxCount)
		require.NoError(t, err, name)

		for _, n := range []float64{1e18, -1e18, backend.MaxCount + 1, 2.5, math.NaN(), math.Inf(1), math.Inf(-1)} {
			_, err = b.Eval(backend.KernelPowi, 2, n)
			require.ErrorIs(t, err, xerrors.ErrInvalidArgument, "%s powi %v", name, n)
			_, err = b.Loop(backend.KernelPowi, 2, n)
			require.ErrorIs(t, err, xerrors.ErrInvalidArgument, "%s powi loop %v", name, n)
		}

		_, err = b.Eval(backend.KernelNiirf, 4, -1)
		require.ErrorIs(t, err, xerrors.ErrInvalidArgument, name)
		_, err = b.Eval(backend.KernelNiirf, 4, 1e9)
		require.ErrorIs(t, err, xerrors.ErrInvalidArgument, name)
		v, err = b.Eval(backend.KernelNiirf, 4, 0)
		require.NoError(t, err, name)
		require.Greater(t, v, 0.0, name)
	}
}

func TestEvalUnsigned(t *testing.T) {
	b, err := backend.Lookup("u32f16")
	require.NoError(t, err)
	require.False(t, b.Signed())

	_, err = b.Eval(backend.KernelSin, 1)
	require.ErrorIs(t, err, xerrors.ErrUnknownKernel)
	_, err = b.Loop(backend.KernelWrap, 1)
	require.ErrorIs(t, err, xerrors.ErrUnknownKernel)

	_, err = b.Complex(backend.OpConj, 1, 0)
	require.ErrorIs(t, err, xerrors.ErrUnknownBackend)

	require.Equal(t, 0.0, b.Quantize(-3))
	require.Equal(t, 0.5, b.Quantize(0.5))
}

func TestComplex(t *testing.T) {
	b, err := backend.Lookup("f64")
	require.NoError(t, err)

	v, err := b.Complex(backend.OpMul, complex(1, 2), complex(1, 2))
	require.NoError(t, err)
	require.Equal(t, backend.ComplexValue{Form: backend.FormCartesian, A: -3, B: 4, Text: "-3+4i"}, v)

	v, err = b.Complex(backend.OpConj, complex(-2, 4), 0)
	require.NoError(t, err)
	require.Equal(t, "-2-4i", v.Text)

	v, err = b.Complex(backend.OpDiv, complex(1, 1), 0)
	require.NoError(t, err)
	require.Equal(t, math.MaxFloat64, v.A)
	require.Equal(t, math.MaxFloat64, v.B)

	v, err = b.Complex(backend.OpMag, complex(3, 4), 0)
	require.NoError(t, err)
	require.Equal(t, backend.FormReal, v.Form)
	require.Equal(t, 5.0, v.A)
	require.Equal(t, "5", v.Text)

	v, err = b.Complex(backend.OpPolar, complex(0, 2), 0)
	require.NoError(t, err)
	require.Equal(t, backend.FormPolar, v.Form)
	require.Equal(t, 2.0, v.A)
	require.InDelta(t, math.Pi/2, v.B, 1e-12)

	v, err = b.Complex(backend.OpCartesian, complex(1, 0), 0)
	require.NoError(t, err)
	require.Equal(t, "1+0i", v.Text)

	q, err := backend.Lookup("i32f16")
	require.NoError(t, err)
	v, err = q.Complex(backend.OpArg, complex(-1, 0), 0)
	require.NoError(t, err)
	require.InDelta(t, -math.Pi, v.A, 1e-3)

	op, err := backend.ParseComplexOp("Mul")
	require.NoError(t, err)
	require.True(t, op.Binary())
	_, err = backend.ParseComplexOp("add")
	require.ErrorIs(t, err, xerrors.ErrInvalidArgument)
}
