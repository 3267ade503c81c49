package qfmt

import (
	"fmt"
	"math"
	"testing"
	"testing/quick"

	"github.com/beatoz/mixnum-go/types"
	"github.com/stretchr/testify/require"
)

func TestConversions(t *testing.T) {
	var z I32F16
	x := z.FromFloat64(1.5)
	require.Equal(t, int32(3<<15), x.Raw())
	require.Equal(t, 1.5, x.Float64())
	require.Equal(t, int64(1), x.Int64())
	require.Equal(t, int64(-1), z.FromFloat64(-1.5).Int64())
	require.Equal(t, int64(-2), z.FromInt64(-2).Int64())
	require.Equal(t, uint64(0), z.FromFloat64(-3).Uint64())
	require.Equal(t, float32(0.25), z.FromFloat32(0.25).Float32())
	require.Equal(t, 3.0, z.FromUint32(3).Float64())

	require.Equal(t, z.MaxValue(), z.FromInt64(1<<20))
	require.Equal(t, z.MinValue(), z.FromInt64(-(1 << 20)))
	require.Equal(t, z.MaxValue(), z.FromFloat64(math.Inf(1)))
	require.Equal(t, z.Zero(), z.FromFloat64(math.NaN()))
	require.Equal(t, -32768.0, z.FromInt64(-32768).Float64())

	var b I8F4
	require.Equal(t, 7.9375, b.FromInt64(100).Float64())
	require.Equal(t, -8.0, b.FromInt64(-100).Float64())
	require.Equal(t, 3.125, b.Pi().Float64())

	require.Equal(t, 1.5, types.From[I32F16](1.5).Float64())
	require.Equal(t, int32(-7), types.To[int32](z.FromFloat64(-7.9)))
}

func TestSignedArithmetic(t *testing.T) {
	var z I32F16
	a, b := z.FromFloat64(1.5), z.FromFloat64(2.25)

	require.Equal(t, 3.75, a.Add(b).Float64())
	require.Equal(t, -0.75, a.Sub(b).Float64())
	require.Equal(t, 3.375, a.Mul(b).Float64())
	require.Equal(t, -3.375, a.Neg().Mul(b).Float64())
	require.Equal(t, 3.375, a.Neg().Mul(b.Neg()).Float64())
	require.Equal(t, 1.5, b.Div(a).Float64())
	require.Equal(t, -1.5, b.Div(a.Neg()).Float64())
	require.InDelta(t, 1.0/3.0, z.One().Div(z.FromInt32(3)).Float64(), 1.0/65536)

	// saturation
	require.Equal(t, z.MaxValue(), z.MaxValue().Add(z.One()))
	require.Equal(t, z.MinValue(), z.MinValue().Sub(z.One()))
	require.Equal(t, z.MaxValue(), z.FromInt32(30000).Mul(z.FromInt32(30000)))
	require.Equal(t, z.MinValue(), z.FromInt32(-30000).Mul(z.FromInt32(30000)))
	require.Equal(t, z.MaxValue(), z.FromInt32(30000).Div(z.FromFloat64(0.01)))
	require.Equal(t, z.MaxValue(), a.Div(z.Zero()))
	require.Equal(t, z.MinValue(), a.Neg().Div(z.Zero()))
	require.Equal(t, z.MaxValue(), z.MinValue().Neg())
	require.Equal(t, z.MaxValue(), z.MinValue().Abs())

	require.Equal(t, -1, a.Cmp(b))
	require.Equal(t, 1, b.Cmp(a))
	require.Equal(t, 0, a.Cmp(z.FromFloat64(1.5)))
	require.Equal(t, z.FromInt32(-1), a.Neg().Sign())
	require.Equal(t, z.One(), z.Zero().Sign())
	require.False(t, z.Zero().IsPositive())
	require.False(t, z.Zero().IsNegative())
	require.Equal(t, 3.375, a.Powi(3).Float64())
	require.Equal(t, z.One(), a.Powi(0))
}

func TestSignedWide(t *testing.T) {
	var z I64F32
	a := z.FromFloat64(-12345.678)
	require.InDelta(t, -12345.678, a.Float64(), 1e-9)
	require.InDelta(t, 152415765.279684, a.Mul(a).Float64(), 1e-3)
	require.Equal(t, z.MaxValue(), z.FromInt64(math.MaxInt64))
	require.Equal(t, z.MinValue(), z.FromInt64(math.MinInt64))
	require.Equal(t, z.MinValue(), z.MinValue().Add(z.MinValue()))
	require.Equal(t, z.MaxValue(), z.MaxValue().Mul(z.FromInt32(2)))

	var w I64F60
	require.InDelta(t, math.Pi, w.Pi().Float64(), 1e-15)
	require.InDelta(t, 2*math.Pi, w.Tau().Float64(), 1e-15)
}

func TestUnsignedArithmetic(t *testing.T) {
	var z U16F8
	a, b := z.FromFloat64(2.5), z.FromFloat64(4)
	require.Equal(t, 6.5, a.Add(b).Float64())
	require.Equal(t, 1.5, b.Sub(a).Float64())
	require.Equal(t, z.Zero(), a.Sub(b))
	require.Equal(t, 10.0, a.Mul(b).Float64())
	require.Equal(t, 1.6, math.Round(b.Div(a).Float64()*10)/10)
	require.Equal(t, z.MaxValue(), a.Div(z.Zero()))
	require.Equal(t, z.MaxValue(), z.MaxValue().Add(z.One()))
	require.Equal(t, z.MaxValue(), z.FromInt32(200).Mul(z.FromInt32(200)))
	require.Equal(t, z.Zero(), z.FromInt64(-4))
	require.Equal(t, z.Zero(), z.FromFloat64(-4))
	require.Equal(t, a, a.Abs())
	require.Equal(t, z.One(), z.Zero().Sign())
	require.False(t, a.IsNegative())
	require.Equal(t, 255.99609375, z.MaxValue().Float64())
	require.Equal(t, 39.0625, a.Powi(4).Float64())

	var u U32F16
	require.InDelta(t, 2.0, u.FromInt32(4).Sqrt().Float64(), 5e-4)
	require.InDelta(t, math.Sqrt(300), u.FromInt32(300).Sqrt().Float64(), 300*5e-4)
	require.Equal(t, u.Zero(), u.Zero().Sqrt())
}

func TestSignedKernels(t *testing.T) {
	var z I32F16
	for _, f := range []float64{-3, -2, -1.5, -0.5, 0, 0.25, 1, 1.5707, 2.5, 3.1} {
		x := z.FromFloat64(f)
		require.InDelta(t, math.Sin(f), x.Sin().Float64(), 1e-3, "sin(%v)", f)
		require.InDelta(t, math.Cos(f), x.Cos().Float64(), 1e-3, "cos(%v)", f)
	}
	require.InDelta(t, math.Atan2(1, -1), z.One().Atan2(z.FromInt32(-1)).Float64(), 1e-3)
	require.InDelta(t, -0.2831853, z.FromInt32(6).WrapPhase().Float64(), 1e-3)
	require.InDelta(t, 2.0, z.FromInt32(4).Sqrt().Float64(), 5e-4)
	require.InDelta(t, math.E, z.One().Exp().Float64(), 1e-3)
}

func TestFormat(t *testing.T) {
	var z I32F16
	require.Equal(t, "1.5", z.FromFloat64(1.5).String())
	require.Equal(t, "-0.25", z.FromFloat64(-0.25).String())
	require.Equal(t, "1.50", fmt.Sprintf("%.2f", z.FromFloat64(1.5)))
	require.Equal(t, "2.5", fmt.Sprint(U16F8{}.FromFloat64(2.5)))
	require.Equal(t, " 2.5", fmt.Sprintf("%4v", U16F8{}.FromFloat64(2.5)))
}

func TestRawProperties(t *testing.T) {
	var z I32F16
	commutative := func(a, b int32) bool {
		x, y := z.FromRaw(a), z.FromRaw(b)
		return x.Add(y) == y.Add(x) && x.Mul(y) == y.Mul(x)
	}
	require.NoError(t, quick.Check(commutative, nil))

	ordered := func(a, b int32) bool {
		x, y := z.FromRaw(a), z.FromRaw(b)
		fx, fy := x.Float64(), y.Float64()
		switch x.Cmp(y) {
		case -1:
			return fx < fy
		case 1:
			return fx > fy
		}
		return fx == fy
	}
	require.NoError(t, quick.Check(ordered, nil))

	// the saturated sum is the clamped exact sum
	saturating := func(a, b int32) bool {
		x, y := z.FromRaw(a), z.FromRaw(b)
		exact := int64(a) + int64(b)
		exact = max(min(exact, math.MaxInt32), math.MinInt32)
		return x.Add(y).Raw() == int32(exact)
	}
	require.NoError(t, quick.Check(saturating, nil))
}

func TestWidths(t *testing.T) {
	require.Equal(t, uint(8), I8F4{}.WordBits())
	require.Equal(t, uint(4), I8F4{}.FracBits())
	require.Equal(t, uint(64), U64F61{}.WordBits())
	require.Equal(t, uint(61), U64F61{}.FracBits())
}
