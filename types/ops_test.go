package types_test

import (
	"math"
	"testing"

	"github.com/beatoz/mixnum-go/libs/hostf"
	"github.com/beatoz/mixnum-go/libs/qfmt"
	"github.com/beatoz/mixnum-go/types"
	"github.com/stretchr/testify/require"
)

func TestOrdering(t *testing.T) {
	a, b := hostf.F64(1), hostf.F64(2)
	require.True(t, types.Less(a, b))
	require.True(t, types.LessEq(a, a))
	require.True(t, types.Greater(b, a))
	require.True(t, types.GreaterEq(b, b))
	require.True(t, types.Equal(a, a))
	require.False(t, types.Equal(a, b))

	require.Equal(t, a, types.Min(a, b))
	require.Equal(t, b, types.Max(a, b))
	require.Equal(t, a, types.Clamp(hostf.F64(-5), a, b))
	require.Equal(t, b, types.Clamp(hostf.F64(5), a, b))
	require.Equal(t, hostf.F64(1.5), types.Clamp(hostf.F64(1.5), a, b))

	require.True(t, types.IsZero(hostf.F64(0)))
	require.True(t, types.IsZero(qfmt.I32F16{}))
	require.False(t, types.IsZero(qfmt.I32F16{}.One()))
}

func TestHalfPi(t *testing.T) {
	require.Equal(t, math.Pi/2, types.HalfPi[hostf.F64]().Float64())
	require.InDelta(t, math.Pi/2, types.HalfPi[qfmt.I32F16]().Float64(), 1e-4)
}

func TestFromTo(t *testing.T) {
	require.Equal(t, hostf.F64(3), types.From[hostf.F64](3))
	require.Equal(t, hostf.F64(-3), types.From[hostf.F64](int32(-3)))
	require.Equal(t, hostf.F64(7), types.From[hostf.F64](uint64(7)))
	require.Equal(t, hostf.F64(0.5), types.From[hostf.F64](float32(0.5)))

	var q qfmt.I32F16
	require.Equal(t, q.FromFloat64(2.5), types.From[qfmt.I32F16](2.5))
	require.Equal(t, q.FromInt32(2), types.From[qfmt.I32F16](uint32(2)))

	x := hostf.F64(2.75)
	require.Equal(t, int64(2), types.To[int64](x))
	require.Equal(t, int32(2), types.To[int32](x))
	require.Equal(t, uint32(2), types.To[uint32](x))
	require.Equal(t, uint64(2), types.To[uint64](x))
	require.Equal(t, float32(2.75), types.To[float32](x))
	require.Equal(t, 2.75, types.To[float64](x))
	require.Equal(t, 2, types.To[int](x))
}

func TestConvert(t *testing.T) {
	x := hostf.F64(1.25)
	q := types.Convert[qfmt.I32F16](x)
	require.Equal(t, 1.25, q.Float64())
	require.Equal(t, hostf.F32(1.25), types.Convert[hostf.F32](q))
}
