package fxnum

import (
	"fmt"
	"github.com/robaho/fixed"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"math"
	"math/rand"
	"testing"
	"testing/quick"
)

var (
	numCount  = 100
	decNums   []decimal.Decimal
	fixedNums []fixed.Fixed
	fxnumNums []FxNum
	fxnumExps []FxNum
	fxnumAngs []FxNum
)

func init() {
	for i := 0; i < numCount; i++ {
		n := rand.Int63n(50000)
		decNums = append(decNums, decimal.NewFromInt(n))
		fixedNums = append(fixedNums, fixed.NewI(n, 0))
		fxnumNums = append(fxnumNums, FromInt(n))

		n = rand.Int63n(1000)
		fxnumExps = append(fxnumExps, New(n, 3))
		fxnumAngs = append(fxnumAngs, FromFloat(rand.Float64()*2*math.Pi-math.Pi))
	}
}

func Benchmark_FxNum_Add(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = fxnumNums[i%numCount].Add(fxnumNums[(i+1)%numCount])
	}
}
func Benchmark_Fixed_Add(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = fixedNums[i%numCount].Add(fixedNums[(i+1)%numCount])
	}
}
func Benchmark_Decimal_Add(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = decNums[i%numCount].Add(decNums[(i+1)%numCount])
	}
}

func Benchmark_FxNum_Mul(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = fxnumNums[i%numCount].Mul(fxnumNums[(i+1)%numCount])
	}
}
func Benchmark_Fixed_Mul(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = fixedNums[i%numCount].Mul(fixedNums[(i+1)%numCount])
	}
}
func Benchmark_Decimal_Mul(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = decNums[i%numCount].Mul(decNums[(i+1)%numCount])
	}
}

func Benchmark_FxNum_Pow(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = fxnumNums[i%numCount].Pow(fxnumExps[i%numCount])
	}
}

func Benchmark_FxNum_Sin(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = fxnumAngs[i%numCount].Sin()
	}
}

func Benchmark_FxNum_Sqrt(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = fxnumNums[i%numCount].Sqrt()
	}
}

func Benchmark_FixedToDecimalByInt(b *testing.B) {
	src := fixed.NewI(91234567898, 6)
	for i := 0; i < b.N; i++ {
		_, _ = FixedToDecimalByInt(src)
	}
}

func Test_FixedToDecimalByInt(t *testing.T) {
	src := fixed.NewI(6789891234567898, 7)
	expected := "678989123.4567898"

	require.Equal(t, expected, src.String())

	dst, err := FixedToDecimalByInt(src)
	require.NoError(t, err)
	require.Equal(t, expected, dst.String())
	require.True(t, decimal.RequireFromString(expected).Equal(dst))

	_, err = FixedToDecimalByInt(fixed.NaN)
	require.Error(t, err)
}

func TestArithmetic(t *testing.T) {
	a, b := FromFloat(1.5), FromFloat(2.25)
	require.True(t, a.Add(b).Equal(FromFloat(3.75)))
	require.True(t, a.Sub(b).Equal(FromFloat(-0.75)))
	require.True(t, a.Mul(b).Equal(FromFloat(3.375)))
	require.True(t, b.Div(a).Equal(FromFloat(1.5)))
	require.True(t, a.Neg().Equal(FromFloat(-1.5)))
	require.True(t, a.Neg().Abs().Equal(a))
	require.True(t, a.Powi(3).Equal(FromFloat(3.375)))
	require.True(t, a.Powi(0).Equal(ONE))
	require.True(t, a.Powi(1).Equal(a))
	require.True(t, TWO.Powi(-2).Equal(FromFloat(0.25)))

	require.Equal(t, -1, a.Cmp(b))
	require.True(t, a.Neg().Sign().Equal(ONE.Neg()))
	require.True(t, ZERO.Sign().Equal(ONE))
	require.False(t, ZERO.IsPositive())
	require.False(t, ZERO.IsNegative())

	c, err := FromString("1.25")
	require.NoError(t, err)
	require.Equal(t, 1.25, c.Float64())
	_, err = FromString("1.2x")
	require.Error(t, err)
}

func TestConversions(t *testing.T) {
	x := FromFloat(-7.9)
	require.Equal(t, int64(-7), x.Int64())
	require.Equal(t, int32(-7), x.Int32())
	require.Equal(t, uint64(0), x.Uint64())
	require.Equal(t, uint32(7), FromFloat(7.9).Uint32())
	require.InDelta(t, -7.9, x.Float64(), 1e-9)
	require.Equal(t, float32(0.5), ZERO.FromFloat32(0.5).Float32())
	require.Equal(t, int64(42), ZERO.FromUint32(42).Int64())
	require.True(t, ZERO.FromFloat64(math.NaN()).Equal(ZERO))
}

func TestSaturation(t *testing.T) {
	require.True(t, ZERO.MaxValue().Add(ONE).Equal(ZERO.MaxValue()))
	require.True(t, ZERO.MinValue().Sub(ONE).Equal(ZERO.MinValue()))
	require.True(t, FromInt(5).Div(ZERO).Equal(ZERO.MaxValue()))
	require.True(t, FromInt(-5).Div(ZERO).Equal(ZERO.MinValue()))
	require.True(t, FromInt(1_000_000).Mul(FromInt(1_000_000)).Equal(ZERO.MaxValue()))
	require.True(t, FromInt(-1_000_000).Mul(FromInt(1_000_000)).Equal(ZERO.MinValue()))
	require.True(t, FromInt(math.MaxInt64).Equal(ZERO.MaxValue()))
	require.True(t, ZERO.FromUint64(math.MaxUint64).Equal(ZERO.MaxValue()))
	require.True(t, FromFloat(math.Inf(-1)).Equal(ZERO.MinValue()))
}

func TestKernels(t *testing.T) {
	for _, f := range []float64{-3.1, -2, -1, -0.3, 0, 0.7, 1.2, 2.9, 3.1} {
		x := FromFloat(f)
		require.InDelta(t, math.Sin(f), x.Sin().Float64(), 1e-4, "sin(%v)", f)
		require.InDelta(t, math.Cos(f), x.Cos().Float64(), 1e-4, "cos(%v)", f)
		s, c := x.SinCos()
		require.True(t, s.Equal(x.Sin()))
		require.True(t, c.Equal(x.Cos()))
	}

	require.InDelta(t, -0.2831853, FromInt(6).WrapPhase().Float64(), 1e-6)
	require.InDelta(t, math.Atan2(-2, -3), FromInt(-2).Atan2(FromInt(-3)).Float64(), 1e-4)
	require.InDelta(t, 2.0, FromInt(4).Sqrt().Float64(), 5e-4)
	require.InDelta(t, math.Sqrt(12345), FromInt(12345).Sqrt().Float64(), math.Sqrt(12345)*5e-4)
	require.True(t, ZERO.Sqrt().Equal(ZERO))
	require.InDelta(t, math.E, ONE.Exp().Float64(), 1e-5)
	require.InDelta(t, math.Exp(-2.5), FromFloat(-2.5).Exp().Float64(), 1e-5)

	ln, err := FromInt(10).Ln()
	require.NoError(t, err)
	require.InDelta(t, math.Ln10, ln.Float64(), 1e-5)
	_, err = ZERO.Ln()
	require.Error(t, err)
}

func TestGolden_Pow(t *testing.T) {
	data := []struct {
		base, exp, out string
	}{
		{"2.0000000", "3.5000000", "11.3137085"},
		{"2.0000000", "2.0000000", "4.0000000"},
		{"1.0000000", "5.6789000", "1.0000000"},
		{"4.0000000", "0.5000000", "2.0000000"},
		{"10.0000000", "-1.0000000", "0.1000000"},
		{"2.0000000", "0.5000000", "1.4142136"},
		{"3.0000000", "1.5000000", "5.1961524"},
		{"1.5000000", "2.5000000", "2.7556759"},
		{"2.7182818", "1.0000000", "2.7182818"},
		{"1.0001000", "100.0000000", "1.0100497"},
	}

	for _, rec := range data {
		b, err := FromString(rec.base)
		require.NoError(t, err)
		e, err := FromString(rec.exp)
		require.NoError(t, err)
		want, err := decimal.NewFromString(rec.out)
		require.NoError(t, err)

		got, err := b.Pow(e).ToDecimal()
		require.NoError(t, err)
		diff := got.Sub(want).Abs()
		require.True(t, diff.LessThan(want.Mul(decimal.New(1, -5))),
			"mismatch on %v^%v: got %v want %v", rec.base, rec.exp, got, want)
	}
}

func TestPowProp(t *testing.T) {
	f := func(b, e uint16) bool {
		if b == 0 {
			return true
		}
		base := New(int64(b), 2)
		exp := New(int64(e%300), 2)
		v1 := base.Pow(exp)
		v2 := base.Pow(exp)
		return v1.Equal(v2)
	}
	require.NoError(t, quick.Check(f, nil))
}

func TestFormat(t *testing.T) {
	x := FromFloat(1.5)
	require.Equal(t, "1.5", fmt.Sprint(x))
	require.Equal(t, "1.500", fmt.Sprintf("%.3f", x))

	// %f with a precision rounds in decimal
	y, err := FromString("2.675")
	require.NoError(t, err)
	require.Equal(t, "2.68", fmt.Sprintf("%.2f", y))
	require.Equal(t, "  +2.68", fmt.Sprintf("%+7.2f", y))
	require.Equal(t, "-2.68  |", fmt.Sprintf("%-7.2f|", y.Neg()))
	require.Equal(t, "2.675000", fmt.Sprintf("%f", y))
}
