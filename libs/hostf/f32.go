package hostf

import (
	"fmt"
	"math"
	"strconv"

	"github.com/beatoz/mixnum-go/libs/trig"
	"github.com/beatoz/mixnum-go/types"
)

// F32 is a float32 scalar. Host functions are evaluated in float64 and rounded.
type F32 float32

var _ types.Angular[F32] = F32(0)
var _ types.Exponential[F32] = F32(0)

func (F32) Zero() F32 { return 0 }
func (F32) One() F32  { return 1 }
func (F32) Pi() F32   { return math.Pi }
func (F32) Tau() F32  { return 2 * math.Pi }

func (F32) MaxValue() F32 { return math.MaxFloat32 }
func (F32) MinValue() F32 { return -math.MaxFloat32 }

func (F32) FromInt32(v int32) F32     { return F32(v) }
func (F32) FromInt64(v int64) F32     { return F32(v) }
func (F32) FromUint32(v uint32) F32   { return F32(v) }
func (F32) FromUint64(v uint64) F32   { return F32(v) }
func (F32) FromFloat32(v float32) F32 { return F32(v) }
func (F32) FromFloat64(v float64) F32 { return F32(v) }

func (x F32) Int32() int32     { return toInt32(float64(x)) }
func (x F32) Int64() int64     { return toInt64(float64(x)) }
func (x F32) Uint32() uint32   { return toUint32(float64(x)) }
func (x F32) Uint64() uint64   { return toUint64(float64(x)) }
func (x F32) Float32() float32 { return float32(x) }
func (x F32) Float64() float64 { return float64(x) }

func (x F32) Add(o F32) F32 { return x + o }
func (x F32) Sub(o F32) F32 { return x - o }
func (x F32) Mul(o F32) F32 { return x * o }
func (x F32) Div(o F32) F32 { return x / o }
func (x F32) Cmp(o F32) int { return cmp(float64(x), float64(o)) }
func (x F32) Neg() F32      { return -x }
func (x F32) Abs() F32 {
	if x < 0 {
		return -x
	}
	return x
}

func (x F32) Sign() F32 {
	if x < 0 {
		return -1
	}
	return 1
}

func (x F32) IsPositive() bool { return x > 0 }
func (x F32) IsNegative() bool { return x < 0 }
func (x F32) IsNaN() bool      { return x != x }
func (x F32) IsInf() bool      { return math.IsInf(float64(x), 0) }

func (x F32) Powi(n int) F32 { return F32(math.Pow(float64(x), float64(n))) }

func (x F32) Sin() F32 { return F32(math.Sin(float64(x))) }
func (x F32) Cos() F32 { return F32(math.Cos(float64(x))) }
func (x F32) SinCos() (F32, F32) {
	s, c := math.Sincos(float64(x))
	return F32(s), F32(c)
}
func (x F32) Atan2(o F32) F32 {
	a := F32(atan2(float64(x), float64(o)))
	if a >= x.Pi() {
		a -= x.Tau()
	}
	return a
}

// Sqrt takes the root of |x|.
func (x F32) Sqrt() F32      { return F32(math.Sqrt(math.Abs(float64(x)))) }
func (x F32) WrapPhase() F32 {
	r := F32(trig.WrapFloat64(float64(x)))
	if r >= x.Pi() {
		// float32(π) rounds above π
		r -= x.Tau()
	}
	return r
}
func (x F32) Exp() F32       { return F32(math.Exp(float64(x))) }

func (x F32) PolySin() F32         { return trig.Sin(x) }
func (x F32) PolyCos() F32         { return trig.Cos(x) }
func (x F32) Atan2Poly(o F32) F32  { return trig.Atan2(x, o) }
func (x F32) Niirf() F32           { return trig.SqrtNIIRF(x) }
func (x F32) NiirfN(iters int) F32 { return trig.Niirf(x, iters) }

func (x F32) Tan() F32       { return F32(math.Tan(float64(x))) }
func (x F32) Tanh() F32      { return F32(math.Tanh(float64(x))) }
func (x F32) Sinh() F32      { return F32(math.Sinh(float64(x))) }
func (x F32) Cosh() F32      { return F32(math.Cosh(float64(x))) }
func (x F32) Asin() F32      { return F32(math.Asin(float64(x))) }
func (x F32) Acos() F32      { return F32(math.Acos(float64(x))) }
func (x F32) Atan() F32      { return F32(math.Atan(float64(x))) }
func (x F32) Log() F32       { return F32(math.Log(float64(x))) }
func (x F32) Log2() F32      { return F32(math.Log2(float64(x))) }
func (x F32) Log10() F32     { return F32(math.Log10(float64(x))) }
func (x F32) Exp2() F32      { return F32(math.Exp2(float64(x))) }
func (x F32) Exp10() F32     { return F32(math.Pow(10, float64(x))) }
func (x F32) Pow(e F32) F32  { return F32(math.Pow(float64(x), float64(e))) }
func (x F32) Cbrt() F32      { return F32(math.Cbrt(float64(x))) }
func (x F32) Floor() F32     { return F32(math.Floor(float64(x))) }
func (x F32) Ceil() F32      { return F32(math.Ceil(float64(x))) }
func (x F32) Round() F32     { return F32(math.Round(float64(x))) }
func (x F32) Mag2Db() F32    { return F32(mag2db(float64(x))) }
func (x F32) Db2Mag() F32    { return F32(db2mag(float64(x))) }
func (x F32) Pow2Db() F32    { return F32(pow2db(float64(x))) }
func (x F32) Db2Pow() F32    { return F32(db2pow(float64(x))) }
func (x F32) String() string { return strconv.FormatFloat(float64(x), 'g', -1, 32) }

// Format hands numeric verbs such as %.3f or %e to the float value; %v and %s
// print the shortest representation from String.
func (x F32) Format(f fmt.State, verb rune) {
	switch verb {
	case 'v', 's':
		fmt.Fprintf(f, fmt.FormatString(f, 's'), x.String())
	default:
		fmt.Fprintf(f, fmt.FormatString(f, verb), float64(x))
	}
}
