package hostf

import (
	"fmt"
	"math"
	"strconv"

	"github.com/beatoz/mixnum-go/libs/trig"
	"github.com/beatoz/mixnum-go/types"
)

// F64 is a float64 scalar.
type F64 float64

var _ types.Angular[F64] = F64(0)
var _ types.Exponential[F64] = F64(0)

func (F64) Zero() F64 { return 0 }
func (F64) One() F64  { return 1 }
func (F64) Pi() F64   { return math.Pi }
func (F64) Tau() F64  { return 2 * math.Pi }

func (F64) MaxValue() F64 { return math.MaxFloat64 }
func (F64) MinValue() F64 { return -math.MaxFloat64 }

func (F64) FromInt32(v int32) F64     { return F64(v) }
func (F64) FromInt64(v int64) F64     { return F64(v) }
func (F64) FromUint32(v uint32) F64   { return F64(v) }
func (F64) FromUint64(v uint64) F64   { return F64(v) }
func (F64) FromFloat32(v float32) F64 { return F64(v) }
func (F64) FromFloat64(v float64) F64 { return F64(v) }

func (x F64) Int32() int32     { return toInt32(float64(x)) }
func (x F64) Int64() int64     { return toInt64(float64(x)) }
func (x F64) Uint32() uint32   { return toUint32(float64(x)) }
func (x F64) Uint64() uint64   { return toUint64(float64(x)) }
func (x F64) Float32() float32 { return float32(x) }
func (x F64) Float64() float64 { return float64(x) }

func (x F64) Add(o F64) F64 { return x + o }
func (x F64) Sub(o F64) F64 { return x - o }
func (x F64) Mul(o F64) F64 { return x * o }
func (x F64) Div(o F64) F64 { return x / o }
func (x F64) Cmp(o F64) int { return cmp(float64(x), float64(o)) }
func (x F64) Neg() F64      { return -x }
func (x F64) Abs() F64      { return F64(math.Abs(float64(x))) }

func (x F64) Sign() F64 {
	if x < 0 {
		return -1
	}
	return 1
}

func (x F64) IsPositive() bool { return x > 0 }
func (x F64) IsNegative() bool { return x < 0 }
func (x F64) IsNaN() bool      { return math.IsNaN(float64(x)) }
func (x F64) IsInf() bool      { return math.IsInf(float64(x), 0) }

func (x F64) Powi(n int) F64 { return F64(math.Pow(float64(x), float64(n))) }

func (x F64) Sin() F64 { return F64(math.Sin(float64(x))) }
func (x F64) Cos() F64 { return F64(math.Cos(float64(x))) }
func (x F64) SinCos() (F64, F64) {
	s, c := math.Sincos(float64(x))
	return F64(s), F64(c)
}
func (x F64) Atan2(o F64) F64 { return F64(atan2(float64(x), float64(o))) }

// Sqrt takes the root of |x|.
func (x F64) Sqrt() F64      { return F64(math.Sqrt(math.Abs(float64(x)))) }
func (x F64) WrapPhase() F64 { return F64(trig.WrapFloat64(float64(x))) }
func (x F64) Exp() F64       { return F64(math.Exp(float64(x))) }

func (x F64) PolySin() F64         { return trig.Sin(x) }
func (x F64) PolyCos() F64         { return trig.Cos(x) }
func (x F64) Atan2Poly(o F64) F64  { return trig.Atan2(x, o) }
func (x F64) Niirf() F64           { return trig.SqrtNIIRF(x) }
func (x F64) NiirfN(iters int) F64 { return trig.Niirf(x, iters) }

func (x F64) Tan() F64       { return F64(math.Tan(float64(x))) }
func (x F64) Tanh() F64      { return F64(math.Tanh(float64(x))) }
func (x F64) Sinh() F64      { return F64(math.Sinh(float64(x))) }
func (x F64) Cosh() F64      { return F64(math.Cosh(float64(x))) }
func (x F64) Asin() F64      { return F64(math.Asin(float64(x))) }
func (x F64) Acos() F64      { return F64(math.Acos(float64(x))) }
func (x F64) Atan() F64      { return F64(math.Atan(float64(x))) }
func (x F64) Log() F64       { return F64(math.Log(float64(x))) }
func (x F64) Log2() F64      { return F64(math.Log2(float64(x))) }
func (x F64) Log10() F64     { return F64(math.Log10(float64(x))) }
func (x F64) Exp2() F64      { return F64(math.Exp2(float64(x))) }
func (x F64) Exp10() F64     { return F64(math.Pow(10, float64(x))) }
func (x F64) Pow(e F64) F64  { return F64(math.Pow(float64(x), float64(e))) }
func (x F64) Cbrt() F64      { return F64(math.Cbrt(float64(x))) }
func (x F64) Floor() F64     { return F64(math.Floor(float64(x))) }
func (x F64) Ceil() F64      { return F64(math.Ceil(float64(x))) }
func (x F64) Round() F64     { return F64(math.Round(float64(x))) }
func (x F64) Mag2Db() F64    { return F64(mag2db(float64(x))) }
func (x F64) Db2Mag() F64    { return F64(db2mag(float64(x))) }
func (x F64) Pow2Db() F64    { return F64(pow2db(float64(x))) }
func (x F64) Db2Pow() F64    { return F64(db2pow(float64(x))) }
func (x F64) String() string { return strconv.FormatFloat(float64(x), 'g', -1, 64) }

// Format hands numeric verbs such as %.3f or %e to the float value; %v and %s
// print the shortest representation from String.
func (x F64) Format(f fmt.State, verb rune) {
	switch verb {
	case 'v', 's':
		fmt.Fprintf(f, fmt.FormatString(f, 's'), x.String())
	default:
		fmt.Fprintf(f, fmt.FormatString(f, verb), float64(x))
	}
}
