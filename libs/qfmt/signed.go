package qfmt

import (
	"fmt"
	"math"
	"strconv"

	"github.com/beatoz/mixnum-go/libs/trig"
	"golang.org/x/exp/constraints"
)

// I is a signed fixed-point value with F fractional bits in a word of type R.
type I[R constraints.Signed, F Frac] struct {
	raw R
}

func (I[R, F]) maxRaw() R {
	return R(1)<<(wordBits[R]()-1) - 1
}

func (x I[R, F]) minRaw() R {
	return -x.maxRaw() - 1
}

// fromMag builds a value from a magnitude and a sign, saturating.
func (x I[R, F]) fromMag(m uint64, neg bool) I[R, F] {
	limit := uint64(x.maxRaw())
	if neg {
		if m > limit+1 {
			return I[R, F]{x.minRaw()}
		}
		return I[R, F]{R(-int64(m))}
	}
	if m > limit {
		return I[R, F]{x.maxRaw()}
	}
	return I[R, F]{R(m)}
}

func (x I[R, F]) mag() uint64 {
	if x.raw < 0 {
		return uint64(-int64(x.raw))
	}
	return uint64(x.raw)
}

func (I[R, F]) FromRaw(r R) I[R, F] { return I[R, F]{r} }
func (x I[R, F]) Raw() R            { return x.raw }
func (I[R, F]) FracBits() uint      { return fracBits[F]() }
func (I[R, F]) WordBits() uint      { return wordBits[R]() }

func (I[R, F]) Zero() I[R, F] { return I[R, F]{} }
func (x I[R, F]) One() I[R, F] {
	return x.FromInt64(1)
}
func (x I[R, F]) Pi() I[R, F]  { return x.FromFloat64(math.Pi) }
func (x I[R, F]) Tau() I[R, F] { return x.FromFloat64(2 * math.Pi) }

func (x I[R, F]) MaxValue() I[R, F] { return I[R, F]{x.maxRaw()} }
func (x I[R, F]) MinValue() I[R, F] { return I[R, F]{x.minRaw()} }

func (x I[R, F]) FromInt32(v int32) I[R, F] { return x.FromInt64(int64(v)) }

func (x I[R, F]) FromInt64(v int64) I[R, F] {
	f := fracBits[F]()
	if v > int64(x.maxRaw()>>f) {
		return x.MaxValue()
	}
	if v < int64(x.minRaw()>>f) {
		return x.MinValue()
	}
	return I[R, F]{R(v) << f}
}

func (x I[R, F]) FromUint32(v uint32) I[R, F] { return x.FromUint64(uint64(v)) }

func (x I[R, F]) FromUint64(v uint64) I[R, F] {
	if v > math.MaxInt64 {
		return x.MaxValue()
	}
	return x.FromInt64(int64(v))
}

func (x I[R, F]) FromFloat32(v float32) I[R, F] { return x.FromFloat64(float64(v)) }

// FromFloat64 rounds to the nearest representable value. NaN maps to zero.
func (x I[R, F]) FromFloat64(v float64) I[R, F] {
	if math.IsNaN(v) {
		return I[R, F]{}
	}
	s := math.Round(math.Ldexp(v, int(fracBits[F]())))
	if s >= float64(x.maxRaw()) {
		return x.MaxValue()
	}
	if s <= float64(x.minRaw()) {
		return x.MinValue()
	}
	return I[R, F]{R(int64(s))}
}

// Int64 truncates toward zero.
func (x I[R, F]) Int64() int64 {
	f := fracBits[F]()
	q := int64(x.raw) >> f
	if x.raw < 0 && int64(x.raw)&(int64(1)<<f-1) != 0 {
		q++
	}
	return q
}

func (x I[R, F]) Int32() int32 {
	v := x.Int64()
	if v > math.MaxInt32 {
		return math.MaxInt32
	}
	if v < math.MinInt32 {
		return math.MinInt32
	}
	return int32(v)
}

func (x I[R, F]) Uint64() uint64 {
	if x.raw < 0 {
		return 0
	}
	return uint64(x.Int64())
}

func (x I[R, F]) Uint32() uint32 {
	v := x.Uint64()
	if v > math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(v)
}

func (x I[R, F]) Float64() float64 { return math.Ldexp(float64(x.raw), -int(fracBits[F]())) }
func (x I[R, F]) Float32() float32 { return float32(x.Float64()) }

func (x I[R, F]) Add(o I[R, F]) I[R, F] {
	s := x.raw + o.raw
	if x.raw >= 0 && o.raw >= 0 && s < 0 {
		return x.MaxValue()
	}
	if x.raw < 0 && o.raw < 0 && s >= 0 {
		return x.MinValue()
	}
	return I[R, F]{s}
}

func (x I[R, F]) Sub(o I[R, F]) I[R, F] {
	d := x.raw - o.raw
	if x.raw >= 0 && o.raw < 0 && d < 0 {
		return x.MaxValue()
	}
	if x.raw < 0 && o.raw >= 0 && d >= 0 {
		return x.MinValue()
	}
	return I[R, F]{d}
}

func (x I[R, F]) Mul(o I[R, F]) I[R, F] {
	neg := (x.raw < 0) != (o.raw < 0)
	m, overflow := mulShift(x.mag(), o.mag(), fracBits[F]())
	if overflow {
		if neg {
			return x.MinValue()
		}
		return x.MaxValue()
	}
	return x.fromMag(m, neg)
}

func (x I[R, F]) Div(o I[R, F]) I[R, F] {
	neg := (x.raw < 0) != (o.raw < 0)
	if o.raw == 0 {
		if x.raw < 0 {
			return x.MinValue()
		}
		return x.MaxValue()
	}
	q, overflow := divShift(x.mag(), o.mag(), fracBits[F]())
	if overflow {
		if neg {
			return x.MinValue()
		}
		return x.MaxValue()
	}
	return x.fromMag(q, neg)
}

func (x I[R, F]) Cmp(o I[R, F]) int {
	switch {
	case x.raw < o.raw:
		return -1
	case x.raw > o.raw:
		return 1
	}
	return 0
}

func (x I[R, F]) Neg() I[R, F] {
	if x.raw == x.minRaw() {
		return x.MaxValue()
	}
	return I[R, F]{-x.raw}
}

func (x I[R, F]) Abs() I[R, F] {
	if x.raw < 0 {
		return x.Neg()
	}
	return x
}

func (x I[R, F]) Sign() I[R, F] {
	if x.raw < 0 {
		return x.FromInt64(-1)
	}
	return x.One()
}

func (x I[R, F]) IsPositive() bool { return x.raw > 0 }
func (x I[R, F]) IsNegative() bool { return x.raw < 0 }

func (x I[R, F]) Powi(n int) I[R, F]           { return trig.Powi(x, n) }
func (x I[R, F]) Sin() I[R, F]                 { return trig.Sin(x) }
func (x I[R, F]) Cos() I[R, F]                 { return trig.Cos(x) }
func (x I[R, F]) SinCos() (I[R, F], I[R, F])   { return trig.SinCos(x) }
func (x I[R, F]) Atan2(o I[R, F]) I[R, F]      { return trig.Atan2(x, o) }
func (x I[R, F]) Sqrt() I[R, F]                { return trig.SqrtNIIRF(x) }
func (x I[R, F]) WrapPhase() I[R, F]           { return trig.WrapPhase(x) }
func (x I[R, F]) Exp() I[R, F]                 { return trig.Exp(x) }
func (x I[R, F]) String() string               { return strconv.FormatFloat(x.Float64(), 'f', -1, 64) }
func (x I[R, F]) Format(f fmt.State, verb rune) { formatFloat(f, verb, x.Float64()) }
