package qfmt

import (
	"fmt"
	"math"
	"strconv"

	"github.com/beatoz/mixnum-go/libs/trig"
	"golang.org/x/exp/constraints"
)

// U is an unsigned fixed-point value with F fractional bits in a word of type R.
// Results below zero saturate to zero. U has no negation and no trigonometry;
// Sqrt uses the NIIRF kernel.
type U[R constraints.Unsigned, F Frac] struct {
	raw R
}

func (U[R, F]) maxRaw() R { return ^R(0) }

func (x U[R, F]) fromWide(m uint64) U[R, F] {
	if m > uint64(x.maxRaw()) {
		return U[R, F]{x.maxRaw()}
	}
	return U[R, F]{R(m)}
}

func (U[R, F]) FromRaw(r R) U[R, F] { return U[R, F]{r} }
func (x U[R, F]) Raw() R            { return x.raw }
func (U[R, F]) FracBits() uint      { return fracBits[F]() }
func (U[R, F]) WordBits() uint      { return wordBits[R]() }

func (U[R, F]) Zero() U[R, F]    { return U[R, F]{} }
func (x U[R, F]) One() U[R, F]   { return x.FromUint64(1) }
func (x U[R, F]) Pi() U[R, F]    { return x.FromFloat64(math.Pi) }
func (x U[R, F]) Tau() U[R, F]   { return x.FromFloat64(2 * math.Pi) }
func (x U[R, F]) MaxValue() U[R, F] { return U[R, F]{x.maxRaw()} }
func (U[R, F]) MinValue() U[R, F]   { return U[R, F]{} }

func (x U[R, F]) FromInt32(v int32) U[R, F] { return x.FromInt64(int64(v)) }

func (x U[R, F]) FromInt64(v int64) U[R, F] {
	if v <= 0 {
		return U[R, F]{}
	}
	return x.FromUint64(uint64(v))
}

func (x U[R, F]) FromUint32(v uint32) U[R, F] { return x.FromUint64(uint64(v)) }

func (x U[R, F]) FromUint64(v uint64) U[R, F] {
	f := fracBits[F]()
	if v > uint64(x.maxRaw()>>f) {
		return x.MaxValue()
	}
	return U[R, F]{R(v) << f}
}

func (x U[R, F]) FromFloat32(v float32) U[R, F] { return x.FromFloat64(float64(v)) }

// FromFloat64 rounds to the nearest representable value. NaN and negative
// values map to zero.
func (x U[R, F]) FromFloat64(v float64) U[R, F] {
	if math.IsNaN(v) || v <= 0 {
		return U[R, F]{}
	}
	s := math.Round(math.Ldexp(v, int(fracBits[F]())))
	if s >= float64(x.maxRaw()) {
		return x.MaxValue()
	}
	return U[R, F]{R(uint64(s))}
}

func (x U[R, F]) Uint64() uint64 { return uint64(x.raw) >> fracBits[F]() }

func (x U[R, F]) Uint32() uint32 {
	v := x.Uint64()
	if v > math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(v)
}

func (x U[R, F]) Int64() int64 {
	v := x.Uint64()
	if v > math.MaxInt64 {
		return math.MaxInt64
	}
	return int64(v)
}

func (x U[R, F]) Int32() int32 {
	v := x.Uint64()
	if v > math.MaxInt32 {
		return math.MaxInt32
	}
	return int32(v)
}

func (x U[R, F]) Float64() float64 { return math.Ldexp(float64(x.raw), -int(fracBits[F]())) }
func (x U[R, F]) Float32() float32 { return float32(x.Float64()) }

func (x U[R, F]) Add(o U[R, F]) U[R, F] {
	s := x.raw + o.raw
	if s < x.raw {
		return x.MaxValue()
	}
	return U[R, F]{s}
}

func (x U[R, F]) Sub(o U[R, F]) U[R, F] {
	if o.raw > x.raw {
		return U[R, F]{}
	}
	return U[R, F]{x.raw - o.raw}
}

func (x U[R, F]) Mul(o U[R, F]) U[R, F] {
	m, overflow := mulShift(uint64(x.raw), uint64(o.raw), fracBits[F]())
	if overflow {
		return x.MaxValue()
	}
	return x.fromWide(m)
}

func (x U[R, F]) Div(o U[R, F]) U[R, F] {
	if o.raw == 0 {
		return x.MaxValue()
	}
	q, overflow := divShift(uint64(x.raw), uint64(o.raw), fracBits[F]())
	if overflow {
		return x.MaxValue()
	}
	return x.fromWide(q)
}

func (x U[R, F]) Cmp(o U[R, F]) int {
	switch {
	case x.raw < o.raw:
		return -1
	case x.raw > o.raw:
		return 1
	}
	return 0
}

func (x U[R, F]) Abs() U[R, F]     { return x }
func (x U[R, F]) Sign() U[R, F]    { return x.One() }
func (x U[R, F]) IsPositive() bool { return x.raw > 0 }
func (U[R, F]) IsNegative() bool   { return false }

func (x U[R, F]) Powi(n int) U[R, F]           { return trig.Powi(x, n) }
func (x U[R, F]) Sqrt() U[R, F]                { return trig.SqrtNIIRF(x) }
func (x U[R, F]) Exp() U[R, F]                 { return trig.Exp(x) }
func (x U[R, F]) String() string               { return strconv.FormatFloat(x.Float64(), 'f', -1, 64) }
func (x U[R, F]) Format(f fmt.State, verb rune) { formatFloat(f, verb, x.Float64()) }
