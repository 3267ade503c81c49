// Package qfmt implements binary Q-format fixed-point scalars.
//
// I[R, F] stores a signed value as a raw integer word R scaled by 2^-F, where
// the fractional bit count is carried by the marker type F. U[R, F] is the
// unsigned counterpart. All arithmetic saturates at the representable range:
// overflow yields MaxValue or MinValue, and division by zero yields MaxValue
// (or MinValue for a negative signed dividend).
//
// The marker types F0..F61 and the per-width aliases (I32F16, U16F8, ...) are
// generated by cmd/qgen.
//
// The trigonometric kernels need τ to be representable, so every alias keeps
// at least three integer bits, plus the sign bit for I.
package qfmt

//go:generate go run ../../cmd/qgen -o frac_gen.go

import (
	"fmt"
	"math"
	"math/bits"
	"strconv"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Frac is the fractional bit count marker.
type Frac interface {
	Bits() uint
}

func fracBits[F Frac]() uint {
	var f F
	return f.Bits()
}

func wordBits[R constraints.Integer]() uint {
	var r R
	return uint(unsafe.Sizeof(r)) * 8
}

// mulShift returns (a*b) >> f rounded to nearest, and whether the result
// exceeds 64 bits.
func mulShift(a, b uint64, f uint) (uint64, bool) {
	hi, lo := bits.Mul64(a, b)
	if f > 0 {
		var c uint64
		lo, c = bits.Add64(lo, 1<<(f-1), 0)
		hi += c
	}
	if hi>>f != 0 {
		return 0, true
	}
	return lo>>f | hi<<(64-f), false
}

// divShift returns (a << f) / b rounded to nearest, and whether the quotient
// exceeds 64 bits. b must not be zero.
func divShift(a, b uint64, f uint) (uint64, bool) {
	hi, lo := a>>(64-f), a<<f
	if f == 0 {
		hi = 0
	}
	if hi >= b {
		return 0, true
	}
	q, rem := bits.Div64(hi, lo, b)
	if rem >= b-rem {
		if q == math.MaxUint64 {
			return 0, true
		}
		q++
	}
	return q, false
}

func formatFloat(f fmt.State, verb rune, v float64) {
	switch verb {
	case 'v', 's':
		fmt.Fprintf(f, fmt.FormatString(f, 's'), strconv.FormatFloat(v, 'f', -1, 64))
	default:
		fmt.Fprintf(f, fmt.FormatString(f, verb), v)
	}
}
