// Package fxnum provides FxNum, a decimal fixed-point scalar with two
// interchangeable backends: robaho/fixed (7 decimal places, the default) and
// shopspring/decimal (build tag `decimal`). Both satisfy the same contracts, so
// every kernel and complex operation runs unchanged on either.
//
// Arithmetic saturates at MaxValue/MinValue instead of overflowing, and
// division by zero yields MaxValue (MinValue for a negative dividend).
// Trigonometry, square root and the exponential are the deterministic
// polynomial kernels from libs/trig unless the backend has its own.
package fxnum

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/beatoz/mixnum-go/libs/trig"
	"github.com/beatoz/mixnum-go/types"
	"github.com/robaho/fixed"
	"github.com/shopspring/decimal"
)

// fixedScaleDigits represents the default scale (7 decimal places) used by robaho/fixed.
const fixedScaleDigits = 7

var (
	_ types.Angular[FxNum]     = FxNum{}
	_ types.Exponential[FxNum] = FxNum{}
)

// FixedToDecimalByInt converts a robaho/fixed.Fixed value to a shopspring/decimal.Decimal.
// It leverages the internal int64 value via MarshalBinary for optimized performance.
func FixedToDecimalByInt(f fixed.Fixed) (decimal.Decimal, error) {
	// Handle NaN values, as shopspring/decimal does not natively support them.
	if f.IsNaN() {
		return decimal.Decimal{}, fmt.Errorf("cannot convert NaN fixed.Fixed to decimal.Decimal")
	}

	// MarshalBinary writes the internal int64 fp as a varint.
	buf, err := f.MarshalBinary()
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("failed to marshal fixed.Fixed to binary: %w", err)
	}
	raw, _ := binary.Varint(buf)

	// The 'raw' value is effectively (actual_value * 10^fixedScaleDigits).
	// Therefore, decimal.New(raw, -fixedScaleDigits) yields the exact decimal number.
	return decimal.New(raw, -fixedScaleDigits), nil
}

//
// backend independent part of the contracts

func (FxNum) Zero() FxNum { return ZERO }
func (FxNum) One() FxNum  { return ONE }

func (x FxNum) FromInt32(v int32) FxNum     { return x.FromInt64(int64(v)) }
func (x FxNum) FromUint32(v uint32) FxNum   { return x.FromInt64(int64(v)) }
func (x FxNum) FromFloat32(v float32) FxNum { return x.FromFloat64(float64(v)) }

func (x FxNum) Int32() int32 {
	v := x.Int64()
	if v > math.MaxInt32 {
		return math.MaxInt32
	}
	if v < math.MinInt32 {
		return math.MinInt32
	}
	return int32(v)
}

func (x FxNum) Uint64() uint64 {
	if x.IsNegative() {
		return 0
	}
	return uint64(x.Int64())
}

func (x FxNum) Uint32() uint32 {
	v := x.Uint64()
	if v > math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(v)
}

func (x FxNum) Float32() float32 { return float32(x.Float64()) }

// Sign shadows the int valued Sign of the backend.
func (x FxNum) Sign() FxNum {
	if x.IsNegative() {
		return ONE.Neg()
	}
	return ONE
}

func (x FxNum) IsPositive() bool { return x.Cmp(ZERO) > 0 }
func (x FxNum) IsNegative() bool { return x.Cmp(ZERO) < 0 }

func (x FxNum) Equal(o FxNum) bool { return x.Cmp(o) == 0 }

func (x FxNum) Powi(n int) FxNum     { return trig.Powi(x, n) }
func (x FxNum) Atan2(o FxNum) FxNum  { return trig.Atan2(x, o) }
func (x FxNum) Sqrt() FxNum          { return trig.SqrtNIIRF(x) }
func (x FxNum) WrapPhase() FxNum     { return trig.WrapPhase(x) }
func (x FxNum) Exp() FxNum           { return trig.Exp(x) }
func (x FxNum) SinCos() (FxNum, FxNum) {
	return x.Sin(), x.Cos()
}

func (x FxNum) Ln() (FxNum, error) {
	return trig.Ln(x)
}

// Pow returns x^o, or zero when x is not positive.
func (x FxNum) Pow(o FxNum) FxNum {
	ret, _ := trig.Pow(x, o)
	return ret
}

// Format prints the backend's decimal string for %v and %s. %f with a
// precision is rounded in decimal, half away from zero; other numeric verbs
// get the float64 value.
func (x FxNum) Format(f fmt.State, verb rune) {
	switch verb {
	case 'v', 's':
		fmt.Fprintf(f, fmt.FormatString(f, 's'), x.String())
	case 'f', 'F':
		if prec, ok := f.Precision(); ok {
			if d, err := x.ToDecimal(); err == nil {
				s := d.StringFixed(int32(prec))
				if f.Flag('+') && !d.IsNegative() {
					s = "+" + s
				}
				w, _ := f.Width()
				if f.Flag('-') {
					fmt.Fprintf(f, "%-*s", w, s)
				} else {
					fmt.Fprintf(f, "%*s", w, s)
				}
				return
			}
		}
		fmt.Fprintf(f, fmt.FormatString(f, verb), x.Float64())
	default:
		fmt.Fprintf(f, fmt.FormatString(f, verb), x.Float64())
	}
}
