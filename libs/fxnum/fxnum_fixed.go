//go:build !decimal

package fxnum

import (
	"encoding/binary"
	"math"

	"github.com/beatoz/mixnum-go/libs/trig"
	"github.com/robaho/fixed"
	"github.com/shopspring/decimal"
)

var (
	ZERO = New(0, 0)
	ONE  = New(1, 0)
	TWO  = New(2, 0)

	fxMax = New(999999999999999999, 7) // 99999999999.9999999
	fxMin = New(-999999999999999999, 7)
	fxPi  = New(31415927, 7)
	fxTau = New(62831853, 7)

	maxInt   = int64(99999999999)
	maxFloat = fxMax.Fixed.Float()
)

type FxNum struct {
	fixed.Fixed
}

func New(val int64, nexp int32) FxNum {
	return FxNum{fixed.NewI(val, uint(nexp))}
}

func FromInt(val int64) FxNum {
	return ZERO.FromInt64(val)
}

func FromFloat(val float64) FxNum {
	return ZERO.FromFloat64(val)
}

func FromString(val string) (FxNum, error) {
	f, err := fixed.Parse(val)
	if err != nil {
		return ZERO, err
	}
	return FxNum{f}.clamp(), nil
}

func (x FxNum) clamp() FxNum {
	if x.Fixed.IsNaN() {
		return ZERO
	}
	if x.Fixed.GreaterThan(fxMax.Fixed) {
		return fxMax
	}
	if x.Fixed.LessThan(fxMin.Fixed) {
		return fxMin
	}
	return x
}

func (FxNum) Pi() FxNum       { return fxPi }
func (FxNum) Tau() FxNum      { return fxTau }
func (FxNum) MaxValue() FxNum { return fxMax }
func (FxNum) MinValue() FxNum { return fxMin }

func (FxNum) FromInt64(v int64) FxNum {
	if v > maxInt {
		return fxMax
	}
	if v < -maxInt {
		return fxMin
	}
	return New(v, 0)
}

func (FxNum) FromUint64(v uint64) FxNum {
	if v > uint64(maxInt) {
		return fxMax
	}
	return New(int64(v), 0)
}

// FromFloat64 rounds to 7 decimal places. NaN maps to zero.
func (FxNum) FromFloat64(v float64) FxNum {
	switch {
	case math.IsNaN(v):
		return ZERO
	case v >= maxFloat:
		return fxMax
	case v <= -maxFloat:
		return fxMin
	}
	return FxNum{fixed.NewF(v)}
}

// Int64 truncates toward zero.
func (x FxNum) Int64() int64 {
	buf, err := x.Fixed.MarshalBinary()
	if err != nil || x.Fixed.IsNaN() {
		return 0
	}
	raw, _ := binary.Varint(buf)
	return raw / int64(math.Pow10(fixedScaleDigits))
}

func (x FxNum) Float64() float64 { return x.Fixed.Float() }

func (x FxNum) Add(o FxNum) FxNum {
	return FxNum{x.Fixed.Add(o.Fixed)}.clamp()
}

func (x FxNum) Sub(o FxNum) FxNum {
	return FxNum{x.Fixed.Sub(o.Fixed)}.clamp()
}

func (x FxNum) Mul(o FxNum) FxNum {
	// the int64 product inside fixed wraps silently, so range is checked first
	if p := x.Fixed.Float() * o.Fixed.Float(); p >= maxFloat {
		return fxMax
	} else if p <= -maxFloat {
		return fxMin
	}
	return FxNum{x.Fixed.Mul(o.Fixed)}.clamp()
}

func (x FxNum) Div(o FxNum) FxNum {
	if o.Fixed.Cmp(fixed.ZERO) == 0 {
		if x.IsNegative() {
			return fxMin
		}
		return fxMax
	}
	q := x.Fixed.Div(o.Fixed)
	if q.IsNaN() {
		// out of range
		if x.IsNegative() != o.IsNegative() {
			return fxMin
		}
		return fxMax
	}
	return FxNum{q}
}

func (x FxNum) Cmp(o FxNum) int {
	return x.Fixed.Cmp(o.Fixed)
}

func (x FxNum) Neg() FxNum {
	return FxNum{fixed.ZERO.Sub(x.Fixed)}
}

func (x FxNum) Abs() FxNum {
	if x.IsNegative() {
		return x.Neg()
	}
	return x
}

func (x FxNum) Sin() FxNum { return trig.Sin(x) }
func (x FxNum) Cos() FxNum { return trig.Cos(x) }

func (x FxNum) ToDecimal() (decimal.Decimal, error) {
	return FixedToDecimalByInt(x.Fixed)
}

func (x FxNum) ToFixed() (fixed.Fixed, error) {
	return x.Fixed, nil
}
