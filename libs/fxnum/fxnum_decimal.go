//go:build decimal

package fxnum

import (
	"math"
	"math/big"

	"github.com/beatoz/mixnum-go/libs/trig"
	"github.com/shopspring/decimal"
)

// products are rounded to this many places so that the kernels do not grow
// the coefficient without bound
const mulPrecision = 24

var (
	ZERO = New(0, 0)
	ONE  = New(1, 0)
	TWO  = New(2, 0)

	dcMax = FxNum{decimal.New(1, 38)}
	dcMin = FxNum{decimal.New(-1, 38)}
	dcPi  = FxNum{decimal.RequireFromString("3.14159265358979323846264338327950288")}
	dcTau = FxNum{decimal.RequireFromString("6.28318530717958647692528676655900577")}
)

func init() {
	decimal.DivisionPrecision = 16
}

type FxNum struct {
	decimal.Decimal
}

func New(val int64, exp int32) FxNum {
	return FxNum{decimal.New(val, -exp)}
}

func FromInt(val int64) FxNum {
	return FxNum{decimal.NewFromInt(val)}
}

func FromFloat(val float64) FxNum {
	return ZERO.FromFloat64(val)
}

func FromString(val string) (FxNum, error) {
	d, err := decimal.NewFromString(val)
	if err != nil {
		return ZERO, err
	}
	return FxNum{d}.clamp(), nil
}

func (x FxNum) clamp() FxNum {
	if x.Decimal.GreaterThan(dcMax.Decimal) {
		return dcMax
	}
	if x.Decimal.LessThan(dcMin.Decimal) {
		return dcMin
	}
	return x
}

func (FxNum) Pi() FxNum       { return dcPi }
func (FxNum) Tau() FxNum      { return dcTau }
func (FxNum) MaxValue() FxNum { return dcMax }
func (FxNum) MinValue() FxNum { return dcMin }

func (FxNum) FromInt64(v int64) FxNum {
	return FxNum{decimal.NewFromInt(v)}
}

func (FxNum) FromUint64(v uint64) FxNum {
	return FxNum{decimal.NewFromBigInt(new(big.Int).SetUint64(v), 0)}
}

// FromFloat64 maps NaN to zero and infinities to the range limits.
func (FxNum) FromFloat64(v float64) FxNum {
	switch {
	case math.IsNaN(v):
		return ZERO
	case math.IsInf(v, 1):
		return dcMax
	case math.IsInf(v, -1):
		return dcMin
	}
	return FxNum{decimal.NewFromFloat(v)}.clamp()
}

func (x FxNum) Int64() int64 { return x.Decimal.IntPart() }

func (x FxNum) Float64() float64 {
	f, _ := x.Decimal.Float64()
	return f
}

func (x FxNum) Add(o FxNum) FxNum {
	return FxNum{x.Decimal.Add(o.Decimal)}.clamp()
}

func (x FxNum) Sub(o FxNum) FxNum {
	return FxNum{x.Decimal.Sub(o.Decimal)}.clamp()
}

func (x FxNum) Mul(o FxNum) FxNum {
	return FxNum{x.Decimal.Mul(o.Decimal).Round(mulPrecision)}.clamp()
}

func (x FxNum) Div(o FxNum) FxNum {
	if o.Decimal.IsZero() {
		if x.IsNegative() {
			return dcMin
		}
		return dcMax
	}
	return FxNum{x.Decimal.Div(o.Decimal)}.clamp()
}

func (x FxNum) Cmp(o FxNum) int {
	return x.Decimal.Cmp(o.Decimal)
}

func (x FxNum) Neg() FxNum { return FxNum{x.Decimal.Neg()} }
func (x FxNum) Abs() FxNum { return FxNum{x.Decimal.Abs()} }

// Sin and Cos use the series of shopspring/decimal on the wrapped angle.
func (x FxNum) Sin() FxNum { return FxNum{trig.WrapPhase(x).Decimal.Sin()} }
func (x FxNum) Cos() FxNum { return FxNum{trig.WrapPhase(x).Decimal.Cos()} }

func (x FxNum) ToDecimal() (decimal.Decimal, error) {
	return x.Decimal, nil
}
