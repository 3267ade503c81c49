// Package uqnum provides UQ128, an unsigned fixed-point scalar with 128 integer
// and 128 fractional bits held in a holiman/uint256 word.
//
// Arithmetic saturates: results below zero are zero and results beyond the word
// are MaxValue. Products and quotients are computed at 512 bits through
// MulDivOverflow, so no precision is lost before the final truncation.
package uqnum

import (
	"fmt"
	"math"
	"math/big"

	"github.com/beatoz/mixnum-go/libs/trig"
	"github.com/beatoz/mixnum-go/types"
	"github.com/beatoz/mixnum-go/types/xerrors"
	"github.com/holiman/uint256"
	"github.com/shopspring/decimal"
)

const (
	FracBits = 128

	// digits kept by String; 2^-128 is about 2.9e-39
	displayDigits = 38
)

var (
	oneRaw = new(uint256.Int).Lsh(uint256.NewInt(1), FracBits)
	piRaw  = uint256.MustFromHex("0x3243f6a8885a308d313198a2e03707345")
	tauRaw = uint256.MustFromHex("0x6487ed5110b4611a62633145c06e0e689")
	maxRaw = new(uint256.Int).SetAllOne()

	// 5^128, so that raw·5^128·10^-128 is the exact decimal value
	pow5 = new(big.Int).Exp(big.NewInt(5), big.NewInt(FracBits), nil)
)

var (
	_ types.Number[UQ128]      = UQ128{}
	_ types.Rooter[UQ128]      = UQ128{}
	_ types.Exponential[UQ128] = UQ128{}
)

type UQ128 struct {
	raw uint256.Int
}

func FromRaw(r *uint256.Int) UQ128 {
	return UQ128{*r}
}

func (x UQ128) Raw() *uint256.Int {
	return x.raw.Clone()
}

func (UQ128) Zero() UQ128     { return UQ128{} }
func (UQ128) One() UQ128      { return UQ128{*oneRaw} }
func (UQ128) Pi() UQ128       { return UQ128{*piRaw} }
func (UQ128) Tau() UQ128      { return UQ128{*tauRaw} }
func (UQ128) MaxValue() UQ128 { return UQ128{*maxRaw} }
func (UQ128) MinValue() UQ128 { return UQ128{} }

func (x UQ128) FromInt32(v int32) UQ128 { return x.FromInt64(int64(v)) }

func (x UQ128) FromInt64(v int64) UQ128 {
	if v <= 0 {
		return UQ128{}
	}
	return x.FromUint64(uint64(v))
}

func (x UQ128) FromUint32(v uint32) UQ128 { return x.FromUint64(uint64(v)) }

func (UQ128) FromUint64(v uint64) UQ128 {
	var r uint256.Int
	r.Lsh(uint256.NewInt(v), FracBits)
	return UQ128{r}
}

func (x UQ128) FromFloat32(v float32) UQ128 { return x.FromFloat64(float64(v)) }

// FromFloat64 truncates below 2^-128. NaN and negative values map to zero.
func (UQ128) FromFloat64(v float64) UQ128 {
	if math.IsNaN(v) || v <= 0 {
		return UQ128{}
	}
	if v >= math.Ldexp(1, 256-FracBits) {
		return UQ128{*maxRaw}
	}
	f := new(big.Float).SetFloat64(v)
	f.SetMantExp(f, FracBits)
	i, _ := f.Int(nil)
	r, _ := uint256.FromBig(i)
	return UQ128{*r}
}

// FromDecimal truncates below 2^-128 and saturates outside [0, MaxValue].
func FromDecimal(d decimal.Decimal) UQ128 {
	if d.Sign() <= 0 {
		return UQ128{}
	}
	scaled := d.Mul(decimal.NewFromBigInt(oneRaw.ToBig(), 0)).BigInt()
	r, overflow := uint256.FromBig(scaled)
	if overflow {
		return UQ128{*maxRaw}
	}
	return UQ128{*r}
}

func Parse(s string) (UQ128, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return UQ128{}, xerrors.ErrParse.Wrap(err)
	}
	return FromDecimal(d), nil
}

func (x UQ128) intPart() *uint256.Int {
	return new(uint256.Int).Rsh(&x.raw, FracBits)
}

func (x UQ128) Uint64() uint64 {
	i := x.intPart()
	if !i.IsUint64() {
		return math.MaxUint64
	}
	return i.Uint64()
}

func (x UQ128) Uint32() uint32 {
	v := x.Uint64()
	if v > math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(v)
}

func (x UQ128) Int64() int64 {
	v := x.Uint64()
	if v > math.MaxInt64 {
		return math.MaxInt64
	}
	return int64(v)
}

func (x UQ128) Int32() int32 {
	v := x.Uint64()
	if v > math.MaxInt32 {
		return math.MaxInt32
	}
	return int32(v)
}

func (x UQ128) Float64() float64 {
	f := new(big.Float).SetInt(x.raw.ToBig())
	f.SetMantExp(f, -FracBits)
	v, _ := f.Float64()
	return v
}

func (x UQ128) Float32() float32 { return float32(x.Float64()) }

// ToDecimal returns the exact decimal value of x.
func (x UQ128) ToDecimal() decimal.Decimal {
	n := new(big.Int).Mul(x.raw.ToBig(), pow5)
	return decimal.NewFromBigInt(n, -FracBits)
}

func (x UQ128) Add(o UQ128) UQ128 {
	var r uint256.Int
	if _, overflow := r.AddOverflow(&x.raw, &o.raw); overflow {
		return UQ128{*maxRaw}
	}
	return UQ128{r}
}

func (x UQ128) Sub(o UQ128) UQ128 {
	var r uint256.Int
	if _, underflow := r.SubOverflow(&x.raw, &o.raw); underflow {
		return UQ128{}
	}
	return UQ128{r}
}

func (x UQ128) Mul(o UQ128) UQ128 {
	var r uint256.Int
	if _, overflow := r.MulDivOverflow(&x.raw, &o.raw, oneRaw); overflow {
		return UQ128{*maxRaw}
	}
	return UQ128{r}
}

// Div truncates. Division by zero gives MaxValue.
func (x UQ128) Div(o UQ128) UQ128 {
	if o.raw.IsZero() {
		return UQ128{*maxRaw}
	}
	var r uint256.Int
	if _, overflow := r.MulDivOverflow(&x.raw, oneRaw, &o.raw); overflow {
		return UQ128{*maxRaw}
	}
	return UQ128{r}
}

func (x UQ128) Cmp(o UQ128) int { return x.raw.Cmp(&o.raw) }

func (x UQ128) Equal(o UQ128) bool { return x.raw.Eq(&o.raw) }

func (x UQ128) Sign() UQ128       { return x.One() }
func (x UQ128) IsPositive() bool  { return !x.raw.IsZero() }
func (UQ128) IsNegative() bool    { return false }
func (x UQ128) Abs() UQ128        { return x }
func (x UQ128) Powi(n int) UQ128  { return trig.Powi(x, n) }
func (x UQ128) Exp() UQ128        { return trig.Exp(x) }
func (x UQ128) Niirf(n int) UQ128 { return trig.Niirf(x, n) }

// Sqrt is the integer square root of the raw word, shifted so that the
// radicand keeps as many bits as fit: floor(sqrt(x)) to within 2^-64 for the
// largest values and exactly for values below one.
func (x UQ128) Sqrt() UQ128 {
	if x.raw.IsZero() {
		return x
	}
	s := uint((256 - x.raw.BitLen()) &^ 1)
	if s > FracBits {
		s = FracBits
	}
	var r uint256.Int
	r.Lsh(&x.raw, s)
	r.Sqrt(&r)
	r.Lsh(&r, (FracBits-s)/2)
	return UQ128{r}
}

func (x UQ128) String() string {
	return x.ToDecimal().Round(displayDigits).String()
}

func (x UQ128) Format(f fmt.State, verb rune) {
	switch verb {
	case 'v', 's':
		fmt.Fprintf(f, fmt.FormatString(f, 's'), x.String())
	default:
		fmt.Fprintf(f, fmt.FormatString(f, verb), x.Float64())
	}
}
