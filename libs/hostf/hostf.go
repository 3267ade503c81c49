// Package hostf binds float32 and float64 to the numeric contracts.
//
// Trigonometry, square root, phase wrapping and the exponential go through the
// host math library. The polynomial and NIIRF kernels from libs/trig are still
// reachable through the Poly* and Niirf methods so that float results can be
// compared with the fixed-point providers, which have no other path.
package hostf

import (
	"math"
)

// saturating float to integer conversions; NaN maps to zero

func toInt32(f float64) int32 {
	switch {
	case math.IsNaN(f):
		return 0
	case f >= math.MaxInt32:
		return math.MaxInt32
	case f <= math.MinInt32:
		return math.MinInt32
	}
	return int32(f)
}

func toInt64(f float64) int64 {
	switch {
	case math.IsNaN(f):
		return 0
	case f >= math.MaxInt64:
		return math.MaxInt64
	case f <= math.MinInt64:
		return math.MinInt64
	}
	return int64(f)
}

func toUint32(f float64) uint32 {
	switch {
	case math.IsNaN(f), f <= 0:
		return 0
	case f >= math.MaxUint32:
		return math.MaxUint32
	}
	return uint32(f)
}

func toUint64(f float64) uint64 {
	switch {
	case math.IsNaN(f), f <= 0:
		return 0
	case f >= math.MaxUint64:
		return math.MaxUint64
	}
	return uint64(f)
}

func cmp(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// atan2 in [-π, π); math.Atan2 returns π on the negative real axis
func atan2(y, x float64) float64 {
	a := math.Atan2(y, x)
	if a >= math.Pi {
		a -= 2 * math.Pi
	}
	return a
}

func mag2db(x float64) float64 { return 20 * math.Log10(x) }
func db2mag(x float64) float64 { return math.Pow(10, x/20) }
func pow2db(x float64) float64 { return 10 * math.Log10(x) }
func db2pow(x float64) float64 { return math.Pow(10, x/10) }
