// Package trig holds the approximation kernels shared by every scalar provider:
// phase wrapping, polynomial sine and cosine, polynomial atan2, the NIIRF square
// root, integer power and the exp/ln series.
//
// The kernels are written once against the contracts in package types and use
// nothing but the scalar's own arithmetic, so a fixed-point provider gets the
// same results on every platform. Every loop is bounded either by a fixed count
// or by the magnitude of the input.
package trig

import (
	"math"

	"github.com/beatoz/mixnum-go/types"
)

const (
	// beyond this many turns WrapPhase removes whole turns in one step
	wrapFastTurns = 64
	maxWrapSteps  = wrapFastTurns + 2
)

// WrapPhase maps phi into [-π, π) keeping it congruent modulo 2π.
//
// Angles within a few turns are reduced by repeated addition or subtraction of
// τ, which is exact in the receiver's representation. Larger angles drop whole
// turns first using a multiple computed in float64. NaN and infinities map to
// NaN for providers that have them.
func WrapPhase[T types.Real[T]](phi T) T {
	var z T
	f := phi.Float64()
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return z.FromFloat64(math.NaN())
	}

	pi, tau := z.Pi(), z.Tau()
	negPi := z.Zero().Sub(pi)

	if math.Abs(f) > wrapFastTurns*2*math.Pi {
		k := math.Round(f / (2 * math.Pi))
		if k > 0 {
			phi = phi.Sub(z.FromFloat64(k).Mul(tau))
		} else {
			phi = phi.Add(z.FromFloat64(-k).Mul(tau))
		}
	}

	for i := 0; phi.Cmp(negPi) < 0 && i < maxWrapSteps; i++ {
		phi = phi.Add(tau)
	}
	for i := 0; phi.Cmp(pi) >= 0 && i < maxWrapSteps; i++ {
		phi = phi.Sub(tau)
	}
	if phi.Cmp(negPi) < 0 || phi.Cmp(pi) >= 0 {
		// only reachable when the representation cannot resolve τ at this magnitude
		return z.FromFloat64(WrapFloat64(f))
	}
	return phi
}

// WrapFloat64 is WrapPhase for a bare float64, computed with math.Mod.
func WrapFloat64(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return math.NaN()
	}
	if f >= -math.Pi && f < math.Pi {
		return f
	}
	r := math.Mod(f+math.Pi, 2*math.Pi)
	if r < 0 {
		r += 2 * math.Pi
	}
	r -= math.Pi
	if r >= math.Pi {
		r -= 2 * math.Pi
	}
	return r
}
