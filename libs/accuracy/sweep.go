// Package accuracy measures the approximation kernels of every backend
// against host float64 math and times them.
package accuracy

import (
	"context"
	"math"

	"github.com/beatoz/mixnum-go/libs/backend"
	"github.com/beatoz/mixnum-go/libs/trig"
	"github.com/beatoz/mixnum-go/types/xerrors"
	"github.com/tendermint/tendermint/libs/log"
)

const (
	DefaultPoints          = 1000
	DefaultNiirfIterations = trig.NiirfIterations
	powiExponent           = 3
)

type SweepConfig struct {
	Backends        []string
	Kernels         []backend.Kernel
	Points          int
	NiirfIterations int
}

func DefaultSweepConfig() SweepConfig {
	return SweepConfig{
		Backends:        backend.Names(),
		Kernels:         backend.AllKernels,
		Points:          DefaultPoints,
		NiirfIterations: DefaultNiirfIterations,
	}
}

// Result is the error of one kernel on one backend over its sampled domain.
// Errors are absolute, except for exp and powi where they are relative to
// the reference.
type Result struct {
	Backend  string         `json:"backend"`
	Kernel   backend.Kernel `json:"kernel"`
	Points   int            `json:"points"`
	MaxErr   float64        `json:"maxErr"`
	MaxErrAt float64        `json:"maxErrAt"`
	MeanErr  float64        `json:"meanErr"`
}

type domain struct {
	lo, hi float64
}

var domains = map[backend.Kernel]domain{
	backend.KernelSin:   {-math.Pi, math.Pi},
	backend.KernelCos:   {-math.Pi, math.Pi},
	backend.KernelWrap:  {-20, 20},
	backend.KernelAtan2: {-math.Pi, math.Pi},
	backend.KernelSqrt:  {0, 100},
	backend.KernelNiirf: {0, 100},
	backend.KernelExp:   {-4, 4},
	backend.KernelPowi:  {0.5, 1.5},
}

func relative(k backend.Kernel) bool {
	return k == backend.KernelExp || k == backend.KernelPowi
}

// sample returns the i-th of n evenly spaced points of the kernel's domain.
// For atan2 the point is an angle and the kernel reads (sin t, cos t).
func sample(d domain, i, n int) float64 {
	if n == 1 {
		return d.lo
	}
	return d.lo + (d.hi-d.lo)*float64(i)/float64(n-1)
}

// Reference evaluates k with host math. args are read as in backend.Eval.
func Reference(k backend.Kernel, args ...float64) float64 {
	if len(args) != k.Arity() {
		return math.NaN()
	}
	x := args[0]
	switch k {
	case backend.KernelSin:
		return math.Sin(x)
	case backend.KernelCos:
		return math.Cos(x)
	case backend.KernelWrap:
		return trig.WrapFloat64(x)
	case backend.KernelAtan2:
		return math.Atan2(x, args[1])
	case backend.KernelSqrt, backend.KernelNiirf:
		return math.Sqrt(math.Abs(x))
	case backend.KernelExp:
		return math.Exp(x)
	case backend.KernelPowi:
		return math.Pow(x, math.Trunc(args[1]))
	}
	return math.NaN()
}

// KernelError is the distance between got and the reference want, measured
// the way the sweep reports it.
func KernelError(k backend.Kernel, got, want float64) float64 {
	d := math.Abs(got - want)
	if k == backend.KernelAtan2 || k == backend.KernelWrap {
		// the two ends of [-π, π) are the same angle
		d = math.Abs(math.Remainder(got-want, 2*math.Pi))
	}
	if relative(k) && want != 0 {
		d /= math.Abs(want)
	}
	return d
}

// SweepKernel samples one kernel of one backend.
func SweepKernel(b backend.Backend, k backend.Kernel, points, niirfIters int) (Result, error) {
	if points < 1 {
		return Result{}, xerrors.ErrInvalidArgument.Wrapf("points must be positive, got %d", points)
	}
	d := domains[k]
	if !b.Signed() && d.lo < 0 {
		d.lo = 0
	}

	res := Result{Backend: b.Name(), Kernel: k, Points: points}
	var sum float64
	for i := 0; i < points; i++ {
		t := sample(d, i, points)
		args := []float64{b.Quantize(t)}
		switch k {
		case backend.KernelAtan2:
			args = []float64{b.Quantize(math.Sin(t)), b.Quantize(math.Cos(t))}
		case backend.KernelNiirf:
			args = append(args, float64(niirfIters))
		case backend.KernelPowi:
			args = append(args, powiExponent)
		}

		got, err := b.Eval(k, args...)
		if err != nil {
			return Result{}, err
		}
		e := KernelError(k, got, Reference(k, args...))
		sum += e
		if e > res.MaxErr || i == 0 {
			res.MaxErr, res.MaxErrAt = e, t
		}
	}
	res.MeanErr = sum / float64(points)
	return res, nil
}

// Sweep runs every requested kernel on every requested backend. Kernels a
// backend does not support are skipped.
func Sweep(ctx context.Context, logger log.Logger, cfg SweepConfig) ([]Result, error) {
	var results []Result
	for _, name := range cfg.Backends {
		b, err := backend.Lookup(name)
		if err != nil {
			return nil, err
		}
		supported := make(map[backend.Kernel]bool)
		for _, k := range b.Kernels() {
			supported[k] = true
		}

		for _, k := range cfg.Kernels {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			if !supported[k] {
				logger.Debug("skip kernel", "backend", name, "kernel", k)
				continue
			}
			r, err := SweepKernel(b, k, cfg.Points, cfg.NiirfIterations)
			if err != nil {
				return nil, err
			}
			logger.Debug("swept", "backend", name, "kernel", k, "maxErr", r.MaxErr)
			results = append(results, r)
		}
		logger.Info("backend done", "backend", name, "kernels", len(b.Kernels()))
	}
	return results, nil
}
