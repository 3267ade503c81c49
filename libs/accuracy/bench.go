package accuracy

import (
	"context"
	"time"

	"github.com/beatoz/mixnum-go/libs/backend"
	"github.com/tendermint/tendermint/libs/log"
)

const (
	DefaultBenchDuration = 200 * time.Millisecond
	benchBatch           = 256
)

type BenchConfig struct {
	Backends []string
	Kernels  []backend.Kernel
	// Duration is the minimum time spent on each kernel.
	Duration time.Duration
}

type BenchResult struct {
	Backend string         `json:"backend"`
	Kernel  backend.Kernel `json:"kernel"`
	Ops     int            `json:"ops"`
	NsPerOp float64        `json:"nsPerOp"`
}

// benchArgs are fixed inputs away from any special case of the kernels.
var benchArgs = map[backend.Kernel][]float64{
	backend.KernelSin:   {1.234},
	backend.KernelCos:   {1.234},
	backend.KernelWrap:  {12.5},
	backend.KernelAtan2: {0.3, -1.7},
	backend.KernelSqrt:  {12.345},
	backend.KernelNiirf: {12.345, DefaultNiirfIterations},
	backend.KernelExp:   {1.5},
	backend.KernelPowi:  {1.01, 9},
}

// BenchKernel runs k in batches until d has elapsed, at least one batch.
func BenchKernel(ctx context.Context, b backend.Backend, k backend.Kernel, d time.Duration) (BenchResult, error) {
	loop, err := b.Loop(k, benchArgs[k]...)
	if err != nil {
		return BenchResult{}, err
	}

	ops := 0
	start := time.Now()
	elapsed := time.Duration(0)
	for ops == 0 || elapsed < d {
		if err := ctx.Err(); err != nil {
			return BenchResult{}, err
		}
		loop(benchBatch)
		ops += benchBatch
		elapsed = time.Since(start)
	}
	return BenchResult{
		Backend: b.Name(),
		Kernel:  k,
		Ops:     ops,
		NsPerOp: float64(elapsed.Nanoseconds()) / float64(ops),
	}, nil
}

func Bench(ctx context.Context, logger log.Logger, cfg BenchConfig) ([]BenchResult, error) {
	var results []BenchResult
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
			if !supported[k] {
				continue
			}
			r, err := BenchKernel(ctx, b, k, cfg.Duration)
			if err != nil {
				return nil, err
			}
			logger.Debug("bench", "backend", name, "kernel", k, "nsPerOp", r.NsPerOp)
			results = append(results, r)
		}
		logger.Info("backend done", "backend", name)
	}
	return results, nil
}
