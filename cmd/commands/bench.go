package commands

import (
	"fmt"
	"runtime"
	"strconv"

	"github.com/beatoz/mixnum-go/cmd/config"
	"github.com/beatoz/mixnum-go/libs/accuracy"
	"github.com/beatoz/mixnum-go/libs/backend"
	"github.com/shirou/gopsutil/cpu"
	"github.com/spf13/cobra"
)

func NewBenchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time every kernel per backend",
		Args:  cobra.NoArgs,
		RunE:  bench,
	}
	d := rootConfig.Bench
	cmd.Flags().Duration("bench.duration", d.Duration, "minimum time spent on each kernel")
	cmd.Flags().StringSlice("bench.backends", d.Backends, "backends to time")
	return cmd
}

// HostInfo describes the machine a benchmark ran on.
type HostInfo struct {
	CPU     string `json:"cpu"`
	Cores   int    `json:"cores"`
	GOOS    string `json:"goos"`
	GOARCH  string `json:"goarch"`
	Version string `json:"goVersion"`
}

func hostInfo() HostInfo {
	h := HostInfo{
		CPU:     "unknown",
		Cores:   runtime.NumCPU(),
		GOOS:    runtime.GOOS,
		GOARCH:  runtime.GOARCH,
		Version: runtime.Version(),
	}
	if infos, err := cpu.Info(); err == nil && len(infos) > 0 {
		h.CPU = infos[0].ModelName
	} else if err != nil {
		logger.Debug("cpu info unavailable", "err", err)
	}
	if n, err := cpu.Counts(true); err == nil && n > 0 {
		h.Cores = n
	}
	return h
}

type benchReport struct {
	Host    HostInfo               `json:"host"`
	Results []accuracy.BenchResult `json:"results"`
}

func (r *benchReport) header() []string {
	return []string{"backend", "kernel", "ops", "ns/op"}
}

func (r *benchReport) rows() [][]string {
	rows := make([][]string, len(r.Results))
	for i, res := range r.Results {
		rows[i] = []string{
			res.Backend, string(res.Kernel), strconv.Itoa(res.Ops),
			strconv.FormatFloat(res.NsPerOp, 'f', 1, 64),
		}
	}
	return rows
}

func bench(cmd *cobra.Command, args []string) error {
	bc := rootConfig.Bench
	results, err := accuracy.Bench(cmd.Context(), logger.With("module", "accuracy"), accuracy.BenchConfig{
		Backends: bc.Backends,
		Kernels:  backend.AllKernels,
		Duration: bc.Duration,
	})
	if err != nil {
		return err
	}

	r := &benchReport{Host: hostInfo(), Results: results}
	if rootConfig.Output != config.OutputJSON {
		fmt.Fprintf(cmd.OutOrStdout(), "cpu: %s (%d logical cores) %s/%s %s\n",
			r.Host.CPU, r.Host.Cores, r.Host.GOOS, r.Host.GOARCH, r.Host.Version)
	}
	return render(cmd.OutOrStdout(), rootConfig.Output, r)
}
