package commands

import (
	"strconv"

	"github.com/beatoz/mixnum-go/libs/accuracy"
	"github.com/beatoz/mixnum-go/libs/backend"
	"github.com/spf13/cobra"
)

func NewSweepCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Report the maximum error of every kernel per backend versus host float64 math",
		Args:  cobra.NoArgs,
		RunE:  sweep,
	}
	d := rootConfig.Sweep
	cmd.Flags().Int("sweep.points", d.Points, "samples per kernel")
	cmd.Flags().Int("sweep.niirf_iterations", d.NiirfIterations, "refinement steps of the niirf kernel")
	cmd.Flags().StringSlice("sweep.backends", d.Backends, "backends to sweep")
	return cmd
}

type sweepReport []accuracy.Result

func (r sweepReport) header() []string {
	return []string{"backend", "kernel", "points", "max error", "at", "mean error"}
}

func (r sweepReport) rows() [][]string {
	rows := make([][]string, len(r))
	for i, res := range r {
		rows[i] = []string{
			res.Backend, string(res.Kernel), strconv.Itoa(res.Points),
			formatFloat(res.MaxErr), formatFloat(res.MaxErrAt), formatFloat(res.MeanErr),
		}
	}
	return rows
}

func sweep(cmd *cobra.Command, args []string) error {
	sc := rootConfig.Sweep
	results, err := accuracy.Sweep(cmd.Context(), logger.With("module", "accuracy"), accuracy.SweepConfig{
		Backends:        sc.Backends,
		Kernels:         backend.AllKernels,
		Points:          sc.Points,
		NiirfIterations: sc.NiirfIterations,
	})
	if err != nil {
		return err
	}
	return render(cmd.OutOrStdout(), rootConfig.Output, sweepReport(results))
}
