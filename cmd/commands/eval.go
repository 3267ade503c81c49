package commands

import (
	"strconv"
	"strings"

	"github.com/beatoz/mixnum-go/libs/accuracy"
	"github.com/beatoz/mixnum-go/libs/backend"
	"github.com/beatoz/mixnum-go/types/xerrors"
	"github.com/spf13/cobra"
)

var evalBackend = "f64"

func NewEvalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "eval <kernel> <value> [value2]",
		Short: "Evaluate one kernel on one backend",
		Long: "Evaluate one kernel on one backend and compare it with host float64 math.\n" +
			"kernels: " + kernelList() + "\n" +
			"atan2 reads y and x, niirf reads x and the iteration count, powi reads x and n.",
		Args: cobra.RangeArgs(2, 3),
		RunE: evalKernel,
	}
	addBackendFlag(cmd, &evalBackend)
	return cmd
}

func addBackendFlag(cmd *cobra.Command, p *string) {
	cmd.Flags().StringVarP(p, "backend", "b", *p, "scalar backend ("+strings.Join(backend.Names(), " | ")+")")
}

func kernelList() string {
	names := make([]string, len(backend.AllKernels))
	for i, k := range backend.AllKernels {
		names[i] = string(k)
	}
	return strings.Join(names, " ")
}

func parseFloats(args []string) ([]float64, error) {
	vals := make([]float64, len(args))
	for i, a := range args {
		v, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return nil, xerrors.ErrParse.Wrap(err)
		}
		vals[i] = v
	}
	return vals, nil
}

type evalReport struct {
	Backend   string         `json:"backend"`
	Kernel    backend.Kernel `json:"kernel"`
	Args      []float64      `json:"args"`
	Value     float64        `json:"value"`
	Reference float64        `json:"reference"`
	Error     float64        `json:"error"`
}

func (r *evalReport) header() []string {
	return []string{"backend", "kernel", "args", "value", "reference", "error"}
}

func (r *evalReport) rows() [][]string {
	args := make([]string, len(r.Args))
	for i, a := range r.Args {
		args[i] = formatFloat(a)
	}
	return [][]string{{
		r.Backend, string(r.Kernel), strings.Join(args, ", "),
		formatFloat(r.Value), formatFloat(r.Reference), formatFloat(r.Error),
	}}
}

func evalKernel(cmd *cobra.Command, args []string) error {
	b, err := backend.Lookup(evalBackend)
	if err != nil {
		return err
	}
	k, err := backend.ParseKernel(args[0])
	if err != nil {
		return err
	}
	vals, err := parseFloats(args[1:])
	if err != nil {
		return err
	}

	v, err := b.Eval(k, vals...)
	if err != nil {
		return err
	}

	// compare against the input as the backend sees it
	quantized := make([]float64, len(vals))
	copy(quantized, vals)
	quantized[0] = b.Quantize(vals[0])
	if k == backend.KernelAtan2 {
		quantized[1] = b.Quantize(vals[1])
	}
	ref := accuracy.Reference(k, quantized...)

	logger.Debug("eval", "backend", b.Name(), "kernel", k, "args", vals)
	return render(cmd.OutOrStdout(), rootConfig.Output, &evalReport{
		Backend:   b.Name(),
		Kernel:    k,
		Args:      vals,
		Value:     v,
		Reference: ref,
		Error:     accuracy.KernelError(k, v, ref),
	})
}
