package commands

import (
	"strings"

	"github.com/beatoz/mixnum-go/libs/backend"
	"github.com/beatoz/mixnum-go/types/xerrors"
	"github.com/spf13/cobra"
)

var complexBackend = "f64"

func NewComplexCmd() *cobra.Command {
	ops := make([]string, len(backend.AllComplexOps))
	for i, op := range backend.AllComplexOps {
		ops[i] = string(op)
	}
	cmd := &cobra.Command{
		Use:   "complex <op> <re> <im> [<re2> <im2>]",
		Short: "Run one complex operation on one backend",
		Long: "Run one complex operation on one backend.\n" +
			"ops: " + strings.Join(ops, " ") + "\n" +
			"mul and div read two operands. cartesian reads a magnitude and an angle.",
		Args: cobra.RangeArgs(3, 5),
		RunE: complexOperation,
	}
	addBackendFlag(cmd, &complexBackend)
	return cmd
}

type complexReport struct {
	Backend string               `json:"backend"`
	Op      backend.ComplexOp    `json:"op"`
	Result  backend.ComplexValue `json:"result"`
}

func (r *complexReport) header() []string {
	return []string{"backend", "op", "form", "result"}
}

func (r *complexReport) rows() [][]string {
	return [][]string{{r.Backend, string(r.Op), r.Result.Form, r.Result.Text}}
}

func complexOperation(cmd *cobra.Command, args []string) error {
	b, err := backend.Lookup(complexBackend)
	if err != nil {
		return err
	}
	op, err := backend.ParseComplexOp(args[0])
	if err != nil {
		return err
	}
	want := 2
	if op.Binary() {
		want = 4
	}
	if len(args)-1 != want {
		return xerrors.ErrInvalidArgument.Wrapf("%s takes %d numbers, got %d", op, want, len(args)-1)
	}
	vals, err := parseFloats(args[1:])
	if err != nil {
		return err
	}

	a := complex(vals[0], vals[1])
	var c complex128
	if op.Binary() {
		c = complex(vals[2], vals[3])
	}
	v, err := b.Complex(op, a, c)
	if err != nil {
		return err
	}
	logger.Debug("complex", "backend", b.Name(), "op", op)
	return render(cmd.OutOrStdout(), rootConfig.Output, &complexReport{Backend: b.Name(), Op: op, Result: v})
}
