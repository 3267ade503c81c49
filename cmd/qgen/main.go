// Command qgen writes the fractional-bit markers and the per-width Q-format
// aliases of libs/qfmt.
//
//	go run ./cmd/qgen -o libs/qfmt/frac_gen.go
package main

import (
	"bytes"
	"fmt"
	"go/format"
	"io"
	"os"
	"text/template"

	"github.com/spf13/cobra"
)

// a signed alias keeps three integer bits and the sign bit, an unsigned one
// keeps three integer bits, so τ is representable in every alias
const integerBits = 3

var wordSizes = []int{8, 16, 32, 64}

type word struct {
	Bits        int
	SignedMax   int
	UnsignedMax int
}

type genData struct {
	Fracs []int
	Words []word
}

var genTmpl = template.Must(template.New("qfmt").Funcs(template.FuncMap{
	"seq": func(lo, hi int) []int {
		var r []int
		for i := lo; i <= hi; i++ {
			r = append(r, i)
		}
		return r
	},
}).Parse(`// Code generated by qgen. DO NOT EDIT.

package qfmt
{{range .Fracs}}
type F{{.}} struct{}

func (F{{.}}) Bits() uint { return {{.}} }
{{end}}
{{- range $w := .Words}}
// {{$w.Bits}}-bit words
{{range $f := seq 0 $w.SignedMax}}
type I{{$w.Bits}}F{{$f}} = I[int{{$w.Bits}}, F{{$f}}]
{{- end}}
{{range $f := seq 0 $w.UnsignedMax}}
type U{{$w.Bits}}F{{$f}} = U[uint{{$w.Bits}}, F{{$f}}]
{{- end}}
{{end}}`))

func newGenData() genData {
	d := genData{}
	maxFrac := 0
	for _, n := range wordSizes {
		w := word{
			Bits:        n,
			SignedMax:   n - 1 - integerBits,
			UnsignedMax: n - integerBits,
		}
		d.Words = append(d.Words, w)
		maxFrac = max(maxFrac, w.UnsignedMax)
	}
	for f := 0; f <= maxFrac; f++ {
		d.Fracs = append(d.Fracs, f)
	}
	return d
}

func render(w io.Writer) error {
	var buf bytes.Buffer
	if err := genTmpl.Execute(&buf, newGenData()); err != nil {
		return err
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return fmt.Errorf("formatting generated source: %w", err)
	}
	_, err = w.Write(src)
	return err
}

func main() {
	var output string
	cmd := &cobra.Command{
		Use:   "qgen",
		Short: "Generate the Q-format aliases of libs/qfmt",
		RunE: func(cmd *cobra.Command, args []string) error {
			if output == "" || output == "-" {
				return render(cmd.OutOrStdout())
			}
			f, err := os.Create(output)
			if err != nil {
				return err
			}
			defer f.Close()
			return render(f)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "-", "file to write, - for stdout")

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
