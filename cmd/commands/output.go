package commands

import (
	"io"
	"math"
	"strconv"

	"github.com/beatoz/mixnum-go/cmd/config"
	"github.com/beatoz/mixnum-go/libs/jsonx"
	"github.com/olekukonko/tablewriter"
)

// report is something the commands print either as a table or as JSON.
type report interface {
	header() []string
	rows() [][]string
}

func render(w io.Writer, format string, r report) error {
	if format == config.OutputJSON {
		bz, err := jsonx.MarshalIndent(r, "", "  ")
		if err != nil {
			return err
		}
		_, err = w.Write(append(bz, '\n'))
		return err
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader(r.header())
	table.SetAutoFormatHeaders(false)
	table.SetAlignment(tablewriter.ALIGN_RIGHT)
	table.AppendBulk(r.rows())
	table.Render()
	return nil
}

func formatFloat(f float64) string {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return jsonx.FormatSpecial(f)
	}
	return strconv.FormatFloat(f, 'g', 7, 64)
}
