package cplx

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/beatoz/mixnum-go/libs/fxnum"
	"github.com/beatoz/mixnum-go/libs/hostf"
	"github.com/beatoz/mixnum-go/libs/qfmt"
	"github.com/sebdah/goldie/v2"
)

func TestFormatGolden(t *testing.T) {
	var q qfmt.I32F16
	rows := []struct {
		format string
		value  any
	}{
		{"%v", NewCartesian[F64](1, 2)},
		{"%v", NewCartesian[F64](-2, 4)},
		{"%v", NewCartesian[F64](2, -4)},
		{"%s", NewCartesian[F64](0, 0)},
		{"%.2f", NewCartesian[F64](1.5, -0.25)},
		{"%6.2f", NewCartesian[F64](1, -1)},
		{"%e", NewCartesian[F64](1, 2)},
		{"%g", NewCartesian[F64](2e9, -4)},
		{"%v", NewCartesian[hostf.F32](0.1, 0.2)},
		{"%v", NewCartesian(q.FromFloat64(1.5), q.FromFloat64(-0.25))},
		{"%.3f", NewCartesian(q.FromFloat64(0.5), q.FromFloat64(0.75))},
		{"%v", NewCartesian(fxnum.FromFloat(1.5), fxnum.FromFloat(2.25))},
		{"%v", NewPolar[F64](1, 0.5)},
		{"%.3f", NewPolar[F64](2, -1.25)},
		{"%v", NewPolar(q.FromInt32(3), q.FromFloat64(-0.5))},
		{"%+.1f", NewCartesian[F64](1, 2)},
		{"%+.1f", NewCartesian[F64](-1, -2)},
		{"% .1f", NewCartesian[F64](1, 2)},
		{"%+6.1f", NewCartesian(q.FromInt32(3), q.FromInt32(-4))},
	}

	var buf bytes.Buffer
	for _, r := range rows {
		fmt.Fprintf(&buf, "%-6s "+r.format+"\n", r.format, r.value)
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "format", buf.Bytes())
}
