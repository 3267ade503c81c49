package jsonx

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

type report struct {
	Backend string  `json:"backend"`
	MaxErr  float64 `json:"max_err"`
	MeanErr float32
	Hi      float64 `json:"hi,omitempty"`
	Skipped float64 `json:"-"`
}

func TestMarshalIndent(t *testing.T) {
	r := report{Backend: "f64", MaxErr: math.NaN(), MeanErr: 0.25, Hi: math.Inf(1), Skipped: 1}
	result, err := MarshalIndent(r, "", "  ")
	require.NoError(t, err)

	expected := `{
  "backend": "f64",
  "maxErr": "NaN",
  "meanErr": 0.25,
  "hi": "+Inf"
}`
	require.Equal(t, expected, string(result))
}

func TestMarshalFinite(t *testing.T) {
	result, err := Marshal(report{Backend: "i32f16", MaxErr: 1.5, MeanErr: -2})
	require.NoError(t, err)

	// the output is plain JSON for finite values
	var actual map[string]interface{}
	require.NoError(t, json.Unmarshal(result, &actual))
	require.Equal(t, 1.5, actual["maxErr"])
	require.Equal(t, -2.0, actual["meanErr"])
	_, exists := actual["hi"]
	require.False(t, exists)
}

func TestUnmarshal(t *testing.T) {
	var r report
	err := Unmarshal([]byte(`{"backend":"fxnum","maxErr":"-Inf","meanErr":"0.5","hi":2}`), &r)
	require.NoError(t, err)
	require.Equal(t, "fxnum", r.Backend)
	require.True(t, math.IsInf(r.MaxErr, -1))
	require.Equal(t, float32(0.5), r.MeanErr)
	require.Equal(t, 2.0, r.Hi)

	// snake_case names are still accepted
	r = report{}
	require.NoError(t, Unmarshal([]byte(`{"max_err":"NaN"}`), &r))
	require.True(t, math.IsNaN(r.MaxErr))

	require.Error(t, Unmarshal([]byte(`{"maxErr":"abc"}`), &r))
}

func TestFormatSpecial(t *testing.T) {
	require.Equal(t, "NaN", FormatSpecial(math.NaN()))
	require.Equal(t, "+Inf", FormatSpecial(math.Inf(1)))
	require.Equal(t, "-Inf", FormatSpecial(math.Inf(-1)))
	require.Equal(t, "0.125", FormatSpecial(0.125))
}
