package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"text/template"
	"time"

	"github.com/beatoz/mixnum-go/libs/accuracy"
	"github.com/beatoz/mixnum-go/libs/backend"
	"github.com/beatoz/mixnum-go/types/xerrors"
	tmos "github.com/tendermint/tendermint/libs/os"
)

const (
	DefaultLogLevel = "info"
	DefaultDirPerm  = 0o700

	OutputText = "text"
	OutputJSON = "json"

	defaultConfigDir      = "config"
	defaultConfigFileName = "mixnum.toml"
)

type Config struct {
	RootDir  string       `mapstructure:"home"`
	LogLevel string       `mapstructure:"log_level"`
	Output   string       `mapstructure:"output"`
	Sweep    *SweepConfig `mapstructure:"sweep"`
	Bench    *BenchConfig `mapstructure:"bench"`
}

type SweepConfig struct {
	Points          int      `mapstructure:"points"`
	NiirfIterations int      `mapstructure:"niirf_iterations"`
	Backends        []string `mapstructure:"backends"`
}

type BenchConfig struct {
	Duration time.Duration `mapstructure:"duration"`
	Backends []string      `mapstructure:"backends"`
}

func DefaultConfig() *Config {
	return &Config{
		LogLevel: DefaultLogLevel,
		Output:   OutputText,
		Sweep: &SweepConfig{
			Points:          accuracy.DefaultPoints,
			NiirfIterations: accuracy.DefaultNiirfIterations,
			Backends:        backend.Names(),
		},
		Bench: &BenchConfig{
			Duration: accuracy.DefaultBenchDuration,
			Backends: backend.Names(),
		},
	}
}

func (c *Config) SetRoot(root string) *Config {
	c.RootDir = root
	return c
}

func (c *Config) ConfigFile() string {
	return ConfigFilePath(c.RootDir)
}

func ConfigFilePath(root string) string {
	return filepath.Join(root, defaultConfigDir, defaultConfigFileName)
}

// Validate checks values that viper cannot check by type alone.
func (c *Config) Validate() error {
	switch c.Output {
	case OutputText, OutputJSON:
	default:
		return xerrors.ErrInvalidConfig.Wrapf("output must be %q or %q, got %q", OutputText, OutputJSON, c.Output)
	}
	if c.Sweep == nil || c.Bench == nil {
		return xerrors.ErrInvalidConfig.Wrapf("missing [sweep] or [bench] section")
	}
	if c.Sweep.Points < 1 {
		return xerrors.ErrInvalidConfig.Wrapf("sweep.points must be positive, got %d", c.Sweep.Points)
	}
	if c.Sweep.NiirfIterations < 0 || c.Sweep.NiirfIterations > backend.MaxCount {
		return xerrors.ErrInvalidConfig.Wrapf("sweep.niirf_iterations must be in [0, %d], got %d", backend.MaxCount, c.Sweep.NiirfIterations)
	}
	if c.Bench.Duration < 0 {
		return xerrors.ErrInvalidConfig.Wrapf("bench.duration must not be negative, got %v", c.Bench.Duration)
	}
	for _, names := range [][]string{c.Sweep.Backends, c.Bench.Backends} {
		for _, n := range names {
			if _, err := backend.Lookup(n); err != nil {
				return xerrors.ErrInvalidConfig.Wrap(err)
			}
		}
	}
	return nil
}

// EnsureRoot creates the config directory under root and writes the default
// config file unless one exists.
func EnsureRoot(root string) error {
	if err := tmos.EnsureDir(filepath.Join(root, defaultConfigDir), DefaultDirPerm); err != nil {
		return err
	}
	path := ConfigFilePath(root)
	if tmos.FileExists(path) {
		return nil
	}
	return WriteConfigFile(path, DefaultConfig())
}

var configTemplate = template.Must(template.New("configFileTemplate").Funcs(template.FuncMap{
	"strList": func(ss []string) string {
		if len(ss) == 0 {
			return "[]"
		}
		return `["` + strings.Join(ss, `", "`) + `"]`
	},
}).Parse(defaultConfigTemplate))

func WriteConfigFile(path string, c *Config) error {
	var buf bytes.Buffer
	if err := configTemplate.Execute(&buf, c); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}

const defaultConfigTemplate = `# This is a TOML config file.
# For more information, see https://github.com/toml-lang/toml

# Output verbosity: one of debug, info, error or none, optionally per module
# as in "main:info,accuracy:debug,*:error".
log_level = "{{ .LogLevel }}"

# Report format of the sweep, bench, eval and complex commands: text or json.
output = "{{ .Output }}"

#######################################################
###          Accuracy Sweep Configuration           ###
#######################################################
[sweep]

# Number of evenly spaced samples per kernel.
points = {{ .Sweep.Points }}

# Refinement steps used by the niirf kernel.
niirf_iterations = {{ .Sweep.NiirfIterations }}

backends = {{ strList .Sweep.Backends }}

#######################################################
###            Benchmark Configuration              ###
#######################################################
[bench]

# Minimum time spent on each kernel, e.g. "200ms" or "1s".
duration = "{{ .Bench.Duration }}"

backends = {{ strList .Bench.Backends }}
`
