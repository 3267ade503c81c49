package commands

import (
	"os"

	"github.com/beatoz/mixnum-go/cmd/config"
	"github.com/beatoz/mixnum-go/types/xerrors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tendermint/tendermint/libs/cli"
	tmflags "github.com/tendermint/tendermint/libs/cli/flags"
	"github.com/tendermint/tendermint/libs/log"
	tmos "github.com/tendermint/tendermint/libs/os"
)

var (
	rootConfig = config.DefaultConfig()
	logger     = log.NewTMLogger(log.NewSyncWriter(os.Stderr))
)

func init() {
	registerFlagsRootCmd(RootCmd)
}

func registerFlagsRootCmd(cmd *cobra.Command) {
	cmd.PersistentFlags().String("log_level", rootConfig.LogLevel, "log level")
	cmd.PersistentFlags().StringP("output", "o", rootConfig.Output, "report format (text | json)")
}

// ParseConfig reads the config file under the home directory, if there is
// one, and overlays flags and MIXNUM_* environment variables.
func ParseConfig() (*config.Config, error) {
	home := viper.GetString(cli.HomeFlag)
	if path := config.ConfigFilePath(home); tmos.FileExists(path) {
		viper.SetConfigFile(path)
		if err := viper.MergeInConfig(); err != nil {
			return nil, xerrors.ErrInvalidConfig.Wrap(err)
		}
	}

	conf := config.DefaultConfig()
	if err := viper.Unmarshal(conf); err != nil {
		return nil, xerrors.ErrInvalidConfig.Wrap(err)
	}
	conf.SetRoot(home)
	if err := conf.Validate(); err != nil {
		return nil, err
	}
	return conf, nil
}

// RootCmd is the root command for mixnum.
var RootCmd = &cobra.Command{
	Use:   "mixnum",
	Short: "Fixed-point and floating-point numeric kernels and complex algebra",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) (err error) {
		if cmd.Name() == VersionCmd.Name() {
			return nil
		}

		rootConfig, err = ParseConfig()
		if err != nil {
			return err
		}

		logger, err = tmflags.ParseLogLevel(rootConfig.LogLevel, logger, config.DefaultLogLevel)
		if err != nil {
			return err
		}
		if viper.GetBool(cli.TraceFlag) {
			logger = log.NewTracingLogger(logger)
		}
		logger = logger.With("module", "mixnum")
		return nil
	},
}
