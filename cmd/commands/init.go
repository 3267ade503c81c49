package commands

import (
	"github.com/beatoz/mixnum-go/cmd/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tendermint/tendermint/libs/cli"
)

// NewInitFilesCmd returns the command that writes the default config file
// under the home directory.
func NewInitFilesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize the mixnum home directory",
		Args:  cobra.NoArgs,
		RunE:  initFiles,
	}
}

func initFiles(cmd *cobra.Command, args []string) error {
	return InitFilesWith(viper.GetString(cli.HomeFlag))
}

func InitFilesWith(home string) error {
	path := config.ConfigFilePath(home)
	if err := config.EnsureRoot(home); err != nil {
		return err
	}
	logger.Info("config file", "path", path)
	return nil
}
