package main

import (
	"os"
	"path/filepath"

	"github.com/beatoz/mixnum-go/cmd/commands"
	"github.com/tendermint/tendermint/libs/cli"
)

func main() {
	commands.RootCmd.AddCommand(
		commands.NewInitFilesCmd(),
		commands.NewEvalCmd(),
		commands.NewComplexCmd(),
		commands.NewSweepCmd(),
		commands.NewBenchCmd(),
		commands.VersionCmd,
	)

	home, err := os.UserHomeDir()
	if err != nil {
		home = os.TempDir()
	}
	executor := cli.PrepareBaseCmd(commands.RootCmd, "MIXNUM", filepath.Join(home, ".mixnum"))
	if err := executor.Execute(); err != nil {
		os.Exit(1)
	}
}
