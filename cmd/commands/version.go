package commands

import (
	"fmt"

	"github.com/beatoz/mixnum-go/cmd/version"
	"github.com/spf13/cobra"
)

// VersionCmd prints the mixnum version.
var VersionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version info",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), version.String())
	},
}
