package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/allen-marshall/lv2-se-bundle/pkg/buildinfo"
)

// versionCommand prints build information, the same text as --version
// without the program name.
func (c *CLI) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), buildinfo.String())
		},
	}
}
