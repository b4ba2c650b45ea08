// ABOUTME: Version subcommand
// ABOUTME: Prints the product name and version
package cli

import (
	"fmt"

	"github.com/cwgen/cwgen-go/internal/version"
	"github.com/spf13/cobra"
)

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	}
}
