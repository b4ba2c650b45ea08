// ABOUTME: Character table subcommand
// ABOUTME: Lists every supported character with its Morse code
package cli

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/cwgen/cwgen-go/pkg/morse"
	"github.com/spf13/cobra"
)

func newTableCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "table",
		Short: "Print the supported characters and their Morse codes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, r := range morse.Characters() {
				code, _ := morse.Code(r)
				pattern := strings.NewReplacer(".", "·", "-", "−").Replace(code)
				if _, err := fmt.Fprintf(out, "%c  %-8s %s\n", unicode.ToUpper(r), code, pattern); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
