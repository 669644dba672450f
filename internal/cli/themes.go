package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/figment/pkg/theme"
)

// themesCommand creates the themes command listing registered themes.
func (c *CLI) themesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "themes",
		Short: "List the registered themes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range theme.Names() {
				t, err := theme.Lookup(name)
				if err != nil {
					return err
				}
				tone := "light"
				if t.IsDark() {
					tone = "dark"
				}
				printKeyValue(name, fmt.Sprintf("%s, %d palette colors", tone, len(t.Palette)))
			}
			return nil
		},
	}
}
