package commands

import (
	"strings"

	"github.com/spf13/cobra"
)

func (c *CLI) newTypesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List the registered node types",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			for _, name := range c.components.Registry.Types() {
				t, ok := c.components.Registry.Lookup(name)
				if !ok {
					continue
				}
				inputs := make([]string, len(t.Inputs))
				for i, pin := range t.Inputs {
					inputs[i] = pin.Name
					if pin.Optional {
						inputs[i] += "?"
					}
				}
				outputs := make([]string, len(t.Outputs))
				for i, pin := range t.Outputs {
					outputs[i] = pin.Name
				}
				cmd.Printf("%-12s %-10s in:[%s] out:[%s]\n",
					name, t.Category, strings.Join(inputs, " "), strings.Join(outputs, " "))
			}
		},
	}
}
