package commands

import (
	"github.com/spf13/cobra"
	"github.com/eetumartola/grapho/internal/build"
)

func (c *CLI) newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the application version",
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Printf("grapho version %s\n", build.Version)
		},
	}
}
