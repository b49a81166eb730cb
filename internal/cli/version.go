package cli

import (
	"fmt"

	"github.com/mesh-intelligence/cowbox/pkg/cowbox"
	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the cowbox version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "cowbox v%s\nmodule: %s\n", cowbox.Version, cowbox.ModulePath)
			return nil
		},
	}
}
