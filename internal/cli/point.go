package cli

import (
	"fmt"
	"strconv"

	"github.com/mesh-intelligence/cowbox/pkg/point"
	"github.com/spf13/cobra"
)

type coords struct {
	X int `json:"x" yaml:"x"`
	Y int `json:"y" yaml:"y"`
}

type pointResult struct {
	Original     coords `json:"original" yaml:"original"`
	Copy         coords `json:"copy" yaml:"copy"`
	SharedBefore bool   `json:"shared_before_write" yaml:"shared_before_write"`
	SharedAfter  bool   `json:"shared_after_write" yaml:"shared_after_write"`
}

func newPointCmd(a *app) *cobra.Command {
	var setX, setY int
	cmd := &cobra.Command{
		Use:   "point X Y",
		Short: "Copy a point handle and write through the copy",
		Long: "Build a point handle, copy it, then apply --set-x and --set-y to the copy.\n" +
			"The copy shares storage with the original until the first write.\n" +
			"Put -- before negative coordinates.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := strconv.Atoi(args[0])
			if err != nil {
				return userError(fmt.Errorf("parse X %q: %w", args[0], err))
			}
			y, err := strconv.Atoi(args[1])
			if err != nil {
				return userError(fmt.Errorf("parse Y %q: %w", args[1], err))
			}

			orig := point.New(x, y, a.boxOptions()...)
			defer orig.Release()
			dup := orig.Copy()
			defer dup.Release()

			res := pointResult{SharedBefore: orig.Shares(dup)}
			if cmd.Flags().Changed("set-x") {
				dup.SetX(setX)
			}
			if cmd.Flags().Changed("set-y") {
				dup.SetY(setY)
			}
			res.SharedAfter = orig.Shares(dup)
			res.Original = coords{X: orig.X(), Y: orig.Y()}
			res.Copy = coords{X: dup.X(), Y: dup.Y()}

			return a.emit(cmd.OutOrStdout(), res, func(p *printer) {
				p.line("original: (%d, %d)", res.Original.X, res.Original.Y)
				p.line("copy:     (%d, %d)", res.Copy.X, res.Copy.Y)
				p.line("shared before write: %t", res.SharedBefore)
				p.line("shared after write:  %t", res.SharedAfter)
			})
		},
	}
	cmd.Flags().IntVar(&setX, "set-x", 0, "x value written through the copy")
	cmd.Flags().IntVar(&setY, "set-y", 0, "y value written through the copy")
	return cmd
}
