package cli

import (
	"github.com/mesh-intelligence/cowbox/pkg/picture"
	"github.com/spf13/cobra"
)

type pictureResult struct {
	Picture []string `json:"picture" yaml:"picture"`
	Frame   []string `json:"frame" yaml:"frame"`
	Beside  []string `json:"beside" yaml:"beside"`
	Above   []string `json:"above" yaml:"above"`
	Framed  []string `json:"framed" yaml:"framed"`
}

func newPictureCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "picture LINE...",
		Short: "Frame and compose a character picture",
		Long: "Build a picture from the given lines, then print it, its frame, the picture\n" +
			"beside its frame, the frame above that, and the frame of the whole.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res := composePicture(args)
			return a.emit(cmd.OutOrStdout(), res, func(p *printer) {
				sections := []struct {
					name  string
					lines []string
				}{
					{"picture", res.Picture},
					{"frame", res.Frame},
					{"beside", res.Beside},
					{"above", res.Above},
					{"framed", res.Framed},
				}
				for i, s := range sections {
					if i > 0 {
						p.line("")
					}
					p.line("%s:", s.name)
					p.lines(s.lines)
				}
			})
		},
	}
}

func composePicture(lines []string) pictureResult {
	p := picture.New(lines...)
	q := picture.Frame(p)
	r := picture.Beside(p, q)
	s := picture.Above(q, r)
	return pictureResult{
		Picture: p.Lines(),
		Frame:   q.Lines(),
		Beside:  r.Lines(),
		Above:   s.Lines(),
		Framed:  picture.Frame(s).Lines(),
	}
}
