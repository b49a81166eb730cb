package cli

import (
	"fmt"

	"github.com/mesh-intelligence/cowbox/pkg/expr"
	"github.com/mesh-intelligence/cowbox/pkg/types"
	"github.com/spf13/cobra"
)

type evalResult struct {
	Expr        string `json:"expr" yaml:"expr"`
	Value       int    `json:"value" yaml:"value"`
	Square      string `json:"square,omitempty" yaml:"square,omitempty"`
	SquareValue *int   `json:"square_value,omitempty" yaml:"square_value,omitempty"`
}

func newEvalCmd(a *app) *cobra.Command {
	var square bool
	cmd := &cobra.Command{
		Use:   "eval EXPR...",
		Short: "Parse, render and evaluate expressions",
		Long: "Parse each argument as an expression such as \"(-5*(3+4))\", then print its\n" +
			"rendering and value. With --square, also evaluate (e*e) built by sharing e\n" +
			"as both operands.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			results := make([]evalResult, 0, len(args))
			for _, src := range args {
				res, err := a.evalOne(src, square)
				if err != nil {
					return err
				}
				results = append(results, res)
			}
			return a.emit(cmd.OutOrStdout(), results, func(p *printer) {
				for _, r := range results {
					p.line("%s = %d", r.Expr, r.Value)
					if r.SquareValue != nil {
						p.line("%s = %d", r.Square, *r.SquareValue)
					}
				}
			})
		},
	}
	cmd.Flags().BoolVar(&square, "square", false, "also evaluate the expression multiplied by itself")
	return cmd
}

// evalOne parses src and evaluates it. Every node it allocates is released
// before it returns.
func (a *app) evalOne(src string, square bool) (evalResult, error) {
	parser := &expr.Parser{Options: a.boxOptions()}
	e, err := parser.Parse(src)
	if err != nil {
		return evalResult{}, userError(fmt.Errorf("parse %q: %w", src, err))
	}
	defer e.Release()

	res, err := describe(e)
	if err != nil {
		return evalResult{}, err
	}
	if !square {
		return res, nil
	}

	sq := expr.Binary(types.OpMul, e, e, a.boxOptions()...)
	defer sq.Release()
	sqRes, err := describe(sq)
	if err != nil {
		return evalResult{}, err
	}
	res.Square = sqRes.Expr
	res.SquareValue = &sqRes.Value
	return res, nil
}

func describe(e *expr.Expr) (evalResult, error) {
	text, err := e.Render()
	if err != nil {
		return evalResult{}, userError(fmt.Errorf("render: %w", err))
	}
	v, err := e.Eval()
	if err != nil {
		return evalResult{}, userError(fmt.Errorf("evaluate %s: %w", text, err))
	}
	return evalResult{Expr: text, Value: v}, nil
}
