package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/mesh-intelligence/cowbox/pkg/types"
	"gopkg.in/yaml.v3"
)

// printer writes text output and remembers the first write error.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) line(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format+"\n", args...)
}

func (p *printer) lines(ls []string) {
	for _, l := range ls {
		p.line("%s", l)
	}
}

// emit writes v in the configured format. In text mode, text renders it.
func (a *app) emit(w io.Writer, v any, text func(p *printer)) error {
	switch a.cfg.Format {
	case types.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return sysError(fmt.Errorf("encode json: %w", err))
		}
		return nil
	case types.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return sysError(fmt.Errorf("encode yaml: %w", err))
		}
		if err := enc.Close(); err != nil {
			return sysError(fmt.Errorf("encode yaml: %w", err))
		}
		return nil
	default:
		p := &printer{w: w}
		text(p)
		if p.err != nil {
			return sysError(fmt.Errorf("write output: %w", p.err))
		}
		return nil
	}
}
