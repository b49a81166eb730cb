package cli

import (
	"errors"
	"fmt"
	"io"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/chzyer/readline"
	"github.com/mesh-intelligence/cowbox/internal/paths"
	"github.com/mesh-intelligence/cowbox/pkg/expr"
	"github.com/spf13/cobra"
)

const replPrompt = "cowbox> "

const replHelp = `let NAME = EXPR   bind NAME to EXPR; later expressions share its nodes
EXPR              print the rendering and value of EXPR
:bindings         list bound names
:stats            print box allocation counters
:help             print this help
:quit             leave the REPL`

func newReplCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Evaluate expressions interactively",
		Long:  "Start an interactive loop that evaluates expressions and keeps named bindings.\n\n" + replHelp,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runRepl(cmd)
		},
	}
}

func (a *app) runRepl(cmd *cobra.Command) error {
	history, err := paths.ResolveHistoryFile(a.cfg.HistoryFile, a.dataDir)
	if err != nil {
		return sysError(fmt.Errorf("resolve history file: %w", err))
	}
	if err := os.MkdirAll(filepath.Dir(history), 0o755); err != nil {
		return sysError(fmt.Errorf("create history directory: %w", err))
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:            replPrompt,
		HistoryFile:       history,
		InterruptPrompt:   "^C",
		EOFPrompt:         ":quit",
		HistorySearchFold: true,
		Stdin:             io.NopCloser(cmd.InOrStdin()),
		Stdout:            cmd.OutOrStdout(),
		Stderr:            cmd.ErrOrStderr(),
	})
	if err != nil {
		return sysError(fmt.Errorf("start readline: %w", err))
	}
	defer rl.Close()

	s := newSession(a, rl.Stdout())
	defer s.close()

	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			if line == "" {
				return nil
			}
			continue
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return sysError(fmt.Errorf("read line: %w", err))
		}
		if s.exec(line) {
			return nil
		}
	}
}

// session holds the bindings of one REPL run.
type session struct {
	app      *app
	out      io.Writer
	parser   *expr.Parser
	bindings map[string]*expr.Expr
}

func newSession(a *app, out io.Writer) *session {
	bindings := make(map[string]*expr.Expr)
	return &session{
		app:      a,
		out:      out,
		parser:   &expr.Parser{Bindings: bindings, Options: a.boxOptions()},
		bindings: bindings,
	}
}

// exec runs one input line and reports whether the session should end.
// Errors are printed and do not end the session.
func (s *session) exec(line string) (quit bool) {
	line = strings.TrimSpace(line)
	var err error
	switch {
	case line == "":
	case line == ":quit" || line == ":q":
		return true
	case line == ":help":
		fmt.Fprintln(s.out, replHelp)
	case line == ":bindings":
		s.listBindings()
	case line == ":stats":
		err = s.stats()
	case strings.HasPrefix(line, ":"):
		err = fmt.Errorf("unknown command %q", line)
	case strings.HasPrefix(line, "let "):
		err = s.bind(strings.TrimPrefix(line, "let "))
	default:
		err = s.eval(line)
	}
	if err != nil {
		fmt.Fprintln(s.out, "error:", err)
	}
	return false
}

// bind parses "NAME = EXPR". Rebinding a name assigns into its existing
// handle; expressions already built from the old value still hold it.
func (s *session) bind(def string) error {
	name, src, ok := strings.Cut(def, "=")
	if !ok {
		return errors.New("expected let NAME = EXPR")
	}
	name = strings.TrimSpace(name)
	if !expr.ValidName(name) {
		return fmt.Errorf("invalid name %q", name)
	}
	e, err := s.parser.Parse(src)
	if err != nil {
		return err
	}
	if old, ok := s.bindings[name]; ok {
		old.Assign(e)
		e.Release()
		e = old
	} else {
		s.bindings[name] = e
	}
	fmt.Fprintf(s.out, "%s = %s\n", name, e)
	return nil
}

func (s *session) eval(src string) error {
	e, err := s.parser.Parse(src)
	if err != nil {
		return err
	}
	defer e.Release()
	res, err := describe(e)
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "%s = %d\n", res.Expr, res.Value)
	return nil
}

func (s *session) listBindings() {
	for _, name := range slices.Sorted(maps.Keys(s.bindings)) {
		e := s.bindings[name]
		fmt.Fprintf(s.out, "%s = %s (use count %d)\n", name, e, e.UseCount())
	}
}

func (s *session) stats() error {
	if s.app.collector == nil {
		return errors.New("stats unavailable")
	}
	snap, err := s.app.collector.Snapshot()
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "allocated %d, duplicated %d, freed %d, live %d\n",
		snap.Allocated, snap.Duplicated, snap.Freed, snap.Live)
	return nil
}

// close releases every binding.
func (s *session) close() {
	for name, e := range s.bindings {
		e.Release()
		delete(s.bindings, name)
	}
}
