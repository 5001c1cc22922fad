// Package script runs automaton check scripts: small programs that compile
// a pattern, assert match verdicts against it, and export DOT snapshots.
//
//	pattern "(a|b)*abb";
//	assert "abb" matches;
//	assert "ab" fails;
//	dot "out.dot";
package script

import (
	"fmt"
	"os"

	"github.com/alecthomas/participle/v2"

	"regexviz/regexlib"
)

type Script struct {
	Statements []*Statement `parser:"@@*"`
}

type Statement struct {
	Pattern *PatternStmt `parser:"@@ ';'"`
	Assert  *AssertStmt  `parser:"| @@ ';'"`
	Dot     *DotStmt     `parser:"| @@ ';'"`
}

type PatternStmt struct {
	Pattern string `parser:"'pattern' @String"`
}

type AssertStmt struct {
	Input   string `parser:"'assert' @String"`
	Verdict string `parser:"@('matches'|'fails')"`
}

type DotStmt struct {
	Path string `parser:"'dot' @String"`
}

var parser = participle.MustBuild[Script](participle.Unquote("String"))

func Parse(data string) (*Script, error) {
	return parser.ParseString("script", data)
}

// Context carries the automaton currently under test between statements.
type Context struct {
	Auto *regexlib.NFA
}

func (s *Script) Exec(ctx *Context) error {
	for i, stmt := range s.Statements {
		if err := stmt.Exec(ctx); err != nil {
			return fmt.Errorf("statement %d: %w", i+1, err)
		}
	}
	return nil
}

func (s *Statement) Exec(ctx *Context) error {
	switch {
	case s.Pattern != nil:
		nfa, err := regexlib.Compile(s.Pattern.Pattern)
		if err != nil {
			return fmt.Errorf("pattern %q: %w", s.Pattern.Pattern, err)
		}
		ctx.Auto = nfa
	case s.Assert != nil:
		if ctx.Auto == nil {
			return fmt.Errorf("assert before any pattern statement")
		}
		want := s.Assert.Verdict == "matches"
		if got := ctx.Auto.Match(s.Assert.Input); got != want {
			return fmt.Errorf("pattern %q on %q: want %s",
				ctx.Auto.Pattern, s.Assert.Input, s.Assert.Verdict)
		}
	case s.Dot != nil:
		if ctx.Auto == nil {
			return fmt.Errorf("dot before any pattern statement")
		}
		f, err := os.Create(s.Dot.Path)
		if err != nil {
			return err
		}
		defer f.Close()
		regexlib.ExportDOT(f, ctx.Auto)
	}
	return nil
}

// RunFile parses and executes the script at path.
func RunFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	prog, err := Parse(string(data))
	if err != nil {
		return err
	}
	return prog.Exec(&Context{})
}
