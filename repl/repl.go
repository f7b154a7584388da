// Package repl implements a line-oriented interactive front end over a
// deltasym session namespace.
package repl

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/physym/deltasym"
	"github.com/physym/deltasym/algebra"
)

// Config holds the front-end settings.
type Config struct {
	Prompt string
}

const helpText = `commands:
  delta <Base> [as <name>] [real|positive|negative|integer|nonzero...]
        define the delta quantity of <Base>
  explicit <name>   expand a delta quantity into final - initial;
                    binds <Base>_f, <Base>_i and <name>_expl
  let <name> = <number>   bind a numeric value (integer, p/q or float)
  show <name>       print a binding in plain text
  latex <name>      print a binding in LaTeX
  eval <name>       substitute all numeric bindings and evaluate
  vars              list all bindings
  quit              leave the session`

// Run drives the session loop, reading commands from in and writing
// results to out. It returns when the input is exhausted or the user
// quits.
func Run(s *deltasym.Session, cfg Config, in io.Reader, out io.Writer) error {
	if cfg.Prompt == "" {
		cfg.Prompt = "Δ> "
	}
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, cfg.Prompt)
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		switch fields[0] {
		case "quit", "exit":
			return nil
		case "help":
			fmt.Fprintln(out, helpText)
		case "delta":
			if err := cmdDelta(s, fields[1:], out); err != nil {
				fmt.Fprintf(out, "error: %v\n", err)
			}
		case "explicit":
			if err := cmdExplicit(s, fields[1:], out); err != nil {
				fmt.Fprintf(out, "error: %v\n", err)
			}
		case "let":
			if err := cmdLet(s, fields[1:], out); err != nil {
				fmt.Fprintf(out, "error: %v\n", err)
			}
		case "show", "latex":
			if err := cmdShow(s, fields[0], fields[1:], out); err != nil {
				fmt.Fprintf(out, "error: %v\n", err)
			}
		case "eval":
			if err := cmdEval(s, fields[1:], out); err != nil {
				fmt.Fprintf(out, "error: %v\n", err)
			}
		case "vars":
			for _, name := range s.Names() {
				v, _ := s.Lookup(name)
				fmt.Fprintf(out, "%s = %s\n", name, v.String())
			}
		default:
			fmt.Fprintf(out, "error: unknown command %q (try help)\n", fields[0])
		}
	}
}

func cmdDelta(s *deltasym.Session, args []string, out io.Writer) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: delta <Base> [as <name>] [flags...]")
	}
	base := args[0]
	rest := args[1:]
	opts := []deltasym.Option{}
	if len(rest) >= 2 && rest[0] == "as" {
		opts = append(opts, deltasym.WithName(rest[1]))
		rest = rest[2:]
	}
	if len(rest) > 0 {
		flags, err := parseAssumptions(rest)
		if err != nil {
			return err
		}
		opts = append(opts, deltasym.WithAssumptions(flags...))
	}
	q, err := deltasym.Define(s, base, opts...)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "%s = %s\n", q.Name(), q.Typeset())
	return nil
}

func cmdExplicit(s *deltasym.Session, args []string, out io.Writer) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: explicit <name>")
	}
	v, ok := s.Lookup(args[0])
	if !ok {
		return fmt.Errorf("unknown name %q", args[0])
	}
	q, ok := v.(*deltasym.Quantity)
	if !ok {
		return fmt.Errorf("%q is not a delta quantity", args[0])
	}
	expr := q.ExplicitInto(s)
	bound := args[0] + "_expl"
	s.Bind(bound, expr)
	fmt.Fprintf(out, "%s = %s\n", bound, expr.String())
	return nil
}

func cmdLet(s *deltasym.Session, args []string, out io.Writer) error {
	if len(args) != 3 || args[1] != "=" {
		return fmt.Errorf("usage: let <name> = <number>")
	}
	n, err := parseNumber(args[2])
	if err != nil {
		return err
	}
	s.Bind(args[0], n)
	fmt.Fprintf(out, "%s = %s\n", args[0], n.String())
	return nil
}

func cmdShow(s *deltasym.Session, verb string, args []string, out io.Writer) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: %s <name>", verb)
	}
	v, ok := s.Lookup(args[0])
	if !ok {
		return fmt.Errorf("unknown name %q", args[0])
	}
	if verb == "latex" {
		fmt.Fprintln(out, v.LaTeX())
	} else {
		fmt.Fprintln(out, v.String())
	}
	return nil
}

func cmdEval(s *deltasym.Session, args []string, out io.Writer) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: eval <name>")
	}
	expr, ok := s.Lookup(args[0])
	if !ok {
		return fmt.Errorf("unknown name %q", args[0])
	}
	for _, name := range s.Names() {
		if name == args[0] {
			continue
		}
		v, _ := s.Lookup(name)
		if n, numeric := v.Eval(); numeric {
			expr = expr.Sub(name, n)
		}
	}
	expr = expr.Simplify()
	if n, numeric := expr.Eval(); numeric {
		fmt.Fprintln(out, n.String())
		return nil
	}
	return fmt.Errorf("%q is not fully numeric: %s", args[0], expr.String())
}

func parseAssumptions(words []string) ([]algebra.Assumption, error) {
	known := map[string]algebra.Assumption{
		"real":     algebra.Real,
		"positive": algebra.Positive,
		"negative": algebra.Negative,
		"integer":  algebra.Integer,
		"nonzero":  algebra.Nonzero,
	}
	flags := make([]algebra.Assumption, 0, len(words))
	for _, w := range words {
		a, ok := known[w]
		if !ok {
			return nil, fmt.Errorf("unknown assumption %q", w)
		}
		flags = append(flags, a)
	}
	return flags, nil
}

func parseNumber(s string) (*algebra.Num, error) {
	if p, q, found := strings.Cut(s, "/"); found {
		pn, err1 := strconv.ParseInt(p, 10, 64)
		qn, err2 := strconv.ParseInt(q, 10, 64)
		if err1 != nil || err2 != nil || qn == 0 {
			return nil, fmt.Errorf("invalid fraction %q", s)
		}
		return algebra.F(pn, qn), nil
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return algebra.N(i), nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid number %q", s)
	}
	return algebra.NFloat(f), nil
}
