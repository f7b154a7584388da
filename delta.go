// Package deltasym provides delta quantities for interactive symbolic-math
// sessions: symbols representing the difference of a named quantity, common
// to the physical sciences (esp. thermodynamics).
//
// A delta quantity over base name G renders as \Delta{G} in typeset
// contexts and as DeltaG (or a caller-chosen identifier) in plain text,
// and can be expanded into G_f - G_i for further calculation.
package deltasym

import (
	"fmt"

	"github.com/physym/deltasym/algebra"
)

// Quantity represents the delta of a named base quantity. It implements
// algebra.Expr and behaves as an opaque symbol in expressions: its engine
// identity is the typeset form, so two quantities over the same base are
// equal regardless of their plain-text names.
//
// Quantities are immutable after construction.
type Quantity struct {
	base *algebra.Sym
	name string
}

type options struct {
	name        string
	assumptions []algebra.Assumption
}

// Option customizes a Quantity at construction time.
type Option func(*options)

// WithName sets the plain-text name, letting the quantity be typed as a
// regular identifier (e.g. "DG") while still displaying as proper
// notation in typeset output.
func WithName(name string) Option {
	return func(o *options) { o.name = name }
}

// WithAssumptions forwards assumption flags to the underlying base
// symbol.
func WithAssumptions(flags ...algebra.Assumption) Option {
	return func(o *options) { o.assumptions = append(o.assumptions, flags...) }
}

// New constructs the delta quantity of the given base name. The
// plain-text name defaults to "Delta" + base. Name validation is the
// kernel's; no further checks are made here.
func New(base string, opts ...Option) (*Quantity, error) {
	var cfg options
	for _, opt := range opts {
		opt(&cfg)
	}
	sym, err := algebra.NewSym(base, cfg.assumptions...)
	if err != nil {
		return nil, fmt.Errorf("deltasym: %w", err)
	}
	name := cfg.name
	if name == "" {
		name = "Delta" + base
	}
	return &Quantity{base: sym, name: name}, nil
}

// Constructor synonyms, kept for interactive ergonomics.
var (
	MkDelta = New
	DSym    = New
)

// Define constructs a delta quantity and binds it into the session under
// its plain-text name.
func Define(s *Session, base string, opts ...Option) (*Quantity, error) {
	q, err := New(base, opts...)
	if err != nil {
		return nil, err
	}
	s.Bind(q.Name(), q)
	return q, nil
}

// BaseName returns the name of the quantity this is a delta of.
func (q *Quantity) BaseName() string { return q.base.Name() }

// Name returns the plain-text name.
func (q *Quantity) Name() string { return q.name }

// Base returns the underlying base symbol, carrying any assumption flags
// given at construction.
func (q *Quantity) Base() *algebra.Sym { return q.base }

// String renders the plain-text form.
func (q *Quantity) String() string { return q.name }

// LaTeX renders the typeset form, always Delta of the base name no
// matter what the plain-text name is.
func (q *Quantity) LaTeX() string { return `\Delta{` + q.base.Name() + `}` }

// Typeset returns the terminal-friendly typeset form.
func (q *Quantity) Typeset() string { return "Δ{" + q.base.Name() + "}" }

func (q *Quantity) Simplify() algebra.Expr     { return q }
func (q *Quantity) Eval() (*algebra.Num, bool) { return nil, false }

// Equal reports engine identity: same construction string, i.e. same
// base name. A Quantity is never equal to a plain symbol.
func (q *Quantity) Equal(other algebra.Expr) bool {
	o, ok := other.(*Quantity)
	return ok && q.LaTeX() == o.LaTeX()
}

// Sub replaces the quantity when the substitution key matches either its
// plain-text name or its typeset identity.
func (q *Quantity) Sub(varName string, value algebra.Expr) algebra.Expr {
	if varName == q.name || varName == q.LaTeX() {
		return value
	}
	return q
}

// Explicit returns the expansion base_f - base_i together with the two
// fresh symbols, leaving any binding decision to the caller.
func (q *Quantity) Explicit() (expr algebra.Expr, final, initial *algebra.Sym) {
	final = algebra.S(q.base.Name() + "_f")
	initial = algebra.S(q.base.Name() + "_i")
	expr = algebra.AddOf(final, algebra.MulOf(algebra.N(-1), initial))
	return expr, final, initial
}

// ExplicitInto expands the quantity and binds the final and initial
// symbols into the session under their own names, silently overwriting
// any existing bindings. Repeated calls produce an equivalent expression
// and rebind the same names.
func (q *Quantity) ExplicitInto(s *Session) algebra.Expr {
	expr, final, initial := q.Explicit()
	s.Bind(final.Name(), final)
	s.Bind(initial.Name(), initial)
	return expr
}

// ExplicitCurrent is ExplicitInto against the process-current session.
// It returns ErrNoSession when no session is installed.
func (q *Quantity) ExplicitCurrent() (algebra.Expr, error) {
	s, err := Current()
	if err != nil {
		return nil, err
	}
	return q.ExplicitInto(s), nil
}
