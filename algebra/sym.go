package algebra

import (
	"errors"
	"fmt"
	"unicode"
)

// Assumption is a flag attached to a symbol at construction time, in the
// style of computer-algebra assumption systems. Flags are carried
// verbatim; the kernel does not reason about them.
type Assumption string

const (
	Real     Assumption = "real"
	Positive Assumption = "positive"
	Negative Assumption = "negative"
	Integer  Assumption = "integer"
	Nonzero  Assumption = "nonzero"
)

// Sym is a named symbolic variable. Two symbols are equal exactly when
// their names are equal; assumptions do not participate in identity.
type Sym struct {
	name        string
	assumptions []Assumption
}

// NewSym constructs a symbol, validating the name: non-empty, starting
// with a letter or underscore, containing only letters, digits and
// underscores.
func NewSym(name string, flags ...Assumption) (*Sym, error) {
	if name == "" {
		return nil, errors.New("algebra: empty symbol name")
	}
	for i, r := range name {
		if unicode.IsLetter(r) || r == '_' {
			continue
		}
		if i > 0 && unicode.IsDigit(r) {
			continue
		}
		return nil, fmt.Errorf("algebra: invalid symbol name %q", name)
	}
	s := &Sym{name: name}
	if len(flags) > 0 {
		s.assumptions = append([]Assumption(nil), flags...)
	}
	return s, nil
}

// S is the kernel-internal shorthand constructor. Panics on an invalid
// name.
func S(name string, flags ...Assumption) *Sym {
	s, err := NewSym(name, flags...)
	if err != nil {
		panic(err.Error())
	}
	return s
}

func (s *Sym) Simplify() Expr     { return s }
func (s *Sym) String() string     { return s.name }
func (s *Sym) LaTeX() string      { return s.name }
func (s *Sym) Name() string       { return s.name }
func (s *Sym) Eval() (*Num, bool) { return nil, false }

func (s *Sym) Equal(other Expr) bool { o, ok := other.(*Sym); return ok && s.name == o.name }

func (s *Sym) Sub(varName string, value Expr) Expr {
	if s.name == varName {
		return value
	}
	return s
}

// Assumptions returns a copy of the symbol's assumption flags.
func (s *Sym) Assumptions() []Assumption {
	return append([]Assumption(nil), s.assumptions...)
}

// Assumes reports whether the symbol carries the given flag.
func (s *Sym) Assumes(a Assumption) bool {
	for _, f := range s.assumptions {
		if f == a {
			return true
		}
	}
	return false
}
