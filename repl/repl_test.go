package repl_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/physym/deltasym"
	"github.com/physym/deltasym/repl"
)

func runScript(t *testing.T, s *deltasym.Session, script string) string {
	t.Helper()
	var out bytes.Buffer
	err := repl.Run(s, repl.Config{Prompt: "> "}, strings.NewReader(script), &out)
	require.NoError(t, err)
	return out.String()
}

func TestRun_DeltaExplicitEval(t *testing.T) {
	s := deltasym.NewSession()
	out := runScript(t, s, `delta G
explicit DeltaG
let G_f = 2
let G_i = 3/2
eval DeltaG_expl
quit
`)

	assert.Contains(t, out, "DeltaG = Δ{G}")
	assert.Contains(t, out, "DeltaG_expl = G_f + -1*G_i")
	assert.Contains(t, out, "1/2")

	// explicit injected both endpoint symbols before let overwrote them.
	v, ok := s.Lookup("G_f")
	require.True(t, ok)
	assert.Equal(t, "2", v.String())
}

func TestRun_CustomNameAndLatex(t *testing.T) {
	s := deltasym.NewSession()
	out := runScript(t, s, `delta H as DH real positive
show DH
latex DH
quit
`)

	assert.Contains(t, out, "DH = Δ{H}")
	assert.Contains(t, out, "> DH\n")
	assert.Contains(t, out, `\Delta{H}`)
}

func TestRun_Vars(t *testing.T) {
	s := deltasym.NewSession()
	out := runScript(t, s, `delta G
let x = 4
vars
quit
`)

	assert.Contains(t, out, "DeltaG = DeltaG")
	assert.Contains(t, out, "x = 4")
}

func TestRun_ErrorsKeepLoopAlive(t *testing.T) {
	s := deltasym.NewSession()
	out := runScript(t, s, `frobnicate
delta 2x
explicit nope
let x = banana
delta G
quit
`)

	assert.Contains(t, out, `unknown command "frobnicate"`)
	assert.Contains(t, out, "invalid symbol name")
	assert.Contains(t, out, `unknown name "nope"`)
	assert.Contains(t, out, `invalid number "banana"`)
	// The loop survived every error.
	assert.Contains(t, out, "DeltaG = Δ{G}")
}

func TestRun_ExplicitRequiresQuantity(t *testing.T) {
	s := deltasym.NewSession()
	out := runScript(t, s, `let x = 1
explicit x
quit
`)

	assert.Contains(t, out, `"x" is not a delta quantity`)
}

func TestRun_EvalNotNumeric(t *testing.T) {
	s := deltasym.NewSession()
	out := runScript(t, s, `delta G
explicit DeltaG
eval DeltaG_expl
quit
`)

	assert.Contains(t, out, "not fully numeric")
}

func TestRun_EOFEndsSession(t *testing.T) {
	s := deltasym.NewSession()
	var out bytes.Buffer
	err := repl.Run(s, repl.Config{}, strings.NewReader("delta G\n"), &out)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Δ> ")
}
