package deltasym_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/physym/deltasym"
	"github.com/physym/deltasym/algebra"
)

func TestSession_BindAndLookup(t *testing.T) {
	s := deltasym.NewSession()
	s.Bind("x", algebra.N(3))

	v, ok := s.Lookup("x")
	require.True(t, ok)
	assert.Equal(t, "3", v.String())

	_, ok = s.Lookup("y")
	assert.False(t, ok)
}

func TestSession_NamesInsertionOrder(t *testing.T) {
	s := deltasym.NewSession()
	s.Bind("b", algebra.N(1))
	s.Bind("a", algebra.N(2))
	s.Bind("c", algebra.N(3))

	assert.Equal(t, []string{"b", "a", "c"}, s.Names())
}

func TestSession_OverwriteKeepsSingleEntry(t *testing.T) {
	s := deltasym.NewSession()
	s.Bind("x", algebra.N(1))
	s.Bind("x", algebra.N(2))

	assert.Equal(t, 1, s.Len())
	assert.Equal(t, []string{"x"}, s.Names())
	v, _ := s.Lookup("x")
	assert.Equal(t, "2", v.String())
}

func TestSession_JournalRecordsWrites(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	s := deltasym.NewSession(deltasym.WithJournal(zap.New(core)))

	s.Bind("x", algebra.N(1))
	s.Bind("x", algebra.N(2))

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "namespace write", entries[0].Message)
	assert.Equal(t, false, entries[0].ContextMap()["overwrote"])
	assert.Equal(t, true, entries[1].ContextMap()["overwrote"])
	assert.Equal(t, "2", entries[1].ContextMap()["value"])
}

func TestCurrent_InstallAndReset(t *testing.T) {
	deltasym.Reset()

	_, err := deltasym.Current()
	require.ErrorIs(t, err, deltasym.ErrNoSession)

	s := deltasym.NewSession()
	deltasym.Install(s)
	t.Cleanup(deltasym.Reset)

	got, err := deltasym.Current()
	require.NoError(t, err)
	assert.Same(t, s, got)

	deltasym.Reset()
	_, err = deltasym.Current()
	require.ErrorIs(t, err, deltasym.ErrNoSession)
}
