package parser

import (
	"testing"

	"go-memsim/pkg/memory"
	perrors "go-memsim/services/parser/errors"
	"go-memsim/services/parser/query"

	"github.com/stretchr/testify/require"
)

func TestParseRequest(t *testing.T) {
	ps := New()

	q, err := ps.ParseCommand([]byte("RQ P1 30 F;"))
	require.NoError(t, err)
	require.Equal(t, &query.QueryRequest{
		Query:     query.Query{Command: query.REQUEST},
		ProcessID: "P1",
		Size:      30,
		Strategy:  memory.FirstFit,
	}, q)

	q, err = ps.ParseCommand([]byte("RQ P2 512 B;"))
	require.NoError(t, err)
	require.Equal(t, memory.BestFit, q.(*query.QueryRequest).Strategy)

	q, err = ps.ParseCommand([]byte("RQ P3 1 W;"))
	require.NoError(t, err)
	require.Equal(t, memory.WorstFit, q.(*query.QueryRequest).Strategy)
}

func TestParseRequestNegativeSizePassesThrough(t *testing.T) {
	// size validation belongs to the engine, the parser only decodes
	q, err := New().ParseCommand([]byte("RQ P1 -30 F;"))
	require.NoError(t, err)
	require.Equal(t, -30, q.(*query.QueryRequest).Size)
}

func TestParseRequestErrors(t *testing.T) {
	ps := New()

	_, err := ps.ParseCommand([]byte("RQ P1 30;"))
	require.ErrorIs(t, err, perrors.ErrSyntax)

	_, err = ps.ParseCommand([]byte("RQ P1 lots F;"))
	require.ErrorIs(t, err, perrors.ErrInvalidSize)

	_, err = ps.ParseCommand([]byte("RQ P1 30 X;"))
	require.ErrorIs(t, err, perrors.ErrInvalidStrategy)
}

func TestParseRelease(t *testing.T) {
	ps := New()

	q, err := ps.ParseCommand([]byte("RL P1;"))
	require.NoError(t, err)
	require.Equal(t, &query.QueryRelease{
		Query:     query.Query{Command: query.RELEASE},
		ProcessID: "P1",
	}, q)

	_, err = ps.ParseCommand([]byte("RL;"))
	require.ErrorIs(t, err, perrors.ErrNoProcessID)

	_, err = ps.ParseCommand([]byte("RL P1 P2;"))
	require.ErrorIs(t, err, perrors.ErrSyntax)
}

func TestParseCompactAndStatus(t *testing.T) {
	ps := New()

	q, err := ps.ParseCommand([]byte("C;"))
	require.NoError(t, err)
	require.Equal(t, query.COMPACT, q.Type())

	q, err = ps.ParseCommand([]byte("STAT;"))
	require.NoError(t, err)
	require.Equal(t, query.STATUS, q.Type())

	_, err = ps.ParseCommand([]byte("STAT now;"))
	require.ErrorIs(t, err, perrors.ErrSyntax)
}

func TestParseReset(t *testing.T) {
	ps := New()

	q, err := ps.ParseCommand([]byte("RESET;"))
	require.NoError(t, err)
	require.Equal(t, 0, q.(*query.QueryReset).Size)

	q, err = ps.ParseCommand([]byte("RESET 2048;"))
	require.NoError(t, err)
	require.Equal(t, 2048, q.(*query.QueryReset).Size)

	q, err = ps.ParseCommand([]byte("RESET -5;"))
	require.NoError(t, err)
	require.Equal(t, -5, q.(*query.QueryReset).Size)

	_, err = ps.ParseCommand([]byte("RESET 10 20;"))
	require.ErrorIs(t, err, perrors.ErrSyntax)
}

func TestParseUnknownCommand(t *testing.T) {
	ps := New()

	_, err := ps.ParseCommand([]byte("DROP P1;"))
	require.ErrorIs(t, err, perrors.ErrSyntax)

	_, err = ps.ParseCommand([]byte(";"))
	require.ErrorIs(t, err, perrors.ErrSyntax)
}
