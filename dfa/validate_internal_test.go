package dfa

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LadyLoBentley/AdaptableDFA/core"
)

// TestValidateReportsEveryViolation corrupts the internals and checks each
// broken invariant is reported separately.
func TestValidateReportsEveryViolation(t *testing.T) {
	a, err := New([]string{"ab"})
	require.NoError(t, err)
	require.NoError(t, a.Validate())

	a.table.AddState("orphan", false)
	a.known['z'] = struct{}{}
	a.alphabet = append(a.alphabet, 'z')
	a.language = append(a.language, "y")

	err = a.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvariant)

	vs := Violations(err)
	require.Len(t, vs, 3)
	assert.Contains(t, vs[0].Error(), `symbol 'y' of "y" not in alphabet`)
	assert.Contains(t, vs[1].Error(), "reject has no self-loop")
	assert.Contains(t, vs[2].Error(), "orphan unreachable")
	for _, v := range vs {
		assert.True(t, errors.Is(v, ErrInvariant))
	}
	assert.Nil(t, Violations(nil))
}

// TestStrictModeFailsMutation checks WithStrictInvariants surfaces a broken
// table on the next mutation.
func TestStrictModeFailsMutation(t *testing.T) {
	a, err := New([]string{"ab"}, WithStrictInvariants())
	require.NoError(t, err)

	a.table.AddState("orphan", false)
	err = a.AddAcceptedString("b")
	require.ErrorIs(t, err, ErrInvariant)

	err = a.RegisterSymbol('c')
	require.ErrorIs(t, err, ErrInvariant)
}

// TestConnectConflictIsInvariant checks a conflicting edge is wrapped, not
// panicked on.
func TestConnectConflictIsInvariant(t *testing.T) {
	a, err := New([]string{"ab"})
	require.NoError(t, err)

	q0, ok := a.table.Target(a.start, 'a')
	require.True(t, ok)
	q1, ok := a.table.Target(q0, 'b')
	require.True(t, ok)
	err = a.connect(a.start, 'a', q1)
	require.ErrorIs(t, err, ErrInvariant)
	require.ErrorIs(t, err, core.ErrEdgeConflict)

	err = a.connect(a.reject, 'a', a.start)
	require.ErrorIs(t, err, core.ErrRejectSource)

	err = a.promote(a.reject)
	require.ErrorIs(t, err, core.ErrRejectPromotion)
}

// TestEnumerateCycle checks a live cycle is reported without a length bound.
func TestEnumerateCycle(t *testing.T) {
	a, err := New([]string{"ab"})
	require.NoError(t, err)

	q0, _ := a.table.Target(a.start, 'a')
	q1, _ := a.table.Target(q0, 'b')
	_, err = a.table.Connect(q1, 'c', a.start)
	require.NoError(t, err)

	_, err = a.Enumerate(context.Background(), -1)
	require.ErrorIs(t, err, ErrInvariant)

	words, err := a.Enumerate(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, []string{"ab", "abcab"}, words)
}
