package bfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/LadyLoBentley/AdaptableDFA/bfs"
	"github.com/LadyLoBentley/AdaptableDFA/core"
)

// fixture builds a small trie-shaped table:
//
//	start -a-> q0 -b-> q1 -c-> q2
//	start -b-> q3
//	q2 -a-> rej, rej -a-> rej
//	orphan (unreachable)
type fixture struct {
	t                              *core.Table
	start, rej, q0, q1, q2, q3, or core.StateID
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	f := fixture{t: core.NewTable()}
	f.start = f.t.AddState("q_start", false)
	f.rej = f.t.AddState("q_rej", false)
	require.NoError(t, f.t.SetReject(f.rej))
	f.q0 = f.t.AddState("q_0", false)
	f.q1 = f.t.AddState("q_1", false)
	f.q2 = f.t.AddState("q_2", true)
	f.q3 = f.t.AddState("q_3", true)
	f.or = f.t.AddState("q_orphan", false)

	edges := []core.Transition{
		{From: f.rej, Symbol: 'a', To: f.rej},
		{From: f.start, Symbol: 'a', To: f.q0},
		{From: f.q0, Symbol: 'b', To: f.q1},
		{From: f.q1, Symbol: 'c', To: f.q2},
		{From: f.start, Symbol: 'b', To: f.q3},
		{From: f.q2, Symbol: 'a', To: f.rej},
	}
	for _, e := range edges {
		_, err := f.t.Connect(e.From, e.Symbol, e.To)
		require.NoError(t, err)
	}

	return f
}

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	_, err := bfs.BFS(nil, 0)
	require.ErrorIs(t, err, bfs.ErrTableNil)

	f := newFixture(t)
	_, err = bfs.BFS(f.t, core.StateID(404))
	require.ErrorIs(t, err, bfs.ErrStartStateNotFound)

	_, err = bfs.BFS(f.t, f.start, bfs.WithMaxDepth(-1))
	require.ErrorIs(t, err, bfs.ErrOptionViolation)
}

// TestBFS_OrderAndDepth checks layering and symbol-ordered expansion.
func TestBFS_OrderAndDepth(t *testing.T) {
	f := newFixture(t)
	res, err := bfs.BFS(f.t, f.start)
	require.NoError(t, err)

	require.Equal(t, []core.StateID{f.start, f.q0, f.q3, f.q1, f.q2, f.rej}, res.Order)
	require.Equal(t, 0, res.Depth[f.start])
	require.Equal(t, 1, res.Depth[f.q3])
	require.Equal(t, 3, res.Depth[f.q2])
	require.Equal(t, 4, res.Depth[f.rej])
	require.False(t, res.Reached(f.or))
}

// TestBFS_PathTo rebuilds witness strings.
func TestBFS_PathTo(t *testing.T) {
	f := newFixture(t)
	res, err := bfs.BFS(f.t, f.start)
	require.NoError(t, err)

	path, err := res.PathTo(f.q2)
	require.NoError(t, err)
	require.Equal(t, []core.Symbol{'a', 'b', 'c'}, path)

	path, err = res.PathTo(f.start)
	require.NoError(t, err)
	require.Empty(t, path)

	_, err = res.PathTo(f.or)
	require.ErrorIs(t, err, bfs.ErrNoPath)
}

// TestBFS_SkipStateAndDepth checks filtering and the depth cap.
func TestBFS_SkipStateAndDepth(t *testing.T) {
	f := newFixture(t)
	res, err := bfs.BFS(f.t, f.start, bfs.SkipState(f.rej))
	require.NoError(t, err)
	require.False(t, res.Reached(f.rej))
	require.Len(t, res.Order, 5)

	res, err = bfs.BFS(f.t, f.start, bfs.WithMaxDepth(1))
	require.NoError(t, err)
	require.Equal(t, []core.StateID{f.start, f.q0, f.q3}, res.Order)
}

// TestBFS_Hooks checks hook invocation and abort propagation.
func TestBFS_Hooks(t *testing.T) {
	f := newFixture(t)
	var enq []core.StateID
	stop := errors.New("stop")

	_, err := bfs.BFS(f.t, f.start,
		bfs.WithOnEnqueue(func(id core.StateID, _ int) { enq = append(enq, id) }),
		bfs.WithOnVisit(func(id core.StateID, _ int) error {
			if id == f.q1 {
				return stop
			}
			return nil
		}),
	)
	require.ErrorIs(t, err, stop)
	require.Contains(t, enq, f.q1)
}

// TestBFS_ContextCancel checks cancellation stops the search.
func TestBFS_ContextCancel(t *testing.T) {
	f := newFixture(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := bfs.BFS(f.t, f.start, bfs.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
}
