// Package core_test verifies thread-safety of core.Table under concurrent operations.
package core_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/LadyLoBentley/AdaptableDFA/core"
)

// TestConcurrentConnect ensures concurrent Connect calls on distinct pairs
// are race-free and every edge lands exactly once.
func TestConcurrentConnect(t *testing.T) {
	tbl := core.NewTable()
	start := tbl.AddState("q_start", false)
	const num = 200
	targets := make([]core.StateID, num)
	for i := range targets {
		targets[i] = tbl.AddState("q", false)
	}

	var wg sync.WaitGroup
	wg.Add(num)
	errs := make([]error, num)
	for i := 0; i < num; i++ {
		go func(i int) {
			defer wg.Done()
			_, errs[i] = tbl.Connect(start, core.Symbol('A'+i), targets[i])
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		require.NoError(t, err)
	}
	require.Len(t, tbl.Outgoing(start), num)
}

// TestConcurrentReadersAndWriter mixes Target/Outgoing readers with a single writer.
func TestConcurrentReadersAndWriter(t *testing.T) {
	tbl := core.NewTable()
	start := tbl.AddState("q_start", false)
	reject := tbl.AddState("q_rej", false)
	require.NoError(t, tbl.SetReject(reject))

	const readers = 50
	var wg sync.WaitGroup
	wg.Add(readers + 1)

	go func() {
		defer wg.Done()
		for i := 0; i < 100; i++ {
			q := tbl.AddState("q", false)
			sym := core.Symbol('a' + i%26)
			_, _ = tbl.Connect(start, sym, reject)
			_, _ = tbl.Connect(start, sym, q)
		}
	}()
	for r := 0; r < readers; r++ {
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				_, _ = tbl.Target(start, core.Symbol('a'+i%26))
				_ = tbl.Outgoing(start)
				_ = tbl.Clone()
			}
		}()
	}
	wg.Wait()

	require.LessOrEqual(t, len(tbl.Outgoing(start)), 26)
}
