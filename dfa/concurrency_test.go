package dfa_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/LadyLoBentley/AdaptableDFA/dfa"
)

// TestConcurrentClassifyDuringAdds checks readers never observe a
// half-built path: a seed accepted before the writers start stays accepted.
func TestConcurrentClassifyDuringAdds(t *testing.T) {
	a, err := dfa.New(scenarioSeeds)
	require.NoError(t, err)

	const writers, readers = 4, 32
	var wg sync.WaitGroup
	wg.Add(writers + readers)

	for w := 0; w < writers; w++ {
		go func(w int) {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				_ = a.AddAcceptedString(fmt.Sprintf("%c%d", 'a'+w, i))
			}
		}(w)
	}

	failures := make([]string, readers)
	for r := 0; r < readers; r++ {
		go func(r int) {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				for _, s := range scenarioSeeds {
					if !a.Accepts(s) {
						failures[r] = s
						return
					}
				}
				if a.Accepts("cba") {
					failures[r] = "cba"
					return
				}
				_ = a.Dump()
			}
		}(r)
	}
	wg.Wait()

	for _, f := range failures {
		require.Empty(t, f)
	}
	require.NoError(t, a.Validate())
	require.Len(t, a.Language(), len(scenarioSeeds)+writers*50)
}
