// File: methods_clone.go
// Role: Deep copies of a Table.
// Determinism:
//   - Clone preserves StateIDs, labels, flags, catalog order and the reject role.
// Concurrency:
//   - Read lock on the source only; the clone is a fresh, unshared instance.

package core

// Clone returns a deep copy of the table. Mutating the clone never affects
// the source and vice versa.
// Complexity: O(V + E)
func (t *Table) Clone() *Table {
	t.mu.RLock()
	defer t.mu.RUnlock()

	clone := NewTable(WithCapacity(len(t.states), len(t.transitions)))
	clone.states = append(clone.states, t.states...)
	clone.transitions = append(clone.transitions, t.transitions...)
	for _, slots := range t.outgoing {
		clone.outgoing = append(clone.outgoing, append([]int(nil), slots...))
	}
	for key, slot := range t.index {
		clone.index[key] = slot
	}
	clone.reject = t.reject

	return clone
}
