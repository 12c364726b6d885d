// Package bfs provides breadth-first search over a core.Table,
// returning transition-count distances, parent links, the symbol consumed on
// each tree edge, and visit order.
package bfs

import (
	"context"
	"fmt"

	"github.com/LadyLoBentley/AdaptableDFA/core"
)

// queueItem pairs a state with its BFS depth.
type queueItem struct {
	id    core.StateID
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	table   *core.Table
	opts    Options
	ctx     context.Context
	queue   []queueItem
	visited map[core.StateID]bool
	res     *Result
}

// BFS runs breadth-first search on t starting from start,
// applying any number of functional Options.
// Returns ErrTableNil or ErrStartStateNotFound for invalid input,
// ErrOptionViolation for bad options, ctx.Err() on cancellation,
// or any OnVisit error.
func BFS(t *core.Table, start core.StateID, opts ...Option) (*Result, error) {
	if t == nil {
		return nil, ErrTableNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !t.HasState(start) {
		return nil, fmt.Errorf("%w: %d", ErrStartStateNotFound, start)
	}

	n := t.StateCount()
	w := &walker{
		table:   t,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem, 0, n),
		visited: make(map[core.StateID]bool, n),
		res: &Result{
			Start:  start,
			Order:  make([]core.StateID, 0, n),
			Depth:  make(map[core.StateID]int, n),
			Parent: make(map[core.StateID]core.StateID, n),
			Via:    make(map[core.StateID]core.Symbol, n),
		},
	}

	w.enqueue(start, 0)

	return w.res, w.loop()
}

// enqueue marks id visited at depth d, calls OnEnqueue and adds it to the queue.
func (w *walker) enqueue(id core.StateID, d int) {
	w.visited[id] = true
	w.res.Depth[id] = d
	w.opts.OnEnqueue(id, d)
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, item.id)
		if err := w.opts.OnVisit(item.id, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %d: %w", item.id, err)
		}
		w.enqueueSuccessors(item)
	}
	return nil
}

// enqueueSuccessors follows outgoing transitions in symbol order, applying
// filtering and MaxDepth, and enqueues each unseen target.
func (w *walker) enqueueSuccessors(item queueItem) {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}
	for _, tr := range w.table.Outgoing(item.id) {
		if !w.opts.FilterTransition(tr) {
			continue
		}
		if w.visited[tr.To] {
			continue
		}
		w.res.Parent[tr.To] = item.id
		w.res.Via[tr.To] = tr.Symbol
		w.enqueue(tr.To, nextDepth)
	}
}
