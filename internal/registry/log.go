// Package registry holds the append-only question and outcome logs.
package registry

import (
	"slices"
	"sync"
	"sync/atomic"
)

// Log is an append-only sequence whose index is the entry's id.
//
// Appends serialize on a mutex. Reads never lock: they load the last
// published slice header and see a consistent prefix of the log.
type Log[T any] struct {
	mu    sync.Mutex
	items atomic.Pointer[[]T]
}

// Append adds v and returns its position
func (l *Log[T]) Append(v T) int {
	return l.AppendFunc(func(int) T { return v })
}

// AppendFunc adds the entry built for the next position and returns that position.
// build runs under the append lock.
func (l *Log[T]) AppendFunc(build func(id int) T) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	cur := l.view()
	id := len(cur)
	// Writing past len(cur) is invisible to readers holding the old header.
	next := append(cur, build(id))
	l.items.Store(&next)
	return id
}

// At returns the entry at position i
func (l *Log[T]) At(i int) (T, bool) {
	items := l.view()
	if i < 0 || i >= len(items) {
		var zero T
		return zero, false
	}
	return items[i], true
}

// Len returns the number of published entries
func (l *Log[T]) Len() int {
	return len(l.view())
}

// Snapshot returns a copy of the published entries in append order
func (l *Log[T]) Snapshot() []T {
	return slices.Clone(l.view())
}

// View returns the published entries without copying. Callers must not modify it.
func (l *Log[T]) View() []T {
	return l.view()
}

func (l *Log[T]) view() []T {
	p := l.items.Load()
	if p == nil {
		return nil
	}
	return *p
}
