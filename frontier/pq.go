package frontier

import "container/heap"

// pqEntry is one heap slot. seq records insertion order for stable ties.
type pqEntry[T any] struct {
	item      T
	priority  float64
	secondary float64
	seq       uint64
}

// entries is the container/heap backing store, ordered by
// (priority, secondary, seq).
type entries[T any] []pqEntry[T]

func (e entries[T]) Len() int { return len(e) }

func (e entries[T]) Less(i, j int) bool {
	if e[i].priority != e[j].priority {
		return e[i].priority < e[j].priority
	}
	if e[i].secondary != e[j].secondary {
		return e[i].secondary < e[j].secondary
	}
	return e[i].seq < e[j].seq
}

func (e entries[T]) Swap(i, j int) { e[i], e[j] = e[j], e[i] }

func (e *entries[T]) Push(x any) { *e = append(*e, x.(pqEntry[T])) }

func (e *entries[T]) Pop() any {
	old := *e
	n := len(old)
	item := old[n-1]
	*e = old[:n-1]

	return item
}

// PriorityQueue is a stable min-priority queue. The zero value is ready to use.
//
// Decrease-key is not supported; callers push a fresh entry and skip stale
// ones on pop (lazy decrease-key).
type PriorityQueue[T any] struct {
	items entries[T]
	next  uint64
}

// NewPriorityQueue returns an empty queue with room for capacity entries.
func NewPriorityQueue[T any](capacity int) *PriorityQueue[T] {
	return &PriorityQueue[T]{items: make(entries[T], 0, capacity)}
}

// Push inserts item with the given priority.
func (q *PriorityQueue[T]) Push(item T, priority float64) {
	q.PushKey(item, priority, 0)
}

// PushKey inserts item with a two-part key compared lexicographically.
// Entries pushed with Push have a secondary key of 0.
func (q *PriorityQueue[T]) PushKey(item T, priority, secondary float64) {
	heap.Push(&q.items, pqEntry[T]{item: item, priority: priority, secondary: secondary, seq: q.next})
	q.next++
}

// PopMin removes and returns the item with the smallest key, and its primary
// priority. Among equal keys the earliest pushed wins.
// Panics on an empty queue; check Empty first.
func (q *PriorityQueue[T]) PopMin() (T, float64) {
	e := heap.Pop(&q.items).(pqEntry[T])
	return e.item, e.priority
}

// Peek returns the minimum entry without removing it. ok is false when empty.
func (q *PriorityQueue[T]) Peek() (item T, priority float64, ok bool) {
	if len(q.items) == 0 {
		return item, 0, false
	}
	return q.items[0].item, q.items[0].priority, true
}

// Len returns the number of entries, stale ones included.
func (q *PriorityQueue[T]) Len() int { return len(q.items) }

// Empty reports whether the queue holds no entries.
func (q *PriorityQueue[T]) Empty() bool { return len(q.items) == 0 }
