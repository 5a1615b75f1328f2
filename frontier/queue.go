package frontier

import (
	"gopkg.in/karalabe/cookiejar.v2/collections/queue"
	"gopkg.in/karalabe/cookiejar.v2/collections/stack"
)

// Container is the plain (unprioritized) frontier shared by Queue and Stack.
type Container[T any] interface {
	Push(item T)
	Pop() T
	Len() int
	Empty() bool
}

// Queue is a typed FIFO.
type Queue[T any] struct {
	q *queue.Queue
}

// NewQueue returns an empty FIFO.
func NewQueue[T any]() *Queue[T] {
	return &Queue[T]{q: queue.New()}
}

// Push appends item at the back.
func (f *Queue[T]) Push(item T) { f.q.Push(item) }

// Pop removes and returns the front item. Panics on an empty queue.
func (f *Queue[T]) Pop() T { return f.q.Pop().(T) }

// Len returns the number of queued items.
func (f *Queue[T]) Len() int { return f.q.Size() }

// Empty reports whether no items are queued.
func (f *Queue[T]) Empty() bool { return f.q.Empty() }

// Stack is a typed LIFO.
type Stack[T any] struct {
	s *stack.Stack
}

// NewStack returns an empty LIFO.
func NewStack[T any]() *Stack[T] {
	return &Stack[T]{s: stack.New()}
}

// Push places item on top.
func (f *Stack[T]) Push(item T) { f.s.Push(item) }

// Pop removes and returns the top item. Panics on an empty stack.
func (f *Stack[T]) Pop() T { return f.s.Pop().(T) }

// Len returns the number of stacked items.
func (f *Stack[T]) Len() int { return f.s.Size() }

// Empty reports whether the stack is empty.
func (f *Stack[T]) Empty() bool { return f.s.Empty() }

var (
	_ Container[int] = (*Queue[int])(nil)
	_ Container[int] = (*Stack[int])(nil)
)
