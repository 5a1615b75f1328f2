// Package frontier holds the containers that store discovered-but-unexpanded
// cells for the search strategies.
//
//   - PriorityQueue: min-heap keyed by a float64 priority, with an optional
//     secondary key (PushKey). Equal keys pop in insertion order. Strategies
//     may rely on this tie-break and on nothing else.
//   - Queue: FIFO, used by breadth-first search.
//   - Stack: LIFO, used by depth-first search.
//
// Queue and Stack wrap the cookiejar collections behind a typed API.
//
// Complexity:
//
//   - PriorityQueue Push/PopMin: O(log n); Peek, Len: O(1).
//   - Queue, Stack Push/Pop: amortized O(1).
package frontier
