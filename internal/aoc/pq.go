package aoc

import "container/heap"

// PQ is a min-priority queue. Equal priorities pop in no particular order.
type PQ[T any] struct {
	items pqItems[T]
}

type pqItem[T any] struct {
	v T
	p int
}

// Push adds v with priority p.
func (q *PQ[T]) Push(v T, p int) {
	heap.Push(&q.items, pqItem[T]{v, p})
}

// Pop removes and returns the lowest priority item. It panics when empty.
func (q *PQ[T]) Pop() (T, int) {
	it := heap.Pop(&q.items).(pqItem[T])
	return it.v, it.p
}

// Len is the number of queued items.
func (q *PQ[T]) Len() int { return len(q.items) }

type pqItems[T any] []pqItem[T]

func (s pqItems[T]) Len() int           { return len(s) }
func (s pqItems[T]) Less(i, j int) bool { return s[i].p < s[j].p }
func (s pqItems[T]) Swap(i, j int)      { s[i], s[j] = s[j], s[i] }

func (s *pqItems[T]) Push(x any) { *s = append(*s, x.(pqItem[T])) }

func (s *pqItems[T]) Pop() any {
	old := *s
	n := len(old)
	it := old[n-1]
	*s = old[:n-1]
	return it
}
