package trace

import "sync"

// window keeps the last entries pushed into it. Older entries are overwritten and counted.
type window[T any] struct {
	mu     sync.Mutex
	items  []T
	next   int
	pushed uint64
}

func newWindow[T any](size int) *window[T] {
	if size < 1 {
		size = 1
	}
	return &window[T]{items: make([]T, 0, size)}
}

func (w *window[T]) push(v T) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.pushed++
	if len(w.items) < cap(w.items) {
		w.items = append(w.items, v)
		return
	}
	w.items[w.next] = v
	w.next = (w.next + 1) % len(w.items)
}

// last returns copies of up to n newest entries in push order.
func (w *window[T]) last(n int) []T {
	w.mu.Lock()
	defer w.mu.Unlock()

	n = max(0, min(n, len(w.items)))
	out := make([]T, n)
	// w.next is the oldest entry once the window is full and 0 before.
	skip := len(w.items) - n
	for i := range out {
		out[i] = w.items[(w.next+skip+i)%len(w.items)]
	}
	return out
}

func (w *window[T]) len() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.items)
}

func (w *window[T]) dropped() uint64 {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.pushed - uint64(len(w.items))
}
