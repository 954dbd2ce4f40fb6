package huffman

import (
	"github.com/emirpasic/gods/trees/binaryheap"
)

// heapItem is a subtree waiting to be merged. min is the smallest symbol it
// holds.
type heapItem struct {
	index int
	freq  uint64
	min   byte
}

func frequencyAndSymbolComparator(a, b interface{}) int {
	l, r := a.(heapItem), b.(heapItem)
	switch {
	case l.freq < r.freq:
		return -1
	case l.freq > r.freq:
		return 1
	case l.min < r.min:
		return -1
	case l.min > r.min:
		return 1
	default:
		return 0
	}
}

// nodeHeap is a min-heap of subtrees
type nodeHeap struct {
	*binaryheap.Heap
}

func newNodeHeap() *nodeHeap {
	return &nodeHeap{binaryheap.NewWith(frequencyAndSymbolComparator)}
}

// Push pushes a new subtree to the heap
func (h *nodeHeap) Push(i heapItem) {
	h.Heap.Push(i)
}

// Pop removes the subtree with the lowest frequency from the heap.
// Second return parameter is false if the heap was empty.
func (h *nodeHeap) Pop() (heapItem, bool) {
	i, ok := h.Heap.Pop()
	if !ok {
		return heapItem{}, false
	}

	return i.(heapItem), true
}
