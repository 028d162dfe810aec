// Package topk selects and merges the best k entries of distance
// arrays produced by the scan engine. Ascending order fits squared L2
// (smaller is closer), descending fits inner product.
package topk

import (
	"container/heap"
	"sort"
)

// Result pairs a row label with its computed distance.
type Result struct {
	Label    int64
	Distance float32
}

// Compile time check to ensure boundedHeap satisfies the heap interface.
var _ heap.Interface = (*boundedHeap)(nil)

// boundedHeap keeps the k best results with the worst at the root, so
// a new candidate only costs a sift when it beats the current worst.
type boundedHeap struct {
	desc  bool // true: larger distance is better (inner product)
	items []Result
}

func (h *boundedHeap) Len() int { return len(h.items) }

func (h *boundedHeap) Less(i, j int) bool {
	if h.desc {
		return h.items[i].Distance < h.items[j].Distance
	}
	return h.items[i].Distance > h.items[j].Distance
}

func (h *boundedHeap) Swap(i, j int) { h.items[i], h.items[j] = h.items[j], h.items[i] }

func (h *boundedHeap) Push(x any) {
	item, _ := x.(Result)
	h.items = append(h.items, item)
}

func (h *boundedHeap) Pop() any {
	old := h.items
	n := len(old)
	item := old[n-1]
	h.items = old[:n-1]
	return item
}

func (h *boundedHeap) offer(r Result, k int) {
	if len(h.items) < k {
		heap.Push(h, r)
		return
	}
	better := r.Distance < h.items[0].Distance
	if h.desc {
		better = r.Distance > h.items[0].Distance
	}
	if better {
		h.items[0] = r
		heap.Fix(h, 0)
	}
}

func (h *boundedHeap) sorted() []Result {
	out := h.items
	sort.Slice(out, func(i, j int) bool {
		if h.desc {
			return out[i].Distance > out[j].Distance
		}
		return out[i].Distance < out[j].Distance
	})
	return out
}

// SelectAsc returns the k entries of dis with the smallest values,
// best first. labels[i] names row i; pass nil to use positional labels.
func SelectAsc(dis []float32, labels []int64, k int) []Result {
	return selectK(dis, labels, k, false)
}

// SelectDesc returns the k entries of dis with the largest values,
// best first.
func SelectDesc(dis []float32, labels []int64, k int) []Result {
	return selectK(dis, labels, k, true)
}

func selectK(dis []float32, labels []int64, k int, desc bool) []Result {
	if k <= 0 || len(dis) == 0 {
		return nil
	}
	if k > len(dis) {
		k = len(dis)
	}
	h := &boundedHeap{desc: desc, items: make([]Result, 0, k)}
	for i, dv := range dis {
		label := int64(i)
		if labels != nil {
			label = labels[i]
		}
		h.offer(Result{Label: label, Distance: dv}, k)
	}
	return h.sorted()
}

// MergeAsc merges two ascending result sets, keeping the k smallest.
func MergeAsc(a, b []Result, k int) []Result {
	return mergeK(a, b, k, false)
}

// MergeDesc merges two descending result sets, keeping the k largest.
func MergeDesc(a, b []Result, k int) []Result {
	return mergeK(a, b, k, true)
}

func mergeK(a, b []Result, k int, desc bool) []Result {
	if k <= 0 {
		return nil
	}
	h := &boundedHeap{desc: desc, items: make([]Result, 0, k)}
	for _, r := range a {
		h.offer(r, k)
	}
	for _, r := range b {
		h.offer(r, k)
	}
	return h.sorted()
}
