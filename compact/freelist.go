package compact

import (
	"container/heap"

	"github.com/dargueta/diskfrag/diskmap"
)

// startHeap is a min-heap of free run start positions.
type startHeap []int

func (h startHeap) Len() int           { return len(h) }
func (h startHeap) Less(i, j int) bool { return h[i] < h[j] }
func (h startHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *startHeap) Push(x interface{}) {
	*h = append(*h, x.(int))
}

func (h *startHeap) Pop() interface{} {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}

// holeIndex buckets the free runs of a layout by length. buckets[n] holds the
// start of every free run exactly n slots long.
type holeIndex struct {
	buckets []startHeap
}

func newHoleIndex(l diskmap.Layout) *holeIndex {
	index := &holeIndex{}
	for _, run := range diskmap.Runs(l) {
		if run.Value.IsFree() {
			index.add(run.Start, run.Length)
		}
	}
	return index
}

func (index *holeIndex) add(start, length int) {
	for len(index.buckets) <= length {
		index.buckets = append(index.buckets, startHeap{})
	}
	heap.Push(&index.buckets[length], start)
}

// take finds the leftmost free run that can hold the file and starts before it,
// removes the file's length from the front of that run, and returns the run's
// start.
//
// The file's old slots aren't added to the index. They're always to the right of
// every file that hasn't been processed yet, so no later file could use them.
func (index *holeIndex) take(file diskmap.Extent) (int, bool) {
	bestStart := -1
	bestLength := 0

	for length := file.Length; length < len(index.buckets); length++ {
		bucket := index.buckets[length]
		if bucket.Len() == 0 {
			continue
		}

		start := bucket[0]
		if start < file.Start && (bestStart < 0 || start < bestStart) {
			bestStart = start
			bestLength = length
		}
	}

	if bestStart < 0 {
		return 0, false
	}

	heap.Pop(&index.buckets[bestLength])
	if remainder := bestLength - file.Length; remainder > 0 {
		index.add(bestStart+file.Length, remainder)
	}
	return bestStart, true
}

// FilesIndexed gives exactly the same result as [Files], but finds free runs by
// keeping them bucketed by length instead of scanning the layout for every file.
func FilesIndexed(l diskmap.Layout) []Move {
	index := newHoleIndex(l)
	return relocateFiles(l, index.take)
}
