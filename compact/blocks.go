package compact

import "github.com/dargueta/diskfrag/diskmap"

// Blocks compacts the layout one block at a time. The last occupied slot is
// repeatedly moved into the first free slot until no free slot comes before an
// occupied one.
//
// The return value is the number of slots moved. A layout that's already
// compacted isn't modified and 0 is returned.
func Blocks(l diskmap.Layout) int {
	moved := 0
	forward := nextFreeSlot(l, 0)
	backward := previousOccupiedSlot(l, len(l)-1)

	for forward < backward {
		l[forward] = l[backward]
		l[backward] = diskmap.Free
		moved++

		forward = nextFreeSlot(l, forward)
		backward = previousOccupiedSlot(l, backward)
	}
	return moved
}

// nextFreeSlot returns the index of the first free slot at or after `start`, or
// the length of the layout if there is none.
func nextFreeSlot(l diskmap.Layout, start int) int {
	for start < len(l) && !l[start].IsFree() {
		start++
	}
	return start
}

// previousOccupiedSlot returns the index of the last occupied slot at or before
// `start`, or -1 if there is none.
func previousOccupiedSlot(l diskmap.Layout, start int) int {
	for start >= 0 && l[start].IsFree() {
		start--
	}
	return start
}
