package diskmap

import (
	"strconv"
	"strings"
)

// FileID identifies a file by its position in the disk map. IDs are assigned
// in order starting at 0.
type FileID int

// Free marks a slot that doesn't belong to any file.
const Free = FileID(-1)

// IsFree returns true if the slot value doesn't refer to a file.
func (id FileID) IsFree() bool {
	return id < 0
}

// Layout is a sequence of block slots, one per block of disk space.
//
// Compaction rewrites a layout in place; its length never changes. A layout must
// only be mutated by one compaction pass at a time. Use [Layout.Clone] to get an
// independent copy for each pass.
type Layout []FileID

// Clone returns a copy of the layout that shares no storage with the original.
func (l Layout) Clone() Layout {
	newLayout := make(Layout, len(l))
	copy(newLayout, l)
	return newLayout
}

// OccupiedSlots returns the number of slots holding a file.
func (l Layout) OccupiedSlots() int {
	total := 0
	for _, slot := range l {
		if !slot.IsFree() {
			total++
		}
	}
	return total
}

// MaxFileID returns the highest file ID in the layout, or [Free] if there are
// no files at all.
func (l Layout) MaxFileID() FileID {
	highest := Free
	for _, slot := range l {
		if slot > highest {
			highest = slot
		}
	}
	return highest
}

// String renders the layout the way disk maps are usually drawn, with a `.` for
// every free slot. If every file ID is a single digit the slots are written
// next to each other (`0..111....22222`), otherwise they're separated by spaces
// so that multi-digit IDs stay readable.
func (l Layout) String() string {
	compact := l.MaxFileID() < 10

	var builder strings.Builder
	for i, slot := range l {
		if !compact && i > 0 {
			builder.WriteByte(' ')
		}
		if slot.IsFree() {
			builder.WriteByte('.')
		} else {
			builder.WriteString(strconv.Itoa(int(slot)))
		}
	}
	return builder.String()
}
