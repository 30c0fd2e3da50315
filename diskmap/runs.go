package diskmap

import "io"

// SlotRun represents a single run of identical slots.
type SlotRun struct {
	// Value is the slot value for this run, either a file ID or [Free].
	Value FileID
	// Start is the index of the first slot in the run.
	Start int
	// Length gives the number of slots in the run.
	//
	// A valid run will always have this be 1 or greater. A value less than 1
	// indicates the end of the layout was reached.
	Length int
}

// InvalidSlotRun is returned by [RunGrouper.GetNextRun] once the layout is
// exhausted.
var InvalidSlotRun = SlotRun{Value: Free, Start: -1, Length: 0}

// RunGrouper walks a layout and groups adjacent identical slots into runs.
type RunGrouper struct {
	layout Layout
	offset int
}

func NewRunGrouper(l Layout) *RunGrouper {
	return &RunGrouper{layout: l}
}

// GetNextRun returns a [SlotRun] for the next slot or run of slots in the
// layout. Once the layout is exhausted it returns [InvalidSlotRun] and io.EOF.
func (grouper *RunGrouper) GetNextRun() (SlotRun, error) {
	if grouper.offset >= len(grouper.layout) {
		return InvalidSlotRun, io.EOF
	}

	start := grouper.offset
	value := grouper.layout[start]

	end := start + 1
	for end < len(grouper.layout) && grouper.layout[end] == value {
		end++
	}

	grouper.offset = end
	return SlotRun{Value: value, Start: start, Length: end - start}, nil
}

// Runs returns every run in the layout, in order.
func Runs(l Layout) []SlotRun {
	runs := []SlotRun{}
	grouper := NewRunGrouper(l)
	for {
		run, err := grouper.GetNextRun()
		if err != nil {
			return runs
		}
		runs = append(runs, run)
	}
}

// Extent is a contiguous run of slots belonging to a single file.
type Extent struct {
	ID     FileID
	Start  int
	Length int
}

// End returns the index one past the last slot of the extent.
func (e Extent) End() int {
	return e.Start + e.Length
}

// Extents lists every run of occupied slots in the layout, in slot order. A file
// whose blocks were scattered by whole-block compaction shows up once for each
// piece.
func Extents(l Layout) []Extent {
	extents := []Extent{}
	for _, run := range Runs(l) {
		if run.Value.IsFree() {
			continue
		}
		extents = append(
			extents,
			Extent{ID: run.Value, Start: run.Start, Length: run.Length},
		)
	}
	return extents
}
