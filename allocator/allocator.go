// Package allocator tracks which slots of a layout are occupied using a bitmap,
// and finds free runs in a first-fit manner.
package allocator

import (
	"fmt"

	"github.com/boljen/go-bitmap"
	"github.com/dargueta/diskfrag"
	"github.com/dargueta/diskfrag/diskmap"
)

type UnitID uint

type Allocator struct {
	AllocationBitmap bitmap.Bitmap
	TotalUnits       uint
}

// NewAllocator creates a new allocation bitmap with all bits cleared.
func NewAllocator(totalUnits uint) Allocator {
	return Allocator{
		AllocationBitmap: bitmap.New(int(totalUnits)),
		TotalUnits:       totalUnits,
	}
}

// NewAllocatorFromLayout creates a new allocator with one unit per slot of the
// layout, marking occupied slots as allocated.
func NewAllocatorFromLayout(l diskmap.Layout) Allocator {
	alloc := NewAllocator(uint(len(l)))
	for i, slot := range l {
		if !slot.IsFree() {
			alloc.AllocationBitmap.Set(i, true)
		}
	}
	return alloc
}

// IsAllocated returns true if the unit is in use. Units past the end are never
// allocated.
func (alloc *Allocator) IsAllocated(unit UnitID) bool {
	if uint(unit) >= alloc.TotalUnits {
		return false
	}
	return alloc.AllocationBitmap.Get(int(unit))
}

// AllocatedUnits returns the number of units currently in use.
func (alloc *Allocator) AllocatedUnits() uint {
	total := uint(0)
	for i := uint(0); i < alloc.TotalUnits; i++ {
		if alloc.AllocationBitmap.Get(int(i)) {
			total++
		}
	}
	return total
}

// AllocateSingle allocates the first available unit it finds and returns its
// index. If no units are available, it returns an error.
func (alloc *Allocator) AllocateSingle() (UnitID, error) {
	return alloc.AllocateContiguous(1)
}

// FreeSingle frees an allocated unit. Trying to free a unit that isn't allocated
// will return [diskfrag.ErrAlreadyFree].
func (alloc *Allocator) FreeSingle(unit UnitID) error {
	if err := alloc.checkRange(unit, 1); err != nil {
		return err
	}
	if !alloc.AllocationBitmap.Get(int(unit)) {
		msg := fmt.Sprintf("unit %d is already free", unit)
		return diskfrag.ErrAlreadyFree.WithMessage(msg)
	}

	alloc.AllocationBitmap.Set(int(unit), false)
	return nil
}

// FindContiguousValues returns the index of the beginning of the first run of
// `count` units with the same value as `value`, lying entirely before `limit`.
// A limit past the end of the bitmap is treated as the end of the bitmap.
func (alloc *Allocator) FindContiguousValues(
	value bool, count uint, limit UnitID,
) (UnitID, error) {
	if count == 0 {
		return UnitID(0), diskfrag.ErrInvalidArgument.WithMessage(
			"can't search for a run of zero units")
	}
	if uint(limit) > alloc.TotalUnits {
		limit = UnitID(alloc.TotalUnits)
	}

	runSize := uint(0)
	runStart := UnitID(0)

	for i := UnitID(0); i < limit; i++ {
		bit := alloc.AllocationBitmap.Get(int(i))
		if bit == !value {
			// We hit the opposite value we were looking for, so this is the end
			// of the run. Reset the size to 0 and try again.
			runSize = 0
			continue
		}

		runSize++
		if runSize == 1 {
			// This is the first matching unit in our latest attempt at finding a
			// run, so it's the beginning of the run.
			runStart = i
		}
		if runSize == count {
			return runStart, nil
		}
	}

	// We hit the limit before we reached the necessary count.
	return UnitID(0), diskfrag.ErrNoSpaceOnDevice.WithMessage(
		fmt.Sprintf("no run of %d units before unit %d", count, limit))
}

// HasContiguousValuesAt returns true if the `count` units starting at `start`
// all have the value `value`.
func (alloc *Allocator) HasContiguousValuesAt(start UnitID, value bool, count uint) bool {
	if uint(start)+count > alloc.TotalUnits {
		return false
	}

	for i := uint(0); i < count; i++ {
		if alloc.AllocationBitmap.Get(int(uint(start)+i)) != value {
			return false
		}
	}
	return true
}

// RunLengthAt returns the number of consecutive units starting at `start` that
// have the same value as the unit at `start`.
func (alloc *Allocator) RunLengthAt(start UnitID) uint {
	if uint(start) >= alloc.TotalUnits {
		return 0
	}

	value := alloc.AllocationBitmap.Get(int(start))
	end := uint(start) + 1
	for end < alloc.TotalUnits && alloc.AllocationBitmap.Get(int(end)) == value {
		end++
	}
	return end - uint(start)
}

// AllocateContiguous allocates a set of contiguous units in a first-fit manner.
func (alloc *Allocator) AllocateContiguous(count uint) (UnitID, error) {
	return alloc.AllocateContiguousBefore(count, UnitID(alloc.TotalUnits))
}

// AllocateContiguousBefore allocates a set of contiguous units in a first-fit
// manner, only considering runs that end before `limit`.
func (alloc *Allocator) AllocateContiguousBefore(count uint, limit UnitID) (UnitID, error) {
	runStart, err := alloc.FindContiguousValues(false, count, limit)
	if err != nil {
		return UnitID(0), err
	}

	alloc.setRange(runStart, count, true)
	return runStart, nil
}

// AllocateAt allocates `count` units starting at `start`. If any unit in the
// range is already allocated, it fails and the bitmap is *not* modified.
func (alloc *Allocator) AllocateAt(start UnitID, count uint) error {
	if err := alloc.checkRange(start, count); err != nil {
		return err
	}
	if !alloc.HasContiguousValuesAt(start, false, count) {
		msg := fmt.Sprintf(
			"there aren't %d free units starting at %d", count, start)
		return diskfrag.ErrNoSpaceOnDevice.WithMessage(msg)
	}

	alloc.setRange(start, count, true)
	return nil
}

// FreeContiguous frees a set of contiguous `count` units starting at index
// `start`. If any units in the range are already free, it fails immediately and
// the bitmap is *not* modified.
func (alloc *Allocator) FreeContiguous(start UnitID, count uint) error {
	if err := alloc.checkRange(start, count); err != nil {
		return err
	}
	if !alloc.HasContiguousValuesAt(start, true, count) {
		msg := fmt.Sprintf(
			"tried to free already free units: there aren't %d allocated units starting at %d",
			count,
			start)
		return diskfrag.ErrAlreadyFree.WithMessage(msg)
	}

	alloc.setRange(start, count, false)
	return nil
}

func (alloc *Allocator) setRange(start UnitID, count uint, value bool) {
	for i := uint(0); i < count; i++ {
		alloc.AllocationBitmap.Set(int(uint(start)+i), value)
	}
}

func (alloc *Allocator) checkRange(start UnitID, count uint) error {
	if uint(start)+count > alloc.TotalUnits {
		msg := fmt.Sprintf(
			"invalid unit range: [%d, %d) not in range [0, %d)",
			start,
			uint(start)+count,
			alloc.TotalUnits)
		return diskfrag.ErrInvalidArgument.WithMessage(msg)
	}
	return nil
}
