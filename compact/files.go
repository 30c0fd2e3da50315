package compact

import (
	"github.com/dargueta/diskfrag/allocator"
	"github.com/dargueta/diskfrag/diskmap"
)

// Move records the relocation of an entire file.
type Move struct {
	ID     diskmap.FileID
	From   int
	To     int
	Length int
}

// holeFinder returns the start of the free run a file should be moved into, and
// false if the file should stay where it is. A holeFinder that returns true has
// already accounted for the file leaving its old slots.
type holeFinder func(file diskmap.Extent) (int, bool)

// Files compacts the layout by moving whole files, never splitting one. Files
// are processed once each from the highest ID to the lowest; each is moved into
// the leftmost free run that is large enough to hold it and lies entirely before
// the file's current position. Files that fit nowhere stay put.
//
// The free run search is a first-fit scan from the start of the layout every
// time. [FilesIndexed] gives identical results faster.
func Files(l diskmap.Layout) []Move {
	alloc := allocator.NewAllocatorFromLayout(l)

	return relocateFiles(
		l,
		func(file diskmap.Extent) (int, bool) {
			start, err := alloc.AllocateContiguousBefore(
				uint(file.Length), allocator.UnitID(file.Start))
			if err != nil {
				return 0, false
			}

			// Can't fail, every slot of the extent is occupied.
			_ = alloc.FreeContiguous(allocator.UnitID(file.Start), uint(file.Length))
			return int(start), true
		},
	)
}

// relocateFiles walks the layout from the end, and calls `findHole` once for
// each file ID, highest first. Slots that are free or belong to a file that was
// already considered are skipped.
func relocateFiles(l diskmap.Layout, findHole holeFinder) []Move {
	var moves []Move

	ceiling := l.MaxFileID() + 1
	cursor := len(l) - 1
	for cursor >= 0 {
		id := l[cursor]
		if id.IsFree() || id >= ceiling {
			cursor--
			continue
		}

		end := cursor + 1
		for cursor > 0 && l[cursor-1] == id {
			cursor--
		}
		file := diskmap.Extent{ID: id, Start: cursor, Length: end - cursor}
		ceiling = id

		destination, found := findHole(file)
		if found {
			moveExtent(l, file, destination)
			moves = append(
				moves,
				Move{ID: id, From: file.Start, To: destination, Length: file.Length},
			)
		}
		cursor--
	}
	return moves
}

// moveExtent moves the file's slots to `destination` and marks the slots it
// used to occupy as free. The two ranges must not overlap.
func moveExtent(l diskmap.Layout, file diskmap.Extent, destination int) {
	for i := 0; i < file.Length; i++ {
		l[destination+i] = file.ID
		l[file.Start+i] = diskmap.Free
	}
}
