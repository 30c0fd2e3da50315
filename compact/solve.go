package compact

import (
	"fmt"

	"github.com/dargueta/diskfrag"
	"github.com/dargueta/diskfrag/diskmap"
)

// Result holds the checksums of a layout after both kinds of compaction.
type Result struct {
	// Part1 is the checksum after whole-block compaction.
	Part1 uint64
	// Part2 is the checksum after whole-file compaction.
	Part2 uint64
}

// Solve compacts separate copies of the layout with [Blocks] and with
// `fileStrategy`, and returns the checksums of both. `l` isn't modified.
//
// `fileStrategy` must be a strategy that moves whole files.
func Solve(l diskmap.Layout, fileStrategy Strategy) (Result, error) {
	if !fileStrategy.MovesWholeFiles() {
		return Result{}, diskfrag.ErrInvalidArgument.WithMessage(
			fmt.Sprintf("%s doesn't move whole files", fileStrategy))
	}

	byBlock := l.Clone()
	Blocks(byBlock)

	byFile := l.Clone()
	fileStrategy.Apply(byFile)

	return Result{
		Part1: diskmap.Checksum(byBlock),
		Part2: diskmap.Checksum(byFile),
	}, nil
}
