package compact

import (
	"fmt"
	"strings"

	"github.com/dargueta/diskfrag"
	"github.com/dargueta/diskfrag/diskmap"
)

type Strategy int

const (
	// WholeBlock moves one block at a time, see [Blocks].
	WholeBlock Strategy = iota
	// WholeFile moves entire files, see [Files].
	WholeFile
	// WholeFileIndexed moves entire files using a free run index, see
	// [FilesIndexed].
	WholeFileIndexed
)

var strategyNames = map[Strategy]string{
	WholeBlock:       "block",
	WholeFile:        "file",
	WholeFileIndexed: "file-indexed",
}

// StrategyNames returns the names accepted by [ParseStrategy].
func StrategyNames() []string {
	return []string{
		strategyNames[WholeBlock],
		strategyNames[WholeFile],
		strategyNames[WholeFileIndexed],
	}
}

// ParseStrategy returns the strategy with the given name. Names are
// case-insensitive.
func ParseStrategy(name string) (Strategy, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	for strategy, strategyName := range strategyNames {
		if strategyName == normalized {
			return strategy, nil
		}
	}
	return WholeBlock, diskfrag.ErrInvalidArgument.WithMessage(
		fmt.Sprintf(
			"unknown strategy %q, expected one of: %s",
			name,
			strings.Join(StrategyNames(), ", ")))
}

func (s Strategy) String() string {
	name, ok := strategyNames[s]
	if !ok {
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
	return name
}

// MovesWholeFiles returns true if the strategy never splits a file.
func (s Strategy) MovesWholeFiles() bool {
	return s == WholeFile || s == WholeFileIndexed
}

// Apply runs the strategy on the layout in place. Whole-file strategies return
// the moves they made; [WholeBlock] returns nil.
func (s Strategy) Apply(l diskmap.Layout) []Move {
	switch s {
	case WholeFile:
		return Files(l)
	case WholeFileIndexed:
		return FilesIndexed(l)
	default:
		Blocks(l)
		return nil
	}
}
