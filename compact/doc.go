// Package compact implements the strategies for moving files toward the start
// of a layout.
//
// Every strategy rewrites the layout it's given in place and never changes its
// length. Callers that want to compare strategies must give each one its own
// copy, see [diskmap.Layout.Clone] and [Solve].
//
// Whole-block compaction fills free slots one block at a time and ignores file
// boundaries, so files can end up split. Whole-file compaction moves each file
// at most once, as a unit, into the leftmost free run that can hold it, and
// never moves a file to the right.
package compact
