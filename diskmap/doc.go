// Package diskmap expands dense disk maps into block slot layouts and computes
// their checksums.
//
// A disk map is a single line of decimal digits. Digits alternate between the
// length of a file and the length of the free space following it, starting with
// a file. Files are numbered in the order they appear, starting at 0. For
// example:
//
//	12345
//	0..111....22222
//
// The first file is one block long and is followed by two free blocks, the
// second file is three blocks long and is followed by four free blocks, and the
// third file is five blocks long. Every file must be at least one block long,
// but free space may have a length of 0.
//
// The expanded form, a [Layout], has one entry per block. Each entry is either
// the ID of the file occupying that block or [Free].
package diskmap
