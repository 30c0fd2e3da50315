package testing

import (
	"io"
	"math/rand"
	"strings"
	"testing"

	"github.com/dargueta/diskfrag/diskmap"
	"github.com/stretchr/testify/require"
	"github.com/xaionaro-go/bytesextra"
)

// ExampleDiskMap is the worked example used throughout the tests. Whole-block
// compaction gives it a checksum of 1928, whole-file compaction 2858.
const ExampleDiskMap = "2333133121414131402"

// MustDecode decodes a disk map, failing the test immediately if it's invalid.
func MustDecode(t *testing.T, diskMap string) diskmap.Layout {
	layout, err := diskmap.Decode(diskMap)
	require.NoErrorf(t, err, "failed to decode disk map %q", diskMap)
	return layout
}

// RandomDiskMap generates a valid disk map for `totalFiles` files using `rng`.
// Files get lengths of 1-9 and free runs lengths of 0-9. The map ends with a
// free-space digit only if `trailingFree` is true.
func RandomDiskMap(rng *rand.Rand, totalFiles int, trailingFree bool) string {
	var builder strings.Builder
	for i := 0; i < totalFiles; i++ {
		builder.WriteByte(byte('1' + rng.Intn(9)))
		if i < totalFiles-1 || trailingFree {
			builder.WriteByte(byte('0' + rng.Intn(10)))
		}
	}
	return builder.String()
}

// DiskMapStream returns a stream containing `contents`, the way it'd be read
// from an input file.
//
//   - Writes to the stream do not affect `contents`.
//   - The size of the stream is fixed to the length of `contents`.
func DiskMapStream(contents string) io.ReadWriteSeeker {
	return bytesextra.NewReadWriteSeeker([]byte(contents))
}

// OccupancyCounts returns the number of slots each file occupies.
func OccupancyCounts(l diskmap.Layout) map[diskmap.FileID]int {
	counts := map[diskmap.FileID]int{}
	for _, slot := range l {
		if !slot.IsFree() {
			counts[slot]++
		}
	}
	return counts
}

// FileExtents returns the extent of every file in the layout. It fails the test
// if any file is split across more than one extent.
func FileExtents(t *testing.T, l diskmap.Layout) map[diskmap.FileID]diskmap.Extent {
	result := map[diskmap.FileID]diskmap.Extent{}
	for _, extent := range diskmap.Extents(l) {
		previous, exists := result[extent.ID]
		require.Falsef(
			t,
			exists,
			"file %d is split: found at [%d, %d) and [%d, %d)",
			extent.ID,
			previous.Start,
			previous.End(),
			extent.Start,
			extent.End(),
		)
		result[extent.ID] = extent
	}
	return result
}
