package compact_test

import (
	"testing"

	"github.com/dargueta/diskfrag"
	"github.com/dargueta/diskfrag/compact"
	"github.com/dargueta/diskfrag/diskmap"
	dt "github.com/dargueta/diskfrag/testing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolve__Example(t *testing.T) {
	for _, strategy := range []compact.Strategy{compact.WholeFile, compact.WholeFileIndexed} {
		t.Run(
			strategy.String(),
			func(t *testing.T) {
				layout := dt.MustDecode(t, dt.ExampleDiskMap)
				original := layout.Clone()

				result, err := compact.Solve(layout, strategy)
				require.NoError(t, err)
				assert.Equal(t, compact.Result{Part1: 1928, Part2: 2858}, result)
				assert.Equal(t, original, layout, "input layout was modified")
			},
		)
	}
}

func TestSolve__NoFreeSpace(t *testing.T) {
	layout := dt.MustDecode(t, "9")
	result, err := compact.Solve(layout, compact.WholeFile)
	require.NoError(t, err)
	assert.Equal(t, diskmap.Checksum(layout), result.Part1)
	assert.Equal(t, diskmap.Checksum(layout), result.Part2)
}

func TestSolve__BadStrategy(t *testing.T) {
	_, err := compact.Solve(dt.MustDecode(t, "12345"), compact.WholeBlock)
	assert.ErrorIs(t, err, diskfrag.ErrInvalidArgument)
}
