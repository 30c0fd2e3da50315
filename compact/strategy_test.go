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

func TestParseStrategy(t *testing.T) {
	tests := []struct {
		Name     string
		Expected compact.Strategy
	}{
		{"block", compact.WholeBlock},
		{"file", compact.WholeFile},
		{"file-indexed", compact.WholeFileIndexed},
		{"FILE", compact.WholeFile},
		{" Block ", compact.WholeBlock},
	}

	for _, test := range tests {
		t.Run(
			test.Name,
			func(t *testing.T) {
				strategy, err := compact.ParseStrategy(test.Name)
				require.NoError(t, err)
				assert.Equal(t, test.Expected, strategy)
			},
		)
	}
}

func TestParseStrategy__Unknown(t *testing.T) {
	_, err := compact.ParseStrategy("defrag")
	assert.ErrorIs(t, err, diskfrag.ErrInvalidArgument)
	assert.Contains(t, err.Error(), "block, file, file-indexed")
}

func TestStrategyString(t *testing.T) {
	for _, name := range compact.StrategyNames() {
		strategy, err := compact.ParseStrategy(name)
		require.NoError(t, err)
		assert.Equal(t, name, strategy.String())
	}
	assert.Equal(t, "Strategy(99)", compact.Strategy(99).String())
}

func TestStrategyApply(t *testing.T) {
	tests := []struct {
		Strategy compact.Strategy
		Checksum uint64
		Moves    int
	}{
		{compact.WholeBlock, 1928, 0},
		{compact.WholeFile, 2858, 4},
		{compact.WholeFileIndexed, 2858, 4},
	}

	for _, test := range tests {
		t.Run(
			test.Strategy.String(),
			func(t *testing.T) {
				layout := dt.MustDecode(t, dt.ExampleDiskMap)
				moves := test.Strategy.Apply(layout)
				assert.Len(t, moves, test.Moves)
				assert.Equal(t, test.Checksum, diskmap.Checksum(layout))
			},
		)
	}
}

func TestMovesWholeFiles(t *testing.T) {
	assert.False(t, compact.WholeBlock.MovesWholeFiles())
	assert.True(t, compact.WholeFile.MovesWholeFiles())
	assert.True(t, compact.WholeFileIndexed.MovesWholeFiles())
}
