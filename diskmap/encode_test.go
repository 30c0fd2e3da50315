package diskmap_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/dargueta/diskfrag"
	"github.com/dargueta/diskfrag/diskmap"
	dt "github.com/dargueta/diskfrag/testing"
	"github.com/noxer/bytewriter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode__RoundTrip(t *testing.T) {
	tests := []string{"9", "1012", "12345", "10101", dt.ExampleDiskMap}

	for _, diskMap := range tests {
		t.Run(
			diskMap,
			func(t *testing.T) {
				encoded, err := diskmap.Encode(dt.MustDecode(t, diskMap))
				require.NoError(t, err)
				assert.Equal(t, diskMap, encoded)
			},
		)
	}
}

func TestEncode__RoundTripRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(1234))
	for i := 0; i < 50; i++ {
		diskMap := dt.RandomDiskMap(rng, 1+rng.Intn(100), false)
		encoded, err := diskmap.Encode(dt.MustDecode(t, diskMap))
		require.NoError(t, err)
		require.Equal(t, diskMap, encoded)
	}
}

func TestEncode__DropsTrailingZeroFree(t *testing.T) {
	encoded, err := diskmap.Encode(dt.MustDecode(t, "10"))
	require.NoError(t, err)
	assert.Equal(t, "1", encoded)
}

func TestEncode__NotEncodable(t *testing.T) {
	tests := []struct {
		Layout diskmap.Layout
		Name   string
	}{
		{diskmap.Layout{}, "empty"},
		{diskmap.Layout{F, 0}, "leading free space"},
		{diskmap.Layout{1, F, 0}, "out of order"},
		{diskmap.Layout{0, 2, 2, 1, 1, 1, 2, 2, 2, F, F}, "split file"},
		{diskmap.Layout{0, 0, 0, 0, 0, 0, 0, 0, 0, 0}, "file too long"},
		{diskmap.Layout{0, F, F, F, F, F, F, F, F, F, F, 1}, "free run too long"},
	}

	for _, test := range tests {
		t.Run(
			test.Name,
			func(t *testing.T) {
				_, err := diskmap.Encode(test.Layout)
				assert.ErrorIs(t, err, diskfrag.ErrNotSupported)
			},
		)
	}
}

func TestEncodeTo(t *testing.T) {
	outputBuffer := make([]byte, len(dt.ExampleDiskMap))
	writer := bytewriter.New(outputBuffer)

	n, err := diskmap.EncodeTo(writer, dt.MustDecode(t, dt.ExampleDiskMap))
	require.NoError(t, err)
	assert.EqualValues(t, len(dt.ExampleDiskMap), n, "bytes written is wrong")
	assert.Equal(t, dt.ExampleDiskMap, string(outputBuffer))
}

type failingWriter struct{}

var errWriteFailed = errors.New("write failed")

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errWriteFailed
}

func TestEncodeTo__WriteFailure(t *testing.T) {
	_, err := diskmap.EncodeTo(failingWriter{}, dt.MustDecode(t, "12345"))
	assert.ErrorIs(t, err, diskfrag.ErrIOFailed)
	assert.ErrorIs(t, err, errWriteFailed)
}
