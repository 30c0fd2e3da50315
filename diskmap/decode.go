package diskmap

import (
	"bufio"
	"bytes"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dargueta/diskfrag"
)

var gzipMagic = []byte{0x1f, 0x8b}

// Decode expands a disk map into a layout.
//
// It fails with [diskfrag.ErrMalformedInput] if the map is empty, contains a
// character that isn't a decimal digit, or gives a file a length of 0.
func Decode(diskMap string) (Layout, error) {
	if diskMap == "" {
		return nil, diskfrag.ErrMalformedInput.WithMessage("disk map is empty")
	}

	// Validate everything first so we know exactly how big the layout is before
	// we allocate it.
	totalSlots := 0
	for i := 0; i < len(diskMap); i++ {
		char := diskMap[i]
		if char < '0' || char > '9' {
			return nil, diskfrag.ErrMalformedInput.WithMessage(
				fmt.Sprintf("invalid character %q at offset %d", char, i))
		}
		if i%2 == 0 && char == '0' {
			return nil, diskfrag.ErrMalformedInput.WithMessage(
				fmt.Sprintf("zero-length file %d at offset %d", i/2, i))
		}
		totalSlots += int(char - '0')
	}

	layout := make(Layout, 0, totalSlots)
	for i := 0; i < len(diskMap); i++ {
		value := Free
		if i%2 == 0 {
			value = FileID(i / 2)
		}

		runLength := int(diskMap[i] - '0')
		for j := 0; j < runLength; j++ {
			layout = append(layout, value)
		}
	}
	return layout, nil
}

// DecodeReader reads the first line of `input` and decodes it with [Decode].
// The line terminator is stripped, whether it's `\n` or `\r\n`.
//
// If the stream starts with the gzip magic number it's decompressed first, so
// disk maps can be stored compressed.
func DecodeReader(input io.Reader) (Layout, error) {
	source := bufio.NewReader(input)

	header, err := source.Peek(len(gzipMagic))
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, diskfrag.ErrIOFailed.Wrap(err)
	}

	if bytes.Equal(header, gzipMagic) {
		gzReader, err := gzip.NewReader(source)
		if err != nil {
			return nil, diskfrag.ErrIOFailed.Wrap(err)
		}
		defer gzReader.Close()
		source = bufio.NewReader(gzReader)
	}

	line, err := source.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, diskfrag.ErrIOFailed.Wrap(err)
	}

	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return Decode(line)
}

// ReadFile decodes the disk map stored in the file at `path`. See [DecodeReader].
func ReadFile(path string) (Layout, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, diskfrag.ErrNotFound.Wrap(err)
		}
		return nil, diskfrag.ErrIOFailed.Wrap(err)
	}
	defer file.Close()

	return DecodeReader(file)
}
