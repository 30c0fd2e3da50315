package diskmap

import (
	"fmt"
	"io"
	"strings"

	"github.com/dargueta/diskfrag"
)

// EncodeTo writes the disk map that decodes to `l`. The return value is the
// number of bytes written, only valid if no error occurred.
//
// Only layouts as produced by [Decode] can be encoded: files must appear in
// order of ID starting from 0, each as exactly one run, and no run may be longer
// than 9 slots. Compacted layouts generally don't satisfy this, and fail with
// [diskfrag.ErrNotSupported].
//
// A free run of length 0 is written between adjacent files. Free space at the
// end of the layout is written only if there is some, so a disk map ending in a
// `0` free digit loses that digit on a round trip.
func EncodeTo(output io.Writer, l Layout) (int64, error) {
	diskMap, err := encodeLayout(l)
	if err != nil {
		return 0, err
	}

	n, err := io.WriteString(output, diskMap)
	if err != nil {
		return int64(n), diskfrag.ErrIOFailed.Wrap(err)
	}
	return int64(n), nil
}

// Encode is like [EncodeTo] but returns the disk map as a string.
func Encode(l Layout) (string, error) {
	return encodeLayout(l)
}

func encodeLayout(l Layout) (string, error) {
	var builder strings.Builder
	nextID := FileID(0)
	expectFile := true

	for _, run := range Runs(l) {
		if run.Length > 9 {
			return "", diskfrag.ErrNotSupported.WithMessage(
				fmt.Sprintf(
					"run of %d slots at %d is too long to encode", run.Length, run.Start))
		}

		if run.Value.IsFree() {
			if expectFile {
				return "", diskfrag.ErrNotSupported.WithMessage(
					fmt.Sprintf("layout must start with a file, got free space at %d", run.Start))
			}
			builder.WriteByte(byte('0' + run.Length))
			expectFile = true
			continue
		}

		if run.Value != nextID {
			return "", diskfrag.ErrNotSupported.WithMessage(
				fmt.Sprintf(
					"expected file %d at slot %d, got file %d", nextID, run.Start, run.Value))
		}

		// Two files back to back; the free run between them has length 0.
		if !expectFile {
			builder.WriteByte('0')
		}
		builder.WriteByte(byte('0' + run.Length))
		nextID++
		expectFile = false
	}

	if builder.Len() == 0 {
		return "", diskfrag.ErrNotSupported.WithMessage("layout is empty")
	}
	return builder.String(), nil
}
