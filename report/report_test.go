package report_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/dargueta/diskfrag"
	"github.com/dargueta/diskfrag/compact"
	"github.com/dargueta/diskfrag/report"
	dt "github.com/dargueta/diskfrag/testing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromLayouts__WholeFile(t *testing.T) {
	before := dt.MustDecode(t, "1333") // 0...111...
	after := before.Clone()
	compact.Files(after)

	expected := []report.ExtentRecord{
		{FileID: 0, Start: 0, Length: 1, OriginalStart: 0, Moved: false},
		{FileID: 1, Start: 1, Length: 3, OriginalStart: 4, Moved: true},
	}
	assert.Equal(t, expected, report.FromLayouts(before, after))
}

func TestFromLayouts__WholeBlock(t *testing.T) {
	before := dt.MustDecode(t, "12345")
	after := before.Clone()
	compact.Blocks(after) // 022111222......

	expected := []report.ExtentRecord{
		{FileID: 0, Start: 0, Length: 1, OriginalStart: 0, Moved: false},
		{FileID: 2, Start: 1, Length: 2, OriginalStart: 10, Moved: true},
		{FileID: 1, Start: 3, Length: 3, OriginalStart: 3, Moved: false},
		{FileID: 2, Start: 6, Length: 3, OriginalStart: 10, Moved: true},
	}
	assert.Equal(t, expected, report.FromLayouts(before, after))
}

func TestWriteCSV(t *testing.T) {
	records := []report.ExtentRecord{
		{FileID: 0, Start: 0, Length: 1, OriginalStart: 0, Moved: false},
		{FileID: 1, Start: 1, Length: 3, OriginalStart: 4, Moved: true},
	}

	buffer := bytes.Buffer{}
	require.NoError(t, report.WriteCSV(&buffer, records))

	expected := "file_id,start,length,original_start,moved\n" +
		"0,0,1,0,false\n" +
		"1,1,3,4,true\n"
	assert.Equal(t, expected, buffer.String())
}

func TestWriteTable(t *testing.T) {
	records := []report.ExtentRecord{
		{FileID: 9, Start: 2, Length: 2, OriginalStart: 40, Moved: true},
	}

	buffer := bytes.Buffer{}
	require.NoError(t, report.Write(&buffer, report.FormatTable, records))

	lines := strings.Split(strings.TrimSpace(buffer.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(
		t, []string{"File", "ID", "Start", "Length", "Original", "Start", "Moved"},
		strings.Fields(lines[0]))
	assert.Equal(t, []string{"9", "2", "2", "40", "yes"}, strings.Fields(lines[1]))
}

func TestParseFormat(t *testing.T) {
	format, err := report.ParseFormat("CSV")
	require.NoError(t, err)
	assert.Equal(t, report.FormatCSV, format)

	format, err = report.ParseFormat("table")
	require.NoError(t, err)
	assert.Equal(t, report.FormatTable, format)

	_, err = report.ParseFormat("xml")
	assert.ErrorIs(t, err, diskfrag.ErrInvalidArgument)
}
