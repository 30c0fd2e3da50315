// Package report describes where every file ended up after compaction.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dargueta/diskfrag"
	"github.com/dargueta/diskfrag/diskmap"
	"github.com/gocarina/gocsv"
	"github.com/olekukonko/tablewriter"
)

// ExtentRecord is one row of a report: a contiguous run of slots of a single
// file after compaction, and where that file started before.
type ExtentRecord struct {
	FileID        int  `csv:"file_id"`
	Start         int  `csv:"start"`
	Length        int  `csv:"length"`
	OriginalStart int  `csv:"original_start"`
	Moved         bool `csv:"moved"`
}

var tableHeaders = []string{"File ID", "Start", "Length", "Original Start", "Moved"}

// FromLayouts builds a report with one record per extent of `after`, in slot
// order. `before` must be the layout `after` was compacted from.
//
// An extent counts as moved if it doesn't start where its file started in
// `before`, or if it's only a piece of the file.
func FromLayouts(before, after diskmap.Layout) []ExtentRecord {
	originals := map[diskmap.FileID]diskmap.Extent{}
	for _, extent := range diskmap.Extents(before) {
		if _, exists := originals[extent.ID]; !exists {
			originals[extent.ID] = extent
		}
	}

	records := []ExtentRecord{}
	for _, extent := range diskmap.Extents(after) {
		original := originals[extent.ID]
		records = append(
			records,
			ExtentRecord{
				FileID:        int(extent.ID),
				Start:         extent.Start,
				Length:        extent.Length,
				OriginalStart: original.Start,
				Moved:         extent != original,
			},
		)
	}
	return records
}

type Format int

const (
	FormatTable Format = iota
	FormatCSV
)

// ParseFormat returns the report format with the given name, either "table" or
// "csv".
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "table":
		return FormatTable, nil
	case "csv":
		return FormatCSV, nil
	}
	return FormatTable, diskfrag.ErrInvalidArgument.WithMessage(
		fmt.Sprintf("unknown report format %q, expected table or csv", name))
}

// Write writes the records to `w` in the given format.
func Write(w io.Writer, format Format, records []ExtentRecord) error {
	if format == FormatCSV {
		return WriteCSV(w, records)
	}
	return WriteTable(w, records)
}

// WriteCSV writes the records as CSV with a header row.
func WriteCSV(w io.Writer, records []ExtentRecord) error {
	if err := gocsv.Marshal(records, w); err != nil {
		return diskfrag.ErrIOFailed.Wrap(err)
	}
	return nil
}

// WriteTable writes the records as a table aligned for reading in a terminal.
func WriteTable(w io.Writer, records []ExtentRecord) error {
	table := tablewriter.NewWriter(w)
	table.SetHeader(tableHeaders)

	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("  ")
	table.SetNoWhiteSpace(true)

	for _, record := range records {
		moved := "no"
		if record.Moved {
			moved = "yes"
		}
		table.Append(
			[]string{
				strconv.Itoa(record.FileID),
				strconv.Itoa(record.Start),
				strconv.Itoa(record.Length),
				strconv.Itoa(record.OriginalStart),
				moved,
			},
		)
	}

	table.Render()
	return nil
}
