package vocab

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// SheetSource reads the question bank from a Google Sheet range. The first
// row may be a header naming the japanese, reading and meaning columns;
// without one, columns A, B and C are used in that order.
type SheetSource struct {
	service   *sheets.Service
	sheetID   string
	readRange string
}

func NewSheetSource(ctx context.Context, sheetID, readRange string, opts ...option.ClientOption) (*SheetSource, error) {
	service, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Sheets service: %w", err)
	}
	return &SheetSource{service: service, sheetID: sheetID, readRange: readRange}, nil
}

func (s *SheetSource) Load(ctx context.Context) (Collection, error) {
	resp, err := s.service.Spreadsheets.Values.Get(s.sheetID, s.readRange).Context(ctx).Do()
	if err != nil {
		return Collection{}, fmt.Errorf("unable to read vocabulary sheet: %w", err)
	}
	c := NewCollection(rowsToEntries(resp.Values))
	if c.Len() == 0 {
		return Collection{}, ErrEmpty
	}
	return c, nil
}

type columns struct{ japanese, reading, meaning int }

func rowsToEntries(rows [][]interface{}) []Entry {
	if len(rows) == 0 {
		return nil
	}
	cols := columns{japanese: 0, reading: 1, meaning: 2}
	if h, ok := headerColumns(rows[0]); ok {
		cols = h
		rows = rows[1:]
	}
	out := make([]Entry, 0, len(rows))
	for _, row := range rows {
		out = append(out, Entry{
			Japanese: cell(row, cols.japanese),
			Reading:  cell(row, cols.reading),
			Meaning:  cell(row, cols.meaning),
		})
	}
	return out
}

func headerColumns(row []interface{}) (columns, bool) {
	cols := columns{japanese: -1, reading: -1, meaning: -1}
	for i := range row {
		switch strings.ToLower(cell(row, i)) {
		case "japanese", "word":
			cols.japanese = i
		case "reading", "kana":
			cols.reading = i
		case "meaning", "english":
			cols.meaning = i
		}
	}
	if cols.japanese < 0 || cols.meaning < 0 {
		return columns{}, false
	}
	return cols, true
}

func cell(row []interface{}, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(fmt.Sprintf("%v", row[i]))
}
