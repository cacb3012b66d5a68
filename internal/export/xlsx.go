// Package export turns a scored exam submission into a downloadable workbook.
package export

import (
	"encoding/json"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/mind-engage/nihongo-exam/internal/quiz"
)

const (
	ResultsSheet = "Exam Results"
	SummarySheet = "Summary"

	FileName    = "exam_results.xlsx"
	ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

type Exporter interface {
	Export(results []quiz.AnswerResult, summary quiz.ScoreSummary) ([]byte, error)
}

// XLSX writes one row per submitted answer, with one column per submitted
// field in first-seen order, plus a summary sheet with the section scores.
type XLSX struct{}

func (XLSX) Export(results []quiz.AnswerResult, summary quiz.ScoreSummary) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", ResultsSheet); err != nil {
		return nil, err
	}
	if err := writeResults(f, results); err != nil {
		return nil, fmt.Errorf("results sheet: %w", err)
	}
	if _, err := f.NewSheet(SummarySheet); err != nil {
		return nil, err
	}
	if err := writeSummary(f, summary); err != nil {
		return nil, fmt.Errorf("summary sheet: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeResults(f *excelize.File, results []quiz.AnswerResult) error {
	cols := columns(results)
	header := make([]interface{}, len(cols))
	for i, c := range cols {
		header[i] = c
	}
	if err := f.SetSheetRow(ResultsSheet, "A1", &header); err != nil {
		return err
	}
	for i, r := range results {
		row := make([]interface{}, len(cols))
		for j, c := range cols {
			row[j] = cellValue(fieldsOf(r)[c])
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(ResultsSheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}

func writeSummary(f *excelize.File, s quiz.ScoreSummary) error {
	rows := [][]interface{}{
		{"Section", "Score", "Questions", "Percentage"},
	}
	for _, sec := range quiz.Sections {
		rows = append(rows, []interface{}{string(sec), s.Score(sec), s.SectionQuestions[sec], s.Percentage(sec)})
	}
	rows = append(rows, []interface{}{"total", s.Total, s.TotalQuestions, s.TotalPercentage()})
	for i := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(SummarySheet, cell, &rows[i]); err != nil {
			return err
		}
	}
	return nil
}

// columns is the union of submitted keys in first-seen order.
func columns(results []quiz.AnswerResult) []string {
	var out []string
	seen := map[string]struct{}{}
	add := func(k string) {
		if _, ok := seen[k]; !ok {
			seen[k] = struct{}{}
			out = append(out, k)
		}
	}
	for _, r := range results {
		if r.Fields == nil {
			add("section")
			add("correct")
			continue
		}
		for _, k := range r.Keys {
			add(k)
		}
	}
	return out
}

func fieldsOf(r quiz.AnswerResult) map[string]any {
	if r.Fields != nil {
		return r.Fields
	}
	return map[string]any{"section": string(r.Section), "correct": r.Correct}
}

func cellValue(v any) interface{} {
	switch t := v.(type) {
	case nil:
		return nil
	case string, bool, float64, int:
		return t
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return i
		}
		if f, err := t.Float64(); err == nil {
			return f
		}
		return t.String()
	default:
		b, err := json.Marshal(t)
		if err != nil {
			return fmt.Sprint(t)
		}
		return string(b)
	}
}
