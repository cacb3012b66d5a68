package http

import (
	"bytes"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/mind-engage/nihongo-exam/internal/export"
	"github.com/mind-engage/nihongo-exam/internal/quiz"
)

type sectionScore struct {
	Score          int `json:"score"`
	TotalQuestions int `json:"totalQuestions"`
	Percentage     int `json:"percentage"`
}

type submitSummary struct {
	quiz.ScoreSummary
	Percentage int                           `json:"percentage"`
	Sections   map[quiz.Section]sectionScore `json:"sections"`
}

// POST /api/submit {results: [...]} -> exam_results.xlsx
//
// ?format=json returns the score summary instead of the workbook.
func SubmitHandler(exp export.Exporter, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Results []quiz.AnswerResult `json:"results"`
		}
		if !decodeJSON(w, r, &req) {
			return
		}
		summary, err := quiz.ScoreSession(req.Results)
		if err != nil {
			writeError(w, http.StatusBadRequest, "No results provided")
			return
		}

		if r.URL.Query().Get("format") == "json" {
			writeJSON(w, http.StatusOK, summarize(summary))
			return
		}

		data, err := exp.Export(req.Results, summary)
		if err != nil {
			log.Error("export results", zap.Int("results", len(req.Results)), zap.Error(err))
			writeError(w, http.StatusInternalServerError, "export failed")
			return
		}

		h := w.Header()
		h.Set("Content-Type", export.ContentType)
		h.Set("Content-Disposition", `attachment; filename="`+export.FileName+`"`)
		h.Set("X-Score-Vocabulary", strconv.Itoa(summary.VocabularyScore))
		h.Set("X-Score-Listening", strconv.Itoa(summary.ListeningScore))
		h.Set("X-Score-Speaking", strconv.Itoa(summary.SpeakingScore))
		h.Set("X-Score-Total", strconv.Itoa(summary.Total))
		h.Set("X-Total-Questions", strconv.Itoa(summary.TotalQuestions))
		http.ServeContent(w, r, export.FileName, time.Now(), bytes.NewReader(data))
	}
}

func summarize(s quiz.ScoreSummary) submitSummary {
	out := submitSummary{
		ScoreSummary: s,
		Percentage:   s.TotalPercentage(),
		Sections:     make(map[quiz.Section]sectionScore, len(quiz.Sections)),
	}
	for _, sec := range quiz.Sections {
		out.Sections[sec] = sectionScore{
			Score:          s.Score(sec),
			TotalQuestions: s.SectionQuestions[sec],
			Percentage:     s.Percentage(sec),
		}
	}
	return out
}
