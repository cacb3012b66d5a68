package http

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/mind-engage/nihongo-exam/internal/quiz"
)

type QuestionSource interface {
	Questions(count int) ([]quiz.Question, error)
}

// GET /api/questions/{section}
//
// Every section draws from the same bank; the section only has to be known.
func QuestionsHandler(src QuestionSource, count int, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		section := chi.URLParam(r, "section")
		if _, ok := quiz.ParseSection(section); !ok {
			writeError(w, http.StatusNotFound, "unknown section: "+section)
			return
		}
		qs, err := src.Questions(count)
		if err != nil {
			if errors.Is(err, quiz.ErrInsufficientVocabulary) {
				writeError(w, http.StatusNotFound, "no vocabulary available")
				return
			}
			log.Error("generate questions", zap.String("section", section), zap.Error(err))
			writeError(w, http.StatusInternalServerError, "could not generate questions")
			return
		}
		writeJSON(w, http.StatusOK, qs)
	}
}
