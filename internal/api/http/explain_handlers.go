package http

import (
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/mind-engage/nihongo-exam/internal/tutor"
	"github.com/mind-engage/nihongo-exam/internal/vocab"
)

// POST /api/explain {japanese, reading?, meaning} -> {explanation}
func ExplainHandler(ex tutor.Explainer, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if ex == nil {
			writeError(w, http.StatusServiceUnavailable, "explanations are not configured")
			return
		}
		var e vocab.Entry
		if !decodeJSON(w, r, &e) {
			return
		}
		if strings.TrimSpace(e.Japanese) == "" || strings.TrimSpace(e.Meaning) == "" {
			writeError(w, http.StatusBadRequest, "japanese and meaning required")
			return
		}
		text, err := ex.Explain(r.Context(), e)
		if err != nil {
			log.Error("explain failed", zap.String("japanese", e.Japanese), zap.Error(err))
			writeError(w, http.StatusInternalServerError, "explanation failed")
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"explanation": text})
	}
}
