package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/mind-engage/nihongo-exam/internal/export"
	"github.com/mind-engage/nihongo-exam/internal/speech"
	"github.com/mind-engage/nihongo-exam/internal/tutor"
)

// Deps are the collaborators behind the /api routes. Explainer may be nil.
type Deps struct {
	Questions           QuestionSource
	QuestionsPerSection int

	Synthesizer  speech.Synthesizer
	Voice        speech.Voice
	Transcriber  speech.Transcriber
	AudioDefault speech.AudioConfig

	Exporter  export.Exporter
	Explainer tutor.Explainer

	Log *zap.Logger
}

// MountAPI registers the exam endpoints on r (typically under /api).
func MountAPI(r chi.Router, d Deps) {
	log := d.Log
	if log == nil {
		log = zap.NewNop()
	}
	r.Get("/questions/{section}", QuestionsHandler(d.Questions, d.QuestionsPerSection, log))
	r.Post("/tts", TTSHandler(d.Synthesizer, d.Voice, log))
	r.Post("/stt", STTHandler(d.Transcriber, d.AudioDefault, log))
	r.Post("/submit", SubmitHandler(d.Exporter, log))
	r.Post("/explain", ExplainHandler(d.Explainer, log))
}

// MountHealth registers liveness and readiness probes.
func MountHealth(r chi.Router) {
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })
	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })
}
