package http

import (
	"encoding/base64"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/mind-engage/nihongo-exam/internal/speech"
)

// POST /api/tts {text, languageCode?, voiceName?, audioEncoding?} -> {audio}
func TTSHandler(s speech.Synthesizer, def speech.Voice, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Text          string `json:"text"`
			LanguageCode  string `json:"languageCode"`
			VoiceName     string `json:"voiceName"`
			AudioEncoding string `json:"audioEncoding"`
		}
		if !decodeJSON(w, r, &req) {
			return
		}
		if strings.TrimSpace(req.Text) == "" {
			writeError(w, http.StatusBadRequest, "No text provided")
			return
		}
		voice := speech.Voice{
			LanguageCode:  req.LanguageCode,
			Name:          req.VoiceName,
			AudioEncoding: req.AudioEncoding,
		}.Merge(def)

		audio, err := s.Synthesize(r.Context(), req.Text, voice)
		if err != nil {
			log.Error("tts failed", zap.String("voice", voice.Name), zap.Error(err))
			writeError(w, http.StatusInternalServerError, "TTS failed")
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"audio": base64.StdEncoding.EncodeToString(audio)})
	}
}

type sttResponse struct {
	Transcript string `json:"transcript"`
	*speech.Match
}

// POST /api/stt {audio, encoding?, sampleRateHertz?, languageCode?, expected?}
//
// A provider failure yields an empty transcript, not an error status.
func STTHandler(t speech.Transcriber, def speech.AudioConfig, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Audio           string `json:"audio"`
			Encoding        string `json:"encoding"`
			SampleRateHertz int    `json:"sampleRateHertz"`
			LanguageCode    string `json:"languageCode"`
			Expected        string `json:"expected"`
		}
		if !decodeJSON(w, r, &req) {
			return
		}
		if req.Audio == "" {
			writeError(w, http.StatusBadRequest, "No audio provided")
			return
		}
		audio, err := decodeAudio(req.Audio)
		if err != nil {
			writeError(w, http.StatusBadRequest, "audio must be base64")
			return
		}
		cfg := speech.AudioConfig{
			Encoding:        req.Encoding,
			SampleRateHertz: req.SampleRateHertz,
			LanguageCode:    req.LanguageCode,
		}.Merge(def)

		transcript, err := t.Transcribe(r.Context(), audio, cfg)
		if err != nil {
			log.Warn("stt failed", zap.String("encoding", cfg.Encoding), zap.Error(err))
			transcript = ""
		}
		resp := sttResponse{Transcript: transcript}
		if req.Expected != "" {
			m := speech.Compare(req.Expected, transcript)
			resp.Match = &m
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

// decodeAudio accepts plain base64 or a data: URL as produced by browsers.
func decodeAudio(s string) ([]byte, error) {
	if strings.HasPrefix(s, "data:") {
		if i := strings.Index(s, ","); i >= 0 {
			s = s[i+1:]
		}
	}
	return base64.StdEncoding.DecodeString(strings.TrimSpace(s))
}
