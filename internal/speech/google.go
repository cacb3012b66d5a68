package speech

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"google.golang.org/api/option"
	sttv1 "google.golang.org/api/speech/v1"
	ttsv1 "google.golang.org/api/texttospeech/v1"
)

// GoogleTTS calls the Cloud Text-to-Speech REST API.
type GoogleTTS struct {
	svc *ttsv1.Service
}

func NewGoogleTTS(ctx context.Context, opts ...option.ClientOption) (*GoogleTTS, error) {
	svc, err := ttsv1.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("text-to-speech client: %w", err)
	}
	return &GoogleTTS{svc: svc}, nil
}

func (g *GoogleTTS) Synthesize(ctx context.Context, text string, voice Voice) ([]byte, error) {
	req := &ttsv1.SynthesizeSpeechRequest{
		Input: &ttsv1.SynthesisInput{Text: text},
		Voice: &ttsv1.VoiceSelectionParams{
			LanguageCode: voice.LanguageCode,
			Name:         voice.Name,
		},
		AudioConfig: &ttsv1.AudioConfig{AudioEncoding: voice.AudioEncoding},
	}
	resp, err := g.svc.Text.Synthesize(req).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("synthesize: %w", err)
	}
	if resp.AudioContent == "" {
		return nil, ErrNoAudio
	}
	audio, err := base64.StdEncoding.DecodeString(resp.AudioContent)
	if err != nil {
		return nil, fmt.Errorf("synthesize: bad audio content: %w", err)
	}
	return audio, nil
}

// GoogleSTT calls the Cloud Speech-to-Text v1 REST API.
type GoogleSTT struct {
	svc *sttv1.Service
}

func NewGoogleSTT(ctx context.Context, opts ...option.ClientOption) (*GoogleSTT, error) {
	svc, err := sttv1.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("speech-to-text client: %w", err)
	}
	return &GoogleSTT{svc: svc}, nil
}

// Transcribe returns the top alternative of the first result.
func (g *GoogleSTT) Transcribe(ctx context.Context, audio []byte, cfg AudioConfig) (string, error) {
	req := &sttv1.RecognizeRequest{
		Config: &sttv1.RecognitionConfig{
			Encoding:        cfg.Encoding,
			SampleRateHertz: int64(cfg.SampleRateHertz),
			LanguageCode:    cfg.LanguageCode,
		},
		Audio: &sttv1.RecognitionAudio{Content: base64.StdEncoding.EncodeToString(audio)},
	}
	resp, err := g.svc.Speech.Recognize(req).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("recognize: %w", err)
	}
	if len(resp.Results) == 0 || len(resp.Results[0].Alternatives) == 0 {
		return "", ErrNoTranscript
	}
	return strings.TrimSpace(resp.Results[0].Alternatives[0].Transcript), nil
}
