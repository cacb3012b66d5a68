// Package speech wraps the speech synthesis and recognition providers behind
// small interfaces so request handlers can be tested without the network.
package speech

import (
	"context"
	"errors"
)

var (
	ErrNoAudio      = errors.New("provider returned no audio")
	ErrNoTranscript = errors.New("provider returned no transcript")
)

// Voice selects the synthesized voice.
type Voice struct {
	LanguageCode  string
	Name          string
	AudioEncoding string // MP3, LINEAR16, OGG_OPUS
}

// AudioConfig describes recorded audio handed to a Transcriber.
type AudioConfig struct {
	Encoding        string // LINEAR16, WEBM_OPUS, ...
	SampleRateHertz int
	LanguageCode    string
}

type Synthesizer interface {
	Synthesize(ctx context.Context, text string, voice Voice) ([]byte, error)
}

type Transcriber interface {
	Transcribe(ctx context.Context, audio []byte, cfg AudioConfig) (string, error)
}

// Merge fills the zero fields of v from def.
func (v Voice) Merge(def Voice) Voice {
	if v.LanguageCode == "" {
		v.LanguageCode = def.LanguageCode
	}
	if v.Name == "" {
		v.Name = def.Name
	}
	if v.AudioEncoding == "" {
		v.AudioEncoding = def.AudioEncoding
	}
	return v
}

// Merge fills the zero fields of c from def.
func (c AudioConfig) Merge(def AudioConfig) AudioConfig {
	if c.Encoding == "" {
		c.Encoding = def.Encoding
	}
	if c.SampleRateHertz == 0 {
		c.SampleRateHertz = def.SampleRateHertz
	}
	if c.LanguageCode == "" {
		c.LanguageCode = def.LanguageCode
	}
	return c
}
