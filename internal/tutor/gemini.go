// Package tutor produces short learner-facing explanations of vocabulary
// entries with Gemini.
package tutor

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/mind-engage/nihongo-exam/internal/vocab"
)

var ErrEmptyExplanation = errors.New("empty explanation")

type Explainer interface {
	Explain(ctx context.Context, e vocab.Entry) (string, error)
}

type Gemini struct {
	APIKey string
	Model  string
}

func NewGemini(apiKey, model string) *Gemini {
	return &Gemini{
		APIKey: strings.TrimSpace(apiKey),
		Model:  strings.TrimSpace(model),
	}
}

func (g *Gemini) Explain(ctx context.Context, e vocab.Entry) (string, error) {
	if g.APIKey == "" {
		return "", errors.New("GEMINI_API_KEY is empty")
	}
	cl, err := genai.NewClient(ctx, option.WithAPIKey(g.APIKey))
	if err != nil {
		return "", err
	}
	defer cl.Close()

	m := cl.GenerativeModel(g.Model)
	m.SetTemperature(0.2)
	m.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(systemPrompt)}}

	resp, err := m.GenerateContent(ctx, genai.Text(Prompt(e)))
	if err != nil {
		return "", fmt.Errorf("gemini explain: %w", err)
	}
	txt := strings.TrimSpace(firstText(resp))
	if txt == "" {
		return "", ErrEmptyExplanation
	}
	return txt, nil
}

const systemPrompt = `You are a Japanese teacher helping a JLPT learner review vocabulary.
Answer in English, in at most four sentences: explain the word's meaning and typical usage,
then give one short example sentence in Japanese followed by its reading and translation.
Plain text only, no markdown.`

// Prompt is the user turn sent for an entry.
func Prompt(e vocab.Entry) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Word: %s\n", e.Japanese)
	if e.Reading != "" {
		fmt.Fprintf(&b, "Reading: %s\n", e.Reading)
	}
	fmt.Fprintf(&b, "Meaning: %s\n", e.Meaning)
	return b.String()
}

func firstText(resp *genai.GenerateContentResponse) string {
	if resp == nil {
		return ""
	}
	for _, c := range resp.Candidates {
		if c == nil || c.Content == nil {
			continue
		}
		var sb strings.Builder
		for _, p := range c.Content.Parts {
			if t, ok := p.(genai.Text); ok {
				sb.WriteString(string(t))
			}
		}
		if sb.Len() > 0 {
			return sb.String()
		}
	}
	return ""
}
