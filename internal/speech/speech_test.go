package speech_test

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"google.golang.org/api/option"

	"github.com/mind-engage/nihongo-exam/internal/speech"
)

func clientOpts(srv *httptest.Server) []option.ClientOption {
	return []option.ClientOption{option.WithEndpoint(srv.URL + "/"), option.WithHTTPClient(srv.Client())}
}

func TestGoogleTTSSynthesize(t *testing.T) {
	var got struct {
		Input struct {
			Text string `json:"text"`
		} `json:"input"`
		Voice struct {
			LanguageCode string `json:"languageCode"`
			Name         string `json:"name"`
		} `json:"voice"`
		AudioConfig struct {
			AudioEncoding string `json:"audioEncoding"`
		} `json:"audioConfig"`
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/v1/text:synthesize") {
			http.Error(w, "unexpected path "+r.URL.Path, http.StatusNotFound)
			return
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{
			"audioContent": base64.StdEncoding.EncodeToString([]byte("ID3-mp3-bytes")),
		})
	}))
	defer srv.Close()

	ctx := context.Background()
	tts, err := speech.NewGoogleTTS(ctx, clientOpts(srv)...)
	if err != nil {
		t.Fatal(err)
	}
	audio, err := tts.Synthesize(ctx, "こんにちは", speech.Voice{LanguageCode: "ja-JP", Name: "ja-JP-Standard-A", AudioEncoding: "MP3"})
	if err != nil {
		t.Fatalf("synthesize: %v", err)
	}
	if string(audio) != "ID3-mp3-bytes" {
		t.Fatalf("audio = %q", audio)
	}
	if got.Input.Text != "こんにちは" || got.Voice.LanguageCode != "ja-JP" || got.Voice.Name != "ja-JP-Standard-A" || got.AudioConfig.AudioEncoding != "MP3" {
		t.Fatalf("request = %+v", got)
	}
}

func TestGoogleTTSProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"code":403,"message":"denied"}}`, http.StatusForbidden)
	}))
	defer srv.Close()

	ctx := context.Background()
	tts, err := speech.NewGoogleTTS(ctx, clientOpts(srv)...)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := tts.Synthesize(ctx, "猫", speech.Voice{}); err == nil {
		t.Fatal("expected error")
	}
}

func TestGoogleSTTTranscribe(t *testing.T) {
	var got struct {
		Config struct {
			Encoding        string `json:"encoding"`
			SampleRateHertz int    `json:"sampleRateHertz"`
			LanguageCode    string `json:"languageCode"`
		} `json:"config"`
		Audio struct {
			Content string `json:"content"`
		} `json:"audio"`
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/v1/speech:recognize") {
			http.Error(w, "unexpected path "+r.URL.Path, http.StatusNotFound)
			return
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"results":[{"alternatives":[{"transcript":" ねこです ","confidence":0.9}]}]}`))
	}))
	defer srv.Close()

	ctx := context.Background()
	stt, err := speech.NewGoogleSTT(ctx, clientOpts(srv)...)
	if err != nil {
		t.Fatal(err)
	}
	text, err := stt.Transcribe(ctx, []byte("pcm"), speech.AudioConfig{Encoding: "LINEAR16", SampleRateHertz: 16000, LanguageCode: "ja-JP"})
	if err != nil {
		t.Fatalf("transcribe: %v", err)
	}
	if text != "ねこです" {
		t.Fatalf("transcript = %q", text)
	}
	if got.Config.Encoding != "LINEAR16" || got.Config.SampleRateHertz != 16000 || got.Config.LanguageCode != "ja-JP" {
		t.Fatalf("config = %+v", got.Config)
	}
	if got.Audio.Content != base64.StdEncoding.EncodeToString([]byte("pcm")) {
		t.Fatalf("audio content = %q", got.Audio.Content)
	}
}

func TestGoogleSTTNoResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	ctx := context.Background()
	stt, err := speech.NewGoogleSTT(ctx, clientOpts(srv)...)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := stt.Transcribe(ctx, []byte("pcm"), speech.AudioConfig{}); !errors.Is(err, speech.ErrNoTranscript) {
		t.Fatalf("err = %v, want ErrNoTranscript", err)
	}
}

func TestMerge(t *testing.T) {
	def := speech.Voice{LanguageCode: "ja-JP", Name: "ja-JP-Standard-A", AudioEncoding: "MP3"}
	v := speech.Voice{Name: "ja-JP-Neural2-B"}.Merge(def)
	if v.LanguageCode != "ja-JP" || v.Name != "ja-JP-Neural2-B" || v.AudioEncoding != "MP3" {
		t.Fatalf("voice = %+v", v)
	}
	c := speech.AudioConfig{Encoding: "WEBM_OPUS"}.Merge(speech.AudioConfig{Encoding: "LINEAR16", SampleRateHertz: 16000, LanguageCode: "ja-JP"})
	if c.Encoding != "WEBM_OPUS" || c.SampleRateHertz != 16000 || c.LanguageCode != "ja-JP" {
		t.Fatalf("config = %+v", c)
	}
}

func TestCompare(t *testing.T) {
	cases := []struct {
		expected, transcript string
		match                bool
		sim                  float64
	}{
		{"ねこです。", "ねこです", true, 1},
		{"わたしは がくせいです", "わたしはがくせいです", true, 1},
		{"Hello, World!", "hello world", true, 1},
		{"わたしはがくせいです", "わたしはせんせいです", true, 0.8},
		{"ねこがすきです", "いぬがすきです", false, 1 - 2.0/7},
		{"ねこ", "いぬ", false, 0},
		{"", "", false, 0},
	}
	for _, tc := range cases {
		got := speech.Compare(tc.expected, tc.transcript)
		if got.Match != tc.match || math.Abs(got.Similarity-tc.sim) > 1e-9 {
			t.Errorf("Compare(%q, %q) = %+v, want match=%v sim=%v", tc.expected, tc.transcript, got, tc.match, tc.sim)
		}
	}
}
