package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

// Vocabulary sources.
const (
	VocabJSON   = "json"
	VocabSQL    = "sql"
	VocabSheets = "sheets"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	Env      string
	Mode     Mode
	HTTPAddr string

	RequestTimeout time.Duration

	DBDriver string
	DBDSN    string

	VocabSource     string // json|sql|sheets
	VocabPath       string // for json
	VocabSheetID    string
	VocabSheetRange string

	QuestionsPerSection int

	CORSOriginsOnline  []string
	CORSOriginsOffline []string

	// Google Cloud (TTS / STT / Sheets)
	GoogleAPIKey          string
	GoogleCredentialsFile string

	TTSLanguageCode  string
	TTSVoiceName     string
	TTSAudioEncoding string

	STTEncoding        string
	STTSampleRateHertz int
	STTLanguageCode    string

	GeminiAPIKey string
	GeminiModel  string
}

// Load reads an optional .env file and then the environment.
func Load() (Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("app_env", "development")
	v.SetDefault("mode", string(ModeOffline))
	v.SetDefault("http_addr", ":8080")
	v.SetDefault("request_timeout", "30s")
	v.SetDefault("db_driver", "sqlite")
	v.SetDefault("db_dsn", "")
	v.SetDefault("vocab_source", VocabJSON)
	v.SetDefault("vocab_path", "./data/vocabulary.json")
	v.SetDefault("vocab_sheet_id", "")
	v.SetDefault("vocab_sheet_range", "Vocabulary!A:C")
	v.SetDefault("questions_per_section", 25)
	v.SetDefault("cors_origins_online", "https://nihongo.mindengage.ai")
	v.SetDefault("cors_origins_offline", "http://localhost:3000,http://localhost:5173")
	v.SetDefault("google_api_key", "")
	v.SetDefault("google_credentials_file", "")
	v.SetDefault("tts_language_code", "ja-JP")
	v.SetDefault("tts_voice_name", "ja-JP-Standard-A")
	v.SetDefault("tts_audio_encoding", "MP3")
	v.SetDefault("stt_encoding", "LINEAR16")
	v.SetDefault("stt_sample_rate_hertz", 16000)
	v.SetDefault("stt_language_code", "ja-JP")
	v.SetDefault("gemini_api_key", "")
	v.SetDefault("gemini_model", "gemini-2.5-flash")
	v.AutomaticEnv()

	cfg := Config{
		Env:      v.GetString("app_env"),
		Mode:     Mode(strings.ToLower(v.GetString("mode"))),
		HTTPAddr: v.GetString("http_addr"),

		RequestTimeout: v.GetDuration("request_timeout"),

		DBDriver: v.GetString("db_driver"),
		DBDSN:    v.GetString("db_dsn"),

		VocabSource:     strings.ToLower(v.GetString("vocab_source")),
		VocabPath:       v.GetString("vocab_path"),
		VocabSheetID:    v.GetString("vocab_sheet_id"),
		VocabSheetRange: v.GetString("vocab_sheet_range"),

		QuestionsPerSection: v.GetInt("questions_per_section"),

		CORSOriginsOnline:  splitCSV(v.GetString("cors_origins_online")),
		CORSOriginsOffline: splitCSV(v.GetString("cors_origins_offline")),

		GoogleAPIKey:          v.GetString("google_api_key"),
		GoogleCredentialsFile: v.GetString("google_credentials_file"),

		TTSLanguageCode:  v.GetString("tts_language_code"),
		TTSVoiceName:     v.GetString("tts_voice_name"),
		TTSAudioEncoding: v.GetString("tts_audio_encoding"),

		STTEncoding:        v.GetString("stt_encoding"),
		STTSampleRateHertz: v.GetInt("stt_sample_rate_hertz"),
		STTLanguageCode:    v.GetString("stt_language_code"),

		GeminiAPIKey: v.GetString("gemini_api_key"),
		GeminiModel:  v.GetString("gemini_model"),
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.Mode {
	case ModeOffline, ModeOnline:
	default:
		return fmt.Errorf("%w: unknown mode %q", ErrInvalidConfig, c.Mode)
	}
	switch c.VocabSource {
	case VocabJSON:
		if c.VocabPath == "" {
			return fmt.Errorf("%w: VOCAB_PATH required for json source", ErrInvalidConfig)
		}
	case VocabSQL:
		if c.DBDriver != "sqlite" && c.DBDriver != "postgres" {
			return fmt.Errorf("%w: unsupported DB_DRIVER %q", ErrInvalidConfig, c.DBDriver)
		}
	case VocabSheets:
		if c.VocabSheetID == "" {
			return fmt.Errorf("%w: VOCAB_SHEET_ID required for sheets source", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unknown VOCAB_SOURCE %q", ErrInvalidConfig, c.VocabSource)
	}
	if c.QuestionsPerSection <= 0 {
		return fmt.Errorf("%w: QUESTIONS_PER_SECTION must be positive", ErrInvalidConfig)
	}
	return nil
}

// CORSOrigins picks the origin list for the current mode.
func (c Config) CORSOrigins() []string {
	if c.Mode == ModeOnline {
		return c.CORSOriginsOnline
	}
	return c.CORSOriginsOffline
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}
