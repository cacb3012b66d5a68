package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
	"google.golang.org/api/option"

	api "github.com/mind-engage/nihongo-exam/internal/api/http"
	"github.com/mind-engage/nihongo-exam/internal/config"
	"github.com/mind-engage/nihongo-exam/internal/db"
	"github.com/mind-engage/nihongo-exam/internal/export"
	"github.com/mind-engage/nihongo-exam/internal/logger"
	"github.com/mind-engage/nihongo-exam/internal/quiz"
	"github.com/mind-engage/nihongo-exam/internal/speech"
	"github.com/mind-engage/nihongo-exam/internal/tutor"
	"github.com/mind-engage/nihongo-exam/internal/vocab"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	lg, err := logger.New(cfg.Env)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer lg.Sync() //nolint:errcheck

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- Vocabulary (loaded once, read-only afterwards) ---
	bank, err := loadVocabulary(ctx, cfg)
	if err != nil {
		lg.Fatal("load vocabulary", zap.String("source", cfg.VocabSource), zap.Error(err))
	}
	if n := bank.DistinctMeanings(); n < quiz.OptionCount {
		lg.Warn("vocabulary too small for full option lists", zap.Int("distinct_meanings", n))
	}
	lg.Info("vocabulary loaded", zap.String("source", cfg.VocabSource), zap.Int("entries", bank.Len()))

	// --- Speech providers ---
	tts, err := speech.NewGoogleTTS(ctx, googleOpts(cfg)...)
	if err != nil {
		lg.Fatal("tts client", zap.Error(err))
	}
	stt, err := speech.NewGoogleSTT(ctx, googleOpts(cfg)...)
	if err != nil {
		lg.Fatal("stt client", zap.Error(err))
	}

	deps := api.Deps{
		Questions:           quiz.NewGenerator(bank, nil),
		QuestionsPerSection: cfg.QuestionsPerSection,
		Synthesizer:         tts,
		Voice: speech.Voice{
			LanguageCode:  cfg.TTSLanguageCode,
			Name:          cfg.TTSVoiceName,
			AudioEncoding: cfg.TTSAudioEncoding,
		},
		Transcriber: stt,
		AudioDefault: speech.AudioConfig{
			Encoding:        cfg.STTEncoding,
			SampleRateHertz: cfg.STTSampleRateHertz,
			LanguageCode:    cfg.STTLanguageCode,
		},
		Exporter: export.XLSX{},
		Log:      lg,
	}
	if cfg.GeminiAPIKey != "" {
		deps.Explainer = tutor.NewGemini(cfg.GeminiAPIKey, cfg.GeminiModel)
	}

	// --- Router ---
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, api.AccessLog(lg), middleware.Recoverer)
	r.Use(middleware.Timeout(cfg.RequestTimeout))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins(),
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type"},
		ExposedHeaders:   []string{"Content-Length", "Content-Disposition", "X-Score-Total", "X-Total-Questions"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	api.MountHealth(r)
	r.Route("/api", func(ar chi.Router) {
		api.MountAPI(ar, deps)
	})

	srv := &http.Server{Addr: cfg.HTTPAddr, Handler: r, ReadHeaderTimeout: 10 * time.Second}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	lg.Info("listening", zap.String("addr", cfg.HTTPAddr), zap.String("mode", string(cfg.Mode)))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		lg.Fatal("http server", zap.Error(err))
	}
	lg.Info("shutdown complete")
}

func loadVocabulary(ctx context.Context, cfg config.Config) (vocab.Collection, error) {
	loadCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	switch cfg.VocabSource {
	case config.VocabSQL:
		dbh, err := db.Open(loadCtx, db.Driver(cfg.DBDriver), cfg.DBDSN)
		if err != nil {
			return vocab.Collection{}, err
		}
		defer dbh.Close()
		return vocab.NewSQLStore(dbh).Load(loadCtx)
	case config.VocabSheets:
		src, err := vocab.NewSheetSource(loadCtx, cfg.VocabSheetID, cfg.VocabSheetRange, googleOpts(cfg)...)
		if err != nil {
			return vocab.Collection{}, err
		}
		return src.Load(loadCtx)
	default:
		return vocab.JSONFile{Path: cfg.VocabPath}.Load(loadCtx)
	}
}

// googleOpts prefers a service-account file and falls back to an API key.
func googleOpts(cfg config.Config) []option.ClientOption {
	switch {
	case cfg.GoogleCredentialsFile != "":
		return []option.ClientOption{option.WithCredentialsFile(cfg.GoogleCredentialsFile)}
	case cfg.GoogleAPIKey != "":
		return []option.ClientOption{option.WithAPIKey(cfg.GoogleAPIKey)}
	}
	return nil
}
