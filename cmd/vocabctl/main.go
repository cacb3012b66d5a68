// Command vocabctl loads a vocabulary JSON file into the SQL question bank
// (DB_DRIVER / DB_DSN) used when the gateway runs with VOCAB_SOURCE=sql.
//
//	vocabctl import -file data/vocabulary.json
//	vocabctl stats
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/mind-engage/nihongo-exam/internal/config"
	"github.com/mind-engage/nihongo-exam/internal/db"
	"github.com/mind-engage/nihongo-exam/internal/logger"
	"github.com/mind-engage/nihongo-exam/internal/vocab"
)

func main() {
	if len(os.Args) < 2 {
		usage()
	}
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	lg, err := logger.New(cfg.Env)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer lg.Sync() //nolint:errcheck

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	dbh, err := db.Open(ctx, db.Driver(cfg.DBDriver), cfg.DBDSN)
	if err != nil {
		lg.Fatal("db open failed", zap.String("driver", cfg.DBDriver), zap.Error(err))
	}
	defer dbh.Close()
	store := vocab.NewSQLStore(dbh)

	switch os.Args[1] {
	case "import":
		fs := flag.NewFlagSet("import", flag.ExitOnError)
		file := fs.String("file", cfg.VocabPath, "vocabulary JSON file")
		_ = fs.Parse(os.Args[2:])

		bank, err := vocab.JSONFile{Path: *file}.Load(ctx)
		if err != nil {
			lg.Fatal("read vocabulary", zap.String("file", *file), zap.Error(err))
		}
		n, err := store.Upsert(ctx, bank.Entries())
		if err != nil {
			lg.Fatal("import vocabulary", zap.Error(err))
		}
		lg.Info("vocabulary imported", zap.String("file", *file), zap.Int("entries", n))
	case "stats":
		bank, err := store.Load(ctx)
		if err != nil {
			lg.Fatal("load vocabulary", zap.Error(err))
		}
		fmt.Printf("entries=%d distinct_meanings=%d\n", bank.Len(), bank.DistinctMeanings())
	default:
		usage()
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: vocabctl import -file vocabulary.json | vocabctl stats")
	os.Exit(2)
}
