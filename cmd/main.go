package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/jmoiron/sqlx"
	"github.com/kovalyov-valentin/job-feed-parser/internal/config"
	"github.com/kovalyov-valentin/job-feed-parser/internal/fetcher"
	"github.com/kovalyov-valentin/job-feed-parser/internal/notifier"
	"github.com/kovalyov-valentin/job-feed-parser/internal/seen"
	"github.com/kovalyov-valentin/job-feed-parser/internal/source"
	"github.com/kovalyov-valentin/job-feed-parser/internal/storage"
	"github.com/kovalyov-valentin/job-feed-parser/internal/summary"
	_ "github.com/lib/pq"
)

func main() {
	cfg := config.Get()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	var (
		csvStorage = storage.NewCSVStorage(cfg.OutputDir, cfg.FeedName, time.Now())
		records    = storage.Chain{csvStorage}
		seenStore  seen.Store
	)

	// Postgres нужен только если включено одно из хранилищ
	if cfg.StorePostgres || cfg.PersistSeen {
		db, err := sqlx.Connect("postgres", cfg.DatabaseDSN)
		if err != nil {
			log.Printf("failed to connect to database: %v", err)
			return
		}
		defer db.Close()

		if cfg.StorePostgres {
			records = append(records, storage.NewRecordPostgresStorage(db))
		}
		if cfg.PersistSeen {
			seenStore = storage.NewSeenPostgresStorage(db)
		}
	}

	seenSet := seen.New(seenStore)
	if err := seenSet.Load(ctx); err != nil {
		log.Printf("failed to load seen links: %v", err)
		return
	}

	var jobNotifier fetcher.Notifier
	if cfg.TelegramBotToken != "" {
		botAPI, err := tgbotapi.NewBotAPI(cfg.TelegramBotToken)
		if err != nil {
			log.Printf("failed to create bot: %v", err)
			return
		}

		jobNotifier = notifier.New(
			summary.NewOpenAISummarizer(cfg.OpenAIKey, cfg.OpenAIPrompt, cfg.OpenAIBaseURL),
			botAPI,
			cfg.TelegramChannelID,
		)
	}

	jobFetcher := fetcher.NewFetcher(
		source.NewRSSSource(cfg.FeedURL, cfg.FeedName, cfg.FetchTimeout),
		records,
		seenSet,
		jobNotifier,
		cfg.FetchInterval,
		cfg.MaxPolls,
		cfg.FilterKeywords,
	)

	log.Printf("polling %s, writing to %s", cfg.FeedURL, csvStorage.Path())

	if err := jobFetcher.Start(ctx); err != nil {
		if !errors.Is(err, context.Canceled) {
			log.Printf("[ERROR] fetcher stopped: %v", err)
			return
		}

		log.Println("fetcher stopped")
		return
	}

	log.Println("finished")
}
