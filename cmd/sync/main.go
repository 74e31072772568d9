// Command sync refreshes the local WaniKani snapshot: it downloads the
// kanji and vocabulary subject catalogs plus the user's assignments for
// both kinds and replaces the cached copies wholesale.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/hikarukin/waniwords/internal/adapter/postgres"
	"github.com/hikarukin/waniwords/internal/adapter/postgres/subject"
	"github.com/hikarukin/waniwords/internal/adapter/wanikani"
	"github.com/hikarukin/waniwords/internal/app"
	"github.com/hikarukin/waniwords/internal/config"
	"github.com/hikarukin/waniwords/internal/domain"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	client := wanikani.NewClientWithURL(cfg.WaniKani.BaseURL, cfg.WaniKani.APIToken, logger)
	repo := subject.New(pool)

	if err := syncAll(ctx, logger, cfg.WaniKani, client, repo); err != nil {
		logger.Error("sync failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("snapshot refreshed")
}

func syncAll(ctx context.Context, logger *slog.Logger, cfg config.WaniKaniConfig, client *wanikani.Client, repo *subject.Repo) error {
	steps := []struct {
		name string
		run  func(context.Context) error
	}{
		{"kanji subjects", func(ctx context.Context) error {
			subjects, err := client.KanjiSubjects(ctx)
			if err != nil {
				return err
			}
			return repo.ReplaceSubjects(ctx, domain.SubjectKanji, subjects)
		}},
		{"vocabulary subjects", func(ctx context.Context) error {
			subjects, err := client.VocabularySubjects(ctx)
			if err != nil {
				return err
			}
			return repo.ReplaceSubjects(ctx, domain.SubjectVocabulary, subjects)
		}},
		{"kanji assignments", func(ctx context.Context) error {
			stages, err := client.KanjiAssignments(ctx, cfg.KanjiMinStage)
			if err != nil {
				return err
			}
			return repo.ReplaceAssignments(ctx, domain.SubjectKanji, stages)
		}},
		{"vocabulary assignments", func(ctx context.Context) error {
			stages, err := client.VocabularyAssignments(ctx, cfg.VocabularyMinStage)
			if err != nil {
				return err
			}
			return repo.ReplaceAssignments(ctx, domain.SubjectVocabulary, stages)
		}},
	}

	for _, step := range steps {
		start := time.Now()
		if err := step.run(ctx); err != nil {
			return err
		}
		logger.Info("dataset refreshed",
			slog.String("dataset", step.name),
			slog.Duration("duration", time.Since(start)),
		)
	}
	return nil
}
