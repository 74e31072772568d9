// Package freqbuild orchestrates the frequency-list build: parse the two
// corpus dumps, reconcile them into a ranked word list, canonicalize the
// survivors through jpdb and install the result as the new current list.
package freqbuild

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/hikarukin/waniwords/internal/corpus"
	"github.com/hikarukin/waniwords/internal/corpus/bccwj"
	"github.com/hikarukin/waniwords/internal/corpus/nlt"
)

// Default blacklists applied during corpus reconciliation. Primary types
// match exactly; secondary types match by substring.
var (
	defaultPrimaryTypeBlacklist   = []string{"助詞", "助動詞", "動詞-接尾", "記号"}
	defaultSecondaryTypeBlacklist = []string{"接尾辞"}
	defaultSymbolBlacklist        = []string{"*", "％", "ｍ", "ｇ", "8", "【"}
)

// Resolver canonicalizes surface forms into dictionary spellings and
// drops words the dictionary does not know.
type Resolver interface {
	Resolve(ctx context.Context, words []string, batchSize int) ([]string, error)
}

// Store persists a finished build as the new current frequency list.
type Store interface {
	Replace(ctx context.Context, words []string) (uuid.UUID, error)
}

// Result summarizes a completed build.
type Result struct {
	PrimaryEntries   int
	SecondaryEntries int
	Reconciled       int
	Resolved         int
	BuildID          uuid.UUID
	DryRun           bool
}

// Pipeline runs the frequency-list build end to end.
type Pipeline struct {
	log      *slog.Logger
	resolver Resolver
	store    Store
	cfg      Config
}

// NewPipeline creates a new Pipeline.
func NewPipeline(log *slog.Logger, resolver Resolver, store Store, cfg Config) *Pipeline {
	return &Pipeline{
		log:      log,
		resolver: resolver,
		store:    store,
		cfg:      cfg,
	}
}

// Run executes the build. In dry-run mode it stops after reconciliation
// and reports what would have been resolved and stored.
func (p *Pipeline) Run(ctx context.Context) (*Result, error) {
	if p.cfg.NLTPath == "" {
		return nil, fmt.Errorf("nlt path not configured")
	}
	if p.cfg.BCCWJPath == "" {
		return nil, fmt.Errorf("bccwj path not configured")
	}

	start := time.Now()
	primary, err := nlt.ParseFile(p.cfg.NLTPath)
	if err != nil {
		return nil, fmt.Errorf("parse nlt corpus: %w", err)
	}
	p.log.Info("nlt corpus parsed",
		slog.Int("entries", len(primary)),
		slog.Duration("duration", time.Since(start)),
	)

	start = time.Now()
	secondary, err := bccwj.ParseFile(p.cfg.BCCWJPath)
	if err != nil {
		return nil, fmt.Errorf("parse bccwj corpus: %w", err)
	}
	p.log.Info("bccwj corpus parsed",
		slog.Int("entries", len(secondary)),
		slog.Duration("duration", time.Since(start)),
	)

	start = time.Now()
	words := corpus.Reconcile(primary, secondary, corpus.Options{
		PrimaryTypeBlacklist:   defaultPrimaryTypeBlacklist,
		SecondaryTypeBlacklist: defaultSecondaryTypeBlacklist,
		SymbolBlacklist:        defaultSymbolBlacklist,
		PrimaryCap:             p.cfg.PrimaryCap,
		SecondaryCap:           p.cfg.SecondaryCap,
	})
	p.log.Info("corpora reconciled",
		slog.Int("words", len(words)),
		slog.Duration("duration", time.Since(start)),
	)

	result := &Result{
		PrimaryEntries:   len(primary),
		SecondaryEntries: len(secondary),
		Reconciled:       len(words),
	}

	if p.cfg.DryRun {
		p.log.Info("dry run, skipping resolve and store", slog.Int("words", len(words)))
		result.DryRun = true
		return result, nil
	}

	start = time.Now()
	resolved, err := p.resolver.Resolve(ctx, words, p.cfg.BatchSize)
	if err != nil {
		return nil, fmt.Errorf("resolve words: %w", err)
	}
	result.Resolved = len(resolved)
	p.log.Info("words resolved",
		slog.Int("in", len(words)),
		slog.Int("out", len(resolved)),
		slog.Duration("duration", time.Since(start)),
	)

	start = time.Now()
	buildID, err := p.store.Replace(ctx, resolved)
	if err != nil {
		return nil, fmt.Errorf("store frequency list: %w", err)
	}
	result.BuildID = buildID
	p.log.Info("frequency list stored",
		slog.String("build_id", buildID.String()),
		slog.Int("words", len(resolved)),
		slog.Duration("duration", time.Since(start)),
	)

	return result, nil
}
