// Command freqlist builds the frequency list: it reconciles the NLT and
// BCCWJ corpus dumps, canonicalizes the surviving words through jpdb and
// installs the result as the new current list. It is intended to be run
// offline, rarely.
//
// Flags:
//
//	-config   path to freqbuild YAML config file
//	-dry-run  parse and reconcile without resolving or writing
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/hikarukin/waniwords/internal/adapter/jpdb"
	"github.com/hikarukin/waniwords/internal/adapter/postgres"
	"github.com/hikarukin/waniwords/internal/adapter/postgres/freqlist"
	"github.com/hikarukin/waniwords/internal/app"
	"github.com/hikarukin/waniwords/internal/config"
	"github.com/hikarukin/waniwords/internal/freqbuild"
)

// Compile-time interface assertions.
var (
	_ freqbuild.Resolver = (*jpdb.Client)(nil)
	_ freqbuild.Store    = (*freqlist.Repo)(nil)
)

func main() {
	configFlag := flag.String("config", "", "path to freqbuild YAML config file")
	dryRunFlag := flag.Bool("dry-run", false, "parse and reconcile without resolving or writing")
	flag.Parse()

	appCfg, err := config.Load()
	if err != nil {
		log.Fatalf("load app config: %v", err)
	}

	logger := app.NewLogger(appCfg.Log)

	buildCfg, err := freqbuild.LoadConfig(*configFlag)
	if err != nil {
		logger.Error("load freqbuild config", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if *dryRunFlag {
		buildCfg.DryRun = true
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, appCfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	resolver := jpdb.NewClientWithURL(appCfg.JPDB.BaseURL, appCfg.JPDB.APIToken, logger)
	store := freqlist.New(pool)

	pipeline := freqbuild.NewPipeline(logger, resolver, store, *buildCfg)
	result, err := pipeline.Run(ctx)
	if err != nil {
		logger.Error("build failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if result.DryRun {
		logger.Info("dry run completed", slog.Int("words", result.Reconciled))
		return
	}
	logger.Info("build completed",
		slog.String("build_id", result.BuildID.String()),
		slog.Int("words", result.Resolved),
	)
}
