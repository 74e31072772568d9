// Command waniwords prints a curated study list: the most frequent words
// from the current frequency list, filtered against the user's WaniKani
// progress.
//
// Flags:
//
//	-count   how many frequency words to consider (default 100)
//	-vocab   unknown | known | off   keep words you have not learned,
//	         only words you have, or skip the filter (default unknown)
//	-kanji   readable | unreadable | off   keep words whose kanji you all
//	         know, only words with unlearned kanji, or skip (default off)
//	-kana    drop | only | off   drop kana-only words, keep only them,
//	         or skip (default off)
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/hikarukin/waniwords/internal/adapter/postgres"
	"github.com/hikarukin/waniwords/internal/adapter/postgres/freqlist"
	"github.com/hikarukin/waniwords/internal/adapter/postgres/subject"
	"github.com/hikarukin/waniwords/internal/app"
	"github.com/hikarukin/waniwords/internal/config"
	"github.com/hikarukin/waniwords/internal/service/studylist"
)

// Compile-time interface assertions.
var (
	_ studylist.SubjectStore   = (*subject.Repo)(nil)
	_ studylist.FrequencyStore = (*freqlist.Repo)(nil)
)

func main() {
	countFlag := flag.Int("count", 100, "how many frequency words to consider")
	vocabFlag := flag.String("vocab", "unknown", "vocabulary filter: unknown, known or off")
	kanjiFlag := flag.String("kanji", "off", "character filter: readable, unreadable or off")
	kanaFlag := flag.String("kana", "off", "kana filter: drop, only or off")
	flag.Parse()

	opts, err := parseOptions(*countFlag, *vocabFlag, *kanjiFlag, *kanaFlag)
	if err != nil {
		log.Fatalf("invalid flags: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	svc := studylist.New(logger, subject.New(pool), freqlist.New(pool))

	words, err := svc.Curate(ctx, opts)
	if err != nil {
		logger.Error("curate list", slog.String("error", err.Error()))
		os.Exit(1)
	}

	printList(os.Stdout, words)
}

// parseOptions maps the flag values onto service options. Each filter
// flag names the half of the split it keeps.
func parseOptions(count int, vocab, kanji, kana string) (studylist.Options, error) {
	if count <= 0 {
		return studylist.Options{}, fmt.Errorf("count must be positive, got %d", count)
	}
	opts := studylist.Options{Count: count}

	switch vocab {
	case "unknown":
		opts.VocabularyFilter = true
	case "known":
		opts.VocabularyFilter = true
		opts.VocabularyInvert = true
	case "off":
	default:
		return studylist.Options{}, fmt.Errorf("vocab: want unknown, known or off, got %q", vocab)
	}

	switch kanji {
	case "unreadable":
		opts.CharacterFilter = true
	case "readable":
		opts.CharacterFilter = true
		opts.CharacterInvert = true
	case "off":
	default:
		return studylist.Options{}, fmt.Errorf("kanji: want readable, unreadable or off, got %q", kanji)
	}

	switch kana {
	case "drop":
		opts.KanaFilter = true
	case "only":
		opts.KanaFilter = true
		opts.KanaInvert = true
	case "off":
	default:
		return studylist.Options{}, fmt.Errorf("kana: want drop, only or off, got %q", kana)
	}

	return opts, nil
}

// printList writes the words on one line, tab-separated. Short words get
// a second tab so columns roughly line up in a terminal.
func printList(w io.Writer, words []string) {
	var b strings.Builder
	for _, word := range words {
		b.WriteString(word)
		if utf8.RuneCountInString(word) <= 3 {
			b.WriteString("\t\t")
		} else {
			b.WriteString("\t")
		}
	}
	b.WriteString("\n")
	io.WriteString(w, b.String())
}
