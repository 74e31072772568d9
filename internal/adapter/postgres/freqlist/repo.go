// Package freqlist implements the persisted frequency-list repository.
// Each build of the list is stored whole under a build id; reads always
// serve the most recent build.
package freqlist

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/hikarukin/waniwords/internal/adapter/postgres"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repo provides frequency-list persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new frequency-list repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Replace installs words as the new current frequency list in a single
// transaction and returns the new build's id. Slice order is the frequency
// rank. Earlier builds stay on disk for provenance; reads only ever see
// the latest one.
func (r *Repo) Replace(ctx context.Context, words []string) (uuid.UUID, error) {
	buildID := uuid.New()

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return uuid.Nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx,
		`INSERT INTO freqlist_builds (id, word_count) VALUES ($1, $2)`,
		buildID, len(words),
	); err != nil {
		return uuid.Nil, postgres.MapError(err, "insert build")
	}

	batch := &pgx.Batch{}
	for position, word := range words {
		batch.Queue(
			`INSERT INTO freqlist_words (build_id, position, word) VALUES ($1, $2, $3)`,
			buildID, position, word,
		)
	}
	if batch.Len() > 0 {
		results := tx.SendBatch(ctx, batch)
		for i := 0; i < batch.Len(); i++ {
			if _, err := results.Exec(); err != nil {
				results.Close()
				return uuid.Nil, fmt.Errorf("insert word %d: %w", i, err)
			}
		}
		if err := results.Close(); err != nil {
			return uuid.Nil, fmt.Errorf("close batch: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return uuid.Nil, fmt.Errorf("commit: %w", err)
	}
	return buildID, nil
}

// Take returns the first n words of the most recent build, in frequency
// order. When the list holds fewer than n words the full list is returned;
// under-supply is not an error. With no builds at all it returns
// domain.ErrNotFound.
func (r *Repo) Take(ctx context.Context, n int) ([]string, error) {
	buildID, err := r.latestBuild(ctx)
	if err != nil {
		return nil, err
	}

	query, args, err := psql.
		Select("word").
		From("freqlist_words").
		Where(sq.Eq{"build_id": buildID}).
		OrderBy("position").
		Limit(uint64(n)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build take query: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, "take words")
	}
	defer rows.Close()

	words := make([]string, 0, n)
	for rows.Next() {
		var word string
		if err := rows.Scan(&word); err != nil {
			return nil, fmt.Errorf("scan word row: %w", err)
		}
		words = append(words, word)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "take words")
	}

	return words, nil
}

func (r *Repo) latestBuild(ctx context.Context) (uuid.UUID, error) {
	query, args, err := psql.
		Select("id").
		From("freqlist_builds").
		OrderBy("built_at DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return uuid.Nil, fmt.Errorf("build latest-build query: %w", err)
	}

	var id uuid.UUID
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		return uuid.Nil, postgres.MapError(err, "latest build")
	}
	return id, nil
}
