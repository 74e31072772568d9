// Package subject implements the WaniKani snapshot cache repository: the
// subject catalogs (id → characters) and the user's assignments
// (subject id → SRS stage), stored per subject kind.
package subject

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/hikarukin/waniwords/internal/adapter/postgres"
	"github.com/hikarukin/waniwords/internal/domain"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repo provides WaniKani snapshot persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new snapshot repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ReplaceSubjects installs a fresh subject catalog for the kind. The old
// rows for that kind are removed in the same transaction; snapshots are
// rebuilt wholesale, never patched.
func (r *Repo) ReplaceSubjects(ctx context.Context, kind domain.SubjectKind, subjects map[int64]string) error {
	batch := &pgx.Batch{}
	for id, characters := range subjects {
		batch.Queue(
			`INSERT INTO wanikani_subjects (id, kind, characters) VALUES ($1, $2, $3)`,
			id, string(kind), characters,
		)
	}

	err := r.replaceKind(ctx, "wanikani_subjects", kind, batch)
	if err != nil {
		return postgres.MapError(err, fmt.Sprintf("replace %s subjects", kind))
	}
	return nil
}

// ReplaceAssignments installs a fresh assignment snapshot for the kind.
func (r *Repo) ReplaceAssignments(ctx context.Context, kind domain.SubjectKind, stages map[int64]int) error {
	batch := &pgx.Batch{}
	for subjectID, stage := range stages {
		batch.Queue(
			`INSERT INTO wanikani_assignments (subject_id, kind, srs_stage) VALUES ($1, $2, $3)`,
			subjectID, string(kind), stage,
		)
	}

	err := r.replaceKind(ctx, "wanikani_assignments", kind, batch)
	if err != nil {
		return postgres.MapError(err, fmt.Sprintf("replace %s assignments", kind))
	}
	return nil
}

// Subjects returns the cached subject catalog for the kind.
func (r *Repo) Subjects(ctx context.Context, kind domain.SubjectKind) (map[int64]string, error) {
	query, args, err := psql.
		Select("id", "characters").
		From("wanikani_subjects").
		Where(sq.Eq{"kind": string(kind)}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build subjects query: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, fmt.Sprintf("list %s subjects", kind))
	}
	defer rows.Close()

	subjects := make(map[int64]string)
	for rows.Next() {
		var id int64
		var characters string
		if err := rows.Scan(&id, &characters); err != nil {
			return nil, fmt.Errorf("scan subject row: %w", err)
		}
		subjects[id] = characters
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, fmt.Sprintf("list %s subjects", kind))
	}

	return subjects, nil
}

// Assignments returns the cached assignment snapshot for the kind.
func (r *Repo) Assignments(ctx context.Context, kind domain.SubjectKind) (map[int64]int, error) {
	query, args, err := psql.
		Select("subject_id", "srs_stage").
		From("wanikani_assignments").
		Where(sq.Eq{"kind": string(kind)}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build assignments query: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, fmt.Sprintf("list %s assignments", kind))
	}
	defer rows.Close()

	stages := make(map[int64]int)
	for rows.Next() {
		var subjectID int64
		var stage int
		if err := rows.Scan(&subjectID, &stage); err != nil {
			return nil, fmt.Errorf("scan assignment row: %w", err)
		}
		stages[subjectID] = stage
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, fmt.Sprintf("list %s assignments", kind))
	}

	return stages, nil
}

// replaceKind deletes the kind's rows and applies the insert batch in one
// transaction.
func (r *Repo) replaceKind(ctx context.Context, table string, kind domain.SubjectKind, batch *pgx.Batch) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, fmt.Sprintf(`DELETE FROM %s WHERE kind = $1`, table), string(kind)); err != nil {
		return fmt.Errorf("clear %s: %w", table, err)
	}

	if batch.Len() > 0 {
		results := tx.SendBatch(ctx, batch)
		for i := 0; i < batch.Len(); i++ {
			if _, err := results.Exec(); err != nil {
				results.Close()
				return fmt.Errorf("insert row %d: %w", i, err)
			}
		}
		if err := results.Close(); err != nil {
			return fmt.Errorf("close batch: %w", err)
		}
	}

	return tx.Commit(ctx)
}
