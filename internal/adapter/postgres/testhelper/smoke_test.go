package testhelper

import (
	"context"
	"testing"

	"github.com/google/uuid"
)

func TestSetupTestDB_Smoke(t *testing.T) {
	pool := SetupTestDB(t)
	ctx := context.Background()

	buildID := uuid.New()
	if _, err := pool.Exec(ctx,
		`INSERT INTO freqlist_builds (id, word_count) VALUES ($1, $2)`,
		buildID, 0,
	); err != nil {
		t.Fatalf("expected migrated schema, insert failed: %v", err)
	}

	var count int
	err := pool.QueryRow(ctx,
		`SELECT word_count FROM freqlist_builds WHERE id = $1`,
		buildID,
	).Scan(&count)
	if err != nil {
		t.Fatalf("expected build row, got error: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected word_count 0, got %d", count)
	}
}
