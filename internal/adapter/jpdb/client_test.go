package jpdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"slices"
	"testing"

	"github.com/hikarukin/waniwords/internal/domain"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestResolve_BatchesAndDeduplicates(t *testing.T) {
	var lookupBatches [][]string
	var spellingRequests int

	mux := http.NewServeMux()
	srv := httptest.NewServer(mux)
	defer srv.Close()

	// 犬 and いぬ resolve to the same entry; the duplicate id arrives in a
	// later batch and must be dropped there.
	idsByWord := map[string][]int64{
		"犬":  {100, 1},
		"猫":  {200, 1},
		"いぬ": {100, 1},
	}
	spellingByVID := map[int64]string{100: "犬", 200: "猫"}

	mux.HandleFunc("/parse", func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Text []string `json:"text"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode parse request: %v", err)
		}
		lookupBatches = append(lookupBatches, req.Text)

		var vocab [][]int64
		for _, word := range req.Text {
			if id, ok := idsByWord[word]; ok {
				vocab = append(vocab, id)
			}
		}
		json.NewEncoder(w).Encode(map[string]any{"vocabulary": vocab})
	})

	mux.HandleFunc("/lookup-vocabulary", func(w http.ResponseWriter, r *http.Request) {
		spellingRequests++
		var req struct {
			List [][]int64 `json:"list"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode spelling request: %v", err)
		}

		var info [][]string
		for _, pair := range req.List {
			info = append(info, []string{spellingByVID[pair[0]]})
		}
		json.NewEncoder(w).Encode(map[string]any{"vocabulary_info": info})
	})

	c := NewClientWithURL(srv.URL, "test-token", discardLogger())
	got, err := c.Resolve(context.Background(), []string{"犬", "猫", "いぬ"}, 2)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}

	if len(lookupBatches) != 2 {
		t.Fatalf("expected 2 lookup batches, got %v", lookupBatches)
	}
	if !slices.Equal(lookupBatches[0], []string{"犬", "猫"}) || !slices.Equal(lookupBatches[1], []string{"いぬ"}) {
		t.Errorf("unexpected batching: %v", lookupBatches)
	}
	if spellingRequests != 1 {
		t.Errorf("expected a single spelling request, got %d", spellingRequests)
	}
	if !slices.Equal(got, []string{"犬", "猫"}) {
		t.Errorf("Resolve() = %v, want [犬 猫]", got)
	}
}

func TestResolve_EmptyInput(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected for empty input")
	}))
	defer srv.Close()

	c := NewClientWithURL(srv.URL, "test-token", discardLogger())
	got, err := c.Resolve(context.Background(), nil, 10)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected no spellings, got %v", got)
	}
}

func TestLookupIDs_DropsUnknownWords(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"vocabulary": [[100, 1]]}`)
	}))
	defer srv.Close()

	c := NewClientWithURL(srv.URL, "test-token", discardLogger())
	ids, err := c.LookupIDs(context.Background(), []string{"犬", "ⅩⅢ"})
	if err != nil {
		t.Fatalf("LookupIDs: %v", err)
	}
	if len(ids) != 1 || ids[0] != (VocabularyID{VID: 100, SID: 1}) {
		t.Errorf("LookupIDs() = %v", ids)
	}
}

func TestPost_InvalidToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	c := NewClientWithURL(srv.URL, "bad-token", discardLogger())
	_, err := c.LookupIDs(context.Background(), []string{"犬"})
	if !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestSpellings_KeepsIDOrder(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			List   [][]int64 `json:"list"`
			Fields []string  `json:"fields"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if !slices.Equal(req.Fields, []string{"spelling"}) {
			t.Errorf("fields = %v", req.Fields)
		}

		spellings := map[int64]string{200: "猫", 100: "犬"}
		var info [][]string
		for _, pair := range req.List {
			info = append(info, []string{spellings[pair[0]]})
		}
		json.NewEncoder(w).Encode(map[string]any{"vocabulary_info": info})
	}))
	defer srv.Close()

	c := NewClientWithURL(srv.URL, "test-token", discardLogger())
	got, err := c.Spellings(context.Background(), []VocabularyID{{200, 1}, {100, 1}})
	if err != nil {
		t.Fatalf("Spellings: %v", err)
	}
	if !slices.Equal(got, []string{"猫", "犬"}) {
		t.Errorf("Spellings() = %v, want [猫 犬]", got)
	}
}
