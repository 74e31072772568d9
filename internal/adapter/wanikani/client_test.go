package wanikani

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hikarukin/waniwords/internal/domain"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestKanjiSubjects_FollowsPagination(t *testing.T) {
	var requests []string

	mux := http.NewServeMux()
	srv := httptest.NewServer(mux)
	defer srv.Close()

	mux.HandleFunc("/subjects", func(w http.ResponseWriter, r *http.Request) {
		requests = append(requests, r.URL.String())

		if got := r.Header.Get("Authorization"); got != "Bearer test-token" {
			t.Errorf("Authorization = %q", got)
		}

		if r.URL.Query().Get("page_after_id") == "" {
			fmt.Fprintf(w, `{
				"data": [
					{"id": 440, "data": {"characters": "一"}},
					{"id": 441, "data": {"characters": "二"}}
				],
				"pages": {"next_url": %q}
			}`, srv.URL+"/subjects?page_after_id=441")
			return
		}
		fmt.Fprint(w, `{
			"data": [{"id": 442, "data": {"characters": "三"}}],
			"pages": {"next_url": null}
		}`)
	})

	c := NewClientWithURL(srv.URL, "test-token", discardLogger())
	subjects, err := c.KanjiSubjects(context.Background())
	if err != nil {
		t.Fatalf("KanjiSubjects: %v", err)
	}

	if len(requests) != 2 {
		t.Fatalf("expected 2 requests, got %d: %v", len(requests), requests)
	}
	want := map[int64]string{440: "一", 441: "二", 442: "三"}
	if len(subjects) != len(want) {
		t.Fatalf("got %d subjects, want %d", len(subjects), len(want))
	}
	for id, chars := range want {
		if subjects[id] != chars {
			t.Errorf("subject %d = %q, want %q", id, subjects[id], chars)
		}
	}
}

func TestKanjiAssignments_SendsStageFilter(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("srs_stages"); got != "5,6,7,8,9" {
			t.Errorf("srs_stages = %q, want %q", got, "5,6,7,8,9")
		}
		if got := r.URL.Query().Get("subject_types"); got != "kanji" {
			t.Errorf("subject_types = %q, want %q", got, "kanji")
		}
		fmt.Fprint(w, `{
			"data": [{"id": 1, "data": {"subject_id": 440, "srs_stage": 6}}],
			"pages": {"next_url": null}
		}`)
	}))
	defer srv.Close()

	c := NewClientWithURL(srv.URL, "test-token", discardLogger())
	stages, err := c.KanjiAssignments(context.Background(), 5)
	if err != nil {
		t.Fatalf("KanjiAssignments: %v", err)
	}
	if stages[440] != 6 {
		t.Errorf("stage for subject 440 = %d, want 6", stages[440])
	}
}

func TestVocabularyAssignments_IncludesKanaVocabulary(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("subject_types"); got != "vocabulary,kana_vocabulary" {
			t.Errorf("subject_types = %q", got)
		}
		if got := r.URL.Query().Get("srs_stages"); got != "1,2,3,4,5,6,7,8,9" {
			t.Errorf("srs_stages = %q", got)
		}
		fmt.Fprint(w, `{"data": [], "pages": {"next_url": null}}`)
	}))
	defer srv.Close()

	c := NewClientWithURL(srv.URL, "test-token", discardLogger())
	if _, err := c.VocabularyAssignments(context.Background(), 1); err != nil {
		t.Fatalf("VocabularyAssignments: %v", err)
	}
}

func TestFetch_InvalidToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		fmt.Fprint(w, `{"error": "Unauthorized. Nice try.", "code": 401}`)
	}))
	defer srv.Close()

	c := NewClientWithURL(srv.URL, "bad-token", discardLogger())
	_, err := c.KanjiSubjects(context.Background())
	if !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestFetch_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClientWithURL(srv.URL, "test-token", discardLogger())
	if _, err := c.KanjiSubjects(context.Background()); err == nil {
		t.Fatal("expected error for 500 response")
	}
}

func TestStageRange(t *testing.T) {
	tests := []struct {
		min  int
		want string
	}{
		{5, "5,6,7,8,9"},
		{1, "1,2,3,4,5,6,7,8,9"},
		{9, "9"},
	}
	for _, tt := range tests {
		if got := stageRange(tt.min); got != tt.want {
			t.Errorf("stageRange(%d) = %q, want %q", tt.min, got, tt.want)
		}
	}
}
