// Package wanikani implements a read-only client for the WaniKani v2 API.
// Collection endpoints are paginated; the client follows pages.next_url
// until exhausted and returns fully materialized maps.
package wanikani

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/hikarukin/waniwords/internal/domain"
)

const defaultBaseURL = "https://api.wanikani.com/v2"

// maxSRSStage is the highest WaniKani stage ("burned").
const maxSRSStage = 9

const (
	kanjiTypes      = "kanji"
	vocabularyTypes = "vocabulary,kana_vocabulary"
)

// Client calls the WaniKani v2 API with a user's read-only token.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	log        *slog.Logger
}

// NewClient creates a Client against the public WaniKani API.
func NewClient(token string, logger *slog.Logger) *Client {
	return NewClientWithURL(defaultBaseURL, token, logger)
}

// NewClientWithURL creates a Client with a custom base URL (for testing).
func NewClientWithURL(baseURL, token string, logger *slog.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		token:      token,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		log:        logger.With("adapter", "wanikani"),
	}
}

// KanjiSubjects returns every kanji subject as an id → characters map.
func (c *Client) KanjiSubjects(ctx context.Context) (map[int64]string, error) {
	return c.subjects(ctx, kanjiTypes)
}

// VocabularySubjects returns every vocabulary and kana-vocabulary subject
// as an id → characters map.
func (c *Client) VocabularySubjects(ctx context.Context) (map[int64]string, error) {
	return c.subjects(ctx, vocabularyTypes)
}

// KanjiAssignments returns the user's kanji assignments at minStage or
// above as a subject id → SRS stage map.
func (c *Client) KanjiAssignments(ctx context.Context, minStage int) (map[int64]int, error) {
	return c.assignments(ctx, kanjiTypes, minStage)
}

// VocabularyAssignments returns the user's vocabulary assignments at
// minStage or above as a subject id → SRS stage map.
func (c *Client) VocabularyAssignments(ctx context.Context, minStage int) (map[int64]int, error) {
	return c.assignments(ctx, vocabularyTypes, minStage)
}

func (c *Client) subjects(ctx context.Context, types string) (map[int64]string, error) {
	params := url.Values{"types": {types}}
	resources, err := c.collect(ctx, "subjects", params)
	if err != nil {
		return nil, err
	}

	subjects := make(map[int64]string, len(resources))
	for _, r := range resources {
		subjects[r.ID] = r.Data.Characters
	}
	return subjects, nil
}

func (c *Client) assignments(ctx context.Context, types string, minStage int) (map[int64]int, error) {
	params := url.Values{
		"subject_types": {types},
		"srs_stages":    {stageRange(minStage)},
	}
	resources, err := c.collect(ctx, "assignments", params)
	if err != nil {
		return nil, err
	}

	stages := make(map[int64]int, len(resources))
	for _, r := range resources {
		stages[r.Data.SubjectID] = r.Data.SRSStage
	}
	return stages, nil
}

// collect walks a paginated collection endpoint, aggregating every page's
// data array. Query parameters only apply to the first request; next_url
// carries them forward.
func (c *Client) collect(ctx context.Context, endpoint string, params url.Values) ([]resource, error) {
	next := c.baseURL + "/" + endpoint
	if enc := params.Encode(); enc != "" {
		next += "?" + enc
	}

	var resources []resource
	pages := 0
	for next != "" {
		page, err := c.fetchPage(ctx, next)
		if err != nil {
			return nil, fmt.Errorf("wanikani: %s: %w", endpoint, err)
		}
		resources = append(resources, page.Data...)
		pages++

		next = ""
		if page.Pages.NextURL != nil {
			next = *page.Pages.NextURL
		}
	}

	c.log.DebugContext(ctx, "collection fetched",
		slog.String("endpoint", endpoint),
		slog.Int("pages", pages),
		slog.Int("resources", len(resources)),
	)

	return resources, nil
}

func (c *Client) fetchPage(ctx context.Context, pageURL string) (*collectionPage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return nil, domain.ErrInvalidToken
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	var page collectionPage
	if err := json.Unmarshal(body, &page); err != nil {
		return nil, fmt.Errorf("decode json: %w", err)
	}
	return &page, nil
}

// stageRange renders "minStage,minStage+1,...,9" for the srs_stages filter.
func stageRange(minStage int) string {
	if minStage < 0 {
		minStage = 0
	}
	stages := make([]string, 0, maxSRSStage-minStage+1)
	for s := minStage; s <= maxSRSStage; s++ {
		stages = append(stages, strconv.Itoa(s))
	}
	return strings.Join(stages, ",")
}
