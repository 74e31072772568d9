// Package jpdb resolves words to canonical dictionary spellings through the
// jpdb.io vocabulary API. Lookups are batched so a full frequency list does
// not land in a single request.
package jpdb

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/hikarukin/waniwords/internal/domain"
)

const defaultBaseURL = "https://jpdb.io/api/v1"

// DefaultBatchSize bounds words per lookup request.
const DefaultBatchSize = 1000

// VocabularyID identifies a jpdb dictionary entry.
type VocabularyID struct {
	VID int64
	SID int64
}

// Client calls the jpdb API with a user's token.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	log        *slog.Logger
}

// NewClient creates a Client against the public jpdb API.
func NewClient(token string, logger *slog.Logger) *Client {
	return NewClientWithURL(defaultBaseURL, token, logger)
}

// NewClientWithURL creates a Client with a custom base URL (for testing).
func NewClientWithURL(baseURL, token string, logger *slog.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		token:      token,
		httpClient: &http.Client{Timeout: 60 * time.Second},
		log:        logger.With("adapter", "jpdb"),
	}
}

// Resolve translates words into canonical dictionary spellings. Lookups go
// out in batches of batchSize; ids are deduplicated across batches (first
// occurrence wins) before spellings are fetched, so each distinct lexical
// concept yields one spelling, in first-seen frequency order.
func (c *Client) Resolve(ctx context.Context, words []string, batchSize int) ([]string, error) {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}

	seen := make(map[VocabularyID]struct{})
	var ids []VocabularyID
	for start := 0; start < len(words); start += batchSize {
		end := min(start+batchSize, len(words))
		c.log.DebugContext(ctx, "lookup batch", slog.Int("from", start), slog.Int("to", end))

		batch, err := c.LookupIDs(ctx, words[start:end])
		if err != nil {
			return nil, err
		}
		for _, id := range batch {
			if _, dup := seen[id]; dup {
				continue
			}
			seen[id] = struct{}{}
			ids = append(ids, id)
		}
	}

	if len(ids) == 0 {
		return nil, nil
	}
	return c.Spellings(ctx, ids)
}

// LookupIDs resolves words to jpdb vocabulary ids. Words unknown to jpdb
// are dropped by the API, so the result may be shorter than the input.
func (c *Client) LookupIDs(ctx context.Context, words []string) ([]VocabularyID, error) {
	payload := struct {
		Text             []string `json:"text"`
		TokenFields      []string `json:"token_fields"`
		VocabularyFields []string `json:"vocabulary_fields"`
	}{
		Text:             words,
		TokenFields:      []string{},
		VocabularyFields: []string{"vid", "sid"},
	}

	var out struct {
		Vocabulary [][]int64 `json:"vocabulary"`
	}
	if err := c.post(ctx, "parse", payload, &out); err != nil {
		return nil, fmt.Errorf("jpdb: lookup ids: %w", err)
	}

	ids := make([]VocabularyID, 0, len(out.Vocabulary))
	for _, pair := range out.Vocabulary {
		if len(pair) != 2 {
			return nil, fmt.Errorf("jpdb: malformed vocabulary pair %v", pair)
		}
		ids = append(ids, VocabularyID{VID: pair[0], SID: pair[1]})
	}
	return ids, nil
}

// Spellings fetches the canonical spelling for each vocabulary id, in
// order.
func (c *Client) Spellings(ctx context.Context, ids []VocabularyID) ([]string, error) {
	list := make([][]int64, len(ids))
	for i, id := range ids {
		list[i] = []int64{id.VID, id.SID}
	}

	payload := struct {
		List   [][]int64 `json:"list"`
		Fields []string  `json:"fields"`
	}{
		List:   list,
		Fields: []string{"spelling"},
	}

	var out struct {
		VocabularyInfo [][]string `json:"vocabulary_info"`
	}
	if err := c.post(ctx, "lookup-vocabulary", payload, &out); err != nil {
		return nil, fmt.Errorf("jpdb: lookup spellings: %w", err)
	}

	spellings := make([]string, 0, len(out.VocabularyInfo))
	for _, row := range out.VocabularyInfo {
		if len(row) == 0 {
			return nil, fmt.Errorf("jpdb: empty vocabulary info row")
		}
		spellings = append(spellings, row[0])
	}
	return spellings, nil
}

func (c *Client) post(ctx context.Context, endpoint string, payload, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/"+endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return domain.ErrInvalidToken
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read body: %w", err)
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("decode json: %w", err)
	}
	return nil
}
