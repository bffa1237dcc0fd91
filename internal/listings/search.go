// internal/listings/search.go
package listings

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	apperrors "rental-workers/internal/common/errors"
	"rental-workers/internal/models"

	"github.com/elastic/go-elasticsearch/v8"
)

// Source names where a Result's properties came from.
type Source string

const (
	SourceIndex Source = "elasticsearch"
	SourceInput Source = "input"
)

// Result is the listings envelope handed to the matcher. Raw index hits are
// decoded once, here.
type Result struct {
	Properties []models.Property `json:"properties"`
	Total      int64             `json:"total"`
	Source     Source            `json:"source"`
	// Skipped counts hits whose _source could not be decoded.
	Skipped int `json:"skipped,omitempty"`
}

// FromInput wraps properties supplied by the caller.
func FromInput(props []models.Property) *Result {
	if props == nil {
		props = []models.Property{}
	}
	return &Result{Properties: props, Total: int64(len(props)), Source: SourceInput}
}

type searchResponse struct {
	Hits struct {
		Total struct {
			Value int64 `json:"value"`
		} `json:"total"`
		Hits []struct {
			ID     string          `json:"_id"`
			Source json.RawMessage `json:"_source"`
		} `json:"hits"`
	} `json:"hits"`
}

// Search runs q against index and decodes the hits into properties.
func Search(ctx context.Context, es *elasticsearch.Client, index string, q Query) (*Result, error) {
	req, err := BuildQuery(index, q)
	if err != nil {
		if errors.Is(err, ErrMissingIndex) {
			return nil, apperrors.NewIndexNotFoundError(index)
		}
		return nil, apperrors.NewSearchQueryFailedError(index, err)
	}

	res, err := req.Do(ctx, es)
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return nil, apperrors.NewSearchTimeoutError(index)
		}
		return nil, apperrors.NewSearchQueryFailedError(index, err)
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusNotFound {
		return nil, apperrors.NewIndexNotFoundError(index)
	}
	if res.IsError() {
		return nil, apperrors.NewSearchQueryFailedError(index, fmt.Errorf("search failed: %s", res.Status()))
	}

	var body searchResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return nil, apperrors.NewSearchQueryFailedError(index, fmt.Errorf("decode response: %w", err))
	}

	out := &Result{
		Properties: make([]models.Property, 0, len(body.Hits.Hits)),
		Total:      body.Hits.Total.Value,
		Source:     SourceIndex,
	}
	for _, hit := range body.Hits.Hits {
		var p models.Property
		if err := json.Unmarshal(hit.Source, &p); err != nil {
			out.Skipped++
			continue
		}
		if p.ID == "" {
			p.ID = hit.ID
		}
		out.Properties = append(out.Properties, p)
	}
	return out, nil
}
