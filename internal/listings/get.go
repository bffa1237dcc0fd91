package listings

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	apperrors "rental-workers/internal/common/errors"
	"rental-workers/internal/models"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
)

type getResponse struct {
	ID     string          `json:"_id"`
	Found  bool            `json:"found"`
	Source json.RawMessage `json:"_source"`
	Error  json.RawMessage `json:"error"`
}

// Get loads one property document by id.
func Get(ctx context.Context, es *elasticsearch.Client, index, id string) (*models.Property, error) {
	if index == "" {
		return nil, apperrors.NewIndexNotFoundError(index)
	}

	res, err := esapi.GetRequest{Index: index, DocumentID: id}.Do(ctx, es)
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return nil, apperrors.NewSearchTimeoutError(index)
		}
		return nil, apperrors.NewSearchQueryFailedError(index, err)
	}
	defer res.Body.Close()

	var body getResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return nil, apperrors.NewSearchQueryFailedError(index, fmt.Errorf("decode response: %w", err))
	}

	switch {
	case res.StatusCode == http.StatusNotFound && len(body.Error) > 0:
		return nil, apperrors.NewIndexNotFoundError(index)
	case res.StatusCode == http.StatusNotFound || !body.Found:
		return nil, apperrors.NewNotFoundError("property", id)
	case res.IsError():
		return nil, apperrors.NewSearchQueryFailedError(index, fmt.Errorf("get failed: %s", res.Status()))
	}

	var p models.Property
	if err := json.Unmarshal(body.Source, &p); err != nil {
		return nil, apperrors.NewParseError(err)
	}
	if p.ID == "" {
		p.ID = body.ID
	}
	return &p, nil
}
