// internal/listings/query.go
package listings

import (
	"encoding/json"
	"errors"
	"strings"

	"rental-workers/internal/models"

	"github.com/elastic/go-elasticsearch/v8/esapi"
)

const (
	DefaultSize = 20
	MaxSize     = 500
)

var ErrMissingIndex = errors.New("index name is required")

// Query is a coarse candidate prefilter. The index is only a first cut;
// bathrooms is left to the matcher because indexed values are not always numeric.
type Query struct {
	Criteria models.SearchCriteria
	Keywords string
	From     int
	Size     int
}

func (q Query) pageSize() int {
	switch {
	case q.Size < 1:
		return DefaultSize
	case q.Size > MaxSize:
		return MaxSize
	default:
		return q.Size
	}
}

// BuildQuery builds the search request for index.
func BuildQuery(index string, q Query) (*esapi.SearchRequest, error) {
	if index == "" {
		return nil, ErrMissingIndex
	}

	body, err := json.Marshal(buildBody(q))
	if err != nil {
		return nil, err
	}

	from := q.From
	if from < 0 {
		from = 0
	}
	size := q.pageSize()

	return &esapi.SearchRequest{
		Index:          []string{index},
		Body:           strings.NewReader(string(body)),
		From:           &from,
		Size:           &size,
		TrackTotalHits: true,
	}, nil
}

func buildBody(q Query) map[string]interface{} {
	c := q.Criteria
	must := []interface{}{}
	filter := []interface{}{}

	if q.Keywords != "" {
		must = append(must, map[string]interface{}{
			"multi_match": map[string]interface{}{
				"query":  q.Keywords,
				"fields": []string{"title^3", "address", "location"},
				"type":   "best_fields",
			},
		})
	}

	if price := bounds64(c.BudgetMin, c.BudgetMax); price != nil {
		filter = append(filter, rangeClause("priceAmount", price))
	}
	if c.Bedrooms != nil {
		if b := bounds(c.Bedrooms.Min, c.Bedrooms.Max); b != nil {
			filter = append(filter, rangeClause("bedrooms", b))
		}
	}
	if len(c.PropertyTypes) > 0 {
		types := make([]string, 0, len(c.PropertyTypes))
		for _, t := range c.PropertyTypes {
			types = append(types, string(t))
		}
		filter = append(filter, termsClause("type", types))
	}
	if len(c.Locations) > 0 {
		filter = append(filter, termsClause("location", c.Locations))
	}
	// a terms clause is satisfied by any one value
	if len(c.Amenities) > 0 {
		filter = append(filter, termsClause("amenities", c.Amenities))
	}
	if c.PetsAllowed != nil && *c.PetsAllowed {
		filter = append(filter, map[string]interface{}{
			"term": map[string]interface{}{"petsAllowed": true},
		})
	}

	if len(must) == 0 {
		must = append(must, map[string]interface{}{"match_all": map[string]interface{}{}})
	}

	boolQuery := map[string]interface{}{"must": must}
	if len(filter) > 0 {
		boolQuery["filter"] = filter
	}

	return map[string]interface{}{
		"query": map[string]interface{}{"bool": boolQuery},
		"sort":  []map[string]interface{}{{"createdAt": map[string]interface{}{"order": "desc", "unmapped_type": "date"}}},
	}
}

func rangeClause(field string, b map[string]interface{}) map[string]interface{} {
	return map[string]interface{}{
		"range": map[string]interface{}{field: b},
	}
}

func termsClause(field string, values []string) map[string]interface{} {
	return map[string]interface{}{
		"terms": map[string]interface{}{field: values},
	}
}

func bounds64(min, max *int64) map[string]interface{} {
	if min == nil && max == nil {
		return nil
	}
	b := map[string]interface{}{}
	if min != nil {
		b["gte"] = *min
	}
	if max != nil {
		b["lte"] = *max
	}
	return b
}

func bounds(min, max *int) map[string]interface{} {
	if min == nil && max == nil {
		return nil
	}
	b := map[string]interface{}{}
	if min != nil {
		b["gte"] = *min
	}
	if max != nil {
		b["lte"] = *max
	}
	return b
}
