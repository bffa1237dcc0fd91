// internal/models/property.go
package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

type PropertyType string

const (
	PropertyTypeApartment  PropertyType = "apartment"
	PropertyTypeHouse      PropertyType = "house"
	PropertyTypeStudio     PropertyType = "studio"
	PropertyTypeBedsitter  PropertyType = "bedsitter"
	PropertyTypeTownhouse  PropertyType = "townhouse"
	PropertyTypeVilla      PropertyType = "villa"
	PropertyTypeMaisonette PropertyType = "maisonette"
	PropertyTypeRoom       PropertyType = "room"
)

var knownPropertyTypes = map[PropertyType]bool{
	PropertyTypeApartment:  true,
	PropertyTypeHouse:      true,
	PropertyTypeStudio:     true,
	PropertyTypeBedsitter:  true,
	PropertyTypeTownhouse:  true,
	PropertyTypeVilla:      true,
	PropertyTypeMaisonette: true,
	PropertyTypeRoom:       true,
}

// Valid reports whether t is one of the listed property types.
func (t PropertyType) Valid() bool {
	return knownPropertyTypes[t]
}

// Property is a listing as supplied by the listings index. It is never mutated here.
type Property struct {
	ID            string       `json:"id"`
	Title         string       `json:"title"`
	PriceAmount   int64        `json:"priceAmount"`
	Bedrooms      int          `json:"bedrooms"`
	Bathrooms     Count        `json:"bathrooms"`
	Type          PropertyType `json:"type"`
	Amenities     []string     `json:"amenities"`
	PetsAllowed   bool         `json:"petsAllowed"`
	Location      string       `json:"location"`
	Address       string       `json:"address"`
	LandlordID    string       `json:"landlordId"`
	LandlordPhone string       `json:"landlordPhone,omitempty"`
	CreatedAt     string       `json:"createdAt,omitempty"`
}

// Count is a numeric field that upstream records sometimes carry as a string.
// The raw JSON is kept and coerced on demand.
type Count struct {
	raw json.RawMessage
}

func NewCount(n int) Count {
	return Count{raw: json.RawMessage(strconv.Itoa(n))}
}

// CountFromString builds a Count the way a string-typed source would send it.
func CountFromString(s string) Count {
	b, _ := json.Marshal(s)
	return Count{raw: b}
}

func (c *Count) UnmarshalJSON(data []byte) error {
	c.raw = append(c.raw[:0], data...)
	return nil
}

func (c Count) MarshalJSON() ([]byte, error) {
	if len(c.raw) == 0 {
		return []byte("null"), nil
	}
	return c.raw, nil
}

// Float coerces the value. Numbers pass through; strings are trimmed and may
// carry thousands separators.
func (c Count) Float() (float64, error) {
	raw := bytes.TrimSpace(c.raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return 0, fmt.Errorf("count is empty")
	}

	var v interface{}
	if err := json.Unmarshal(raw, &v); err != nil {
		return 0, fmt.Errorf("count is not valid JSON: %w", err)
	}

	switch n := v.(type) {
	case float64:
		return n, nil
	case string:
		cleaned := strings.TrimSpace(strings.ReplaceAll(n, ",", ""))
		return strconv.ParseFloat(cleaned, 64)
	default:
		return 0, fmt.Errorf("not a number: %T", v)
	}
}
