// internal/workers/search/notify-search-matches/models.go
package notifysearchmatches

import (
	"context"

	"rental-workers/internal/models"
)

type Input struct {
	SavedSearchID string            `json:"savedSearchId"`
	UserID        string            `json:"userId"`
	MatchCount    int               `json:"matchCount"`
	Matches       []models.Property `json:"matches,omitempty"`
	Email         string            `json:"email,omitempty"`
	Phone         string            `json:"phone,omitempty"`
}

type Output struct {
	SavedSearchID   string     `json:"savedSearchId"`
	NewMatchesCount int        `json:"newMatchesCount"`
	Notified        bool       `json:"notified"`
	Deliveries      []Delivery `json:"deliveries"`
}

type DeliveryStatus string

const (
	StatusSent    DeliveryStatus = "sent"
	StatusFailed  DeliveryStatus = "failed"
	StatusSkipped DeliveryStatus = "skipped"
)

type Delivery struct {
	Channel   string         `json:"channel"`
	Status    DeliveryStatus `json:"status"`
	MessageID string         `json:"messageId,omitempty"`
	Error     string         `json:"error,omitempty"`
}

// EmailSender is satisfied by aws.SESClient.
type EmailSender interface {
	SendEmail(ctx context.Context, to, subject, textBody, htmlBody string) (string, error)
}

// SMSSender is satisfied by aws.SNSClient.
type SMSSender interface {
	SendSMS(ctx context.Context, phone, message string) (string, error)
}
