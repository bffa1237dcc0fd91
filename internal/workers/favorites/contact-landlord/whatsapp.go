// internal/workers/favorites/contact-landlord/whatsapp.go
package contactlandlord

import (
	"net/url"
	"strings"
	"unicode"

	apperrors "rental-workers/internal/common/errors"
	"rental-workers/internal/models"
)

// phoneDigits keeps only the digits wa.me accepts.
func phoneDigits(phone string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return r
		}
		return -1
	}, phone)
}

func renderMessage(template string, p *models.Property) string {
	address := p.Address
	if address == "" {
		address = p.Location
	}
	return strings.NewReplacer("{title}", p.Title, "{address}", address).Replace(template)
}

// buildLink returns the click-to-chat link with message prefilled.
func buildLink(baseURL, phone, message string) (string, error) {
	digits := phoneDigits(phone)
	if digits == "" {
		return "", apperrors.NewValidationError("landlordPhone", "landlord has no usable phone number")
	}
	text := strings.ReplaceAll(url.QueryEscape(message), "+", "%20")
	return strings.TrimRight(baseURL, "/") + "/" + digits + "?text=" + text, nil
}
