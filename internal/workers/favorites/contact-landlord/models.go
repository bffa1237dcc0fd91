// internal/workers/favorites/contact-landlord/models.go
package contactlandlord

import "rental-workers/internal/models"

type Input struct {
	UserID     string           `json:"userId"`
	PropertyID string           `json:"propertyId"`
	Property   *models.Property `json:"property,omitempty"`
}

type Output struct {
	WhatsAppURL     string `json:"whatsappUrl"`
	Message         string `json:"message"`
	MarkedContacted bool   `json:"markedContacted"`
}
