// internal/workers/favorites/contact-landlord/config.go
package contactlandlord

import "time"

type Config struct {
	Timeout time.Duration
	Index   string
	BaseURL string
	// MessageTemplate supports {title} and {address}.
	MessageTemplate string
	InputSchema     map[string]interface{}
}

func LoadConfig() *Config {
	return &Config{
		Timeout:         10 * time.Second,
		Index:           "properties",
		BaseURL:         "https://wa.me",
		MessageTemplate: "Hi, I'm interested in your property \"{title}\" at {address}. Is it still available?",
	}
}
