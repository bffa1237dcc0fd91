// internal/workers/search/notify-search-matches/config.go
package notifysearchmatches

import "time"

type Config struct {
	Timeout      time.Duration
	EmailEnabled bool
	SMSEnabled   bool
	// PreviewCount is how many matched listings are named in a message.
	PreviewCount int
	InputSchema  map[string]interface{}
}

func LoadConfig() *Config {
	return &Config{
		Timeout:      20 * time.Second,
		PreviewCount: 3,
	}
}
