// internal/workers/favorites/summarize-dashboard/config.go
package summarizedashboard

import "time"

type Config struct {
	Timeout     time.Duration
	CacheTTL    time.Duration
	InputSchema map[string]interface{}
}

func LoadConfig() *Config {
	return &Config{
		Timeout:  5 * time.Second,
		CacheTTL: time.Minute,
	}
}
