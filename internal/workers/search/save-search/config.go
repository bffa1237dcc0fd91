// internal/workers/search/save-search/config.go
package savesearch

import "time"

type Config struct {
	Timeout       time.Duration
	MaxNameLength int
	InputSchema   map[string]interface{}
}

func LoadConfig() *Config {
	return &Config{
		Timeout:       10 * time.Second,
		MaxNameLength: 100,
	}
}
