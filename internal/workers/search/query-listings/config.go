// internal/workers/search/query-listings/config.go
package querylistings

import "time"

type Config struct {
	Timeout     time.Duration
	Index       string
	MaxSize     int
	InputSchema map[string]interface{}
}

func LoadConfig() *Config {
	return &Config{
		Timeout: 10 * time.Second,
		Index:   "properties",
		MaxSize: 200,
	}
}
