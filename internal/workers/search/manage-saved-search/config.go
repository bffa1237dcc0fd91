// internal/workers/search/manage-saved-search/config.go
package managesavedsearch

import "time"

type Config struct {
	Timeout     time.Duration
	CacheTTL    time.Duration
	InputSchema map[string]interface{}
}

func LoadConfig() *Config {
	return &Config{
		Timeout:  10 * time.Second,
		CacheTTL: 10 * time.Minute,
	}
}
