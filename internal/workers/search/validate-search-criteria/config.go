// internal/workers/search/validate-search-criteria/config.go
package validatesearchcriteria

import "time"

type Config struct {
	Timeout     time.Duration
	InputSchema map[string]interface{}
}

func LoadConfig() *Config {
	return &Config{
		Timeout: 5 * time.Second,
	}
}
