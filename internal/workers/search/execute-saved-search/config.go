// internal/workers/search/execute-saved-search/config.go
package executesavedsearch

import "time"

type Config struct {
	Timeout        time.Duration
	CacheTTL       time.Duration
	Index          string
	CandidateLimit int
	InputSchema    map[string]interface{}
}

func LoadConfig() *Config {
	return &Config{
		Timeout:        15 * time.Second,
		CacheTTL:       10 * time.Minute,
		Index:          "properties",
		CandidateLimit: 200,
	}
}
