// internal/workers/favorites/list-favorites/config.go
package listfavorites

import "time"

type Config struct {
	Timeout      time.Duration
	DefaultLimit int
	MaxLimit     int
	InputSchema  map[string]interface{}
}

func LoadConfig() *Config {
	return &Config{
		Timeout:      5 * time.Second,
		DefaultLimit: 100,
		MaxLimit:     500,
	}
}
