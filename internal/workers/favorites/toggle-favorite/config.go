// internal/workers/favorites/toggle-favorite/config.go
package togglefavorite

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
