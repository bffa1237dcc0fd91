// internal/workers/profile/derive-verification-level/config.go
package deriveverificationlevel

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
