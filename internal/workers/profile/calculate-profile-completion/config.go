// internal/workers/profile/calculate-profile-completion/config.go
package calculateprofilecompletion

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
