// pkg/registry/schema.go
package registry

import (
	"fmt"
	"time"
)

type ActivityRegistry struct {
	Version     string     `json:"version"`
	LastUpdated string     `json:"lastUpdated"`
	Activities  []Activity `json:"activities"`
}

type Activity struct {
	ID                   string                 `json:"id"`
	DisplayName          string                 `json:"displayName"`
	Description          string                 `json:"description"`
	Category             string                 `json:"category"`
	Version              string                 `json:"version"`
	TaskType             string                 `json:"taskType"`
	ImplementationStatus string                 `json:"implementationStatus"`
	InputSchema          map[string]interface{} `json:"inputSchema"`
	OutputSchema         map[string]interface{} `json:"outputSchema"`
	ErrorCodes           []string               `json:"errorCodes"`
	Timeout              string                 `json:"timeout"`
	Retries              int                    `json:"retries"`
	Workflows            []string               `json:"workflows"`
	Tags                 []string               `json:"tags"`
}

// TimeoutOr parses Timeout ("10s", "1m30s"), returning fallback when it is
// empty or unparsable.
func (a Activity) TimeoutOr(fallback time.Duration) time.Duration {
	if a.Timeout == "" {
		return fallback
	}
	d, err := time.ParseDuration(a.Timeout)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}

func (a Activity) validate() error {
	switch {
	case a.ID == "":
		return fmt.Errorf("activity missing required field: ID")
	case a.DisplayName == "":
		return fmt.Errorf("activity %s missing required field: DisplayName", a.ID)
	case a.TaskType == "":
		return fmt.Errorf("activity %s missing required field: TaskType", a.ID)
	case a.Category == "":
		return fmt.Errorf("activity %s missing required field: Category", a.ID)
	}
	if a.Timeout != "" {
		if _, err := time.ParseDuration(a.Timeout); err != nil {
			return fmt.Errorf("activity %s has invalid timeout %q", a.ID, a.Timeout)
		}
	}
	if a.InputSchema != nil {
		if t, ok := a.InputSchema["type"]; ok && t != "object" {
			return fmt.Errorf("activity %s input schema must be an object schema", a.ID)
		}
	}
	return nil
}
