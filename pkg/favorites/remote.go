package favorites

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"rental-workers/internal/common/camunda"
	"rental-workers/internal/models"

	"github.com/camunda/zeebe/clients/go/v8/pkg/zbc"
)

// BPMN process ids started by ProcessRemote.
const (
	ToggleProcessID    = "favorite-toggle"
	ListProcessID      = "favorite-list"
	DashboardProcessID = "dashboard-summary"
)

// ProcessRunner starts a process instance and waits for its result variables.
type ProcessRunner interface {
	RunProcess(ctx context.Context, processID string, variables interface{}, fetch ...string) (string, error)
}

// ZeebeRunner runs processes through the gateway with CreateInstance...WithResult.
type ZeebeRunner struct {
	client         zbc.Client
	requestTimeout time.Duration
}

func NewZeebeRunner(client zbc.Client, requestTimeout time.Duration) *ZeebeRunner {
	return &ZeebeRunner{client: client, requestTimeout: requestTimeout}
}

func (z *ZeebeRunner) RunProcess(ctx context.Context, processID string, variables interface{}, fetch ...string) (string, error) {
	cmd, err := z.client.NewCreateInstanceCommand().
		BPMNProcessId(processID).
		LatestVersion().
		VariablesFromObject(variables)
	if err != nil {
		return "", fmt.Errorf("encode variables for %s: %w", processID, err)
	}

	if z.requestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, z.requestTimeout)
		defer cancel()
	}

	resp, err := cmd.WithResult().FetchVariables(fetch...).Send(ctx)
	if err != nil {
		return "", camunda.MapError(err, "run "+processID)
	}
	return resp.GetVariables(), nil
}

// ProcessRemote implements Remote and Loader on top of the worker processes.
type ProcessRemote struct {
	runner ProcessRunner
}

func NewProcessRemote(runner ProcessRunner) *ProcessRemote {
	return &ProcessRemote{runner: runner}
}

type userVars struct {
	UserID     string `json:"userId"`
	PropertyID string `json:"propertyId,omitempty"`
}

func (p *ProcessRemote) ToggleFavorite(ctx context.Context, userID, propertyID string) (bool, error) {
	var out struct {
		IsFavorited bool `json:"isFavorited"`
	}
	if err := p.run(ctx, ToggleProcessID, userVars{UserID: userID, PropertyID: propertyID}, &out, "isFavorited"); err != nil {
		return false, err
	}
	return out.IsFavorited, nil
}

func (p *ProcessRemote) ListFavorites(ctx context.Context, userID string) ([]models.Favorite, error) {
	var out struct {
		Favorites []models.Favorite `json:"favorites"`
	}
	if err := p.run(ctx, ListProcessID, userVars{UserID: userID}, &out, "favorites"); err != nil {
		return nil, err
	}
	return out.Favorites, nil
}

func (p *ProcessRemote) DashboardSummary(ctx context.Context, userID string) (models.DashboardSummary, error) {
	var out struct {
		Summary models.DashboardSummary `json:"summary"`
	}
	if err := p.run(ctx, DashboardProcessID, userVars{UserID: userID}, &out, "summary"); err != nil {
		return models.DashboardSummary{}, err
	}
	return out.Summary, nil
}

func (p *ProcessRemote) run(ctx context.Context, processID string, vars interface{}, dst interface{}, fetch ...string) error {
	raw, err := p.runner.RunProcess(ctx, processID, vars, fetch...)
	if err != nil {
		return err
	}
	if raw == "" {
		return nil
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		return fmt.Errorf("decode %s result: %w", processID, err)
	}
	return nil
}
