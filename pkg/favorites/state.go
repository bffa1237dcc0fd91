package favorites

import "rental-workers/internal/models"

// Phase is the per-property reconciliation phase.
type Phase int

const (
	// PhaseIdle means no toggle has been issued since the value was loaded.
	PhaseIdle Phase = iota
	// PhasePending means an optimistic value is applied and the remote call is in flight.
	PhasePending
	// PhaseSettled means the last toggle was confirmed by the server.
	PhaseSettled
)

func (p Phase) String() string {
	switch p {
	case PhasePending:
		return "pending"
	case PhaseSettled:
		return "settled"
	default:
		return "idle"
	}
}

// MemberState is the cached "is this property favorited" entry.
// Known is false until the server has told us the answer.
type MemberState struct {
	Known     bool
	Favorited bool
	Stale     bool
}

// ListState is the cached favorites list.
type ListState struct {
	Loaded bool
	Stale  bool
	Items  []models.Favorite
}

func (l ListState) clone() ListState {
	out := l
	if l.Items != nil {
		out.Items = append([]models.Favorite(nil), l.Items...)
	}
	return out
}

// Delta is an optimistic change to apply before the remote call.
type Delta struct {
	PropertyID string
	Favorited  bool
}

// Snapshot captures everything Apply changed so Rollback can undo it exactly.
type Snapshot struct {
	PropertyID string
	Generation uint64

	Member MemberState
	Phase  Phase
	List   ListState

	// listVersion is the list version right after Apply. If the list has not
	// moved since, Rollback restores List verbatim.
	listVersion  uint64
	removedIndex int
	removed      *models.Favorite
}

type memberEntry struct {
	state      MemberState
	phase      Phase
	generation uint64
	pending    *Snapshot
	// dirty is set when an older toggle settled while a newer one was pending.
	dirty bool
}

type dashboardEntry struct {
	loaded  bool
	stale   bool
	summary models.DashboardSummary
}
