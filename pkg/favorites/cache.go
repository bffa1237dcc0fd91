package favorites

import (
	"sync"

	"rental-workers/internal/models"
)

// Cache mirrors one user's favorite state on the client. All methods are safe
// for concurrent use; no method performs I/O.
type Cache struct {
	mu          sync.Mutex
	members     map[string]*memberEntry
	list        ListState
	listVersion uint64
	dashboard   dashboardEntry
}

func NewCache() *Cache {
	return &Cache{members: make(map[string]*memberEntry)}
}

func (c *Cache) entry(propertyID string) *memberEntry {
	e, ok := c.members[propertyID]
	if !ok {
		e = &memberEntry{}
		c.members[propertyID] = e
	}
	return e
}

// Snapshot returns the current state for propertyID without changing anything.
func (c *Cache) Snapshot(propertyID string) Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked(propertyID)
}

func (c *Cache) snapshotLocked(propertyID string) Snapshot {
	var e memberEntry
	if existing, ok := c.members[propertyID]; ok {
		e = *existing
	}
	return Snapshot{
		PropertyID:   propertyID,
		Generation:   e.generation,
		Member:       e.state,
		Phase:        e.phase,
		List:         c.list.clone(),
		removedIndex: -1,
	}
}

// Apply snapshots the entity, then applies d optimistically and moves the
// entity to PhasePending under a new generation. Un-favoriting also removes the
// entry from the cached list; favoriting leaves the list alone until the server
// confirms.
func (c *Cache) Apply(d Delta) Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	snap := c.snapshotLocked(d.PropertyID)
	e := c.entry(d.PropertyID)

	e.generation++
	snap.Generation = e.generation
	e.state.Known = true
	e.state.Favorited = d.Favorited
	e.phase = PhasePending
	e.dirty = false

	if !d.Favorited {
		for i, f := range c.list.Items {
			if f.PropertyID == d.PropertyID {
				removed := f
				snap.removed = &removed
				snap.removedIndex = i
				c.list.Items = append(c.list.Items[:i:i], c.list.Items[i+1:]...)
				c.listVersion++
				break
			}
		}
	}
	snap.listVersion = c.listVersion

	pending := snap
	e.pending = &pending
	return snap
}

// Commit settles a successful toggle. When generation is still current the
// entity takes the server's answer; in every case the list, the membership
// entry and the dashboard aggregate are marked stale so the next read refetches.
// It reports whether generation was current.
func (c *Cache) Commit(propertyID string, generation uint64, favorited bool) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.list.Stale = true
	c.dashboard.stale = true

	e := c.entry(propertyID)
	if e.generation != generation {
		e.dirty = true
		return false
	}

	e.state = MemberState{Known: true, Favorited: favorited, Stale: true}
	e.phase = PhaseSettled
	e.pending = nil
	return true
}

// Rollback restores the state captured by Apply. A rollback whose generation is
// older than the entity's current one is discarded so it cannot clobber a later
// optimistic update. It reports whether the rollback was applied.
func (c *Cache) Rollback(snap Snapshot) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	e := c.entry(snap.PropertyID)
	if e.generation != snap.Generation {
		return false
	}

	e.state = snap.Member
	e.phase = snap.Phase
	if snap.Phase == PhasePending {
		// the older toggle can no longer settle this entity
		e.phase = PhaseIdle
		e.state.Stale = true
	}
	if e.dirty {
		e.state.Stale = true
	}
	e.pending = nil
	e.dirty = false

	switch {
	case c.listVersion == snap.listVersion:
		c.list = snap.List.clone()
	case snap.removed != nil && !containsProperty(c.list.Items, snap.PropertyID):
		c.list.Items = insertAt(c.list.Items, snap.removedIndex, *snap.removed)
	}
	c.listVersion++
	return true
}

// Member returns the membership entry and its phase.
func (c *Cache) Member(propertyID string) (MemberState, Phase) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if e, ok := c.members[propertyID]; ok {
		return e.state, e.phase
	}
	return MemberState{}, PhaseIdle
}

// List returns a copy of the cached list state.
func (c *Cache) List() ListState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.list.clone()
}

// Dashboard returns the cached aggregate and whether it can be served as is.
func (c *Cache) Dashboard() (models.DashboardSummary, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.dashboard.summary, c.dashboard.loaded && !c.dashboard.stale
}

// StoreList replaces the list with a server result and refreshes every
// membership entry that is not pending. Pending un-favorites stay out of the
// list until they settle.
func (c *Cache) StoreList(items []models.Favorite) {
	c.mu.Lock()
	defer c.mu.Unlock()

	present := make(map[string]bool, len(items))
	kept := make([]models.Favorite, 0, len(items))
	for _, f := range items {
		present[f.PropertyID] = true
		if e, ok := c.members[f.PropertyID]; ok && e.phase == PhasePending && !e.state.Favorited {
			continue
		}
		kept = append(kept, f)
	}

	c.list = ListState{Loaded: true, Items: kept}
	c.listVersion++

	for id := range present {
		c.entry(id)
	}
	for id, e := range c.members {
		if e.phase == PhasePending {
			continue
		}
		e.state = MemberState{Known: true, Favorited: present[id]}
		e.phase = PhaseIdle
	}
}

// StoreDashboard caches a fresh aggregate.
func (c *Cache) StoreDashboard(s models.DashboardSummary) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.dashboard = dashboardEntry{loaded: true, summary: s}
}

// markAbsent records a server answer of "not favorited" for an entity the
// last list load did not mention.
func (c *Cache) markAbsent(propertyID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e := c.entry(propertyID)
	if e.phase != PhasePending && !e.state.Known {
		e.state = MemberState{Known: true}
	}
}

// needsRefresh reports whether a read of propertyID must go to the server.
func (c *Cache) needsRefresh(propertyID string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.members[propertyID]
	if !ok {
		return true
	}
	if e.phase == PhasePending {
		return false
	}
	return !e.state.Known || e.state.Stale
}

func containsProperty(items []models.Favorite, propertyID string) bool {
	for _, f := range items {
		if f.PropertyID == propertyID {
			return true
		}
	}
	return false
}

func insertAt(items []models.Favorite, i int, f models.Favorite) []models.Favorite {
	if i < 0 || i > len(items) {
		i = len(items)
	}
	out := make([]models.Favorite, 0, len(items)+1)
	out = append(out, items[:i]...)
	out = append(out, f)
	return append(out, items[i:]...)
}
