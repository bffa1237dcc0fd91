// Package favorites keeps a client-side view of a user's favorites in step
// with the server. Toggles are applied optimistically, settled by the remote
// call, and rolled back exactly when the call fails.
package favorites

import (
	"context"
	"sync"

	apperrors "rental-workers/internal/common/errors"
	"rental-workers/internal/common/logger"
	"rental-workers/internal/models"
)

// Remote is the server side of the favorites feature.
type Remote interface {
	// ToggleFavorite flips the favorite and returns the resulting state.
	ToggleFavorite(ctx context.Context, userID, propertyID string) (bool, error)
}

// Loader refetches server state for stale cache entries.
type Loader interface {
	ListFavorites(ctx context.Context, userID string) ([]models.Favorite, error)
	DashboardSummary(ctx context.Context, userID string) (models.DashboardSummary, error)
}

// Reconciler drives toggles for one user against a Cache.
type Reconciler struct {
	userID string
	cache  *Cache
	remote Remote
	loader Loader
	log    logger.Logger

	// serializes refetches so concurrent readers share one load
	loadMu sync.Mutex
}

type Option func(*Reconciler)

func WithLogger(log logger.Logger) Option {
	return func(r *Reconciler) { r.log = log }
}

func WithCache(c *Cache) Option {
	return func(r *Reconciler) { r.cache = c }
}

func NewReconciler(userID string, remote Remote, loader Loader, opts ...Option) *Reconciler {
	r := &Reconciler{
		userID: userID,
		cache:  NewCache(),
		remote: remote,
		loader: loader,
		log:    logger.NewNoOpLogger(),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.log = r.log.With(map[string]interface{}{"userId": userID})
	return r
}

// Cache exposes the underlying cache for inspection.
func (r *Reconciler) Cache() *Cache {
	return r.cache
}

// Toggle flips the favorite state of propertyID. The flipped value is visible
// in the cache before the remote call returns. On success the server's answer
// is returned and dependent entries are marked stale; on failure the cache is
// restored to its pre-toggle state and a REMOTE_FAILURE error is returned.
func (r *Reconciler) Toggle(ctx context.Context, propertyID string) (bool, error) {
	if propertyID == "" {
		return false, apperrors.NewValidationError("propertyId", "propertyId is required")
	}

	current, err := r.IsFavorite(ctx, propertyID)
	if err != nil {
		return false, err
	}

	snap := r.cache.Apply(Delta{PropertyID: propertyID, Favorited: !current})

	favorited, err := r.remote.ToggleFavorite(ctx, r.userID, propertyID)
	if err != nil {
		applied := r.cache.Rollback(snap)
		r.log.Warn("favorite toggle failed", map[string]interface{}{
			"propertyId": propertyID,
			"generation": snap.Generation,
			"rolledBack": applied,
			"error":      err,
		})
		if _, ok := apperrors.AsStandard(err); ok {
			return current, err
		}
		return current, apperrors.NewRemoteFailureError("toggle favorite", err)
	}

	if !r.cache.Commit(propertyID, snap.Generation, favorited) {
		r.log.Debug("favorite toggle superseded", map[string]interface{}{
			"propertyId": propertyID,
			"generation": snap.Generation,
		})
	}
	return favorited, nil
}

// IsFavorite answers from the cache, refetching when the entry is unknown or
// stale. A pending entry always reports its optimistic value.
func (r *Reconciler) IsFavorite(ctx context.Context, propertyID string) (bool, error) {
	if r.cache.needsRefresh(propertyID) {
		if err := r.refreshList(ctx); err != nil {
			return false, err
		}
		r.cache.markAbsent(propertyID)
	}
	state, _ := r.cache.Member(propertyID)
	return state.Favorited, nil
}

// Favorites returns the cached list, refetching it when stale.
func (r *Reconciler) Favorites(ctx context.Context) ([]models.Favorite, error) {
	if l := r.cache.List(); !l.Loaded || l.Stale {
		if err := r.refreshList(ctx); err != nil {
			return nil, err
		}
	}
	return r.cache.List().Items, nil
}

// Dashboard returns the cached aggregate, refetching it when stale.
func (r *Reconciler) Dashboard(ctx context.Context) (models.DashboardSummary, error) {
	if s, fresh := r.cache.Dashboard(); fresh {
		return s, nil
	}
	s, err := r.loader.DashboardSummary(ctx, r.userID)
	if err != nil {
		return models.DashboardSummary{}, wrapRemote("load dashboard", err)
	}
	r.cache.StoreDashboard(s)
	return s, nil
}

func (r *Reconciler) refreshList(ctx context.Context) error {
	r.loadMu.Lock()
	defer r.loadMu.Unlock()

	items, err := r.loader.ListFavorites(ctx, r.userID)
	if err != nil {
		return wrapRemote("load favorites", err)
	}
	r.cache.StoreList(items)
	return nil
}

func wrapRemote(op string, err error) error {
	if _, ok := apperrors.AsStandard(err); ok {
		return err
	}
	return apperrors.NewRemoteFailureError(op, err)
}
