// internal/workers/favorites/toggle-favorite/models.go
package togglefavorite

type Input struct {
	UserID     string `json:"userId"`
	PropertyID string `json:"propertyId"`
}

// Output.IsFavorited is the server's resulting state and is what clients
// reconcile their optimistic value against.
type Output struct {
	UserID      string `json:"userId"`
	PropertyID  string `json:"propertyId"`
	IsFavorited bool   `json:"isFavorited"`
	FavoriteID  string `json:"favoriteId"`
}
