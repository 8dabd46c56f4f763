package entity

import (
	"time"

	"github.com/google/uuid"
)

// FavoritePlace is a saved destination.
// Home and work are singletons; saving either again replaces the stored one.
type FavoritePlace struct {
	ID        uuid.UUID    `json:"id"`         // The Global Unique Identifier (GUID) for the place.
	Name      string       `json:"name"`       // A user-defined label, e.g., "Gym".
	Location  GeoPoint     `json:"location"`   // The geographic coordinate.
	Type      FavoriteType `json:"type"`       // home, work, favorite or other.
	Address   string       `json:"address"`    // The full, human-readable street address.
	CreatedAt time.Time    `json:"created_at"` // Timestamp of when this place was (re)saved.
}
