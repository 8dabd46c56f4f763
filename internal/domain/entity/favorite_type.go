package entity

// FavoriteType represents the kind of a saved place.
type FavoriteType string

const (
	// FavoriteTypeHome is the single home place.
	FavoriteTypeHome FavoriteType = "home"
	// FavoriteTypeWork is the single work place.
	FavoriteTypeWork FavoriteType = "work"
	// FavoriteTypeFavorite is a regular saved place.
	FavoriteTypeFavorite FavoriteType = "favorite"
	// FavoriteTypeOther is anything else.
	FavoriteTypeOther FavoriteType = "other"
)

// String returns the string representation of the FavoriteType.
func (f FavoriteType) String() string {
	return string(f)
}

// IsValid checks if the FavoriteType is a valid value.
func (f FavoriteType) IsValid() bool {
	switch f {
	case FavoriteTypeHome, FavoriteTypeWork, FavoriteTypeFavorite, FavoriteTypeOther:
		return true
	default:
		return false
	}
}

// IsSingleton reports whether at most one place of this type may exist.
func (f FavoriteType) IsSingleton() bool {
	return f == FavoriteTypeHome || f == FavoriteTypeWork
}
