package entities

// Favorite links a user to exactly one planet or one person.
// A (user, planet) or (user, person) pair appears at most once.
type Favorite struct {
	ID       uint    `gorm:"primaryKey"`
	UserID   uint    `gorm:"not null;uniqueIndex:idx_favorite_user_planet;uniqueIndex:idx_favorite_user_person"`
	PlanetID *uint   `gorm:"uniqueIndex:idx_favorite_user_planet"`
	PersonID *uint   `gorm:"column:people_id;uniqueIndex:idx_favorite_user_person"`
	Planet   *Planet `gorm:"constraint:OnDelete:CASCADE"`
	Person   *Person `gorm:"foreignKey:PersonID;constraint:OnDelete:CASCADE"`
}

// FavoriteResponse nests the referenced planet or person; the other side is null.
type FavoriteResponse struct {
	ID     uint    `json:"id"`
	UserID uint    `json:"user_id"`
	Planet *Planet `json:"planet"`
	Person *Person `json:"person"`
}

func (f *Favorite) Serialize() FavoriteResponse {
	return FavoriteResponse{
		ID:     f.ID,
		UserID: f.UserID,
		Planet: f.Planet,
		Person: f.Person,
	}
}

func SerializeFavorites(favorites []Favorite) []FavoriteResponse {
	out := make([]FavoriteResponse, 0, len(favorites))
	for i := range favorites {
		out = append(out, favorites[i].Serialize())
	}
	return out
}
