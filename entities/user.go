package entities

// User is an account that can authenticate and own favorites.
type User struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	Username  string     `gorm:"type:varchar(120);uniqueIndex;not null" json:"username"`
	Password  string     `gorm:"type:varchar(255);not null" json:"-"`
	IsActive  bool       `gorm:"not null;default:true" json:"is_active"`
	Favorites []Favorite `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

// UserResponse is the public projection of a User.
type UserResponse struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	IsActive bool   `json:"is_active"`
}

func (u *User) Serialize() UserResponse {
	return UserResponse{
		ID:       u.ID,
		Username: u.Username,
		IsActive: u.IsActive,
	}
}

func SerializeUsers(users []User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for i := range users {
		out = append(out, users[i].Serialize())
	}
	return out
}
