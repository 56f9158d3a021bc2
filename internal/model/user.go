package model

import "time"

type User struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	UserID    string    `json:"user_id" gorm:"size:20;not null;uniqueIndex"`
	Password  string    `json:"-" gorm:"not null"`
	Name      string    `json:"name" gorm:"size:20;not null"`
	Email     string    `json:"email,omitempty" gorm:"size:50"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Equals compares identity only. Two users with identical attributes but
// different IDs are different users.
func (u User) Equals(other User) bool {
	return u.ID == other.ID
}
