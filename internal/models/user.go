// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// Activity levels accepted by the nutrition engine.
const (
	ActivitySedentary  = "sedentary"
	ActivityLight      = "light"
	ActivityModerate   = "moderate"
	ActivityActive     = "active"
	ActivityVeryActive = "very_active"
)

// Goals accepted by the nutrition engine.
const (
	GoalLose     = "lose"
	GoalMaintain = "maintain"
	GoalGain     = "gain"
)

// Genders accepted by the nutrition engine.
const (
	GenderMale   = "male"
	GenderFemale = "female"
)

// User represents a user in the FitPoint application.
// The biometric fields are optional until the user supplies them; the
// nutrition calculation flow persists its resolved inputs back here.
type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Username string `gorm:"unique;not null" json:"username"`
	Email    string `gorm:"unique;not null" json:"email"`
	Password string `gorm:"not null" json:"-"`
	Bio      string `json:"bio"`
	Avatar   string `json:"avatar"`

	// Biometric / goal profile used by the nutrition engine.
	Age           *int     `json:"age,omitempty"`
	Gender        string   `json:"gender,omitempty"`
	HeightCm      *float64 `gorm:"column:height_cm" json:"height_cm,omitempty"`
	WeightKg      *float64 `gorm:"column:weight_kg" json:"weight_kg,omitempty"`
	ActivityLevel string   `json:"activity_level,omitempty"`
	Goal          string   `json:"goal,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Posts     []Post    `gorm:"foreignKey:UserID" json:"posts,omitempty"`
}
