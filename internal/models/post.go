// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// Post represents a post in the FitPoint feed. Posts are immutable once
// created; the social counters are never stored, they are computed at
// query time from the likes and comments tables.
type Post struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Content  string `gorm:"type:text;not null" json:"content"`
	ImageURL string `json:"image_url,omitempty"`
	UserID   uint   `gorm:"not null;index" json:"user_id"`
	User     User   `gorm:"foreignKey:UserID" json:"user"`
	// LikesCount is not persisted; computed at query time
	LikesCount int `gorm:"->" json:"likes_count"`
	// CommentsCount is not persisted; computed at query time
	CommentsCount int `gorm:"->" json:"comments_count"`
	// Liked indicates whether the requesting viewer liked this post (computed)
	Liked     bool      `gorm:"->" json:"liked"`
	CreatedAt time.Time `json:"created_at"`
}
