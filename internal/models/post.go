package models

import (
	"time"

	"gorm.io/gorm"
)

// Post is a forum post. The topic is assigned by the classifier at creation
// time and is never supplied by the client.
type Post struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Title   string `gorm:"not null" json:"title"`
	Body    string `gorm:"not null" json:"body"`
	UserID  uint   `gorm:"not null" json:"user_id"`
	User    *User  `gorm:"foreignKey:UserID" json:"user,omitempty"`
	TopicID uint   `gorm:"not null" json:"topic_id"`
	Topic   *Topic `gorm:"foreignKey:TopicID" json:"topic,omitempty"`
	// Author is not persisted; computed on the create path
	Author    *AuthorSummary `gorm:"-" json:"author,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// AuthorSummary carries the author details embedded in a freshly created post.
type AuthorSummary struct {
	ID        uint   `json:"id"`
	Username  string `json:"username"`
	PostCount int64  `json:"post_count"`
}
