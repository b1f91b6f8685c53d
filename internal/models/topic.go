package models

import (
	"time"

	"gorm.io/gorm"
)

// Topic is one of the fixed discussion categories posts are filed under.
// The list of posts is derived from the posts' topic_id foreign key rather
// than kept as a stored id array.
type Topic struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Name      string         `gorm:"unique;not null" json:"name"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
	Posts     []Post         `gorm:"foreignKey:TopicID" json:"posts,omitempty"`
}
