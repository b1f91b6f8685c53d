package repository

import (
	"context"
	"testing"

	"codeboard/internal/database"
	"codeboard/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate sqlite: %v", err)
	}
	return db
}

func mustCreateUser(t *testing.T, db *gorm.DB, username, email string) *models.User {
	t.Helper()
	user := &models.User{Username: username, Email: email, Password: "hashed-password"}
	if err := NewUserRepository(db).Create(context.Background(), user); err != nil {
		t.Fatalf("create user: %v", err)
	}
	return user
}

func mustCreateTopic(t *testing.T, db *gorm.DB, name string) *models.Topic {
	t.Helper()
	topic := &models.Topic{Name: name}
	if err := NewTopicRepository(db).Create(context.Background(), topic); err != nil {
		t.Fatalf("create topic: %v", err)
	}
	return topic
}
