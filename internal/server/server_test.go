package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"codeboard/internal/config"
	"codeboard/internal/database"
	"codeboard/internal/models"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:      "test-secret-key-12345678901234567890123456789012",
		Port:           "8080",
		Env:            "test",
		TopicWebID:     1,
		TopicMernID:    2,
		TopicDefaultID: 3,
	}
}

// setupTestServer builds a Server over an in-memory sqlite database with all
// routes registered.
func setupTestServer(t *testing.T) (*Server, *fiber.App, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate sqlite: %v", err)
	}

	s := NewServerWithDeps(testConfig(), db)
	app := fiber.New()
	s.SetupRoutes(app)
	return s, app, db
}

// createTestUser persists a user with a bcrypt-hashed password and returns it
// with a valid token for authenticated requests.
func createTestUser(t *testing.T, s *Server, db *gorm.DB, username, email string) (*models.User, string) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("Password123!"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	user := &models.User{Username: username, Email: email, Password: string(hash)}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	token, err := s.generateToken(user.ID, user.Username)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	return user, token
}

// seedTestTopics inserts the catalog so ids line up with the test config
// (1 = web, 2 = MERN, 3 = fallback).
func seedTestTopics(t *testing.T, db *gorm.DB) {
	t.Helper()
	for _, name := range []string{"HTML, CSS, JavaScript", "MERN", "C#, ASP.NET"} {
		if err := db.Create(&models.Topic{Name: name}).Error; err != nil {
			t.Fatalf("seed topic %q: %v", name, err)
		}
	}
}

func jsonRequest(t *testing.T, method, target string, body any, token string) *http.Request {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer func() { _ = resp.Body.Close() }()
	var body map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return body
}
