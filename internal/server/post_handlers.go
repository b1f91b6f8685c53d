package server

import (
	"errors"

	"codeboard/internal/models"
	"codeboard/internal/observability"

	"github.com/gofiber/fiber/v2"
)

// CreatePost handles POST /api/posts/create. The author comes from the
// verified token, never from the request body, and the topic is assigned by
// the classifier. Field validation runs before classification so empty input
// fails fast with a validation error.
func (s *Server) CreatePost(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	username := c.Locals("username").(string)

	var req struct {
		Title string `json:"title"`
		Body  string `json:"body"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if req.Title == "" || req.Body == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Please provide all required fields"))
	}

	topicID := s.classifier.Classify(req.Title, req.Body)

	// The classified id is configuration; verify it resolves before writing.
	topic, err := s.topicRepo.GetByID(c.Context(), topicID)
	if err != nil {
		var appErr *models.AppError
		if errors.As(err, &appErr) && appErr.Code == "NOT_FOUND" {
			return models.RespondWithError(c, fiber.StatusBadRequest,
				models.NewValidationError("Invalid topic"))
		}
		return models.RespondWithError(c, fiber.StatusBadRequest, err)
	}

	post := &models.Post{
		Title:   req.Title,
		Body:    req.Body,
		UserID:  userID,
		TopicID: topic.ID,
	}
	if err := s.postRepo.Create(c.Context(), post); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest, err)
	}
	observability.PostsCreated.WithLabelValues(topic.Name).Inc()

	// Re-read the author's post count now that the insert is visible.
	postCount, err := s.userRepo.CountPosts(c.Context(), userID)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest, err)
	}

	post.Topic = topic
	post.Author = &models.AuthorSummary{
		ID:        userID,
		Username:  username,
		PostCount: postCount,
	}

	return c.JSON(fiber.Map{
		"msg":  "Post created",
		"post": post,
	})
}

// GetPost handles GET /api/posts/:id
func (s *Server) GetPost(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid post ID"))
	}

	post, err := s.postRepo.GetByID(c.Context(), uint(id))
	if err != nil {
		var appErr *models.AppError
		if errors.As(err, &appErr) && appErr.Code == "NOT_FOUND" {
			return models.RespondWithError(c, fiber.StatusNotFound, appErr)
		}
		return models.RespondWithError(c, fiber.StatusBadRequest, err)
	}

	return c.JSON(fiber.Map{
		"post": post,
	})
}

// UpdatePost handles POST /api/posts/update. Only title and body are
// mutable; author and topic reassignment through this endpoint is not
// allowed.
func (s *Server) UpdatePost(c *fiber.Ctx) error {
	var req struct {
		ID    uint   `json:"id"`
		Title string `json:"title"`
		Body  string `json:"body"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if req.ID == 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Please provide a post ID"))
	}

	post, err := s.postRepo.GetByID(c.Context(), req.ID)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Failed to update post"))
	}

	if req.Title != "" {
		post.Title = req.Title
	}
	if req.Body != "" {
		post.Body = req.Body
	}

	if err := s.postRepo.Update(c.Context(), post); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest, err)
	}

	return c.JSON(fiber.Map{
		"msg":  "Post updated",
		"post": post,
	})
}

// DeletePost handles POST /api/posts/delete. Reverse post lists are derived
// from foreign keys, so removing the row is the whole cleanup.
func (s *Server) DeletePost(c *fiber.Ctx) error {
	var req struct {
		ID uint `json:"id"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if req.ID == 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Please provide a post ID"))
	}

	if err := s.postRepo.Delete(c.Context(), req.ID); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Failed to delete the post"))
	}

	return c.JSON(fiber.Map{
		"msg": "Post has been deleted",
	})
}
