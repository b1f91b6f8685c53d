package server

import (
	"errors"

	"codeboard/internal/models"
	"codeboard/internal/seed"

	"github.com/gofiber/fiber/v2"
)

// GetTopics handles GET /api/topics
func (s *Server) GetTopics(c *fiber.Ctx) error {
	topics, err := s.topicRepo.List(c.Context())
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest, err)
	}
	return c.JSON(topics)
}

// InitializeTopics handles POST /api/topics/initialize. Seeding skips
// catalog entries that already exist, so re-running it is harmless.
func (s *Server) InitializeTopics(c *fiber.Ctx) error {
	if _, err := seed.Topics(c.Context(), s.topicRepo); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest, err)
	}
	return c.JSON(fiber.Map{
		"msg": "Predefined topics initialized",
	})
}

// AddTopic handles POST /api/topics/add
func (s *Server) AddTopic(c *fiber.Ctx) error {
	var req struct {
		Name string `json:"name"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if req.Name == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Please provide a topic name"))
	}

	existing, err := s.topicRepo.GetByName(c.Context(), req.Name)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest, err)
	}
	if existing != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewConflictError("Topic already exists"))
	}

	topic := &models.Topic{Name: req.Name}
	if err := s.topicRepo.Create(c.Context(), topic); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest, err)
	}

	return c.JSON(fiber.Map{
		"msg":   "Topic created successfully",
		"topic": topic,
	})
}

// UpdateTopic handles POST /api/topics/update
func (s *Server) UpdateTopic(c *fiber.Ctx) error {
	var req struct {
		ID   uint   `json:"id"`
		Name string `json:"name"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if req.ID == 0 || req.Name == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Please provide a topic ID and new name"))
	}

	topic, err := s.topicRepo.Rename(c.Context(), req.ID, req.Name)
	if err != nil {
		var appErr *models.AppError
		if errors.As(err, &appErr) && appErr.Code == "NOT_FOUND" {
			return models.RespondWithError(c, fiber.StatusNotFound, appErr)
		}
		return models.RespondWithError(c, fiber.StatusBadRequest, err)
	}

	return c.JSON(fiber.Map{
		"msg":   "Topic updated successfully",
		"topic": topic,
	})
}

// DeleteTopic handles POST /api/topics/delete. Posts referencing the topic
// are left alone; dangling references surface as an empty topic on reads.
func (s *Server) DeleteTopic(c *fiber.Ctx) error {
	var req struct {
		ID uint `json:"id"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if req.ID == 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Please provide a topic ID"))
	}

	if err := s.topicRepo.Delete(c.Context(), req.ID); err != nil {
		var appErr *models.AppError
		if errors.As(err, &appErr) && appErr.Code == "NOT_FOUND" {
			return models.RespondWithError(c, fiber.StatusNotFound, appErr)
		}
		return models.RespondWithError(c, fiber.StatusBadRequest, err)
	}

	return c.JSON(fiber.Map{
		"msg": "Topic deleted successfully",
	})
}
