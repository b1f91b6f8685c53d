// Package seed provides the fixed topic catalog and its initialization.
package seed

import (
	"context"
	"errors"
	"log/slog"

	"codeboard/internal/middleware"
	"codeboard/internal/models"
	"codeboard/internal/repository"
)

// DefaultTopics returns the fixed discussion catalog in classifier order:
// web fundamentals, MERN, then the fallback topic.
func DefaultTopics() []models.Topic {
	return []models.Topic{
		{Name: "HTML, CSS, JavaScript"},
		{Name: "MERN"},
		{Name: "C#, ASP.NET"},
	}
}

// Topics inserts the default catalog one entry at a time. Entries that
// already exist are skipped so a re-run never aborts the whole batch; the
// number of newly created topics is returned.
func Topics(ctx context.Context, topics repository.TopicRepository) (int, error) {
	created := 0
	for _, t := range DefaultTopics() {
		existing, err := topics.GetByName(ctx, t.Name)
		if err != nil {
			return created, err
		}
		if existing != nil {
			continue
		}
		topic := t
		if err := topics.Create(ctx, &topic); err != nil {
			var appErr *models.AppError
			if errors.As(err, &appErr) && appErr.Code == "CONFLICT" {
				// Lost a race with a concurrent initialize; treat as skipped.
				continue
			}
			return created, err
		}
		middleware.Logger.Info("Seeded topic", slog.String("name", topic.Name), slog.Any("id", topic.ID))
		created++
	}
	return created, nil
}
