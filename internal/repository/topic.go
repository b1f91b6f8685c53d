package repository

import (
	"context"
	"errors"

	"codeboard/internal/models"

	"gorm.io/gorm"
)

// TopicRepository defines persistence operations for topics.
type TopicRepository interface {
	GetByID(ctx context.Context, id uint) (*models.Topic, error)
	GetByName(ctx context.Context, name string) (*models.Topic, error)
	Exists(ctx context.Context, id uint) (bool, error)
	Create(ctx context.Context, topic *models.Topic) error
	Rename(ctx context.Context, id uint, name string) (*models.Topic, error)
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context) ([]models.Topic, error)
}

type topicRepository struct {
	db *gorm.DB
}

// NewTopicRepository returns a new TopicRepository implementation.
func NewTopicRepository(db *gorm.DB) TopicRepository {
	return &topicRepository{db: db}
}

func (r *topicRepository) GetByID(ctx context.Context, id uint) (*models.Topic, error) {
	var topic models.Topic
	if err := r.db.WithContext(ctx).First(&topic, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Topic", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &topic, nil
}

func (r *topicRepository) GetByName(ctx context.Context, name string) (*models.Topic, error) {
	var topic models.Topic
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&topic).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &topic, nil
}

func (r *topicRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Topic{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}

func (r *topicRepository) Create(ctx context.Context, topic *models.Topic) error {
	if err := r.db.WithContext(ctx).Create(topic).Error; err != nil {
		if isUniqueConstraintError(err) {
			return models.NewConflictError("Topic already exists")
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (r *topicRepository) Rename(ctx context.Context, id uint, name string) (*models.Topic, error) {
	topic, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	topic.Name = name
	if err := r.db.WithContext(ctx).Save(topic).Error; err != nil {
		if isUniqueConstraintError(err) {
			return nil, models.NewConflictError("Topic already exists")
		}
		return nil, models.NewInternalError(err)
	}
	return topic, nil
}

func (r *topicRepository) Delete(ctx context.Context, id uint) error {
	// Soft delete; posts keep their topic_id and surface an empty topic on
	// reads. No cascading cleanup of referencing posts.
	res := r.db.WithContext(ctx).Delete(&models.Topic{}, id)
	if res.Error != nil {
		return models.NewInternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("Topic", id)
	}
	return nil
}

func (r *topicRepository) List(ctx context.Context) ([]models.Topic, error) {
	var topics []models.Topic
	if err := r.db.WithContext(ctx).Preload("Posts").Find(&topics).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return topics, nil
}
