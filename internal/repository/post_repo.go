package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/MuefXyz/res-Smp-Ash-sub001/internal/model"
)

// PostRepository is the learning-post data-access interface.
type PostRepository interface {
	Create(ctx context.Context, post *model.LearningPost) error
	List(ctx context.Context, offset, limit int) ([]model.LearningPost, int64, error)
}

type postRepo struct {
	db *gorm.DB
}

// NewPostRepo creates the GORM-backed PostRepository.
func NewPostRepo(db *gorm.DB) PostRepository {
	return &postRepo{db: db}
}

func (r *postRepo) Create(ctx context.Context, post *model.LearningPost) error {
	return r.db.WithContext(ctx).Create(post).Error
}

func (r *postRepo) List(ctx context.Context, offset, limit int) ([]model.LearningPost, int64, error) {
	var posts []model.LearningPost
	var total int64

	db := r.db.WithContext(ctx).Model(&model.LearningPost{})

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := db.Preload("Author").
		Offset(offset).Limit(limit).
		Order("created_at DESC").
		Find(&posts).Error; err != nil {
		return nil, 0, err
	}

	return posts, total, nil
}
