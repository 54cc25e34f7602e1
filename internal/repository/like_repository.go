package repository

import (
	"context"

	"discuss/internal/models"

	"gorm.io/gorm"
)

type LikeRepository interface {
	Find(ctx context.Context, postID, userID string) (*models.Like, error)
	CountByPost(ctx context.Context, postID string) (int64, error)
	ListByPost(ctx context.Context, postID string, offset, limit int) ([]models.Like, error)
	Create(ctx context.Context, like *models.Like) error
	Delete(ctx context.Context, postID, userID string) error
}

type likeRepository struct {
	db *gorm.DB
}

func NewLikeRepository(db *gorm.DB) LikeRepository {
	return &likeRepository{db: db}
}

func (r *likeRepository) Find(ctx context.Context, postID, userID string) (*models.Like, error) {
	var like models.Like
	err := r.db.WithContext(ctx).
		Where("post_id = ? AND user_id = ?", postID, userID).
		First(&like).Error
	if err != nil {
		return nil, translate(err)
	}
	return &like, nil
}

func (r *likeRepository) CountByPost(ctx context.Context, postID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Like{}).Where("post_id = ?", postID).Count(&count).Error
	return count, err
}

func (r *likeRepository) ListByPost(ctx context.Context, postID string, offset, limit int) ([]models.Like, error) {
	var likes []models.Like
	err := r.db.WithContext(ctx).Preload("User").
		Where("post_id = ?", postID).
		Order(newestFirst()).
		Offset(offset).
		Limit(limit).
		Find(&likes).Error
	return likes, err
}

// Create inserts the like and loads the liker summary. A concurrent insert of
// the same pair fails on the primary key and comes back as ErrDuplicate.
func (r *likeRepository) Create(ctx context.Context, like *models.Like) error {
	db := r.db.WithContext(ctx)
	if err := db.Create(like).Error; err != nil {
		return translate(err)
	}
	return translate(db.Preload("User").
		Where("post_id = ? AND user_id = ?", like.PostID, like.UserID).
		First(like).Error)
}

func (r *likeRepository) Delete(ctx context.Context, postID, userID string) error {
	result := r.db.WithContext(ctx).
		Where("post_id = ? AND user_id = ?", postID, userID).
		Delete(&models.Like{})
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
