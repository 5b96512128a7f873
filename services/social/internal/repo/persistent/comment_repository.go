package persistent

import (
	"context"

	"yadig/services/social/internal/entity"
	"yadig/services/social/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CommentRepository interface {
	FindByID(ctx context.Context, id uint) (entity.Comment, error)
	Create(ctx context.Context, comment entity.Comment) (entity.Comment, error)
	Delete(ctx context.Context, id uint) error
	DeleteByReviewID(ctx context.Context, reviewID uint) error
}

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) FindByID(ctx context.Context, id uint) (entity.Comment, error) {
	var commentModel model.CommentModel
	if err := conn(ctx, r.db).Preload("Author").Where("id = ?", id).First(&commentModel).Error; err != nil {
		return entity.Comment{}, notFoundOr("find comment", "comment", id, err)
	}
	return ToCommentEntity(&commentModel), nil
}

func (r *commentRepository) Create(ctx context.Context, comment entity.Comment) (entity.Comment, error) {
	commentModel := ToCommentModel(comment)
	commentModel.ID = 0
	if err := conn(ctx, r.db).Omit(clause.Associations).Create(commentModel).Error; err != nil {
		return entity.Comment{}, wrap("create comment", err)
	}
	return r.FindByID(ctx, commentModel.ID)
}

func (r *commentRepository) Delete(ctx context.Context, id uint) error {
	result := conn(ctx, r.db).Where("id = ?", id).Delete(&model.CommentModel{})
	if result.Error != nil {
		return wrap("delete comment", result.Error)
	}
	if result.RowsAffected == 0 {
		return &entity.NotFoundError{Resource: "comment", ID: id}
	}
	return nil
}

func (r *commentRepository) DeleteByReviewID(ctx context.Context, reviewID uint) error {
	err := conn(ctx, r.db).Where("review_id = ?", reviewID).Delete(&model.CommentModel{}).Error
	return wrap("delete review comments", err)
}
