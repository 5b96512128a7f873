package persistent

import (
	"context"

	"yadig/services/social/internal/entity"
	"yadig/services/social/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ReviewRepository interface {
	FindByID(ctx context.Context, id uint) (entity.Review, error)
	FindAll(ctx context.Context) ([]entity.Review, error)
	FindByAlbumID(ctx context.Context, albumID string) ([]entity.Review, error)
	FindByAuthorID(ctx context.Context, authorID uint) ([]entity.Review, error)
	Create(ctx context.Context, review entity.Review) (entity.Review, error)
	Update(ctx context.Context, review entity.Review) (entity.Review, error)
	Delete(ctx context.Context, id uint) error
	ConnectLike(ctx context.Context, reviewID, userID uint) error
	DisconnectLike(ctx context.Context, reviewID, userID uint) error
}

type reviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) preloaded(ctx context.Context) *gorm.DB {
	return conn(ctx, r.db).
		Preload("Author").
		Preload("Comments", func(db *gorm.DB) *gorm.DB {
			return db.Order("comments.created_at ASC, comments.id ASC")
		}).
		Preload("Comments.Author").
		Preload("Likes")
}

func (r *reviewRepository) FindByID(ctx context.Context, id uint) (entity.Review, error) {
	var reviewModel model.ReviewModel
	if err := r.preloaded(ctx).Where("id = ?", id).First(&reviewModel).Error; err != nil {
		return entity.Review{}, notFoundOr("find review", "review", id, err)
	}
	return ToReviewEntity(&reviewModel), nil
}

func (r *reviewRepository) FindAll(ctx context.Context) ([]entity.Review, error) {
	return r.find(r.preloaded(ctx))
}

func (r *reviewRepository) FindByAlbumID(ctx context.Context, albumID string) ([]entity.Review, error) {
	return r.find(r.preloaded(ctx).Where("album_id = ?", albumID))
}

func (r *reviewRepository) FindByAuthorID(ctx context.Context, authorID uint) ([]entity.Review, error) {
	return r.find(r.preloaded(ctx).Where("author_id = ?", authorID))
}

func (r *reviewRepository) find(query *gorm.DB) ([]entity.Review, error) {
	var reviewModels []model.ReviewModel
	if err := query.Order("id ASC").Find(&reviewModels).Error; err != nil {
		return nil, wrap("find reviews", err)
	}

	reviews := make([]entity.Review, len(reviewModels))
	for i := range reviewModels {
		reviews[i] = ToReviewEntity(&reviewModels[i])
	}
	return reviews, nil
}

func (r *reviewRepository) Create(ctx context.Context, review entity.Review) (entity.Review, error) {
	reviewModel := ToReviewModel(review)
	reviewModel.ID = 0
	if err := conn(ctx, r.db).Omit(clause.Associations).Create(reviewModel).Error; err != nil {
		return entity.Review{}, wrap("create review", err)
	}
	return r.FindByID(ctx, reviewModel.ID)
}

// Update replaces the editable columns of the review; author and createdAt are fixed.
func (r *reviewRepository) Update(ctx context.Context, review entity.Review) (entity.Review, error) {
	reviewModel := ToReviewModel(review)
	result := conn(ctx, r.db).Model(&model.ReviewModel{}).Where("id = ?", reviewModel.ID).Updates(map[string]interface{}{
		"title":       reviewModel.Title,
		"body":        reviewModel.Body,
		"album_id":    reviewModel.AlbumID,
		"star_rating": reviewModel.StarRating,
	})
	if result.Error != nil {
		return entity.Review{}, wrap("update review", result.Error)
	}
	if result.RowsAffected == 0 {
		return entity.Review{}, &entity.NotFoundError{Resource: "review", ID: reviewModel.ID}
	}
	return r.FindByID(ctx, reviewModel.ID)
}

// Delete removes the review and its likes. Comments must already be gone.
func (r *reviewRepository) Delete(ctx context.Context, id uint) error {
	db := conn(ctx, r.db)
	if err := db.Where("review_id = ?", id).Delete(&model.ReviewLikeModel{}).Error; err != nil {
		return wrap("delete review likes", err)
	}
	result := db.Where("id = ?", id).Delete(&model.ReviewModel{})
	if result.Error != nil {
		return wrap("delete review", result.Error)
	}
	if result.RowsAffected == 0 {
		return &entity.NotFoundError{Resource: "review", ID: id}
	}
	return nil
}

func (r *reviewRepository) ConnectLike(ctx context.Context, reviewID, userID uint) error {
	like := &model.ReviewLikeModel{ReviewID: reviewID, UserID: userID}
	err := conn(ctx, r.db).Clauses(clause.OnConflict{DoNothing: true}).Create(like).Error
	return wrap("connect review like", err)
}

func (r *reviewRepository) DisconnectLike(ctx context.Context, reviewID, userID uint) error {
	err := conn(ctx, r.db).
		Where("review_id = ? AND user_id = ?", reviewID, userID).
		Delete(&model.ReviewLikeModel{}).Error
	return wrap("disconnect review like", err)
}
