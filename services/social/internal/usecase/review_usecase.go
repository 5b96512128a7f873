package usecase

import (
	"context"

	"yadig/services/social/internal/entity"
	"yadig/services/social/internal/policy"
	"yadig/services/social/internal/relation"
	"yadig/services/social/internal/repo/persistent"
)

type ReviewUseCase interface {
	Create(ctx context.Context, actor entity.Actor, in entity.ReviewInput) (entity.Review, error)
	Edit(ctx context.Context, actor entity.Actor, id uint, in entity.ReviewInput) (entity.Review, error)
	Delete(ctx context.Context, actor entity.Actor, id uint) error
	Like(ctx context.Context, actor entity.Actor, id uint) (entity.Review, error)
	Unlike(ctx context.Context, actor entity.Actor, id uint) (entity.Review, error)
	GetAll(ctx context.Context) ([]entity.Review, error)
	GetByID(ctx context.Context, id uint) (entity.Review, error)
	GetByAlbum(ctx context.Context, albumID string) ([]entity.Review, error)
	GetByAuthor(ctx context.Context, authorID uint) ([]entity.Review, error)
}

type reviewUseCase struct {
	reviewRepo  persistent.ReviewRepository
	commentRepo persistent.CommentRepository
	tx          persistent.Transactor
	likes       *relation.Likes[entity.Review]
}

func NewReviewUseCase(
	reviewRepo persistent.ReviewRepository,
	commentRepo persistent.CommentRepository,
	tx persistent.Transactor,
) ReviewUseCase {
	return &reviewUseCase{
		reviewRepo:  reviewRepo,
		commentRepo: commentRepo,
		tx:          tx,
		likes:       relation.NewLikes[entity.Review](reviewRepo),
	}
}

func (uc *reviewUseCase) Create(ctx context.Context, actor entity.Actor, in entity.ReviewInput) (entity.Review, error) {
	if err := policy.Authorize(actor, policy.CreateReview, policy.Resource{}); err != nil {
		return entity.Review{}, err
	}
	review, err := entity.NewReview(actor.Ref(), in)
	if err != nil {
		return entity.Review{}, err
	}
	return uc.reviewRepo.Create(ctx, review)
}

func (uc *reviewUseCase) Edit(ctx context.Context, actor entity.Actor, id uint, in entity.ReviewInput) (entity.Review, error) {
	current, err := uc.reviewRepo.FindByID(ctx, id)
	if err != nil {
		return entity.Review{}, err
	}
	if err := policy.Authorize(actor, policy.EditReview, policy.OwnedBy(current.Author().ID)); err != nil {
		return entity.Review{}, err
	}
	next, err := current.Edited(in)
	if err != nil {
		return entity.Review{}, err
	}
	return uc.reviewRepo.Update(ctx, next)
}

// Delete removes the review's comments and then the review in one transaction.
func (uc *reviewUseCase) Delete(ctx context.Context, actor entity.Actor, id uint) error {
	current, err := uc.reviewRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := policy.Authorize(actor, policy.DeleteReview, policy.OwnedBy(current.Author().ID)); err != nil {
		return err
	}
	return uc.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := uc.commentRepo.DeleteByReviewID(ctx, id); err != nil {
			return err
		}
		return uc.reviewRepo.Delete(ctx, id)
	})
}

func (uc *reviewUseCase) Like(ctx context.Context, actor entity.Actor, id uint) (entity.Review, error) {
	current, err := uc.reviewRepo.FindByID(ctx, id)
	if err != nil {
		return entity.Review{}, err
	}
	if err := policy.Authorize(actor, policy.LikeReview, policy.OwnedBy(current.Author().ID)); err != nil {
		return entity.Review{}, err
	}
	return uc.likes.Like(ctx, current, actor.ID)
}

func (uc *reviewUseCase) Unlike(ctx context.Context, actor entity.Actor, id uint) (entity.Review, error) {
	current, err := uc.reviewRepo.FindByID(ctx, id)
	if err != nil {
		return entity.Review{}, err
	}
	if err := policy.Authorize(actor, policy.UnlikeReview, policy.OwnedBy(current.Author().ID)); err != nil {
		return entity.Review{}, err
	}
	return uc.likes.Unlike(ctx, current, actor.ID)
}

func (uc *reviewUseCase) GetAll(ctx context.Context) ([]entity.Review, error) {
	return uc.reviewRepo.FindAll(ctx)
}

func (uc *reviewUseCase) GetByID(ctx context.Context, id uint) (entity.Review, error) {
	return uc.reviewRepo.FindByID(ctx, id)
}

func (uc *reviewUseCase) GetByAlbum(ctx context.Context, albumID string) ([]entity.Review, error) {
	return uc.reviewRepo.FindByAlbumID(ctx, albumID)
}

func (uc *reviewUseCase) GetByAuthor(ctx context.Context, authorID uint) ([]entity.Review, error) {
	return uc.reviewRepo.FindByAuthorID(ctx, authorID)
}
