package usecase

import (
	"context"

	"yadig/services/social/internal/entity"
	"yadig/services/social/internal/policy"
	"yadig/services/social/internal/repo/persistent"
)

type CommentUseCase interface {
	Create(ctx context.Context, actor entity.Actor, body string, reviewID uint) (entity.Comment, error)
	Delete(ctx context.Context, actor entity.Actor, id uint) error
}

type commentUseCase struct {
	commentRepo persistent.CommentRepository
	reviewRepo  persistent.ReviewRepository
}

func NewCommentUseCase(commentRepo persistent.CommentRepository, reviewRepo persistent.ReviewRepository) CommentUseCase {
	return &commentUseCase{commentRepo: commentRepo, reviewRepo: reviewRepo}
}

// Create checks the actor and the body before confirming the review exists.
func (uc *commentUseCase) Create(ctx context.Context, actor entity.Actor, body string, reviewID uint) (entity.Comment, error) {
	if err := policy.Authorize(actor, policy.CreateComment, policy.Resource{}); err != nil {
		return entity.Comment{}, err
	}
	comment, err := entity.NewComment(actor.Ref(), body, reviewID)
	if err != nil {
		return entity.Comment{}, err
	}
	if _, err := uc.reviewRepo.FindByID(ctx, reviewID); err != nil {
		return entity.Comment{}, err
	}
	return uc.commentRepo.Create(ctx, comment)
}

func (uc *commentUseCase) Delete(ctx context.Context, actor entity.Actor, id uint) error {
	current, err := uc.commentRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := policy.Authorize(actor, policy.DeleteComment, policy.OwnedBy(current.Author().ID)); err != nil {
		return err
	}
	return uc.commentRepo.Delete(ctx, id)
}
