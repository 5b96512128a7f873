package usecase

import (
	"context"

	"yadig/services/social/internal/entity"
	"yadig/services/social/internal/policy"
	"yadig/services/social/internal/relation"
	"yadig/services/social/internal/repo/persistent"
)

type ListUseCase interface {
	Create(ctx context.Context, actor entity.Actor, in entity.ListInput) (entity.List, error)
	Edit(ctx context.Context, actor entity.Actor, id uint, in entity.ListInput) (entity.List, error)
	Delete(ctx context.Context, actor entity.Actor, id uint) error
	Like(ctx context.Context, actor entity.Actor, id uint) (entity.List, error)
	Unlike(ctx context.Context, actor entity.Actor, id uint) (entity.List, error)
	GetAll(ctx context.Context) ([]entity.List, error)
	GetByID(ctx context.Context, id uint) (entity.List, error)
}

type listUseCase struct {
	listRepo persistent.ListRepository
	likes    *relation.Likes[entity.List]
}

func NewListUseCase(listRepo persistent.ListRepository) ListUseCase {
	return &listUseCase{
		listRepo: listRepo,
		likes:    relation.NewLikes[entity.List](listRepo),
	}
}

func (uc *listUseCase) Create(ctx context.Context, actor entity.Actor, in entity.ListInput) (entity.List, error) {
	if err := policy.Authorize(actor, policy.CreateList, policy.Resource{}); err != nil {
		return entity.List{}, err
	}
	list, err := entity.NewList(actor.Ref(), in)
	if err != nil {
		return entity.List{}, err
	}
	return uc.listRepo.Create(ctx, list)
}

func (uc *listUseCase) Edit(ctx context.Context, actor entity.Actor, id uint, in entity.ListInput) (entity.List, error) {
	current, err := uc.listRepo.FindByID(ctx, id)
	if err != nil {
		return entity.List{}, err
	}
	if err := policy.Authorize(actor, policy.EditList, policy.OwnedBy(current.Author().ID)); err != nil {
		return entity.List{}, err
	}
	next, err := current.Edited(in)
	if err != nil {
		return entity.List{}, err
	}
	return uc.listRepo.Update(ctx, next)
}

func (uc *listUseCase) Delete(ctx context.Context, actor entity.Actor, id uint) error {
	current, err := uc.listRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := policy.Authorize(actor, policy.DeleteList, policy.OwnedBy(current.Author().ID)); err != nil {
		return err
	}
	return uc.listRepo.Delete(ctx, id)
}

func (uc *listUseCase) Like(ctx context.Context, actor entity.Actor, id uint) (entity.List, error) {
	current, err := uc.listRepo.FindByID(ctx, id)
	if err != nil {
		return entity.List{}, err
	}
	if err := policy.Authorize(actor, policy.LikeList, policy.OwnedBy(current.Author().ID)); err != nil {
		return entity.List{}, err
	}
	return uc.likes.Like(ctx, current, actor.ID)
}

func (uc *listUseCase) Unlike(ctx context.Context, actor entity.Actor, id uint) (entity.List, error) {
	current, err := uc.listRepo.FindByID(ctx, id)
	if err != nil {
		return entity.List{}, err
	}
	if err := policy.Authorize(actor, policy.UnlikeList, policy.OwnedBy(current.Author().ID)); err != nil {
		return entity.List{}, err
	}
	return uc.likes.Unlike(ctx, current, actor.ID)
}

func (uc *listUseCase) GetAll(ctx context.Context) ([]entity.List, error) {
	return uc.listRepo.FindAll(ctx)
}

func (uc *listUseCase) GetByID(ctx context.Context, id uint) (entity.List, error) {
	return uc.listRepo.FindByID(ctx, id)
}
