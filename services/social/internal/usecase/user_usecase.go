package usecase

import (
	"context"
	"fmt"
	"strconv"

	"yadig/services/social/internal/entity"
	"yadig/services/social/internal/policy"
	"yadig/services/social/internal/relation"
	"yadig/services/social/internal/repo/persistent"
)

// PasswordHasher hashes new passwords and checks login attempts.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

type TokenIssuer interface {
	GenerateToken(userID, username, role string) (string, error)
}

type UserUseCase interface {
	Register(ctx context.Context, email, username, password string) (entity.User, error)
	Login(ctx context.Context, email, password string) (entity.User, string, error)
	GetAll(ctx context.Context, actor entity.Actor) ([]entity.User, error)
	GetProfile(ctx context.Context, id uint) (entity.Profile, error)
	Resolve(ctx context.Context, id uint) (entity.Actor, error)
	Promote(ctx context.Context, actor entity.Actor, targetID uint) (entity.User, error)
	Block(ctx context.Context, actor entity.Actor, targetID uint) (entity.User, error)
	Follow(ctx context.Context, actor entity.Actor, targetID uint) (entity.User, error)
	Unfollow(ctx context.Context, actor entity.Actor, targetID uint) (entity.User, error)
}

type userUseCase struct {
	userRepo   persistent.UserRepository
	reviewRepo persistent.ReviewRepository
	listRepo   persistent.ListRepository
	graph      *relation.Graph
	hasher     PasswordHasher
	tokens     TokenIssuer
}

func NewUserUseCase(
	userRepo persistent.UserRepository,
	reviewRepo persistent.ReviewRepository,
	listRepo persistent.ListRepository,
	hasher PasswordHasher,
	tokens TokenIssuer,
) UserUseCase {
	return &userUseCase{
		userRepo:   userRepo,
		reviewRepo: reviewRepo,
		listRepo:   listRepo,
		graph:      relation.NewGraph(userRepo),
		hasher:     hasher,
		tokens:     tokens,
	}
}

func (uc *userUseCase) Register(ctx context.Context, email, username, password string) (entity.User, error) {
	_, err := uc.userRepo.FindByEmail(ctx, email)
	if err == nil {
		return entity.User{}, &entity.ConflictError{
			Message: fmt.Sprintf("user with Email %s already exists", entity.NormalizeEmail(email)),
		}
	}
	if !entity.IsNotFound(err) {
		return entity.User{}, err
	}

	user, err := entity.NewUser(email, username, password, uc.hasher)
	if err != nil {
		return entity.User{}, err
	}
	return uc.userRepo.Create(ctx, user)
}

// Login answers a CredentialsError for an unknown email and for a wrong
// password alike. Blocked accounts may still log in.
func (uc *userUseCase) Login(ctx context.Context, email, password string) (entity.User, string, error) {
	user, err := uc.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if entity.IsNotFound(err) {
			return entity.User{}, "", &entity.CredentialsError{}
		}
		return entity.User{}, "", err
	}

	if err := uc.hasher.Compare(user.PasswordHash(), password); err != nil {
		return entity.User{}, "", &entity.CredentialsError{}
	}

	token, err := uc.tokens.GenerateToken(strconv.FormatUint(uint64(user.ID()), 10), user.Username(), string(user.Role()))
	if err != nil {
		return entity.User{}, "", fmt.Errorf("issue token: %w", err)
	}
	return user, token, nil
}

// GetAll hides blocked accounts from everyone but admins.
func (uc *userUseCase) GetAll(ctx context.Context, actor entity.Actor) ([]entity.User, error) {
	if actor.Role == entity.RoleAdmin {
		return uc.userRepo.FindAll(ctx)
	}
	return uc.userRepo.FindAllActive(ctx)
}

func (uc *userUseCase) GetProfile(ctx context.Context, id uint) (entity.Profile, error) {
	user, err := uc.userRepo.FindByID(ctx, id)
	if err != nil {
		return entity.Profile{}, err
	}
	reviews, err := uc.reviewRepo.FindByAuthorID(ctx, id)
	if err != nil {
		return entity.Profile{}, err
	}
	lists, err := uc.listRepo.FindByAuthorID(ctx, id)
	if err != nil {
		return entity.Profile{}, err
	}
	return entity.Profile{User: user, Reviews: reviews, Lists: lists}, nil
}

// Resolve loads the current role and blocked state behind a token subject.
func (uc *userUseCase) Resolve(ctx context.Context, id uint) (entity.Actor, error) {
	user, err := uc.userRepo.FindByID(ctx, id)
	if err != nil {
		return entity.Actor{}, err
	}
	return user.Actor(), nil
}

func (uc *userUseCase) Promote(ctx context.Context, actor entity.Actor, targetID uint) (entity.User, error) {
	target, err := uc.userRepo.FindByID(ctx, targetID)
	if err != nil {
		return entity.User{}, err
	}
	if err := policy.Authorize(actor, policy.PromoteUser, policy.TargetUser(target)); err != nil {
		return entity.User{}, err
	}
	return uc.userRepo.Update(ctx, target.WithToggledRole())
}

func (uc *userUseCase) Block(ctx context.Context, actor entity.Actor, targetID uint) (entity.User, error) {
	target, err := uc.userRepo.FindByID(ctx, targetID)
	if err != nil {
		return entity.User{}, err
	}
	if err := policy.Authorize(actor, policy.BlockUser, policy.TargetUser(target)); err != nil {
		return entity.User{}, err
	}
	return uc.userRepo.Update(ctx, target.WithToggledBlock())
}

func (uc *userUseCase) Follow(ctx context.Context, actor entity.Actor, targetID uint) (entity.User, error) {
	target, err := uc.userRepo.FindByID(ctx, targetID)
	if err != nil {
		return entity.User{}, err
	}
	if err := policy.Authorize(actor, policy.FollowUser, policy.TargetUser(target)); err != nil {
		return entity.User{}, err
	}
	return uc.graph.Follow(ctx, target, actor.ID)
}

func (uc *userUseCase) Unfollow(ctx context.Context, actor entity.Actor, targetID uint) (entity.User, error) {
	target, err := uc.userRepo.FindByID(ctx, targetID)
	if err != nil {
		return entity.User{}, err
	}
	if err := policy.Authorize(actor, policy.UnfollowUser, policy.TargetUser(target)); err != nil {
		return entity.User{}, err
	}
	return uc.graph.Unfollow(ctx, target, actor.ID)
}
