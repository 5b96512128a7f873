package persistent

import (
	"context"
	"errors"
	"fmt"

	"yadig/services/social/internal/entity"
	"yadig/services/social/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserRepository interface {
	FindByID(ctx context.Context, id uint) (entity.User, error)
	FindByEmail(ctx context.Context, email string) (entity.User, error)
	FindAll(ctx context.Context) ([]entity.User, error)
	FindAllActive(ctx context.Context) ([]entity.User, error)
	Create(ctx context.Context, user entity.User) (entity.User, error)
	Update(ctx context.Context, user entity.User) (entity.User, error)
	ConnectFollow(ctx context.Context, followerID, followedID uint) error
	DisconnectFollow(ctx context.Context, followerID, followedID uint) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) FindByID(ctx context.Context, id uint) (entity.User, error) {
	var userModel model.UserModel
	if err := conn(ctx, r.db).Where("id = ?", id).First(&userModel).Error; err != nil {
		return entity.User{}, notFoundOr("find user", "user", id, err)
	}
	return r.withEdges(ctx, &userModel)
}

// FindByEmail returns a NotFoundError without an id when no account uses email.
func (r *userRepository) FindByEmail(ctx context.Context, email string) (entity.User, error) {
	var userModel model.UserModel
	if err := conn(ctx, r.db).Where("email = ?", entity.NormalizeEmail(email)).First(&userModel).Error; err != nil {
		return entity.User{}, notFoundOr("find user by email", "user", 0, err)
	}
	return r.withEdges(ctx, &userModel)
}

func (r *userRepository) FindAll(ctx context.Context) ([]entity.User, error) {
	return r.find(ctx, conn(ctx, r.db))
}

func (r *userRepository) FindAllActive(ctx context.Context) ([]entity.User, error) {
	return r.find(ctx, conn(ctx, r.db).Where("is_blocked = ?", false))
}

func (r *userRepository) find(ctx context.Context, query *gorm.DB) ([]entity.User, error) {
	var userModels []model.UserModel
	if err := query.Order("id ASC").Find(&userModels).Error; err != nil {
		return nil, wrap("find users", err)
	}

	ids := make([]uint, len(userModels))
	for i := range userModels {
		ids[i] = userModels[i].ID
	}
	followedBy, following, err := r.edges(ctx, ids)
	if err != nil {
		return nil, err
	}

	users := make([]entity.User, len(userModels))
	for i := range userModels {
		id := userModels[i].ID
		users[i] = ToUserEntity(&userModels[i], followedBy[id], following[id])
	}
	return users, nil
}

func (r *userRepository) Create(ctx context.Context, user entity.User) (entity.User, error) {
	userModel := ToUserModel(user)
	userModel.ID = 0
	if err := conn(ctx, r.db).Create(userModel).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return entity.User{}, &entity.ConflictError{
				Message: fmt.Sprintf("user with Email %s already exists", userModel.Email),
			}
		}
		return entity.User{}, wrap("create user", err)
	}
	return ToUserEntity(userModel, nil, nil), nil
}

// Update replaces the account row. Follow edges are written through ConnectFollow only.
func (r *userRepository) Update(ctx context.Context, user entity.User) (entity.User, error) {
	userModel := ToUserModel(user)
	result := conn(ctx, r.db).Model(&model.UserModel{}).Where("id = ?", userModel.ID).Updates(map[string]interface{}{
		"email":      userModel.Email,
		"username":   userModel.Username,
		"password":   userModel.Password,
		"role":       userModel.Role,
		"is_blocked": userModel.IsBlocked,
	})
	if result.Error != nil {
		return entity.User{}, wrap("update user", result.Error)
	}
	if result.RowsAffected == 0 {
		return entity.User{}, &entity.NotFoundError{Resource: "user", ID: userModel.ID}
	}
	return r.FindByID(ctx, userModel.ID)
}

func (r *userRepository) ConnectFollow(ctx context.Context, followerID, followedID uint) error {
	edge := &model.FollowModel{FollowerID: followerID, FollowedID: followedID}
	err := conn(ctx, r.db).Clauses(clause.OnConflict{DoNothing: true}).Create(edge).Error
	return wrap("connect follow", err)
}

func (r *userRepository) DisconnectFollow(ctx context.Context, followerID, followedID uint) error {
	err := conn(ctx, r.db).
		Where("follower_id = ? AND followed_id = ?", followerID, followedID).
		Delete(&model.FollowModel{}).Error
	return wrap("disconnect follow", err)
}

func (r *userRepository) withEdges(ctx context.Context, userModel *model.UserModel) (entity.User, error) {
	followedBy, following, err := r.edges(ctx, []uint{userModel.ID})
	if err != nil {
		return entity.User{}, err
	}
	return ToUserEntity(userModel, followedBy[userModel.ID], following[userModel.ID]), nil
}

// edges loads both directions of the follow relation for ids in one pass.
func (r *userRepository) edges(ctx context.Context, ids []uint) (followedBy, following map[uint][]uint, err error) {
	followedBy = make(map[uint][]uint, len(ids))
	following = make(map[uint][]uint, len(ids))
	if len(ids) == 0 {
		return followedBy, following, nil
	}

	var rows []model.FollowModel
	if err := conn(ctx, r.db).
		Where("followed_id IN ? OR follower_id IN ?", ids, ids).
		Find(&rows).Error; err != nil {
		return nil, nil, wrap("find follows", err)
	}

	wanted := make(map[uint]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}
	for _, row := range rows {
		if wanted[row.FollowedID] {
			followedBy[row.FollowedID] = append(followedBy[row.FollowedID], row.FollowerID)
		}
		if wanted[row.FollowerID] {
			following[row.FollowerID] = append(following[row.FollowerID], row.FollowedID)
		}
	}
	return followedBy, following, nil
}
