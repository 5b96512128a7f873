package usecase

import (
	"context"
	"errors"

	"yadig/services/social/internal/entity"
	"yadig/services/social/internal/repo/persistent"

	"github.com/stretchr/testify/mock"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uint) (entity.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(entity.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (entity.User, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(entity.User), args.Error(1)
}

func (m *MockUserRepository) FindAll(ctx context.Context) ([]entity.User, error) {
	args := m.Called(ctx)
	return args.Get(0).([]entity.User), args.Error(1)
}

func (m *MockUserRepository) FindAllActive(ctx context.Context) ([]entity.User, error) {
	args := m.Called(ctx)
	return args.Get(0).([]entity.User), args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, user entity.User) (entity.User, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(entity.User), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, user entity.User) (entity.User, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(entity.User), args.Error(1)
}

func (m *MockUserRepository) ConnectFollow(ctx context.Context, followerID, followedID uint) error {
	return m.Called(ctx, followerID, followedID).Error(0)
}

func (m *MockUserRepository) DisconnectFollow(ctx context.Context, followerID, followedID uint) error {
	return m.Called(ctx, followerID, followedID).Error(0)
}

type MockReviewRepository struct {
	mock.Mock
}

func (m *MockReviewRepository) FindByID(ctx context.Context, id uint) (entity.Review, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(entity.Review), args.Error(1)
}

func (m *MockReviewRepository) FindAll(ctx context.Context) ([]entity.Review, error) {
	args := m.Called(ctx)
	return args.Get(0).([]entity.Review), args.Error(1)
}

func (m *MockReviewRepository) FindByAlbumID(ctx context.Context, albumID string) ([]entity.Review, error) {
	args := m.Called(ctx, albumID)
	return args.Get(0).([]entity.Review), args.Error(1)
}

func (m *MockReviewRepository) FindByAuthorID(ctx context.Context, authorID uint) ([]entity.Review, error) {
	args := m.Called(ctx, authorID)
	return args.Get(0).([]entity.Review), args.Error(1)
}

func (m *MockReviewRepository) Create(ctx context.Context, review entity.Review) (entity.Review, error) {
	args := m.Called(ctx, review)
	return args.Get(0).(entity.Review), args.Error(1)
}

func (m *MockReviewRepository) Update(ctx context.Context, review entity.Review) (entity.Review, error) {
	args := m.Called(ctx, review)
	return args.Get(0).(entity.Review), args.Error(1)
}

func (m *MockReviewRepository) Delete(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockReviewRepository) ConnectLike(ctx context.Context, reviewID, userID uint) error {
	return m.Called(ctx, reviewID, userID).Error(0)
}

func (m *MockReviewRepository) DisconnectLike(ctx context.Context, reviewID, userID uint) error {
	return m.Called(ctx, reviewID, userID).Error(0)
}

type MockListRepository struct {
	mock.Mock
}

func (m *MockListRepository) FindByID(ctx context.Context, id uint) (entity.List, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(entity.List), args.Error(1)
}

func (m *MockListRepository) FindAll(ctx context.Context) ([]entity.List, error) {
	args := m.Called(ctx)
	return args.Get(0).([]entity.List), args.Error(1)
}

func (m *MockListRepository) FindByAuthorID(ctx context.Context, authorID uint) ([]entity.List, error) {
	args := m.Called(ctx, authorID)
	return args.Get(0).([]entity.List), args.Error(1)
}

func (m *MockListRepository) Create(ctx context.Context, list entity.List) (entity.List, error) {
	args := m.Called(ctx, list)
	return args.Get(0).(entity.List), args.Error(1)
}

func (m *MockListRepository) Update(ctx context.Context, list entity.List) (entity.List, error) {
	args := m.Called(ctx, list)
	return args.Get(0).(entity.List), args.Error(1)
}

func (m *MockListRepository) Delete(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockListRepository) ConnectLike(ctx context.Context, listID, userID uint) error {
	return m.Called(ctx, listID, userID).Error(0)
}

func (m *MockListRepository) DisconnectLike(ctx context.Context, listID, userID uint) error {
	return m.Called(ctx, listID, userID).Error(0)
}

type MockCommentRepository struct {
	mock.Mock
}

func (m *MockCommentRepository) FindByID(ctx context.Context, id uint) (entity.Comment, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(entity.Comment), args.Error(1)
}

func (m *MockCommentRepository) Create(ctx context.Context, comment entity.Comment) (entity.Comment, error) {
	args := m.Called(ctx, comment)
	return args.Get(0).(entity.Comment), args.Error(1)
}

func (m *MockCommentRepository) Delete(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockCommentRepository) DeleteByReviewID(ctx context.Context, reviewID uint) error {
	return m.Called(ctx, reviewID).Error(0)
}

// inlineTx runs fn directly, standing in for a database transaction.
type inlineTx struct{}

func (inlineTx) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type MockTokenIssuer struct {
	mock.Mock
}

func (m *MockTokenIssuer) GenerateToken(userID, username, role string) (string, error) {
	args := m.Called(userID, username, role)
	return args.String(0), args.Error(1)
}

var errMismatch = errors.New("mismatch")

// plainHasher stores passwords with a fixed prefix.
type plainHasher struct{}

func (plainHasher) Hash(password string) (string, error) { return "hashed:" + password, nil }

func (plainHasher) Compare(hash, password string) error {
	if hash != "hashed:"+password {
		return errMismatch
	}
	return nil
}

var (
	_ persistent.UserRepository    = (*MockUserRepository)(nil)
	_ persistent.ReviewRepository  = (*MockReviewRepository)(nil)
	_ persistent.ListRepository    = (*MockListRepository)(nil)
	_ persistent.CommentRepository = (*MockCommentRepository)(nil)
	_ persistent.Transactor        = inlineTx{}
	_ TokenIssuer                  = (*MockTokenIssuer)(nil)
	_ PasswordHasher               = plainHasher{}
)

var (
	author    = entity.Actor{ID: 1, Username: "author", Role: entity.RoleUser}
	stranger  = entity.Actor{ID: 2, Username: "stranger", Role: entity.RoleUser}
	moderator = entity.Actor{ID: 3, Username: "mod", Role: entity.RoleModerator}
	admin     = entity.Actor{ID: 4, Username: "admin", Role: entity.RoleAdmin}
	blocked   = entity.Actor{ID: 5, Username: "blocked", Role: entity.RoleUser, Blocked: true}
)
