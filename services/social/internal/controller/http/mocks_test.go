package http

import (
	"context"

	"yadig/pkg/queue"
	"yadig/services/social/internal/entity"
	"yadig/services/social/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
)

type MockUserUseCase struct {
	mock.Mock
}

func (m *MockUserUseCase) Register(ctx context.Context, email, username, password string) (entity.User, error) {
	args := m.Called(email, username, password)
	return args.Get(0).(entity.User), args.Error(1)
}

func (m *MockUserUseCase) Login(ctx context.Context, email, password string) (entity.User, string, error) {
	args := m.Called(email, password)
	return args.Get(0).(entity.User), args.String(1), args.Error(2)
}

func (m *MockUserUseCase) GetAll(ctx context.Context, actor entity.Actor) ([]entity.User, error) {
	args := m.Called(actor)
	return args.Get(0).([]entity.User), args.Error(1)
}

func (m *MockUserUseCase) GetProfile(ctx context.Context, id uint) (entity.Profile, error) {
	args := m.Called(id)
	return args.Get(0).(entity.Profile), args.Error(1)
}

func (m *MockUserUseCase) Resolve(ctx context.Context, id uint) (entity.Actor, error) {
	args := m.Called(id)
	return args.Get(0).(entity.Actor), args.Error(1)
}

func (m *MockUserUseCase) Promote(ctx context.Context, actor entity.Actor, targetID uint) (entity.User, error) {
	args := m.Called(actor, targetID)
	return args.Get(0).(entity.User), args.Error(1)
}

func (m *MockUserUseCase) Block(ctx context.Context, actor entity.Actor, targetID uint) (entity.User, error) {
	args := m.Called(actor, targetID)
	return args.Get(0).(entity.User), args.Error(1)
}

func (m *MockUserUseCase) Follow(ctx context.Context, actor entity.Actor, targetID uint) (entity.User, error) {
	args := m.Called(actor, targetID)
	return args.Get(0).(entity.User), args.Error(1)
}

func (m *MockUserUseCase) Unfollow(ctx context.Context, actor entity.Actor, targetID uint) (entity.User, error) {
	args := m.Called(actor, targetID)
	return args.Get(0).(entity.User), args.Error(1)
}

type MockReviewUseCase struct {
	mock.Mock
}

func (m *MockReviewUseCase) Create(ctx context.Context, actor entity.Actor, in entity.ReviewInput) (entity.Review, error) {
	args := m.Called(actor, in)
	return args.Get(0).(entity.Review), args.Error(1)
}

func (m *MockReviewUseCase) Edit(ctx context.Context, actor entity.Actor, id uint, in entity.ReviewInput) (entity.Review, error) {
	args := m.Called(actor, id, in)
	return args.Get(0).(entity.Review), args.Error(1)
}

func (m *MockReviewUseCase) Delete(ctx context.Context, actor entity.Actor, id uint) error {
	return m.Called(actor, id).Error(0)
}

func (m *MockReviewUseCase) Like(ctx context.Context, actor entity.Actor, id uint) (entity.Review, error) {
	args := m.Called(actor, id)
	return args.Get(0).(entity.Review), args.Error(1)
}

func (m *MockReviewUseCase) Unlike(ctx context.Context, actor entity.Actor, id uint) (entity.Review, error) {
	args := m.Called(actor, id)
	return args.Get(0).(entity.Review), args.Error(1)
}

func (m *MockReviewUseCase) GetAll(ctx context.Context) ([]entity.Review, error) {
	args := m.Called()
	return args.Get(0).([]entity.Review), args.Error(1)
}

func (m *MockReviewUseCase) GetByID(ctx context.Context, id uint) (entity.Review, error) {
	args := m.Called(id)
	return args.Get(0).(entity.Review), args.Error(1)
}

func (m *MockReviewUseCase) GetByAlbum(ctx context.Context, albumID string) ([]entity.Review, error) {
	args := m.Called(albumID)
	return args.Get(0).([]entity.Review), args.Error(1)
}

func (m *MockReviewUseCase) GetByAuthor(ctx context.Context, authorID uint) ([]entity.Review, error) {
	args := m.Called(authorID)
	return args.Get(0).([]entity.Review), args.Error(1)
}

type MockListUseCase struct {
	mock.Mock
}

func (m *MockListUseCase) Create(ctx context.Context, actor entity.Actor, in entity.ListInput) (entity.List, error) {
	args := m.Called(actor, in)
	return args.Get(0).(entity.List), args.Error(1)
}

func (m *MockListUseCase) Edit(ctx context.Context, actor entity.Actor, id uint, in entity.ListInput) (entity.List, error) {
	args := m.Called(actor, id, in)
	return args.Get(0).(entity.List), args.Error(1)
}

func (m *MockListUseCase) Delete(ctx context.Context, actor entity.Actor, id uint) error {
	return m.Called(actor, id).Error(0)
}

func (m *MockListUseCase) Like(ctx context.Context, actor entity.Actor, id uint) (entity.List, error) {
	args := m.Called(actor, id)
	return args.Get(0).(entity.List), args.Error(1)
}

func (m *MockListUseCase) Unlike(ctx context.Context, actor entity.Actor, id uint) (entity.List, error) {
	args := m.Called(actor, id)
	return args.Get(0).(entity.List), args.Error(1)
}

func (m *MockListUseCase) GetAll(ctx context.Context) ([]entity.List, error) {
	args := m.Called()
	return args.Get(0).([]entity.List), args.Error(1)
}

func (m *MockListUseCase) GetByID(ctx context.Context, id uint) (entity.List, error) {
	args := m.Called(id)
	return args.Get(0).(entity.List), args.Error(1)
}

type MockCommentUseCase struct {
	mock.Mock
}

func (m *MockCommentUseCase) Create(ctx context.Context, actor entity.Actor, body string, reviewID uint) (entity.Comment, error) {
	args := m.Called(actor, body, reviewID)
	return args.Get(0).(entity.Comment), args.Error(1)
}

func (m *MockCommentUseCase) Delete(ctx context.Context, actor entity.Actor, id uint) error {
	return m.Called(actor, id).Error(0)
}

type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) PublishEvent(ctx context.Context, event queue.Event) error {
	return m.Called(event).Error(0)
}

var (
	_ usecase.UserUseCase    = (*MockUserUseCase)(nil)
	_ usecase.ReviewUseCase  = (*MockReviewUseCase)(nil)
	_ usecase.ListUseCase    = (*MockListUseCase)(nil)
	_ usecase.CommentUseCase = (*MockCommentUseCase)(nil)
	_ EventPublisher         = (*MockPublisher)(nil)
	_ ActorResolver          = (*MockUserUseCase)(nil)
)

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	RegisterValidation()
	return gin.New()
}

// as injects actor the way ActorMiddleware would.
func as(actor entity.Actor, handler gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(contextActor, actor)
		handler(c)
	}
}

var (
	alice = entity.Actor{ID: 1, Username: "alice", Role: entity.RoleUser}
	bob   = entity.Actor{ID: 2, Username: "bob", Role: entity.RoleUser}
	root  = entity.Actor{ID: 9, Username: "root", Role: entity.RoleAdmin}
)
