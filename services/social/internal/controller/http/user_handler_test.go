package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"yadig/pkg/logger"
	"yadig/pkg/middleware"
	"yadig/pkg/queue"
	"yadig/services/social/internal/entity"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func jsonBody(t *testing.T, v interface{}) *bytes.Buffer {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func sampleUser(id uint, role entity.Role) entity.User {
	return entity.RestoreUser(entity.UserState{
		ID: id, Email: "jane@example.com", Username: "jane", PasswordHash: "secret-hash", Role: role,
		CreatedAt: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), FollowedBy: []uint{2},
	})
}

func TestSignup_Created(t *testing.T) {
	mockUseCase := new(MockUserUseCase)
	handler := NewUserHandler(mockUseCase, nil, logger.New())
	router := setupTestRouter()
	router.POST("/users/signup", handler.Signup)

	mockUseCase.On("Register", "jane@example.com", "jane", "longenough1").Return(sampleUser(7, entity.RoleUser), nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/users/signup", jsonBody(t, map[string]string{
		"email": "jane@example.com", "username": "jane", "password": "longenough1",
	}))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	body := decode(t, w)
	assert.Equal(t, float64(7), body["id"])
	assert.Equal(t, "jane@example.com", body["email"])
	assert.Equal(t, false, body["isBlocked"])
	assert.NotContains(t, w.Body.String(), "secret-hash")
}

func TestSignup_ErrorStatuses(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"validation", &entity.ValidationError{Field: "email", Message: "email is not valid"}, http.StatusBadRequest},
		{"conflict", &entity.ConflictError{Message: "user with Email jane@example.com already exists"}, http.StatusConflict},
		{"storage", &entity.StorageError{Op: "create user", Err: errors.New("db down")}, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			mockUseCase := new(MockUserUseCase)
			handler := NewUserHandler(mockUseCase, nil, logger.New())
			router := setupTestRouter()
			router.POST("/users/signup", handler.Signup)

			mockUseCase.On("Register", mock.Anything, mock.Anything, mock.Anything).Return(entity.User{}, tc.err)

			w := httptest.NewRecorder()
			req, _ := http.NewRequest("POST", "/users/signup", jsonBody(t, map[string]string{"email": "x"}))
			router.ServeHTTP(w, req)

			assert.Equal(t, tc.status, w.Code)
			if tc.status == http.StatusInternalServerError {
				assert.Equal(t, internalErrorMessage, decode(t, w)["error"])
				assert.NotContains(t, w.Body.String(), "db down")
			} else {
				assert.Equal(t, tc.err.Error(), decode(t, w)["error"])
			}
		})
	}
}

func TestSignup_BindErrors(t *testing.T) {
	handler := NewUserHandler(new(MockUserUseCase), nil, logger.New())
	router := setupTestRouter()
	router.POST("/users/signup", handler.Signup)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/users/signup", bytes.NewBufferString("{not json"))
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid request body", decode(t, w)["error"])

	long := make([]byte, 300)
	for i := range long {
		long[i] = 'a'
	}
	w = httptest.NewRecorder()
	req, _ = http.NewRequest("POST", "/users/signup", jsonBody(t, map[string]string{"email": string(long)}))
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "email must be at most 255 characters", decode(t, w)["error"])
}

func TestLogin(t *testing.T) {
	mockUseCase := new(MockUserUseCase)
	handler := NewUserHandler(mockUseCase, nil, logger.New())
	router := setupTestRouter()
	router.POST("/users/login", handler.Login)

	mockUseCase.On("Login", "jane@example.com", "longenough1").Return(sampleUser(7, entity.RoleUser), "signed", nil)
	mockUseCase.On("Login", "jane@example.com", "wrong").Return(entity.User{}, "", &entity.CredentialsError{})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/users/login", jsonBody(t, map[string]string{"email": "jane@example.com", "password": "longenough1"}))
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, "signed", body["token"])
	assert.Equal(t, "jane", body["user"].(map[string]interface{})["username"])

	w = httptest.NewRecorder()
	req, _ = http.NewRequest("POST", "/users/login", jsonBody(t, map[string]string{"email": "jane@example.com", "password": "wrong"}))
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Invalid Credentials", decode(t, w)["error"])
}

func TestGetUsers_PassesActor(t *testing.T) {
	mockUseCase := new(MockUserUseCase)
	handler := NewUserHandler(mockUseCase, nil, logger.New())
	router := setupTestRouter()
	router.GET("/users", as(root, handler.GetAll))

	mockUseCase.On("GetAll", root).Return([]entity.User{sampleUser(7, entity.RoleUser)}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/users", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var users []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &users))
	require.Len(t, users, 1)
	assert.NotContains(t, users[0], "email")
	assert.Equal(t, []interface{}{float64(2)}, users[0]["followedBy"])
}

func TestGetUserProfile(t *testing.T) {
	mockUseCase := new(MockUserUseCase)
	handler := NewUserHandler(mockUseCase, nil, logger.New())
	router := setupTestRouter()
	router.GET("/users/:id", as(alice, handler.GetByID))

	profile := entity.Profile{
		User:    sampleUser(7, entity.RoleUser),
		Reviews: []entity.Review{sampleReview(3, 7)},
	}
	mockUseCase.On("GetProfile", uint(7)).Return(profile, nil)
	mockUseCase.On("GetProfile", uint(8)).Return(entity.Profile{}, &entity.NotFoundError{Resource: "user", ID: 8})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/users/7", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Len(t, body["reviews"], 1)
	assert.Len(t, body["lists"], 0)

	w = httptest.NewRecorder()
	req, _ = http.NewRequest("GET", "/users/8", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = httptest.NewRecorder()
	req, _ = http.NewRequest("GET", "/users/abc", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPromote_Forbidden(t *testing.T) {
	mockUseCase := new(MockUserUseCase)
	handler := NewUserHandler(mockUseCase, nil, logger.New())
	router := setupTestRouter()
	router.PUT("/users/promote/:id", as(alice, handler.Promote))

	mockUseCase.On("Promote", alice, uint(7)).Return(entity.User{}, &entity.AuthorizationError{})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PUT", "/users/promote/7", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "You are not authorized to access this resource", decode(t, w)["error"])
}

func TestBlock(t *testing.T) {
	mockUseCase := new(MockUserUseCase)
	handler := NewUserHandler(mockUseCase, nil, logger.New())
	router := setupTestRouter()
	router.PUT("/users/block/:id", as(root, handler.Block))

	mockUseCase.On("Block", root, uint(7)).Return(sampleUser(7, entity.RoleUser).WithToggledBlock(), nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PUT", "/users/block/7", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, decode(t, w)["isBlocked"])
}

func TestFollow_PublishesEvent(t *testing.T) {
	mockUseCase := new(MockUserUseCase)
	publisher := new(MockPublisher)
	handler := NewUserHandler(mockUseCase, NewNotifier(publisher, logger.New()), logger.New())
	router := setupTestRouter()
	router.PUT("/users/follow/:id", as(bob, handler.Follow))

	mockUseCase.On("Follow", bob, uint(7)).Return(sampleUser(7, entity.RoleUser), nil)
	publisher.On("PublishEvent", mock.MatchedBy(func(e queue.Event) bool {
		return e.Type == queue.EventUserFollowed && e.ActorID == bob.ID && e.RecipientID == 7 && e.ActorUsername == "bob"
	})).Return(nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PUT", "/users/follow/7", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	publisher.AssertExpectations(t)
}

func TestFollow_PublishFailureDoesNotFailRequest(t *testing.T) {
	mockUseCase := new(MockUserUseCase)
	publisher := new(MockPublisher)
	handler := NewUserHandler(mockUseCase, NewNotifier(publisher, logger.New()), logger.New())
	router := setupTestRouter()
	router.PUT("/users/follow/:id", as(bob, handler.Follow))

	mockUseCase.On("Follow", bob, uint(7)).Return(sampleUser(7, entity.RoleUser), nil)
	publisher.On("PublishEvent", mock.Anything).Return(errors.New("broker down"))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PUT", "/users/follow/7", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestUnfollow(t *testing.T) {
	mockUseCase := new(MockUserUseCase)
	handler := NewUserHandler(mockUseCase, nil, logger.New())
	router := setupTestRouter()
	router.PUT("/users/unfollow/:id", as(bob, handler.Unfollow))

	mockUseCase.On("Unfollow", bob, uint(7)).Return(sampleUser(7, entity.RoleUser).WithoutFollower(2), nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PUT", "/users/unfollow/7", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []interface{}{}, decode(t, w)["followedBy"])
}

func TestActorMiddleware(t *testing.T) {
	resolver := new(MockUserUseCase)
	resolver.On("Resolve", uint(1)).Return(alice, nil)
	resolver.On("Resolve", uint(404)).Return(entity.Actor{}, &entity.NotFoundError{Resource: "user", ID: 404})
	resolver.On("Resolve", uint(500)).Return(entity.Actor{}, &entity.StorageError{Op: "find user", Err: errors.New("down")})

	router := setupTestRouter()
	router.GET("/whoami",
		func(c *gin.Context) {
			c.Set(middleware.ContextUserID, c.Query("sub"))
			c.Next()
		},
		ActorMiddleware(resolver, logger.New()),
		func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"id": actorFrom(c).ID, "role": actorFrom(c).Role})
		},
	)

	cases := []struct {
		sub    string
		status int
	}{
		{"1", http.StatusOK},
		{"404", http.StatusUnauthorized},
		{"500", http.StatusInternalServerError},
		{"nope", http.StatusUnauthorized},
		{"", http.StatusUnauthorized},
	}
	for _, tc := range cases {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/whoami?sub="+tc.sub, nil)
		router.ServeHTTP(w, req)
		assert.Equal(t, tc.status, w.Code, "sub=%q", tc.sub)
	}
}

func TestActorFrom_DefaultsToAnonymous(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.False(t, actorFrom(c).Authenticated())
}
