package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"yadig/pkg/logger"
	"yadig/pkg/queue"
	"yadig/services/social/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func sampleList(id, authorID uint) entity.List {
	return entity.RestoreList(entity.ListState{
		ID: id, Author: entity.UserRef{ID: authorID, Username: "alice"},
		Title: "Top", Description: "ranked", AlbumIDs: []string{"b", "a"},
	})
}

func TestCreateList(t *testing.T) {
	mockUseCase := new(MockListUseCase)
	handler := NewListHandler(mockUseCase, nil, logger.New())
	router := setupTestRouter()
	router.POST("/lists", as(alice, handler.Create))

	in := entity.ListInput{Title: "Top", Description: "ranked", AlbumIDs: []string{"b", "a"}}
	mockUseCase.On("Create", alice, in).Return(sampleList(5, alice.ID), nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/lists", jsonBody(t, map[string]interface{}{
		"title": "Top", "description": "ranked", "albumIds": []string{"b", "a"},
	}))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, []interface{}{"b", "a"}, decode(t, w)["albumIds"])
}

func TestCreateList_AlbumIDTooLong(t *testing.T) {
	handler := NewListHandler(new(MockListUseCase), nil, logger.New())
	router := setupTestRouter()
	router.POST("/lists", as(alice, handler.Create))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/lists", jsonBody(t, map[string]interface{}{
		"title": "Top", "description": "ranked", "albumIds": []string{strings.Repeat("x", 101)},
	}))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestEditList(t *testing.T) {
	mockUseCase := new(MockListUseCase)
	handler := NewListHandler(mockUseCase, nil, logger.New())
	router := setupTestRouter()
	router.PUT("/lists/:id", as(root, handler.Edit))

	mockUseCase.On("Edit", root, uint(5), mock.Anything).Return(sampleList(5, alice.ID), nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PUT", "/lists/5", jsonBody(t, map[string]interface{}{
		"title": "Top", "description": "ranked", "albumIds": []string{"a"},
	}))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestLikeList_NotifiesAuthor(t *testing.T) {
	mockUseCase := new(MockListUseCase)
	publisher := new(MockPublisher)
	handler := NewListHandler(mockUseCase, NewNotifier(publisher, logger.New()), logger.New())
	router := setupTestRouter()
	router.PUT("/lists/like/:id", as(bob, handler.Like))

	mockUseCase.On("Like", bob, uint(5)).Return(sampleList(5, alice.ID).WithLikes(entity.NewIDSet(bob.ID)), nil)
	publisher.On("PublishEvent", mock.MatchedBy(func(e queue.Event) bool {
		return e.Type == queue.EventListLiked && e.RecipientID == alice.ID && e.SubjectID == 5
	})).Return(nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PUT", "/lists/like/5", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []interface{}{float64(bob.ID)}, decode(t, w)["likes"])
	publisher.AssertExpectations(t)
}

func TestListReadsAndDelete(t *testing.T) {
	mockUseCase := new(MockListUseCase)
	handler := NewListHandler(mockUseCase, nil, logger.New())
	router := setupTestRouter()
	router.GET("/lists", as(alice, handler.GetAll))
	router.GET("/lists/:id", as(alice, handler.GetByID))
	router.PUT("/lists/unlike/:id", as(alice, handler.Unlike))
	router.DELETE("/lists/:id", as(bob, handler.Delete))

	mockUseCase.On("GetAll").Return([]entity.List{sampleList(5, 1)}, nil)
	mockUseCase.On("GetByID", uint(5)).Return(sampleList(5, 1), nil)
	mockUseCase.On("Unlike", alice, uint(5)).Return(sampleList(5, 1), nil)
	mockUseCase.On("Delete", bob, uint(5)).Return(&entity.AuthorizationError{})

	for _, tc := range []struct {
		method, path string
		status       int
	}{
		{"GET", "/lists", http.StatusOK},
		{"GET", "/lists/5", http.StatusOK},
		{"PUT", "/lists/unlike/5", http.StatusOK},
		{"DELETE", "/lists/5", http.StatusForbidden},
		{"DELETE", "/lists/0", http.StatusBadRequest},
	} {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(tc.method, tc.path, nil)
		router.ServeHTTP(w, req)
		assert.Equal(t, tc.status, w.Code, "%s %s", tc.method, tc.path)
	}
}
