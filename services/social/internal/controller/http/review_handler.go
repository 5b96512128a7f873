package http

import (
	"net/http"

	"yadig/pkg/logger"
	"yadig/pkg/queue"
	"yadig/services/social/internal/entity"
	"yadig/services/social/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ReviewHandler struct {
	reviewUseCase usecase.ReviewUseCase
	notifier      *Notifier
	logger        *logger.Logger
}

func NewReviewHandler(reviewUseCase usecase.ReviewUseCase, notifier *Notifier, logger *logger.Logger) *ReviewHandler {
	return &ReviewHandler{
		reviewUseCase: reviewUseCase,
		notifier:      notifier,
		logger:        logger,
	}
}

type ReviewRequest struct {
	Title      string `json:"title" binding:"max=255"`
	Body       string `json:"body" binding:"max=10000"`
	AlbumID    string `json:"albumId" binding:"max=100"`
	StarRating int    `json:"starRating"`
}

func (r ReviewRequest) input() entity.ReviewInput {
	return entity.ReviewInput{Title: r.Title, Body: r.Body, AlbumID: r.AlbumID, StarRating: r.StarRating}
}

// GetAll godoc
// @Summary      List reviews
// @Tags         reviews
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  ReviewResponse
// @Router       /reviews [get]
func (h *ReviewHandler) GetAll(c *gin.Context) {
	reviews, err := h.reviewUseCase.GetAll(c.Request.Context())
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, toReviewResponses(reviews))
}

// GetByID godoc
// @Summary      Get a review with its comments
// @Tags         reviews
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Review ID"
// @Success      200  {object}  ReviewResponse
// @Failure      404  {object}  map[string]string
// @Router       /reviews/{id} [get]
func (h *ReviewHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	review, err := h.reviewUseCase.GetByID(c.Request.Context(), id)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, toReviewResponse(review))
}

// GetByAlbum godoc
// @Summary      List reviews of one album
// @Tags         reviews
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Album ID"
// @Success      200  {array}  ReviewResponse
// @Router       /reviews/album/{id} [get]
func (h *ReviewHandler) GetByAlbum(c *gin.Context) {
	reviews, err := h.reviewUseCase.GetByAlbum(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, toReviewResponses(reviews))
}

// Create godoc
// @Summary      Write a review
// @Tags         reviews
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body ReviewRequest true "Review"
// @Success      201  {object}  ReviewResponse
// @Failure      400  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /reviews [post]
func (h *ReviewHandler) Create(c *gin.Context) {
	var req ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	review, err := h.reviewUseCase.Create(c.Request.Context(), actorFrom(c), req.input())
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, toReviewResponse(review))
}

// Edit godoc
// @Summary      Replace a review's fields
// @Tags         reviews
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Review ID"
// @Param        request body ReviewRequest true "Review"
// @Success      200  {object}  ReviewResponse
// @Failure      400  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /reviews/{id} [put]
func (h *ReviewHandler) Edit(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	review, err := h.reviewUseCase.Edit(c.Request.Context(), actorFrom(c), id, req.input())
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, toReviewResponse(review))
}

// Like godoc
// @Summary      Like a review
// @Tags         reviews
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Review ID"
// @Success      200  {object}  ReviewResponse
// @Failure      404  {object}  map[string]string
// @Router       /reviews/like/{id} [put]
func (h *ReviewHandler) Like(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	actor := actorFrom(c)
	review, err := h.reviewUseCase.Like(c.Request.Context(), actor, id)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	h.notifier.Notify(c.Request.Context(), queue.EventReviewLiked, actor, review.Author().ID, review.ID())
	c.JSON(http.StatusOK, toReviewResponse(review))
}

// Unlike godoc
// @Summary      Remove a like from a review
// @Tags         reviews
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Review ID"
// @Success      200  {object}  ReviewResponse
// @Failure      404  {object}  map[string]string
// @Router       /reviews/unlike/{id} [put]
func (h *ReviewHandler) Unlike(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	review, err := h.reviewUseCase.Unlike(c.Request.Context(), actorFrom(c), id)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, toReviewResponse(review))
}

// Delete godoc
// @Summary      Delete a review and its comments
// @Tags         reviews
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Review ID"
// @Success      200  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /reviews/{id} [delete]
func (h *ReviewHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.reviewUseCase.Delete(c.Request.Context(), actorFrom(c), id); err != nil {
		writeError(c, h.logger, err)
		return
	}

	h.logger.Info("Review %d deleted by %d", id, actorFrom(c).ID)
	c.JSON(http.StatusOK, gin.H{"message": "Review deleted"})
}
