package http

import (
	"net/http"

	"yadig/pkg/logger"
	"yadig/pkg/queue"
	"yadig/services/social/internal/usecase"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	commentUseCase usecase.CommentUseCase
	reviewUseCase  usecase.ReviewUseCase
	notifier       *Notifier
	logger         *logger.Logger
}

func NewCommentHandler(commentUseCase usecase.CommentUseCase, reviewUseCase usecase.ReviewUseCase, notifier *Notifier, logger *logger.Logger) *CommentHandler {
	return &CommentHandler{
		commentUseCase: commentUseCase,
		reviewUseCase:  reviewUseCase,
		notifier:       notifier,
		logger:         logger,
	}
}

type CommentRequest struct {
	Body     string `json:"body" binding:"max=2000"`
	ReviewID uint   `json:"reviewId"`
}

// Create godoc
// @Summary      Comment on a review
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CommentRequest true "Comment"
// @Success      201  {object}  CommentResponse
// @Failure      400  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /comments [post]
func (h *CommentHandler) Create(c *gin.Context) {
	var req CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	actor := actorFrom(c)
	comment, err := h.commentUseCase.Create(c.Request.Context(), actor, req.Body, req.ReviewID)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	h.notifyReviewAuthor(c, comment.ReviewID())
	c.JSON(http.StatusCreated, toCommentResponse(comment))
}

// Delete godoc
// @Summary      Delete a comment
// @Tags         comments
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Comment ID"
// @Success      200  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /comments/{id} [delete]
func (h *CommentHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.commentUseCase.Delete(c.Request.Context(), actorFrom(c), id); err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Comment deleted"})
}

// notifyReviewAuthor needs the review's author, which the comment does not carry.
func (h *CommentHandler) notifyReviewAuthor(c *gin.Context, reviewID uint) {
	if h.notifier == nil || h.reviewUseCase == nil {
		return
	}
	review, err := h.reviewUseCase.GetByID(c.Request.Context(), reviewID)
	if err != nil {
		h.logger.Warn("Skipping comment notification for review %d: %v", reviewID, err)
		return
	}
	h.notifier.Notify(c.Request.Context(), queue.EventCommentCreated, actorFrom(c), review.Author().ID, reviewID)
}
