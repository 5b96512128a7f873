package http

import (
	"net/http"

	"yadig/pkg/logger"
	"yadig/pkg/queue"
	"yadig/services/social/internal/entity"
	"yadig/services/social/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ListHandler struct {
	listUseCase usecase.ListUseCase
	notifier    *Notifier
	logger      *logger.Logger
}

func NewListHandler(listUseCase usecase.ListUseCase, notifier *Notifier, logger *logger.Logger) *ListHandler {
	return &ListHandler{
		listUseCase: listUseCase,
		notifier:    notifier,
		logger:      logger,
	}
}

type ListRequest struct {
	Title       string   `json:"title" binding:"max=255"`
	Description string   `json:"description" binding:"max=5000"`
	AlbumIDs    []string `json:"albumIds" binding:"max=200,dive,max=100"`
}

func (r ListRequest) input() entity.ListInput {
	return entity.ListInput{Title: r.Title, Description: r.Description, AlbumIDs: r.AlbumIDs}
}

// GetAll godoc
// @Summary      List album lists
// @Tags         lists
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  ListResponse
// @Router       /lists [get]
func (h *ListHandler) GetAll(c *gin.Context) {
	lists, err := h.listUseCase.GetAll(c.Request.Context())
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, toListResponses(lists))
}

// GetByID godoc
// @Summary      Get a list
// @Tags         lists
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "List ID"
// @Success      200  {object}  ListResponse
// @Failure      404  {object}  map[string]string
// @Router       /lists/{id} [get]
func (h *ListHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	list, err := h.listUseCase.GetByID(c.Request.Context(), id)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, toListResponse(list))
}

// Create godoc
// @Summary      Create a list
// @Tags         lists
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body ListRequest true "List"
// @Success      201  {object}  ListResponse
// @Failure      400  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /lists [post]
func (h *ListHandler) Create(c *gin.Context) {
	var req ListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	list, err := h.listUseCase.Create(c.Request.Context(), actorFrom(c), req.input())
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, toListResponse(list))
}

// Edit godoc
// @Summary      Replace a list's fields
// @Tags         lists
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "List ID"
// @Param        request body ListRequest true "List"
// @Success      200  {object}  ListResponse
// @Failure      400  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /lists/{id} [put]
func (h *ListHandler) Edit(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req ListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	list, err := h.listUseCase.Edit(c.Request.Context(), actorFrom(c), id, req.input())
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, toListResponse(list))
}

// Like godoc
// @Summary      Like a list
// @Tags         lists
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "List ID"
// @Success      200  {object}  ListResponse
// @Failure      404  {object}  map[string]string
// @Router       /lists/like/{id} [put]
func (h *ListHandler) Like(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	actor := actorFrom(c)
	list, err := h.listUseCase.Like(c.Request.Context(), actor, id)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	h.notifier.Notify(c.Request.Context(), queue.EventListLiked, actor, list.Author().ID, list.ID())
	c.JSON(http.StatusOK, toListResponse(list))
}

// Unlike godoc
// @Summary      Remove a like from a list
// @Tags         lists
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "List ID"
// @Success      200  {object}  ListResponse
// @Failure      404  {object}  map[string]string
// @Router       /lists/unlike/{id} [put]
func (h *ListHandler) Unlike(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	list, err := h.listUseCase.Unlike(c.Request.Context(), actorFrom(c), id)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, toListResponse(list))
}

// Delete godoc
// @Summary      Delete a list
// @Tags         lists
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "List ID"
// @Success      200  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /lists/{id} [delete]
func (h *ListHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.listUseCase.Delete(c.Request.Context(), actorFrom(c), id); err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "List deleted"})
}
