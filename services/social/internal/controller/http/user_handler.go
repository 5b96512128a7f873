package http

import (
	"net/http"

	"yadig/pkg/logger"
	"yadig/pkg/queue"
	"yadig/services/social/internal/usecase"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userUseCase usecase.UserUseCase
	notifier    *Notifier
	logger      *logger.Logger
}

func NewUserHandler(userUseCase usecase.UserUseCase, notifier *Notifier, logger *logger.Logger) *UserHandler {
	return &UserHandler{
		userUseCase: userUseCase,
		notifier:    notifier,
		logger:      logger,
	}
}

type SignupRequest struct {
	Email    string `json:"email" binding:"max=255"`
	Username string `json:"username" binding:"max=100"`
	Password string `json:"password" binding:"max=72"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"max=255"`
	Password string `json:"password" binding:"max=72"`
}

// Signup godoc
// @Summary      Register a new user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        request body SignupRequest true "Registration data"
// @Success      201  {object}  UserResponse
// @Failure      400  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /users/signup [post]
func (h *UserHandler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	user, err := h.userUseCase.Register(c.Request.Context(), req.Email, req.Username, req.Password)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	h.logger.Info("User %d registered", user.ID())
	c.JSON(http.StatusCreated, toSelfResponse(user))
}

// Login godoc
// @Summary      Login user
// @Description  Authenticate user and return JWT token
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        request body LoginRequest true "Login credentials"
// @Success      200  {object}  AuthResponse
// @Failure      401  {object}  map[string]string
// @Router       /users/login [post]
func (h *UserHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	user, token, err := h.userUseCase.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, AuthResponse{Token: token, User: toSelfResponse(user)})
}

// GetAll godoc
// @Summary      List users
// @Description  Admins see every account, everyone else only unblocked ones
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  UserResponse
// @Router       /users [get]
func (h *UserHandler) GetAll(c *gin.Context) {
	users, err := h.userUseCase.GetAll(c.Request.Context(), actorFrom(c))
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, toUserResponses(users))
}

// GetByID godoc
// @Summary      Get a user profile
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "User ID"
// @Success      200  {object}  ProfileResponse
// @Failure      404  {object}  map[string]string
// @Router       /users/{id} [get]
func (h *UserHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	profile, err := h.userUseCase.GetProfile(c.Request.Context(), id)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, toProfileResponse(profile))
}

// Promote godoc
// @Summary      Toggle a user between user and moderator
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "User ID"
// @Success      200  {object}  UserResponse
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /users/promote/{id} [put]
func (h *UserHandler) Promote(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	user, err := h.userUseCase.Promote(c.Request.Context(), actorFrom(c), id)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	h.logger.Info("User %d role set to %s by %d", user.ID(), user.Role(), actorFrom(c).ID)
	c.JSON(http.StatusOK, toUserResponse(user))
}

// Block godoc
// @Summary      Toggle a user's blocked state
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "User ID"
// @Success      200  {object}  UserResponse
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /users/block/{id} [put]
func (h *UserHandler) Block(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	user, err := h.userUseCase.Block(c.Request.Context(), actorFrom(c), id)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	h.logger.Info("User %d blocked=%t by %d", user.ID(), user.IsBlocked(), actorFrom(c).ID)
	c.JSON(http.StatusOK, toUserResponse(user))
}

// Follow godoc
// @Summary      Follow a user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "User ID"
// @Success      200  {object}  UserResponse
// @Failure      404  {object}  map[string]string
// @Router       /users/follow/{id} [put]
func (h *UserHandler) Follow(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	actor := actorFrom(c)
	user, err := h.userUseCase.Follow(c.Request.Context(), actor, id)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	h.notifier.Notify(c.Request.Context(), queue.EventUserFollowed, actor, user.ID(), user.ID())
	c.JSON(http.StatusOK, toUserResponse(user))
}

// Unfollow godoc
// @Summary      Unfollow a user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "User ID"
// @Success      200  {object}  UserResponse
// @Failure      404  {object}  map[string]string
// @Router       /users/unfollow/{id} [put]
func (h *UserHandler) Unfollow(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	user, err := h.userUseCase.Unfollow(c.Request.Context(), actorFrom(c), id)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, toUserResponse(user))
}
