package http

import (
	"time"

	"yadig/services/social/internal/entity"
)

type AuthorResponse struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
}

type UserResponse struct {
	ID         uint      `json:"id"`
	Username   string    `json:"username"`
	Email      string    `json:"email,omitempty"`
	Role       string    `json:"role"`
	IsBlocked  bool      `json:"isBlocked"`
	CreatedAt  time.Time `json:"createdAt"`
	FollowedBy []uint    `json:"followedBy"`
	Following  []uint    `json:"following"`
}

type ProfileResponse struct {
	UserResponse
	Reviews []ReviewResponse `json:"reviews"`
	Lists   []ListResponse   `json:"lists"`
}

type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

type CommentResponse struct {
	ID        uint           `json:"id"`
	Body      string         `json:"body"`
	ReviewID  uint           `json:"reviewId"`
	Author    AuthorResponse `json:"author"`
	CreatedAt time.Time      `json:"createdAt"`
}

type ReviewResponse struct {
	ID         uint              `json:"id"`
	Title      string            `json:"title"`
	Body       string            `json:"body"`
	AlbumID    string            `json:"albumId"`
	StarRating int               `json:"starRating"`
	Author     AuthorResponse    `json:"author"`
	CreatedAt  time.Time         `json:"createdAt"`
	Likes      []uint            `json:"likes"`
	Comments   []CommentResponse `json:"comments"`
}

type ListResponse struct {
	ID          uint           `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	AlbumIDs    []string       `json:"albumIds"`
	Author      AuthorResponse `json:"author"`
	CreatedAt   time.Time      `json:"createdAt"`
	Likes       []uint         `json:"likes"`
}

func toAuthorResponse(ref entity.UserRef) AuthorResponse {
	return AuthorResponse{ID: ref.ID, Username: ref.Username}
}

// toUserResponse never carries the email; toSelfResponse does.
func toUserResponse(u entity.User) UserResponse {
	return UserResponse{
		ID:         u.ID(),
		Username:   u.Username(),
		Role:       string(u.Role()),
		IsBlocked:  u.IsBlocked(),
		CreatedAt:  u.CreatedAt(),
		FollowedBy: u.FollowedBy().Slice(),
		Following:  u.Following().Slice(),
	}
}

func toSelfResponse(u entity.User) UserResponse {
	resp := toUserResponse(u)
	resp.Email = u.Email()
	return resp
}

func toUserResponses(users []entity.User) []UserResponse {
	out := make([]UserResponse, len(users))
	for i, u := range users {
		out[i] = toUserResponse(u)
	}
	return out
}

func toProfileResponse(p entity.Profile) ProfileResponse {
	return ProfileResponse{
		UserResponse: toUserResponse(p.User),
		Reviews:      toReviewResponses(p.Reviews),
		Lists:        toListResponses(p.Lists),
	}
}

func toCommentResponse(c entity.Comment) CommentResponse {
	return CommentResponse{
		ID:        c.ID(),
		Body:      c.Body(),
		ReviewID:  c.ReviewID(),
		Author:    toAuthorResponse(c.Author()),
		CreatedAt: c.CreatedAt(),
	}
}

func toReviewResponse(r entity.Review) ReviewResponse {
	comments := r.Comments()
	resp := ReviewResponse{
		ID:         r.ID(),
		Title:      r.Title(),
		Body:       r.Body(),
		AlbumID:    r.AlbumID(),
		StarRating: r.StarRating(),
		Author:     toAuthorResponse(r.Author()),
		CreatedAt:  r.CreatedAt(),
		Likes:      r.Likes().Slice(),
		Comments:   make([]CommentResponse, len(comments)),
	}
	for i, c := range comments {
		resp.Comments[i] = toCommentResponse(c)
	}
	return resp
}

func toReviewResponses(reviews []entity.Review) []ReviewResponse {
	out := make([]ReviewResponse, len(reviews))
	for i, r := range reviews {
		out[i] = toReviewResponse(r)
	}
	return out
}

func toListResponse(l entity.List) ListResponse {
	return ListResponse{
		ID:          l.ID(),
		Title:       l.Title(),
		Description: l.Description(),
		AlbumIDs:    l.AlbumIDs(),
		Author:      toAuthorResponse(l.Author()),
		CreatedAt:   l.CreatedAt(),
		Likes:       l.Likes().Slice(),
	}
}

func toListResponses(lists []entity.List) []ListResponse {
	out := make([]ListResponse, len(lists))
	for i, l := range lists {
		out[i] = toListResponse(l)
	}
	return out
}
