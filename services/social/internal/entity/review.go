package entity

import "time"

// ReviewInput is the editable part of a review.
type ReviewInput struct {
	Title      string
	Body       string
	AlbumID    string
	StarRating int
}

type Review struct {
	id         uint
	author     UserRef
	title      string
	body       string
	albumID    string
	starRating int
	createdAt  time.Time
	likes      IDSet
	comments   []Comment
}

func NewReview(author UserRef, in ReviewInput) (Review, error) {
	if err := ValidateReview(in.Title, in.Body, in.AlbumID, in.StarRating); err != nil {
		return Review{}, err
	}
	return Review{
		author:     author,
		title:      in.Title,
		body:       in.Body,
		albumID:    in.AlbumID,
		starRating: in.StarRating,
		createdAt:  time.Now().UTC(),
	}, nil
}

// Edited returns a replacement carrying the new fields and everything else unchanged.
func (r Review) Edited(in ReviewInput) (Review, error) {
	next, err := NewReview(r.author, in)
	if err != nil {
		return Review{}, err
	}
	next.id = r.id
	next.createdAt = r.createdAt
	next.likes = r.likes
	next.comments = r.comments
	return next, nil
}

func (r Review) WithStarRating(starRating int) (Review, error) {
	if err := ValidateStarRating(starRating); err != nil {
		return Review{}, err
	}
	r.starRating = starRating
	return r, nil
}

func (r Review) WithLikes(likes IDSet) Review {
	r.likes = likes
	return r
}

type ReviewState struct {
	ID         uint
	Author     UserRef
	Title      string
	Body       string
	AlbumID    string
	StarRating int
	CreatedAt  time.Time
	Likes      []uint
	Comments   []Comment
}

func RestoreReview(s ReviewState) Review {
	return Review{
		id:         s.ID,
		author:     s.Author,
		title:      s.Title,
		body:       s.Body,
		albumID:    s.AlbumID,
		starRating: s.StarRating,
		createdAt:  s.CreatedAt,
		likes:      NewIDSet(s.Likes...),
		comments:   append([]Comment(nil), s.Comments...),
	}
}

func (r Review) State() ReviewState {
	return ReviewState{
		ID:         r.id,
		Author:     r.author,
		Title:      r.title,
		Body:       r.body,
		AlbumID:    r.albumID,
		StarRating: r.starRating,
		CreatedAt:  r.createdAt,
		Likes:      r.likes.Slice(),
		Comments:   r.Comments(),
	}
}

func (r Review) ID() uint             { return r.id }
func (r Review) Author() UserRef      { return r.author }
func (r Review) Title() string        { return r.title }
func (r Review) Body() string         { return r.body }
func (r Review) AlbumID() string      { return r.albumID }
func (r Review) StarRating() int      { return r.starRating }
func (r Review) CreatedAt() time.Time { return r.createdAt }
func (r Review) Likes() IDSet         { return r.likes }

// Comments returns a copy in creation order.
func (r Review) Comments() []Comment {
	return append([]Comment(nil), r.comments...)
}
