package entity

import "time"

// Comment has no edit operation; it is created and deleted only.
type Comment struct {
	id        uint
	author    UserRef
	body      string
	reviewID  uint
	createdAt time.Time
}

func NewComment(author UserRef, body string, reviewID uint) (Comment, error) {
	if err := ValidateComment(body, reviewID); err != nil {
		return Comment{}, err
	}
	return Comment{
		author:    author,
		body:      body,
		reviewID:  reviewID,
		createdAt: time.Now().UTC(),
	}, nil
}

type CommentState struct {
	ID        uint
	Author    UserRef
	Body      string
	ReviewID  uint
	CreatedAt time.Time
}

func RestoreComment(s CommentState) Comment {
	return Comment{
		id:        s.ID,
		author:    s.Author,
		body:      s.Body,
		reviewID:  s.ReviewID,
		createdAt: s.CreatedAt,
	}
}

func (c Comment) State() CommentState {
	return CommentState{
		ID:        c.id,
		Author:    c.author,
		Body:      c.body,
		ReviewID:  c.reviewID,
		CreatedAt: c.createdAt,
	}
}

func (c Comment) ID() uint             { return c.id }
func (c Comment) Author() UserRef      { return c.author }
func (c Comment) Body() string         { return c.body }
func (c Comment) ReviewID() uint       { return c.reviewID }
func (c Comment) CreatedAt() time.Time { return c.createdAt }
