package entity

import "time"

type ListInput struct {
	Title       string
	Description string
	AlbumIDs    []string
}

type List struct {
	id          uint
	author      UserRef
	title       string
	description string
	albumIDs    []string
	createdAt   time.Time
	likes       IDSet
}

func NewList(author UserRef, in ListInput) (List, error) {
	if err := ValidateList(in.Title, in.Description, in.AlbumIDs); err != nil {
		return List{}, err
	}
	return List{
		author:      author,
		title:       in.Title,
		description: in.Description,
		albumIDs:    append([]string(nil), in.AlbumIDs...),
		createdAt:   time.Now().UTC(),
	}, nil
}

func (l List) Edited(in ListInput) (List, error) {
	next, err := NewList(l.author, in)
	if err != nil {
		return List{}, err
	}
	next.id = l.id
	next.createdAt = l.createdAt
	next.likes = l.likes
	return next, nil
}

func (l List) WithLikes(likes IDSet) List {
	l.likes = likes
	return l
}

type ListState struct {
	ID          uint
	Author      UserRef
	Title       string
	Description string
	AlbumIDs    []string
	CreatedAt   time.Time
	Likes       []uint
}

func RestoreList(s ListState) List {
	return List{
		id:          s.ID,
		author:      s.Author,
		title:       s.Title,
		description: s.Description,
		albumIDs:    append([]string(nil), s.AlbumIDs...),
		createdAt:   s.CreatedAt,
		likes:       NewIDSet(s.Likes...),
	}
}

func (l List) State() ListState {
	return ListState{
		ID:          l.id,
		Author:      l.author,
		Title:       l.title,
		Description: l.description,
		AlbumIDs:    l.AlbumIDs(),
		CreatedAt:   l.createdAt,
		Likes:       l.likes.Slice(),
	}
}

func (l List) ID() uint             { return l.id }
func (l List) Author() UserRef      { return l.author }
func (l List) Title() string        { return l.title }
func (l List) Description() string  { return l.description }
func (l List) CreatedAt() time.Time { return l.createdAt }
func (l List) Likes() IDSet         { return l.likes }

// AlbumIDs returns a copy in list order.
func (l List) AlbumIDs() []string {
	return append([]string(nil), l.albumIDs...)
}
