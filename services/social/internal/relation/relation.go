// Package relation keeps the follow graph and like sets idempotent. Each call
// compares the loaded snapshot with the requested state and only writes on a
// real change; the store is still expected to tolerate duplicate inserts and
// missing deletes so that racing requests converge on the same set.
package relation

import (
	"context"

	"yadig/services/social/internal/entity"
)

type FollowStore interface {
	ConnectFollow(ctx context.Context, followerID, followedID uint) error
	DisconnectFollow(ctx context.Context, followerID, followedID uint) error
}

type LikeStore interface {
	ConnectLike(ctx context.Context, subjectID, userID uint) error
	DisconnectLike(ctx context.Context, subjectID, userID uint) error
}

// Likeable is content carrying a like set.
type Likeable[T any] interface {
	ID() uint
	Likes() entity.IDSet
	WithLikes(entity.IDSet) T
}

type Graph struct {
	store FollowStore
}

func NewGraph(store FollowStore) *Graph {
	return &Graph{store: store}
}

// Follow adds followerID to target's followers and returns the new snapshot.
func (g *Graph) Follow(ctx context.Context, target entity.User, followerID uint) (entity.User, error) {
	if target.FollowedBy().Has(followerID) {
		return target, nil
	}
	if err := g.store.ConnectFollow(ctx, followerID, target.ID()); err != nil {
		return entity.User{}, err
	}
	return target.WithFollower(followerID), nil
}

func (g *Graph) Unfollow(ctx context.Context, target entity.User, followerID uint) (entity.User, error) {
	if !target.FollowedBy().Has(followerID) {
		return target, nil
	}
	if err := g.store.DisconnectFollow(ctx, followerID, target.ID()); err != nil {
		return entity.User{}, err
	}
	return target.WithoutFollower(followerID), nil
}

type Likes[T Likeable[T]] struct {
	store LikeStore
}

func NewLikes[T Likeable[T]](store LikeStore) *Likes[T] {
	return &Likes[T]{store: store}
}

func (l *Likes[T]) Like(ctx context.Context, subject T, userID uint) (T, error) {
	if subject.Likes().Has(userID) {
		return subject, nil
	}
	if err := l.store.ConnectLike(ctx, subject.ID(), userID); err != nil {
		var zero T
		return zero, err
	}
	return subject.WithLikes(subject.Likes().With(userID)), nil
}

func (l *Likes[T]) Unlike(ctx context.Context, subject T, userID uint) (T, error) {
	if !subject.Likes().Has(userID) {
		return subject, nil
	}
	if err := l.store.DisconnectLike(ctx, subject.ID(), userID); err != nil {
		var zero T
		return zero, err
	}
	return subject.WithLikes(subject.Likes().Without(userID)), nil
}
