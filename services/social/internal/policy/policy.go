// Package policy holds the single authorization decision table for the
// social domain. Services describe what they are about to do with an Action
// and a Resource, and Authorize answers with nil or an AuthorizationError.
package policy

import "yadig/services/social/internal/entity"

type Action string

const (
	CreateReview  Action = "review.create"
	EditReview    Action = "review.edit"
	DeleteReview  Action = "review.delete"
	LikeReview    Action = "review.like"
	UnlikeReview  Action = "review.unlike"
	CreateList    Action = "list.create"
	EditList      Action = "list.edit"
	DeleteList    Action = "list.delete"
	LikeList      Action = "list.like"
	UnlikeList    Action = "list.unlike"
	CreateComment Action = "comment.create"
	DeleteComment Action = "comment.delete"
	PromoteUser   Action = "user.promote"
	BlockUser     Action = "user.block"
	FollowUser    Action = "user.follow"
	UnfollowUser  Action = "user.unfollow"
)

// Resource describes the target of an action. The zero value means "nothing
// existing yet", which is what creation checks use.
type Resource struct {
	OwnerID    uint
	TargetRole entity.Role
}

// OwnedBy describes content authored by ownerID.
func OwnedBy(ownerID uint) Resource {
	return Resource{OwnerID: ownerID}
}

// TargetUser describes an action aimed at another account.
func TargetUser(u entity.User) Resource {
	return Resource{OwnerID: u.ID(), TargetRole: u.Role()}
}

type rule struct {
	actions []Action
	allow   func(actor entity.Actor, res Resource) bool
}

func (r rule) matches(action Action) bool {
	for _, a := range r.actions {
		if a == action {
			return true
		}
	}
	return false
}

func isOwner(actor entity.Actor, res Resource) bool {
	return res.OwnerID != 0 && actor.ID == res.OwnerID
}

func hasRole(actor entity.Actor, roles ...entity.Role) bool {
	for _, r := range roles {
		if actor.Role == r {
			return true
		}
	}
	return false
}

// rules is evaluated in order and the first rule naming the action decides.
var rules = []rule{
	{
		actions: []Action{CreateReview, CreateList, CreateComment},
		allow: func(actor entity.Actor, _ Resource) bool {
			return !actor.Blocked
		},
	},
	{
		actions: []Action{EditReview, EditList, DeleteReview, DeleteList},
		allow: func(actor entity.Actor, res Resource) bool {
			return isOwner(actor, res) || hasRole(actor, entity.RoleAdmin)
		},
	},
	{
		actions: []Action{DeleteComment},
		allow: func(actor entity.Actor, res Resource) bool {
			return isOwner(actor, res) || hasRole(actor, entity.RoleAdmin, entity.RoleModerator)
		},
	},
	{
		actions: []Action{PromoteUser, BlockUser},
		allow: func(actor entity.Actor, res Resource) bool {
			return hasRole(actor, entity.RoleAdmin) && res.TargetRole != entity.RoleAdmin
		},
	},
	{
		actions: []Action{FollowUser, UnfollowUser, LikeReview, UnlikeReview, LikeList, UnlikeList},
		allow: func(entity.Actor, Resource) bool {
			return true
		},
	},
}

// Authorize returns nil when actor may perform action on res. Anonymous
// actors and actions missing from the table are always denied.
func Authorize(actor entity.Actor, action Action, res Resource) error {
	if !actor.Authenticated() {
		return &entity.AuthorizationError{}
	}
	for _, r := range rules {
		if !r.matches(action) {
			continue
		}
		if r.allow(actor, res) {
			return nil
		}
		return &entity.AuthorizationError{}
	}
	return &entity.AuthorizationError{}
}

// Allowed is Authorize as a boolean.
func Allowed(actor entity.Actor, action Action, res Resource) bool {
	return Authorize(actor, action, res) == nil
}
