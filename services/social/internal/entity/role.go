package entity

import "fmt"

type Role string

const (
	RoleUser      Role = "user"
	RoleModerator Role = "moderator"
	RoleAdmin     Role = "admin"
)

func ParseRole(s string) (Role, error) {
	switch r := Role(s); r {
	case RoleUser, RoleModerator, RoleAdmin:
		return r, nil
	default:
		return "", fmt.Errorf("unknown role %q", s)
	}
}

// Actor is the authenticated identity performing an operation.
type Actor struct {
	ID       uint
	Username string
	Role     Role
	Blocked  bool
}

func (a Actor) Authenticated() bool { return a.ID != 0 }

// Ref is the author reference embedded in content.
func (a Actor) Ref() UserRef {
	return UserRef{ID: a.ID, Username: a.Username}
}

// UserRef identifies a user without loading the whole entity.
type UserRef struct {
	ID       uint
	Username string
}
