package entity

import (
	"strings"
	"time"
)

// PasswordHasher turns a raw password into its stored form.
type PasswordHasher interface {
	Hash(password string) (string, error)
}

type User struct {
	id           uint
	email        string
	username     string
	passwordHash string
	role         Role
	blocked      bool
	createdAt    time.Time
	followedBy   IDSet
	following    IDSet
}

// NewUser validates the raw credentials and returns an unsaved user with role user.
func NewUser(email, username, password string, hasher PasswordHasher) (User, error) {
	return newUser(email, username, password, RoleUser, hasher)
}

// NewAdmin is used only when seeding configured administrators.
func NewAdmin(email, username, password string, hasher PasswordHasher) (User, error) {
	return newUser(email, username, password, RoleAdmin, hasher)
}

func newUser(email, username, password string, role Role, hasher PasswordHasher) (User, error) {
	if err := ValidateUser(email, username, password); err != nil {
		return User{}, err
	}
	hash, err := hasher.Hash(password)
	if err != nil {
		return User{}, err
	}
	return User{
		email:        NormalizeEmail(email),
		username:     strings.TrimSpace(username),
		passwordHash: hash,
		role:         role,
		createdAt:    time.Now().UTC(),
	}, nil
}

// UserState is the flat form of a User used by storage mappers.
type UserState struct {
	ID           uint
	Email        string
	Username     string
	PasswordHash string
	Role         Role
	Blocked      bool
	CreatedAt    time.Time
	FollowedBy   []uint
	Following    []uint
}

// RestoreUser rebuilds a persisted user without re-validating it.
func RestoreUser(s UserState) User {
	return User{
		id:           s.ID,
		email:        s.Email,
		username:     s.Username,
		passwordHash: s.PasswordHash,
		role:         s.Role,
		blocked:      s.Blocked,
		createdAt:    s.CreatedAt,
		followedBy:   NewIDSet(s.FollowedBy...),
		following:    NewIDSet(s.Following...),
	}
}

func (u User) State() UserState {
	return UserState{
		ID:           u.id,
		Email:        u.email,
		Username:     u.username,
		PasswordHash: u.passwordHash,
		Role:         u.role,
		Blocked:      u.blocked,
		CreatedAt:    u.createdAt,
		FollowedBy:   u.followedBy.Slice(),
		Following:    u.following.Slice(),
	}
}

func (u User) ID() uint             { return u.id }
func (u User) Email() string        { return u.email }
func (u User) Username() string     { return u.username }
func (u User) PasswordHash() string { return u.passwordHash }
func (u User) Role() Role           { return u.role }
func (u User) IsBlocked() bool      { return u.blocked }
func (u User) CreatedAt() time.Time { return u.createdAt }
func (u User) FollowedBy() IDSet    { return u.followedBy }
func (u User) Following() IDSet     { return u.following }

func (u User) Ref() UserRef { return UserRef{ID: u.id, Username: u.username} }

// Actor is the identity this user acts with.
func (u User) Actor() Actor {
	return Actor{ID: u.id, Username: u.username, Role: u.role, Blocked: u.blocked}
}

// WithToggledRole swaps user and moderator. Admins are returned unchanged.
func (u User) WithToggledRole() User {
	switch u.role {
	case RoleUser:
		u.role = RoleModerator
	case RoleModerator:
		u.role = RoleUser
	}
	return u
}

// WithToggledBlock flips the blocked flag and always resets the role to user.
func (u User) WithToggledBlock() User {
	u.blocked = !u.blocked
	u.role = RoleUser
	return u
}

func (u User) WithFollower(id uint) User {
	u.followedBy = u.followedBy.With(id)
	return u
}

func (u User) WithoutFollower(id uint) User {
	u.followedBy = u.followedBy.Without(id)
	return u
}

// Profile is the public view of a user together with their content.
type Profile struct {
	User    User
	Reviews []Review
	Lists   []List
}
