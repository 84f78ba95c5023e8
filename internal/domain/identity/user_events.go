package identity

import (
	"github.com/Daninc24/myshop/internal/domain/shared"
)

// Event types for the identity context
const (
	EventTypeUserRegistered  = "identity.user.registered"
	EventTypeUserRoleChanged = "identity.user.role_changed"
)

// UserRegisteredEvent is raised when a new account is created
type UserRegisteredEvent struct {
	shared.BaseDomainEvent
	Email string `json:"email"`
}

// NewUserRegisteredEvent creates a UserRegisteredEvent
func NewUserRegisteredEvent(u *User) *UserRegisteredEvent {
	return &UserRegisteredEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeUserRegistered, "User", u.ID),
		Email:           u.Email,
	}
}

// UserRoleChangedEvent is raised when an admin changes a user's role
type UserRoleChangedEvent struct {
	shared.BaseDomainEvent
	OldRole Role `json:"old_role"`
	NewRole Role `json:"new_role"`
}

// NewUserRoleChangedEvent creates a UserRoleChangedEvent
func NewUserRoleChangedEvent(u *User, old, target Role) *UserRoleChangedEvent {
	return &UserRoleChangedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeUserRoleChanged, "User", u.ID),
		OldRole:         old,
		NewRole:         target,
	}
}
