// Package identity models who is making a request and tracks the current
// identity reported by an external provider.
package identity

import (
	"context"

	"github.com/google/uuid"
)

type State int

const (
	// StateUnresolved means the provider has not reported anything yet.
	StateUnresolved State = iota
	// StateAnonymous means the provider reported that nobody is signed in.
	StateAnonymous
	StateSignedIn
)

func (s State) String() string {
	switch s {
	case StateAnonymous:
		return "anonymous"
	case StateSignedIn:
		return "signed_in"
	default:
		return "unresolved"
	}
}

// Identity is an immutable snapshot of the caller.
type Identity struct {
	State  State
	UserID uuid.UUID
	Email  string
	Role   string
}

func Unresolved() Identity {
	return Identity{State: StateUnresolved}
}

func Anonymous() Identity {
	return Identity{State: StateAnonymous}
}

func SignedIn(userID uuid.UUID, email, role string) Identity {
	return Identity{
		State:  StateSignedIn,
		UserID: userID,
		Email:  email,
		Role:   role,
	}
}

func (i Identity) IsSignedIn() bool {
	return i.State == StateSignedIn && i.UserID != uuid.Nil
}

func (i Identity) IsResolved() bool {
	return i.State != StateUnresolved
}

type contextKey struct{}

// WithContext attaches id to ctx.
func WithContext(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, contextKey{}, id)
}

// FromContext returns the identity attached to ctx, or an unresolved identity.
func FromContext(ctx context.Context) Identity {
	if id, ok := ctx.Value(contextKey{}).(Identity); ok {
		return id
	}
	return Unresolved()
}
