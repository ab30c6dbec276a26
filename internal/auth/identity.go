package auth

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/trainrec-backend/internal/domain"
)

// UserResolver loads a user by ID.
type UserResolver func(ctx context.Context, id uuid.UUID) (*domain.User, error)

// Identity is the request-scoped caller identity. A token-backed identity
// resolves its user lazily on the first call to User and caches the result
// for the rest of the request.
type Identity struct {
	userID  uuid.UUID
	resolve UserResolver

	once sync.Once
	user *domain.User
	err  error
}

// Anonymous returns an identity with no user.
func Anonymous() *Identity {
	return &Identity{}
}

// NewIdentity returns an identity for the token subject userID.
func NewIdentity(userID uuid.UUID, resolve UserResolver) *Identity {
	return &Identity{userID: userID, resolve: resolve}
}

// NewResolvedIdentity returns an identity whose user is already known.
func NewResolvedIdentity(user *domain.User) *Identity {
	id := &Identity{userID: user.ID, user: user}
	id.once.Do(func() {})
	return id
}

// IsAnonymous reports whether the identity carries no token subject.
func (i *Identity) IsAnonymous() bool {
	return i == nil || i.userID == uuid.Nil
}

// UserID returns the token subject, if any.
func (i *Identity) UserID() (uuid.UUID, bool) {
	if i.IsAnonymous() {
		return uuid.Nil, false
	}
	return i.userID, true
}

// User returns the resolved user or nil when the identity is anonymous, the
// lookup failed, or the user is inactive. The lookup runs at most once.
func (i *Identity) User(ctx context.Context) *domain.User {
	if i.IsAnonymous() {
		return nil
	}

	i.once.Do(func() {
		if i.resolve == nil {
			return
		}
		user, err := i.resolve(ctx, i.userID)
		switch {
		case err != nil:
			i.err = err
		case user == nil || !user.IsActive:
			i.err = domain.ErrUnauthorized
		default:
			i.user = user
		}
	})

	return i.user
}

// Err returns the resolution error, if User was called and failed.
func (i *Identity) Err() error {
	if i == nil {
		return nil
	}
	return i.err
}

type identityKey struct{}

// WithIdentity attaches the identity to the context.
func WithIdentity(ctx context.Context, id *Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

// IdentityFromCtx returns the identity attached to the context, if any.
func IdentityFromCtx(ctx context.Context) (*Identity, bool) {
	id, ok := ctx.Value(identityKey{}).(*Identity)
	return id, ok && id != nil
}
