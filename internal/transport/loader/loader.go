// Package loader provides per-request DataLoaders that batch user lookups
// made while rendering record, note and queue responses into one query.
package loader

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader/v7"

	"github.com/heartmarshall/trainrec-backend/internal/domain"
)

const (
	maxBatch = 100
	wait     = 2 * time.Millisecond
)

type userRepo interface {
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]*domain.User, error)
}

// Loaders holds the per-request DataLoader instances.
type Loaders struct {
	Users *dataloader.Loader[uuid.UUID, *domain.User]
}

// New creates a fresh set of loaders. Call once per request.
func New(users userRepo) *Loaders {
	return &Loaders{
		Users: dataloader.NewBatchedLoader(
			newUsersBatchFn(users),
			dataloader.WithWait[uuid.UUID, *domain.User](wait),
			dataloader.WithBatchCapacity[uuid.UUID, *domain.User](maxBatch),
		),
	}
}

func newUsersBatchFn(repo userRepo) dataloader.BatchFunc[uuid.UUID, *domain.User] {
	return func(ctx context.Context, keys []uuid.UUID) []*dataloader.Result[*domain.User] {
		users, err := repo.GetByIDs(ctx, keys)
		if err != nil {
			return errorResults[*domain.User](len(keys), err)
		}

		byID := make(map[uuid.UUID]*domain.User, len(users))
		for _, u := range users {
			byID[u.ID] = u
		}

		results := make([]*dataloader.Result[*domain.User], len(keys))
		for i, key := range keys {
			// Missing users load as nil; callers render them as unknown.
			results[i] = &dataloader.Result[*domain.User]{Data: byID[key]}
		}
		return results
	}
}

func errorResults[V any](n int, err error) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], n)
	for i := range results {
		results[i] = &dataloader.Result[V]{Error: err}
	}
	return results
}

// UsersByID loads ids through the request's user loader and returns the found
// users keyed by id. Duplicate ids are loaded once.
func (l *Loaders) UsersByID(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*domain.User, error) {
	if len(ids) == 0 {
		return map[uuid.UUID]*domain.User{}, nil
	}

	seen := make(map[uuid.UUID]struct{}, len(ids))
	keys := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		keys = append(keys, id)
	}

	users, errs := l.Users.LoadMany(ctx, keys)()
	out := make(map[uuid.UUID]*domain.User, len(keys))
	for i, key := range keys {
		if i < len(errs) && errs[i] != nil {
			return nil, errs[i]
		}
		if users[i] != nil {
			out[key] = users[i]
		}
	}
	return out, nil
}

type ctxKey struct{}

// WithLoaders stores loaders in the context.
func WithLoaders(ctx context.Context, l *Loaders) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// FromContext returns the loaders stored in ctx, or nil.
func FromContext(ctx context.Context) *Loaders {
	l, _ := ctx.Value(ctxKey{}).(*Loaders)
	return l
}

// Middleware creates loaders for every request.
func Middleware(users userRepo) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := WithLoaders(r.Context(), New(users))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
