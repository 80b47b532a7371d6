package auth

import (
	"context"

	"github.com/fekuna/go-shop/internal/model"
)

// Principal is the authenticated actor on whose behalf an operation runs.
type Principal struct {
	ID    string
	Email string
	Role  string
}

func (p Principal) IsAdmin() bool {
	return p.Role == model.RoleAdmin
}

type principalKey struct{}

func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

func PrincipalFromContext(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(Principal)
	return p, ok
}
