package auth

import "context"

// TokenGenerator abstracts session token creation (e.g. JWT) so the use
// cases stay framework-agnostic.
type TokenGenerator interface {
	Generate(ctx context.Context, user User) (string, error)
}
