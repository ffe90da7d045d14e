package auth

import "context"

// Authenticator verifies a bearer token and returns the caller it names.
type Authenticator interface {
	Authenticate(ctx context.Context, bearerToken string) (Principal, error)
}

type AuthenticatorFunc func(ctx context.Context, bearerToken string) (Principal, error)

func (f AuthenticatorFunc) Authenticate(ctx context.Context, bearerToken string) (Principal, error) {
	return f(ctx, bearerToken)
}
