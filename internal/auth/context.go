package auth

import "context"

type principalContextKey struct{}

func WithPrincipal(ctx context.Context, principal Principal) context.Context {
	return context.WithValue(ctx, principalContextKey{}, principal)
}

func PrincipalFromContext(ctx context.Context) (Principal, bool) {
	principal, ok := ctx.Value(principalContextKey{}).(Principal)
	return principal, ok
}

// Actor names the caller in audit log lines: the username when the token
// carried one, otherwise the subject.
func Actor(ctx context.Context) string {
	principal, ok := PrincipalFromContext(ctx)
	switch {
	case !ok:
		return "anonymous"
	case principal.Username != "":
		return principal.Username
	default:
		return principal.Subject
	}
}
