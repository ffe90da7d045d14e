package auth

import "errors"

var ErrInvalidToken = errors.New("invalid token")

// Config selects and configures bearer token verification. A zero Config
// disables authentication.
type Config struct {
	Enabled  bool
	Issuer   string
	Audience string
	JWKSURL  string
}

// Principal is the verified caller attached to a request context.
type Principal struct {
	Issuer   string
	Subject  string
	Username string
	Audience any
	Claims   map[string]any
}
