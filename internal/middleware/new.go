package middleware

import (
	"diagnosis-srv/pkg/log"
	"diagnosis-srv/pkg/scope"
)

type Middleware struct {
	l          log.Logger
	jwtManager scope.Manager
	cookieName string
}

// New creates the HTTP middleware set. cookieName may be empty to accept header tokens only.
func New(l log.Logger, jwtManager scope.Manager, cookieName string) Middleware {
	return Middleware{
		l:          l,
		jwtManager: jwtManager,
		cookieName: cookieName,
	}
}
