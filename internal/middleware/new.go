package middleware

import (
	"conversational-todo/pkg/log"
	"conversational-todo/pkg/scope"
)

type Middleware struct {
	l          log.Logger
	jwtManager scope.Manager
	limiter    *rateLimiter
}

func New(l log.Logger, jwtManager scope.Manager, rateLimitPerMin int) Middleware {
	return Middleware{
		l:          l,
		jwtManager: jwtManager,
		limiter:    newRateLimiter(rateLimitPerMin),
	}
}
