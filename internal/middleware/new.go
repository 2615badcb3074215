package middleware

import (
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"commute-assistant/config"
	pkgLog "commute-assistant/pkg/log"
)

type Middleware struct {
	l   pkgLog.Logger
	cfg config.RateLimitConfig

	mu       *sync.Mutex
	limiters *expirable.LRU[string, *rate.Limiter]
}

func New(l pkgLog.Logger, cfg config.RateLimitConfig) Middleware {
	return Middleware{
		l:        l,
		cfg:      cfg,
		mu:       &sync.Mutex{},
		limiters: expirable.NewLRU[string, *rate.Limiter](4096, nil, 10*time.Minute),
	}
}
