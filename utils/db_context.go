package utils

import (
	"context"
	"time"
)

// Query timeout tiers. Point lookups by primary key or share code get the
// fast tier; estimate list/insert/update queries get the default tier; the
// nightly session purge gets the slow tier.
const (
	DefaultQueryTimeout = 30 * time.Second
	FastQueryTimeout    = 10 * time.Second
	SlowQueryTimeout    = 60 * time.Second
)

// GetQueryContext derives a query context with the given timeout. A nil
// parent (cron jobs, startup tasks) falls back to context.Background.
func GetQueryContext(parentCtx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if parentCtx == nil {
		parentCtx = context.Background()
	}
	return context.WithTimeout(parentCtx, timeout)
}

func GetDefaultQueryContext(parentCtx context.Context) (context.Context, context.CancelFunc) {
	return GetQueryContext(parentCtx, DefaultQueryTimeout)
}

func GetFastQueryContext(parentCtx context.Context) (context.Context, context.CancelFunc) {
	return GetQueryContext(parentCtx, FastQueryTimeout)
}

func GetSlowQueryContext(parentCtx context.Context) (context.Context, context.CancelFunc) {
	return GetQueryContext(parentCtx, SlowQueryTimeout)
}
