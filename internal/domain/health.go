package domain

import "context"

// HealthChecker reports whether the storage gateway is reachable.
type HealthChecker interface {
	PingContext(ctx context.Context) error
}
