package ports

import "context"

// StatsClient is the narrow interface to the external hit/view statistics
// service. Hit is fire-and-forget, Views is a read-only aggregation.
type StatsClient interface {
	Hit(ctx context.Context, uri, ip string)
	Views(ctx context.Context, eventIDs []string) (map[string]int64, error)
}
