package redis

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// SequenceAllocator hands out monotonically increasing sequence numbers per
// aggregate, backed by Redis INCR. Sequence numbers are advisory ordering
// hints on audit events; callers treat allocation failures as "no seq".
// Key format: events:seq:<aggregate_id>
type SequenceAllocator struct {
	client *redis.Client
}

func NewSequenceAllocator(client *redis.Client) *SequenceAllocator {
	return &SequenceAllocator{client: client}
}

// Next returns the next sequence number for the aggregate. The counter for
// the zero aggregate id is shared by all non-entity-scoped events.
func (a *SequenceAllocator) Next(ctx context.Context, aggregateID string) (int64, error) {
	n, err := a.client.Incr(ctx, a.key(aggregateID)).Result()
	if err != nil {
		return 0, fmt.Errorf("allocate seq: %w", err)
	}
	return n, nil
}

func (a *SequenceAllocator) key(aggregateID string) string {
	return "events:seq:" + aggregateID
}
