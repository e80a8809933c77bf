package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/fcg-platform/users-svc/internal/api/metrics"
	"github.com/fcg-platform/users-svc/internal/core/domain"
)

const eventsCollection = "Events"

// EventRepository appends audit records to the Events collection. Records are
// insert-only; nothing in this service updates or deletes them.
type EventRepository struct {
	coll *mongo.Collection
}

func NewEventRepository(db *mongo.Database) *EventRepository {
	return &EventRepository{coll: db.Collection(eventsCollection)}
}

func (r *EventRepository) Append(ctx context.Context, event domain.DomainEvent) error {
	if _, err := r.coll.InsertOne(ctx, event); err != nil {
		metrics.AuditAppendFailuresTotal.Inc()
		return fmt.Errorf("append event %s: %w", event.Type, err)
	}
	return nil
}
