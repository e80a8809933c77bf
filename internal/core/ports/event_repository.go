package ports

import (
	"context"

	"github.com/fcg-platform/users-svc/internal/core/domain"
)

// EventRepository appends records to the append-only audit trail. Events are
// never mutated or deleted once written.
type EventRepository interface {
	Append(ctx context.Context, event domain.DomainEvent) error
}
