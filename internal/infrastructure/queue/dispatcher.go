// Package queue moves audit observability off the request path. The primary
// event append is synchronous; this dispatcher only receives events that were
// already written and records metrics and log lines for them.
package queue

import (
	"context"
	"hash/fnv"

	"github.com/rs/zerolog"

	"github.com/fcg-platform/users-svc/internal/api/metrics"
	"github.com/fcg-platform/users-svc/internal/core/domain"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// Recorder consumes one appended event.
type Recorder interface {
	Record(event domain.DomainEvent)
}

// Dispatcher routes appended events to a fixed set of workers using
// consistent hashing on the aggregate id, so observations for one aggregate
// stay ordered.
type Dispatcher struct {
	workers  []chan domain.DomainEvent
	recorder Recorder
	log      zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers. If
// numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, recorder Recorder, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers:  make([]chan domain.DomainEvent, numWorkers),
		recorder: recorder,
		log:      log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan domain.DomainEvent, channelBuffer)
	}
	return d
}

// Start launches the worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Observe hands an event to the worker responsible for its aggregate. When
// the worker's buffer is full the event is dropped with a warning rather
// than blocking the caller.
func (d *Dispatcher) Observe(event domain.DomainEvent) {
	select {
	case d.workers[d.shardIndex(event.AggregateID.Hex())] <- event:
	default:
		d.log.Warn().Str("type", event.Type).Msg("audit observer buffer full, event observation dropped")
	}
}

func (d *Dispatcher) shardIndex(aggregateID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(aggregateID))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan domain.DomainEvent) {
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-ch:
			if !ok {
				return
			}
			d.recorder.Record(event)
		}
	}
}

// AuditRecorder is the default Recorder: a counter per event type and a
// structured log line per event.
type AuditRecorder struct {
	log zerolog.Logger
}

func NewAuditRecorder(log zerolog.Logger) *AuditRecorder {
	return &AuditRecorder{log: log}
}

func (r *AuditRecorder) Record(event domain.DomainEvent) {
	metrics.AuditEventsTotal.WithLabelValues(event.Type).Inc()

	entry := r.log.Info().
		Str("type", event.Type).
		Str("aggregate_id", event.AggregateID.Hex()).
		Time("timestamp", event.Timestamp)
	if event.Seq != nil {
		entry = entry.Int64("seq", *event.Seq)
	}
	entry.Msg("audit event")
}
