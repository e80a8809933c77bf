package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/fcg-platform/users-svc/internal/core/domain"
	"github.com/fcg-platform/users-svc/internal/core/dto"
	"github.com/fcg-platform/users-svc/internal/core/ports"
	"github.com/fcg-platform/users-svc/internal/core/validation"
)

// SequenceAllocator hands out per-aggregate sequence numbers for audit
// events. Allocation is best-effort: on failure the event is appended
// without a sequence.
type SequenceAllocator interface {
	Next(ctx context.Context, aggregateID string) (int64, error)
}

// EventObserver receives events that were successfully appended, off the
// request path. Observation never influences the primary operation.
type EventObserver interface {
	Observe(event domain.DomainEvent)
}

// AuditedUserService decorates a UserService so that every operation,
// including logical failures, appends exactly one DomainEvent. The append is
// awaited inline but best-effort: a failed append is logged and the primary
// result stands. There is no compensating rollback in either direction.
type AuditedUserService struct {
	inner    ports.UserService
	events   ports.EventRepository
	seq      SequenceAllocator
	observer EventObserver
	log      zerolog.Logger
}

// NewAuditedUserService wraps inner with audit emission. seq and observer may
// be nil.
func NewAuditedUserService(
	inner ports.UserService,
	events ports.EventRepository,
	seq SequenceAllocator,
	observer EventObserver,
	log zerolog.Logger,
) *AuditedUserService {
	return &AuditedUserService{
		inner:    inner,
		events:   events,
		seq:      seq,
		observer: observer,
		log:      log,
	}
}

func (s *AuditedUserService) ListAll(ctx context.Context) ([]dto.UserProjection, error) {
	items, err := s.inner.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	s.append(ctx, primitive.NilObjectID, "UsersListed", map[string]any{
		"Count": len(items),
	})
	return items, nil
}

func (s *AuditedUserService) GetByID(ctx context.Context, id primitive.ObjectID) (*dto.UserProjection, error) {
	projected, err := s.inner.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	eventType := "UserFetched"
	if projected == nil {
		eventType = "UserNotFound"
	}
	s.append(ctx, id, eventType, map[string]any{
		"UserId": id.Hex(),
		"Found":  projected != nil,
	})
	return projected, nil
}

func (s *AuditedUserService) Find(ctx context.Context, filter dto.FilterUserDTO) ([]dto.UserProjection, error) {
	items, err := s.inner.Find(ctx, filter)
	if err != nil {
		return nil, err
	}

	s.append(ctx, primitive.NilObjectID, "UserFilterQueried", map[string]any{
		"Filter": filter,
		"Count":  len(items),
	})
	return items, nil
}

func (s *AuditedUserService) Create(ctx context.Context, in dto.CreateUserDTO) (*dto.UserProjection, error) {
	projected, err := s.inner.Create(ctx, in)
	return s.auditCreate(ctx, projected, err, "CreateUserDTO")
}

func (s *AuditedUserService) CreateAdmin(ctx context.Context, in dto.CreateUserAdminDTO) (*dto.UserProjection, error) {
	projected, err := s.inner.CreateAdmin(ctx, in)
	return s.auditCreate(ctx, projected, err, "CreateUserAdminDTO")
}

func (s *AuditedUserService) auditCreate(ctx context.Context, projected *dto.UserProjection, err error, inputShape string) (*dto.UserProjection, error) {
	if err != nil {
		var verr *validation.Error
		if errors.As(err, &verr) {
			s.append(ctx, primitive.NilObjectID, "UserCreateValidationFailed", map[string]any{
				"Errors":     verr.Result.Errors,
				"InputShape": inputShape,
			})
		}
		return nil, err
	}

	// A nil projection without an error still means the insert happened, so
	// the create is recorded either way.
	aggregateID := primitive.NilObjectID
	data := map[string]any{"UserId": nil, "Name": nil, "Email": nil}
	if projected != nil {
		aggregateID = projected.ID
		data = map[string]any{
			"UserId": projected.ID.Hex(),
			"Name":   projected.Name,
			"Email":  projected.Email,
		}
	}
	s.append(ctx, aggregateID, "UserCreated", data)
	return projected, nil
}

func (s *AuditedUserService) Update(ctx context.Context, id primitive.ObjectID, in dto.UpdateUserDTO) error {
	if err := s.inner.Update(ctx, id, in); err != nil {
		return err
	}

	s.append(ctx, id, "UserUpdated", map[string]any{
		"UserId":  id.Hex(),
		"Changes": in,
	})
	return nil
}

func (s *AuditedUserService) Delete(ctx context.Context, id primitive.ObjectID) error {
	if err := s.inner.Delete(ctx, id); err != nil {
		return err
	}

	s.append(ctx, id, "UserDeleted", map[string]any{
		"UserId": id.Hex(),
	})
	return nil
}

func (s *AuditedUserService) GetAdmin(ctx context.Context) (*domain.User, error) {
	admin, err := s.inner.GetAdmin(ctx)
	if err != nil {
		return nil, err
	}

	aggregateID := primitive.NilObjectID
	data := map[string]any{
		"Found":   admin != nil,
		"AdminId": nil,
	}
	eventType := "AdminNotFound"
	if admin != nil {
		aggregateID = admin.ID
		data["AdminId"] = admin.ID.Hex()
		eventType = "AdminFetched"
	}

	s.append(ctx, aggregateID, eventType, data)
	return admin, nil
}

// append constructs, numbers, and writes one audit event. Failures are
// logged, never propagated: the audit trail is best-effort and must not
// abort an operation whose primary effect is already committed.
func (s *AuditedUserService) append(ctx context.Context, aggregateID primitive.ObjectID, eventType string, data map[string]any) {
	event := domain.NewDomainEvent(aggregateID, eventType, data)

	if s.seq != nil {
		if n, err := s.seq.Next(ctx, aggregateID.Hex()); err == nil {
			event.Seq = &n
		} else {
			s.log.Warn().Err(err).Str("type", eventType).Msg("sequence allocation failed, appending without seq")
		}
	}

	if err := s.events.Append(ctx, event); err != nil {
		s.log.Warn().Err(err).
			Str("type", eventType).
			Str("aggregate_id", aggregateID.Hex()).
			Msg("failed to append audit event")
		return
	}

	if s.observer != nil {
		s.observer.Observe(event)
	}
}
