// Package domain defines the business logic for the extracurricular service.
package domain

import (
	"context"
	"errors"
	"strings"
	"time"

	"example.com/extracurricular/internal/events"
	"example.com/extracurricular/internal/observability"
)

var (
	// ErrActivityNotFound is returned when the named activity does not exist.
	ErrActivityNotFound = errors.New("activity not found")
	// ErrAlreadySignedUp indicates the student is already on the roster.
	ErrAlreadySignedUp = errors.New("student is already signed up")
	// ErrNotSignedUp indicates the student is not on the roster.
	ErrNotSignedUp = errors.New("student is not signed up")
	// ErrActivityFull indicates the roster has reached max participants.
	ErrActivityFull = errors.New("activity is full")
	// ErrInvalidInput indicates a missing activity name or email.
	ErrInvalidInput = errors.New("activity name and email are required")
)

// RosterRepository captures roster storage operations. Implementations must
// apply each mutation's checks and the mutation itself atomically.
type RosterRepository interface {
	Snapshot(ctx context.Context) (map[string]Activity, error)
	Enroll(ctx context.Context, activityName, email string) (*Activity, error)
	Withdraw(ctx context.Context, activityName, email string) (*Activity, error)
}

// Publisher emits roster change events to downstream consumers.
type Publisher interface {
	Publish(ctx context.Context, event events.RosterChanged) error
}

// Service orchestrates enrollment workflows.
type Service struct {
	repo      RosterRepository
	publisher Publisher
}

// NewService constructs a Service. publisher may be nil to disable events.
func NewService(repo RosterRepository, publisher Publisher) *Service {
	return &Service{repo: repo, publisher: publisher}
}

// ListActivities returns the full catalog keyed by activity name.
func (s *Service) ListActivities(ctx context.Context) (map[string]Activity, error) {
	return s.repo.Snapshot(ctx)
}

// Signup adds the student's email to the activity roster.
func (s *Service) Signup(ctx context.Context, activityName, email string) (*Activity, error) {
	if err := validateInput(activityName, email); err != nil {
		return nil, err
	}

	activity, err := s.repo.Enroll(ctx, activityName, email)
	if err != nil {
		observability.RecordRejection(rejectionReason(err))
		return nil, err
	}

	observability.RecordSignup(activity.Name, len(activity.Participants))
	s.publish(events.RosterChanged{
		Activity:         activity.Name,
		Email:            email,
		Action:           events.ActionSignup,
		ParticipantCount: len(activity.Participants),
		OccurredAt:       time.Now().UTC(),
	})
	return activity, nil
}

// Unregister removes the student's email from the activity roster.
func (s *Service) Unregister(ctx context.Context, activityName, email string) (*Activity, error) {
	if err := validateInput(activityName, email); err != nil {
		return nil, err
	}

	activity, err := s.repo.Withdraw(ctx, activityName, email)
	if err != nil {
		observability.RecordRejection(rejectionReason(err))
		return nil, err
	}

	observability.RecordUnregistration(activity.Name, len(activity.Participants))
	s.publish(events.RosterChanged{
		Activity:         activity.Name,
		Email:            email,
		Action:           events.ActionUnregister,
		ParticipantCount: len(activity.Participants),
		OccurredAt:       time.Now().UTC(),
	})
	return activity, nil
}

// validateInput rejects empty names and emails. Email format is deliberately
// unchecked; any non-empty string is accepted.
func validateInput(activityName, email string) error {
	if strings.TrimSpace(activityName) == "" || strings.TrimSpace(email) == "" {
		return ErrInvalidInput
	}
	return nil
}

// publish delivers the event best-effort. Roster state is the source of
// truth, so a publish failure never fails the operation.
func (s *Service) publish(event events.RosterChanged) {
	if s.publisher == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.publisher.Publish(ctx, event); err != nil {
			observability.RecordPublishError()
		}
	}()
}

func rejectionReason(err error) string {
	switch {
	case errors.Is(err, ErrActivityNotFound):
		return "activity_not_found"
	case errors.Is(err, ErrAlreadySignedUp):
		return "already_signed_up"
	case errors.Is(err, ErrNotSignedUp):
		return "not_signed_up"
	case errors.Is(err, ErrActivityFull):
		return "activity_full"
	default:
		return "invalid_input"
	}
}
