// Package roster provides the in-memory activity catalog backing the service.
package roster

import (
	"context"
	"sync"

	"example.com/extracurricular/internal/domain"
)

// InMemoryRepository stores the activity catalog in memory. It is seeded
// once at construction and mutated in place for the life of the process.
type InMemoryRepository struct {
	mu         sync.RWMutex
	activities map[string]domain.Activity
}

// NewInMemoryRepository constructs a repository holding the given catalog.
// Later catalog entries with a duplicate name replace earlier ones, keeping
// activity names unique.
func NewInMemoryRepository(catalog []domain.Activity) *InMemoryRepository {
	repo := &InMemoryRepository{activities: make(map[string]domain.Activity, len(catalog))}
	for _, activity := range catalog {
		activity.Participants = append([]string(nil), activity.Participants...)
		repo.activities[activity.Name] = activity
	}
	return repo
}

// Snapshot returns a deep copy of the catalog keyed by activity name.
// Callers never receive a reference into the live participant lists.
func (r *InMemoryRepository) Snapshot(ctx context.Context) (map[string]domain.Activity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string]domain.Activity, len(r.activities))
	for name, activity := range r.activities {
		activity.Participants = append([]string(nil), activity.Participants...)
		out[name] = activity
	}
	return out, nil
}

// Enroll appends the email to the activity roster. The existence, duplicate
// and capacity checks happen under the same lock as the append, so two
// concurrent enrolls cannot both pass the checks.
func (r *InMemoryRepository) Enroll(ctx context.Context, activityName, email string) (*domain.Activity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	activity, ok := r.activities[activityName]
	if !ok {
		return nil, domain.ErrActivityNotFound
	}
	if activity.IsSignedUp(email) {
		return nil, domain.ErrAlreadySignedUp
	}
	if activity.IsFull() {
		return nil, domain.ErrActivityFull
	}

	activity.Participants = append(activity.Participants, email)
	r.activities[activityName] = activity
	return copyActivity(activity), nil
}

// Withdraw removes the single occurrence of the email from the roster.
func (r *InMemoryRepository) Withdraw(ctx context.Context, activityName, email string) (*domain.Activity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	activity, ok := r.activities[activityName]
	if !ok {
		return nil, domain.ErrActivityNotFound
	}
	if !activity.IsSignedUp(email) {
		return nil, domain.ErrNotSignedUp
	}

	participants := make([]string, 0, len(activity.Participants)-1)
	for _, participant := range activity.Participants {
		if participant != email {
			participants = append(participants, participant)
		}
	}
	activity.Participants = participants
	r.activities[activityName] = activity
	return copyActivity(activity), nil
}

func copyActivity(activity domain.Activity) *domain.Activity {
	activity.Participants = append([]string(nil), activity.Participants...)
	return &activity
}
