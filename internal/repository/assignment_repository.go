package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/alimaksum8/jadwal-darul-huda-api/internal/models"
	"github.com/alimaksum8/jadwal-darul-huda-api/pkg/kvstore"
)

// KeyAssignments is the store key holding the teaching-assignment roster.
const KeyAssignments = "teachingAssignments"

// AssignmentRepository maps the roster to one JSON array blob.
type AssignmentRepository struct {
	store kvstore.Store
}

// NewAssignmentRepository constructs the repository.
func NewAssignmentRepository(store kvstore.Store) *AssignmentRepository {
	return &AssignmentRepository{store: store}
}

// Get loads the roster. The second return value reports whether any value was
// persisted at all: a stored empty array is an intentional reset and must be
// distinguished from a missing key, which triggers bootstrap derivation.
func (r *AssignmentRepository) Get(ctx context.Context) ([]models.TeachingAssignment, bool, error) {
	raw, err := r.store.Read(ctx, KeyAssignments)
	if err != nil {
		if err == kvstore.ErrKeyNotFound {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("read assignments: %w", err)
	}

	var assignments []models.TeachingAssignment
	if err := json.Unmarshal(raw, &assignments); err != nil {
		return nil, false, fmt.Errorf("decode assignments: %w", err)
	}
	return assignments, true, nil
}

// Save persists the full roster.
func (r *AssignmentRepository) Save(ctx context.Context, assignments []models.TeachingAssignment) error {
	if assignments == nil {
		assignments = []models.TeachingAssignment{}
	}
	raw, err := json.Marshal(assignments)
	if err != nil {
		return fmt.Errorf("encode assignments: %w", err)
	}
	if err := r.store.Write(ctx, KeyAssignments, raw); err != nil {
		return fmt.Errorf("write assignments: %w", err)
	}
	return nil
}

// Remove drops the roster blob entirely, re-arming bootstrap derivation.
func (r *AssignmentRepository) Remove(ctx context.Context) error {
	if err := r.store.Remove(ctx, KeyAssignments); err != nil {
		return fmt.Errorf("remove assignments: %w", err)
	}
	return nil
}
