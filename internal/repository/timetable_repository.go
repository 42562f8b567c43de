package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/alimaksum8/jadwal-darul-huda-api/internal/models"
	"github.com/alimaksum8/jadwal-darul-huda-api/internal/seed"
	"github.com/alimaksum8/jadwal-darul-huda-api/pkg/kvstore"
)

// Store keys for the three persisted blobs.
const (
	KeyMTsSchedule = "mtsSchedule"
	KeyMASchedule  = "maSchedule"
)

// TimetableRepository maps each tier's timetable to one JSON blob in the
// key-value store.
type TimetableRepository struct {
	store kvstore.Store
}

// NewTimetableRepository constructs the repository.
func NewTimetableRepository(store kvstore.Store) *TimetableRepository {
	return &TimetableRepository{store: store}
}

func scheduleKey(tier models.Tier) string {
	if tier == models.TierMTs {
		return KeyMTsSchedule
	}
	return KeyMASchedule
}

func seedFor(tier models.Tier) models.Timetable {
	if tier == models.TierMTs {
		return seed.MTsTimetable()
	}
	return seed.MATimetable()
}

// Get loads a tier's timetable. An absent or empty blob falls back to the
// seed timetable without persisting it; the seed is only written once a
// mutation commits.
func (r *TimetableRepository) Get(ctx context.Context, tier models.Tier) (models.Timetable, error) {
	raw, err := r.store.Read(ctx, scheduleKey(tier))
	if err != nil {
		if err == kvstore.ErrKeyNotFound {
			return seedFor(tier), nil
		}
		return nil, fmt.Errorf("read %s timetable: %w", tier, err)
	}

	var timetable models.Timetable
	if err := json.Unmarshal(raw, &timetable); err != nil {
		return nil, fmt.Errorf("decode %s timetable: %w", tier, err)
	}
	if len(timetable) == 0 {
		return seedFor(tier), nil
	}
	return timetable, nil
}

// Save persists the full timetable for a tier.
func (r *TimetableRepository) Save(ctx context.Context, tier models.Tier, timetable models.Timetable) error {
	raw, err := json.Marshal(timetable)
	if err != nil {
		return fmt.Errorf("encode %s timetable: %w", tier, err)
	}
	if err := r.store.Write(ctx, scheduleKey(tier), raw); err != nil {
		return fmt.Errorf("write %s timetable: %w", tier, err)
	}
	return nil
}

// Remove drops the persisted blob so subsequent reads fall back to the seed.
func (r *TimetableRepository) Remove(ctx context.Context, tier models.Tier) error {
	if err := r.store.Remove(ctx, scheduleKey(tier)); err != nil {
		return fmt.Errorf("remove %s timetable: %w", tier, err)
	}
	return nil
}
