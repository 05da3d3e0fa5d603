package memory

import (
	"context"
	"sort"
	"sync"

	"medcare-admin/internal/domain/entity"
	domainRepo "medcare-admin/internal/domain/repository"
)

type activityRepository struct {
	mu         sync.RWMutex
	activities []entity.Activity
	nextID     int64
}

func NewActivityRepository(activities []entity.Activity) domainRepo.ActivityRepository {
	r := &activityRepository{activities: clone(activities)}
	for _, a := range r.activities {
		if a.ID > r.nextID {
			r.nextID = a.ID
		}
	}
	return r
}

func (r *activityRepository) Create(ctx context.Context, activity *entity.Activity) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	activity.ID = r.nextID
	r.activities = append(r.activities, *activity)
	return nil
}

// FindRecent returns up to limit activities, newest first. A non-positive limit returns all of them.
func (r *activityRepository) FindRecent(ctx context.Context, limit int) ([]entity.Activity, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	recent := clone(r.activities)
	r.mu.RUnlock()

	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].CreatedAt.After(recent[j].CreatedAt)
	})
	if limit > 0 && len(recent) > limit {
		recent = recent[:limit]
	}
	return recent, nil
}
