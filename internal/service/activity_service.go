package service

import (
	"context"
	"time"

	"medcare-admin/internal/domain/entity"
	"medcare-admin/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

// ActivityService appends entries to the activity feed shown on the dashboard
type ActivityService interface {
	Record(ctx context.Context, action, title, description string) error
}

type activityService struct {
	log          *logrus.Logger
	activityRepo repository.ActivityRepository
	cache        SnapshotCache
	now          func() time.Time
}

func NewActivityService(log *logrus.Logger, activityRepo repository.ActivityRepository, cache SnapshotCache) ActivityService {
	return &activityService{
		log:          log,
		activityRepo: activityRepo,
		cache:        cache,
		now:          time.Now,
	}
}

// Record stores the activity and drops cached dashboards so the feed shows it
func (s *activityService) Record(ctx context.Context, action, title, description string) error {
	activity := &entity.Activity{
		Action:      action,
		Title:       title,
		Description: description,
		CreatedAt:   s.now(),
	}

	if err := s.activityRepo.Create(ctx, activity); err != nil {
		s.log.Warnf("Failed to record activity: %+v", err)
		return err
	}

	if err := s.cache.Invalidate(ctx, DashboardKeyPrefix); err != nil {
		s.log.Warnf("Failed to invalidate dashboard snapshots: %+v", err)
	}

	return nil
}
