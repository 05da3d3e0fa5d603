package usecase

import (
	"context"
	"time"

	"medcare-admin/internal/converter"
	"medcare-admin/internal/delivery/dto"
	"medcare-admin/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

// DefaultActivityLimit is the number of feed entries shown on the dashboard
const DefaultActivityLimit = 4

type ActivityUsecase interface {
	GetRecent(ctx context.Context, limit int) ([]dto.ActivityResponse, error)
}

type activityUsecase struct {
	log          *logrus.Logger
	activityRepo repository.ActivityRepository
	now          func() time.Time
}

func NewActivityUsecase(log *logrus.Logger, activityRepo repository.ActivityRepository) ActivityUsecase {
	return &activityUsecase{
		log:          log,
		activityRepo: activityRepo,
		now:          time.Now,
	}
}

func (u *activityUsecase) GetRecent(ctx context.Context, limit int) ([]dto.ActivityResponse, error) {
	if limit < 1 {
		limit = DefaultActivityLimit
	}

	activities, err := u.activityRepo.FindRecent(ctx, limit)
	if err != nil {
		u.log.Warnf("Failed to find activities: %+v", err)
		return nil, err
	}

	return converter.ActivitiesToResponses(activities, u.now()), nil
}
