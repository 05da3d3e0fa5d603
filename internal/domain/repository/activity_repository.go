package repository

import (
	"context"

	"medcare-admin/internal/domain/entity"
)

type ActivityRepository interface {
	Create(ctx context.Context, activity *entity.Activity) error
	FindRecent(ctx context.Context, limit int) ([]entity.Activity, error)
}
