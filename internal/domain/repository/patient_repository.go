package repository

import (
	"context"

	"medcare-admin/internal/domain/entity"
)

type PatientRepository interface {
	FindAll(ctx context.Context, filter *entity.PatientFilter) ([]entity.Patient, error)
	FindByID(ctx context.Context, id string) (*entity.Patient, error)
	Count(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status entity.PatientStatus) (int64, error)
}
