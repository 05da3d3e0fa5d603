package repository

import (
	"context"

	"medcare-admin/internal/domain/entity"
)

type DoctorRepository interface {
	FindAll(ctx context.Context, filter *entity.DoctorFilter) ([]entity.Doctor, error)
	FindByID(ctx context.Context, id string) (*entity.Doctor, error)
	// Departments returns the distinct departments in directory order
	Departments(ctx context.Context) ([]string, error)
	Count(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status entity.DoctorStatus) (int64, error)
}
