package memory

import (
	"context"

	"medcare-admin/internal/domain/entity"
	domainRepo "medcare-admin/internal/domain/repository"
)

type doctorRepository struct {
	doctors []entity.Doctor
}

func NewDoctorRepository(doctors []entity.Doctor) domainRepo.DoctorRepository {
	return &doctorRepository{doctors: clone(doctors)}
}

func (r *doctorRepository) FindAll(ctx context.Context, filter *entity.DoctorFilter) ([]entity.Doctor, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return entity.FilterDoctors(r.doctors, filter), nil
}

func (r *doctorRepository) FindByID(ctx context.Context, id string) (*entity.Doctor, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	for i := range r.doctors {
		if r.doctors[i].ID == id {
			doctor := r.doctors[i]
			return &doctor, nil
		}
	}
	return nil, nil
}

func (r *doctorRepository) Departments(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return entity.Departments(r.doctors), nil
}

func (r *doctorRepository) Count(ctx context.Context) (int64, error) {
	return int64(len(r.doctors)), ctx.Err()
}

func (r *doctorRepository) CountByStatus(ctx context.Context, status entity.DoctorStatus) (int64, error) {
	return count(r.doctors, func(d *entity.Doctor) bool { return d.Status == status }), ctx.Err()
}
