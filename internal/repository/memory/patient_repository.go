// Package memory implements the domain repositories over fixed in-process
// collections. Records are copied on the way in and out so callers cannot
// mutate the shared snapshot.
package memory

import (
	"context"

	"medcare-admin/internal/domain/entity"
	domainRepo "medcare-admin/internal/domain/repository"
)

type patientRepository struct {
	patients []entity.Patient
}

func NewPatientRepository(patients []entity.Patient) domainRepo.PatientRepository {
	return &patientRepository{patients: clone(patients)}
}

func (r *patientRepository) FindAll(ctx context.Context, filter *entity.PatientFilter) ([]entity.Patient, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return entity.FilterPatients(r.patients, filter), nil
}

func (r *patientRepository) FindByID(ctx context.Context, id string) (*entity.Patient, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	for i := range r.patients {
		if r.patients[i].ID == id {
			patient := r.patients[i]
			return &patient, nil
		}
	}
	return nil, nil
}

func (r *patientRepository) Count(ctx context.Context) (int64, error) {
	return int64(len(r.patients)), ctx.Err()
}

func (r *patientRepository) CountByStatus(ctx context.Context, status entity.PatientStatus) (int64, error) {
	return count(r.patients, func(p *entity.Patient) bool { return p.Status == status }), ctx.Err()
}

func clone[T any](items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	return out
}

func count[T any](items []T, match func(*T) bool) int64 {
	var n int64
	for i := range items {
		if match(&items[i]) {
			n++
		}
	}
	return n
}
