package usecase

import (
	"context"
	"errors"

	"medcare-admin/internal/converter"
	"medcare-admin/internal/delivery/dto"
	"medcare-admin/internal/domain/entity"
	"medcare-admin/internal/domain/repository"
	"medcare-admin/pkg/pagination"

	"github.com/sirupsen/logrus"
)

var (
	ErrPatientNotFound = errors.New("patient not found")
)

type PatientUsecase interface {
	GetPage(ctx context.Context, query *dto.PatientListQuery) (*dto.PatientPageResponse, error)
	GetByID(ctx context.Context, id string) (*dto.PatientResponse, error)
}

type patientUsecase struct {
	log         *logrus.Logger
	patientRepo repository.PatientRepository
	pageSize    int
}

func NewPatientUsecase(log *logrus.Logger, patientRepo repository.PatientRepository, pageSize int) PatientUsecase {
	return &patientUsecase{
		log:         log,
		patientRepo: patientRepo,
		pageSize:    pageSize,
	}
}

// GetPage searches the patient table and returns one fixed-size page of the matches.
// A page beyond the last one is returned empty.
func (u *patientUsecase) GetPage(ctx context.Context, query *dto.PatientListQuery) (*dto.PatientPageResponse, error) {
	patients, err := u.patientRepo.FindAll(ctx, &entity.PatientFilter{Query: query.Search})
	if err != nil {
		u.log.Warnf("Failed to find patients: %+v", err)
		return nil, err
	}

	page := pagination.Paginate(patients, u.pageSize, query.Page)
	return converter.PatientPageToResponse(page, pagination.DefaultWindow), nil
}

func (u *patientUsecase) GetByID(ctx context.Context, id string) (*dto.PatientResponse, error) {
	patient, err := u.patientRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	return converter.PatientToResponse(patient), nil
}
