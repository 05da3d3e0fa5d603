package usecase

import (
	"context"
	"errors"

	"medcare-admin/internal/converter"
	"medcare-admin/internal/delivery/dto"
	"medcare-admin/internal/domain/entity"
	"medcare-admin/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

var (
	ErrDoctorNotFound = errors.New("doctor not found")
)

type DoctorUsecase interface {
	GetAll(ctx context.Context, query *dto.DoctorListQuery) (*dto.DoctorListResponse, error)
	GetByID(ctx context.Context, id string) (*dto.DoctorResponse, error)
	GetDepartments(ctx context.Context) (*dto.DepartmentListResponse, error)
}

type doctorUsecase struct {
	log        *logrus.Logger
	doctorRepo repository.DoctorRepository
}

func NewDoctorUsecase(log *logrus.Logger, doctorRepo repository.DoctorRepository) DoctorUsecase {
	return &doctorUsecase{
		log:        log,
		doctorRepo: doctorRepo,
	}
}

func (u *doctorUsecase) GetAll(ctx context.Context, query *dto.DoctorListQuery) (*dto.DoctorListResponse, error) {
	doctors, err := u.doctorRepo.FindAll(ctx, &entity.DoctorFilter{
		Query:      query.Search,
		Department: query.Department,
	})
	if err != nil {
		u.log.Warnf("Failed to find doctors: %+v", err)
		return nil, err
	}

	return &dto.DoctorListResponse{
		Doctors: converter.DoctorsToResponses(doctors),
		Total:   len(doctors),
	}, nil
}

func (u *doctorUsecase) GetByID(ctx context.Context, id string) (*dto.DoctorResponse, error) {
	doctor, err := u.doctorRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	return converter.DoctorToResponse(doctor), nil
}

func (u *doctorUsecase) GetDepartments(ctx context.Context) (*dto.DepartmentListResponse, error) {
	departments, err := u.doctorRepo.Departments(ctx)
	if err != nil {
		u.log.Warnf("Failed to list departments: %+v", err)
		return nil, err
	}

	return &dto.DepartmentListResponse{Departments: departments}, nil
}
