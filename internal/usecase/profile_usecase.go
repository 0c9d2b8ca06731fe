package usecase

import (
	"context"

	"github.com/alvarojnq1/2Hackathon-Sao-Camilo/internal/converter"
	"github.com/alvarojnq1/2Hackathon-Sao-Camilo/internal/delivery/dto"
	"github.com/alvarojnq1/2Hackathon-Sao-Camilo/internal/domain/repository"
	"github.com/alvarojnq1/2Hackathon-Sao-Camilo/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type ProfileUsecase interface {
	GetProfile(ctx context.Context, patientID uuid.UUID) (*dto.ProfileResponse, error)
	UpdateProfile(ctx context.Context, patientID uuid.UUID, req *dto.UpdateProfileRequest) (*dto.UpdateProfileResponse, error)
}

type profileUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	patientRepo repository.PatientRepository
	aggregator  service.CarrierAggregator
}

func NewProfileUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	patientRepo repository.PatientRepository,
	aggregator service.CarrierAggregator,
) ProfileUsecase {
	return &profileUsecase{
		db:          db,
		log:         log,
		patientRepo: patientRepo,
		aggregator:  aggregator,
	}
}

func (u *profileUsecase) GetProfile(ctx context.Context, patientID uuid.UUID) (*dto.ProfileResponse, error) {
	patient, err := u.patientRepo.FindByID(ctx, u.db, patientID)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrUserNotFound
	}

	return converter.PatientToProfileResponse(patient), nil
}

func (u *profileUsecase) UpdateProfile(ctx context.Context, patientID uuid.UUID, req *dto.UpdateProfileRequest) (*dto.UpdateProfileResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	patient, err := u.patientRepo.FindByID(ctx, tx, patientID)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrUserNotFound
	}

	dob, err := parseOptionalDate(req.DateOfBirth)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	diagnosticsChanged := false
	if req.PriorDiagnosis != nil && *req.PriorDiagnosis != patient.PriorDiagnosis {
		patient.PriorDiagnosis = *req.PriorDiagnosis
		diagnosticsChanged = true
	}
	if req.GeneticPanel != nil {
		if patient.GeneticPanel == nil || *patient.GeneticPanel != *req.GeneticPanel {
			diagnosticsChanged = true
		}
		patient.GeneticPanel = req.GeneticPanel
	}
	if dob != nil {
		patient.DateOfBirth = dob
	}
	if req.Sex != nil {
		patient.Sex = req.Sex
	}

	if err := u.patientRepo.Update(ctx, tx, patient); err != nil {
		u.log.Warnf("Failed to update profile: %+v", err)
		return nil, err
	}

	// Diagnostic changes shift the family statistic, so the recompute has
	// to land in the same transaction as the profile write.
	if diagnosticsChanged && patient.FamilyID != nil {
		percentage, err := u.aggregator.Recompute(ctx, tx, *patient.FamilyID)
		if err != nil {
			return nil, err
		}
		patient.CarrierPercentage = percentage
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return &dto.UpdateProfileResponse{
		Updated: true,
		Profile: converter.PatientToProfileResponse(patient),
	}, nil
}
