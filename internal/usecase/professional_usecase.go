package usecase

import (
	"context"

	"github.com/alvarojnq1/2Hackathon-Sao-Camilo/internal/converter"
	"github.com/alvarojnq1/2Hackathon-Sao-Camilo/internal/delivery/dto"
	"github.com/alvarojnq1/2Hackathon-Sao-Camilo/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// ProfessionalUsecase exposes the read-only views granted to health
// professionals.
type ProfessionalUsecase interface {
	ListFamilies(ctx context.Context) (*dto.FamilyListResponse, error)
}

type professionalUsecase struct {
	db         *gorm.DB
	log        *logrus.Logger
	familyRepo repository.FamilyRepository
}

func NewProfessionalUsecase(db *gorm.DB, log *logrus.Logger, familyRepo repository.FamilyRepository) ProfessionalUsecase {
	return &professionalUsecase{
		db:         db,
		log:        log,
		familyRepo: familyRepo,
	}
}

func (u *professionalUsecase) ListFamilies(ctx context.Context) (*dto.FamilyListResponse, error) {
	families, err := u.familyRepo.FindAllWithMembers(ctx, u.db)
	if err != nil {
		u.log.Warnf("Failed to list families: %+v", err)
		return nil, err
	}

	return converter.FamiliesToListResponse(families), nil
}
