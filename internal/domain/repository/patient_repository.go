package repository

import (
	"context"

	"github.com/alvarojnq1/2Hackathon-Sao-Camilo/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PatientRepository receives the db handle per call so the same methods
// run against the pool or inside an open transaction.
type PatientRepository interface {
	Create(ctx context.Context, db *gorm.DB, patient *entity.Patient) error
	FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Patient, error)
	FindByEmail(ctx context.Context, db *gorm.DB, email string) (*entity.Patient, error)
	FindByFamilyID(ctx context.Context, db *gorm.DB, familyID uuid.UUID) ([]entity.Patient, error)
	FindByFamilyIDForUpdate(ctx context.Context, db *gorm.DB, familyID uuid.UUID) ([]entity.Patient, error)
	Update(ctx context.Context, db *gorm.DB, patient *entity.Patient) error
	UpdateCarrierPercentageByFamily(ctx context.Context, db *gorm.DB, familyID uuid.UUID, percentage float64) error
}
