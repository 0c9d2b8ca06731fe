package repository

import (
	"context"
	"errors"

	"github.com/alvarojnq1/2Hackathon-Sao-Camilo/internal/domain/entity"
	domainRepo "github.com/alvarojnq1/2Hackathon-Sao-Camilo/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type patientRepository struct{}

func NewPatientRepository() domainRepo.PatientRepository {
	return &patientRepository{}
}

func (r *patientRepository) Create(ctx context.Context, db *gorm.DB, patient *entity.Patient) error {
	return db.WithContext(ctx).Create(patient).Error
}

func (r *patientRepository) FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Patient, error) {
	var patient entity.Patient
	err := db.WithContext(ctx).Where("id = ?", id).First(&patient).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &patient, nil
}

func (r *patientRepository) FindByEmail(ctx context.Context, db *gorm.DB, email string) (*entity.Patient, error) {
	var patient entity.Patient
	err := db.WithContext(ctx).Where("email = ?", email).First(&patient).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &patient, nil
}

func (r *patientRepository) FindByFamilyID(ctx context.Context, db *gorm.DB, familyID uuid.UUID) ([]entity.Patient, error) {
	var patients []entity.Patient
	err := db.WithContext(ctx).Where("family_id = ?", familyID).Find(&patients).Error
	if err != nil {
		return nil, err
	}
	return patients, nil
}

// FindByFamilyIDForUpdate locks the family's member rows so a concurrent
// enrollment cannot interleave with the aggregate recompute.
func (r *patientRepository) FindByFamilyIDForUpdate(ctx context.Context, db *gorm.DB, familyID uuid.UUID) ([]entity.Patient, error) {
	var patients []entity.Patient
	err := db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("family_id = ?", familyID).
		Find(&patients).Error
	if err != nil {
		return nil, err
	}
	return patients, nil
}

func (r *patientRepository) Update(ctx context.Context, db *gorm.DB, patient *entity.Patient) error {
	return db.WithContext(ctx).Save(patient).Error
}

func (r *patientRepository) UpdateCarrierPercentageByFamily(ctx context.Context, db *gorm.DB, familyID uuid.UUID, percentage float64) error {
	return db.WithContext(ctx).
		Model(&entity.Patient{}).
		Where("family_id = ?", familyID).
		Update("carrier_percentage", percentage).Error
}
