package repository

import (
	"context"
	"errors"

	"github.com/alvarojnq1/2Hackathon-Sao-Camilo/internal/domain/entity"
	domainRepo "github.com/alvarojnq1/2Hackathon-Sao-Camilo/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type professionalRepository struct{}

func NewProfessionalRepository() domainRepo.ProfessionalRepository {
	return &professionalRepository{}
}

func (r *professionalRepository) Create(ctx context.Context, db *gorm.DB, professional *entity.Professional) error {
	return db.WithContext(ctx).Create(professional).Error
}

func (r *professionalRepository) FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Professional, error) {
	var professional entity.Professional
	err := db.WithContext(ctx).Where("id = ?", id).First(&professional).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &professional, nil
}

func (r *professionalRepository) FindByEmail(ctx context.Context, db *gorm.DB, email string) (*entity.Professional, error) {
	var professional entity.Professional
	err := db.WithContext(ctx).Where("email = ?", email).First(&professional).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &professional, nil
}
