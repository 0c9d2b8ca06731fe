package repository

import (
	"context"
	"errors"

	"github.com/alvarojnq1/2Hackathon-Sao-Camilo/internal/domain/entity"
	domainRepo "github.com/alvarojnq1/2Hackathon-Sao-Camilo/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type familyRepository struct{}

func NewFamilyRepository() domainRepo.FamilyRepository {
	return &familyRepository{}
}

func (r *familyRepository) Create(ctx context.Context, db *gorm.DB, family *entity.Family) error {
	return db.WithContext(ctx).Create(family).Error
}

func (r *familyRepository) FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Family, error) {
	var family entity.Family
	err := db.WithContext(ctx).Where("id = ?", id).First(&family).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &family, nil
}

func (r *familyRepository) FindByIDWithMembers(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Family, error) {
	var family entity.Family
	err := db.WithContext(ctx).Preload("Members").Where("id = ?", id).First(&family).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &family, nil
}

func (r *familyRepository) FindAllWithMembers(ctx context.Context, db *gorm.DB) ([]entity.Family, error) {
	var families []entity.Family
	err := db.WithContext(ctx).Preload("Members").Find(&families).Error
	if err != nil {
		return nil, err
	}
	return families, nil
}
