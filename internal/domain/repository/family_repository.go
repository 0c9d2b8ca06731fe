package repository

import (
	"context"

	"github.com/alvarojnq1/2Hackathon-Sao-Camilo/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FamilyRepository interface {
	Create(ctx context.Context, db *gorm.DB, family *entity.Family) error
	FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Family, error)
	FindByIDWithMembers(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Family, error)
	FindAllWithMembers(ctx context.Context, db *gorm.DB) ([]entity.Family, error)
}
