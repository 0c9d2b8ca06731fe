package repository

import (
	"context"

	"github.com/alvarojnq1/2Hackathon-Sao-Camilo/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProfessionalRepository interface {
	Create(ctx context.Context, db *gorm.DB, professional *entity.Professional) error
	FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Professional, error)
	FindByEmail(ctx context.Context, db *gorm.DB, email string) (*entity.Professional, error)
}
