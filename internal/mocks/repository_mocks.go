package mocks

import (
	"context"

	"github.com/alvarojnq1/2Hackathon-Sao-Camilo/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type PatientRepositoryMock struct {
	mock.Mock
}

func (m *PatientRepositoryMock) Create(ctx context.Context, db *gorm.DB, patient *entity.Patient) error {
	args := m.Called(ctx, db, patient)
	return args.Error(0)
}

func (m *PatientRepositoryMock) FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Patient, error) {
	args := m.Called(ctx, db, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Patient), args.Error(1)
}

func (m *PatientRepositoryMock) FindByEmail(ctx context.Context, db *gorm.DB, email string) (*entity.Patient, error) {
	args := m.Called(ctx, db, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Patient), args.Error(1)
}

func (m *PatientRepositoryMock) FindByFamilyID(ctx context.Context, db *gorm.DB, familyID uuid.UUID) ([]entity.Patient, error) {
	args := m.Called(ctx, db, familyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Patient), args.Error(1)
}

func (m *PatientRepositoryMock) FindByFamilyIDForUpdate(ctx context.Context, db *gorm.DB, familyID uuid.UUID) ([]entity.Patient, error) {
	args := m.Called(ctx, db, familyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Patient), args.Error(1)
}

func (m *PatientRepositoryMock) Update(ctx context.Context, db *gorm.DB, patient *entity.Patient) error {
	args := m.Called(ctx, db, patient)
	return args.Error(0)
}

func (m *PatientRepositoryMock) UpdateCarrierPercentageByFamily(ctx context.Context, db *gorm.DB, familyID uuid.UUID, percentage float64) error {
	args := m.Called(ctx, db, familyID, percentage)
	return args.Error(0)
}

type FamilyRepositoryMock struct {
	mock.Mock
}

func (m *FamilyRepositoryMock) Create(ctx context.Context, db *gorm.DB, family *entity.Family) error {
	args := m.Called(ctx, db, family)
	return args.Error(0)
}

func (m *FamilyRepositoryMock) FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Family, error) {
	args := m.Called(ctx, db, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Family), args.Error(1)
}

func (m *FamilyRepositoryMock) FindByIDWithMembers(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Family, error) {
	args := m.Called(ctx, db, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Family), args.Error(1)
}

func (m *FamilyRepositoryMock) FindAllWithMembers(ctx context.Context, db *gorm.DB) ([]entity.Family, error) {
	args := m.Called(ctx, db)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Family), args.Error(1)
}

type ProfessionalRepositoryMock struct {
	mock.Mock
}

func (m *ProfessionalRepositoryMock) Create(ctx context.Context, db *gorm.DB, professional *entity.Professional) error {
	args := m.Called(ctx, db, professional)
	return args.Error(0)
}

func (m *ProfessionalRepositoryMock) FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Professional, error) {
	args := m.Called(ctx, db, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Professional), args.Error(1)
}

func (m *ProfessionalRepositoryMock) FindByEmail(ctx context.Context, db *gorm.DB, email string) (*entity.Professional, error) {
	args := m.Called(ctx, db, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Professional), args.Error(1)
}
