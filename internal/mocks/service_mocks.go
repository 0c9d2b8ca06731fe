package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type CarrierAggregatorMock struct {
	mock.Mock
}

func (m *CarrierAggregatorMock) Recompute(ctx context.Context, db *gorm.DB, familyID uuid.UUID) (float64, error) {
	args := m.Called(ctx, db, familyID)
	return args.Get(0).(float64), args.Error(1)
}

type MailServiceMock struct {
	mock.Mock
}

func (m *MailServiceMock) SendTemporaryPassword(ctx context.Context, email, name, password string) bool {
	args := m.Called(ctx, email, name, password)
	return args.Bool(0)
}
