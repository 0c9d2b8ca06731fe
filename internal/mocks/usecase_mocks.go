package mocks

import (
	"context"

	"github.com/alvarojnq1/2Hackathon-Sao-Camilo/internal/delivery/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type AuthUsecaseMock struct {
	mock.Mock
}

func (m *AuthUsecaseMock) RegisterPatient(ctx context.Context, req *dto.RegisterPatientRequest) (*dto.AuthResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.AuthResponse), args.Error(1)
}

func (m *AuthUsecaseMock) RegisterProfessional(ctx context.Context, req *dto.RegisterProfessionalRequest) (*dto.AuthResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.AuthResponse), args.Error(1)
}

func (m *AuthUsecaseMock) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.AuthResponse), args.Error(1)
}

func (m *AuthUsecaseMock) Logout(ctx context.Context, accessTokenID, refreshTokenID string) error {
	args := m.Called(ctx, accessTokenID, refreshTokenID)
	return args.Error(0)
}

func (m *AuthUsecaseMock) RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.TokenResponse), args.Error(1)
}

func (m *AuthUsecaseMock) GetCurrentUser(ctx context.Context, userID uuid.UUID, role string) (*dto.UserResponse, error) {
	args := m.Called(ctx, userID, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.UserResponse), args.Error(1)
}

type FamilyUsecaseMock struct {
	mock.Mock
}

func (m *FamilyUsecaseMock) CreateFamily(ctx context.Context, callerID uuid.UUID, req *dto.CreateFamilyRequest) (*dto.FamilyResponse, error) {
	args := m.Called(ctx, callerID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.FamilyResponse), args.Error(1)
}

func (m *FamilyUsecaseMock) EnrollMember(ctx context.Context, callerID uuid.UUID, req *dto.EnrollMemberRequest) (*dto.EnrollMemberResponse, error) {
	args := m.Called(ctx, callerID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.EnrollMemberResponse), args.Error(1)
}

func (m *FamilyUsecaseMock) LeaveFamily(ctx context.Context, callerID uuid.UUID) error {
	args := m.Called(ctx, callerID)
	return args.Error(0)
}

func (m *FamilyUsecaseMock) GetMyFamily(ctx context.Context, callerID uuid.UUID) (*dto.MyFamilyResponse, error) {
	args := m.Called(ctx, callerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.MyFamilyResponse), args.Error(1)
}

type ProfileUsecaseMock struct {
	mock.Mock
}

func (m *ProfileUsecaseMock) GetProfile(ctx context.Context, patientID uuid.UUID) (*dto.ProfileResponse, error) {
	args := m.Called(ctx, patientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ProfileResponse), args.Error(1)
}

func (m *ProfileUsecaseMock) UpdateProfile(ctx context.Context, patientID uuid.UUID, req *dto.UpdateProfileRequest) (*dto.UpdateProfileResponse, error) {
	args := m.Called(ctx, patientID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.UpdateProfileResponse), args.Error(1)
}

type ProfessionalUsecaseMock struct {
	mock.Mock
}

func (m *ProfessionalUsecaseMock) ListFamilies(ctx context.Context) (*dto.FamilyListResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.FamilyListResponse), args.Error(1)
}
