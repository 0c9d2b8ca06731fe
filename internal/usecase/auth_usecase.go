package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alvarojnq1/2Hackathon-Sao-Camilo/internal/converter"
	"github.com/alvarojnq1/2Hackathon-Sao-Camilo/internal/delivery/dto"
	"github.com/alvarojnq1/2Hackathon-Sao-Camilo/internal/domain/entity"
	"github.com/alvarojnq1/2Hackathon-Sao-Camilo/internal/domain/repository"
	"github.com/alvarojnq1/2Hackathon-Sao-Camilo/pkg/jwt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrTokenRevoked       = errors.New("token has been revoked")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidDateFormat  = errors.New("invalid date format, use YYYY-MM-DD")
)

type AuthUsecase interface {
	RegisterPatient(ctx context.Context, req *dto.RegisterPatientRequest) (*dto.AuthResponse, error)
	RegisterProfessional(ctx context.Context, req *dto.RegisterProfessionalRequest) (*dto.AuthResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
	Logout(ctx context.Context, accessTokenID, refreshTokenID string) error
	RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error)
	GetCurrentUser(ctx context.Context, userID uuid.UUID, role string) (*dto.UserResponse, error)
}

type authUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	patientRepo      repository.PatientRepository
	professionalRepo repository.ProfessionalRepository
	familyRepo       repository.FamilyRepository
	jwtService       *jwt.JWTService
	redisClient      *redis.Client
}

func NewAuthUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	patientRepo repository.PatientRepository,
	professionalRepo repository.ProfessionalRepository,
	familyRepo repository.FamilyRepository,
	jwtService *jwt.JWTService,
	redisClient *redis.Client,
) AuthUsecase {
	return &authUsecase{
		db:               db,
		log:              log,
		patientRepo:      patientRepo,
		professionalRepo: professionalRepo,
		familyRepo:       familyRepo,
		jwtService:       jwtService,
		redisClient:      redisClient,
	}
}

func (u *authUsecase) RegisterPatient(ctx context.Context, req *dto.RegisterPatientRequest) (*dto.AuthResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	dob, err := parseOptionalDate(req.DateOfBirth)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	// Hash password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	// Patients register without a family; affiliation happens later
	// through the family endpoints.
	patient := &entity.Patient{
		Name:        req.Name,
		Email:       &req.Email,
		Password:    string(hashedPassword),
		DateOfBirth: dob,
		Sex:         req.Sex,
	}

	if err := u.patientRepo.Create(ctx, tx, patient); err != nil {
		if isDuplicateKeyError(err, "email") {
			return nil, ErrEmailAlreadyExists
		}
		u.log.Warnf("Failed to create patient: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return u.issueTokens(ctx, patient.ID, req.Email, entity.RolePatient, nil, converter.PatientToUserResponse(patient))
}

func (u *authUsecase) RegisterProfessional(ctx context.Context, req *dto.RegisterProfessionalRequest) (*dto.AuthResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	professional := &entity.Professional{
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hashedPassword),
	}

	if err := u.professionalRepo.Create(ctx, tx, professional); err != nil {
		if isDuplicateKeyError(err, "email") {
			return nil, ErrEmailAlreadyExists
		}
		u.log.Warnf("Failed to create professional: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return u.issueTokens(ctx, professional.ID, professional.Email, entity.RoleProfessional, nil, converter.ProfessionalToUserResponse(professional))
}

func (u *authUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	// Patients and professionals share the login endpoint; patients are
	// looked up first.
	patient, err := u.patientRepo.FindByEmail(ctx, u.db, req.Email)
	if err != nil {
		u.log.Warnf("Failed to find patient by email: %+v", err)
		return nil, err
	}

	if patient != nil {
		if err := bcrypt.CompareHashAndPassword([]byte(patient.Password), []byte(req.Password)); err != nil {
			return nil, ErrInvalidCredentials
		}

		if patient.FamilyID != nil {
			family, err := u.familyRepo.FindByID(ctx, u.db, *patient.FamilyID)
			if err != nil {
				u.log.Warnf("Failed to load patient family: %+v", err)
				return nil, err
			}
			patient.Family = family
		}

		return u.issueTokens(ctx, patient.ID, req.Email, entity.RolePatient, patient.FamilyID, converter.PatientToUserResponse(patient))
	}

	professional, err := u.professionalRepo.FindByEmail(ctx, u.db, req.Email)
	if err != nil {
		u.log.Warnf("Failed to find professional by email: %+v", err)
		return nil, err
	}
	if professional == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(professional.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return u.issueTokens(ctx, professional.ID, professional.Email, entity.RoleProfessional, nil, converter.ProfessionalToUserResponse(professional))
}

func (u *authUsecase) Logout(ctx context.Context, accessTokenID, refreshTokenID string) error {
	accessPattern := fmt.Sprintf("access_token:*:%s", accessTokenID)
	refreshPattern := fmt.Sprintf("refresh_token:*:%s", refreshTokenID)

	accessKeys, err := u.redisClient.Keys(ctx, accessPattern).Result()
	if err != nil {
		u.log.Warnf("Failed to get access token keys: %+v", err)
		return err
	}
	if len(accessKeys) > 0 {
		if err := u.redisClient.Del(ctx, accessKeys...).Err(); err != nil {
			u.log.Warnf("Failed to delete access token: %+v", err)
			return err
		}
	}

	if refreshTokenID == "" {
		return nil
	}

	refreshKeys, err := u.redisClient.Keys(ctx, refreshPattern).Result()
	if err != nil {
		u.log.Warnf("Failed to get refresh token keys: %+v", err)
		return err
	}
	if len(refreshKeys) > 0 {
		if err := u.redisClient.Del(ctx, refreshKeys...).Err(); err != nil {
			u.log.Warnf("Failed to delete refresh token: %+v", err)
			return err
		}
	}

	return nil
}

func (u *authUsecase) RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error) {
	claims, err := u.jwtService.ValidateToken(req.RefreshToken)
	if err != nil {
		return nil, ErrInvalidToken
	}

	if claims.TokenType != jwt.RefreshToken {
		return nil, ErrInvalidToken
	}

	refreshKey := fmt.Sprintf("refresh_token:%s:%s", claims.UserID.String(), claims.TokenID)
	exists, err := u.redisClient.Exists(ctx, refreshKey).Result()
	if err != nil {
		u.log.Warnf("Failed to check refresh token in Redis: %+v", err)
		return nil, err
	}
	if exists == 0 {
		return nil, ErrTokenRevoked
	}

	// Rotate: the old refresh token is single use.
	if err := u.redisClient.Del(ctx, refreshKey).Err(); err != nil {
		u.log.Warnf("Failed to delete old refresh token: %+v", err)
		return nil, err
	}

	resp, err := u.issueTokens(ctx, claims.UserID, claims.Email, claims.Role, claims.FamilyID, nil)
	if err != nil {
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken:  resp.Token,
		RefreshToken: resp.RefreshToken,
		ExpiresIn:    resp.ExpiresIn,
	}, nil
}

func (u *authUsecase) GetCurrentUser(ctx context.Context, userID uuid.UUID, role string) (*dto.UserResponse, error) {
	if role == entity.RoleProfessional {
		professional, err := u.professionalRepo.FindByID(ctx, u.db, userID)
		if err != nil {
			u.log.Warnf("Failed to find professional by ID: %+v", err)
			return nil, err
		}
		if professional == nil {
			return nil, ErrUserNotFound
		}
		return converter.ProfessionalToUserResponse(professional), nil
	}

	patient, err := u.patientRepo.FindByID(ctx, u.db, userID)
	if err != nil {
		u.log.Warnf("Failed to find patient by ID: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrUserNotFound
	}

	if patient.FamilyID != nil {
		family, err := u.familyRepo.FindByID(ctx, u.db, *patient.FamilyID)
		if err != nil {
			u.log.Warnf("Failed to load patient family: %+v", err)
			return nil, err
		}
		patient.Family = family
	}

	return converter.PatientToUserResponse(patient), nil
}

// issueTokens generates the access/refresh pair and registers both in
// Redis so they can be revoked before expiry.
func (u *authUsecase) issueTokens(ctx context.Context, userID uuid.UUID, email, role string, familyID *uuid.UUID, user *dto.UserResponse) (*dto.AuthResponse, error) {
	accessToken, accessTokenID, err := u.jwtService.GenerateAccessToken(userID, email, role, familyID)
	if err != nil {
		u.log.Warnf("Failed to generate access token: %+v", err)
		return nil, err
	}

	refreshToken, refreshTokenID, err := u.jwtService.GenerateRefreshToken(userID, email, role, familyID)
	if err != nil {
		u.log.Warnf("Failed to generate refresh token: %+v", err)
		return nil, err
	}

	accessKey := fmt.Sprintf("access_token:%s:%s", userID.String(), accessTokenID)
	refreshKey := fmt.Sprintf("refresh_token:%s:%s", userID.String(), refreshTokenID)

	if err := u.redisClient.Set(ctx, accessKey, "valid", u.jwtService.GetAccessExpiry()).Err(); err != nil {
		u.log.Warnf("Failed to store access token in Redis: %+v", err)
		return nil, err
	}

	if err := u.redisClient.Set(ctx, refreshKey, "valid", u.jwtService.GetRefreshExpiry()).Err(); err != nil {
		u.log.Warnf("Failed to store refresh token in Redis: %+v", err)
		return nil, err
	}

	return &dto.AuthResponse{
		Token:        accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(u.jwtService.GetAccessExpiry().Seconds()),
		User:         user,
	}, nil
}

func parseOptionalDate(value *string) (*time.Time, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	parsed, err := time.Parse("2006-01-02", *value)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

// isDuplicateKeyError checks if the error is a PostgreSQL unique constraint
// violation containing the specified constraint name
func isDuplicateKeyError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// PostgreSQL error code 23505 = unique_violation
		if pgErr.Code == "23505" && strings.Contains(strings.ToLower(pgErr.ConstraintName), strings.ToLower(constraintName)) {
			return true
		}
	}
	return false
}
