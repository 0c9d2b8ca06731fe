package usecase

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"

	"github.com/alvarojnq1/2Hackathon-Sao-Camilo/internal/converter"
	"github.com/alvarojnq1/2Hackathon-Sao-Camilo/internal/delivery/dto"
	"github.com/alvarojnq1/2Hackathon-Sao-Camilo/internal/domain/entity"
	"github.com/alvarojnq1/2Hackathon-Sao-Camilo/internal/domain/repository"
	"github.com/alvarojnq1/2Hackathon-Sao-Camilo/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrAlreadyInFamily     = errors.New("you already belong to a family")
	ErrDuplicateFamilyName = errors.New("a family with this name already exists")
	ErrNoFamily            = errors.New("you do not belong to any family")
	ErrCrossFamilyConflict = errors.New("this user already belongs to another family")
)

// FamilyUsecase owns every mutation of the patient-family relationship.
// Each mutation runs in one transaction that also recomputes the family's
// carrier percentage, so the derived statistic can never drift from the
// membership it was computed over.
type FamilyUsecase interface {
	CreateFamily(ctx context.Context, callerID uuid.UUID, req *dto.CreateFamilyRequest) (*dto.FamilyResponse, error)
	EnrollMember(ctx context.Context, callerID uuid.UUID, req *dto.EnrollMemberRequest) (*dto.EnrollMemberResponse, error)
	LeaveFamily(ctx context.Context, callerID uuid.UUID) error
	GetMyFamily(ctx context.Context, callerID uuid.UUID) (*dto.MyFamilyResponse, error)
}

type familyUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	patientRepo repository.PatientRepository
	familyRepo  repository.FamilyRepository
	aggregator  service.CarrierAggregator
	mailService service.MailService
}

func NewFamilyUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	patientRepo repository.PatientRepository,
	familyRepo repository.FamilyRepository,
	aggregator service.CarrierAggregator,
	mailService service.MailService,
) FamilyUsecase {
	return &familyUsecase{
		db:          db,
		log:         log,
		patientRepo: patientRepo,
		familyRepo:  familyRepo,
		aggregator:  aggregator,
		mailService: mailService,
	}
}

func (u *familyUsecase) CreateFamily(ctx context.Context, callerID uuid.UUID, req *dto.CreateFamilyRequest) (*dto.FamilyResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	caller, err := u.patientRepo.FindByID(ctx, tx, callerID)
	if err != nil {
		u.log.Warnf("Failed to find caller: %+v", err)
		return nil, err
	}
	if caller == nil {
		return nil, ErrUserNotFound
	}
	if caller.FamilyID != nil {
		return nil, ErrAlreadyInFamily
	}

	family := &entity.Family{
		Name:      req.Name,
		CreatorID: callerID,
	}

	if err := u.familyRepo.Create(ctx, tx, family); err != nil {
		if isDuplicateKeyError(err, "name") {
			return nil, ErrDuplicateFamilyName
		}
		u.log.Warnf("Failed to create family: %+v", err)
		return nil, err
	}

	// The creator is the family's first member.
	caller.FamilyID = &family.ID
	if err := u.patientRepo.Update(ctx, tx, caller); err != nil {
		u.log.Warnf("Failed to attach creator to family: %+v", err)
		return nil, err
	}

	if _, err := u.aggregator.Recompute(ctx, tx, family.ID); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.FamilyToResponse(family), nil
}

func (u *familyUsecase) EnrollMember(ctx context.Context, callerID uuid.UUID, req *dto.EnrollMemberRequest) (*dto.EnrollMemberResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	caller, err := u.patientRepo.FindByID(ctx, tx, callerID)
	if err != nil {
		u.log.Warnf("Failed to find caller: %+v", err)
		return nil, err
	}
	if caller == nil {
		return nil, ErrUserNotFound
	}
	if caller.FamilyID == nil {
		return nil, ErrNoFamily
	}
	familyID := *caller.FamilyID

	dob, err := parseOptionalDate(req.DateOfBirth)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	var member *entity.Patient
	var generatedPassword *string

	if req.Email != nil && *req.Email != "" {
		existing, err := u.patientRepo.FindByEmail(ctx, tx, *req.Email)
		if err != nil {
			u.log.Warnf("Failed to find patient by email: %+v", err)
			return nil, err
		}

		switch {
		case existing == nil:
			// Brand-new emailed member: generated credential, delivered
			// after commit.
			plaintext, err := generateTemporaryPassword()
			if err != nil {
				u.log.Warnf("Failed to generate temporary password: %+v", err)
				return nil, err
			}
			hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
			if err != nil {
				u.log.Warnf("Failed to hash password: %+v", err)
				return nil, err
			}

			member = &entity.Patient{
				Name:           req.Name,
				Email:          req.Email,
				Password:       string(hashed),
				DateOfBirth:    dob,
				Sex:            req.Sex,
				FamilyID:       &familyID,
				PriorDiagnosis: req.PriorDiagnosis != nil && *req.PriorDiagnosis,
				GeneticPanel:   req.GeneticPanel,
			}
			if err := u.patientRepo.Create(ctx, tx, member); err != nil {
				u.log.Warnf("Failed to create member: %+v", err)
				return nil, err
			}
			generatedPassword = &plaintext

		case existing.FamilyID != nil && *existing.FamilyID != familyID:
			// Reassigning across families is forbidden; the member must
			// leave the other family first.
			return nil, ErrCrossFamilyConflict

		default:
			// Unaffiliated or already in the caller's family: idempotent
			// merge. Diagnostic fields are updated when supplied.
			existing.FamilyID = &familyID
			if req.PriorDiagnosis != nil {
				existing.PriorDiagnosis = *req.PriorDiagnosis
			}
			if req.GeneticPanel != nil {
				existing.GeneticPanel = req.GeneticPanel
			}
			if dob != nil {
				existing.DateOfBirth = dob
			}
			if req.Sex != nil {
				existing.Sex = req.Sex
			}
			if err := u.patientRepo.Update(ctx, tx, existing); err != nil {
				u.log.Warnf("Failed to merge member into family: %+v", err)
				return nil, err
			}
			member = existing
		}
	} else {
		// Placeholder member without login access. The stored hash is of
		// the empty string and can never pass credential validation.
		hashed, err := bcrypt.GenerateFromPassword([]byte(""), bcrypt.DefaultCost)
		if err != nil {
			u.log.Warnf("Failed to hash sentinel password: %+v", err)
			return nil, err
		}

		member = &entity.Patient{
			Name:           req.Name,
			Password:       string(hashed),
			DateOfBirth:    dob,
			Sex:            req.Sex,
			FamilyID:       &familyID,
			PriorDiagnosis: req.PriorDiagnosis != nil && *req.PriorDiagnosis,
			GeneticPanel:   req.GeneticPanel,
		}
		if err := u.patientRepo.Create(ctx, tx, member); err != nil {
			u.log.Warnf("Failed to create member: %+v", err)
			return nil, err
		}
	}

	percentage, err := u.aggregator.Recompute(ctx, tx, familyID)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	// Delivery runs after commit: a failed email must never reverse a
	// committed membership change.
	emailSent := false
	if generatedPassword != nil {
		emailSent = u.mailService.SendTemporaryPassword(ctx, *req.Email, req.Name, *generatedPassword)
	}

	response := converter.PatientToMemberResponse(member)
	response.CarrierPercentage = percentage

	return &dto.EnrollMemberResponse{
		Member:            response,
		EmailSent:         emailSent,
		GeneratedPassword: generatedPassword,
	}, nil
}

func (u *familyUsecase) LeaveFamily(ctx context.Context, callerID uuid.UUID) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	caller, err := u.patientRepo.FindByID(ctx, tx, callerID)
	if err != nil {
		u.log.Warnf("Failed to find caller: %+v", err)
		return err
	}
	if caller == nil {
		return ErrUserNotFound
	}

	// Leaving without a family is a no-op success.
	if caller.FamilyID == nil {
		return nil
	}
	vacatedFamilyID := *caller.FamilyID

	caller.FamilyID = nil
	caller.CarrierPercentage = 0
	if err := u.patientRepo.Update(ctx, tx, caller); err != nil {
		u.log.Warnf("Failed to detach caller from family: %+v", err)
		return err
	}

	// The remaining members' percentage changes with the member set.
	if _, err := u.aggregator.Recompute(ctx, tx, vacatedFamilyID); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}

func (u *familyUsecase) GetMyFamily(ctx context.Context, callerID uuid.UUID) (*dto.MyFamilyResponse, error) {
	caller, err := u.patientRepo.FindByID(ctx, u.db, callerID)
	if err != nil {
		u.log.Warnf("Failed to find caller: %+v", err)
		return nil, err
	}
	if caller == nil {
		return nil, ErrUserNotFound
	}

	if caller.FamilyID == nil {
		return &dto.MyFamilyResponse{Family: nil}, nil
	}

	family, err := u.familyRepo.FindByIDWithMembers(ctx, u.db, *caller.FamilyID)
	if err != nil {
		u.log.Warnf("Failed to load family with members: %+v", err)
		return nil, err
	}
	if family == nil {
		return &dto.MyFamilyResponse{Family: nil}, nil
	}

	return &dto.MyFamilyResponse{Family: converter.FamilyToResponseWithMembers(family)}, nil
}

func generateTemporaryPassword() (string, error) {
	buf := make([]byte, 8)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf)[:8], nil
}
