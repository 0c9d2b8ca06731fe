package usecase

import (
	"context"
	"io"
	"testing"

	"github.com/alvarojnq1/2Hackathon-Sao-Camilo/internal/delivery/dto"
	"github.com/alvarojnq1/2Hackathon-Sao-Camilo/internal/domain/entity"
	"github.com/alvarojnq1/2Hackathon-Sao-Camilo/internal/mocks"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// mockGorm returns a gorm handle backed by sqlmock so transaction begin,
// commit and rollback can be asserted while repositories stay mocked.
func mockGorm(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return db, sqlMock
}

func strPtr(s string) *string {
	return &s
}

func boolPtr(b bool) *bool {
	return &b
}

func TestFamilyUsecase_CreateFamily(t *testing.T) {
	callerID := uuid.New()
	familyID := uuid.New()

	db, sqlMock := mockGorm(t)
	sqlMock.ExpectBegin()
	sqlMock.ExpectCommit()

	patientRepo := new(mocks.PatientRepositoryMock)
	familyRepo := new(mocks.FamilyRepositoryMock)
	aggregator := new(mocks.CarrierAggregatorMock)

	patientRepo.On("FindByID", mock.Anything, mock.Anything, callerID).
		Return(&entity.Patient{ID: callerID, Name: "Ana"}, nil)
	familyRepo.On("Create", mock.Anything, mock.Anything, mock.AnythingOfType("*entity.Family")).
		Run(func(args mock.Arguments) {
			family := args.Get(2).(*entity.Family)
			family.ID = familyID
		}).
		Return(nil)
	patientRepo.On("Update", mock.Anything, mock.Anything, mock.AnythingOfType("*entity.Patient")).
		Run(func(args mock.Arguments) {
			caller := args.Get(2).(*entity.Patient)
			require.NotNil(t, caller.FamilyID)
			assert.Equal(t, familyID, *caller.FamilyID)
		}).
		Return(nil)
	aggregator.On("Recompute", mock.Anything, mock.Anything, familyID).Return(0.0, nil)

	u := NewFamilyUsecase(db, testLogger(), patientRepo, familyRepo, aggregator, new(mocks.MailServiceMock))

	family, err := u.CreateFamily(context.Background(), callerID, &dto.CreateFamilyRequest{Name: "Silva"})
	require.NoError(t, err)
	assert.Equal(t, familyID, family.ID)
	assert.Equal(t, "Silva", family.Name)
	assert.Equal(t, callerID, family.CreatorID)
	assert.NoError(t, sqlMock.ExpectationsWereMet())
	patientRepo.AssertExpectations(t)
	familyRepo.AssertExpectations(t)
	aggregator.AssertExpectations(t)
}

func TestFamilyUsecase_CreateFamily_AlreadyInFamily(t *testing.T) {
	callerID := uuid.New()
	existingFamilyID := uuid.New()

	db, sqlMock := mockGorm(t)
	sqlMock.ExpectBegin()
	sqlMock.ExpectRollback()

	patientRepo := new(mocks.PatientRepositoryMock)
	familyRepo := new(mocks.FamilyRepositoryMock)

	patientRepo.On("FindByID", mock.Anything, mock.Anything, callerID).
		Return(&entity.Patient{ID: callerID, FamilyID: &existingFamilyID}, nil)

	u := NewFamilyUsecase(db, testLogger(), patientRepo, familyRepo, new(mocks.CarrierAggregatorMock), new(mocks.MailServiceMock))

	_, err := u.CreateFamily(context.Background(), callerID, &dto.CreateFamilyRequest{Name: "Silva"})
	assert.ErrorIs(t, err, ErrAlreadyInFamily)
	familyRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}

func TestFamilyUsecase_CreateFamily_DuplicateName(t *testing.T) {
	callerID := uuid.New()

	db, sqlMock := mockGorm(t)
	sqlMock.ExpectBegin()
	sqlMock.ExpectRollback()

	patientRepo := new(mocks.PatientRepositoryMock)
	familyRepo := new(mocks.FamilyRepositoryMock)

	patientRepo.On("FindByID", mock.Anything, mock.Anything, callerID).
		Return(&entity.Patient{ID: callerID}, nil)
	familyRepo.On("Create", mock.Anything, mock.Anything, mock.Anything).
		Return(&pgconn.PgError{Code: "23505", ConstraintName: "uni_families_name"})

	u := NewFamilyUsecase(db, testLogger(), patientRepo, familyRepo, new(mocks.CarrierAggregatorMock), new(mocks.MailServiceMock))

	_, err := u.CreateFamily(context.Background(), callerID, &dto.CreateFamilyRequest{Name: "Silva"})
	assert.ErrorIs(t, err, ErrDuplicateFamilyName)
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}

func TestFamilyUsecase_EnrollMember_NoFamily(t *testing.T) {
	callerID := uuid.New()

	db, sqlMock := mockGorm(t)
	sqlMock.ExpectBegin()
	sqlMock.ExpectRollback()

	patientRepo := new(mocks.PatientRepositoryMock)

	patientRepo.On("FindByID", mock.Anything, mock.Anything, callerID).
		Return(&entity.Patient{ID: callerID}, nil)

	u := NewFamilyUsecase(db, testLogger(), patientRepo, new(mocks.FamilyRepositoryMock), new(mocks.CarrierAggregatorMock), new(mocks.MailServiceMock))

	_, err := u.EnrollMember(context.Background(), callerID, &dto.EnrollMemberRequest{Name: "Bruno"})
	assert.ErrorIs(t, err, ErrNoFamily)
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}

func TestFamilyUsecase_EnrollMember_WithoutEmail(t *testing.T) {
	callerID := uuid.New()
	familyID := uuid.New()

	db, sqlMock := mockGorm(t)
	sqlMock.ExpectBegin()
	sqlMock.ExpectCommit()

	patientRepo := new(mocks.PatientRepositoryMock)
	aggregator := new(mocks.CarrierAggregatorMock)
	mailService := new(mocks.MailServiceMock)

	patientRepo.On("FindByID", mock.Anything, mock.Anything, callerID).
		Return(&entity.Patient{ID: callerID, FamilyID: &familyID}, nil)
	patientRepo.On("Create", mock.Anything, mock.Anything, mock.AnythingOfType("*entity.Patient")).
		Run(func(args mock.Arguments) {
			member := args.Get(2).(*entity.Patient)
			assert.Nil(t, member.Email)
			assert.NotEmpty(t, member.Password)
			assert.True(t, member.PriorDiagnosis)
			require.NotNil(t, member.FamilyID)
			assert.Equal(t, familyID, *member.FamilyID)
		}).
		Return(nil)
	aggregator.On("Recompute", mock.Anything, mock.Anything, familyID).Return(50.0, nil)

	u := NewFamilyUsecase(db, testLogger(), patientRepo, new(mocks.FamilyRepositoryMock), aggregator, mailService)

	result, err := u.EnrollMember(context.Background(), callerID, &dto.EnrollMemberRequest{
		Name:           "Bruno",
		PriorDiagnosis: boolPtr(true),
	})
	require.NoError(t, err)
	assert.False(t, result.EmailSent)
	assert.Nil(t, result.GeneratedPassword)
	assert.Equal(t, 50.0, result.Member.CarrierPercentage)
	mailService.AssertNotCalled(t, "SendTemporaryPassword", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}

func TestFamilyUsecase_EnrollMember_NewEmailedMember(t *testing.T) {
	callerID := uuid.New()
	familyID := uuid.New()

	db, sqlMock := mockGorm(t)
	sqlMock.ExpectBegin()
	sqlMock.ExpectCommit()

	patientRepo := new(mocks.PatientRepositoryMock)
	aggregator := new(mocks.CarrierAggregatorMock)
	mailService := new(mocks.MailServiceMock)

	patientRepo.On("FindByID", mock.Anything, mock.Anything, callerID).
		Return(&entity.Patient{ID: callerID, FamilyID: &familyID}, nil)
	patientRepo.On("FindByEmail", mock.Anything, mock.Anything, "carla@example.com").
		Return(nil, nil)
	patientRepo.On("Create", mock.Anything, mock.Anything, mock.AnythingOfType("*entity.Patient")).
		Return(nil)
	aggregator.On("Recompute", mock.Anything, mock.Anything, familyID).Return(66.67, nil)
	mailService.On("SendTemporaryPassword", mock.Anything, "carla@example.com", "Carla", mock.AnythingOfType("string")).
		Return(true)

	u := NewFamilyUsecase(db, testLogger(), patientRepo, new(mocks.FamilyRepositoryMock), aggregator, mailService)

	result, err := u.EnrollMember(context.Background(), callerID, &dto.EnrollMemberRequest{
		Name:         "Carla",
		Email:        strPtr("carla@example.com"),
		GeneticPanel: strPtr("laudo: NM_007294.4(BRCA1)"),
	})
	require.NoError(t, err)
	assert.True(t, result.EmailSent)
	require.NotNil(t, result.GeneratedPassword)
	assert.Len(t, *result.GeneratedPassword, 8)
	assert.Equal(t, 66.67, result.Member.CarrierPercentage)
	mailService.AssertExpectations(t)
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}

func TestFamilyUsecase_EnrollMember_MergeExistingUnaffiliated(t *testing.T) {
	callerID := uuid.New()
	familyID := uuid.New()
	existingID := uuid.New()

	db, sqlMock := mockGorm(t)
	sqlMock.ExpectBegin()
	sqlMock.ExpectCommit()

	patientRepo := new(mocks.PatientRepositoryMock)
	aggregator := new(mocks.CarrierAggregatorMock)
	mailService := new(mocks.MailServiceMock)

	patientRepo.On("FindByID", mock.Anything, mock.Anything, callerID).
		Return(&entity.Patient{ID: callerID, FamilyID: &familyID}, nil)
	patientRepo.On("FindByEmail", mock.Anything, mock.Anything, "davi@example.com").
		Return(&entity.Patient{ID: existingID, Name: "Davi", Email: strPtr("davi@example.com")}, nil)
	patientRepo.On("Update", mock.Anything, mock.Anything, mock.AnythingOfType("*entity.Patient")).
		Run(func(args mock.Arguments) {
			merged := args.Get(2).(*entity.Patient)
			assert.Equal(t, existingID, merged.ID)
			require.NotNil(t, merged.FamilyID)
			assert.Equal(t, familyID, *merged.FamilyID)
			assert.True(t, merged.PriorDiagnosis)
		}).
		Return(nil)
	aggregator.On("Recompute", mock.Anything, mock.Anything, familyID).Return(100.0, nil)

	u := NewFamilyUsecase(db, testLogger(), patientRepo, new(mocks.FamilyRepositoryMock), aggregator, mailService)

	result, err := u.EnrollMember(context.Background(), callerID, &dto.EnrollMemberRequest{
		Name:           "Davi",
		Email:          strPtr("davi@example.com"),
		PriorDiagnosis: boolPtr(true),
	})
	require.NoError(t, err)
	// merged patients never get their credential re-exposed
	assert.Nil(t, result.GeneratedPassword)
	assert.False(t, result.EmailSent)
	mailService.AssertNotCalled(t, "SendTemporaryPassword", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}

func TestFamilyUsecase_EnrollMember_SameFamilyIsIdempotent(t *testing.T) {
	callerID := uuid.New()
	familyID := uuid.New()
	existingID := uuid.New()

	db, sqlMock := mockGorm(t)
	sqlMock.ExpectBegin()
	sqlMock.ExpectCommit()

	patientRepo := new(mocks.PatientRepositoryMock)
	aggregator := new(mocks.CarrierAggregatorMock)

	patientRepo.On("FindByID", mock.Anything, mock.Anything, callerID).
		Return(&entity.Patient{ID: callerID, FamilyID: &familyID}, nil)
	patientRepo.On("FindByEmail", mock.Anything, mock.Anything, "davi@example.com").
		Return(&entity.Patient{ID: existingID, Name: "Davi", Email: strPtr("davi@example.com"), FamilyID: &familyID}, nil)
	patientRepo.On("Update", mock.Anything, mock.Anything, mock.AnythingOfType("*entity.Patient")).Return(nil)
	aggregator.On("Recompute", mock.Anything, mock.Anything, familyID).Return(50.0, nil)

	u := NewFamilyUsecase(db, testLogger(), patientRepo, new(mocks.FamilyRepositoryMock), aggregator, new(mocks.MailServiceMock))

	result, err := u.EnrollMember(context.Background(), callerID, &dto.EnrollMemberRequest{
		Name:  "Davi",
		Email: strPtr("davi@example.com"),
	})
	require.NoError(t, err)
	assert.Equal(t, existingID, result.Member.ID)
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}

func TestFamilyUsecase_EnrollMember_CrossFamilyConflict(t *testing.T) {
	callerID := uuid.New()
	familyID := uuid.New()
	otherFamilyID := uuid.New()

	db, sqlMock := mockGorm(t)
	sqlMock.ExpectBegin()
	sqlMock.ExpectRollback()

	patientRepo := new(mocks.PatientRepositoryMock)
	aggregator := new(mocks.CarrierAggregatorMock)

	patientRepo.On("FindByID", mock.Anything, mock.Anything, callerID).
		Return(&entity.Patient{ID: callerID, FamilyID: &familyID}, nil)
	patientRepo.On("FindByEmail", mock.Anything, mock.Anything, "davi@example.com").
		Return(&entity.Patient{ID: uuid.New(), Email: strPtr("davi@example.com"), FamilyID: &otherFamilyID}, nil)

	u := NewFamilyUsecase(db, testLogger(), patientRepo, new(mocks.FamilyRepositoryMock), aggregator, new(mocks.MailServiceMock))

	_, err := u.EnrollMember(context.Background(), callerID, &dto.EnrollMemberRequest{
		Name:  "Davi",
		Email: strPtr("davi@example.com"),
	})
	assert.ErrorIs(t, err, ErrCrossFamilyConflict)
	// both patients' family references stay untouched
	patientRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	aggregator.AssertNotCalled(t, "Recompute", mock.Anything, mock.Anything, mock.Anything)
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}

func TestFamilyUsecase_LeaveFamily_NoOpWhenUnaffiliated(t *testing.T) {
	callerID := uuid.New()

	db, sqlMock := mockGorm(t)
	sqlMock.ExpectBegin()
	sqlMock.ExpectRollback()

	patientRepo := new(mocks.PatientRepositoryMock)
	aggregator := new(mocks.CarrierAggregatorMock)

	patientRepo.On("FindByID", mock.Anything, mock.Anything, callerID).
		Return(&entity.Patient{ID: callerID}, nil)

	u := NewFamilyUsecase(db, testLogger(), patientRepo, new(mocks.FamilyRepositoryMock), aggregator, new(mocks.MailServiceMock))

	err := u.LeaveFamily(context.Background(), callerID)
	assert.NoError(t, err)
	patientRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	aggregator.AssertNotCalled(t, "Recompute", mock.Anything, mock.Anything, mock.Anything)
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}

func TestFamilyUsecase_LeaveFamily_RecomputesVacatedFamily(t *testing.T) {
	callerID := uuid.New()
	familyID := uuid.New()

	db, sqlMock := mockGorm(t)
	sqlMock.ExpectBegin()
	sqlMock.ExpectCommit()

	patientRepo := new(mocks.PatientRepositoryMock)
	aggregator := new(mocks.CarrierAggregatorMock)

	patientRepo.On("FindByID", mock.Anything, mock.Anything, callerID).
		Return(&entity.Patient{ID: callerID, FamilyID: &familyID, CarrierPercentage: 50}, nil)
	patientRepo.On("Update", mock.Anything, mock.Anything, mock.AnythingOfType("*entity.Patient")).
		Run(func(args mock.Arguments) {
			caller := args.Get(2).(*entity.Patient)
			assert.Nil(t, caller.FamilyID)
			assert.Zero(t, caller.CarrierPercentage)
		}).
		Return(nil)
	aggregator.On("Recompute", mock.Anything, mock.Anything, familyID).Return(50.0, nil)

	u := NewFamilyUsecase(db, testLogger(), patientRepo, new(mocks.FamilyRepositoryMock), aggregator, new(mocks.MailServiceMock))

	err := u.LeaveFamily(context.Background(), callerID)
	assert.NoError(t, err)
	patientRepo.AssertExpectations(t)
	aggregator.AssertExpectations(t)
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}

func TestFamilyUsecase_GetMyFamily(t *testing.T) {
	callerID := uuid.New()
	familyID := uuid.New()

	db, _ := mockGorm(t)

	patientRepo := new(mocks.PatientRepositoryMock)
	familyRepo := new(mocks.FamilyRepositoryMock)

	patientRepo.On("FindByID", mock.Anything, mock.Anything, callerID).
		Return(&entity.Patient{ID: callerID, FamilyID: &familyID}, nil)
	familyRepo.On("FindByIDWithMembers", mock.Anything, mock.Anything, familyID).
		Return(&entity.Family{
			ID:        familyID,
			Name:      "Silva",
			CreatorID: callerID,
			Members: []entity.Patient{
				{ID: callerID, Name: "Ana", FamilyID: &familyID, CarrierPercentage: 50},
				{ID: uuid.New(), Name: "Bruno", FamilyID: &familyID, PriorDiagnosis: true, CarrierPercentage: 50},
			},
		}, nil)

	u := NewFamilyUsecase(db, testLogger(), patientRepo, familyRepo, new(mocks.CarrierAggregatorMock), new(mocks.MailServiceMock))

	result, err := u.GetMyFamily(context.Background(), callerID)
	require.NoError(t, err)
	require.NotNil(t, result.Family)
	assert.Equal(t, "Silva", result.Family.Name)
	assert.Len(t, result.Family.Members, 2)
}

func TestFamilyUsecase_GetMyFamily_Unaffiliated(t *testing.T) {
	callerID := uuid.New()

	db, _ := mockGorm(t)

	patientRepo := new(mocks.PatientRepositoryMock)
	patientRepo.On("FindByID", mock.Anything, mock.Anything, callerID).
		Return(&entity.Patient{ID: callerID}, nil)

	u := NewFamilyUsecase(db, testLogger(), patientRepo, new(mocks.FamilyRepositoryMock), new(mocks.CarrierAggregatorMock), new(mocks.MailServiceMock))

	result, err := u.GetMyFamily(context.Background(), callerID)
	require.NoError(t, err)
	assert.Nil(t, result.Family)
}
