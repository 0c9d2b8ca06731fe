package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alvarojnq1/2Hackathon-Sao-Camilo/internal/delivery/dto"
	"github.com/alvarojnq1/2Hackathon-Sao-Camilo/internal/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestProfessionalHandler_ListFamilies(t *testing.T) {
	professionalUsecase := new(mocks.ProfessionalUsecaseMock)
	professionalUsecase.On("ListFamilies", mock.Anything).
		Return(&dto.FamilyListResponse{
			Families: []dto.FamilyWithMembersResponse{
				{ID: uuid.New(), Name: "Silva", Members: []dto.MemberResponse{{Name: "Ana"}}},
			},
			Total: 1,
		}, nil)

	h := NewProfessionalHandler(professionalUsecase)

	req := httptest.NewRequest(http.MethodGet, "/api/profissional/familias", nil)
	rec := httptest.NewRecorder()

	h.ListFamilies(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	resp := decodeResponse(t, rec)
	assert.True(t, resp.Success)
}

func TestProfessionalHandler_ListFamilies_Error(t *testing.T) {
	professionalUsecase := new(mocks.ProfessionalUsecaseMock)
	professionalUsecase.On("ListFamilies", mock.Anything).
		Return(nil, errors.New("db unavailable"))

	h := NewProfessionalHandler(professionalUsecase)

	req := httptest.NewRequest(http.MethodGet, "/api/profissional/familias", nil)
	rec := httptest.NewRecorder()

	h.ListFamilies(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
