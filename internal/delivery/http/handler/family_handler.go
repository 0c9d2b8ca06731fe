package handler

import (
	"encoding/json"
	"net/http"

	"github.com/alvarojnq1/2Hackathon-Sao-Camilo/internal/delivery/dto"
	"github.com/alvarojnq1/2Hackathon-Sao-Camilo/internal/delivery/http/middleware"
	"github.com/alvarojnq1/2Hackathon-Sao-Camilo/internal/usecase"
	"github.com/alvarojnq1/2Hackathon-Sao-Camilo/pkg/response"
	"github.com/alvarojnq1/2Hackathon-Sao-Camilo/pkg/validator"
)

type FamilyHandler struct {
	familyUsecase usecase.FamilyUsecase
	validator     *validator.CustomValidator
}

func NewFamilyHandler(familyUsecase usecase.FamilyUsecase, validator *validator.CustomValidator) *FamilyHandler {
	return &FamilyHandler{
		familyUsecase: familyUsecase,
		validator:     validator,
	}
}

// CreateFamily creates a family with the caller as creator and first member.
func (h *FamilyHandler) CreateFamily(w http.ResponseWriter, r *http.Request) {
	callerID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.CreateFamilyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	family, err := h.familyUsecase.CreateFamily(r.Context(), callerID, &req)
	if err != nil {
		switch err {
		case usecase.ErrAlreadyInFamily, usecase.ErrDuplicateFamilyName:
			response.BadRequest(w, err.Error())
		case usecase.ErrUserNotFound:
			response.NotFound(w, "User not found")
		default:
			response.InternalServerError(w, "Failed to create family")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Family created successfully", family)
}

// EnrollMember adds a member to the caller's family.
func (h *FamilyHandler) EnrollMember(w http.ResponseWriter, r *http.Request) {
	callerID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.EnrollMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.familyUsecase.EnrollMember(r.Context(), callerID, &req)
	if err != nil {
		switch err {
		case usecase.ErrNoFamily, usecase.ErrCrossFamilyConflict, usecase.ErrInvalidDateFormat:
			response.BadRequest(w, err.Error())
		case usecase.ErrUserNotFound:
			response.NotFound(w, "User not found")
		default:
			response.InternalServerError(w, "Failed to enroll member")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Member enrolled successfully", result)
}

// GetMyFamily returns the caller's family with members, or a null family.
func (h *FamilyHandler) GetMyFamily(w http.ResponseWriter, r *http.Request) {
	callerID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	result, err := h.familyUsecase.GetMyFamily(r.Context(), callerID)
	if err != nil {
		switch err {
		case usecase.ErrUserNotFound:
			response.NotFound(w, "User not found")
		default:
			response.InternalServerError(w, "Failed to get family")
		}
		return
	}

	response.Success(w, http.StatusOK, "Family retrieved successfully", result)
}

// LeaveFamily detaches the caller from their family. Idempotent.
func (h *FamilyHandler) LeaveFamily(w http.ResponseWriter, r *http.Request) {
	callerID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	if err := h.familyUsecase.LeaveFamily(r.Context(), callerID); err != nil {
		switch err {
		case usecase.ErrUserNotFound:
			response.NotFound(w, "User not found")
		default:
			response.InternalServerError(w, "Failed to leave family")
		}
		return
	}

	response.Success(w, http.StatusOK, "You left the family successfully", nil)
}
