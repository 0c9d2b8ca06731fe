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

type ProfileHandler struct {
	profileUsecase usecase.ProfileUsecase
	validator      *validator.CustomValidator
}

func NewProfileHandler(profileUsecase usecase.ProfileUsecase, validator *validator.CustomValidator) *ProfileHandler {
	return &ProfileHandler{
		profileUsecase: profileUsecase,
		validator:      validator,
	}
}

// GetProfile returns the caller's own profile.
func (h *ProfileHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	callerID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	profile, err := h.profileUsecase.GetProfile(r.Context(), callerID)
	if err != nil {
		switch err {
		case usecase.ErrUserNotFound:
			response.NotFound(w, "User not found")
		default:
			response.InternalServerError(w, "Failed to get profile")
		}
		return
	}

	response.Success(w, http.StatusOK, "Profile retrieved successfully", profile)
}

// UpdateProfile updates the caller's personal and diagnostic fields.
func (h *ProfileHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	callerID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.profileUsecase.UpdateProfile(r.Context(), callerID, &req)
	if err != nil {
		switch err {
		case usecase.ErrUserNotFound:
			response.NotFound(w, "User not found")
		case usecase.ErrInvalidDateFormat:
			response.BadRequest(w, err.Error())
		default:
			response.InternalServerError(w, "Failed to update profile")
		}
		return
	}

	response.Success(w, http.StatusOK, "Profile updated successfully", result)
}
