package handler

import (
	"net/http"

	"github.com/alvarojnq1/2Hackathon-Sao-Camilo/internal/usecase"
	"github.com/alvarojnq1/2Hackathon-Sao-Camilo/pkg/response"
)

type ProfessionalHandler struct {
	professionalUsecase usecase.ProfessionalUsecase
}

func NewProfessionalHandler(professionalUsecase usecase.ProfessionalUsecase) *ProfessionalHandler {
	return &ProfessionalHandler{
		professionalUsecase: professionalUsecase,
	}
}

// ListFamilies returns every family with its members. Professional only.
func (h *ProfessionalHandler) ListFamilies(w http.ResponseWriter, r *http.Request) {
	result, err := h.professionalUsecase.ListFamilies(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list families")
		return
	}

	response.Success(w, http.StatusOK, "Families retrieved successfully", result)
}
