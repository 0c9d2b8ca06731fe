package dto

import (
	"github.com/google/uuid"
)

// UpdateProfileRequest updates the caller's own diagnostic and personal
// fields. All fields are optional; absent fields keep their value.
type UpdateProfileRequest struct {
	PriorDiagnosis *bool   `json:"diagnostico_previo"`
	GeneticPanel   *string `json:"painel_genetico"`
	DateOfBirth    *string `json:"data_nascimento" validate:"omitempty,datetime=2006-01-02"`
	Sex            *string `json:"sexo" validate:"omitempty,oneof=M F O"`
}

type ProfileResponse struct {
	ID                uuid.UUID `json:"id"`
	Name              string    `json:"nome"`
	Email             *string   `json:"email,omitempty"`
	DateOfBirth       *string   `json:"data_nascimento,omitempty"`
	Sex               *string   `json:"sexo,omitempty"`
	PriorDiagnosis    bool      `json:"diagnostico_previo"`
	GeneticPanel      *string   `json:"painel_genetico,omitempty"`
	CarrierPercentage float64   `json:"porcentagem"`
}

type UpdateProfileResponse struct {
	Updated bool             `json:"updated"`
	Profile *ProfileResponse `json:"perfil"`
}
