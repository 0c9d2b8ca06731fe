package dto

import (
	"github.com/google/uuid"
)

// Request DTOs

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"senha" validate:"required"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// RegisterPatientRequest registers a patient account; the account starts
// without a family.
type RegisterPatientRequest struct {
	Name        string  `json:"nome" validate:"required,min=2"`
	Email       string  `json:"email" validate:"required,email"`
	Password    string  `json:"senha" validate:"required,min=6"`
	DateOfBirth *string `json:"data_nascimento" validate:"omitempty,datetime=2006-01-02"`
	Sex         *string `json:"sexo" validate:"omitempty,oneof=M F O"`
}

type RegisterProfessionalRequest struct {
	Name     string `json:"nome" validate:"required,min=2"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"senha" validate:"required,min=6"`
}

// Response DTOs

type UserResponse struct {
	ID                uuid.UUID  `json:"id"`
	Name              string     `json:"nome"`
	Email             string     `json:"email"`
	Role              string     `json:"tipo"`
	FamilyID          *uuid.UUID `json:"id_familia,omitempty"`
	FamilyName        *string    `json:"nome_familia,omitempty"`
	DateOfBirth       *string    `json:"data_nascimento,omitempty"`
	Sex               *string    `json:"sexo,omitempty"`
	PriorDiagnosis    bool       `json:"diagnostico_previo"`
	GeneticPanel      *string    `json:"painel_genetico,omitempty"`
	CarrierPercentage float64    `json:"porcentagem"`
}

type AuthResponse struct {
	Token        string        `json:"token"`
	RefreshToken string        `json:"refresh_token"`
	ExpiresIn    int64         `json:"expires_in"`
	User         *UserResponse `json:"user"`
}

type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}
