package dto

import (
	"github.com/google/uuid"
)

// Request DTOs

type CreateFamilyRequest struct {
	Name string `json:"nome_familia" validate:"required,min=2"`
}

// EnrollMemberRequest enrolls a member into the caller's family. Email is
// optional: without one the member is created as a placeholder without
// login access.
type EnrollMemberRequest struct {
	Name           string  `json:"nome" validate:"required,min=2"`
	Email          *string `json:"email" validate:"omitempty,email"`
	DateOfBirth    *string `json:"data_nascimento" validate:"omitempty,datetime=2006-01-02"`
	Sex            *string `json:"sexo" validate:"omitempty,oneof=M F O"`
	PriorDiagnosis *bool   `json:"diagnostico_previo"`
	GeneticPanel   *string `json:"painel_genetico"`
}

// Response DTOs

type FamilyResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"nome_familia"`
	CreatorID uuid.UUID `json:"criador_id"`
}

type MemberResponse struct {
	ID                uuid.UUID  `json:"id"`
	Name              string     `json:"nome"`
	Email             *string    `json:"email,omitempty"`
	DateOfBirth       *string    `json:"data_nascimento,omitempty"`
	Sex               *string    `json:"sexo,omitempty"`
	FamilyID          *uuid.UUID `json:"id_familia,omitempty"`
	PriorDiagnosis    bool       `json:"diagnostico_previo"`
	GeneticPanel      *string    `json:"painel_genetico,omitempty"`
	CarrierPercentage float64    `json:"porcentagem"`
}

// EnrollMemberResponse reports the enrolled member, whether the credential
// email went out, and the generated plaintext credential. The credential is
// only set when a brand-new emailed patient was created; it is never
// re-exposed for merged patients.
type EnrollMemberResponse struct {
	Member            *MemberResponse `json:"membro"`
	EmailSent         bool            `json:"email_enviado"`
	GeneratedPassword *string         `json:"senha_gerada,omitempty"`
}

type FamilyWithMembersResponse struct {
	ID        uuid.UUID        `json:"id"`
	Name      string           `json:"nome_familia"`
	CreatorID uuid.UUID        `json:"criador_id"`
	Members   []MemberResponse `json:"membros"`
}

// MyFamilyResponse wraps the caller's family; Family is null when the
// caller is unaffiliated.
type MyFamilyResponse struct {
	Family *FamilyWithMembersResponse `json:"familia"`
}

type FamilyListResponse struct {
	Families []FamilyWithMembersResponse `json:"familias"`
	Total    int                         `json:"total"`
}
