package converter

import (
	"github.com/alvarojnq1/2Hackathon-Sao-Camilo/internal/delivery/dto"
	"github.com/alvarojnq1/2Hackathon-Sao-Camilo/internal/domain/entity"
)

// PatientToUserResponse converts a Patient entity to the UserResponse DTO
// used by the auth endpoints. Family name is filled when Family is loaded.
func PatientToUserResponse(patient *entity.Patient) *dto.UserResponse {
	if patient == nil {
		return nil
	}

	email := ""
	if patient.Email != nil {
		email = *patient.Email
	}

	response := &dto.UserResponse{
		ID:                patient.ID,
		Name:              patient.Name,
		Email:             email,
		Role:              entity.RolePatient,
		FamilyID:          patient.FamilyID,
		DateOfBirth:       formatDate(patient.DateOfBirth),
		Sex:               patient.Sex,
		PriorDiagnosis:    patient.PriorDiagnosis,
		GeneticPanel:      patient.GeneticPanel,
		CarrierPercentage: patient.CarrierPercentage,
	}

	if patient.Family != nil {
		response.FamilyName = &patient.Family.Name
	}

	return response
}

// ProfessionalToUserResponse converts a Professional entity to UserResponse.
func ProfessionalToUserResponse(professional *entity.Professional) *dto.UserResponse {
	if professional == nil {
		return nil
	}

	return &dto.UserResponse{
		ID:    professional.ID,
		Name:  professional.Name,
		Email: professional.Email,
		Role:  entity.RoleProfessional,
	}
}

// PatientToMemberResponse converts a Patient entity to the member DTO
// returned by the family endpoints.
func PatientToMemberResponse(patient *entity.Patient) *dto.MemberResponse {
	if patient == nil {
		return nil
	}

	return &dto.MemberResponse{
		ID:                patient.ID,
		Name:              patient.Name,
		Email:             patient.Email,
		DateOfBirth:       formatDate(patient.DateOfBirth),
		Sex:               patient.Sex,
		FamilyID:          patient.FamilyID,
		PriorDiagnosis:    patient.PriorDiagnosis,
		GeneticPanel:      patient.GeneticPanel,
		CarrierPercentage: patient.CarrierPercentage,
	}
}

// PatientToProfileResponse converts a Patient entity to ProfileResponse.
func PatientToProfileResponse(patient *entity.Patient) *dto.ProfileResponse {
	if patient == nil {
		return nil
	}

	return &dto.ProfileResponse{
		ID:                patient.ID,
		Name:              patient.Name,
		Email:             patient.Email,
		DateOfBirth:       formatDate(patient.DateOfBirth),
		Sex:               patient.Sex,
		PriorDiagnosis:    patient.PriorDiagnosis,
		GeneticPanel:      patient.GeneticPanel,
		CarrierPercentage: patient.CarrierPercentage,
	}
}
