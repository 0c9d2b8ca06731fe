package converter

import (
	"time"

	"github.com/alvarojnq1/2Hackathon-Sao-Camilo/internal/delivery/dto"
	"github.com/alvarojnq1/2Hackathon-Sao-Camilo/internal/domain/entity"
)

// FamilyToResponse converts a Family entity to FamilyResponse.
func FamilyToResponse(family *entity.Family) *dto.FamilyResponse {
	if family == nil {
		return nil
	}

	return &dto.FamilyResponse{
		ID:        family.ID,
		Name:      family.Name,
		CreatorID: family.CreatorID,
	}
}

// FamilyToResponseWithMembers converts a Family entity with its loaded
// member set to FamilyWithMembersResponse.
func FamilyToResponseWithMembers(family *entity.Family) *dto.FamilyWithMembersResponse {
	if family == nil {
		return nil
	}

	members := make([]dto.MemberResponse, 0, len(family.Members))
	for i := range family.Members {
		members = append(members, *PatientToMemberResponse(&family.Members[i]))
	}

	return &dto.FamilyWithMembersResponse{
		ID:        family.ID,
		Name:      family.Name,
		CreatorID: family.CreatorID,
		Members:   members,
	}
}

// FamiliesToListResponse converts families with members to the professional
// listing DTO.
func FamiliesToListResponse(families []entity.Family) *dto.FamilyListResponse {
	list := make([]dto.FamilyWithMembersResponse, 0, len(families))
	for i := range families {
		list = append(list, *FamilyToResponseWithMembers(&families[i]))
	}

	return &dto.FamilyListResponse{
		Families: list,
		Total:    len(list),
	}
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	formatted := t.Format("2006-01-02")
	return &formatted
}
