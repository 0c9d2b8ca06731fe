package entity

import (
	"time"

	"github.com/google/uuid"
)

// Patient represents a tracked person. Members enrolled without an email
// have Email = nil and a password hash they cannot log in with.
type Patient struct {
	ID                uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name              string     `gorm:"type:varchar(255);not null" json:"name"`
	DateOfBirth       *time.Time `gorm:"type:date" json:"date_of_birth,omitempty"`
	Sex               *string    `gorm:"type:char(1)" json:"sex,omitempty"`
	Email             *string    `gorm:"type:varchar(255);uniqueIndex" json:"email,omitempty"`
	Password          string     `gorm:"type:text;not null" json:"-"`
	FamilyID          *uuid.UUID `gorm:"type:uuid;index" json:"family_id,omitempty"`
	PriorDiagnosis    bool       `gorm:"not null;default:false" json:"prior_diagnosis"`
	GeneticPanel      *string    `gorm:"type:text" json:"genetic_panel,omitempty"`
	CarrierPercentage float64    `gorm:"type:decimal(5,2);not null;default:0" json:"carrier_percentage"`
	CreatedAt         time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Family *Family `gorm:"foreignKey:FamilyID" json:"family,omitempty"`
}

func (Patient) TableName() string {
	return "patients"
}

// Sex constants
const (
	SexMale   = "M"
	SexFemale = "F"
	SexOther  = "O"
)

// IsValidSex reports whether s is one of the accepted sex codes.
func IsValidSex(s string) bool {
	return s == SexMale || s == SexFemale || s == SexOther
}
