package entity

import (
	"time"

	"github.com/google/uuid"
)

// Professional is a health professional account with read-only access to
// every family and patient.
type Professional struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	Email     string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"type:text;not null" json:"-"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Professional) TableName() string {
	return "professionals"
}

// Role constants
const (
	RolePatient      = "patient"
	RoleProfessional = "professional"
)
