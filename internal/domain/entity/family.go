package entity

import (
	"time"

	"github.com/google/uuid"
)

// Family groups patients. Membership is the back-reference from
// patients.family_id; the family row itself only owns name and creator.
type Family struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name      string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"name"`
	CreatorID uuid.UUID `gorm:"type:uuid;not null" json:"creator_id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Members []Patient `gorm:"foreignKey:FamilyID" json:"members,omitempty"`
}

func (Family) TableName() string {
	return "families"
}
