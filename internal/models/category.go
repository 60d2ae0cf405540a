package models

import (
	"time"

	"gorm.io/datatypes"
)

// Category rows are either approved taxonomy entries or pending
// user suggestions. A pending row belongs to its suggester until an
// admin resolves it (approve, reassign or reject). SuggestedSkills is
// the raw list proposed by the suggester, reviewed on approval.
type Category struct {
	ID               string         `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	Name             string         `gorm:"not null" json:"name"`
	Slug             string         `gorm:"uniqueIndex;not null" json:"slug"`
	Status           CategoryStatus `gorm:"type:varchar(20);default:'approved';index" json:"status"`
	SuggestedBy      *string        `gorm:"type:uuid" json:"suggested_by,omitempty"`
	RelatedProjectID *string        `gorm:"type:uuid" json:"related_project_id,omitempty"`
	SuggestedSkills  datatypes.JSON `gorm:"type:jsonb" json:"suggested_skills,omitempty"`
	CreatedAt        time.Time      `gorm:"default:now()" json:"created_at"`

	Suggester      *User          `gorm:"foreignKey:SuggestedBy" json:"suggester,omitempty"`
	RelatedProject *Project       `gorm:"foreignKey:RelatedProjectID;constraint:OnDelete:SET NULL" json:"related_project,omitempty"`
	Skills         []CategorySkill `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE" json:"skills,omitempty"`
}

// CategorySkill is the canonical skill vocabulary of an approved
// category. Uniqueness per (category, name) is exact-match, not
// case-insensitive.
type CategorySkill struct {
	ID         string `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	CategoryID string `gorm:"type:uuid;not null;uniqueIndex:idx_category_skill_name" json:"category_id"`
	Name       string `gorm:"not null;uniqueIndex:idx_category_skill_name" json:"name"`
}
