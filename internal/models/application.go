package models

import "time"

// Application - at most one per (project, freelancer) pair; the unique
// index is the authoritative backstop for that invariant.
type Application struct {
	ID           string            `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	ProjectID    string            `gorm:"type:uuid;not null;uniqueIndex:idx_app_project_freelancer" json:"project_id"`
	FreelancerID string            `gorm:"type:uuid;not null;uniqueIndex:idx_app_project_freelancer" json:"freelancer_id"`
	Proposal     string            `gorm:"type:text;not null" json:"proposal"`
	Bid          *float64          `json:"bid"`
	Status       ApplicationStatus `gorm:"type:varchar(20);default:'pending'" json:"status"`
	CreatedAt    time.Time         `gorm:"default:now()" json:"created_at"`

	Project    *Project `gorm:"foreignKey:ProjectID" json:"project,omitempty"`
	Freelancer *User    `gorm:"foreignKey:FreelancerID" json:"freelancer,omitempty"`
}
