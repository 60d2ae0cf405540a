package models

import (
	"gorm.io/datatypes"
)

// Project is owned exclusively by its employer. SkillsRequired is an
// unordered set (<=10 entries) stored as jsonb. SuggestedCategoryName
// is a display placeholder while a linked category suggestion is
// pending; it is cleared when the suggestion is resolved.
type Project struct {
	BaseModel
	EmployerID            string         `gorm:"type:uuid;not null;index" json:"employer_id"`
	Title                 string         `gorm:"not null" json:"title"`
	Description           string         `gorm:"type:text" json:"description"`
	Category              string         `gorm:"type:varchar(100)" json:"category"`
	Budget                float64        `json:"budget"`
	BudgetCurrency        Currency       `gorm:"type:varchar(3);default:'COP'" json:"budget_currency"`
	Status                ProjectStatus  `gorm:"type:varchar(20);default:'open';index" json:"status"`
	SkillsRequired        datatypes.JSON `gorm:"type:jsonb" json:"skills_required"`
	SuggestedCategoryName *string        `json:"suggested_category_name,omitempty"`

	Employer *User `gorm:"foreignKey:EmployerID" json:"employer,omitempty"`
}
