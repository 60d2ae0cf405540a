package models

// User is created on first OAuth sign-in and refreshed (name/image) on
// every subsequent sign-in. Never hard-deleted.
type User struct {
	BaseModel
	Email            string           `gorm:"uniqueIndex;not null" json:"email"`
	Name             string           `json:"name"`
	Image            string           `json:"image"`
	SubscriptionTier SubscriptionTier `gorm:"type:varchar(20);default:'free'" json:"subscription_tier"`
	Role             UserRole         `gorm:"type:varchar(20);default:'user'" json:"role"`

	// Relations
	Projects     []Project     `gorm:"foreignKey:EmployerID" json:"-"`
	Applications []Application `gorm:"foreignKey:FreelancerID" json:"-"`
}
