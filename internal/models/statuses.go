package models

type UserRole string
type SubscriptionTier string
type ProjectStatus string
type ApplicationStatus string
type CategoryStatus string
type Currency string

const (
	UserRoleUser  UserRole = "user"
	UserRoleAdmin UserRole = "admin"

	TierFree    SubscriptionTier = "free"
	TierPremium SubscriptionTier = "premium"

	ProjectStatusOpen      ProjectStatus = "open"
	ProjectStatusClosed    ProjectStatus = "closed"
	ProjectStatusCompleted ProjectStatus = "completed"
	ProjectStatusCancelled ProjectStatus = "cancelled"

	ApplicationStatusPending  ApplicationStatus = "pending"
	ApplicationStatusAccepted ApplicationStatus = "accepted"
	ApplicationStatusRejected ApplicationStatus = "rejected"

	CategoryStatusPending  CategoryStatus = "pending"
	CategoryStatusApproved CategoryStatus = "approved"

	CurrencyCOP Currency = "COP"
	CurrencyUSD Currency = "USD"
)

// TerminalProjectStatuses are the statuses a PATCH may move an open
// project into. None of them lead back to "open".
var TerminalProjectStatuses = []ProjectStatus{
	ProjectStatusClosed,
	ProjectStatusCompleted,
	ProjectStatusCancelled,
}

func IsTerminalProjectStatus(s ProjectStatus) bool {
	for _, t := range TerminalProjectStatuses {
		if s == t {
			return true
		}
	}
	return false
}
