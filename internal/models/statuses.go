package models

type UserRole string
type AuthProvider string
type RecordStatus string

const (
	UserRoleClient     UserRole = "client"
	UserRoleEmployee   UserRole = "employee"
	UserRoleAdmin      UserRole = "admin"
	UserRoleSuperadmin UserRole = "superadmin"

	AuthProviderEmail    AuthProvider = "email"
	AuthProviderApple    AuthProvider = "apple"
	AuthProviderGoogle   AuthProvider = "google"
	AuthProviderFacebook AuthProvider = "facebook"

	StatusPending   RecordStatus = "pending"
	StatusConfirmed RecordStatus = "confirmed"
	StatusCompleted RecordStatus = "completed"
	StatusCancelled RecordStatus = "cancelled"
	StatusPaid      RecordStatus = "paid"
)
