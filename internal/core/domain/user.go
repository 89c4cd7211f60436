package domain

// UserRole controls what payroll operations a caller may perform.
// Only admins may authorize a payroll run.
type UserRole string

const (
	RoleAdmin UserRole = "ADMIN"
	RoleClerk UserRole = "CLERK"
)

// User is an application login.
type User struct {
	UserID       string   `json:"userID"` // Primary key (UUID)
	Username     string   `json:"username"`
	PasswordHash string   `json:"-"`
	Role         UserRole `json:"role"`
	AuditFields
}
