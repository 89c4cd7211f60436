package models

// UserRole controls which operations a user may perform.
type UserRole string

const (
	RoleAdmin UserRole = "ADMIN"
	RoleClerk UserRole = "CLERK"
)

// User represents an application user.
type User struct {
	UserID       string   `db:"user_id"`
	Username     string   `db:"username"`
	PasswordHash string   `db:"password_hash"`
	Role         UserRole `db:"role"`
	AuditFields
}
