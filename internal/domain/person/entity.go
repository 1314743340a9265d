package person

import "time"

type Role string

const (
	RoleHR     Role = "hr"
	RoleLeader Role = "leader"
	RoleLabour Role = "labour"
)

// ParseRole accepts the role spellings found in imported data; the legacy
// records use "employee" for labourers.
func ParseRole(s string) (Role, bool) {
	switch s {
	case "hr":
		return RoleHR, true
	case "leader":
		return RoleLeader, true
	case "labour", "employee":
		return RoleLabour, true
	}
	return "", false
}

// Person is the unified people record. Leaders, HR staff and labourers all
// live in one collection, partitioned by Role.
type Person struct {
	ID           string    `bson:"_id" json:"id"`
	Name         string    `bson:"name" json:"name"`
	Email        string    `bson:"email" json:"email"`
	PasswordHash string    `bson:"password_hash" json:"-"`
	Role         Role      `bson:"role" json:"role"`
	IsActive     bool      `bson:"is_active" json:"is_active"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at" json:"updated_at"`
}
