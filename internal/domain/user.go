package domain

import (
	"time"

	"github.com/google/uuid"
)

// User represents a person known to the system. Identity is asserted by CAS
// via Username; the row itself is created by administrators.
type User struct {
	ID          uuid.UUID
	Username    string
	Email       string
	Name        string
	Department  string
	Role        UserRole
	IsActive    bool
	LastLoginAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CanReview reports whether u may move the record owned by owner into target.
// Reviewers never act on their own records; department reviewers are limited
// to their own department.
func (u *User) CanReview(owner *User, target RecordStatus) bool {
	if u == nil || owner == nil || !u.IsActive {
		return false
	}
	if u.ID == owner.ID {
		return false
	}

	switch target {
	case RecordStatusDepartmentReviewed:
		if u.Role == UserRoleAdmin {
			return true
		}
		return u.Role == UserRoleDepartmentReviewer && u.Department != "" && u.Department == owner.Department
	case RecordStatusSchoolReviewed:
		return u.Role == UserRoleSchoolReviewer || u.Role == UserRoleAdmin
	}
	return false
}

// CanView reports whether u may read the record owned by owner.
func (u *User) CanView(owner *User) bool {
	if u == nil || owner == nil {
		return false
	}
	if u.ID == owner.ID {
		return true
	}
	switch u.Role {
	case UserRoleAdmin, UserRoleSchoolReviewer:
		return true
	case UserRoleDepartmentReviewer:
		return u.Department != "" && u.Department == owner.Department
	}
	return false
}
