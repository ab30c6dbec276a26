package user

import (
	"net/mail"
	"strings"

	"github.com/heartmarshall/trainrec-backend/internal/domain"
)

// CreateUserInput holds parameters for registering a CAS user locally.
type CreateUserInput struct {
	Username   string
	Email      string
	Name       string
	Department string
	Role       domain.UserRole
}

// Validate validates the create user input.
func (i CreateUserInput) Validate() error {
	var errs []domain.FieldError

	username := strings.TrimSpace(i.Username)
	if username == "" {
		errs = append(errs, domain.FieldError{Field: "username", Message: "required"})
	} else if len(username) > 150 {
		errs = append(errs, domain.FieldError{Field: "username", Message: "too long"})
	}

	if i.Email != "" {
		if _, err := mail.ParseAddress(i.Email); err != nil {
			errs = append(errs, domain.FieldError{Field: "email", Message: "invalid address"})
		}
	}

	if len(i.Name) > 255 {
		errs = append(errs, domain.FieldError{Field: "name", Message: "too long"})
	}

	errs = append(errs, validateRole(i.Role, i.Department)...)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// SetRoleInput holds parameters for changing a user's role.
type SetRoleInput struct {
	Role       domain.UserRole
	Department string
}

// Validate validates the set role input.
func (i SetRoleInput) Validate() error {
	if errs := validateRole(i.Role, i.Department); len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// Department reviewers only act within a department, so they must have one.
func validateRole(role domain.UserRole, department string) []domain.FieldError {
	if !role.IsValid() {
		return []domain.FieldError{{Field: "role", Message: "invalid role"}}
	}
	if role == domain.UserRoleDepartmentReviewer && strings.TrimSpace(department) == "" {
		return []domain.FieldError{{Field: "department", Message: "required for department reviewers"}}
	}
	return nil
}
