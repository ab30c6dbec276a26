package auth

import (
	"github.com/heartmarshall/trainrec-backend/internal/domain"
)

const (
	maxTicketLength  = 4096
	maxServiceLength = 2048
)

// LoginInput holds parameters for the CAS login operation.
type LoginInput struct {
	Ticket  string
	Service string
}

// Validate validates the login input.
func (i LoginInput) Validate() error {
	var errs []domain.FieldError

	if i.Ticket == "" {
		errs = append(errs, domain.FieldError{Field: "ticket", Message: "required"})
	} else if len(i.Ticket) > maxTicketLength {
		errs = append(errs, domain.FieldError{Field: "ticket", Message: "too long"})
	}

	if i.Service == "" {
		errs = append(errs, domain.FieldError{Field: "service", Message: "required"})
	} else if len(i.Service) > maxServiceLength {
		errs = append(errs, domain.FieldError{Field: "service", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
