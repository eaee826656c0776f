package auth

import (
	"net/mail"
	"unicode/utf8"

	"github.com/heartmarshall/dailydiet-backend/internal/domain"
)

const (
	maxNameLength     = 255
	maxEmailLength    = 254
	minPasswordLength = 8
	maxPasswordLength = 72 // bcrypt input limit, in bytes
)

// RegisterInput holds parameters for account registration.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// normalize tidies the name and lower-cases the email. The password is kept as is.
func (i RegisterInput) normalize() RegisterInput {
	i.Name = domain.NormalizeText(i.Name)
	i.Email = domain.NormalizeEmail(i.Email)
	return i
}

// Validate validates the registration input. Call after normalize.
func (i RegisterInput) Validate() error {
	var errs []domain.FieldError

	switch {
	case i.Name == "":
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	case utf8.RuneCountInString(i.Name) > maxNameLength:
		errs = append(errs, domain.FieldError{Field: "name", Message: "too long"})
	}

	switch {
	case i.Email == "":
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	case len(i.Email) > maxEmailLength:
		errs = append(errs, domain.FieldError{Field: "email", Message: "too long"})
	case !isPlainAddress(i.Email):
		errs = append(errs, domain.FieldError{Field: "email", Message: "invalid format"})
	}

	switch {
	case i.Password == "":
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	case len(i.Password) < minPasswordLength:
		errs = append(errs, domain.FieldError{Field: "password", Message: "too short"})
	case len(i.Password) > maxPasswordLength:
		errs = append(errs, domain.FieldError{Field: "password", Message: "too long"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// isPlainAddress accepts a bare RFC 5322 address ("a@b.c") and rejects
// display-name forms such as "Ann <a@b.c>".
func isPlainAddress(s string) bool {
	addr, err := mail.ParseAddress(s)
	if err != nil {
		return false
	}
	return addr.Address == s && addr.Name == ""
}

// LoginInput holds parameters for password login.
type LoginInput struct {
	Email    string
	Password string
}

// Validate checks presence only. Wrong or oversized credentials are reported
// as domain.ErrUnauthorized by Login, never as a field error.
func (i LoginInput) Validate() error {
	var errs []domain.FieldError

	if i.Email == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	}
	if i.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
