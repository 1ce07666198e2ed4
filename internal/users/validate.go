package users

import (
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// MinPasswordLength is the shortest accepted password.
const MinPasswordLength = 8

// PasswordCost is the bcrypt work factor for stored hashes.
const PasswordCost = 12

// Normalize trims whitespace and lowercases the email.
func (c *CreateCommand) Normalize() {
	c.Email = normalizeEmail(c.Email)
	c.FirstName = strings.TrimSpace(c.FirstName)
	c.LastName = strings.TrimSpace(c.LastName)
}

// Validate reports the first problem with the command, wrapped in ErrInvalid.
func (c CreateCommand) Validate() error {
	if err := validateEmail(c.Email); err != nil {
		return err
	}
	return validatePassword(c.Password)
}

// Normalize trims whitespace and lowercases the email.
func (c *UpdateCommand) Normalize() {
	c.Email = normalizeEmail(c.Email)
	c.FirstName = strings.TrimSpace(c.FirstName)
	c.LastName = strings.TrimSpace(c.LastName)
}

// Validate reports the first problem with the command, wrapped in ErrInvalid.
func (c UpdateCommand) Validate() error {
	return validateEmail(c.Email)
}

// Validate reports a password that is too short, wrapped in ErrInvalid.
func (c ResetPasswordCommand) Validate() error {
	return validatePassword(c.Password)
}

// HashPassword returns the bcrypt hash of password.
func HashPassword(password string) ([]byte, error) {
	return bcrypt.GenerateFromPassword([]byte(password), PasswordCost)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func validateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("%w: email required", ErrInvalid)
	}
	at := strings.IndexByte(email, '@')
	if at < 1 || at == len(email)-1 {
		return fmt.Errorf("%w: malformed email %q", ErrInvalid, email)
	}
	return nil
}

func validatePassword(password string) error {
	if len(password) < MinPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters", ErrInvalid, MinPasswordLength)
	}
	if len(password) > 72 {
		return fmt.Errorf("%w: password must be at most 72 bytes", ErrInvalid)
	}
	return nil
}
