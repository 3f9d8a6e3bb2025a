// Package profile keeps the editable part of a user's account page.
package profile

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"anirex/internal/apperr"
)

const (
	DefaultName    = "Default Name"
	MaxNameLength  = 100
	MaxPhoneLength = 32
)

var ErrNotFound = fmt.Errorf("profile not found: %w", apperr.ErrNotFound)

type Profile struct {
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	Bio       string    `json:"bio"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UpdateCommand is a field-level patch. Nil fields are left alone.
type UpdateCommand struct {
	Name  *string `json:"name"`
	Bio   *string `json:"bio"`
	Phone *string `json:"phone"`
}

// Normalize trims the name and checks field limits.
func (c *UpdateCommand) Normalize() error {
	if c.Name != nil {
		name := strings.TrimSpace(*c.Name)
		if name == "" {
			return fmt.Errorf("%w: name must not be empty", apperr.ErrValidation)
		}
		if utf8.RuneCountInString(name) > MaxNameLength {
			return fmt.Errorf("%w: name must be at most %d characters", apperr.ErrValidation, MaxNameLength)
		}
		c.Name = &name
	}
	if c.Phone != nil {
		phone := strings.TrimSpace(*c.Phone)
		if utf8.RuneCountInString(phone) > MaxPhoneLength {
			return fmt.Errorf("%w: phone must be at most %d characters", apperr.ErrValidation, MaxPhoneLength)
		}
		c.Phone = &phone
	}
	return nil
}

func (c *UpdateCommand) ToMap() map[string]any {
	updates := make(map[string]any)
	if c.Name != nil {
		updates["name"] = *c.Name
	}
	if c.Bio != nil {
		updates["bio"] = *c.Bio
	}
	if c.Phone != nil {
		updates["phone"] = *c.Phone
	}
	return updates
}
