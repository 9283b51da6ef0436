package valueobject

import (
	"regexp"
	"strings"

	"clinic-cms-backend/pkg/apperrors"

	"github.com/google/uuid"
)

// Conservative local@domain.tld check; anything fancier belongs to the
// auth provider that actually delivers mail.
var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// EntityID wraps an entity identifier. Immutable once constructed.
type EntityID struct {
	value uuid.UUID
}

func NewEntityID(value string) (EntityID, error) {
	if strings.TrimSpace(value) == "" {
		return EntityID{}, apperrors.NewValidation("entity id must not be empty")
	}
	id, err := uuid.Parse(strings.TrimSpace(value))
	if err != nil {
		return EntityID{}, apperrors.NewValidation("entity id must be a valid UUID")
	}
	return EntityID{value: id}, nil
}

func (id EntityID) UUID() uuid.UUID {
	return id.value
}

func (id EntityID) String() string {
	return id.value.String()
}

func (id EntityID) Equals(other EntityID) bool {
	return id.value == other.value
}

// Email wraps a validated email address.
type Email struct {
	value string
}

func NewEmail(value string) (Email, error) {
	trimmed := strings.TrimSpace(value)
	if !emailPattern.MatchString(trimmed) {
		return Email{}, apperrors.NewValidation("invalid email address: %s", value)
	}
	return Email{value: trimmed}, nil
}

func (e Email) String() string {
	return e.value
}

func (e Email) Equals(other Email) bool {
	return e.value == other.value
}

// PhoneNumber wraps a non-empty phone number. Format is deliberately left
// open; the source data mixes local and international notations.
type PhoneNumber struct {
	value string
}

func NewPhoneNumber(value string) (PhoneNumber, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return PhoneNumber{}, apperrors.NewValidation("phone number must not be empty")
	}
	return PhoneNumber{value: trimmed}, nil
}

func (p PhoneNumber) String() string {
	return p.value
}

func (p PhoneNumber) Equals(other PhoneNumber) bool {
	return p.value == other.value
}
