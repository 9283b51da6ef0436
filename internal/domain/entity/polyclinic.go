package entity

import (
	"strings"
	"time"

	"clinic-cms-backend/internal/domain/valueobject"
	"clinic-cms-backend/pkg/apperrors"

	"github.com/google/uuid"
)

type PolyClinicStatus string

const (
	PolyClinicStatusActive   PolyClinicStatus = "active"
	PolyClinicStatusInactive PolyClinicStatus = "inactive"
)

// PolyClinic represents a specialist department of the clinic
type PolyClinic struct {
	ID           uuid.UUID        `gorm:"type:uuid;primaryKey" json:"id"`
	Name         string           `gorm:"type:varchar(255);not null" json:"name"`
	Description  string           `gorm:"type:text;not null" json:"description"`
	Head         string           `gorm:"type:varchar(255);not null" json:"head"`
	Location     string           `gorm:"type:varchar(255)" json:"location,omitempty"`
	Phone        string           `gorm:"type:varchar(30)" json:"phone,omitempty"`
	Email        string           `gorm:"type:varchar(255)" json:"email,omitempty"`
	WorkingHours WeeklySchedule   `gorm:"type:jsonb" json:"working_hours,omitempty"`
	Capacity     int              `gorm:"default:0" json:"capacity,omitempty"`
	Services     StringList       `gorm:"type:jsonb" json:"services,omitempty"`
	Status       PolyClinicStatus `gorm:"type:varchar(20);not null;default:'active'" json:"status"`
	CreatedAt    time.Time        `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time        `gorm:"autoUpdateTime" json:"updated_at"`
}

func (PolyClinic) TableName() string {
	return "polyclinics"
}

type NewPolyClinicParams struct {
	Name         string
	Description  string
	Head         string
	Location     string
	Phone        string
	Email        string
	WorkingHours WeeklySchedule
	Capacity     int
	Services     []string
}

func NewPolyClinic(id uuid.UUID, p NewPolyClinicParams) (*PolyClinic, error) {
	now := time.Now()
	polyclinic := &PolyClinic{
		ID:           id,
		Name:         p.Name,
		Description:  p.Description,
		Head:         p.Head,
		Location:     p.Location,
		Phone:        p.Phone,
		Email:        p.Email,
		WorkingHours: p.WorkingHours,
		Capacity:     p.Capacity,
		Services:     StringList(p.Services),
		Status:       PolyClinicStatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := polyclinic.validate(); err != nil {
		return nil, err
	}
	return polyclinic, nil
}

func (p *PolyClinic) validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return apperrors.NewValidation("name must not be empty")
	}
	if strings.TrimSpace(p.Description) == "" {
		return apperrors.NewValidation("description must not be empty")
	}
	if strings.TrimSpace(p.Head) == "" {
		return apperrors.NewValidation("head must not be empty")
	}
	if p.Email != "" {
		if _, err := valueobject.NewEmail(p.Email); err != nil {
			return err
		}
	}
	if p.Phone != "" {
		if _, err := valueobject.NewPhoneNumber(p.Phone); err != nil {
			return err
		}
	}
	if err := validateServices(p.Services); err != nil {
		return err
	}
	return nil
}

func validateServices(services StringList) error {
	seen := make(map[string]struct{}, len(services))
	for _, service := range services {
		if strings.TrimSpace(service) == "" {
			return apperrors.NewValidation("service name must not be empty")
		}
		if _, dup := seen[service]; dup {
			return apperrors.NewValidation("duplicate service: %s", service)
		}
		seen[service] = struct{}{}
	}
	return nil
}

type PolyClinicPatch struct {
	Name         *string
	Description  *string
	Head         *string
	Location     *string
	Phone        *string
	Email        *string
	WorkingHours *WeeklySchedule
	Capacity     *int
	Services     *[]string
}

func (p *PolyClinic) Update(patch PolyClinicPatch) error {
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.Head != nil {
		p.Head = *patch.Head
	}
	if patch.Location != nil {
		p.Location = *patch.Location
	}
	if patch.Phone != nil {
		p.Phone = *patch.Phone
	}
	if patch.Email != nil {
		p.Email = *patch.Email
	}
	if patch.WorkingHours != nil {
		p.WorkingHours = *patch.WorkingHours
	}
	if patch.Capacity != nil {
		p.Capacity = *patch.Capacity
	}
	if patch.Services != nil {
		p.Services = StringList(*patch.Services)
	}
	if err := p.validate(); err != nil {
		return err
	}
	p.UpdatedAt = time.Now()
	return nil
}

// AddService registers a service; a duplicate name is a conflict.
func (p *PolyClinic) AddService(name string) error {
	if strings.TrimSpace(name) == "" {
		return apperrors.NewValidation("service name must not be empty")
	}
	for _, service := range p.Services {
		if service == name {
			return apperrors.NewConflict("service %s already exists", name)
		}
	}
	p.Services = append(p.Services, name)
	p.UpdatedAt = time.Now()
	return nil
}

// RemoveService unregisters a service by exact name.
func (p *PolyClinic) RemoveService(name string) error {
	for i, service := range p.Services {
		if service == name {
			p.Services = append(p.Services[:i], p.Services[i+1:]...)
			p.UpdatedAt = time.Now()
			return nil
		}
	}
	return apperrors.NewValidation("service %s is not registered", name)
}

func (p *PolyClinic) Activate() {
	p.Status = PolyClinicStatusActive
	p.UpdatedAt = time.Now()
}

func (p *PolyClinic) Deactivate() {
	p.Status = PolyClinicStatusInactive
	p.UpdatedAt = time.Now()
}

func (p *PolyClinic) IsActive() bool {
	return p.Status == PolyClinicStatusActive
}
