package entity

import (
	"strings"
	"time"

	"clinic-cms-backend/internal/domain/valueobject"
	"clinic-cms-backend/pkg/apperrors"

	"github.com/google/uuid"
)

type DoctorStatus string

const (
	DoctorStatusActive   DoctorStatus = "active"
	DoctorStatusInactive DoctorStatus = "inactive"
)

// Doctor represents a practitioner shown on the clinic website
type Doctor struct {
	ID              uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	FullName        string         `gorm:"type:varchar(255);not null" json:"full_name"`
	Specialist      string         `gorm:"type:varchar(255);not null" json:"specialist"`
	PhotoURL        string         `gorm:"column:photo_url;type:text" json:"photo_url,omitempty"`
	Education       string         `gorm:"type:text" json:"education,omitempty"`
	Experience      string         `gorm:"type:text" json:"experience,omitempty"`
	Schedule        WeeklySchedule `gorm:"type:jsonb" json:"schedule,omitempty"`
	STRNumber       string         `gorm:"column:str_number;type:varchar(50)" json:"str_number,omitempty"`
	SIPNumber       string         `gorm:"column:sip_number;type:varchar(50)" json:"sip_number,omitempty"`
	Phone           string         `gorm:"type:varchar(30)" json:"phone,omitempty"`
	Email           string         `gorm:"type:varchar(255)" json:"email,omitempty"`
	Gender          string         `gorm:"type:varchar(20)" json:"gender,omitempty"`
	YearsOfPractice int            `gorm:"default:0" json:"years_of_practice,omitempty"`
	ClinicRoom      string         `gorm:"type:varchar(50)" json:"clinic_room,omitempty"`
	Status          DoctorStatus   `gorm:"type:varchar(20);not null;default:'active'" json:"status"`
	CreatedAt       time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Doctor) TableName() string {
	return "doctors"
}

type NewDoctorParams struct {
	FullName        string
	Specialist      string
	PhotoURL        string
	Education       string
	Experience      string
	Schedule        WeeklySchedule
	STRNumber       string
	SIPNumber       string
	Phone           string
	Email           string
	Gender          string
	YearsOfPractice int
	ClinicRoom      string
}

func NewDoctor(id uuid.UUID, p NewDoctorParams) (*Doctor, error) {
	now := time.Now()
	doctor := &Doctor{
		ID:              id,
		FullName:        p.FullName,
		Specialist:      p.Specialist,
		PhotoURL:        p.PhotoURL,
		Education:       p.Education,
		Experience:      p.Experience,
		Schedule:        p.Schedule,
		STRNumber:       p.STRNumber,
		SIPNumber:       p.SIPNumber,
		Phone:           p.Phone,
		Email:           p.Email,
		Gender:          p.Gender,
		YearsOfPractice: p.YearsOfPractice,
		ClinicRoom:      p.ClinicRoom,
		Status:          DoctorStatusActive,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := doctor.validate(); err != nil {
		return nil, err
	}
	return doctor, nil
}

func (d *Doctor) validate() error {
	if strings.TrimSpace(d.FullName) == "" {
		return apperrors.NewValidation("full_name must not be empty")
	}
	if strings.TrimSpace(d.Specialist) == "" {
		return apperrors.NewValidation("specialist must not be empty")
	}
	if d.Email != "" {
		if _, err := valueobject.NewEmail(d.Email); err != nil {
			return err
		}
	}
	if d.Phone != "" {
		if _, err := valueobject.NewPhoneNumber(d.Phone); err != nil {
			return err
		}
	}
	return nil
}

// DoctorPatch carries a partial update; nil fields are left untouched.
type DoctorPatch struct {
	FullName        *string
	Specialist      *string
	PhotoURL        *string
	Education       *string
	Experience      *string
	Schedule        *WeeklySchedule
	STRNumber       *string
	SIPNumber       *string
	Phone           *string
	Email           *string
	Gender          *string
	YearsOfPractice *int
	ClinicRoom      *string
}

func (d *Doctor) Update(patch DoctorPatch) error {
	if patch.FullName != nil {
		d.FullName = *patch.FullName
	}
	if patch.Specialist != nil {
		d.Specialist = *patch.Specialist
	}
	if patch.PhotoURL != nil {
		d.PhotoURL = *patch.PhotoURL
	}
	if patch.Education != nil {
		d.Education = *patch.Education
	}
	if patch.Experience != nil {
		d.Experience = *patch.Experience
	}
	if patch.Schedule != nil {
		d.Schedule = *patch.Schedule
	}
	if patch.STRNumber != nil {
		d.STRNumber = *patch.STRNumber
	}
	if patch.SIPNumber != nil {
		d.SIPNumber = *patch.SIPNumber
	}
	if patch.Phone != nil {
		d.Phone = *patch.Phone
	}
	if patch.Email != nil {
		d.Email = *patch.Email
	}
	if patch.Gender != nil {
		d.Gender = *patch.Gender
	}
	if patch.YearsOfPractice != nil {
		d.YearsOfPractice = *patch.YearsOfPractice
	}
	if patch.ClinicRoom != nil {
		d.ClinicRoom = *patch.ClinicRoom
	}
	if err := d.validate(); err != nil {
		return err
	}
	d.UpdatedAt = time.Now()
	return nil
}

func (d *Doctor) Activate() {
	d.Status = DoctorStatusActive
	d.UpdatedAt = time.Now()
}

func (d *Doctor) Deactivate() {
	d.Status = DoctorStatusInactive
	d.UpdatedAt = time.Now()
}

func (d *Doctor) IsActive() bool {
	return d.Status == DoctorStatusActive
}
