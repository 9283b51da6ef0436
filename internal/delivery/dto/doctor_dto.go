package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateDoctorRequest struct {
	FullName        string            `json:"full_name" validate:"required"`
	Specialist      string            `json:"specialist" validate:"required"`
	PhotoURL        string            `json:"photo_url" validate:"omitempty,url"`
	Education       string            `json:"education"`
	Experience      string            `json:"experience"`
	Schedule        WeeklyScheduleDTO `json:"schedule"`
	STRNumber       string            `json:"str_number"`
	SIPNumber       string            `json:"sip_number"`
	Phone           string            `json:"phone"`
	Email           string            `json:"email" validate:"omitempty,email"`
	Gender          string            `json:"gender" validate:"omitempty,oneof=male female"`
	YearsOfPractice int               `json:"years_of_practice" validate:"omitempty,gte=0"`
	ClinicRoom      string            `json:"clinic_room"`
}

type UpdateDoctorRequest struct {
	FullName        *string            `json:"full_name" validate:"omitempty"`
	Specialist      *string            `json:"specialist" validate:"omitempty"`
	PhotoURL        *string            `json:"photo_url" validate:"omitempty,url"`
	Education       *string            `json:"education"`
	Experience      *string            `json:"experience"`
	Schedule        *WeeklyScheduleDTO `json:"schedule"`
	STRNumber       *string            `json:"str_number"`
	SIPNumber       *string            `json:"sip_number"`
	Phone           *string            `json:"phone"`
	Email           *string            `json:"email" validate:"omitempty,email"`
	Gender          *string            `json:"gender" validate:"omitempty,oneof=male female"`
	YearsOfPractice *int               `json:"years_of_practice" validate:"omitempty,gte=0"`
	ClinicRoom      *string            `json:"clinic_room"`
	Status          *string            `json:"status" validate:"omitempty,oneof=active inactive"`
}

// Response DTOs

type DoctorResponse struct {
	ID              uuid.UUID         `json:"id"`
	FullName        string            `json:"full_name"`
	Specialist      string            `json:"specialist"`
	PhotoURL        string            `json:"photo_url,omitempty"`
	Education       string            `json:"education,omitempty"`
	Experience      string            `json:"experience,omitempty"`
	Schedule        WeeklyScheduleDTO `json:"schedule,omitempty"`
	STRNumber       string            `json:"str_number,omitempty"`
	SIPNumber       string            `json:"sip_number,omitempty"`
	Phone           string            `json:"phone,omitempty"`
	Email           string            `json:"email,omitempty"`
	Gender          string            `json:"gender,omitempty"`
	YearsOfPractice int               `json:"years_of_practice,omitempty"`
	ClinicRoom      string            `json:"clinic_room,omitempty"`
	Status          string            `json:"status"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
}

type DoctorListResponse struct {
	Doctors []DoctorResponse `json:"doctors"`
	Total   int              `json:"total"`
}
