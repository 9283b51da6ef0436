package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreatePolyClinicRequest struct {
	Name         string            `json:"name" validate:"required"`
	Description  string            `json:"description" validate:"required"`
	Head         string            `json:"head" validate:"required"`
	Location     string            `json:"location"`
	Phone        string            `json:"phone"`
	Email        string            `json:"email" validate:"omitempty,email"`
	WorkingHours WeeklyScheduleDTO `json:"working_hours"`
	Capacity     int               `json:"capacity" validate:"omitempty,gte=0"`
	Services     []string          `json:"services"`
}

type UpdatePolyClinicRequest struct {
	Name         *string            `json:"name" validate:"omitempty"`
	Description  *string            `json:"description" validate:"omitempty"`
	Head         *string            `json:"head" validate:"omitempty"`
	Location     *string            `json:"location"`
	Phone        *string            `json:"phone"`
	Email        *string            `json:"email" validate:"omitempty,email"`
	WorkingHours *WeeklyScheduleDTO `json:"working_hours"`
	Capacity     *int               `json:"capacity" validate:"omitempty,gte=0"`
	Services     *[]string          `json:"services"`
	Status       *string            `json:"status" validate:"omitempty,oneof=active inactive"`
}

type PolyClinicServiceRequest struct {
	Name string `json:"name" validate:"required"`
}

type PolyClinicResponse struct {
	ID           uuid.UUID         `json:"id"`
	Name         string            `json:"name"`
	Description  string            `json:"description"`
	Head         string            `json:"head"`
	Location     string            `json:"location,omitempty"`
	Phone        string            `json:"phone,omitempty"`
	Email        string            `json:"email,omitempty"`
	WorkingHours WeeklyScheduleDTO `json:"working_hours,omitempty"`
	Capacity     int               `json:"capacity,omitempty"`
	Services     []string          `json:"services,omitempty"`
	Status       string            `json:"status"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
}

type PolyClinicListResponse struct {
	PolyClinics []PolyClinicResponse `json:"polyclinics"`
	Total       int                  `json:"total"`
}
