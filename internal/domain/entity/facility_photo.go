package entity

import (
	"strings"
	"time"

	"clinic-cms-backend/pkg/apperrors"

	"github.com/google/uuid"
)

// FacilityPhoto represents a gallery photo of the clinic facilities
type FacilityPhoto struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ImageURL    string    `gorm:"column:image_url;type:text;not null" json:"image_url"`
	Title       string    `gorm:"type:varchar(255)" json:"title,omitempty"`
	Description string    `gorm:"type:text" json:"description,omitempty"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (FacilityPhoto) TableName() string {
	return "facility_photos"
}

type NewFacilityPhotoParams struct {
	ImageURL    string
	Title       string
	Description string
}

func NewFacilityPhoto(id uuid.UUID, p NewFacilityPhotoParams) (*FacilityPhoto, error) {
	now := time.Now()
	photo := &FacilityPhoto{
		ID:          id,
		ImageURL:    p.ImageURL,
		Title:       p.Title,
		Description: p.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := photo.validate(); err != nil {
		return nil, err
	}
	return photo, nil
}

func (f *FacilityPhoto) validate() error {
	if strings.TrimSpace(f.ImageURL) == "" {
		return apperrors.NewValidation("image_url must not be empty")
	}
	return nil
}

type FacilityPhotoPatch struct {
	ImageURL    *string
	Title       *string
	Description *string
}

func (f *FacilityPhoto) Update(patch FacilityPhotoPatch) error {
	if patch.ImageURL != nil {
		f.ImageURL = *patch.ImageURL
	}
	if patch.Title != nil {
		f.Title = *patch.Title
	}
	if patch.Description != nil {
		f.Description = *patch.Description
	}
	if err := f.validate(); err != nil {
		return err
	}
	f.UpdatedAt = time.Now()
	return nil
}
