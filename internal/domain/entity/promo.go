package entity

import (
	"strings"
	"time"

	"clinic-cms-backend/pkg/apperrors"

	"github.com/google/uuid"
)

type PromoStatus string

const (
	PromoStatusActive   PromoStatus = "active"
	PromoStatusInactive PromoStatus = "inactive"
)

// Promo represents a marketing promotion with an optional validity window
type Promo struct {
	ID          uuid.UUID   `gorm:"type:uuid;primaryKey" json:"id"`
	Title       string      `gorm:"type:varchar(255);not null" json:"title"`
	Description string      `gorm:"type:text;not null" json:"description"`
	ImageURL    string      `gorm:"column:image_url;type:text" json:"image_url,omitempty"`
	StartDate   *time.Time  `gorm:"type:timestamptz" json:"start_date,omitempty"`
	EndDate     *time.Time  `gorm:"type:timestamptz" json:"end_date,omitempty"`
	Status      PromoStatus `gorm:"type:varchar(20);not null;default:'active'" json:"status"`
	CreatedAt   time.Time   `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time   `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Promo) TableName() string {
	return "promos"
}

type NewPromoParams struct {
	Title       string
	Description string
	ImageURL    string
	StartDate   *time.Time
	EndDate     *time.Time
}

func NewPromo(id uuid.UUID, p NewPromoParams) (*Promo, error) {
	now := time.Now()
	promo := &Promo{
		ID:          id,
		Title:       p.Title,
		Description: p.Description,
		ImageURL:    p.ImageURL,
		StartDate:   p.StartDate,
		EndDate:     p.EndDate,
		Status:      PromoStatusActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := promo.validate(); err != nil {
		return nil, err
	}
	return promo, nil
}

func (p *Promo) validate() error {
	if strings.TrimSpace(p.Title) == "" {
		return apperrors.NewValidation("title must not be empty")
	}
	if strings.TrimSpace(p.Description) == "" {
		return apperrors.NewValidation("description must not be empty")
	}
	if p.StartDate != nil && p.EndDate != nil && p.StartDate.After(*p.EndDate) {
		return apperrors.NewValidation("start_date must not be after end_date")
	}
	return nil
}

type PromoPatch struct {
	Title       *string
	Description *string
	ImageURL    *string
	StartDate   *time.Time
	EndDate     *time.Time
}

func (p *Promo) Update(patch PromoPatch) error {
	if patch.Title != nil {
		p.Title = *patch.Title
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.ImageURL != nil {
		p.ImageURL = *patch.ImageURL
	}
	if patch.StartDate != nil {
		p.StartDate = patch.StartDate
	}
	if patch.EndDate != nil {
		p.EndDate = patch.EndDate
	}
	if err := p.validate(); err != nil {
		return err
	}
	p.UpdatedAt = time.Now()
	return nil
}

func (p *Promo) Activate() {
	p.Status = PromoStatusActive
	p.UpdatedAt = time.Now()
}

func (p *Promo) Deactivate() {
	p.Status = PromoStatusInactive
	p.UpdatedAt = time.Now()
}

// IsStarted reports whether the promo window has opened. A promo without a
// start date is considered started.
func (p *Promo) IsStarted() bool {
	if p.StartDate == nil {
		return true
	}
	return !time.Now().Before(*p.StartDate)
}

// IsExpired reports whether the promo window has closed. A promo without an
// end date never expires.
func (p *Promo) IsExpired() bool {
	if p.EndDate == nil {
		return false
	}
	return time.Now().After(*p.EndDate)
}

// IsCurrentlyActive is computed from wall clock on every call, never cached.
func (p *Promo) IsCurrentlyActive() bool {
	return p.Status == PromoStatusActive && p.IsStarted() && !p.IsExpired()
}
