package entity

import (
	"strings"
	"time"

	"clinic-cms-backend/pkg/apperrors"

	"github.com/google/uuid"
)

// Partner represents a partner organization whose logo is shown on the site
type Partner struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ImageURL  string    `gorm:"column:image_url;type:text;not null" json:"image_url"`
	Name      string    `gorm:"type:varchar(255)" json:"name,omitempty"`
	Link      string    `gorm:"type:text" json:"link,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Partner) TableName() string {
	return "partners"
}

type NewPartnerParams struct {
	ImageURL string
	Name     string
	Link     string
}

func NewPartner(id uuid.UUID, p NewPartnerParams) (*Partner, error) {
	now := time.Now()
	partner := &Partner{
		ID:        id,
		ImageURL:  p.ImageURL,
		Name:      p.Name,
		Link:      p.Link,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := partner.validate(); err != nil {
		return nil, err
	}
	return partner, nil
}

func (p *Partner) validate() error {
	if strings.TrimSpace(p.ImageURL) == "" {
		return apperrors.NewValidation("image_url must not be empty")
	}
	return nil
}

type PartnerPatch struct {
	ImageURL *string
	Name     *string
	Link     *string
}

func (p *Partner) Update(patch PartnerPatch) error {
	if patch.ImageURL != nil {
		p.ImageURL = *patch.ImageURL
	}
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Link != nil {
		p.Link = *patch.Link
	}
	if err := p.validate(); err != nil {
		return err
	}
	p.UpdatedAt = time.Now()
	return nil
}
