package entity

import (
	"strings"
	"time"

	"clinic-cms-backend/pkg/apperrors"

	"github.com/google/uuid"
)

// FAQ represents a frequently asked question shown on the site
type FAQ struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Question  string    `gorm:"type:text;not null" json:"question"`
	Answer    string    `gorm:"type:text;not null" json:"answer"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (FAQ) TableName() string {
	return "faqs"
}

func NewFAQ(id uuid.UUID, question, answer string) (*FAQ, error) {
	now := time.Now()
	faq := &FAQ{
		ID:        id,
		Question:  question,
		Answer:    answer,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := faq.validate(); err != nil {
		return nil, err
	}
	return faq, nil
}

func (f *FAQ) validate() error {
	if strings.TrimSpace(f.Question) == "" {
		return apperrors.NewValidation("question must not be empty")
	}
	if strings.TrimSpace(f.Answer) == "" {
		return apperrors.NewValidation("answer must not be empty")
	}
	return nil
}

type FAQPatch struct {
	Question *string
	Answer   *string
}

func (f *FAQ) Update(patch FAQPatch) error {
	if patch.Question != nil {
		f.Question = *patch.Question
	}
	if patch.Answer != nil {
		f.Answer = *patch.Answer
	}
	if err := f.validate(); err != nil {
		return err
	}
	f.UpdatedAt = time.Now()
	return nil
}
