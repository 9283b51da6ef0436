package repository

import (
	"errors"

	"clinic-cms-backend/internal/domain/entity"
	domainRepo "clinic-cms-backend/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type faqRepository struct{}

func NewFAQRepository() domainRepo.FAQRepository {
	return &faqRepository{}
}

func (r *faqRepository) Create(db *gorm.DB, faq *entity.FAQ) error {
	return db.Create(faq).Error
}

func (r *faqRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.FAQ, error) {
	var faq entity.FAQ
	err := db.Where("id = ?", id).First(&faq).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &faq, nil
}

func (r *faqRepository) FindAll(db *gorm.DB) ([]entity.FAQ, error) {
	var faqs []entity.FAQ
	err := db.Order("created_at ASC").Find(&faqs).Error
	if err != nil {
		return nil, err
	}
	return faqs, nil
}

func (r *faqRepository) Update(db *gorm.DB, faq *entity.FAQ) error {
	return db.Save(faq).Error
}

func (r *faqRepository) Delete(db *gorm.DB, id uuid.UUID) error {
	return db.Where("id = ?", id).Delete(&entity.FAQ{}).Error
}

func (r *faqRepository) Exists(db *gorm.DB, id uuid.UUID) (bool, error) {
	var count int64
	err := db.Model(&entity.FAQ{}).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
