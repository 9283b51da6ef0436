package entity

import (
	"time"

	"github.com/google/uuid"
)

// AuditLog represents a record of an admin mutation
type AuditLog struct {
	ID        int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	ActorID   *uuid.UUID `gorm:"type:uuid;index" json:"actor_id,omitempty"`
	Action    string     `gorm:"type:varchar(100);not null;index" json:"action"`
	Metadata  JSON       `gorm:"type:jsonb" json:"metadata,omitempty"`
	CreatedAt time.Time  `gorm:"autoCreateTime;index" json:"created_at"`
}

func (AuditLog) TableName() string {
	return "audit_logs"
}

// Common audit actions
const (
	AuditActionDoctorCreate         = "doctor.create"
	AuditActionDoctorUpdate         = "doctor.update"
	AuditActionDoctorDelete         = "doctor.delete"
	AuditActionPromoCreate          = "promo.create"
	AuditActionPromoUpdate          = "promo.update"
	AuditActionPromoDelete          = "promo.delete"
	AuditActionFacilityPhotoCreate  = "facility_photo.create"
	AuditActionFacilityPhotoUpdate  = "facility_photo.update"
	AuditActionFacilityPhotoDelete  = "facility_photo.delete"
	AuditActionPartnerCreate        = "partner.create"
	AuditActionPartnerUpdate        = "partner.update"
	AuditActionPartnerDelete        = "partner.delete"
	AuditActionFAQCreate            = "faq.create"
	AuditActionFAQUpdate            = "faq.update"
	AuditActionFAQDelete            = "faq.delete"
	AuditActionTestimonialCreate    = "testimonial.create"
	AuditActionTestimonialUpdate    = "testimonial.update"
	AuditActionTestimonialDelete    = "testimonial.delete"
	AuditActionArticleCreate        = "article.create"
	AuditActionArticleUpdate        = "article.update"
	AuditActionArticleDelete        = "article.delete"
	AuditActionPolyClinicCreate     = "polyclinic.create"
	AuditActionPolyClinicUpdate     = "polyclinic.update"
	AuditActionPolyClinicDelete     = "polyclinic.delete"
	AuditActionClinicSettingsUpdate = "clinic_settings.update"
)
