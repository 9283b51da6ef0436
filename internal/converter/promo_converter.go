package converter

import (
	"time"

	"clinic-cms-backend/internal/delivery/dto"
	"clinic-cms-backend/internal/domain/entity"
	"clinic-cms-backend/pkg/apperrors"
)

var dateLayouts = []string{time.RFC3339, "2006-01-02"}

// ParseDate accepts RFC3339 timestamps and bare dates from the admin UI.
func ParseDate(field, value string) (*time.Time, error) {
	for _, layout := range dateLayouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return &parsed, nil
		}
	}
	return nil, apperrors.NewValidation("%s must be an ISO-8601 date", field)
}

func PromoToResponse(promo *entity.Promo) *dto.PromoResponse {
	if promo == nil {
		return nil
	}

	return &dto.PromoResponse{
		ID:                promo.ID,
		Title:             promo.Title,
		Description:       promo.Description,
		ImageURL:          promo.ImageURL,
		StartDate:         promo.StartDate,
		EndDate:           promo.EndDate,
		Status:            string(promo.Status),
		IsCurrentlyActive: promo.IsCurrentlyActive(),
		CreatedAt:         promo.CreatedAt,
		UpdatedAt:         promo.UpdatedAt,
	}
}

func PromosToListResponse(promos []entity.Promo) *dto.PromoListResponse {
	responses := make([]dto.PromoResponse, len(promos))
	for i := range promos {
		responses[i] = *PromoToResponse(&promos[i])
	}
	return &dto.PromoListResponse{
		Promos: responses,
		Total:  len(responses),
	}
}
