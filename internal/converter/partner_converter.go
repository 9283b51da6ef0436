package converter

import (
	"clinic-cms-backend/internal/delivery/dto"
	"clinic-cms-backend/internal/domain/entity"
)

func PartnerToResponse(partner *entity.Partner) *dto.PartnerResponse {
	if partner == nil {
		return nil
	}

	return &dto.PartnerResponse{
		ID:        partner.ID,
		ImageURL:  partner.ImageURL,
		Name:      partner.Name,
		Link:      partner.Link,
		CreatedAt: partner.CreatedAt,
		UpdatedAt: partner.UpdatedAt,
	}
}

func PartnersToListResponse(partners []entity.Partner) *dto.PartnerListResponse {
	responses := make([]dto.PartnerResponse, len(partners))
	for i := range partners {
		responses[i] = *PartnerToResponse(&partners[i])
	}
	return &dto.PartnerListResponse{
		Partners: responses,
		Total:    len(responses),
	}
}
