package converter

import (
	"clinic-cms-backend/internal/delivery/dto"
	"clinic-cms-backend/internal/domain/entity"
)

func FAQToResponse(faq *entity.FAQ) *dto.FAQResponse {
	if faq == nil {
		return nil
	}

	return &dto.FAQResponse{
		ID:        faq.ID,
		Question:  faq.Question,
		Answer:    faq.Answer,
		CreatedAt: faq.CreatedAt,
		UpdatedAt: faq.UpdatedAt,
	}
}

func FAQsToListResponse(faqs []entity.FAQ) *dto.FAQListResponse {
	responses := make([]dto.FAQResponse, len(faqs))
	for i := range faqs {
		responses[i] = *FAQToResponse(&faqs[i])
	}
	return &dto.FAQListResponse{
		FAQs:  responses,
		Total: len(responses),
	}
}
