package converter

import (
	"clinic-cms-backend/internal/delivery/dto"
	"clinic-cms-backend/internal/domain/entity"
)

func FacilityPhotoToResponse(photo *entity.FacilityPhoto) *dto.FacilityPhotoResponse {
	if photo == nil {
		return nil
	}

	return &dto.FacilityPhotoResponse{
		ID:          photo.ID,
		ImageURL:    photo.ImageURL,
		Title:       photo.Title,
		Description: photo.Description,
		CreatedAt:   photo.CreatedAt,
		UpdatedAt:   photo.UpdatedAt,
	}
}

func FacilityPhotosToListResponse(photos []entity.FacilityPhoto) *dto.FacilityPhotoListResponse {
	responses := make([]dto.FacilityPhotoResponse, len(photos))
	for i := range photos {
		responses[i] = *FacilityPhotoToResponse(&photos[i])
	}
	return &dto.FacilityPhotoListResponse{
		Photos: responses,
		Total:  len(responses),
	}
}
