package converter

import (
	"clinic-cms-backend/internal/delivery/dto"
	"clinic-cms-backend/internal/domain/entity"
)

func PolyClinicToResponse(polyclinic *entity.PolyClinic) *dto.PolyClinicResponse {
	if polyclinic == nil {
		return nil
	}

	return &dto.PolyClinicResponse{
		ID:           polyclinic.ID,
		Name:         polyclinic.Name,
		Description:  polyclinic.Description,
		Head:         polyclinic.Head,
		Location:     polyclinic.Location,
		Phone:        polyclinic.Phone,
		Email:        polyclinic.Email,
		WorkingHours: WeeklyScheduleToDTO(polyclinic.WorkingHours),
		Capacity:     polyclinic.Capacity,
		Services:     []string(polyclinic.Services),
		Status:       string(polyclinic.Status),
		CreatedAt:    polyclinic.CreatedAt,
		UpdatedAt:    polyclinic.UpdatedAt,
	}
}

func PolyClinicsToListResponse(polyclinics []entity.PolyClinic) *dto.PolyClinicListResponse {
	responses := make([]dto.PolyClinicResponse, len(polyclinics))
	for i := range polyclinics {
		responses[i] = *PolyClinicToResponse(&polyclinics[i])
	}
	return &dto.PolyClinicListResponse{
		PolyClinics: responses,
		Total:       len(responses),
	}
}
