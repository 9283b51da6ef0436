package converter

import (
	"clinic-cms-backend/internal/delivery/dto"
	"clinic-cms-backend/internal/domain/entity"
)

// DoctorToResponse converts a Doctor entity to its transport shape
func DoctorToResponse(doctor *entity.Doctor) *dto.DoctorResponse {
	if doctor == nil {
		return nil
	}

	return &dto.DoctorResponse{
		ID:              doctor.ID,
		FullName:        doctor.FullName,
		Specialist:      doctor.Specialist,
		PhotoURL:        doctor.PhotoURL,
		Education:       doctor.Education,
		Experience:      doctor.Experience,
		Schedule:        WeeklyScheduleToDTO(doctor.Schedule),
		STRNumber:       doctor.STRNumber,
		SIPNumber:       doctor.SIPNumber,
		Phone:           doctor.Phone,
		Email:           doctor.Email,
		Gender:          doctor.Gender,
		YearsOfPractice: doctor.YearsOfPractice,
		ClinicRoom:      doctor.ClinicRoom,
		Status:          string(doctor.Status),
		CreatedAt:       doctor.CreatedAt,
		UpdatedAt:       doctor.UpdatedAt,
	}
}

func DoctorsToListResponse(doctors []entity.Doctor) *dto.DoctorListResponse {
	responses := make([]dto.DoctorResponse, len(doctors))
	for i := range doctors {
		responses[i] = *DoctorToResponse(&doctors[i])
	}
	return &dto.DoctorListResponse{
		Doctors: responses,
		Total:   len(responses),
	}
}
