package converter

import (
	"clinic-cms-backend/internal/delivery/dto"
	"clinic-cms-backend/internal/domain/entity"
)

func WeeklyScheduleToDTO(schedule entity.WeeklySchedule) dto.WeeklyScheduleDTO {
	if schedule == nil {
		return nil
	}
	result := make(dto.WeeklyScheduleDTO, len(schedule))
	for day, hours := range schedule {
		result[day] = dto.DayHoursDTO{
			Start:     hours.Start,
			End:       hours.End,
			Available: hours.Available,
		}
	}
	return result
}

func WeeklyScheduleFromDTO(schedule dto.WeeklyScheduleDTO) entity.WeeklySchedule {
	if schedule == nil {
		return nil
	}
	result := make(entity.WeeklySchedule, len(schedule))
	for day, hours := range schedule {
		result[day] = entity.DayHours{
			Start:     hours.Start,
			End:       hours.End,
			Available: hours.Available,
		}
	}
	return result
}
