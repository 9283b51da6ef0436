package dto

// DayHoursDTO mirrors one weekday entry of a schedule at the transport boundary.
type DayHoursDTO struct {
	Start     string `json:"start"`
	End       string `json:"end"`
	Available bool   `json:"available"`
}

type WeeklyScheduleDTO map[string]DayHoursDTO
