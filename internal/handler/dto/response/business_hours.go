package response

import (
	"slotbook/internal/usecase/queries"
)

type WeekdayHoursResponse struct {
	Weekday   int      `json:"weekday"`
	IsOpen    bool     `json:"isOpen"`
	TimeSlots []string `json:"timeSlots"`
}

func FromWeekdayHoursViews(views []*queries.WeekdayHoursView) []*WeekdayHoursResponse {
	resp := make([]*WeekdayHoursResponse, len(views))
	for i, v := range views {
		resp[i] = &WeekdayHoursResponse{
			Weekday:   v.Weekday,
			IsOpen:    v.IsOpen,
			TimeSlots: v.TimeSlots,
		}
	}
	return resp
}
