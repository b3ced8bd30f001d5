package request

import (
	"slotbook/internal/usecase/commands"
)

type WeekdayHoursRequest struct {
	Weekday   int      `json:"weekday" binding:"min=0,max=6"`
	IsOpen    bool     `json:"is_open"`
	TimeSlots []string `json:"time_slots"`
}

type ReplaceWeekRequest struct {
	Week []WeekdayHoursRequest `json:"week" binding:"required,len=7"`
}

func (r ReplaceWeekRequest) ToCommand() []commands.WeekdayHoursInput {
	week := make([]commands.WeekdayHoursInput, len(r.Week))
	for i, w := range r.Week {
		week[i] = commands.WeekdayHoursInput{
			Weekday:   w.Weekday,
			IsOpen:    w.IsOpen,
			TimeSlots: w.TimeSlots,
		}
	}
	return week
}
