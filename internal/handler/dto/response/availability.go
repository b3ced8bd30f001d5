package response

import (
	"time"

	"slotbook/internal/usecase/queries"
)

type AvailabilityResponse struct {
	Date            string   `json:"date"`
	DurationMinutes int      `json:"durationMinutes"`
	Slots           []string `json:"slots"`
}

func FromAvailabilityView(view *queries.AvailabilityView) *AvailabilityResponse {
	slots := make([]string, len(view.Slots))
	for i, s := range view.Slots {
		slots[i] = s.Format(time.RFC3339)
	}
	return &AvailabilityResponse{
		Date:            view.Date,
		DurationMinutes: view.DurationMinutes,
		Slots:           slots,
	}
}
