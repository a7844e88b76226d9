package get_schedule

import (
	getSchedule "github.com/kiranchintala/app-booking/internal/usecase/get_schedule"
)

// SlotResponse слот дня в ответе API
type SlotResponse struct {
	Value     string `json:"value"`
	Label     string `json:"label"`
	Available bool   `json:"available"`
	Reason    string `json:"reason,omitempty"`
}

// ScheduleResponse ответ с расписанием слотов на дату
type ScheduleResponse struct {
	Date     string         `json:"date"`
	Slots    []SlotResponse `json:"slots"`
	Degraded bool           `json:"degraded,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP ответ
func FromUseCaseResponse(result *getSchedule.Response) *ScheduleResponse {
	slots := make([]SlotResponse, len(result.Slots))
	for i, slot := range result.Slots {
		slots[i] = SlotResponse{
			Value:     slot.Value,
			Label:     slot.Label,
			Available: slot.Available,
			Reason:    string(slot.Reason),
		}
	}

	return &ScheduleResponse{
		Date:     result.Date,
		Slots:    slots,
		Degraded: result.Degraded,
	}
}
