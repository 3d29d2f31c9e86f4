package booking

import (
	"context"
	"fmt"
	"time"

	appointmentRepo "nutribook/database/repository/appointment"
	slotRepo "nutribook/database/repository/slot"
	"nutribook/models"
)

// AvailabilityService lists the bookable consultation slots for a date and
// appointment mode. Slot supply is an external collaborator, never a
// hardcoded list in the flow itself.
type AvailabilityService interface {
	ListAvailableSlots(ctx context.Context, date string, mode string) ([]models.Slot, error)
}

// DefaultAvailabilityService computes availability from the stored slot
// templates minus the slots already booked for the date.
type DefaultAvailabilityService struct {
	Slots     slotRepo.SlotRepository
	Confirmed appointmentRepo.ConfirmedRepository
}

// ListAvailableSlots returns open slots for the date and mode. The clinic is
// closed on Sundays. Dates are ISO "2006-01-02" strings.
func (s *DefaultAvailabilityService) ListAvailableSlots(ctx context.Context, date string, mode string) ([]models.Slot, error) {
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", date, err)
	}
	if day.Weekday() == time.Sunday {
		return []models.Slot{}, nil
	}

	mode = models.NormalizeMode(mode)
	templates, err := s.Slots.ListByMode(ctx, mode)
	if err != nil {
		return nil, fmt.Errorf("failed to load slot templates: %w", err)
	}

	bookedIDs, err := s.Confirmed.ListBookedSlotIDs(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("failed to load booked slots: %w", err)
	}
	booked := make(map[string]struct{}, len(bookedIDs))
	for _, id := range bookedIDs {
		booked[id] = struct{}{}
	}

	open := make([]models.Slot, 0, len(templates))
	for _, slot := range templates {
		if _, taken := booked[slot.ID]; !taken {
			open = append(open, slot)
		}
	}
	return open, nil
}

// DefaultSlotTemplates are the clinic's standard daily windows, used to seed
// an empty slot collection. In-person consultations run in the morning,
// online ones in the afternoon and evening.
func DefaultSlotTemplates() []models.Slot {
	return []models.Slot{
		{ID: "inperson-1000", Mode: models.ModeInPerson, Label: "10:00 AM – 10:40 AM", StartMinute: 600, EndMinute: 640},
		{ID: "inperson-1100", Mode: models.ModeInPerson, Label: "11:00 AM – 11:40 AM", StartMinute: 660, EndMinute: 700},
		{ID: "inperson-1200", Mode: models.ModeInPerson, Label: "12:00 PM – 12:40 PM", StartMinute: 720, EndMinute: 760},
		{ID: "online-1400", Mode: models.ModeOnline, Label: "2:00 PM – 2:40 PM", StartMinute: 840, EndMinute: 880},
		{ID: "online-1500", Mode: models.ModeOnline, Label: "3:00 PM – 3:40 PM", StartMinute: 900, EndMinute: 940},
		{ID: "online-1600", Mode: models.ModeOnline, Label: "4:00 PM – 4:40 PM", StartMinute: 960, EndMinute: 1000},
		{ID: "online-1700", Mode: models.ModeOnline, Label: "5:00 PM – 5:40 PM", StartMinute: 1020, EndMinute: 1060},
		{ID: "online-1800", Mode: models.ModeOnline, Label: "6:00 PM – 6:40 PM", StartMinute: 1080, EndMinute: 1120},
		{ID: "online-1900", Mode: models.ModeOnline, Label: "7:00 PM – 7:40 PM", StartMinute: 1140, EndMinute: 1180},
	}
}
