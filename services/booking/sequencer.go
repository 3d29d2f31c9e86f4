package booking

import "nutribook/models"

// Routes for the four booking steps plus the terminal completion page. The
// sequencer owns only the ordering; path naming follows the web client.
const (
	RouteUserDetails     = "/book/user-details"
	RouteRecall          = "/book/recall"
	RouteSlot            = "/book/slot"
	RoutePayment         = "/book/payment"
	RouteBookingComplete = "/book/complete"
)

var stepRoutes = map[models.Step]string{
	models.StepUserDetails: RouteUserDetails,
	models.StepRecall:      RouteRecall,
	models.StepSlot:        RouteSlot,
	models.StepPayment:     RoutePayment,
}

// defaultRequiredFields is the declarative step -> required fields table.
// Every step page applies the same emptiness contract, so the rules live in
// one place instead of being duplicated per page.
var defaultRequiredFields = map[models.Step][]string{
	models.StepUserDetails: {"fullName", "mobile", "email", "dob", "gender", "weight", "height"},
	models.StepRecall:      {"bowel", "dailyFood", "waterIntake", "wakeUpTime", "sleepTime", "sleepQuality"},
	models.StepSlot:        {"appointmentMode", "appointmentDate", "appointmentTime", "slotId"},
	models.StepPayment:     {"planSlug", "planPrice"},
}

// weightLossExtraFields extends the user-details requirements for weight-loss
// plans, which collect full body measurements.
var weightLossExtraFields = []string{"neck", "waist", "hip", "chest"}

// PlanWeightLoss is the plan slug that triggers the extended measurements.
const PlanWeightLoss = "weight-loss"

// Sequencer encodes the fixed linear ordering of booking steps and gates
// advancement on per-step required-field validation. The step order is a
// compile-time constant; only the required-field table is configurable, and
// then only for tests.
type Sequencer struct {
	required map[models.Step][]string
}

// NewSequencer returns a Sequencer with the standard validation table.
func NewSequencer() *Sequencer {
	return NewSequencerWithConfig(defaultRequiredFields)
}

// NewSequencerWithConfig returns a Sequencer with a custom validation table.
func NewSequencerWithConfig(required map[models.Step][]string) *Sequencer {
	copied := make(map[models.Step][]string, len(required))
	for step, fields := range required {
		copied[step] = append([]string(nil), fields...)
	}
	return &Sequencer{required: copied}
}

// RequiredFields returns the ordered required field names for a step, taking
// the form's plan into account.
func (s *Sequencer) RequiredFields(form *models.BookingForm, step models.Step) []string {
	fields := s.required[step]
	if step == models.StepUserDetails && form.PlanSlug == PlanWeightLoss {
		fields = append(append([]string(nil), fields...), weightLossExtraFields...)
	}
	return fields
}

// Validate reports whether every required field for the step holds a present
// value. Missing, null, and empty-string values fail; zero and false pass.
// Validation is advisory: callers decide whether to block navigation.
func (s *Sequencer) Validate(form *models.BookingForm, step models.Step) bool {
	_, ok := s.FirstMissingField(form, step)
	return !ok
}

// FirstMissingField returns the first required field (in configured order)
// that fails the emptiness test, for surfacing a targeted error message.
func (s *Sequencer) FirstMissingField(form *models.BookingForm, step models.Step) (string, bool) {
	for _, field := range s.RequiredFields(form, step) {
		if _, present := form.Field(field); !present {
			return field, true
		}
	}
	return "", false
}

// NextRoute returns the route for the step immediately following the given
// one, or the booking-complete route after the last step.
func (s *Sequencer) NextRoute(step models.Step) string {
	rank := step.Rank()
	if rank < 0 || rank+1 >= len(models.StepOrder) {
		return RouteBookingComplete
	}
	return stepRoutes[models.StepOrder[rank+1]]
}

// PreviousRoute returns the prior step's route. The second return is false
// for the first step. Going back never requires validation.
func (s *Sequencer) PreviousRoute(step models.Step) (string, bool) {
	rank := step.Rank()
	if rank <= 0 {
		return "", false
	}
	return stepRoutes[models.StepOrder[rank-1]], true
}

// RouteFor returns the route serving a known step.
func RouteFor(step models.Step) (string, bool) {
	route, ok := stepRoutes[step]
	return route, ok
}
