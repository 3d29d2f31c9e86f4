package models

// Step identifies one stage of the four-stage booking flow. The string values
// are shared with API clients verbatim, so they must never be renamed.
type Step string

const (
	StepUserDetails Step = "USER_DETAILS"
	StepRecall      Step = "RECALL"
	StepSlot        Step = "SLOT"
	StepPayment     Step = "PAYMENT"
)

// StepOrder is the fixed linear ordering of the booking flow.
var StepOrder = []Step{StepUserDetails, StepRecall, StepSlot, StepPayment}

// Rank returns the position of the step in the flow, or -1 for values outside
// the known vocabulary (including the empty "not started" marker).
func (s Step) Rank() int {
	for i, step := range StepOrder {
		if step == s {
			return i
		}
	}
	return -1
}

// Known reports whether the step is part of the booking vocabulary.
func (s Step) Known() bool {
	return s.Rank() >= 0
}
