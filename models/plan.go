package models

// PlanPackage is a purchasable package within a consultation plan.
type PlanPackage struct {
	Name        string   `json:"name"`
	Slug        string   `json:"slug"`
	Duration    string   `json:"duration,omitempty"`
	Price       string   `json:"price"`
	AmountPaise int64    `json:"amountPaise"`
	Features    []string `json:"features,omitempty"`
}

// Plan is a consultation offering. The slug conditionally alters which form
// fields are required during booking.
type Plan struct {
	Name        string        `json:"name"`
	Slug        string        `json:"slug"`
	Description string        `json:"description,omitempty"`
	Packages    []PlanPackage `json:"packages"`
}
