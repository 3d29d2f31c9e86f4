package booking

import (
	"fmt"
	"sort"

	"nutribook/models"
)

// plansMap is the static catalog of consultation plans. The catalog is
// compile-time data: offerings change with releases, not at runtime.
var plansMap = map[string]models.Plan{
	"weight-loss": {
		Name: "Weight Loss Plan",
		Slug: "weight-loss",
		Description: "Weight loss with a balanced diet — region-based, healthy eating " +
			"patterns tailored to your lifestyle.",
		Packages: []models.PlanPackage{
			{
				Name:        "3 Month Package",
				Slug:        "weight-loss-3-month",
				Duration:    "3 months",
				Price:       "₹17,800",
				AmountPaise: 1780000,
				Features: []string{
					"Personalized diet plans for each month",
					"Weekly follow-ups & adjustments",
					"1-month post-program maintenance",
				},
			},
			{
				Name:        "6 Month Package",
				Slug:        "weight-loss-6-month",
				Duration:    "6 months",
				Price:       "₹26,800",
				AmountPaise: 2680000,
				Features: []string{
					"Long-term transformation & lifestyle coaching",
					"Monthly progress tracking & body measurements",
					"Post-program maintenance plan",
				},
			},
		},
	},
	"kids-nutrition": {
		Name: "Kids Nutrition Plan",
		Slug: "kids-nutrition",
		Description: "Specialized nutrition care for children from 6 months to 18 years: " +
			"fussy eating, weight issues, and growth optimization.",
		Packages: []models.PlanPackage{
			{
				Name:        "Baby First Solid Food (6 months – 2 years)",
				Slug:        "kids-solid-food",
				Price:       "₹5,500",
				AmountPaise: 550000,
				Features: []string{
					"Baby readiness & tolerance discussion",
					"Stage-wise solid introduction plan",
					"Caregiver guidance sessions",
				},
			},
			{
				Name:        "Growing Kids (2 – 18 years)",
				Slug:        "kids-growing",
				Price:       "₹7,500",
				AmountPaise: 750000,
				Features: []string{
					"Growth and activity based meal plans",
					"Fussy-eating management",
					"Monthly progress reviews",
				},
			},
		},
	},
	"diabetes-care": {
		Name: "Diabetes Care Plan",
		Slug: "diabetes-care",
		Description: "Blood-sugar friendly meal planning with regular reviews for " +
			"type 2 and pre-diabetic patients.",
		Packages: []models.PlanPackage{
			{
				Name:        "3 Month Package",
				Slug:        "diabetes-3-month",
				Duration:    "3 months",
				Price:       "₹15,500",
				AmountPaise: 1550000,
				Features: []string{
					"HbA1c-aware diet planning",
					"Fortnightly reviews",
					"Medication-meal timing guidance",
				},
			},
		},
	},
	"general-wellness": {
		Name: "General Wellness Consultation",
		Slug: "general-wellness",
		Description: "A single in-depth consultation covering diet review, lifestyle " +
			"audit, and a one-month plan.",
		Packages: []models.PlanPackage{
			{
				Name:        "Single Consultation",
				Slug:        "wellness-single",
				Price:       "₹2,000",
				AmountPaise: 200000,
				Features: []string{
					"60-minute consultation",
					"One-month diet chart",
					"Email follow-up",
				},
			},
		},
	},
}

// ListPlans returns the full plan catalog.
func ListPlans() []models.Plan {
	plans := make([]models.Plan, 0, len(plansMap))
	for _, p := range plansMap {
		plans = append(plans, p)
	}
	sort.Slice(plans, func(i, j int) bool { return plans[i].Slug < plans[j].Slug })
	return plans
}

// GetPlanBySlug looks up a plan by its slug.
func GetPlanBySlug(slug string) (*models.Plan, error) {
	plan, ok := plansMap[slug]
	if !ok {
		return nil, fmt.Errorf("plan with slug %q not found", slug)
	}
	return &plan, nil
}

// GetPlanPackage looks up a package within a plan. An empty package slug
// selects the plan's first package.
func GetPlanPackage(planSlug, packageSlug string) (*models.Plan, *models.PlanPackage, error) {
	plan, err := GetPlanBySlug(planSlug)
	if err != nil {
		return nil, nil, err
	}
	if len(plan.Packages) == 0 {
		return nil, nil, fmt.Errorf("plan %q has no packages", planSlug)
	}
	if packageSlug == "" {
		return plan, &plan.Packages[0], nil
	}
	for i := range plan.Packages {
		if plan.Packages[i].Slug == packageSlug {
			return plan, &plan.Packages[i], nil
		}
	}
	return nil, nil, fmt.Errorf("package %q not found in plan %q", packageSlug, planSlug)
}
