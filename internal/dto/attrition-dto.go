package dto

import "github.com/aarondl/null/v8"

// AttritionRow is the normalized form of a departure-sheet row. Tenure
// fields are filled in by the attrition router before persisting.
type AttritionRow struct {
	Name      null.String `validate:"required"`
	LastName  null.String `validate:"required"`
	FirstName null.String `validate:"required"`
	Batch     null.String

	AgentID null.String
	OdooID  null.String

	Supervisor null.String
	Manager    null.String
	Tier       null.String
	Shift      null.String
	Schedule   null.String
	Department null.String
	Role       null.String

	HireDate        null.Time
	TerminationDate null.Time
	TermReason      null.String
	Voluntary       null.Bool

	TenureDays   null.Int
	TenureMonths null.Float64
	TenureYears  null.Float64
}
