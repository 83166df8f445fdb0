package entities

import (
	"github.com/aarondl/null/v8"

	"roster-system/pkg/types"
)

// AttritionRecord is one departed employee, keyed by the same identity pair
// as RosterRecord but independent of the role tables.
type AttritionRecord struct {
	ID        uint64      `json:"id" db:"id"`
	Name      string      `json:"name" db:"name"`
	LastName  string      `json:"last_name" db:"last_name"`
	FirstName string      `json:"first_name" db:"first_name"`
	Batch     null.String `json:"batch" db:"batch"`

	AgentID null.String `json:"agent_id" db:"agent_id"`
	OdooID  null.String `json:"odoo_id" db:"odoo_id"`

	Supervisor null.String `json:"supervisor" db:"supervisor"`
	Manager    null.String `json:"manager" db:"manager"`
	Tier       null.String `json:"tier" db:"tier"`
	Shift      null.String `json:"shift" db:"shift"`
	Schedule   null.String `json:"schedule" db:"schedule"`
	Department null.String `json:"department" db:"department"`
	Role       null.String `json:"role" db:"role"`

	HireDate        null.Time   `json:"hire_date" db:"hire_date"`
	TerminationDate null.Time   `json:"termination_date" db:"termination_date"`
	TermReason      null.String `json:"term_reason" db:"term_reason"`
	Voluntary       null.Bool   `json:"voluntary" db:"voluntary"`

	TenureDays   null.Int     `json:"tenure_days" db:"tenure_days"`
	TenureMonths null.Float64 `json:"tenure_months" db:"tenure_months"`
	TenureYears  null.Float64 `json:"tenure_years" db:"tenure_years"`

	types.BaseEntity
}
