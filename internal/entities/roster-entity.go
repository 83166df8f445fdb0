package entities

import (
	"github.com/aarondl/null/v8"

	"roster-system/pkg/types"
)

// RosterRecord is one employee row in one of the role tables. The pair
// (AgentID, OdooID) identifies the person across imports; either side may
// be absent, but each is unique within its table when set.
type RosterRecord struct {
	ID        uint64      `json:"id" db:"id"`
	Name      string      `json:"name" db:"name"`
	LastName  string      `json:"last_name" db:"last_name"`
	FirstName string      `json:"first_name" db:"first_name"`
	Batch     null.String `json:"batch" db:"batch"`

	AgentID null.String `json:"agent_id" db:"agent_id"`
	OdooID  null.String `json:"odoo_id" db:"odoo_id"`

	BOUser     null.String `json:"bo_user" db:"bo_user"`
	Axonify    null.String `json:"axonify" db:"axonify"`
	Supervisor null.String `json:"supervisor" db:"supervisor"`
	Manager    null.String `json:"manager" db:"manager"`
	Tier       null.String `json:"tier" db:"tier"`
	Shift      null.String `json:"shift" db:"shift"`
	Schedule   null.String `json:"schedule" db:"schedule"`
	Department null.String `json:"department" db:"department"`
	Role       null.String `json:"role" db:"role"`

	Phase1Date null.Time `json:"phase_1_date" db:"phase_1_date"`
	Phase2Date null.Time `json:"phase_2_date" db:"phase_2_date"`
	Phase3Date null.Time `json:"phase_3_date" db:"phase_3_date"`
	HireDate   null.Time `json:"hire_date" db:"hire_date"`

	types.BaseEntity
}
