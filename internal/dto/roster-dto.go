package dto

import "github.com/aarondl/null/v8"

// RawRow is one spreadsheet row as it came off the sheet: canonical column
// name to raw cell text. Position is the 1-based row number in the source
// sheet, kept for error reporting.
type RawRow struct {
	Position int
	Cells    map[string]string
}

func (r RawRow) Get(column string) string {
	return r.Cells[column]
}

// RosterRow is the normalized form of a main-roster row. Fields are either
// the cleaned value or null; validity decisions are deferred to the merger.
type RosterRow struct {
	Name      null.String `validate:"required"`
	LastName  null.String `validate:"required"`
	FirstName null.String `validate:"required"`
	Batch     null.String

	AgentID null.String
	OdooID  null.String

	BOUser     null.String
	Axonify    null.String
	Supervisor null.String
	Manager    null.String
	Tier       null.String
	Shift      null.String
	Schedule   null.String
	Department null.String
	Role       null.String

	Phase1Date null.Time
	Phase2Date null.Time
	Phase3Date null.Time
	HireDate   null.Time
}
