package services

import (
	"strconv"
	"strings"
	"time"

	"github.com/aarondl/null/v8"

	"roster-system/internal/dto"
)

// Canonical column names produced by the sheet reader and consumed by the
// normalizer. Lookups are always by name, never by position.
const (
	ColName            = "Name"
	ColLastName        = "Last Name"
	ColFirstName       = "First Name"
	ColBatch           = "Batch"
	ColAgentID         = "Agent ID"
	ColOdooID          = "Odoo ID"
	ColBOUser          = "BO User"
	ColAxonify         = "Axonify"
	ColSupervisor      = "Supervisor"
	ColManager         = "Manager"
	ColTier            = "Tier"
	ColShift           = "Shift"
	ColSchedule        = "Schedule"
	ColDepartment      = "Department"
	ColRole            = "Role"
	ColPhase1Date      = "Phase 1 Date"
	ColPhase2Date      = "Phase 2 Date"
	ColPhase3Date      = "Phase 3 Date"
	ColHireDate        = "Hire Date"
	ColTerminationDate = "Termination Date"
	ColTermReason      = "Term Reason"
	ColVoluntary       = "Voluntary"
)

// Textual date layouts accepted from roster sheets, tried in order.
var dateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"01/02/2006",
	"1/2/2006",
	"02/01/2006",
	"01-02-2006",
	"January 2, 2006",
	"Jan 2, 2006",
	"2006-01-02 15:04:05",
	"01/02/06",
}

// Day zero of the spreadsheet serial-date scheme.
var excelEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

// NormalizeString trims the cell and degrades blank input to null.
func NormalizeString(raw string) null.String {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return null.String{}
	}
	return null.StringFrom(trimmed)
}

// NormalizeIdentifier trims and uppercases external identifiers so mixed
// case in the source never splits one person into two.
func NormalizeIdentifier(raw string) null.String {
	trimmed := strings.ToUpper(strings.TrimSpace(raw))
	if trimmed == "" {
		return null.String{}
	}
	return null.StringFrom(trimmed)
}

// NormalizeDate interprets textual dates and spreadsheet serial numbers.
// Unparseable or blank input becomes null, never an error.
func NormalizeDate(raw string) null.Time {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return null.Time{}
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return null.TimeFrom(t.UTC())
		}
	}

	if serial, err := strconv.ParseFloat(trimmed, 64); err == nil {
		days := int(serial)
		if days > 0 && days < 200000 {
			return null.TimeFrom(excelEpoch.AddDate(0, 0, days))
		}
	}

	return null.Time{}
}

// NormalizeBool reads yes/no style cells ("Yes", "N", "Voluntary", "true").
func NormalizeBool(raw string) null.Bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "yes", "y", "true", "1", "voluntary":
		return null.BoolFrom(true)
	case "no", "n", "false", "0", "involuntary":
		return null.BoolFrom(false)
	}
	return null.Bool{}
}

// NormalizeRosterRow converts one raw main-roster row into its typed form.
// Pure function of its input; invalid cells degrade to null fields.
func NormalizeRosterRow(raw dto.RawRow) dto.RosterRow {
	return dto.RosterRow{
		Name:       NormalizeString(raw.Get(ColName)),
		LastName:   NormalizeString(raw.Get(ColLastName)),
		FirstName:  NormalizeString(raw.Get(ColFirstName)),
		Batch:      NormalizeString(raw.Get(ColBatch)),
		AgentID:    NormalizeIdentifier(raw.Get(ColAgentID)),
		OdooID:     NormalizeIdentifier(raw.Get(ColOdooID)),
		BOUser:     NormalizeString(raw.Get(ColBOUser)),
		Axonify:    NormalizeString(raw.Get(ColAxonify)),
		Supervisor: NormalizeString(raw.Get(ColSupervisor)),
		Manager:    NormalizeString(raw.Get(ColManager)),
		Tier:       NormalizeString(raw.Get(ColTier)),
		Shift:      NormalizeString(raw.Get(ColShift)),
		Schedule:   NormalizeString(raw.Get(ColSchedule)),
		Department: NormalizeString(raw.Get(ColDepartment)),
		Role:       NormalizeString(raw.Get(ColRole)),
		Phase1Date: NormalizeDate(raw.Get(ColPhase1Date)),
		Phase2Date: NormalizeDate(raw.Get(ColPhase2Date)),
		Phase3Date: NormalizeDate(raw.Get(ColPhase3Date)),
		HireDate:   NormalizeDate(raw.Get(ColHireDate)),
	}
}

// NormalizeAttritionRow converts one raw departure-sheet row.
func NormalizeAttritionRow(raw dto.RawRow) dto.AttritionRow {
	return dto.AttritionRow{
		Name:            NormalizeString(raw.Get(ColName)),
		LastName:        NormalizeString(raw.Get(ColLastName)),
		FirstName:       NormalizeString(raw.Get(ColFirstName)),
		Batch:           NormalizeString(raw.Get(ColBatch)),
		AgentID:         NormalizeIdentifier(raw.Get(ColAgentID)),
		OdooID:          NormalizeIdentifier(raw.Get(ColOdooID)),
		Supervisor:      NormalizeString(raw.Get(ColSupervisor)),
		Manager:         NormalizeString(raw.Get(ColManager)),
		Tier:            NormalizeString(raw.Get(ColTier)),
		Shift:           NormalizeString(raw.Get(ColShift)),
		Schedule:        NormalizeString(raw.Get(ColSchedule)),
		Department:      NormalizeString(raw.Get(ColDepartment)),
		Role:            NormalizeString(raw.Get(ColRole)),
		HireDate:        NormalizeDate(raw.Get(ColHireDate)),
		TerminationDate: NormalizeDate(raw.Get(ColTerminationDate)),
		TermReason:      NormalizeString(raw.Get(ColTermReason)),
		Voluntary:       NormalizeBool(raw.Get(ColVoluntary)),
	}
}
