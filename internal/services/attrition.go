package services

import (
	"math"

	"github.com/aarondl/null/v8"

	"roster-system/internal/dto"
)

const (
	daysPerMonth = 30.44
	daysPerYear  = 365.25
)

// ComputeTenure derives the tenure measures from hire and termination
// dates. Either date missing leaves all three null. Days are whole days;
// months and years are rounded to two decimals and stay mutually
// consistent with the day count.
func ComputeTenure(row *dto.AttritionRow) {
	if !row.HireDate.Valid || !row.TerminationDate.Valid {
		row.TenureDays = null.Int{}
		row.TenureMonths = null.Float64{}
		row.TenureYears = null.Float64{}
		return
	}

	days := int(row.TerminationDate.Time.Sub(row.HireDate.Time).Hours() / 24)
	if days < 0 {
		days = 0
	}

	row.TenureDays = null.IntFrom(days)
	row.TenureMonths = null.Float64From(round2(float64(days) / daysPerMonth))
	row.TenureYears = null.Float64From(round2(float64(days) / daysPerYear))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
