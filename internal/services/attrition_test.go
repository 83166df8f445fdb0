package services

import (
	"testing"
	"time"

	"github.com/aarondl/null/v8"
	"github.com/stretchr/testify/assert"

	"roster-system/internal/dto"
)

func TestComputeTenure_ThreeYears(t *testing.T) {
	row := dto.AttritionRow{
		HireDate:        null.TimeFrom(time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)),
		TerminationDate: null.TimeFrom(time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)),
	}

	ComputeTenure(&row)

	assert.True(t, row.TenureDays.Valid)
	assert.EqualValues(t, 1096, row.TenureDays.Int)
	assert.InDelta(t, 36.00, row.TenureMonths.Float64, 0.05)
	assert.InDelta(t, 3.00, row.TenureYears.Float64, 0.01)
}

func TestComputeTenure_MissingDates(t *testing.T) {
	cases := []dto.AttritionRow{
		{TerminationDate: null.TimeFrom(time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC))},
		{HireDate: null.TimeFrom(time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC))},
		{},
	}
	for i := range cases {
		ComputeTenure(&cases[i])
		assert.False(t, cases[i].TenureDays.Valid, "case %d", i)
		assert.False(t, cases[i].TenureMonths.Valid, "case %d", i)
		assert.False(t, cases[i].TenureYears.Valid, "case %d", i)
	}
}

func TestComputeTenure_NegativeClampedToZero(t *testing.T) {
	row := dto.AttritionRow{
		HireDate:        null.TimeFrom(time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC)),
		TerminationDate: null.TimeFrom(time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)),
	}

	ComputeTenure(&row)

	assert.EqualValues(t, 0, row.TenureDays.Int)
	assert.Equal(t, 0.0, row.TenureMonths.Float64)
	assert.Equal(t, 0.0, row.TenureYears.Float64)
}

func TestComputeTenure_SameDay(t *testing.T) {
	day := null.TimeFrom(time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC))
	row := dto.AttritionRow{HireDate: day, TerminationDate: day}

	ComputeTenure(&row)

	assert.True(t, row.TenureDays.Valid)
	assert.EqualValues(t, 0, row.TenureDays.Int)
}

func TestComputeTenure_MeasuresConsistent(t *testing.T) {
	row := dto.AttritionRow{
		HireDate:        null.TimeFrom(time.Date(2021, 2, 15, 0, 0, 0, 0, time.UTC)),
		TerminationDate: null.TimeFrom(time.Date(2022, 8, 1, 0, 0, 0, 0, time.UTC)),
	}

	ComputeTenure(&row)

	days := float64(row.TenureDays.Int)
	assert.InDelta(t, days/30.44, row.TenureMonths.Float64, 0.005)
	assert.InDelta(t, days/365.25, row.TenureYears.Float64, 0.005)
}
