package services

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// writeWorkbook builds a workbook with the given sheet contents and saves
// it under the test's temp dir.
func writeWorkbook(t *testing.T, sheets map[string][][]string) string {
	t.Helper()

	f := excelize.NewFile()
	first := true
	for name, rows := range sheets {
		if first {
			require.NoError(t, f.SetSheetName("Sheet1", name))
			first = false
		} else {
			_, err := f.NewSheet(name)
			require.NoError(t, err)
		}
		for i, row := range rows {
			cell, err := excelize.CoordinatesToCellName(1, i+1)
			require.NoError(t, err)
			require.NoError(t, f.SetSheetRow(name, cell, &row))
		}
	}

	path := filepath.Join(t.TempDir(), "roster.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestRosterReader_HeaderAfterBanner(t *testing.T) {
	path := writeWorkbook(t, map[string][][]string{
		"Main Roster": {
			{"Company Roster Export"},
			{},
			{"Name", "Last Name", "First Name", "Agent ID", "Role"},
			{"Smith, John", "Smith", "John", "AG-001", "Agent"},
			{"Doe, Jane", "Doe", "Jane", "AG-002", "Supervisor"},
		},
	})

	reader := NewRosterReader(zap.NewNop())
	rows, err := reader.Read(path, "Main Roster")
	require.NoError(t, err)

	require.Len(t, rows, 2)
	assert.Equal(t, 4, rows[0].Position)
	assert.Equal(t, "Smith, John", rows[0].Get(ColName))
	assert.Equal(t, "AG-001", rows[0].Get(ColAgentID))
	assert.Equal(t, 5, rows[1].Position)
	assert.Equal(t, "Supervisor", rows[1].Get(ColRole))
}

func TestRosterReader_ColumnCanonicalization(t *testing.T) {
	path := writeWorkbook(t, map[string][][]string{
		"Main Roster": {
			{"full_name", "LAST NAME", "first name", "Agent  ID", "Odoo ID", "ROLE"},
			{"Smith, John", "Smith", "John", "ag-1", "9001", "Agent"},
		},
	})

	reader := NewRosterReader(zap.NewNop())
	rows, err := reader.Read(path, "Main Roster")
	require.NoError(t, err)

	require.Len(t, rows, 1)
	got := rows[0]
	assert.Equal(t, "Smith, John", got.Get(ColName))
	assert.Equal(t, "Smith", got.Get(ColLastName))
	assert.Equal(t, "John", got.Get(ColFirstName))
	assert.Equal(t, "ag-1", got.Get(ColAgentID))
	assert.Equal(t, "9001", got.Get(ColOdooID))
	assert.Equal(t, "Agent", got.Get(ColRole))
}

func TestRosterReader_SkipsEmptyRows(t *testing.T) {
	path := writeWorkbook(t, map[string][][]string{
		"Main Roster": {
			{"Name", "Last Name", "First Name", "Role"},
			{"Smith, John", "Smith", "John", "Agent"},
			{},
			{"", "  ", ""},
			{"Doe, Jane", "Doe", "Jane", "Agent"},
		},
	})

	reader := NewRosterReader(zap.NewNop())
	rows, err := reader.Read(path, "Main Roster")
	require.NoError(t, err)

	require.Len(t, rows, 2)
	assert.Equal(t, 2, rows[0].Position)
	assert.Equal(t, 5, rows[1].Position)
}

func TestRosterReader_SheetNameWhitespace(t *testing.T) {
	path := writeWorkbook(t, map[string][][]string{
		"Main Roster ": {
			{"Name", "Last Name", "First Name", "Role"},
			{"Smith, John", "Smith", "John", "Agent"},
		},
	})

	reader := NewRosterReader(zap.NewNop())
	rows, err := reader.Read(path, "Main Roster")
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestRosterReader_MissingSheet(t *testing.T) {
	path := writeWorkbook(t, map[string][][]string{
		"Main Roster": {
			{"Name", "Last Name", "First Name", "Role"},
		},
	})

	reader := NewRosterReader(zap.NewNop())
	_, err := reader.Read(path, "Attrition")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestRosterReader_NoHeaderRow(t *testing.T) {
	path := writeWorkbook(t, map[string][][]string{
		"Main Roster": {
			{"just"},
			{"some", "stray"},
			{"text", "cells", "here"},
		},
	})

	reader := NewRosterReader(zap.NewNop())
	_, err := reader.Read(path, "Main Roster")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no header row")
}
