package services

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"roster-system/internal/dto"
)

// columnAlias maps a lowercased, space/underscore-stripped header fragment
// to its canonical column name. Checked in order, so the specific entries
// must come before the generic ones ("firstname" before "name", "odoo"
// before "id").
type columnAlias struct {
	fragment  string
	canonical string
}

var columnAliases = []columnAlias{
	{"odoo", ColOdooID},
	{"agentid", ColAgentID},
	{"employeeid", ColAgentID},
	{"bouser", ColBOUser},
	{"axonify", ColAxonify},
	{"supervisor", ColSupervisor},
	{"sup", ColSupervisor},
	{"manager", ColManager},
	{"mgr", ColManager},
	{"tier", ColTier},
	{"shift", ColShift},
	{"schedule", ColSchedule},
	{"department", ColDepartment},
	{"dept", ColDepartment},
	{"role", ColRole},
	{"phase1", ColPhase1Date},
	{"phase2", ColPhase2Date},
	{"phase3", ColPhase3Date},
	{"hiredate", ColHireDate},
	{"startdate", ColHireDate},
	{"terminationdate", ColTerminationDate},
	{"termdate", ColTerminationDate},
	{"termreason", ColTermReason},
	{"voluntary", ColVoluntary},
	{"firstname", ColFirstName},
	{"givenname", ColFirstName},
	{"lastname", ColLastName},
	{"surname", ColLastName},
	{"agentname", ColName},
	{"fullname", ColName},
	{"name", ColName},
	{"first", ColFirstName},
	{"last", ColLastName},
	{"batch", ColBatch},
	{"id", ColAgentID},
}

// Header words that identify the real header row inside sheets that start
// with banners or blank lines.
var headerWords = []string{"name", "agent", "id", "role", "shift", "schedule", "department", "last", "first"}

// RosterReader pulls raw rows out of an Excel workbook. It only locates
// headers and canonicalizes column names; all value interpretation is the
// normalizer's job.
type RosterReader struct {
	logger *zap.Logger
}

func NewRosterReader(logger *zap.Logger) *RosterReader {
	return &RosterReader{logger: logger}
}

// Read returns the data rows of the named sheet with 1-based source
// positions. Sheet name matching tolerates stray whitespace, which the
// source workbooks are known to carry.
func (r *RosterReader) Read(path, sheet string) ([]dto.RawRow, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening workbook %s: %w", path, err)
	}
	defer f.Close()

	sheetName := resolveSheetName(f, sheet)
	if sheetName == "" {
		return nil, fmt.Errorf("sheet %q not found in %s", sheet, path)
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q: %w", sheetName, err)
	}

	headerIdx := findHeaderRow(rows)
	if headerIdx < 0 {
		return nil, fmt.Errorf("no header row found in sheet %q", sheetName)
	}

	headers := canonicalizeColumns(rows[headerIdx])
	r.logger.Debug("located header row",
		zap.String("sheet", sheetName),
		zap.Int("row", headerIdx+1),
		zap.Strings("columns", headers),
	)

	out := make([]dto.RawRow, 0, len(rows)-headerIdx-1)
	for i := headerIdx + 1; i < len(rows); i++ {
		if isEmptyRow(rows[i]) {
			continue
		}
		cells := make(map[string]string, len(headers))
		for c, header := range headers {
			if header == "" || c >= len(rows[i]) {
				continue
			}
			cells[header] = rows[i][c]
		}
		out = append(out, dto.RawRow{Position: i + 1, Cells: cells})
	}
	return out, nil
}

func resolveSheetName(f *excelize.File, want string) string {
	for _, name := range f.GetSheetList() {
		if name == want || strings.TrimSpace(name) == strings.TrimSpace(want) {
			return name
		}
	}
	return ""
}

// findHeaderRow returns the index of the first row that looks like a
// header: at least 3 non-empty cells, at least 2 of them known header
// words. Returns -1 when no such row exists.
func findHeaderRow(rows [][]string) int {
	for idx, row := range rows {
		nonEmpty := 0
		matching := 0
		for _, cell := range row {
			v := strings.ToLower(strings.TrimSpace(cell))
			if v == "" {
				continue
			}
			nonEmpty++
			for _, word := range headerWords {
				if strings.Contains(v, word) {
					matching++
					break
				}
			}
		}
		if nonEmpty >= 3 && matching >= 2 {
			return idx
		}
	}
	return -1
}

func canonicalizeColumns(header []string) []string {
	out := make([]string, len(header))
	for i, col := range header {
		key := strings.ToLower(strings.TrimSpace(col))
		key = strings.ReplaceAll(key, " ", "")
		key = strings.ReplaceAll(key, "_", "")
		if key == "" {
			out[i] = ""
			continue
		}

		out[i] = strings.TrimSpace(col)
		for _, alias := range columnAliases {
			if strings.Contains(key, alias.fragment) {
				out[i] = alias.canonical
				break
			}
		}
	}
	return out
}

func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
