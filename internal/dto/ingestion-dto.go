package dto

// TableCounts is the per-table outcome breakdown of one ingestion run.
type TableCounts struct {
	Inserted int `json:"inserted"`
	Updated  int `json:"updated"`
}

// RowError records a row that could not be ingested: where it came from
// and why it was skipped. The batch always continues past these.
type RowError struct {
	Sheet    string `json:"sheet"`
	Position int    `json:"position"`
	Reason   string `json:"reason"`
}

// IngestionSummary is the value returned by one Run. It is owned by the
// orchestrator for the duration of the run and never shared.
type IngestionSummary struct {
	TotalRows int                    `json:"total_rows"`
	Tables    map[string]TableCounts `json:"tables"`
	Skipped   int                    `json:"skipped"`
	Errors    []RowError             `json:"errors"`
}

func NewIngestionSummary() *IngestionSummary {
	return &IngestionSummary{
		Tables: make(map[string]TableCounts),
		Errors: make([]RowError, 0),
	}
}

func (s *IngestionSummary) AddInserted(table string) {
	c := s.Tables[table]
	c.Inserted++
	s.Tables[table] = c
}

func (s *IngestionSummary) AddUpdated(table string) {
	c := s.Tables[table]
	c.Updated++
	s.Tables[table] = c
}

func (s *IngestionSummary) AddError(sheet string, position int, reason string) {
	s.Skipped++
	s.Errors = append(s.Errors, RowError{Sheet: sheet, Position: position, Reason: reason})
}
