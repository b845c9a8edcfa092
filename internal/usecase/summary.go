package usecase

// Summary aggregates one loader pass. Per-row outcomes are visible only in
// the log stream; the driver reports these counters at the end of the run.
type Summary struct {
	RowsSeen        int `json:"rows_seen"`
	RowsLoaded      int `json:"rows_loaded"`
	RowsSkipped     int `json:"rows_skipped"`
	StatementErrors int `json:"statement_errors"`
	OrdinalRejects  int `json:"ordinal_rejects"`
}

// Merge folds another summary into s.
func (s *Summary) Merge(other Summary) {
	s.RowsSeen += other.RowsSeen
	s.RowsLoaded += other.RowsLoaded
	s.RowsSkipped += other.RowsSkipped
	s.StatementErrors += other.StatementErrors
	s.OrdinalRejects += other.OrdinalRejects
}
