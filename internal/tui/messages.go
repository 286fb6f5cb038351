package tui

// RowUpdateMsg updates one mod's row as the batch copies or deletes it.
// Fields are keyed by column header so install and remove tables share it.
type RowUpdateMsg struct {
	Key    string
	Fields map[string]string
}

// WorkDoneMsg signals that every mod in the batch has been processed.
type WorkDoneMsg struct{}

// ErrorMsg aborts the table when the batch itself fails, as opposed to a
// single mod being skipped.
type ErrorMsg struct {
	Err error
}
