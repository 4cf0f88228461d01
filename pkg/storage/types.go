package storage

// ConfusableRecord is one persisted full-map entry.
type ConfusableRecord struct {
	Source     rune
	Target     string
	Block      string
	Comment    string
	InFiltered bool
}

// CategoryStats counts corpus rows per category and label.
type CategoryStats struct {
	Category string
	Label    string
	Rows     int
}
