package models

// ConflictDetail describes one occurrence of a teacher within a contested slot.
type ConflictDetail struct {
	Tier       Tier   `json:"tier"`
	Subject    string `json:"subject"`
	ClassLabel string `json:"class"`
}

// Conflict records a teacher booked more than once at the same day and time,
// across either tier or within one. Conflicts are derived on every read and
// never persisted.
type Conflict struct {
	Day     string           `json:"day"`
	Time    string           `json:"time"`
	Teacher string           `json:"teacher"`
	Details []ConflictDetail `json:"details"`
}

// ConflictReport bundles the detected conflicts with a composite-key set for
// cheap membership checks by callers highlighting individual cells.
type ConflictReport struct {
	Records []Conflict
	Keys    map[string]struct{}
}

// Has reports whether the given day/time/teacher triple is in conflict.
func (r ConflictReport) Has(day, time, teacher string) bool {
	_, ok := r.Keys[ConflictKey(day, time, teacher)]
	return ok
}

// ConflictKey builds the composite grouping key for a slot occurrence.
func ConflictKey(day, time, teacher string) string {
	return day + "|" + time + "|" + teacher
}
