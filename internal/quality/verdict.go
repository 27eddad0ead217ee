package quality

import "strings"

// Status is the categorical quality verdict for one record. Exactly one
// status holds per record.
type Status string

const (
	StatusGood               Status = "good"
	StatusIncomplete         Status = "incomplete"
	StatusSuspiciousFake     Status = "suspicious-fake"
	StatusSuspectedProcessed Status = "suspected-processed"
	StatusClipped            Status = "clipped"
	StatusSevereCompression  Status = "severe-compression"
	StatusLowDynamic         Status = "low-dynamic"
)

// Statuses lists every status the classifier can produce.
func Statuses() []Status {
	return []Status{
		StatusGood,
		StatusIncomplete,
		StatusSuspiciousFake,
		StatusSuspectedProcessed,
		StatusClipped,
		StatusSevereCompression,
		StatusLowDynamic,
	}
}

// noteSeparator joins note fragments in rule firing order.
const noteSeparator = " | "

// defaultNote is used when no rule contributed a fragment.
const defaultNote = "no obvious hard technical issues found"

// Verdict is the classifier's output for one record: the final status
// and the note fragments collected while the rule chain ran.
type Verdict struct {
	Status Status
	Notes  []string
}

// Note renders the note fragments as a single string.
func (v Verdict) Note() string {
	if len(v.Notes) == 0 {
		return defaultNote
	}
	return strings.Join(v.Notes, noteSeparator)
}
