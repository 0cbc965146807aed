package model

import "github.com/google/uuid"

// RunReport aggregates the outcome of one processing run.
type RunReport struct {
	Processed     int          `json:"processed"`
	SentByTier    map[Tier]int `json:"sent_by_tier"`
	SkippedGrace  int          `json:"skipped_grace"`
	AlreadySent   int          `json:"already_sent"`
	OutsideWindow int          `json:"outside_window"`
	Failed        int          `json:"failed"` // dispatched but every channel failed
	Errors        []ItemError  `json:"errors"`
}

// ItemError records a failure isolated to a single lending.
type ItemError struct {
	UserID    uuid.UUID `json:"user_id"`
	LendingID uuid.UUID `json:"lending_id,omitempty"`
	Message   string    `json:"message"`
}

// NewRunReport returns an empty report ready for counting.
func NewRunReport() RunReport {
	return RunReport{SentByTier: make(map[Tier]int)}
}

// Sent returns the number of reminders dispatched across all tiers.
func (r RunReport) Sent() int {
	total := 0
	for _, n := range r.SentByTier {
		total += n
	}

	return total
}

// Merge adds the counters of other into r.
func (r *RunReport) Merge(other RunReport) {
	if r.SentByTier == nil {
		r.SentByTier = make(map[Tier]int)
	}

	r.Processed += other.Processed
	for t, n := range other.SentByTier {
		r.SentByTier[t] += n
	}
	r.SkippedGrace += other.SkippedGrace
	r.AlreadySent += other.AlreadySent
	r.OutsideWindow += other.OutsideWindow
	r.Failed += other.Failed
	r.Errors = append(r.Errors, other.Errors...)
}
