package dto

// RunRequest asks for a reminder run. Async runs are queued instead of executed inline.
type RunRequest struct {
	UserID string `json:"user_id" validate:"omitempty,uuid"`
	Async  bool   `json:"async"`
}
