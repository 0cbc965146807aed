package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LendingType distinguishes emergency lendings, which get a shorter default grace period.
type LendingType string

const (
	LendingEmergency    LendingType = "emergency"
	LendingNonEmergency LendingType = "non-emergency"
)

// LendingStatus is the lifecycle state of a lending. It only moves forward:
// pending -> overdue -> repaid | written_off.
type LendingStatus string

const (
	LendingPending    LendingStatus = "pending"
	LendingOverdue    LendingStatus = "overdue"
	LendingRepaid     LendingStatus = "repaid"
	LendingWrittenOff LendingStatus = "written_off"
)

// Remindable reports whether reminders may still be generated for the status.
func (s LendingStatus) Remindable() bool {
	return s == LendingPending || s == LendingOverdue
}

// Lending represents money lent by a user to a borrower.
type Lending struct {
	ID                 uuid.UUID       `json:"id"`                   // unique identifier for the lending
	UserID             uuid.UUID       `json:"user_id"`              // lender who owns the record
	Amount             decimal.Decimal `json:"amount"`               // principal amount
	Currency           string          `json:"currency"`             // ISO 4217 code
	BorrowerName       string          `json:"borrower_name"`        // who owes the money
	BorrowerContact    string          `json:"borrower_contact"`     // optional phone or email of the borrower
	Type               LendingType     `json:"type"`                 // emergency or non-emergency
	Status             LendingStatus   `json:"status"`               // pending, overdue, repaid, written_off
	ExpectedReturnDate time.Time       `json:"expected_return_date"` // due date
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
}
