package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// BillType classifies a financial obligation.
type BillType string

const (
	BillRent        BillType = "RENT"
	BillElectricity BillType = "ELECTRICITY"
	BillSalary      BillType = "SALARY"
	BillRepayment   BillType = "REPAYMENT"
)

// IsValid checks the bill type against the known set.
func (t BillType) IsValid() bool {
	switch t {
	case BillRent, BillElectricity, BillSalary, BillRepayment:
		return true
	}
	return false
}

// BillStatus is the settlement state of a bill. Paid and Charged are terminal.
type BillStatus string

const (
	BillUnpaid  BillStatus = "UNPAID"
	BillPaid    BillStatus = "PAID"
	BillCharged BillStatus = "CHARGED"
)

// ErrBillSettled is returned when a settled bill is asked to change.
var ErrBillSettled = errors.New("bill is already settled")

// Bill is one obligation in the ledger. Amount and LatePenalty are frozen once
// the bill leaves Unpaid.
type Bill struct {
	BillID          string          `json:"billID"`
	Type            BillType        `json:"type"`
	Description     string          `json:"description"`
	IssueDay        int             `json:"issueDay"`
	DueDay          int             `json:"dueDay"`
	GracePeriodDays int             `json:"gracePeriodDays"`
	Amount          decimal.Decimal `json:"amount"`
	LatePenalty     decimal.Decimal `json:"latePenalty"`
	Status          BillStatus      `json:"status"`
	SettledDay      int             `json:"settledDay"`
	SourceID        string          `json:"sourceID"` // template type, loan id or employee id
	AuditFields
}

// Validate checks the structural invariants of a new bill.
func (b Bill) Validate() error {
	if !b.Type.IsValid() {
		return fmt.Errorf("unknown bill type %q", b.Type)
	}
	if b.DueDay < b.IssueDay {
		return fmt.Errorf("due day %d is before issue day %d", b.DueDay, b.IssueDay)
	}
	if b.GracePeriodDays < 0 {
		return fmt.Errorf("grace period must not be negative")
	}
	if b.Amount.IsNegative() || b.LatePenalty.IsNegative() {
		return fmt.Errorf("bill amounts must not be negative")
	}
	return nil
}

// IsSettled reports whether the bill reached a terminal state.
func (b Bill) IsSettled() bool {
	return b.Status == BillPaid || b.Status == BillCharged
}

// GraceEndDay is the last day the bill can still be paid without being charged.
func (b Bill) GraceEndDay() int {
	return b.DueDay + b.GracePeriodDays
}

// IsPastDue reports whether an unpaid bill is past its due day (in grace or beyond).
func (b Bill) IsPastDue(currentDay int) bool {
	return b.Status == BillUnpaid && currentDay > b.DueDay
}

// IsOverdue reports whether an unpaid bill is past its grace window and must be charged.
func (b Bill) IsOverdue(currentDay int) bool {
	return b.Status == BillUnpaid && currentDay > b.GraceEndDay()
}

// TotalAmountDue is the amount plus the late penalty once the bill is past due.
func (b Bill) TotalAmountDue(currentDay int) decimal.Decimal {
	if b.IsPastDue(currentDay) {
		return b.Amount.Add(b.LatePenalty)
	}
	return b.Amount
}

// ChargeAmount is what a forced charge deducts.
func (b Bill) ChargeAmount() decimal.Decimal {
	return b.Amount.Add(b.LatePenalty)
}

// MarkPaid settles the bill by player payment.
func (b *Bill) MarkPaid(day int) error {
	if b.IsSettled() {
		return ErrBillSettled
	}
	b.Status = BillPaid
	b.SettledDay = day
	return nil
}

// MarkCharged settles the bill by forced charge.
func (b *Bill) MarkCharged(day int) error {
	if b.IsSettled() {
		return ErrBillSettled
	}
	b.Status = BillCharged
	b.SettledDay = day
	return nil
}

// StatusText renders the display status of the bill on currentDay.
func (b Bill) StatusText(currentDay int) string {
	switch b.Status {
	case BillPaid:
		return "paid"
	case BillCharged:
		return "charged"
	}

	switch {
	case currentDay < b.DueDay:
		left := b.DueDay - currentDay
		if left == 1 {
			return "due tomorrow"
		}
		return fmt.Sprintf("%d days left", left)
	case currentDay == b.DueDay:
		return "due today"
	case currentDay <= b.GraceEndDay():
		left := b.GraceEndDay() - currentDay
		switch left {
		case 0:
			return "grace ends today"
		case 1:
			return "grace ends tomorrow"
		}
		return fmt.Sprintf("grace period, %d days left", left)
	}
	return "overdue"
}
