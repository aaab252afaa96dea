package models

import "github.com/shopspring/decimal"

// Bill is a row of the bills table.
type Bill struct {
	BillID          string          `db:"bill_id"`
	BillType        string          `db:"bill_type"`
	Description     string          `db:"description"`
	IssueDay        int             `db:"issue_day"`
	DueDay          int             `db:"due_day"`
	GracePeriodDays int             `db:"grace_period_days"`
	Amount          decimal.Decimal `db:"amount"`
	LatePenalty     decimal.Decimal `db:"late_penalty"`
	Status          string          `db:"status"`
	SettledDay      int             `db:"settled_day"`
	SourceID        string          `db:"source_id"`
	AuditFields
}
