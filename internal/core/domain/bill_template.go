package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// BillTemplate is a recurring bill definition. A bill is issued every
// FrequencyInDays days, due DueOffsetDays after issue.
type BillTemplate struct {
	Type            BillType        `json:"type"`
	Description     string          `json:"description"`
	FrequencyInDays int             `json:"frequencyInDays"`
	DueOffsetDays   int             `json:"dueOffsetDays"`
	GracePeriodDays int             `json:"gracePeriodDays"`
	BaseAmount      decimal.Decimal `json:"baseAmount"`
	LatePenalty     decimal.Decimal `json:"latePenalty"`
	LevelRate       decimal.Decimal `json:"levelRate"` // fractional increase per store expansion level
}

// Validate checks the template definition.
func (t BillTemplate) Validate() error {
	if !t.Type.IsValid() {
		return fmt.Errorf("unknown bill type %q", t.Type)
	}
	if t.FrequencyInDays <= 0 {
		return fmt.Errorf("template %s: frequency must be positive", t.Type)
	}
	if t.DueOffsetDays < 0 || t.GracePeriodDays < 0 {
		return fmt.Errorf("template %s: offsets must not be negative", t.Type)
	}
	return nil
}

// IsIssueDay reports whether a bill from this template is issued on day.
func (t BillTemplate) IsIssueDay(day int) bool {
	return t.FrequencyInDays > 0 && day%t.FrequencyInDays == 0
}

// AmountForLevel scales the base amount by the store expansion level.
func (t BillTemplate) AmountForLevel(level int) decimal.Decimal {
	factor := decimal.NewFromInt(1).Add(t.LevelRate.Mul(decimal.NewFromInt(int64(level))))
	return t.BaseAmount.Mul(factor).Round(2)
}

// NewBill instantiates the template for the given day and expansion level.
func (t BillTemplate) NewBill(billID string, day, level int) Bill {
	return Bill{
		BillID:          billID,
		Type:            t.Type,
		Description:     t.Description,
		IssueDay:        day,
		DueDay:          day + t.DueOffsetDays,
		GracePeriodDays: t.GracePeriodDays,
		Amount:          t.AmountForLevel(level),
		LatePenalty:     t.LatePenalty,
		Status:          BillUnpaid,
		SourceID:        string(t.Type),
	}
}

// DefaultBillTemplates are the recurring rent and electricity bills of a new store.
func DefaultBillTemplates() []BillTemplate {
	return []BillTemplate{
		{
			Type:            BillRent,
			Description:     "Store rent",
			FrequencyInDays: 7,
			DueOffsetDays:   3,
			GracePeriodDays: 2,
			BaseAmount:      decimal.NewFromInt(150),
			LatePenalty:     decimal.NewFromInt(25),
			LevelRate:       decimal.RequireFromString("0.10"),
		},
		{
			Type:            BillElectricity,
			Description:     "Electricity",
			FrequencyInDays: 3,
			DueOffsetDays:   2,
			GracePeriodDays: 2,
			BaseAmount:      decimal.NewFromInt(40),
			LatePenalty:     decimal.NewFromInt(10),
			LevelRate:       decimal.RequireFromString("0.05"),
		},
	}
}
