package mapping

import (
	"github.com/SscSPs/storefront_sim/internal/core/domain"
	"github.com/SscSPs/storefront_sim/internal/models"
)

// ToModelBill converts a domain Bill to a model Bill
func ToModelBill(d domain.Bill) models.Bill {
	return models.Bill{
		BillID:          d.BillID,
		BillType:        string(d.Type),
		Description:     d.Description,
		IssueDay:        d.IssueDay,
		DueDay:          d.DueDay,
		GracePeriodDays: d.GracePeriodDays,
		Amount:          d.Amount,
		LatePenalty:     d.LatePenalty,
		Status:          string(d.Status),
		SettledDay:      d.SettledDay,
		SourceID:        d.SourceID,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainBill converts a model Bill to a domain Bill
func ToDomainBill(m models.Bill) domain.Bill {
	return domain.Bill{
		BillID:          m.BillID,
		Type:            domain.BillType(m.BillType),
		Description:     m.Description,
		IssueDay:        m.IssueDay,
		DueDay:          m.DueDay,
		GracePeriodDays: m.GracePeriodDays,
		Amount:          m.Amount,
		LatePenalty:     m.LatePenalty,
		Status:          domain.BillStatus(m.Status),
		SettledDay:      m.SettledDay,
		SourceID:        m.SourceID,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainBillSlice converts a slice of model Bills to a slice of domain Bills
func ToDomainBillSlice(ms []models.Bill) []domain.Bill {
	ds := make([]domain.Bill, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainBill(m)
	}
	return ds
}
