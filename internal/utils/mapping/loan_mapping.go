package mapping

import (
	"github.com/SscSPs/storefront_sim/internal/core/domain"
	"github.com/SscSPs/storefront_sim/internal/models"
)

// ToModelLoan converts a domain Loan to a model Loan
func ToModelLoan(d domain.Loan) models.Loan {
	return models.Loan{
		LoanID:          d.LoanID,
		Name:            d.Name,
		Principal:       d.Principal,
		InterestRate:    d.InterestRate,
		TotalPayments:   d.TotalPayments,
		PaymentInterval: d.PaymentInterval,
		PaymentsMade:    d.PaymentsMade,
		StartDay:        d.StartDay,
		LatePaymentFee:  d.LatePaymentFee,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainLoan converts a model Loan to a domain Loan
func ToDomainLoan(m models.Loan) domain.Loan {
	return domain.Loan{
		LoanID:          m.LoanID,
		Name:            m.Name,
		Principal:       m.Principal,
		InterestRate:    m.InterestRate,
		TotalPayments:   m.TotalPayments,
		PaymentInterval: m.PaymentInterval,
		PaymentsMade:    m.PaymentsMade,
		StartDay:        m.StartDay,
		LatePaymentFee:  m.LatePaymentFee,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
}
