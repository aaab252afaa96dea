package mapping

import (
	"github.com/SscSPs/storefront_sim/internal/core/domain"
	"github.com/SscSPs/storefront_sim/internal/models"
	"github.com/shopspring/decimal"
)

// ToModelProduct converts a domain Product to a model Product
func ToModelProduct(d domain.Product) models.Product {
	m := models.Product{
		ProductID:   d.ProductID,
		Name:        d.Name,
		MarketPrice: d.MarketPrice,
	}
	if d.CustomPrice != nil {
		m.CustomPrice = decimal.NewNullDecimal(*d.CustomPrice)
	}
	return m
}

// ToDomainProduct converts a model Product to a domain Product
func ToDomainProduct(m models.Product) domain.Product {
	d := domain.Product{
		ProductID:   m.ProductID,
		Name:        m.Name,
		MarketPrice: m.MarketPrice,
	}
	if m.CustomPrice.Valid {
		price := m.CustomPrice.Decimal
		d.CustomPrice = &price
	}
	return d
}

// ToModelEmployee converts a domain Employee to a model Employee
func ToModelEmployee(d domain.Employee) models.Employee {
	return models.Employee{
		EmployeeID: d.EmployeeID,
		CounterID:  d.CounterID,
		DailyWage:  d.DailyWage,
		HiredDay:   d.HiredDay,
	}
}

// ToDomainEmployee converts a model Employee to a domain Employee
func ToDomainEmployee(m models.Employee) domain.Employee {
	return domain.Employee{
		EmployeeID: m.EmployeeID,
		CounterID:  m.CounterID,
		DailyWage:  m.DailyWage,
		HiredDay:   m.HiredDay,
	}
}
