package config

import (
	"fmt"
	"strings"

	"github.com/SscSPs/storefront_sim/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Catalog is the authoring data of the store: products, recurring bills and loan products.
type Catalog struct {
	Products      []domain.Product
	BillTemplates []domain.BillTemplate
	LoanTemplates []domain.LoanTemplate
}

type rawProduct struct {
	ID          string `mapstructure:"id"`
	Name        string `mapstructure:"name"`
	MarketPrice string `mapstructure:"market_price"`
}

type rawBillTemplate struct {
	Type            string `mapstructure:"type"`
	Description     string `mapstructure:"description"`
	FrequencyInDays int    `mapstructure:"frequency_days"`
	DueOffsetDays   int    `mapstructure:"due_offset_days"`
	GracePeriodDays int    `mapstructure:"grace_period_days"`
	BaseAmount      string `mapstructure:"base_amount"`
	LatePenalty     string `mapstructure:"late_penalty"`
	LevelRate       string `mapstructure:"level_rate"`
}

type rawLoanTemplate struct {
	Name            string `mapstructure:"name"`
	Principal       string `mapstructure:"principal"`
	InterestRate    string `mapstructure:"interest_rate"`
	TotalPayments   int    `mapstructure:"total_payments"`
	PaymentInterval int    `mapstructure:"payment_interval"`
	LatePaymentFee  string `mapstructure:"late_payment_fee"`
}

type rawCatalog struct {
	Products      []rawProduct      `mapstructure:"products"`
	BillTemplates []rawBillTemplate `mapstructure:"bill_templates"`
	LoanTemplates []rawLoanTemplate `mapstructure:"loan_templates"`
}

// LoadCatalog reads a catalog file (YAML, JSON or TOML by extension). Sections
// left out of the file keep their defaults.
func LoadCatalog(path string) (*Catalog, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read catalog %s: %w", path, err)
	}

	var raw rawCatalog
	if err := v.Unmarshal(&raw); err != nil {
		return nil, fmt.Errorf("failed to decode catalog %s: %w", path, err)
	}

	catalog := DefaultCatalog()
	if len(raw.Products) > 0 {
		catalog.Products = catalog.Products[:0]
		for i, p := range raw.Products {
			price, err := parseDecimal(p.MarketPrice, "0")
			if err != nil || !price.IsPositive() {
				return nil, fmt.Errorf("catalog product %d (%s): invalid market price %q", i, p.ID, p.MarketPrice)
			}
			if p.ID == "" {
				return nil, fmt.Errorf("catalog product %d: id is required", i)
			}
			catalog.Products = append(catalog.Products, domain.Product{ProductID: p.ID, Name: p.Name, MarketPrice: price})
		}
	}

	if len(raw.BillTemplates) > 0 {
		catalog.BillTemplates = catalog.BillTemplates[:0]
		for i, t := range raw.BillTemplates {
			tmpl, err := t.toDomain()
			if err != nil {
				return nil, fmt.Errorf("catalog bill template %d: %w", i, err)
			}
			catalog.BillTemplates = append(catalog.BillTemplates, tmpl)
		}
	}

	if len(raw.LoanTemplates) > 0 {
		catalog.LoanTemplates = catalog.LoanTemplates[:0]
		for i, t := range raw.LoanTemplates {
			tmpl, err := t.toDomain()
			if err != nil {
				return nil, fmt.Errorf("catalog loan template %d: %w", i, err)
			}
			catalog.LoanTemplates = append(catalog.LoanTemplates, tmpl)
		}
	}

	return catalog, nil
}

func (t rawBillTemplate) toDomain() (domain.BillTemplate, error) {
	base, err := parseDecimal(t.BaseAmount, "0")
	if err != nil {
		return domain.BillTemplate{}, fmt.Errorf("base_amount: %w", err)
	}
	penalty, err := parseDecimal(t.LatePenalty, "0")
	if err != nil {
		return domain.BillTemplate{}, fmt.Errorf("late_penalty: %w", err)
	}
	rate, err := parseDecimal(t.LevelRate, "0")
	if err != nil {
		return domain.BillTemplate{}, fmt.Errorf("level_rate: %w", err)
	}
	tmpl := domain.BillTemplate{
		Type:            domain.BillType(strings.ToUpper(t.Type)),
		Description:     t.Description,
		FrequencyInDays: t.FrequencyInDays,
		DueOffsetDays:   t.DueOffsetDays,
		GracePeriodDays: t.GracePeriodDays,
		BaseAmount:      base,
		LatePenalty:     penalty,
		LevelRate:       rate,
	}
	return tmpl, tmpl.Validate()
}

func (t rawLoanTemplate) toDomain() (domain.LoanTemplate, error) {
	principal, err := parseDecimal(t.Principal, "0")
	if err != nil {
		return domain.LoanTemplate{}, fmt.Errorf("principal: %w", err)
	}
	rate, err := parseDecimal(t.InterestRate, "0")
	if err != nil {
		return domain.LoanTemplate{}, fmt.Errorf("interest_rate: %w", err)
	}
	fee, err := parseDecimal(t.LatePaymentFee, "0")
	if err != nil {
		return domain.LoanTemplate{}, fmt.Errorf("late_payment_fee: %w", err)
	}
	tmpl := domain.LoanTemplate{
		Name:            t.Name,
		Principal:       principal,
		InterestRate:    rate,
		TotalPayments:   t.TotalPayments,
		PaymentInterval: t.PaymentInterval,
		LatePaymentFee:  fee,
	}
	return tmpl, tmpl.Validate()
}

func parseDecimal(s, fallback string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		s = fallback
	}
	return decimal.NewFromString(s)
}

// DefaultCatalog is used when no catalog file is configured.
func DefaultCatalog() *Catalog {
	return &Catalog{
		Products: []domain.Product{
			{ProductID: "cereal", Name: "Cereal", MarketPrice: decimal.RequireFromString("4.25")},
			{ProductID: "milk", Name: "Milk", MarketPrice: decimal.RequireFromString("2.50")},
			{ProductID: "bread", Name: "Bread", MarketPrice: decimal.RequireFromString("3.00")},
			{ProductID: "coffee", Name: "Coffee", MarketPrice: decimal.RequireFromString("8.99")},
			{ProductID: "apples", Name: "Apples", MarketPrice: decimal.RequireFromString("1.75")},
			{ProductID: "detergent", Name: "Detergent", MarketPrice: decimal.RequireFromString("11.40")},
		},
		BillTemplates: domain.DefaultBillTemplates(),
		LoanTemplates: domain.DefaultLoanTemplates(),
	}
}
