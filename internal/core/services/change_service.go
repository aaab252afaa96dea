package services

import (
	"github.com/SscSPs/storefront_sim/internal/core/domain"
	"github.com/SscSPs/storefront_sim/internal/core/ports"
	portssvc "github.com/SscSPs/storefront_sim/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// DefaultExactPaymentChance is the probability an eligible customer pays the exact amount.
const DefaultExactPaymentChance = 0.3

type changeService struct {
	rng           ports.RandomSource
	denominations []int
	exactChance   float64
	roundStep     int64
}

// ChangeOption configures the change service
type ChangeOption func(*changeService)

// WithDenominations replaces the default denomination set. It must be strictly descending.
func WithDenominations(denoms []int) ChangeOption {
	return func(s *changeService) {
		s.denominations = append([]int(nil), denoms...)
	}
}

// WithExactPaymentChance sets the probability of the exact payment strategy.
func WithExactPaymentChance(p float64) ChangeOption {
	return func(s *changeService) {
		s.exactChance = p
	}
}

// NewChangeService creates the change engine. It fails when the configured
// denomination set is not strictly descending.
func NewChangeService(rng ports.RandomSource, options ...ChangeOption) (portssvc.ChangeSvc, error) {
	svc := &changeService{
		rng:           rng,
		denominations: append([]int(nil), domain.Denominations...),
		exactChance:   DefaultExactPaymentChance,
		roundStep:     domain.RoundNumberStep,
	}
	for _, option := range options {
		option(svc)
	}
	if err := domain.ValidateDenominations(svc.denominations); err != nil {
		return nil, err
	}
	return svc, nil
}

var _ portssvc.ChangeSvc = (*changeService)(nil)

func (s *changeService) Denominations() []int {
	return append([]int(nil), s.denominations...)
}

func (s *changeService) GeneratePlausiblePayment(totalPrice decimal.Decimal) decimal.Decimal {
	amount := domain.ToCents(totalPrice)
	options := make([]int64, 0, 4)

	if amount <= int64(s.denominations[0]) && s.rng.Float64() < s.exactChance {
		options = append(options, amount)
	}
	options = append(options, s.fallbackStrategies(amount)...)

	return domain.FromCents(options[s.rng.IntN(len(options))])
}

func (s *changeService) PaymentOptions(totalPrice decimal.Decimal) []decimal.Decimal {
	amount := domain.ToCents(totalPrice)
	out := make([]decimal.Decimal, 0, 4)
	if amount <= int64(s.denominations[0]) {
		out = append(out, domain.FromCents(amount))
	}
	for _, c := range s.fallbackStrategies(amount) {
		out = append(out, domain.FromCents(c))
	}
	return out
}

// fallbackStrategies are the three strategies that always produce a candidate.
func (s *changeService) fallbackStrategies(amount int64) []int64 {
	return []int64{
		s.roundUpToDenomination(amount),
		s.smallestExcess(amount),
		s.higherRoundNumber(amount),
	}
}

// roundUpToDenomination is the smallest denomination >= amount.
func (s *changeService) roundUpToDenomination(amount int64) int64 {
	for i := len(s.denominations) - 1; i >= 0; i-- {
		if int64(s.denominations[i]) >= amount {
			return int64(s.denominations[i])
		}
	}
	return amount
}

// smallestExcess is the smallest denomination strictly greater than amount.
func (s *changeService) smallestExcess(amount int64) int64 {
	for i := len(s.denominations) - 1; i >= 0; i-- {
		if int64(s.denominations[i]) > amount {
			return int64(s.denominations[i])
		}
	}
	return amount
}

func (s *changeService) higherRoundNumber(amount int64) int64 {
	rounded := (amount + s.roundStep - 1) / s.roundStep * s.roundStep
	if rounded > amount {
		return rounded
	}
	return amount
}

// VerifyChange accepts any tendered sum that covers the change owed, including
// more than owed.
func (s *changeService) VerifyChange(tenderedCents []int, customerTendered, totalPrice decimal.Decimal) bool {
	owed := customerTendered.Sub(totalPrice)
	return s.SumChange(tenderedCents).GreaterThanOrEqual(owed)
}

func (s *changeService) SumChange(tenderedCents []int) decimal.Decimal {
	var sum int64
	for _, c := range tenderedCents {
		sum += int64(c)
	}
	return domain.FromCents(sum)
}
