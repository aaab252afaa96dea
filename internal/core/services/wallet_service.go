package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/storefront_sim/internal/apperrors"
	"github.com/SscSPs/storefront_sim/internal/core/domain"
	"github.com/SscSPs/storefront_sim/internal/core/ports"
	portsrepo "github.com/SscSPs/storefront_sim/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/storefront_sim/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

type walletService struct {
	BaseService
	walletRepo portsrepo.WalletRepository
	events     ports.EventPublisher
}

// NewWalletService creates the player balance service.
func NewWalletService(walletRepo portsrepo.WalletRepository, events ports.EventPublisher) portssvc.WalletSvc {
	return &walletService{walletRepo: walletRepo, events: events}
}

var _ portssvc.WalletSvc = (*walletService)(nil)

func (s *walletService) Balance(ctx context.Context) (decimal.Decimal, error) {
	balance, err := s.walletRepo.GetBalance(ctx)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to read balance: %w", err)
	}
	return balance, nil
}

func (s *walletService) Credit(ctx context.Context, amount decimal.Decimal, reason string) (decimal.Decimal, error) {
	if amount.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: credit amount must not be negative", apperrors.ErrValidation)
	}
	return s.apply(ctx, amount, reason)
}

func (s *walletService) ForceDebit(ctx context.Context, amount decimal.Decimal, reason string) (decimal.Decimal, error) {
	if amount.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: debit amount must not be negative", apperrors.ErrValidation)
	}
	return s.apply(ctx, amount.Neg(), reason)
}

func (s *walletService) TryDebit(ctx context.Context, amount decimal.Decimal, reason string) (decimal.Decimal, error) {
	if amount.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: debit amount must not be negative", apperrors.ErrValidation)
	}
	balance, err := s.Balance(ctx)
	if err != nil {
		return decimal.Zero, err
	}
	if balance.LessThan(amount) {
		s.LogInfo(ctx, "Debit rejected, insufficient funds",
			slog.String("reason", reason),
			slog.String("amount", amount.String()),
			slog.String("balance", balance.String()))
		return balance, fmt.Errorf("%w: need %s, have %s", apperrors.ErrInsufficientFunds, amount.StringFixed(2), balance.StringFixed(2))
	}
	return s.apply(ctx, amount.Neg(), reason)
}

func (s *walletService) apply(ctx context.Context, delta decimal.Decimal, reason string) (decimal.Decimal, error) {
	balance, err := s.Balance(ctx)
	if err != nil {
		return decimal.Zero, err
	}
	if delta.IsZero() {
		return balance, nil
	}
	next := balance.Add(delta)
	if err := s.walletRepo.SaveBalance(ctx, next); err != nil {
		s.LogError(ctx, err, "Failed to save balance", slog.String("reason", reason))
		return balance, fmt.Errorf("failed to save balance: %w", err)
	}
	s.LogDebug(ctx, "Balance changed",
		slog.String("reason", reason),
		slog.String("delta", delta.String()),
		slog.String("balance", next.String()))
	s.events.Publish(domain.MoneyChanged{Balance: next, Delta: delta, Reason: reason})
	return next, nil
}
