package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/storefront_sim/internal/apperrors"
	"github.com/SscSPs/storefront_sim/internal/core/domain"
	portsrepo "github.com/SscSPs/storefront_sim/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/storefront_sim/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

type pricingService struct {
	BaseService
	productRepo portsrepo.ProductRepository
}

// NewPricingService creates the product price service.
func NewPricingService(productRepo portsrepo.ProductRepository) portssvc.PricingSvc {
	return &pricingService{productRepo: productRepo}
}

var _ portssvc.PricingSvc = (*pricingService)(nil)

func (s *pricingService) ListProducts(ctx context.Context) ([]domain.Product, error) {
	products, err := s.productRepo.ListProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	if products == nil {
		return []domain.Product{}, nil
	}
	return products, nil
}

func (s *pricingService) getProduct(ctx context.Context, productID string) (*domain.Product, error) {
	product, err := s.productRepo.FindProductByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, fmt.Errorf("%w: product %s", apperrors.ErrNotFound, productID)
	}
	return product, nil
}

func (s *pricingService) PriceOf(ctx context.Context, productID string) (decimal.Decimal, error) {
	product, err := s.getProduct(ctx, productID)
	if err != nil {
		return decimal.Zero, err
	}
	return product.EffectivePrice(), nil
}

func (s *pricingService) SetCustomPrice(ctx context.Context, productID string, price decimal.Decimal) (*domain.Product, error) {
	if !price.IsPositive() {
		return nil, fmt.Errorf("%w: price must be positive", apperrors.ErrValidation)
	}
	product, err := s.getProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	// prices are kept to the cent
	p := price.Round(2)
	product.CustomPrice = &p
	if err := s.productRepo.SaveProduct(ctx, *product); err != nil {
		s.LogError(ctx, err, "Failed to save custom price", slog.String("product_id", productID))
		return nil, fmt.Errorf("failed to save product: %w", err)
	}
	s.LogInfo(ctx, "Custom price set", slog.String("product_id", productID), slog.String("price", p.String()))
	return product, nil
}

func (s *pricingService) ClearCustomPrice(ctx context.Context, productID string) (*domain.Product, error) {
	product, err := s.getProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	product.CustomPrice = nil
	if err := s.productRepo.SaveProduct(ctx, *product); err != nil {
		s.LogError(ctx, err, "Failed to clear custom price", slog.String("product_id", productID))
		return nil, fmt.Errorf("failed to save product: %w", err)
	}
	return product, nil
}
