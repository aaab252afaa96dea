package dto

import (
	"github.com/SscSPs/storefront_sim/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ProductResponse defines the data returned for a product.
type ProductResponse struct {
	ProductID      string           `json:"productID"`
	Name           string           `json:"name"`
	MarketPrice    decimal.Decimal  `json:"marketPrice"`
	CustomPrice    *decimal.Decimal `json:"customPrice,omitempty"`
	EffectivePrice decimal.Decimal  `json:"effectivePrice"`
}

// ToProductResponse converts a domain Product to its response DTO
func ToProductResponse(p domain.Product) ProductResponse {
	return ProductResponse{
		ProductID:      p.ProductID,
		Name:           p.Name,
		MarketPrice:    p.MarketPrice,
		CustomPrice:    p.CustomPrice,
		EffectivePrice: p.EffectivePrice(),
	}
}

// ToListProductResponse converts domain Products to response DTOs
func ToListProductResponse(products []domain.Product) []ProductResponse {
	res := make([]ProductResponse, len(products))
	for i, p := range products {
		res[i] = ToProductResponse(p)
	}
	return res
}

// SetPriceRequest sets the store's own price for a product.
type SetPriceRequest struct {
	Price decimal.Decimal `json:"price"`
}
