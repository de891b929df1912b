package dto

import (
	"github.com/SscSPs/storefront_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AddProductListItemRequest adds a product to the comparison list or wishlist.
type AddProductListItemRequest struct {
	ProductID string          `json:"productID" binding:"required,max=128"`
	Name      string          `json:"name" binding:"max=256"`
	Slug      string          `json:"slug" binding:"max=256"`
	ImageURL  string          `json:"imageURL" binding:"omitempty,url,max=1024"`
	Price     decimal.Decimal `json:"price"`
}

// ToDomain converts the request to a list item.
func (r AddProductListItemRequest) ToDomain() domain.ProductListItem {
	return domain.ProductListItem{
		ProductID: r.ProductID,
		Name:      r.Name,
		Slug:      r.Slug,
		ImageURL:  r.ImageURL,
		Price:     r.Price,
	}
}

// ProductListResponse is the current content of a product list.
type ProductListResponse struct {
	Items    []domain.ProductListItem `json:"items"`
	Count    int                      `json:"count"`
	Capacity int                      `json:"capacity,omitempty"`
}

// ToProductListResponse converts a domain.ProductList to its DTO.
func ToProductListResponse(l *domain.ProductList) ProductListResponse {
	return ProductListResponse{
		Items:    l.Items(),
		Count:    l.Len(),
		Capacity: l.Capacity(),
	}
}

// RemoveProductListItemResponse reports whether a remove changed the list.
type RemoveProductListItemResponse struct {
	Removed bool                `json:"removed"`
	List    ProductListResponse `json:"list"`
}
