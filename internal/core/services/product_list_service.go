package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/SscSPs/storefront_backend/internal/apperrors"
	"github.com/SscSPs/storefront_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/storefront_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/storefront_backend/internal/core/ports/services"
)

const (
	// ComparisonListKey is the client storage key of the comparison list.
	ComparisonListKey = "compare_list"
	// WishlistKey is the client storage key of the wishlist.
	WishlistKey = "wishlist"
)

// productListService persists one product list under a client storage key.
type productListService struct {
	BaseService
	name     string
	key      string
	capacity int
}

// NewComparisonService manages the comparison list, capped at domain.MaxComparisonItems.
func NewComparisonService() portssvc.ProductListSvc {
	return &productListService{name: "comparison list", key: ComparisonListKey, capacity: domain.MaxComparisonItems}
}

// NewWishlistService manages the unbounded wishlist.
func NewWishlistService() portssvc.ProductListSvc {
	return &productListService{name: "wishlist", key: WishlistKey, capacity: domain.Unbounded}
}

func (s *productListService) Load(_ context.Context, store portsrepo.ClientStorage) *domain.ProductList {
	raw, ok := store.Get(s.key)
	if !ok {
		return domain.NewProductList(s.capacity)
	}
	return domain.RestoreProductList(s.capacity, []byte(raw))
}

func (s *productListService) save(store portsrepo.ClientStorage, list *domain.ProductList) error {
	raw, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", s.name, err)
	}
	if err := store.Set(s.key, string(raw)); err != nil {
		return fmt.Errorf("failed to store %s: %w", s.name, err)
	}
	return nil
}

func (s *productListService) Add(ctx context.Context, store portsrepo.ClientStorage, item domain.ProductListItem) (*domain.ProductList, error) {
	if item.ProductID == "" {
		return nil, apperrors.NewValidationError("productID is required")
	}
	if item.Price.IsNegative() {
		return nil, apperrors.NewValidationError("price must not be negative")
	}

	list := s.Load(ctx, store)
	if list.Contains(item.ProductID) {
		return list, fmt.Errorf("%w: product %s is already in the %s", apperrors.ErrDuplicate, item.ProductID, s.name)
	}
	if list.IsFull() {
		return list, fmt.Errorf("%w: the %s holds at most %d products", apperrors.ErrLimitReached, s.name, list.Capacity())
	}
	list.Add(item)

	if err := s.save(store, list); err != nil {
		return nil, err
	}
	s.LogDebug(ctx, "Product added", slog.String("list", s.key), slog.String("product_id", item.ProductID), slog.Int("count", list.Len()))
	return list, nil
}

func (s *productListService) Remove(ctx context.Context, store portsrepo.ClientStorage, productID string) (*domain.ProductList, bool, error) {
	list := s.Load(ctx, store)
	if !list.Remove(productID) {
		return list, false, nil
	}
	if err := s.save(store, list); err != nil {
		return nil, false, err
	}
	return list, true, nil
}

func (s *productListService) Clear(ctx context.Context, store portsrepo.ClientStorage) (*domain.ProductList, error) {
	list := s.Load(ctx, store)
	list.Clear()
	store.Delete(s.key)
	return list, nil
}
