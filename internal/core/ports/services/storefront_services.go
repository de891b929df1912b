package services

import (
	"context"

	"github.com/SscSPs/storefront_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/storefront_backend/internal/core/ports/repositories"
)

// PreferenceSvc manages shopper preferences kept in client storage.
type PreferenceSvc interface {
	// ActiveCurrency returns the stored currency when it is in the catalog,
	// otherwise the base currency. The bool reports whether the base was used.
	ActiveCurrency(ctx context.Context, store portsrepo.ClientStorage) (domain.Currency, bool)

	// SelectCurrency validates and stores the shopper's currency choice.
	SelectCurrency(ctx context.Context, store portsrepo.ClientStorage, currencyCode string) (domain.Currency, error)
}

// ProductListSvc manages a persisted product list such as the comparison list or wishlist.
type ProductListSvc interface {
	// Load restores the list from client storage.
	Load(ctx context.Context, store portsrepo.ClientStorage) *domain.ProductList

	// Add appends an item. It fails with apperrors.ErrDuplicate or apperrors.ErrLimitReached
	// without changing the stored list.
	Add(ctx context.Context, store portsrepo.ClientStorage, item domain.ProductListItem) (*domain.ProductList, error)

	// Remove deletes a product and reports whether it was present.
	Remove(ctx context.Context, store portsrepo.ClientStorage, productID string) (*domain.ProductList, bool, error)

	// Clear empties the list unconditionally.
	Clear(ctx context.Context, store portsrepo.ClientStorage) (*domain.ProductList, error)
}
