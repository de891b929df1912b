package domain

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// MaxComparisonItems caps the comparison list.
const MaxComparisonItems = 4

// Unbounded marks a ProductList without a capacity limit.
const Unbounded = 0

// ProductListItem is a product reference kept in a shopper's comparison list or wishlist.
// Only ProductID is authoritative; the rest is display data captured when the item was added.
type ProductListItem struct {
	ProductID string          `json:"productID"`
	Name      string          `json:"name,omitempty"`
	Slug      string          `json:"slug,omitempty"`
	ImageURL  string          `json:"imageURL,omitempty"`
	Price     decimal.Decimal `json:"price"`
}

// ProductList is a deduplicated, order-preserving list of products with an optional capacity.
type ProductList struct {
	capacity int
	items    []ProductListItem
}

// NewProductList creates an empty list. A capacity of Unbounded disables the cap.
func NewProductList(capacity int) *ProductList {
	return &ProductList{capacity: capacity, items: []ProductListItem{}}
}

// NewComparisonList creates an empty list capped at MaxComparisonItems.
func NewComparisonList() *ProductList {
	return NewProductList(MaxComparisonItems)
}

// Capacity returns the cap, or Unbounded.
func (l *ProductList) Capacity() int {
	return l.capacity
}

// Len returns the number of items.
func (l *ProductList) Len() int {
	return len(l.items)
}

// IsFull reports whether Add would be refused for a new product.
func (l *ProductList) IsFull() bool {
	return l.capacity != Unbounded && len(l.items) >= l.capacity
}

// Contains reports whether productID is in the list.
func (l *ProductList) Contains(productID string) bool {
	return l.indexOf(productID) >= 0
}

// Add appends item unless its product is already present or the list is full.
// It returns false and leaves the list unchanged in those cases.
func (l *ProductList) Add(item ProductListItem) bool {
	if item.ProductID == "" || l.Contains(item.ProductID) || l.IsFull() {
		return false
	}
	l.items = append(l.items, item)
	return true
}

// Remove deletes productID and reports whether anything was removed.
func (l *ProductList) Remove(productID string) bool {
	i := l.indexOf(productID)
	if i < 0 {
		return false
	}
	l.items = append(l.items[:i], l.items[i+1:]...)
	return true
}

// Clear empties the list.
func (l *ProductList) Clear() {
	l.items = []ProductListItem{}
}

// Items returns a copy of the items in insertion order.
func (l *ProductList) Items() []ProductListItem {
	out := make([]ProductListItem, len(l.items))
	copy(out, l.items)
	return out
}

func (l *ProductList) indexOf(productID string) int {
	for i, it := range l.items {
		if it.ProductID == productID {
			return i
		}
	}
	return -1
}

// MarshalJSON encodes the list as a plain JSON array.
func (l *ProductList) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.items)
}

// RestoreProductList rebuilds a list from persisted JSON.
// Anything that is not a JSON array of items yields an empty list. Duplicates and
// entries beyond the capacity are dropped, keeping the first occurrences.
func RestoreProductList(capacity int, raw []byte) *ProductList {
	l := NewProductList(capacity)
	if len(raw) == 0 {
		return l
	}
	var items []ProductListItem
	if err := json.Unmarshal(raw, &items); err != nil {
		return l
	}
	for _, it := range items {
		l.Add(it)
	}
	return l
}
