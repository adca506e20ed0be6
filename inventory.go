package inventory

import (
	"fmt"
	"iter"
	"slices"
	"strings"
)

// Inventory is the in-memory, ordered list of stocks of a warehouse.
// All costs share the same currency.
type Inventory struct {
	currency string
	stocks   []*Stock
}

// NewInventory creates an empty inventory whose costs are expressed in currency.
func NewInventory(currency string) *Inventory {
	if currency == "" {
		currency = DefaultCurrency
	}
	return &Inventory{currency: currency}
}

// Currency returns the currency of all costs and values.
func (inv *Inventory) Currency() string { return inv.currency }

// Len returns the number of stocks.
func (inv *Inventory) Len() int { return len(inv.stocks) }

// Stocks iterates over the stocks in file order.
func (inv *Inventory) Stocks() iter.Seq2[int, *Stock] {
	return func(yield func(int, *Stock) bool) {
		for i, s := range inv.stocks {
			if !yield(i, s) {
				return
			}
		}
	}
}

// List returns a copy of the stock list.
func (inv *Inventory) List() []*Stock { return slices.Clone(inv.stocks) }

// Find returns the stock with the given code, the lookup is case-insensitive.
func (inv *Inventory) Find(code string) (*Stock, bool) {
	code = NormalizeCode(code)
	for _, s := range inv.stocks {
		if s.Code == code {
			return s, true
		}
	}
	return nil, false
}

// Add validates and appends a stock to the inventory.
func (inv *Inventory) Add(s *Stock) error {
	if s.Cost.Currency() != inv.currency {
		return fmt.Errorf("%w: cost of %q is in %q, inventory is in %q", ErrInvalidStock, s.Code, s.Cost.Currency(), inv.currency)
	}
	if err := s.Validate(); err != nil {
		return err
	}
	if _, exists := inv.Find(s.Code); exists {
		return fmt.Errorf("%w: %q", ErrDuplicateCode, s.Code)
	}
	inv.stocks = append(inv.stocks, s)
	return nil
}

// Restock adds quantity units to the stock identified by code and returns it.
func (inv *Inventory) Restock(code string, quantity int) (*Stock, error) {
	if quantity <= 0 {
		return nil, fmt.Errorf("%w: restock quantity must be positive, got %d", ErrInvalidStock, quantity)
	}
	s, ok := inv.Find(code)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, NormalizeCode(code))
	}
	s.Quantity += quantity
	return s, nil
}

// Lowest returns the stock with the smallest quantity, the first one on ties.
// It returns nil for an empty inventory.
func (inv *Inventory) Lowest() *Stock {
	var lowest *Stock
	for _, s := range inv.stocks {
		if lowest == nil || s.Quantity < lowest.Quantity {
			lowest = s
		}
	}
	return lowest
}

// Highest returns the stock with the largest quantity, the first one on ties.
// It returns nil for an empty inventory.
func (inv *Inventory) Highest() *Stock {
	var highest *Stock
	for _, s := range inv.stocks {
		if highest == nil || s.Quantity > highest.Quantity {
			highest = s
		}
	}
	return highest
}

// TotalValue returns the sum of cost times quantity over all stocks.
func (inv *Inventory) TotalValue() Money {
	total := M(0, inv.currency)
	for _, s := range inv.stocks {
		total = total.Add(s.Value())
	}
	return total
}

// ValueByCountry returns the value of the stocks from a single country.
// Countries are compared case-insensitively.
func (inv *Inventory) ValueByCountry(country string) Money {
	total := M(0, inv.currency)
	for _, s := range inv.stocks {
		if strings.EqualFold(s.Country, strings.TrimSpace(country)) {
			total = total.Add(s.Value())
		}
	}
	return total
}
