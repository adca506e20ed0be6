package inventory

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidStock is returned when a stock record breaks one of its rules.
	ErrInvalidStock = errors.New("invalid stock")
	// ErrNotFound is returned when no stock matches a code.
	ErrNotFound = errors.New("stock not found")
	// ErrDuplicateCode is returned when a code is already used by another stock.
	ErrDuplicateCode = errors.New("duplicate code")
)

// Stock is one inventory line item: a product identified by its code, the
// country it comes from, its unit cost and the quantity held.
type Stock struct {
	Country  string
	Code     string
	Product  string
	Cost     Money
	Quantity int
}

// NewStock creates a normalized stock: fields are trimmed and the code is upper-cased.
func NewStock(country, code, product string, cost Money, quantity int) *Stock {
	return &Stock{
		Country:  strings.TrimSpace(country),
		Code:     NormalizeCode(code),
		Product:  strings.TrimSpace(product),
		Cost:     cost,
		Quantity: quantity,
	}
}

// NormalizeCode returns the canonical form of a product code.
func NormalizeCode(code string) string { return strings.ToUpper(strings.TrimSpace(code)) }

// Value returns the stock value: cost times quantity.
func (s *Stock) Value() Money { return s.Cost.Mul(s.Quantity) }

// Validate checks the stock rules.
func (s *Stock) Validate() error {
	if s.Country == "" {
		return fmt.Errorf("%w: missing country", ErrInvalidStock)
	}
	if s.Code == "" {
		return fmt.Errorf("%w: missing code", ErrInvalidStock)
	}
	if strings.ContainsAny(s.Country, "\r\n") || strings.ContainsAny(s.Code, ",\r\n") || strings.ContainsAny(s.Product, "\r\n") {
		return fmt.Errorf("%w: %q contains a line break or a separator", ErrInvalidStock, s.Code)
	}
	if !s.Cost.IsPositive() {
		return fmt.Errorf("%w: cost of %q must be positive, got %s", ErrInvalidStock, s.Code, s.Cost.Amount())
	}
	if s.Quantity < 0 {
		return fmt.Errorf("%w: quantity of %q cannot be negative, got %d", ErrInvalidStock, s.Code, s.Quantity)
	}
	return nil
}

// MarshalJSON writes the stock with a stable field order.
// The cost keeps its full precision, the value is rounded to the currency fraction.
func (s *Stock) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("country", s.Country)
	w.Append("code", s.Code)
	w.Optional("product", s.Product)
	w.Append("currency", s.Cost.Currency())
	w.Append("cost", json.Number(s.Cost.Amount()))
	w.Append("quantity", s.Quantity)
	w.Append("value", s.Value())
	return w.MarshalJSON()
}

// MarshalYAML writes the stock with the same keys as its JSON form.
func (s *Stock) MarshalYAML() (any, error) {
	type ystock struct {
		Country  string `yaml:"country"`
		Code     string `yaml:"code"`
		Product  string `yaml:"product,omitempty"`
		Currency string `yaml:"currency"`
		Cost     string `yaml:"cost"`
		Quantity int    `yaml:"quantity"`
		Value    string `yaml:"value"`
	}
	return ystock{
		Country:  s.Country,
		Code:     s.Code,
		Product:  s.Product,
		Currency: s.Cost.Currency(),
		Cost:     s.Cost.Amount(),
		Quantity: s.Quantity,
		Value:    s.Value().Amount(),
	}, nil
}
