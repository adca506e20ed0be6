package inventory

import (
	"slices"
	"strings"
)

// ItemValue is the valuation of a single stock.
type ItemValue struct {
	Product  string
	Code     string
	Quantity int
	Value    Money
}

// ValueReport lists the value of each stock, in inventory order.
type ValueReport struct {
	Items []ItemValue
	Total Money
}

// CountryStock aggregates the stocks coming from one country.
type CountryStock struct {
	Country  string
	Products int
	Quantity int
	Value    Money
}

// CountryReport is the stock aggregated by country, sorted by decreasing value.
type CountryReport struct {
	Countries []CountryStock
	Total     Money
}

// ValueReport computes the value of every stock.
func (inv *Inventory) ValueReport() *ValueReport {
	r := &ValueReport{Total: M(0, inv.currency)}
	for _, s := range inv.stocks {
		v := s.Value()
		r.Items = append(r.Items, ItemValue{Product: s.Product, Code: s.Code, Quantity: s.Quantity, Value: v})
		r.Total = r.Total.Add(v)
	}
	return r
}

// CountryReport groups the stocks by country. Countries are grouped
// case-insensitively using the spelling of their first occurrence, and sorted
// by decreasing value then by name.
func (inv *Inventory) CountryReport() *CountryReport {
	r := &CountryReport{Total: M(0, inv.currency)}
	index := make(map[string]int)
	for _, s := range inv.stocks {
		key := strings.ToLower(s.Country)
		i, ok := index[key]
		if !ok {
			i = len(r.Countries)
			index[key] = i
			r.Countries = append(r.Countries, CountryStock{Country: s.Country, Value: M(0, inv.currency)})
		}
		c := &r.Countries[i]
		c.Products++
		c.Quantity += s.Quantity
		c.Value = c.Value.Add(s.Value())
		r.Total = r.Total.Add(s.Value())
	}
	slices.SortStableFunc(r.Countries, func(a, b CountryStock) int {
		if c := b.Value.Cmp(a.Value); c != 0 {
			return c
		}
		return strings.Compare(a.Country, b.Country)
	})
	return r
}
