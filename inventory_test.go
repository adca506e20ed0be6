package inventory

import (
	"errors"
	"testing"
)

func TestInventory_Add(t *testing.T) {
	testCases := []struct {
		name    string
		stock   *Stock
		wantErr error
	}{
		{name: "valid", stock: NewStock("ZA", "n1", "Air Zoom", ZAR(10), 0)},
		{name: "negative quantity", stock: NewStock("ZA", "N2", "", ZAR(10), -1), wantErr: ErrInvalidStock},
		{name: "zero cost", stock: NewStock("ZA", "N3", "", ZAR(0), 1), wantErr: ErrInvalidStock},
		{name: "missing country", stock: NewStock(" ", "N4", "", ZAR(1), 1), wantErr: ErrInvalidStock},
		{name: "missing code", stock: NewStock("ZA", "", "", ZAR(1), 1), wantErr: ErrInvalidStock},
		{name: "comma in code", stock: NewStock("ZA", "A,B", "", ZAR(1), 1), wantErr: ErrInvalidStock},
		{name: "other currency", stock: NewStock("ZA", "N5", "", USD(1), 1), wantErr: ErrInvalidStock},
		{name: "duplicate code", stock: NewStock("ZA", "c1", "", ZAR(1), 1), wantErr: ErrDuplicateCode},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			inv := sample()
			before := inv.Len()
			err := inv.Add(tc.stock)
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("Add() error = %v, want %v", err, tc.wantErr)
				}
				if inv.Len() != before {
					t.Errorf("Len() = %d after a failed Add, want %d", inv.Len(), before)
				}
				return
			}
			if err != nil {
				t.Fatalf("Add() unexpected error: %v", err)
			}
			if inv.Len() != before+1 {
				t.Errorf("Len() = %d, want %d", inv.Len(), before+1)
			}
		})
	}
}

func TestInventory_AddIncreasesTotalValue(t *testing.T) {
	inv := sample()
	before := inv.TotalValue()
	if err := inv.Add(NewStock("Indonesia", "ID1", "Blazer", ZAR(75.25), 4)); err != nil {
		t.Fatal(err)
	}
	if got, want := inv.TotalValue(), before.Add(ZAR(301)); !got.Equal(want) {
		t.Errorf("TotalValue() = %v, want %v", got, want)
	}
}

func TestInventory_Find(t *testing.T) {
	inv := sample()
	s, ok := inv.Find(" cn1 ")
	if !ok {
		t.Fatal("Find(cn1) found nothing")
	}
	if s.Product != "Dunk Low" {
		t.Errorf("Find(cn1) = %q, want %q", s.Product, "Dunk Low")
	}
	if _, ok := inv.Find("nope"); ok {
		t.Error("Find(nope) should not find anything")
	}
}

func TestInventory_Restock(t *testing.T) {
	inv := sample()
	s, err := inv.Restock("c2", 8)
	if err != nil {
		t.Fatalf("Restock() unexpected error: %v", err)
	}
	if s.Quantity != 10 {
		t.Errorf("Quantity = %d, want 10", s.Quantity)
	}
	if _, err := inv.Restock("C2", 0); !errors.Is(err, ErrInvalidStock) {
		t.Errorf("Restock(0) error = %v, want %v", err, ErrInvalidStock)
	}
	if _, err := inv.Restock("XX", 1); !errors.Is(err, ErrNotFound) {
		t.Errorf("Restock(XX) error = %v, want %v", err, ErrNotFound)
	}
}

func TestInventory_LowestHighest(t *testing.T) {
	inv := sample()
	if got := inv.Lowest(); got.Code != "CN1" {
		t.Errorf("Lowest() = %q, want CN1", got.Code)
	}
	if got := inv.Highest(); got.Code != "V1" {
		t.Errorf("Highest() = %q, want V1", got.Code)
	}

	// first one wins on ties
	inv.stocks[1].Quantity = 1
	if got := inv.Lowest(); got.Code != "C2" {
		t.Errorf("Lowest() with tie = %q, want C2", got.Code)
	}

	empty := NewInventory("")
	if empty.Lowest() != nil || empty.Highest() != nil {
		t.Error("Lowest() and Highest() must be nil on an empty inventory")
	}
	if empty.Currency() != DefaultCurrency {
		t.Errorf("Currency() = %q, want %q", empty.Currency(), DefaultCurrency)
	}
}

func TestInventory_Values(t *testing.T) {
	inv := sample()

	testCases := []struct {
		country string
		want    Money
	}{
		{"ZA", ZAR(600)},
		{"za", ZAR(600)},
		{"Vietnam", ZAR(805)},
		{"China", ZAR(120)},
		{"Brazil", ZAR(0)},
	}
	for _, tc := range testCases {
		if got := inv.ValueByCountry(tc.country); !got.Equal(tc.want) {
			t.Errorf("ValueByCountry(%q) = %v, want %v", tc.country, got, tc.want)
		}
	}

	if got, want := inv.TotalValue(), ZAR(1525); !got.Equal(want) {
		t.Errorf("TotalValue() = %v, want %v", got, want)
	}
	if got, want := NewInventory("").TotalValue(), ZAR(0); !got.Equal(want) {
		t.Errorf("TotalValue() of empty inventory = %v, want %v", got, want)
	}
}

func TestInventory_Stocks(t *testing.T) {
	inv := sample()
	var codes []string
	for _, s := range inv.Stocks() {
		codes = append(codes, s.Code)
		if len(codes) == 2 {
			break
		}
	}
	if len(codes) != 2 || codes[0] != "C1" || codes[1] != "C2" {
		t.Errorf("Stocks() = %v, want [C1 C2]", codes)
	}
}
