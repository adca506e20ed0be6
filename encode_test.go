package inventory

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const messyFile = `country,code,product,cost,quantity
ZA,c1,Air Max,100.00,5
ZA,C2,Pegasus,50,2
broken line
ZA,C3,Bad,abc,1

US,C4,"Jordan, Retro",200.5,-1
ZA,C1,Dup,10,1
Vietnam,V1,"Air Force 1, White",80.50,10
`

func TestDecode(t *testing.T) {
	inv, skipped, err := Decode("inventory.txt", strings.NewReader(messyFile), DecodeOptions{})
	if err != nil {
		t.Fatalf("Decode() unexpected error: %v", err)
	}

	want := []*Stock{
		NewStock("ZA", "C1", "Air Max", ZAR(100), 5),
		NewStock("ZA", "C2", "Pegasus", ZAR(50), 2),
		NewStock("Vietnam", "V1", "Air Force 1, White", ZAR(80.5), 10),
	}
	if diff := cmp.Diff(want, inv.List()); diff != "" {
		t.Errorf("Decode() mismatch (-want +got):\n%s", diff)
	}

	var lines []int
	for _, l := range skipped {
		lines = append(lines, l.Line)
	}
	if diff := cmp.Diff([]int{4, 5, 7, 8}, lines); diff != "" {
		t.Errorf("skipped lines mismatch (-want +got):\n%s", diff)
	}
	if !errors.Is(skipped[2], ErrInvalidStock) {
		t.Errorf("negative quantity should be reported as %v, got %v", ErrInvalidStock, skipped[2])
	}
	if !errors.Is(skipped[3], ErrDuplicateCode) {
		t.Errorf("duplicate code should be reported as %v, got %v", ErrDuplicateCode, skipped[3])
	}
}

func TestDecode_Strict(t *testing.T) {
	_, _, err := Decode("inventory.txt", strings.NewReader(messyFile), DecodeOptions{Strict: true})
	var lerr *LineError
	if !errors.As(err, &lerr) {
		t.Fatalf("Decode() error = %v, want a *LineError", err)
	}
	if lerr.Line != 4 || lerr.Filename != "inventory.txt" {
		t.Errorf("got error at %s:%d, want inventory.txt:4", lerr.Filename, lerr.Line)
	}
}

func TestDecode_Legacy(t *testing.T) {
	// header without a trailing newline, records prefixed by one, and float costs.
	legacy := "country,code,product,cost,quantity\nSouth Africa,SKU44386,Air Max 90,2300.0,20\nChina,SKU90000,Jordan 1,3200.0,50"
	inv, skipped, err := Decode("legacy.txt", strings.NewReader(legacy), DecodeOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if len(skipped) != 0 {
		t.Errorf("unexpected skipped lines: %v", skipped)
	}
	if got, want := inv.TotalValue(), ZAR(206000); !got.Equal(want) {
		t.Errorf("TotalValue() = %v, want %v", got, want)
	}
}

func TestDecode_NoHeader(t *testing.T) {
	inv, _, err := Decode("", strings.NewReader("ZA,C1,Air Max,100,5\n"), DecodeOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if inv.Len() != 1 {
		t.Errorf("Len() = %d, want 1", inv.Len())
	}
}

func TestEncode(t *testing.T) {
	inv := NewInventory("ZAR")
	inv.stocks = []*Stock{
		NewStock("ZA", "C1", "Air Max", ZAR(100), 5),
		NewStock("Vietnam", "V1", "Air Force 1, White", ZAR(80.5), 10),
	}
	var b strings.Builder
	if err := Encode(&b, inv); err != nil {
		t.Fatal(err)
	}
	want := "country,code,product,cost,quantity\n" +
		"ZA,C1,Air Max,100.00,5\n" +
		"Vietnam,V1,\"Air Force 1, White\",80.50,10\n"
	if got := b.String(); got != want {
		t.Errorf("Encode() got\n%s\nwant\n%s", got, want)
	}
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	inv := sample()
	inv.stocks = append(inv.stocks, NewStock("Italy", "IT1", `Quote "special"`, ZAR(1999.999), 0))

	var b strings.Builder
	if err := Encode(&b, inv); err != nil {
		t.Fatal(err)
	}
	got, skipped, err := Decode("round-trip", strings.NewReader(b.String()), DecodeOptions{Strict: true})
	if err != nil {
		t.Fatal(err)
	}
	if len(skipped) != 0 {
		t.Errorf("unexpected skipped lines: %v", skipped)
	}
	if diff := cmp.Diff(inv.List(), got.List()); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}
