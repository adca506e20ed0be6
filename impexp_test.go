package inventory

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestExportImportJSON(t *testing.T) {
	inv := sample()

	var b strings.Builder
	if err := ExportJSON(&b, inv); err != nil {
		t.Fatalf("ExportJSON() error: %v", err)
	}
	first, _, _ := strings.Cut(b.String(), "\n")
	want := `{"country":"ZA","code":"C1","product":"Air Max","currency":"ZAR","cost":100.00,"quantity":5,"value":500.00}`
	if first != want {
		t.Errorf("first line = %s, want %s", first, want)
	}

	imported := NewInventory("ZAR")
	n, err := ImportJSON(strings.NewReader(b.String()), imported)
	if err != nil {
		t.Fatalf("ImportJSON() error: %v", err)
	}
	if n != inv.Len() {
		t.Errorf("ImportJSON() added %d, want %d", n, inv.Len())
	}
	if diff := cmp.Diff(inv.List(), imported.List()); diff != "" {
		t.Errorf("export/import mismatch (-want +got):\n%s", diff)
	}

	// importing again only hits duplicates
	if n, err := ImportJSON(strings.NewReader(b.String()), imported); err == nil || n != 0 {
		t.Errorf("ImportJSON() of duplicates = %d, %v; want 0 and an error", n, err)
	}
}

func TestExportImportJSON_Precision(t *testing.T) {
	cost, err := ParseMoney("2300.125", "ZAR")
	if err != nil {
		t.Fatal(err)
	}
	inv := NewInventory("ZAR")
	if err := inv.Add(NewStock("Vietnam", "SKU44752", "Air Max 90", cost, 2)); err != nil {
		t.Fatal(err)
	}

	var b strings.Builder
	if err := ExportJSON(&b, inv); err != nil {
		t.Fatalf("ExportJSON() error: %v", err)
	}
	want := `{"country":"Vietnam","code":"SKU44752","product":"Air Max 90","currency":"ZAR","cost":2300.125,"quantity":2,"value":4600.25}` + "\n"
	if b.String() != want {
		t.Errorf("ExportJSON() = %s, want %s", b.String(), want)
	}

	imported := NewInventory("ZAR")
	if _, err := ImportJSON(strings.NewReader(b.String()), imported); err != nil {
		t.Fatalf("ImportJSON() error: %v", err)
	}
	s, ok := imported.Find("SKU44752")
	if !ok {
		t.Fatal("imported stock not found")
	}
	if !s.Cost.Equal(cost) {
		t.Errorf("imported cost = %s, want %s", s.Cost.Amount(), cost.Amount())
	}
}

func TestExportYAML(t *testing.T) {
	inv := NewInventory("ZAR")
	inv.stocks = []*Stock{NewStock("ZA", "C1", "Air Max", ZAR(100), 5)}

	var b strings.Builder
	if err := ExportYAML(&b, inv); err != nil {
		t.Fatal(err)
	}
	want := `- country: ZA
  code: C1
  product: Air Max
  currency: ZAR
  cost: "100.00"
  quantity: 5
  value: "500.00"
`
	if diff := cmp.Diff(want, b.String()); diff != "" {
		t.Errorf("ExportYAML() mismatch (-want +got):\n%s", diff)
	}
}

func TestQuery(t *testing.T) {
	inv := sample()
	testCases := []struct {
		path string
		want any
	}{
		{`$[0].code`, "C1"},
		{`$[?(@.country=="ZA")].code`, []any{"C1", "C2"}},
		{`$[?(@.quantity>5)].product`, []any{"Air Force 1"}},
	}
	for _, tc := range testCases {
		t.Run(tc.path, func(t *testing.T) {
			got, err := Query(inv, tc.path)
			if err != nil {
				t.Fatalf("Query() error: %v", err)
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("Query() mismatch (-want +got):\n%s", diff)
			}
		})
	}

	if _, err := Query(inv, `$[`); err == nil {
		t.Error("Query() with an invalid path should fail")
	}
}
