package inventory

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"gopkg.in/yaml.v3"
)

// this file contains functions to handle the import/export formats.
// The JSONL format is one stock per line, it is easy to grep and to merge into another inventory.

// ExportJSON writes the inventory as JSONL, one stock object per line.
func ExportJSON(w io.Writer, inv *Inventory) error {
	for _, s := range inv.stocks {
		b, err := json.Marshal(s)
		if err != nil {
			return fmt.Errorf("cannot export %q: %w", s.Code, err)
		}
		if _, err := fmt.Fprintf(w, "%s\n", b); err != nil {
			return err
		}
	}
	return nil
}

// ExportYAML writes the inventory as a YAML list of stocks.
func ExportYAML(w io.Writer, inv *Inventory) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	stocks := inv.stocks
	if stocks == nil {
		stocks = []*Stock{}
	}
	if err := enc.Encode(stocks); err != nil {
		return fmt.Errorf("cannot export inventory: %w", err)
	}
	return enc.Close()
}

// ImportJSON reads stocks in the JSONL format and adds them to inv.
// The 'value' and 'currency' properties are ignored: costs are read in the inventory currency.
// It returns the number of stocks added, and stops at the first invalid line.
func ImportJSON(r io.Reader, inv *Inventory) (int, error) {
	type jstock struct {
		Country  string      `json:"country"`
		Code     string      `json:"code"`
		Product  string      `json:"product"`
		Cost     json.Number `json:"cost"`
		Quantity int         `json:"quantity"`
	}

	added := 0
	i := 0
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		i++
		line := scanner.Bytes()
		if len(strings.TrimSpace(string(line))) == 0 {
			continue
		}
		var js jstock
		if err := json.Unmarshal(line, &js); err != nil {
			return added, fmt.Errorf("format error on line %d: %w", i, err)
		}
		cost, err := ParseMoney(js.Cost.String(), inv.currency)
		if err != nil {
			return added, fmt.Errorf("format error on line %d: %w", i, err)
		}
		if err := inv.Add(NewStock(js.Country, js.Code, js.Product, cost, js.Quantity)); err != nil {
			return added, fmt.Errorf("line %d: %w", i, err)
		}
		added++
	}
	if err := scanner.Err(); err != nil {
		return added, err
	}
	return added, nil
}

// Query evaluates a JSONPath expression against the inventory.
//
// The document queried is the array of stocks in their JSON form, for instance
// `$[?(@.country=="Vietnam")].code` lists the codes of the Vietnamese stocks.
func Query(inv *Inventory, path string) (any, error) {
	raw, err := json.Marshal(inv.stocks)
	if err != nil {
		return nil, err
	}
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	if doc == nil {
		doc = []any{}
	}
	v, err := jsonpath.Get(path, doc)
	if err != nil {
		return nil, fmt.Errorf("error evaluating %q: %w", path, err)
	}
	return v, nil
}
