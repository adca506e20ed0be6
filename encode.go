package inventory

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// This file contains the codec for the inventory text file.
//
// The file is a comma separated text file, one stock per line, preceded by a header:
//
//	country,code,product,cost,quantity
//	Vietnam,SKU44752,Air Max 90,2300.00,20
//
// Fields containing a comma or a quote are quoted the CSV way.

// Header is the list of columns of the inventory file.
var Header = []string{"country", "code", "product", "cost", "quantity"}

// LineError reports a malformed line of an inventory file.
type LineError struct {
	Filename string
	Line     int
	Text     string
	Err      error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("%s:%d: %v: %q", e.Filename, e.Line, e.Err, e.Text)
}

func (e *LineError) Unwrap() error { return e.Err }

// DecodeOptions controls how an inventory file is decoded.
type DecodeOptions struct {
	// Currency of the costs, DefaultCurrency if empty.
	Currency string
	// Strict turns the first malformed line into an error instead of skipping it.
	Strict bool
}

// Decode reads an inventory file. filename is for error messages only.
//
// Malformed lines are skipped and returned in skipped, unless opts.Strict is
// set, in which case the first malformed line is returned as the error.
func Decode(filename string, r io.Reader, opts DecodeOptions) (inv *Inventory, skipped []*LineError, err error) {
	inv = NewInventory(opts.Currency)

	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // checked per line to report a LineError
	cr.TrimLeadingSpace = true
	cr.LazyQuotes = true

	first := true
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		var line int
		if err != nil {
			var perr *csv.ParseError
			if !errors.As(err, &perr) {
				return nil, nil, fmt.Errorf("cannot read %q: %w", filename, err)
			}
			line = perr.Line
		} else {
			line, _ = cr.FieldPos(0)
		}
		if err == nil && first && isHeader(record) {
			first = false
			continue
		}
		first = false

		if err == nil {
			err = decodeStock(inv, record)
		}
		if err != nil {
			lerr := &LineError{Filename: filename, Line: line, Text: strings.Join(record, ","), Err: err}
			if opts.Strict {
				return nil, nil, lerr
			}
			skipped = append(skipped, lerr)
		}
	}
	return inv, skipped, nil
}

func isHeader(record []string) bool {
	if len(record) != len(Header) {
		return false
	}
	for i, h := range Header {
		if !strings.EqualFold(strings.TrimSpace(record[i]), h) {
			return false
		}
	}
	return true
}

// decodeStock parses a single record and adds it to inv.
func decodeStock(inv *Inventory, record []string) error {
	if len(record) != len(Header) {
		return fmt.Errorf("expected %d fields, got %d", len(Header), len(record))
	}
	cost, err := ParseMoney(record[3], inv.currency)
	if err != nil {
		return fmt.Errorf("invalid cost: %w", err)
	}
	quantity, err := strconv.Atoi(strings.TrimSpace(record[4]))
	if err != nil {
		return fmt.Errorf("invalid quantity %q: %w", record[4], err)
	}
	return inv.Add(NewStock(record[0], record[1], record[2], cost, quantity))
}

// Encode writes the inventory in its canonical text form, header included.
func Encode(w io.Writer, inv *Inventory) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return err
	}
	for _, s := range inv.stocks {
		record := []string{s.Country, s.Code, s.Product, s.Cost.Amount(), strconv.Itoa(s.Quantity)}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("cannot encode %q: %w", s.Code, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
