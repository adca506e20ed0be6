package inventory

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Store is an inventory bound to the text file it was loaded from.
// Every mutation goes through the store and is persisted immediately.
type Store struct {
	path    string
	created bool
	skipped []*LineError
	*Inventory
}

// OpenStore loads the inventory file at path.
//
// A missing file is created with just the header, and the store starts
// empty. Malformed lines are skipped (see Skipped) unless opts.Strict is set.
func OpenStore(path string, opts DecodeOptions) (*Store, error) {
	s := &Store{path: path}
	content, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		s.Inventory = NewInventory(opts.Currency)
		s.created = true
		if err := s.Save(); err != nil {
			return nil, err
		}
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not open inventory file %q: %w", path, err)
	}

	s.Inventory, s.skipped, err = Decode(path, bytes.NewReader(content), opts)
	if err != nil {
		return nil, fmt.Errorf("could not decode inventory file %q: %w", path, err)
	}
	return s, nil
}

// Path returns the inventory file path.
func (s *Store) Path() string { return s.path }

// Created reports whether the file did not exist and was created on open.
func (s *Store) Created() bool { return s.created }

// Skipped returns the malformed lines ignored when the file was loaded.
func (s *Store) Skipped() []*LineError { return s.skipped }

// Save rewrites the whole inventory file.
//
// The content is written to a temporary file in the same directory, then
// renamed over the inventory file.
func (s *Store) Save() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("could not create directory for inventory %q: %w", s.path, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(s.path)+".*")
	if err != nil {
		return fmt.Errorf("error opening inventory file %q for writing: %w", s.path, err)
	}
	defer os.Remove(tmp.Name()) // no-op once renamed

	if err := Encode(tmp, s.Inventory); err != nil {
		tmp.Close()
		return fmt.Errorf("error writing inventory file %q: %w", s.path, err)
	}
	if err := tmp.Chmod(0644); err != nil {
		tmp.Close()
		return fmt.Errorf("error writing inventory file %q: %w", s.path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("error writing inventory file %q: %w", s.path, err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("error replacing inventory file %q: %w", s.path, err)
	}
	return nil
}

// Add adds a new stock and persists the inventory.
func (s *Store) Add(stock *Stock) error {
	if err := s.Inventory.Add(stock); err != nil {
		return err
	}
	if err := s.Save(); err != nil {
		// keep memory and file consistent
		s.stocks = s.stocks[:len(s.stocks)-1]
		return err
	}
	return nil
}

// Restock adds quantity units to the stock identified by code and persists the inventory.
func (s *Store) Restock(code string, quantity int) (*Stock, error) {
	stock, err := s.Inventory.Restock(code, quantity)
	if err != nil {
		return nil, err
	}
	if err := s.Save(); err != nil {
		stock.Quantity -= quantity
		return nil, err
	}
	return stock, nil
}
