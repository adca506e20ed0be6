package cmd

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/etnz/inventory"
	"github.com/etnz/inventory/renderer"
	"github.com/google/subcommands"
	"github.com/rs/zerolog/log"
)

type menuCmd struct{}

func (*menuCmd) Name() string     { return "menu" }
func (*menuCmd) Synopsis() string { return "interactive menu to manage the inventory (default)" }
func (*menuCmd) Usage() string {
	return `inv menu

  Runs the interactive menu. This is what inv does when no command is given.
  See 'inv topic menu' for details.
`
}

func (c *menuCmd) SetFlags(f *flag.FlagSet) {}

func (c *menuCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, status := openStore()
	if store == nil {
		return status
	}
	if err := newMenu(store, os.Stdin, stdout).Run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

const menuText = `
===== Warehouse Stock Management =====
1. Add new shoe
2. View all shoes
3. Restock shoes
4. Search shoe
5. Product values
6. Highest quantity (mark for sale)
7. Stock by country
8. Total warehouse value
9. Exit
`

const quitChoice = "9"

// menu is the interactive loop: it reads a choice, runs the matching action and starts over.
type menu struct {
	store   *inventory.Store
	in      *bufio.Scanner
	out     io.Writer
	actions map[string]func() error
}

func newMenu(store *inventory.Store, in io.Reader, out io.Writer) *menu {
	m := &menu{store: store, in: bufio.NewScanner(in), out: out}
	m.actions = map[string]func() error{
		"1": m.add,
		"2": m.viewAll,
		"3": m.restock,
		"4": m.search,
		"5": m.values,
		"6": m.forSale,
		"7": m.byCountry,
		"8": m.total,
	}
	return m
}

// Run loops until the user quits or the input is closed.
func (m *menu) Run(ctx context.Context) error {
	if m.store.Created() {
		fmt.Fprintln(m.out, "\nStarting with empty inventory")
	} else {
		fmt.Fprintf(m.out, "\nLoaded %d shoes from inventory\n", m.store.Len())
	}

	for ctx.Err() == nil {
		fmt.Fprint(m.out, menuText)
		choice, err := m.prompt("\nEnter choice (1-9): ")
		if err != nil {
			return m.quit(err)
		}
		if choice == quitChoice {
			return m.quit(nil)
		}
		action, ok := m.actions[choice]
		if !ok {
			fmt.Fprintln(m.out, "Invalid choice, please try again")
			continue
		}
		log.Debug().Str("choice", choice).Msg("menu action")
		if err := action(); err != nil {
			if errors.Is(err, io.EOF) {
				return m.quit(err)
			}
			fmt.Fprintf(m.out, "Error: %v\n", err)
		}
	}
	return ctx.Err()
}

// quit says goodbye. The end of the input is a normal way to leave.
func (m *menu) quit(err error) error {
	if err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	fmt.Fprintln(m.out, "\nThank you for using Warehouse Stock Management!")
	return nil
}

// prompt prints label and reads one trimmed line. It returns io.EOF once the input is exhausted.
func (m *menu) prompt(label string) (string, error) {
	fmt.Fprint(m.out, label)
	if !m.in.Scan() {
		if err := m.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(m.in.Text()), nil
}

// promptUntil prompts label until parse accepts the answer, printing the parse error otherwise.
func promptUntil[T any](m *menu, label string, parse func(string) (T, error)) (T, error) {
	for {
		answer, err := m.prompt(label)
		if err != nil {
			var zero T
			return zero, err
		}
		v, err := parse(answer)
		if err == nil {
			return v, nil
		}
		fmt.Fprintln(m.out, err)
	}
}

func required(what string) func(string) (string, error) {
	return func(s string) (string, error) {
		if s == "" {
			return "", fmt.Errorf("%s cannot be empty", what)
		}
		return s, nil
	}
}

func (m *menu) parseCost(s string) (inventory.Money, error) {
	cost, err := inventory.ParseMoney(s, m.store.Currency())
	if err != nil {
		return cost, errors.New("Please enter a valid number")
	}
	if !cost.IsPositive() {
		return cost, errors.New("Cost must be positive")
	}
	return cost, nil
}

func parseQuantity(s string) (int, error) {
	q, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.New("Please enter a whole number")
	}
	if q < 0 {
		return 0, errors.New("Quantity can't be negative")
	}
	return q, nil
}

func (m *menu) add() error {
	fmt.Fprintln(m.out, "\n=== Add New Shoe ===")

	country, err := promptUntil(m, "Country: ", required("Country"))
	if err != nil {
		return err
	}
	code, err := promptUntil(m, "Code: ", func(s string) (string, error) {
		if s == "" {
			return "", errors.New("Code cannot be empty")
		}
		if strings.ContainsRune(s, ',') {
			return "", errors.New("Code cannot contain a comma")
		}
		if _, exists := m.store.Find(s); exists {
			return "", fmt.Errorf("Code %s already exists", inventory.NormalizeCode(s))
		}
		return s, nil
	})
	if err != nil {
		return err
	}
	product, err := m.prompt("Product: ")
	if err != nil {
		return err
	}
	cost, err := promptUntil(m, fmt.Sprintf("Cost (%s): ", inventory.Symbol(m.store.Currency())), m.parseCost)
	if err != nil {
		return err
	}
	quantity, err := promptUntil(m, "Quantity: ", parseQuantity)
	if err != nil {
		return err
	}

	if err := m.store.Add(inventory.NewStock(country, code, product, cost, quantity)); err != nil {
		return err
	}
	log.Debug().Str("code", inventory.NormalizeCode(code)).Msg("stock added")
	fmt.Fprintln(m.out, "Shoe added successfully!")
	return nil
}

// report prints md unless the inventory is empty.
func (m *menu) report(md func() string) error {
	if m.store.Len() == 0 {
		fmt.Fprintln(m.out, renderer.NoStock)
		return nil
	}
	printMarkdown(m.out, md())
	return nil
}

func (m *menu) viewAll() error {
	return m.report(func() string { return renderer.Stocks(m.store.Inventory) })
}

func (m *menu) restock() error {
	lowest := m.store.Lowest()
	if lowest == nil {
		fmt.Fprintln(m.out, renderer.NoStock)
		return nil
	}
	printMarkdown(m.out, renderer.Restock(lowest))

	answer, err := m.prompt("Restock? (yes/no): ")
	if err != nil {
		return err
	}
	if a := strings.ToLower(answer); a != "yes" && a != "y" {
		return nil
	}
	answer, err = m.prompt("Quantity to add: ")
	if err != nil {
		return err
	}
	n, err := strconv.Atoi(answer)
	if err != nil {
		fmt.Fprintln(m.out, "Invalid quantity")
		return nil
	}
	if n <= 0 {
		fmt.Fprintln(m.out, "Quantity must be positive")
		return nil
	}
	if _, err := m.store.Restock(lowest.Code, n); err != nil {
		return err
	}
	fmt.Fprintln(m.out, "Restock successful!")
	return nil
}

func (m *menu) search() error {
	if m.store.Len() == 0 {
		fmt.Fprintln(m.out, renderer.NoStock)
		return nil
	}
	code, err := m.prompt("Enter shoe code: ")
	if err != nil {
		return err
	}
	s, ok := m.store.Find(code)
	if !ok {
		fmt.Fprintln(m.out, "Shoe not found")
		return nil
	}
	printMarkdown(m.out, renderer.Stock("Shoe Found", s))
	return nil
}

func (m *menu) values() error {
	return m.report(func() string { return renderer.Values(m.store.ValueReport()) })
}

func (m *menu) forSale() error {
	return m.report(func() string { return renderer.ForSale(m.store.Highest()) })
}

func (m *menu) byCountry() error {
	return m.report(func() string { return renderer.Countries(m.store.CountryReport()) })
}

func (m *menu) total() error {
	return m.report(func() string { return renderer.Total(m.store.TotalValue()) })
}
