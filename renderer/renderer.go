// Package renderer turns inventory reports into markdown documents.
package renderer

import (
	"embed"
	"fmt"
	"path"
	"strings"
	"text/template"

	"github.com/etnz/inventory"
)

//go:embed templates/*.md
var templates embed.FS

// NoStock is displayed instead of a report when the inventory is empty.
const NoStock = "No shoes in inventory"

var funcs = template.FuncMap{
	// cell escapes a value to be printed in a markdown table cell.
	"cell": func(s string) string { return strings.ReplaceAll(s, "|", `\|`) },
}

// Stocks renders the full inventory as a table.
func Stocks(inv *inventory.Inventory) string {
	data := struct {
		Stocks []*inventory.Stock
		Count  int
		Units  int
	}{Stocks: inv.List(), Count: inv.Len()}
	for _, s := range inv.Stocks() {
		data.Units += s.Quantity
	}
	return renderTemplate("stocks", "stocks.md", nil, data)
}

// Stock renders a single stock card under a title.
func Stock(title string, s *inventory.Stock) string {
	return renderStock(title, s, "")
}

// Restock renders the stock that needs to be restocked the most.
func Restock(s *inventory.Stock) string {
	return renderStock("Shoe Needing Restock", s, "")
}

// ForSale renders the stock with the highest quantity, to be marked for sale.
func ForSale(s *inventory.Stock) string {
	return renderStock("Shoe For Sale", s, "This shoe should be marked for sale!")
}

func renderStock(title string, s *inventory.Stock, note string) string {
	data := struct {
		Title string
		Stock *inventory.Stock
		Note  string
	}{title, s, note}
	partials := map[string]string{
		"stock_card": "stock_card.md",
	}
	return renderTemplate("stock", "stock.md", partials, data)
}

// Values renders the value of each stock.
func Values(r *inventory.ValueReport) string {
	return renderTemplate("values", "values.md", nil, r)
}

// Countries renders the stock aggregated by country.
func Countries(r *inventory.CountryReport) string {
	return renderTemplate("countries", "countries.md", nil, r)
}

// Total renders the total value of the warehouse.
func Total(total inventory.Money) string {
	return renderTotal("Total Warehouse Value", total)
}

// CountryTotal renders the total value of the stocks of one country.
func CountryTotal(country string, total inventory.Money) string {
	return renderTotal(fmt.Sprintf("Total Value for %s", country), total)
}

func renderTotal(title string, value inventory.Money) string {
	data := struct {
		Title string
		Value inventory.Money
	}{title, value}
	return renderTemplate("total", "total.md", nil, data)
}

// renderTemplate is a generic utility to render a main template that depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := templates.ReadFile(path.Join("templates", mainFile))
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Funcs(funcs).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		content, err := templates.ReadFile(path.Join("templates", file))
		if err != nil {
			return fmt.Sprintf("error reading partial template %q: %v", file, err)
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}
