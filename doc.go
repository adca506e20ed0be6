// Package inventory manages the stock of a shoe warehouse.
//
// A stock line records where a shoe comes from, its code, its product name,
// its unit cost and the quantity on hand. The whole inventory lives in a
// single comma separated text file that can be edited by hand:
//
//	country,code,product,cost,quantity
//	Vietnam,SKU44752,Air Max 90,2300.00,20
//
// Costs are amounts of a single currency, the South African Rand (ZAR) by
// default. The package provides:
//   - Stock and Inventory: the records and the rules they obey (unique
//     upper-case codes, positive costs, non-negative quantities).
//   - Store: an inventory bound to its file, rewritten atomically after
//     every change.
//   - Reports: value per product, stock per country, total value, and the
//     stocks with the lowest and highest quantities.
//   - Import and export in JSONL and YAML, and JSONPath queries.
//
// The inv command in the inv directory is the user interface on top of it.
package inventory
