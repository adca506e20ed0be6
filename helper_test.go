package inventory

// ZAR is a helper for test to create rand money from const
func ZAR(v float64) Money { return M(v, "ZAR") }

// USD is a helper for test to create usd money from const
func USD(v float64) Money { return M(v, "USD") }

// sample returns a small inventory used across tests.
func sample() *Inventory {
	inv := NewInventory(DefaultCurrency)
	inv.stocks = []*Stock{
		NewStock("ZA", "C1", "Air Max", ZAR(100), 5),
		NewStock("ZA", "C2", "Pegasus", ZAR(50), 2),
		NewStock("Vietnam", "V1", "Air Force 1", ZAR(80.5), 10),
		NewStock("China", "CN1", "Dunk Low", ZAR(120), 1),
	}
	return inv
}
