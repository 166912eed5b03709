package agreement

// Currency is the closed set of currencies a service fee can be quoted in.
type Currency string

const (
	CurrencyBHD Currency = "BHD"
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
	CurrencyGBP Currency = "GBP"
)

// Currencies returns the options in form display order.
func Currencies() []Currency {
	return []Currency{CurrencyBHD, CurrencyUSD, CurrencyEUR, CurrencyGBP}
}

// IsValid returns true if the currency is one of the defined constants.
func (c Currency) IsValid() bool {
	switch c {
	case CurrencyBHD, CurrencyUSD, CurrencyEUR, CurrencyGBP:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (c Currency) String() string {
	return string(c)
}
