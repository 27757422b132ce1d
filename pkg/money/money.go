package money

import (
  "strconv"
  "strings"

  "github.com/leekchan/accounting"
)

var acc = accounting.Accounting{
  Symbol:    "$",
  Precision: 2,
  Thousand:  ",",
  Decimal:   ".",
}

// Display formats bare numeric prices coming from the catalog API.
// Prices that already carry a currency or any other text are shown verbatim.
func Display(value string) string {
  value = strings.TrimSpace(value)

  if number, err := strconv.ParseFloat(value, 64); err == nil {
    return acc.FormatMoney(number)
  }
  return value
}
