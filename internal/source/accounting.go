package source

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrInvalidAmount is returned for a currency string that is not a number
// once its formatting characters are removed.
var ErrInvalidAmount = errors.New("invalid amount")

var accountingStripper = strings.NewReplacer("(", "", ")", "", "$", "", ",", "")

// ParseAccounting parses a currency string in accounting notation.
// "(", ")", "$" and "," are removed; a value written with a parenthesis is negated.
//
//	"$1,234.50" -> 1234.50
//	"($500.00)" -> -500.00
func ParseAccounting(s string) (decimal.Decimal, error) {
	raw := strings.TrimSpace(s)
	stripped := strings.TrimSpace(accountingStripper.Replace(raw))
	if stripped == "" {
		return decimal.Zero, fmt.Errorf("%w %q", ErrInvalidAmount, s)
	}

	d, err := decimal.NewFromString(stripped)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w %q", ErrInvalidAmount, s)
	}

	if strings.Contains(raw, "(") {
		d = d.Neg()
	}
	return d, nil
}

// ParseAccountingNumber is ParseAccounting returning a float64.
func ParseAccountingNumber(s string) (float64, error) {
	d, err := ParseAccounting(s)
	if err != nil {
		return 0, err
	}
	return d.InexactFloat64(), nil
}
