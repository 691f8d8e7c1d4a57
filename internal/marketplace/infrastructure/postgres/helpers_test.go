package postgres

import (
	"github.com/shopspring/decimal"
)

// decimalArg matches numeric query arguments by value so that 10 and 10.000000 compare equal.
type decimalArg struct {
	expected decimal.Decimal
}

func decimalEq(value string) decimalArg {
	return decimalArg{expected: decimal.RequireFromString(value)}
}

func (a decimalArg) Match(v interface{}) bool {
	actual, ok := v.(decimal.Decimal)
	return ok && actual.Equal(a.expected)
}
