package api

import (
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
)

// decimalMatcher сравнивает decimal по значению, а не по внутреннему
// представлению.
type decimalMatcher struct {
	want decimal.Decimal
}

func newDecimalMatcher(want decimal.Decimal) gomock.Matcher {
	return decimalMatcher{want: want}
}

func (m decimalMatcher) Matches(x interface{}) bool {
	d, ok := x.(decimal.Decimal)
	return ok && d.Equal(m.want)
}

func (m decimalMatcher) String() string {
	return "is decimal " + m.want.String()
}
