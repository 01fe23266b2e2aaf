package interchange

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeHeader(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Product Name", "productname"},
		{"  Cl. Qty  ", "clqty"},
		{"Tax Rate %", "taxrate%"},
		{"Body (HTML)", "bodyhtml"},
		{"UNIT_PRICE", "unitprice"},
		{"", ""},
		{"---", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, NormalizeHeader(tc.in), "input %q", tc.in)
	}
}

func TestParseNumber(t *testing.T) {
	assert.Equal(t, 1200.50, ParseNumber("₦1,200.50"))
	assert.Equal(t, 0.0, ParseNumber(""))
	assert.Equal(t, 0.0, ParseNumber("abc"))
	assert.Equal(t, 0.0, ParseNumber(nil))
	assert.Equal(t, 3000.0, ParseNumber("  $3,000 "))
	assert.Equal(t, 99.99, ParseNumber("€99.99"))
	assert.Equal(t, 45.0, ParseNumber("£ 45"))
	assert.Equal(t, 1200.0, ParseNumber("1 200"))
	assert.Equal(t, 42.0, ParseNumber(42))
	assert.Equal(t, 7.5, ParseNumber(7.5))
	assert.Equal(t, -12.0, ParseNumber("-12"))
}

func TestParseBool(t *testing.T) {
	for _, falsy := range []string{"false", "No", " INACTIVE ", "0", "disabled", "n", "off", "hidden"} {
		assert.False(t, ParseBool(falsy), "token %q", falsy)
	}
	for _, truthy := range []interface{}{nil, "", "yes", "true", "active", "1", "anything"} {
		assert.True(t, ParseBool(truthy), "token %v", truthy)
	}
}
