package interchange

import (
	"fmt"
	"math"
	"strings"
	"unicode"

	"github.com/spf13/cast"

	"github.com/compazz/stockbridge/pkg/common"
)

// DefaultTaxRate is substituted when a parsed tax rate comes out zero or the
// column is absent (local VAT convention). This conflates "explicitly
// zero-rated" with "not supplied"; kept as-is pending product-owner review.
const DefaultTaxRate = 0.075

// buildRecord turns one data row into a canonical Record. displayRow is the
// 1-based position in the original file, header row counted, used for
// diagnostics and SKU derivation. Never returns nil and never fails: problems
// land on the record's Errors/Warnings lists.
func buildRecord(source string, rm *RowMap, row []string, displayRow int) *Record {
	rec := &Record{
		Source: source,
		Row:    displayRow,
	}

	rec.Name = strings.TrimSpace(cast.ToString(rm.Value(FieldName, row)))
	if rec.Name == "" {
		rec.Errors = append(rec.Errors, "Missing product name")
		rec.Name = fmt.Sprintf("Unnamed Product (Row %d)", displayRow)
	}

	rec.SKU = strings.TrimSpace(cast.ToString(rm.Value(FieldSKU, row)))
	if rec.SKU == "" {
		if source == SourceBusy21 {
			// BUSY exports have no SKU column at all; derive one from the
			// item description so re-imports of the same sheet line up, with
			// the row index appended to keep duplicated names unique.
			rec.SKU = deriveSKU(rec.Name, displayRow)
		} else {
			rec.SKU = fmt.Sprintf("SKU-%s", common.UUIDBase32())
		}
	}

	rec.Barcode = strings.TrimSpace(cast.ToString(rm.Value(FieldBarcode, row)))
	rec.Description = strings.TrimSpace(cast.ToString(rm.Value(FieldDescription, row)))
	rec.Category = strings.TrimSpace(cast.ToString(rm.Value(FieldCategory, row)))
	if rec.Category == "" {
		rec.Category = "Other"
	}

	rec.UnitPrice = ParseNumber(rm.Value(FieldUnitPrice, row))
	rec.CostPrice = ParseNumber(rm.Value(FieldCostPrice, row))
	rec.QuantityOnHand = nonNegativeInt(ParseNumber(rm.Value(FieldQuantityOnHand, row)))

	if source == SourceBusy21 {
		// The ledger export maps both price fields to the closing amount,
		// which is a balance, not a price. Derive average cost from
		// closingAmount / closingQty and force unit price to zero so pricing
		// gets entered manually instead of showing cost as price.
		closing := rec.UnitPrice
		if rec.QuantityOnHand > 0 {
			rec.CostPrice = math.Round(closing / float64(rec.QuantityOnHand))
		} else {
			rec.CostPrice = 0
		}
		rec.UnitPrice = 0
	}

	rec.ReorderLevel = nonNegativeInt(ParseNumber(rm.Value(FieldReorderLevel, row)))
	rec.ReorderQuantity = nonNegativeInt(ParseNumber(rm.Value(FieldReorderQuantity, row)))

	tax := ParseNumber(rm.Value(FieldTaxRate, row))
	if tax > 1 {
		// whole percentage, e.g. 7.5 -> 0.075
		tax = tax / 100
	}
	if tax == 0 {
		tax = DefaultTaxRate
	}
	rec.TaxRate = tax

	rec.IsActive = ParseBool(rm.Value(FieldIsActive, row))
	rec.VendorID = strings.TrimSpace(cast.ToString(rm.Value(FieldVendorID, row)))

	if rec.UnitPrice <= 0 && rec.CostPrice <= 0 {
		rec.Warnings = append(rec.Warnings, "No price set")
	}
	if rec.UnitPrice > 0 && rec.CostPrice > rec.UnitPrice {
		rec.Warnings = append(rec.Warnings, "Cost price exceeds selling price")
	}

	return rec
}

// deriveSKU builds a deterministic SKU from a product name: uppercased,
// non-alphanumerics collapsed to hyphens, truncated to 20 chars, row index
// appended for uniqueness across rows sharing a name.
func deriveSKU(name string, displayRow int) string {
	upper := strings.ToUpper(name)
	parts := strings.FieldsFunc(upper, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	base := strings.Join(parts, "-")
	if len(base) > 20 {
		base = base[:20]
	}
	base = strings.Trim(base, "-")
	if base == "" {
		base = "ITEM"
	}
	return fmt.Sprintf("%s-%d", base, displayRow)
}

func nonNegativeInt(f float64) int {
	n := int(math.Floor(f))
	if n < 0 {
		return 0
	}
	return n
}
