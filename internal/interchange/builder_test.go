package interchange

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func genericRowMap(headers []string) *RowMap {
	return ResolveColumns(headers, FieldMapFor(SourceGeneric))
}

func TestBuildRecordDefaults(t *testing.T) {
	rm := genericRowMap([]string{"Name", "Unit Price", "Cost Price", "Quantity"})
	rec := buildRecord(SourceGeneric, rm, []string{"Widget", "₦1,500", "1000", "25"}, 2)

	assert.Equal(t, "Widget", rec.Name)
	assert.NotEmpty(t, rec.SKU)
	assert.True(t, strings.HasPrefix(rec.SKU, "SKU-"))
	assert.Equal(t, "Other", rec.Category)
	assert.Equal(t, 1500.0, rec.UnitPrice)
	assert.Equal(t, 1000.0, rec.CostPrice)
	assert.Equal(t, 25, rec.QuantityOnHand)
	assert.Equal(t, DefaultTaxRate, rec.TaxRate)
	assert.True(t, rec.IsActive)
	assert.Empty(t, rec.Errors)
	assert.Empty(t, rec.Warnings)
}

func TestBuildRecordMissingName(t *testing.T) {
	rm := genericRowMap([]string{"Name", "Unit Price"})
	rec := buildRecord(SourceGeneric, rm, []string{"  ", "100"}, 7)

	require.Equal(t, []string{"Missing product name"}, rec.Errors)
	assert.Equal(t, "Unnamed Product (Row 7)", rec.Name)
	assert.False(t, rec.Valid())
}

func TestBuildRecordTaxNormalization(t *testing.T) {
	rm := genericRowMap([]string{"Name", "Tax Rate"})

	// whole percentage divided down
	rec := buildRecord(SourceGeneric, rm, []string{"A", "7.5"}, 2)
	assert.InDelta(t, 0.075, rec.TaxRate, 1e-9)

	// already a fraction, left alone
	rec = buildRecord(SourceGeneric, rm, []string{"A", "0.075"}, 2)
	assert.InDelta(t, 0.075, rec.TaxRate, 1e-9)

	// zero and absent both take the default; conflating "zero-rated" with
	// "not supplied" is intentional legacy behavior, flagged for review
	rec = buildRecord(SourceGeneric, rm, []string{"A", "0"}, 2)
	assert.InDelta(t, DefaultTaxRate, rec.TaxRate, 1e-9)

	rec = buildRecord(SourceGeneric, rm, []string{"A"}, 2)
	assert.InDelta(t, DefaultTaxRate, rec.TaxRate, 1e-9)

	rec = buildRecord(SourceGeneric, rm, []string{"A", "20"}, 2)
	assert.InDelta(t, 0.20, rec.TaxRate, 1e-9)
}

func TestBuildRecordPricingWarnings(t *testing.T) {
	rm := genericRowMap([]string{"Name", "Unit Price", "Cost Price"})

	rec := buildRecord(SourceGeneric, rm, []string{"A", "0", "0"}, 2)
	assert.Contains(t, rec.Warnings, "No price set")
	assert.True(t, rec.Valid(), "warnings never block")

	rec = buildRecord(SourceGeneric, rm, []string{"A", "100", "150"}, 2)
	assert.Contains(t, rec.Warnings, "Cost price exceeds selling price")

	// cost > 0 but unit price zero: only the busy21 path does that on
	// purpose, and it must not trip the margin warning
	rec = buildRecord(SourceGeneric, rm, []string{"A", "0", "80"}, 2)
	assert.NotContains(t, rec.Warnings, "Cost price exceeds selling price")
}

func TestBuildRecordBusy21Pricing(t *testing.T) {
	headers := []string{"Item Details", "Parent Group", "Cl. Qty", "Cl. Amt."}
	rm := ResolveColumns(headers, FieldMapFor(SourceBusy21))

	rec := buildRecord(SourceBusy21, rm, []string{"Indomie Chicken 70g", "Noodles", "10", "1000"}, 5)
	assert.Equal(t, 100.0, rec.CostPrice)
	assert.Equal(t, 0.0, rec.UnitPrice, "unit price forced to zero for manual entry")
	assert.Equal(t, 10, rec.QuantityOnHand)
	assert.Equal(t, "Noodles", rec.Category)

	// zero quantity: no average cost to derive
	rec = buildRecord(SourceBusy21, rm, []string{"Dead Stock Item", "Misc", "0", "500"}, 6)
	assert.Equal(t, 0.0, rec.CostPrice)
	assert.Equal(t, 0.0, rec.UnitPrice)
}

func TestBuildRecordBusy21SKUDerivation(t *testing.T) {
	headers := []string{"Item Details", "Parent Group", "Cl. Qty", "Cl. Amt."}
	rm := ResolveColumns(headers, FieldMapFor(SourceBusy21))

	rec := buildRecord(SourceBusy21, rm, []string{"Peak Milk (Tin) 170g", "Dairy", "4", "2000"}, 3)
	assert.Equal(t, "PEAK-MILK-TIN-170G-3", rec.SKU)

	// same name on another row stays unique
	rec2 := buildRecord(SourceBusy21, rm, []string{"Peak Milk (Tin) 170g", "Dairy", "4", "2000"}, 4)
	assert.NotEqual(t, rec.SKU, rec2.SKU)
}

func TestDeriveSKUTruncation(t *testing.T) {
	sku := deriveSKU("Extraordinarily Long Product Description Name", 12)
	require.True(t, strings.HasSuffix(sku, "-12"))
	base := strings.TrimSuffix(sku, "-12")
	assert.LessOrEqual(t, len(base), 20)
	assert.Equal(t, "ITEM-9", deriveSKU("???", 9))
}

func TestBuildRecordQuantitiesFloored(t *testing.T) {
	rm := genericRowMap([]string{"Name", "Quantity", "Reorder Level", "Reorder Quantity"})
	rec := buildRecord(SourceGeneric, rm, []string{"A", "12.9", "-3", "2.2"}, 2)

	assert.Equal(t, 12, rec.QuantityOnHand)
	assert.Equal(t, 0, rec.ReorderLevel)
	assert.Equal(t, 2, rec.ReorderQuantity)
}

func TestBuildRecordSyntheticSKUsUnique(t *testing.T) {
	rm := genericRowMap([]string{"Name"})
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		rec := buildRecord(SourceGeneric, rm, []string{fmt.Sprintf("Item %d", i)}, i+2)
		require.False(t, seen[rec.SKU], "duplicate synthesized SKU %s", rec.SKU)
		seen[rec.SKU] = true
	}
}
