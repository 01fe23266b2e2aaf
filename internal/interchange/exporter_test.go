package interchange

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRecords() []*Record {
	return []*Record{
		{
			Name:            "Bottled Water 75cl",
			SKU:             "BW-075",
			Barcode:         "6151100000011",
			Description:     "Single bottle, chilled",
			Category:        "Drinks",
			UnitPrice:       250,
			CostPrice:       180,
			QuantityOnHand:  48,
			ReorderLevel:    12,
			ReorderQuantity: 24,
			TaxRate:         0.075,
			IsActive:        true,
			VendorID:        "VEND-001",
		},
		{
			Name:           "Discontinued Snack",
			SKU:            "DS-002",
			Category:       "Snacks",
			UnitPrice:      500,
			CostPrice:      420,
			QuantityOnHand: 3,
			TaxRate:        0.05,
			IsActive:       false,
		},
	}
}

func assertRoundTrip(t *testing.T, want, got *Record) {
	t.Helper()
	assert.Equal(t, want.Name, got.Name)
	assert.Equal(t, want.SKU, got.SKU)
	assert.Equal(t, want.Barcode, got.Barcode)
	assert.Equal(t, want.Description, got.Description)
	assert.Equal(t, want.Category, got.Category)
	assert.Equal(t, want.UnitPrice, got.UnitPrice)
	assert.Equal(t, want.CostPrice, got.CostPrice)
	assert.Equal(t, want.QuantityOnHand, got.QuantityOnHand)
	assert.Equal(t, want.ReorderLevel, got.ReorderLevel)
	assert.Equal(t, want.ReorderQuantity, got.ReorderQuantity)
	assert.InDelta(t, want.TaxRate, got.TaxRate, 1e-9)
	assert.Equal(t, want.IsActive, got.IsActive)
	assert.Equal(t, want.VendorID, got.VendorID)
}

func TestExportImportRoundTripCSV(t *testing.T) {
	records := sampleRecords()

	art, err := ExportRecords(records, ExportCSV, "Lekki Outlet")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(art.Filename, "lekki-outlet-inventory-"))
	assert.True(t, strings.HasSuffix(art.Filename, ".csv"))

	res, err := ImportProducts(art.Content, SourceCompazz)
	require.NoError(t, err)
	require.Equal(t, len(records), res.TotalRows)
	assert.Equal(t, 0, res.ErrorCount)

	for i, want := range records {
		assertRoundTrip(t, want, res.Records[i])
	}
}

func TestExportImportRoundTripWorkbook(t *testing.T) {
	records := sampleRecords()

	art, err := ExportRecords(records, ExportXLSX, "")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(art.Filename, ".xlsx"))

	res, err := ImportProducts(art.Content, SourceAuto)
	require.NoError(t, err)
	assert.Equal(t, SourceCompazz, res.Source, "own exports must self-detect")
	require.Equal(t, len(records), res.TotalRows)

	for i, want := range records {
		assertRoundTrip(t, want, res.Records[i])
	}
}

func TestExportTaxPercentRendering(t *testing.T) {
	art, err := ExportRecords([]*Record{{Name: "A", SKU: "A-1", TaxRate: 0.075, IsActive: true, UnitPrice: 10}}, ExportCSV, "")
	require.NoError(t, err)

	content := string(art.Content)
	assert.Contains(t, content, "Tax Rate %")
	assert.Contains(t, content, "7.5")
	assert.NotContains(t, content, "0.075")
}

func TestExportLooseShapeAliases(t *testing.T) {
	items := []map[string]interface{}{
		{
			"name":           "Legacy Item",
			"sku":            "LG-1",
			"unit_price":     1200,
			"cost":           900,
			"stock_quantity": 30, // legacy alias for quantity_on_hand
			"tax_rate":       0.075,
			"is_active":      "no",
		},
	}

	art, err := Export(items, ExportCSV, "")
	require.NoError(t, err)

	res, err := ImportProducts(art.Content, SourceCompazz)
	require.NoError(t, err)
	require.Equal(t, 1, res.TotalRows)

	rec := res.Records[0]
	assert.Equal(t, "Legacy Item", rec.Name)
	assert.Equal(t, 30, rec.QuantityOnHand)
	assert.Equal(t, 900.0, rec.CostPrice)
	assert.False(t, rec.IsActive)
}

func TestExportUnsupportedFormat(t *testing.T) {
	_, err := ExportRecords(nil, "pdf", "")
	assert.Error(t, err)
}

func TestTemplate(t *testing.T) {
	art, err := Template()
	require.NoError(t, err)
	assert.Equal(t, "compazz-import-template.xlsx", art.Filename)
	require.NotEmpty(t, art.Content)

	res, err := ImportProducts(art.Content, SourceAuto)
	require.NoError(t, err)
	assert.Equal(t, SourceCompazz, res.Source)
	assert.Equal(t, 3, res.TotalRows)
	assert.Equal(t, 0, res.ErrorCount)
}
