package interchange

// Source identifiers for the supported export formats.
const (
	SourceQuickBooks = "quickbooks"
	SourceSquare     = "square"
	SourceShopify    = "shopify"
	SourceGeneric    = "generic"
	SourceCompazz    = "compazz"
	SourceBusy21     = "busy21"
	SourceAuto       = "auto"
)

// Canonical field names. Order matters only for stable iteration.
const (
	FieldName            = "name"
	FieldSKU             = "sku"
	FieldBarcode         = "barcode"
	FieldDescription     = "description"
	FieldCategory        = "category"
	FieldUnitPrice       = "unit_price"
	FieldCostPrice       = "cost_price"
	FieldQuantityOnHand  = "quantity_on_hand"
	FieldReorderLevel    = "reorder_level"
	FieldReorderQuantity = "reorder_quantity"
	FieldTaxRate         = "tax_rate"
	FieldIsActive        = "is_active"
	FieldVendorID        = "vendor_id"
)

// CanonicalFields lists every field the pipeline knows how to populate, in the
// order columns are resolved and records are rendered.
var CanonicalFields = []string{
	FieldName,
	FieldSKU,
	FieldBarcode,
	FieldDescription,
	FieldCategory,
	FieldUnitPrice,
	FieldCostPrice,
	FieldQuantityOnHand,
	FieldReorderLevel,
	FieldReorderQuantity,
	FieldTaxRate,
	FieldIsActive,
	FieldVendorID,
}

// FieldMap maps a canonical field to an ordered list of acceptable header
// names for one source. Order encodes priority: the first header present in
// the file wins. Candidates are written in display form; matching happens on
// normalized strings.
type FieldMap map[string][]string

// fieldMaps is the registry of known source vocabularies. Adding a new POS
// integration is a data-only change here plus a detection rule in detect.go.
var fieldMaps = map[string]FieldMap{
	SourceCompazz: {
		FieldName:            {"Product Name"},
		FieldSKU:             {"SKU"},
		FieldBarcode:         {"Barcode"},
		FieldDescription:     {"Description"},
		FieldCategory:        {"Category"},
		FieldUnitPrice:       {"Unit Price"},
		FieldCostPrice:       {"Cost Price"},
		FieldQuantityOnHand:  {"Quantity On Hand"},
		FieldReorderLevel:    {"Reorder Level"},
		FieldReorderQuantity: {"Reorder Quantity"},
		FieldTaxRate:         {"Tax Rate %"},
		FieldIsActive:        {"Active"},
		FieldVendorID:        {"Vendor ID"},
	},
	SourceQuickBooks: {
		FieldName:            {"Product/Service Name", "Item Name", "Item", "Name"},
		FieldSKU:             {"SKU", "Item Code"},
		FieldDescription:     {"Sales Description", "Purchase Description", "Description"},
		FieldCategory:        {"Item Type", "Type", "Category"},
		FieldUnitPrice:       {"Sales Price/Rate", "Sales Price", "Rate", "Price"},
		FieldCostPrice:       {"Purchase Cost", "Cost"},
		FieldQuantityOnHand:  {"Quantity On Hand", "Qty On Hand", "Quantity"},
		FieldReorderLevel:    {"Reorder Point"},
		FieldTaxRate:         {"Sales Tax Rate", "Tax Rate", "Tax Code"},
		FieldIsActive:        {"Active Status", "Active"},
		FieldVendorID:        {"Preferred Vendor", "Vendor"},
	},
	SourceSquare: {
		FieldName:            {"Item Name", "Name"},
		FieldSKU:             {"SKU"},
		FieldBarcode:         {"GTIN"},
		FieldDescription:     {"Description"},
		FieldCategory:        {"Reporting Category", "Category"},
		FieldUnitPrice:       {"Price"},
		FieldCostPrice:       {"Default Unit Cost", "Default Vendor Cost"},
		FieldQuantityOnHand:  {"Current Quantity", "Quantity"},
		FieldReorderLevel:    {"Stock Alert Count"},
		FieldTaxRate:         {"Sales Tax", "Tax"},
		FieldIsActive:        {"Enabled", "Visibility"},
		FieldVendorID:        {"Default Vendor Name", "Default Vendor"},
	},
	SourceShopify: {
		FieldName:            {"Title"},
		FieldSKU:             {"Variant SKU", "SKU"},
		FieldBarcode:         {"Variant Barcode", "Barcode"},
		FieldDescription:     {"Body (HTML)", "Body HTML"},
		FieldCategory:        {"Product Category", "Type", "Product Type"},
		FieldUnitPrice:       {"Variant Price", "Price"},
		FieldCostPrice:       {"Cost per item"},
		FieldQuantityOnHand:  {"Variant Inventory Qty", "Inventory Qty"},
		FieldIsActive:        {"Status", "Published"},
		FieldVendorID:        {"Vendor"},
	},
	SourceBusy21: {
		// BUSY ledger exports carry no SKU column; only an item-description
		// column plus opening/closing quantities and amounts. Both price
		// fields intentionally point at the closing amount; the builder
		// derives an average cost from it (see buildRecord).
		FieldName:            {"Item Details"},
		FieldCategory:        {"Parent Group"},
		FieldQuantityOnHand:  {"Cl. Qty", "Cl Qty", "Closing Qty"},
		FieldUnitPrice:       {"Cl. Amt.", "Cl Amt", "Closing Amount"},
		FieldCostPrice:       {"Cl. Amt.", "Cl Amt", "Closing Amount"},
	},
	SourceGeneric: {
		FieldName:            {"Name", "Product Name", "Item Name", "Product", "Item", "Title"},
		FieldSKU:             {"SKU", "Item Code", "Product Code", "Code", "Item ID"},
		FieldBarcode:         {"Barcode", "UPC", "EAN", "GTIN"},
		FieldDescription:     {"Description", "Desc", "Details"},
		FieldCategory:        {"Category", "Group", "Department", "Type"},
		FieldUnitPrice:       {"Unit Price", "Selling Price", "Sale Price", "Retail Price", "Price", "MRP"},
		FieldCostPrice:       {"Cost Price", "Purchase Price", "Buy Price", "Cost"},
		FieldQuantityOnHand:  {"Quantity On Hand", "Stock Quantity", "Quantity", "Qty", "Stock", "In Stock", "On Hand"},
		FieldReorderLevel:    {"Reorder Level", "Reorder Point", "Min Stock", "Minimum Stock"},
		FieldReorderQuantity: {"Reorder Quantity", "Reorder Qty", "Order Quantity"},
		FieldTaxRate:         {"Tax Rate", "Tax %", "Tax", "VAT %", "VAT", "GST %", "GST"},
		FieldIsActive:        {"Active", "Is Active", "Enabled", "Status"},
		FieldVendorID:        {"Vendor ID", "Supplier ID", "Vendor", "Supplier"},
	},
}

// FieldMapFor returns the field map for a source identifier. Unknown sources
// fall back to the generic map, which is deliberately lossy but safe.
func FieldMapFor(source string) FieldMap {
	if fm, ok := fieldMaps[source]; ok {
		return fm
	}
	return fieldMaps[SourceGeneric]
}
