package interchange

// Record is the canonical product interchange unit. One Record is produced
// per data row regardless of validity: a row with errors is still returned so
// the caller can surface it, it just doesn't count as valid.
type Record struct {
	Name            string  `json:"name"`
	SKU             string  `json:"sku"`
	Barcode         string  `json:"barcode,omitempty"`
	Description     string  `json:"description,omitempty"`
	Category        string  `json:"category"`
	UnitPrice       float64 `json:"unit_price"`
	CostPrice       float64 `json:"cost_price"`
	QuantityOnHand  int     `json:"quantity_on_hand"`
	ReorderLevel    int     `json:"reorder_level"`
	ReorderQuantity int     `json:"reorder_quantity"`
	TaxRate         float64 `json:"tax_rate"`
	IsActive        bool    `json:"is_active"`
	VendorID        string  `json:"vendor_id,omitempty"`

	// provenance
	Source   string   `json:"source"`
	Row      int      `json:"row"`
	Errors   []string `json:"errors,omitempty"`
	Warnings []string `json:"warnings,omitempty"`
}

// Valid reports whether the record can be committed as-is.
func (r *Record) Valid() bool {
	return len(r.Errors) == 0
}

// ImportResult aggregates one import invocation. Records are in file order;
// ValidCount = TotalRows - ErrorCount by construction.
type ImportResult struct {
	Records         []*Record `json:"records"`
	Source          string    `json:"source"`
	TotalRows       int       `json:"totalRows"`
	ValidCount      int       `json:"validCount"`
	ErrorCount      int       `json:"errorCount"`
	WarningCount    int       `json:"warningCount"`
	Headers         []string  `json:"headers"`
	UnmappedColumns []string  `json:"unmappedColumns"`
}
