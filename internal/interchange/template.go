package interchange

// Template returns a small workbook of example rows in the canonical export
// shape, for user onboarding. The rows demonstrate required fields, the tax
// percentage convention and the active flag tokens.
func Template() (*Artifact, error) {
	samples := []*Record{
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
		},
		{
			Name:            "Exercise Book 80 Leaves",
			SKU:             "EB-080",
			Category:        "Stationery",
			UnitPrice:       400,
			CostPrice:       320,
			QuantityOnHand:  120,
			ReorderLevel:    20,
			ReorderQuantity: 50,
			TaxRate:         0.075,
			IsActive:        true,
			VendorID:        "VEND-001",
		},
		{
			Name:           "Seasonal Gift Hamper",
			SKU:            "GH-001",
			Category:       "Other",
			UnitPrice:      15000,
			CostPrice:      11000,
			QuantityOnHand: 5,
			TaxRate:        0.075,
			IsActive:       false,
		},
	}

	art, err := ExportRecords(samples, ExportXLSX, "")
	if err != nil {
		return nil, err
	}
	art.Filename = "compazz-import-template.xlsx"
	return art, nil
}
