package domain

import "time"

// Product is a committed catalog item, the persistence shape of an accepted
// interchange record.
type Product struct {
	ID              int64     `gorm:"primaryKey" json:"id"`
	Name            string    `gorm:"index" json:"name"`
	SKU             string    `gorm:"uniqueIndex;size:64" json:"sku"`
	Barcode         string    `gorm:"size:64" json:"barcode"`
	Description     string    `gorm:"size:2048" json:"description"`
	Category        string    `gorm:"size:128;index" json:"category"`
	UnitPrice       float64   `json:"unit_price"`
	CostPrice       float64   `json:"cost_price"`
	QuantityOnHand  int       `json:"quantity_on_hand"`
	ReorderLevel    int       `json:"reorder_level"`
	ReorderQuantity int       `json:"reorder_quantity"`
	TaxRate         float64   `json:"tax_rate"` // fraction, not percent
	IsActive        bool      `gorm:"default:true" json:"is_active"`
	VendorID        string    `gorm:"size:64" json:"vendor_id"`
	Source          string    `gorm:"size:32" json:"source"` // export format that produced it
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
