package interchange

import (
	"fmt"
	"strings"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/pkg/errors"
	"github.com/spf13/cast"
	"github.com/xuri/excelize/v2"
)

// ExportFormat selects the output encoding.
type ExportFormat string

const (
	ExportCSV  ExportFormat = "csv"
	ExportXLSX ExportFormat = "xlsx"
)

// Artifact is the produced file, handed back to the caller for download or
// disk write. No side effect happens here.
type Artifact struct {
	Filename    string
	ContentType string
	Content     []byte
}

// exportRow is one line of the Compazz export vocabulary. The csv tags are
// the canonical Compazz headers, so a produced file re-imports losslessly
// under source "compazz". Tax rate is rendered back as a whole-number
// percentage with one decimal.
type exportRow struct {
	Name            string  `csv:"Product Name"`
	SKU             string  `csv:"SKU"`
	Barcode         string  `csv:"Barcode"`
	Description     string  `csv:"Description"`
	Category        string  `csv:"Category"`
	UnitPrice       float64 `csv:"Unit Price"`
	CostPrice       float64 `csv:"Cost Price"`
	QuantityOnHand  int     `csv:"Quantity On Hand"`
	ReorderLevel    int     `csv:"Reorder Level"`
	ReorderQuantity int     `csv:"Reorder Quantity"`
	TaxRatePercent  string  `csv:"Tax Rate %"`
	Active          string  `csv:"Active"`
	VendorID        string  `csv:"Vendor ID"`
}

var exportHeaders = []string{
	"Product Name", "SKU", "Barcode", "Description", "Category",
	"Unit Price", "Cost Price", "Quantity On Hand", "Reorder Level",
	"Reorder Quantity", "Tax Rate %", "Active", "Vendor ID",
}

func (r *exportRow) cells() []interface{} {
	return []interface{}{
		r.Name, r.SKU, r.Barcode, r.Description, r.Category,
		r.UnitPrice, r.CostPrice, r.QuantityOnHand, r.ReorderLevel,
		r.ReorderQuantity, r.TaxRatePercent, r.Active, r.VendorID,
	}
}

// ExportRecords renders canonical records into a downloadable file. outlet is
// only a filename hint.
func ExportRecords(records []*Record, format ExportFormat, outlet string) (*Artifact, error) {
	rows := make([]*exportRow, 0, len(records))
	for _, rec := range records {
		rows = append(rows, rowFromRecord(rec))
	}
	return serialize(rows, format, outlet)
}

// Export renders loosely-shaped records (canonical field names, with a small
// set of legacy aliases accepted) into a downloadable file.
func Export(items []map[string]interface{}, format ExportFormat, outlet string) (*Artifact, error) {
	rows := make([]*exportRow, 0, len(items))
	for _, item := range items {
		rows = append(rows, rowFromLoose(item))
	}
	return serialize(rows, format, outlet)
}

func rowFromRecord(rec *Record) *exportRow {
	return &exportRow{
		Name:            rec.Name,
		SKU:             rec.SKU,
		Barcode:         rec.Barcode,
		Description:     rec.Description,
		Category:        rec.Category,
		UnitPrice:       rec.UnitPrice,
		CostPrice:       rec.CostPrice,
		QuantityOnHand:  rec.QuantityOnHand,
		ReorderLevel:    rec.ReorderLevel,
		ReorderQuantity: rec.ReorderQuantity,
		TaxRatePercent:  formatTaxPercent(rec.TaxRate),
		Active:          yesNo(rec.IsActive),
		VendorID:        rec.VendorID,
	}
}

func rowFromLoose(item map[string]interface{}) *exportRow {
	active := true
	if v, ok := lookup(item, FieldIsActive, "active"); ok {
		active = ParseBool(v)
	}
	return &exportRow{
		Name:            str(item, FieldName),
		SKU:             str(item, FieldSKU),
		Barcode:         str(item, FieldBarcode),
		Description:     str(item, FieldDescription),
		Category:        str(item, FieldCategory),
		UnitPrice:       num(item, FieldUnitPrice, "price", "selling_price"),
		CostPrice:       num(item, FieldCostPrice, "cost"),
		QuantityOnHand:  nonNegativeInt(num(item, FieldQuantityOnHand, "stock_quantity")),
		ReorderLevel:    nonNegativeInt(num(item, FieldReorderLevel)),
		ReorderQuantity: nonNegativeInt(num(item, FieldReorderQuantity)),
		TaxRatePercent:  formatTaxPercent(num(item, FieldTaxRate)),
		Active:          yesNo(active),
		VendorID:        str(item, FieldVendorID),
	}
}

func lookup(item map[string]interface{}, keys ...string) (interface{}, bool) {
	for _, k := range keys {
		if v, ok := item[k]; ok {
			return v, true
		}
	}
	return nil, false
}

func str(item map[string]interface{}, keys ...string) string {
	v, _ := lookup(item, keys...)
	return strings.TrimSpace(cast.ToString(v))
}

func num(item map[string]interface{}, keys ...string) float64 {
	v, _ := lookup(item, keys...)
	return ParseNumber(v)
}

func formatTaxPercent(rate float64) string {
	return fmt.Sprintf("%.1f", rate*100)
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

func serialize(rows []*exportRow, format ExportFormat, outlet string) (*Artifact, error) {
	switch format {
	case ExportXLSX:
		return serializeWorkbook(rows, outlet)
	case ExportCSV, "":
		return serializeCSV(rows, outlet)
	default:
		return nil, errors.Errorf("unsupported export format %q", format)
	}
}

func serializeCSV(rows []*exportRow, outlet string) (*Artifact, error) {
	content, err := gocsv.MarshalBytes(&rows)
	if err != nil {
		return nil, errors.Wrap(err, "marshal csv")
	}
	return &Artifact{
		Filename:    exportFilename(outlet, "csv"),
		ContentType: "text/csv",
		Content:     content,
	}, nil
}

func serializeWorkbook(rows []*exportRow, outlet string) (*Artifact, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()
	sheet := f.GetSheetName(0)

	widths := make([]int, len(exportHeaders))
	for col, h := range exportHeaders {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, errors.Wrap(err, "write header")
		}
		widths[col] = len(h)
	}

	for i, row := range rows {
		for col, v := range row.cells() {
			cell, _ := excelize.CoordinatesToCellName(col+1, i+2)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, errors.Wrapf(err, "write row %d", i+2)
			}
			if l := len(cast.ToString(v)); l > widths[col] {
				widths[col] = l
			}
		}
	}

	// cosmetic only: size each column to its longest value
	for col, w := range widths {
		name, _ := excelize.ColumnNumberToName(col + 1)
		_ = f.SetColWidth(sheet, name, name, float64(w)+2)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, errors.Wrap(err, "write workbook")
	}
	return &Artifact{
		Filename:    exportFilename(outlet, "xlsx"),
		ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		Content:     buf.Bytes(),
	}, nil
}

func exportFilename(outlet, ext string) string {
	slug := strings.ToLower(strings.TrimSpace(outlet))
	slug = strings.Join(strings.Fields(slug), "-")
	if slug == "" {
		slug = "compazz"
	}
	return fmt.Sprintf("%s-inventory-%s.%s", slug, time.Now().Format("2006-01-02"), ext)
}
