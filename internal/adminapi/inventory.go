package adminapi

import (
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/compazz/stockbridge/internal/domain"
	"github.com/compazz/stockbridge/internal/interchange"
	"github.com/compazz/stockbridge/internal/webserver"
	"github.com/compazz/stockbridge/pkg/common"
)

func registerInventoryRoutes() {
	webserver.ApiPOST("/inventory/import", importInventory)
	webserver.ApiGET("/inventory/export", exportInventory)
	webserver.ApiGET("/inventory/template", downloadTemplate)
	webserver.ApiGET("/inventory/imports", listImportLogs)
}

// importInventory accepts a spreadsheet or CSV upload, runs the interchange
// pipeline and optionally commits the valid records. The full ImportResult is
// returned either way so the UI can render per-row diagnostics.
func importInventory(c echo.Context) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "No file uploaded", nil)
	}
	src, err := fh.Open()
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to open upload", err.Error())
	}
	defer src.Close()
	data, err := io.ReadAll(src)
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to read upload", err.Error())
	}

	source := strings.TrimSpace(c.FormValue("source"))
	if source == "" {
		source = interchange.SourceAuto
	}
	commit := strings.EqualFold(c.FormValue("commit"), "true")

	result, err := interchange.ImportProducts(data, source)
	if err != nil {
		return fail(c, http.StatusUnprocessableEntity, "UNREADABLE_FILE", "File could not be parsed", err.Error())
	}

	committed := 0
	if commit {
		committed, err = commitRecords(GetDB(c), result.Records)
		if err != nil {
			return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to commit products", err.Error())
		}
	}

	log := domain.ImportLog{
		ID:           common.UUIDint64(),
		Filename:     fh.Filename,
		Source:       result.Source,
		TotalRows:    result.TotalRows,
		ValidCount:   result.ValidCount,
		ErrorCount:   result.ErrorCount,
		WarningCount: result.WarningCount,
		Committed:    committed,
		CreatedAt:    time.Now(),
	}
	if err := GetDB(c).Create(&log).Error; err != nil {
		zap.L().Error("failed to write import log", zap.Error(err))
	}

	return ok(c, map[string]interface{}{
		"result":    result,
		"committed": committed,
	})
}

// commitRecords upserts valid records by SKU. Rows with errors are skipped;
// they were already returned to the caller for manual handling.
func commitRecords(db *gorm.DB, records []*interchange.Record) (int, error) {
	committed := 0
	for _, rec := range records {
		if !rec.Valid() {
			continue
		}
		now := time.Now()
		p := domain.Product{
			ID:              common.UUIDint64(),
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
			TaxRate:         rec.TaxRate,
			IsActive:        rec.IsActive,
			VendorID:        rec.VendorID,
			Source:          rec.Source,
			CreatedAt:       now,
			UpdatedAt:       now,
		}
		err := db.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "sku"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"name", "barcode", "description", "category",
				"unit_price", "cost_price", "quantity_on_hand",
				"reorder_level", "reorder_quantity", "tax_rate",
				"is_active", "vendor_id", "source", "updated_at",
			}),
		}).Create(&p).Error
		if err != nil {
			return committed, err
		}
		committed++
	}
	return committed, nil
}

// exportInventory renders the current catalog in the Compazz vocabulary for
// offline editing and later re-import.
func exportInventory(c echo.Context) error {
	format := interchange.ExportFormat(strings.ToLower(c.QueryParam("format")))
	if format == "" {
		format = interchange.ExportXLSX
	}
	outlet := c.QueryParam("outlet")

	var products []domain.Product
	if err := GetDB(c).Order("name ASC").Find(&products).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to query products", err.Error())
	}

	records := make([]*interchange.Record, 0, len(products))
	for _, p := range products {
		records = append(records, &interchange.Record{
			Name:            p.Name,
			SKU:             p.SKU,
			Barcode:         p.Barcode,
			Description:     p.Description,
			Category:        p.Category,
			UnitPrice:       p.UnitPrice,
			CostPrice:       p.CostPrice,
			QuantityOnHand:  p.QuantityOnHand,
			ReorderLevel:    p.ReorderLevel,
			ReorderQuantity: p.ReorderQuantity,
			TaxRate:         p.TaxRate,
			IsActive:        p.IsActive,
			VendorID:        p.VendorID,
		})
	}

	art, err := interchange.ExportRecords(records, format, outlet)
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Export failed", err.Error())
	}
	return sendArtifact(c, art)
}

func downloadTemplate(c echo.Context) error {
	art, err := interchange.Template()
	if err != nil {
		return fail(c, http.StatusInternalServerError, "TEMPLATE_ERROR", "Failed to build template", err.Error())
	}
	return sendArtifact(c, art)
}

func sendArtifact(c echo.Context, art *interchange.Artifact) error {
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+art.Filename+`"`)
	return c.Blob(http.StatusOK, art.ContentType, art.Content)
}

func listImportLogs(c echo.Context) error {
	page, pageSize := parsePagination(c)

	db := GetDB(c).Model(&domain.ImportLog{})
	if source := strings.TrimSpace(c.QueryParam("source")); source != "" {
		db = db.Where("source = ?", source)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to query import logs", err.Error())
	}

	var rows []domain.ImportLog
	if err := db.Order("created_at DESC").Offset((page - 1) * pageSize).Limit(pageSize).Find(&rows).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to query import logs", err.Error())
	}

	return paged(c, rows, total, page, pageSize)
}
