package adminapi

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/compazz/stockbridge/internal/domain"
	"github.com/compazz/stockbridge/internal/webserver"
	"github.com/compazz/stockbridge/pkg/common"
)

type productPayload struct {
	Name            string  `json:"name"`
	SKU             string  `json:"sku"`
	Barcode         string  `json:"barcode"`
	Description     string  `json:"description"`
	Category        string  `json:"category"`
	UnitPrice       float64 `json:"unit_price"`
	CostPrice       float64 `json:"cost_price"`
	QuantityOnHand  int     `json:"quantity_on_hand"`
	ReorderLevel    int     `json:"reorder_level"`
	ReorderQuantity int     `json:"reorder_quantity"`
	TaxRate         float64 `json:"tax_rate"`
	IsActive        *bool   `json:"is_active"`
	VendorID        string  `json:"vendor_id"`
}

func (p *productPayload) validate() (string, bool) {
	p.Name = strings.TrimSpace(p.Name)
	p.SKU = strings.TrimSpace(p.SKU)
	if p.Name == "" {
		return "Name is required", false
	}
	if p.SKU == "" {
		return "SKU is required", false
	}
	if p.UnitPrice < 0 || p.CostPrice < 0 {
		return "Prices must be >= 0", false
	}
	if p.TaxRate < 0 || p.TaxRate > 1 {
		return "Tax rate must be a fraction in [0,1]", false
	}
	if p.QuantityOnHand < 0 || p.ReorderLevel < 0 || p.ReorderQuantity < 0 {
		return "Quantities must be >= 0", false
	}
	return "", true
}

func (p *productPayload) apply(target *domain.Product) {
	target.Name = p.Name
	target.SKU = p.SKU
	target.Barcode = strings.TrimSpace(p.Barcode)
	target.Description = strings.TrimSpace(p.Description)
	target.Category = strings.TrimSpace(p.Category)
	if target.Category == "" {
		target.Category = "Other"
	}
	target.UnitPrice = p.UnitPrice
	target.CostPrice = p.CostPrice
	target.QuantityOnHand = p.QuantityOnHand
	target.ReorderLevel = p.ReorderLevel
	target.ReorderQuantity = p.ReorderQuantity
	target.TaxRate = p.TaxRate
	target.IsActive = p.IsActive == nil || *p.IsActive
	target.VendorID = strings.TrimSpace(p.VendorID)
	target.UpdatedAt = time.Now()
}

func registerProductRoutes() {
	webserver.ApiGET("/inventory/products", listProducts)
	webserver.ApiGET("/inventory/products/:id", getProduct)
	webserver.ApiPOST("/inventory/products", createProduct)
	webserver.ApiPUT("/inventory/products/:id", updateProduct)
	webserver.ApiDELETE("/inventory/products/:id", deleteProduct)
}

func listProducts(c echo.Context) error {
	page, pageSize := parsePagination(c)

	q := strings.TrimSpace(c.QueryParam("q"))
	category := strings.TrimSpace(c.QueryParam("category"))

	sortField := strings.TrimSpace(c.QueryParam("sort"))
	order := strings.ToUpper(strings.TrimSpace(c.QueryParam("order")))
	if order != "ASC" && order != "DESC" {
		order = "ASC"
	}

	// whitelist allowed sort columns to avoid SQL injection
	allowed := map[string]string{
		"id":               "id",
		"name":             "name",
		"sku":              "sku",
		"category":         "category",
		"unit_price":       "unit_price",
		"quantity_on_hand": "quantity_on_hand",
		"updated_at":       "updated_at",
	}
	sortCol, okCol := allowed[sortField]
	if !okCol || sortCol == "" {
		sortCol = "name"
	}

	db := GetDB(c).Model(&domain.Product{})
	if q != "" {
		db = db.Where("name ILIKE ? OR sku ILIKE ?", "%"+q+"%", "%"+q+"%")
	}
	if category != "" {
		db = db.Where("category = ?", category)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to query products", err.Error())
	}

	var rows []domain.Product
	if err := db.Order(sortCol + " " + order).Offset((page - 1) * pageSize).Limit(pageSize).Find(&rows).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to query products", err.Error())
	}

	return paged(c, rows, total, page, pageSize)
}

func getProduct(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_ID", "Invalid product ID", nil)
	}
	var p domain.Product
	if err := GetDB(c).Where("id = ?", id).First(&p).Error; err != nil {
		return fail(c, http.StatusNotFound, "NOT_FOUND", "Product not found", nil)
	}
	return ok(c, p)
}

func createProduct(c echo.Context) error {
	var payload productPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse product", err.Error())
	}
	if msg, valid := payload.validate(); !valid {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", msg, nil)
	}

	p := domain.Product{
		ID:        common.UUIDint64(),
		Source:    "manual",
		CreatedAt: time.Now(),
	}
	payload.apply(&p)

	if err := GetDB(c).Create(&p).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to create product", err.Error())
	}
	return ok(c, p)
}

func updateProduct(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_ID", "Invalid product ID", nil)
	}
	var p domain.Product
	if err := GetDB(c).Where("id = ?", id).First(&p).Error; err != nil {
		return fail(c, http.StatusNotFound, "NOT_FOUND", "Product not found", nil)
	}

	var payload productPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse product", err.Error())
	}
	if msg, valid := payload.validate(); !valid {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", msg, nil)
	}

	payload.apply(&p)

	if err := GetDB(c).Save(&p).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to update product", err.Error())
	}
	return ok(c, p)
}

func deleteProduct(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_ID", "Invalid product ID", nil)
	}
	if err := GetDB(c).Where("id = ?", id).Delete(&domain.Product{}).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to delete product", err.Error())
	}
	return ok(c, map[string]interface{}{"id": id})
}
