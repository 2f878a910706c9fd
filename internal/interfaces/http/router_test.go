package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/aska-invoice/internal/application/dto"
	"github.com/jhoicas/aska-invoice/internal/bootstrap"
	"github.com/jhoicas/aska-invoice/internal/infrastructure/kv"
	"github.com/jhoicas/aska-invoice/internal/infrastructure/storage"
	apphttp "github.com/jhoicas/aska-invoice/internal/interfaces/http"
	"github.com/jhoicas/aska-invoice/pkg/config"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// buildTestApp construye la API completa sobre un backend en memoria.
func buildTestApp(t *testing.T) *fiber.App {
	t.Helper()
	cfg := &config.Config{Storage: config.StorageConfig{Driver: config.DriverMemory, Prefix: "aska"}}
	a := bootstrap.NewWithBackend(cfg, nil, kv.NewMemoryBackend(), storage.Options{})
	t.Cleanup(func() { _ = a.Close() })

	app := fiber.New()
	apphttp.Router(app, a.RouterDeps())
	return app
}

// doJSON lanza la petición con body JSON (si body != nil) y devuelve la respuesta.
func doJSON(t *testing.T, app *fiber.App, method, path string, body any) *http.Response {
	t.Helper()
	var r io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var v T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	return v
}

func createCustomer(t *testing.T, app *fiber.App) dto.CustomerResponse {
	t.Helper()
	resp := doJSON(t, app, http.MethodPost, "/api/customers", map[string]any{
		"name": "شركة المثال", "phone": "777777777", "address": "تعز",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	return decode[dto.CustomerResponse](t, resp)
}

func invoiceBody(customerID string) map[string]any {
	return map[string]any{
		"type":       "cash",
		"customerId": customerID,
		"issueDate":  "2025-01-15",
		"items": []map[string]any{{
			"description_ar": "دهان داخلي",
			"description_en": "Interior Paint",
			"qty":            3,
			"unit_price":     50,
		}},
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Clientes
// ──────────────────────────────────────────────────────────────────────────────

func TestCustomers_CRUD(t *testing.T) {
	app := buildTestApp(t)
	c := createCustomer(t, app)
	assert.NotEmpty(t, c.ID)

	resp := doJSON(t, app, http.MethodGet, "/api/customers/"+c.ID, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = doJSON(t, app, http.MethodPut, "/api/customers/"+c.ID, map[string]any{"notes": "عميل مهم"})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "عميل مهم", decode[dto.CustomerResponse](t, resp).Notes)

	resp = doJSON(t, app, http.MethodDelete, "/api/customers/"+c.ID, nil)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, "/api/customers/"+c.ID, nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", decode[dto.ErrorResponse](t, resp).Code)
}

func TestCustomers_ValidacionYBodyInvalido(t *testing.T) {
	app := buildTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/customers", map[string]any{"name": "x"})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", decode[dto.ErrorResponse](t, resp).Code)

	req := httptest.NewRequest(http.MethodPost, "/api/customers", bytes.NewBufferString("{no-json"))
	req.Header.Set("Content-Type", "application/json")
	raw, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, raw.StatusCode)
	assert.Equal(t, "INVALID_BODY", decode[dto.ErrorResponse](t, raw).Code)
}

func TestCustomers_ListConBusqueda(t *testing.T) {
	app := buildTestApp(t)
	createCustomer(t, app)

	resp := doJSON(t, app, http.MethodGet, "/api/customers?q=%D8%AA%D8%B9%D8%B2", nil) // "تعز"
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Len(t, decode[[]dto.CustomerResponse](t, resp), 1)

	resp = doJSON(t, app, http.MethodGet, "/api/customers?q=nada", nil)
	assert.Empty(t, decode[[]dto.CustomerResponse](t, resp))
}

// ──────────────────────────────────────────────────────────────────────────────
// Facturas
// ──────────────────────────────────────────────────────────────────────────────

func TestInvoices_CreateYGet(t *testing.T) {
	app := buildTestApp(t)
	c := createCustomer(t, app)

	resp := doJSON(t, app, http.MethodGet, "/api/invoices/next-number", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	peek := decode[dto.NextNumberResponse](t, resp)

	resp = doJSON(t, app, http.MethodPost, "/api/invoices", invoiceBody(c.ID))
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	inv := decode[map[string]any](t, resp)
	assert.Equal(t, peek.Number, inv["number"])
	// Montos como números JSON
	assert.Equal(t, 172.5, inv["total"])
	assert.Equal(t, 22.5, inv["taxAmount"])
	assert.Equal(t, 150.0, inv["subtotal"])

	resp = doJSON(t, app, http.MethodGet, "/api/invoices/"+inv["id"].(string), nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "شركة المثال", decode[dto.InvoiceResponse](t, resp).CustomerName)
}

func TestInvoices_ErroresDeValidacion(t *testing.T) {
	app := buildTestApp(t)
	c := createCustomer(t, app)

	body := invoiceBody(c.ID)
	body["type"] = "gift"
	resp := doJSON(t, app, http.MethodPost, "/api/invoices", body)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	body = invoiceBody("no-existe")
	resp = doJSON(t, app, http.MethodPost, "/api/invoices", body)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, "/api/invoices?type=gift", nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, "/api/invoices/no-existe", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestInvoices_PreviewListUpdateDelete(t *testing.T) {
	app := buildTestApp(t)
	c := createCustomer(t, app)

	resp := doJSON(t, app, http.MethodPost, "/api/invoices/preview", map[string]any{
		"items":           []map[string]any{{"description_ar": "أ", "qty": 1, "unit_price": 100}},
		"taxPercent":      15,
		"discountPercent": 50,
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	totals := decode[map[string]any](t, resp)
	assert.Equal(t, 57.5, totals["total"])

	resp = doJSON(t, app, http.MethodPost, "/api/invoices", invoiceBody(c.ID))
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	id := decode[dto.InvoiceResponse](t, resp).ID

	resp = doJSON(t, app, http.MethodGet, "/api/invoices?type=cash&q=INV", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Len(t, decode[[]dto.InvoiceSummary](t, resp), 1)

	resp = doJSON(t, app, http.MethodPut, "/api/invoices/"+id, map[string]any{"taxPercent": 0})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, 150.0, decode[map[string]any](t, resp)["total"])

	resp = doJSON(t, app, http.MethodDelete, "/api/invoices/"+id, nil)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
	resp = doJSON(t, app, http.MethodDelete, "/api/invoices/"+id, nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestInvoices_PDFyExcel(t *testing.T) {
	app := buildTestApp(t)
	c := createCustomer(t, app)
	body := invoiceBody(c.ID)
	body["items"] = []map[string]any{{"description_ar": "Paint", "qty": 2, "unit_price": 10}}
	resp := doJSON(t, app, http.MethodPost, "/api/invoices", body)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	inv := decode[dto.InvoiceResponse](t, resp)

	resp = doJSON(t, app, http.MethodGet, "/api/invoices/"+inv.ID+"/pdf", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get(fiber.HeaderContentType))
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentDisposition), inv.Number+".pdf")

	resp = doJSON(t, app, http.MethodGet, "/api/invoices/no-existe/pdf", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, "/api/invoices/export.xlsx", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentDisposition), ".xlsx")
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("PK")), "xlsx es un zip")
}

// ──────────────────────────────────────────────────────────────────────────────
// Configuración y dashboard
// ──────────────────────────────────────────────────────────────────────────────

func TestSettings_UpdateYReset(t *testing.T) {
	app := buildTestApp(t)

	resp := doJSON(t, app, http.MethodPut, "/api/settings", map[string]any{"defaultTaxPercent": 120})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp = doJSON(t, app, http.MethodPut, "/api/settings", map[string]any{"defaultTaxPercent": 5, "companyName": "Aska"})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	s := decode[map[string]any](t, resp)
	assert.Equal(t, 5.0, s["defaultTaxPercent"])
	assert.Equal(t, "Aska", s["companyName"])

	resp = doJSON(t, app, http.MethodPost, "/api/settings/reset", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, 15.0, decode[map[string]any](t, resp)["defaultTaxPercent"])
}

func TestDashboard_Resumen(t *testing.T) {
	app := buildTestApp(t)
	c := createCustomer(t, app)
	resp := doJSON(t, app, http.MethodPost, "/api/invoices", invoiceBody(c.ID))
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, "/api/dashboard", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	summary := decode[map[string]any](t, resp)
	assert.Equal(t, 1.0, summary["totalInvoices"])
	assert.Equal(t, 1.0, summary["totalCustomers"])
	assert.Equal(t, 172.5, summary["recentRevenue"])
}

func TestRequestLogger_PropagaRequestID(t *testing.T) {
	app := buildTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/api/settings", nil)
	req.Header.Set(apphttp.HeaderRequestID, "req-123")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, "req-123", resp.Header.Get(apphttp.HeaderRequestID))

	resp = doJSON(t, app, http.MethodGet, "/api/settings", nil)
	assert.NotEmpty(t, resp.Header.Get(apphttp.HeaderRequestID))
}
