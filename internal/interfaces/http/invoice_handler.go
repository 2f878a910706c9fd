package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/aska-invoice/internal/application/billing"
	"github.com/jhoicas/aska-invoice/internal/application/dto"
)

const contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// InvoiceHandler maneja las peticiones HTTP de facturas.
type InvoiceHandler struct {
	uc     *billing.InvoiceUseCase
	pdf    *billing.PDFUseCase
	export *billing.ExportUseCase
}

// NewInvoiceHandler construye el handler.
func NewInvoiceHandler(uc *billing.InvoiceUseCase, pdf *billing.PDFUseCase, export *billing.ExportUseCase) *InvoiceHandler {
	return &InvoiceHandler{uc: uc, pdf: pdf, export: export}
}

// Create crea la factura, calcula totales y asigna el consecutivo.
// POST /api/invoices
func (h *InvoiceHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateInvoiceRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	invoice, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return writeError(c, err, "factura no encontrada")
	}
	return c.Status(fiber.StatusCreated).JSON(invoice)
}

// Preview calcula totales de un borrador sin guardar.
// POST /api/invoices/preview
func (h *InvoiceHandler) Preview(c *fiber.Ctx) error {
	var in dto.PreviewTotalsRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	totals, err := h.uc.Preview(c.Context(), in)
	if err != nil {
		return writeError(c, err, "")
	}
	return c.JSON(totals)
}

// NextNumber GET /api/invoices/next-number
func (h *InvoiceHandler) NextNumber(c *fiber.Ctx) error {
	next, err := h.uc.NextNumber(c.Context())
	if err != nil {
		return writeError(c, err, "")
	}
	return c.JSON(next)
}

// List GET /api/invoices?q=texto&type=cash|quote|credit
func (h *InvoiceHandler) List(c *fiber.Ctx) error {
	var filter dto.InvoiceFilter
	if err := c.QueryParser(&filter); err != nil {
		return invalidBody(c)
	}
	list, err := h.uc.List(c.Context(), filter)
	if err != nil {
		return writeError(c, err, "")
	}
	return c.JSON(list)
}

// GetByID obtiene el detalle completo de una factura.
// GET /api/invoices/:id
func (h *InvoiceHandler) GetByID(c *fiber.Ctx) error {
	invoice, err := h.uc.Get(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err, "factura no encontrada")
	}
	return c.JSON(invoice)
}

// Update PUT /api/invoices/:id
func (h *InvoiceHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateInvoiceRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	invoice, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return writeError(c, err, "factura no encontrada")
	}
	return c.JSON(invoice)
}

// Delete DELETE /api/invoices/:id
func (h *InvoiceHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return writeError(c, err, "factura no encontrada")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// DownloadPDF GET /api/invoices/:id/pdf
func (h *InvoiceHandler) DownloadPDF(c *fiber.Ctx) error {
	data, filename, err := h.pdf.DownloadInvoicePDF(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err, "factura no encontrada")
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(data)
}

// Export GET /api/invoices/export.xlsx?q=&type= (mismos filtros que el listado)
func (h *InvoiceHandler) Export(c *fiber.Ctx) error {
	var filter dto.InvoiceFilter
	if err := c.QueryParser(&filter); err != nil {
		return invalidBody(c)
	}
	data, filename, err := h.export.Export(c.Context(), filter)
	if err != nil {
		return writeError(c, err, "")
	}
	c.Set(fiber.HeaderContentType, contentTypeXLSX)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(data)
}
