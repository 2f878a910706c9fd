package billing

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/aska-invoice/internal/domain/entity"
	"github.com/jhoicas/aska-invoice/internal/domain/invoicing"
	"github.com/jhoicas/aska-invoice/internal/domain/repository"
)

// InvoiceNumbering asigna el consecutivo INV-<año>-<seq> a partir de Settings.LastInvoiceNumber.
// El año sale del reloj al momento de asignar; la secuencia no se reinicia con el año.
type InvoiceNumbering struct {
	settings repository.SettingsRepository
	now      func() time.Time
}

// NewInvoiceNumbering construye el servicio. now nil = time.Now.
func NewInvoiceNumbering(settings repository.SettingsRepository, now func() time.Time) *InvoiceNumbering {
	if now == nil {
		now = time.Now
	}
	return &InvoiceNumbering{settings: settings, now: now}
}

// Next incrementa y persiste el contador y devuelve el número asignado.
// Un número entregado nunca se vuelve a entregar, aunque la factura no llegue a guardarse.
func (n *InvoiceNumbering) Next(ctx context.Context) (string, error) {
	s, err := n.settings.Modify(ctx, func(current entity.Settings) entity.SettingsPatch {
		seq := current.LastInvoiceNumber + 1
		return entity.SettingsPatch{LastInvoiceNumber: &seq}
	})
	if err != nil {
		return "", fmt.Errorf("numeración: %w", err)
	}
	return invoicing.FormatNumberAt(n.now(), s.LastInvoiceNumber), nil
}

// Peek devuelve el número que asignaría Next sin consumirlo.
func (n *InvoiceNumbering) Peek(ctx context.Context) (string, error) {
	s, err := n.settings.Get(ctx)
	if err != nil {
		return "", fmt.Errorf("numeración: %w", err)
	}
	return invoicing.FormatNumberAt(n.now(), s.LastInvoiceNumber+1), nil
}
