package slip

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/campus-store/internal/domain"
	"github.com/jhoicas/campus-store/internal/domain/repository"
)

// UseCase genera el PDF del comprobante y exporta órdenes.
type UseCase struct {
	orders   repository.OrderRepository
	prints   Fingerprinter
	pdf      PDFGenerator
	exporter OrderExporter
}

// NewUseCase construye el caso de uso.
func NewUseCase(orders repository.OrderRepository, prints Fingerprinter, pdf PDFGenerator, exporter OrderExporter) *UseCase {
	return &UseCase{orders: orders, prints: prints, pdf: pdf, exporter: exporter}
}

// RenderPDF devuelve el PDF del comprobante de la orden; ErrOrderNotFound si no existe.
func (uc *UseCase) RenderPDF(ctx context.Context, orderID string) ([]byte, error) {
	order, err := uc.orders.FindByID(ctx, strings.TrimSpace(orderID))
	if err != nil {
		return nil, err
	}
	fp, err := uc.prints.Fingerprint(*order)
	if err != nil {
		return nil, fmt.Errorf("slip: huella: %w", err)
	}
	return uc.pdf.GenerateSlipPDF(ctx, *order, fp)
}

// Export serializa todas las órdenes (xml o csv). Devuelve el content-type junto con los bytes.
func (uc *UseCase) Export(ctx context.Context, format string) ([]byte, string, error) {
	format = strings.ToLower(strings.TrimSpace(format))
	if format == "" {
		format = FormatXML
	}
	var contentType string
	switch format {
	case FormatXML:
		contentType = "application/xml"
	case FormatCSV:
		contentType = "text/csv"
	default:
		return nil, "", fmt.Errorf("%w: formato de exportación %q", domain.ErrValidation, format)
	}
	orders, err := uc.orders.List(ctx)
	if err != nil {
		return nil, "", err
	}
	var buf bytes.Buffer
	if err := uc.exporter.Export(&buf, format, orders); err != nil {
		return nil, "", err
	}
	return buf.Bytes(), contentType, nil
}
