// Package slip agrupa los puertos y el caso de uso del comprobante de la orden:
// PDF imprimible, huella de autenticidad y exportación del listado.
package slip

import (
	"context"
	"io"

	"github.com/jhoicas/campus-store/internal/domain/entity"
)

// Fingerprinter calcula la huella de autenticidad de una orden (16 hex en mayúsculas).
type Fingerprinter interface {
	Fingerprint(order entity.Order) (string, error)
}

// PDFGenerator puerto para generar el PDF del comprobante.
type PDFGenerator interface {
	GenerateSlipPDF(ctx context.Context, order entity.Order, fingerprint string) ([]byte, error)
}

// Formatos de exportación del listado de órdenes.
const (
	FormatXML = "xml"
	FormatCSV = "csv"
)

// OrderExporter escribe un listado de órdenes en el formato indicado.
type OrderExporter interface {
	Export(w io.Writer, format string, orders []entity.Order) error
}
