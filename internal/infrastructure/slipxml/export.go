package slipxml

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/beevik/etree"

	"github.com/jhoicas/campus-store/internal/domain/entity"
)

// Formatos soportados por Exporter.
const (
	FormatXML = "xml"
	FormatCSV = "csv"
)

var csvHeader = []string{"id", "timestamp", "customerName", "customerEmail", "isSignedIn", "status", "items", "units", "total"}

// Exporter escribe el listado de órdenes.
type Exporter struct{}

// NewExporter construye el exportador.
func NewExporter() *Exporter { return &Exporter{} }

// Export escribe orders en w. Formatos: xml (<orders> con cada orden completa) o csv (una fila por orden).
func (e *Exporter) Export(w io.Writer, format string, orders []entity.Order) error {
	switch format {
	case FormatXML:
		return writeXML(w, orders)
	case FormatCSV:
		return writeCSV(w, orders)
	default:
		return fmt.Errorf("slipxml: formato no soportado %q", format)
	}
}

func writeXML(w io.Writer, orders []entity.Order) error {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	root := doc.CreateElement("orders")
	root.CreateAttr("count", strconv.Itoa(len(orders)))
	for _, o := range orders {
		appendOrder(root, "order", o, true)
	}
	doc.Indent(2)
	if _, err := doc.WriteTo(w); err != nil {
		return fmt.Errorf("slipxml: escribir xml: %w", err)
	}
	return nil
}

func writeCSV(w io.Writer, orders []entity.Order) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, o := range orders {
		units := 0
		for _, it := range o.Items {
			units += it.Quantity
		}
		rec := []string{
			o.ID,
			o.Timestamp,
			o.CustomerName,
			o.CustomerEmail,
			strconv.FormatBool(o.IsSignedIn),
			o.Status,
			strconv.Itoa(len(o.Items)),
			strconv.Itoa(units),
			o.Total.String(),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
