// Package slipxml construye la forma XML canónica de un comprobante, su huella HMAC y la
// exportación del listado de órdenes (XML o CSV).
package slipxml

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strconv"

	"github.com/beevik/etree"
	"github.com/ucarion/c14n"

	"github.com/jhoicas/campus-store/internal/domain/entity"
)

// Slip construye el documento <orderSlip> con los datos impresos en el comprobante.
// Status no forma parte del documento: la huella no cambia al completar la orden.
func Slip(o entity.Order) *etree.Document {
	doc := etree.NewDocument()
	appendOrder(&doc.Element, "orderSlip", o, false)
	return doc
}

// appendOrder agrega el elemento de la orden bajo parent. withStatus solo para exportación.
func appendOrder(parent *etree.Element, tag string, o entity.Order, withStatus bool) *etree.Element {
	el := parent.CreateElement(tag)
	el.CreateAttr("id", o.ID)
	el.CreateElement("timestamp").SetText(o.Timestamp)

	cust := el.CreateElement("customer")
	cust.CreateAttr("signedIn", strconv.FormatBool(o.IsSignedIn))
	cust.CreateElement("name").SetText(o.CustomerName)
	if o.CustomerEmail != "" {
		cust.CreateElement("email").SetText(o.CustomerEmail)
	}

	items := el.CreateElement("items")
	for _, it := range o.Items {
		item := items.CreateElement("item")
		item.CreateAttr("id", it.ID)
		item.CreateElement("name").SetText(it.Name)
		item.CreateElement("quantity").SetText(strconv.Itoa(it.Quantity))
		item.CreateElement("price").SetText(it.Price.String())
	}
	el.CreateElement("total").SetText(o.Total.String())
	if withStatus {
		el.CreateElement("status").SetText(o.Status)
		if o.UserAgent != "" {
			el.CreateElement("userAgent").SetText(o.UserAgent)
		}
	}
	return el
}

// Canonical serializa el comprobante y lo canonicaliza (C14N 1.0).
func Canonical(o entity.Order) ([]byte, error) {
	raw, err := Slip(o).WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("slipxml: serializar: %w", err)
	}
	dec := xml.NewDecoder(bytes.NewReader(raw))
	dec.Entity = map[string]string{}
	out, err := c14n.Canonicalize(dec)
	if err != nil {
		return nil, fmt.Errorf("slipxml: canonicalizar: %w", err)
	}
	return out, nil
}
