package qr

import (
	"fmt"
	"net/url"

	"github.com/skip2/go-qrcode"
)

// TableCodeGenerator renders the QR codes printed on table stands. Each
// code encodes the ordering URL with the table number preselected.
type TableCodeGenerator struct {
	BaseURL string
}

// Generate returns a PNG QR code for the given table number.
func (g TableCodeGenerator) Generate(tableNumber string) ([]byte, error) {
	data := fmt.Sprintf("%s/?table=%s", g.BaseURL, url.QueryEscape(tableNumber))
	return qrcode.Encode(data, qrcode.Medium, 256)
}
