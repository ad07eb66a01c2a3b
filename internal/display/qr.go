package display

import (
	"image"

	"github.com/skip2/go-qrcode"
)

// editorQR renders a QR code for the editor URL so someone standing at the
// display can open the editor on their phone.
func editorQR(url string, sizePx int) (image.Image, error) {
	qr, err := qrcode.New(url, qrcode.Medium)
	if err != nil {
		return nil, err
	}
	return qr.Image(sizePx), nil
}
