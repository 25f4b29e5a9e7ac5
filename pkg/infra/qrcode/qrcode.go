package qrcode

import (
	"github.com/m-mizutani/goerr/v2"
	qr "github.com/skip2/go-qrcode"
)

// imageSize is the rendered PNG edge length in pixels
const imageSize = 320

// Generate renders url as a monochrome QR code PNG at dest. Short URLs only
// need the lowest error correction tier, and the quiet zone is dropped so
// the image can be embedded without a white frame.
func Generate(url, dest string) error {
	code, err := qr.New(url, qr.Low)
	if err != nil {
		return goerr.Wrap(err, "failed to encode QR code", goerr.V("url", url))
	}
	code.DisableBorder = true

	if err := code.WriteFile(imageSize, dest); err != nil {
		return goerr.Wrap(err, "failed to write QR code image", goerr.V("dest", dest))
	}
	return nil
}
