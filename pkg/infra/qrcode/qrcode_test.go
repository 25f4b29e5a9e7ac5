package qrcode_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/m-mizutani/herald/pkg/infra/qrcode"
)

var pngSignature = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

func TestGenerate(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "qr.png")

	gt.NoError(t, qrcode.Generate("https://www.icloud.com/shortcuts/abc123", dest))

	data, err := os.ReadFile(dest)
	gt.NoError(t, err)
	gt.Number(t, len(data)).Greater(len(pngSignature))
	gt.Value(t, bytes.HasPrefix(data, pngSignature)).Equal(true)
}

func TestGenerate_EmptyContent(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "qr.png")
	gt.Error(t, qrcode.Generate("", dest))
}
