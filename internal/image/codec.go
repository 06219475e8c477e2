package imagepkg

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// DecodeBase64 decodes a base64-encoded image and reports the source
// format name ("png", "jpeg", "gif", ...).
func DecodeBase64(encoded string) (image.Image, string, error) {
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, "", fmt.Errorf("decode base64: %w", err)
	}
	img, format, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, "", fmt.Errorf("decode image: %w", err)
	}
	return img, format, nil
}

// EncodeFormat re-encodes img in the given format name so the output
// mirrors the source format. Unknown formats fall back to PNG.
func EncodeFormat(img image.Image, format string) ([]byte, string, error) {
	var f imaging.Format
	switch format {
	case "jpeg":
		f = imaging.JPEG
	case "gif":
		f = imaging.GIF
	case "bmp":
		f = imaging.BMP
	case "tiff":
		f = imaging.TIFF
	default:
		f = imaging.PNG
		format = "png"
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, f); err != nil {
		return nil, "", fmt.Errorf("encode %s: %w", format, err)
	}
	return buf.Bytes(), format, nil
}
