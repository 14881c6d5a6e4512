package integrations

import (
	"bytes"
	"context"
	"fmt"
	"image"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/disintegration/imaging"
	"github.com/gabriel-vasile/mimetype"
	"github.com/kerbaras/faceswap/pkg/data"
	"github.com/vincent-petithory/dataurl"
)

// DataURLReader encodes selected images as base64 data URLs.
type DataURLReader struct{}

func NewDataURLReader() *DataURLReader {
	return &DataURLReader{}
}

func (r *DataURLReader) ReadAsDataURL(ctx context.Context, file *data.SelectedFile) (string, error) {
	if file.Empty() {
		return "", fmt.Errorf("no file selected")
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if _, _, err := image.DecodeConfig(bytes.NewReader(file.Content)); err != nil {
		return "", fmt.Errorf("failed to decode %s: %w", file.Name, err)
	}

	mediaType := file.MimeType
	if mediaType == "" || mediaType == "application/octet-stream" {
		mediaType = mimetype.Detect(file.Content).String()
	}

	if err := ctx.Err(); err != nil {
		return "", err
	}
	return dataurl.New(file.Content, mediaType).String(), nil
}

// DecodeDataURL returns the image carried by a data URL, honoring EXIF orientation.
func DecodeDataURL(s string) (image.Image, error) {
	du, err := dataurl.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("invalid data URL: %w", err)
	}
	img, err := imaging.Decode(bytes.NewReader(du.Data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	return img, nil
}
