package valueobjects

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"strings"

	_ "golang.org/x/image/webp"
)

type ImageFormat string

const (
	JPEG ImageFormat = "jpeg"
	PNG  ImageFormat = "png"
	GIF  ImageFormat = "gif"
	WEBP ImageFormat = "webp"
)

// MimeType returns the media type registered for the format.
func (f ImageFormat) MimeType() string {
	return "image/" + string(f)
}

type ImageData struct {
	data     []byte
	mimeType string
}

// NewImageData wraps raw image bytes. When mimeType is empty the format is
// sniffed from the bytes and an undecodable payload is rejected.
func NewImageData(data []byte, mimeType string) (*ImageData, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("image data cannot be empty")
	}

	mimeType = strings.TrimSpace(mimeType)
	if mimeType == "" {
		format, err := DetectFormat(data)
		if err != nil {
			return nil, fmt.Errorf("unsupported image format: %w", err)
		}
		mimeType = format.MimeType()
	}

	return &ImageData{
		data:     data,
		mimeType: mimeType,
	}, nil
}

// NewImageDataFromBase64 decodes a base64 payload, as returned inline by the
// generation API or posted by a browser.
func NewImageDataFromBase64(encoded string, mimeType string) (*ImageData, error) {
	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("failed to decode base64 image: %w", err)
	}
	return NewImageData(data, mimeType)
}

func (i *ImageData) Data() []byte {
	return i.data
}

func (i *ImageData) MimeType() string {
	return i.mimeType
}

// Extension returns a file extension (without dot) matching the mime type.
func (i *ImageData) Extension() string {
	switch i.mimeType {
	case "image/jpeg", "image/jpg":
		return "jpg"
	case "image/png":
		return "png"
	case "image/gif":
		return "gif"
	case "image/webp":
		return "webp"
	default:
		return "bin"
	}
}

func (i *ImageData) ToBase64() string {
	return base64.StdEncoding.EncodeToString(i.data)
}

// DataURI renders the image as data:<mime>;base64,<payload>.
func (i *ImageData) DataURI() string {
	return "data:" + i.mimeType + ";base64," + i.ToBase64()
}

// ParseDataURI is the inverse of DataURI. Only base64 payloads are accepted.
func ParseDataURI(uri string) (*ImageData, error) {
	rest, ok := strings.CutPrefix(uri, "data:")
	if !ok {
		return nil, fmt.Errorf("not a data URI")
	}
	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return nil, fmt.Errorf("data URI has no payload")
	}
	mimeType, ok := strings.CutSuffix(meta, ";base64")
	if !ok {
		return nil, fmt.Errorf("data URI is not base64 encoded")
	}
	return NewImageDataFromBase64(payload, mimeType)
}

// DetectFormat decodes only the image header to find its format.
func DetectFormat(data []byte) (ImageFormat, error) {
	reader := bytes.NewReader(data)
	_, format, err := image.DecodeConfig(reader)
	if err != nil {
		return "", err
	}

	switch format {
	case "jpeg":
		return JPEG, nil
	case "png":
		return PNG, nil
	case "gif":
		return GIF, nil
	case "webp":
		return WEBP, nil
	default:
		return "", fmt.Errorf("unsupported format: %s", format)
	}
}
