package valueobjects

import (
	"bytes"
	"image"
	"image/jpeg"
	"image/png"
	"strings"
	"testing"
)

func TestNewImageData(t *testing.T) {
	tests := []struct {
		name     string
		data     []byte
		mimeType string
		wantErr  bool
	}{
		{
			name:     "empty data should fail",
			data:     []byte{},
			mimeType: "image/jpeg",
			wantErr:  true,
		},
		{
			name:     "nil data should fail",
			data:     nil,
			mimeType: "image/jpeg",
			wantErr:  true,
		},
		{
			name:     "invalid image data without mime type should fail",
			data:     []byte{0x00, 0x01, 0x02},
			mimeType: "",
			wantErr:  true,
		},
		{
			name:     "opaque data with declared mime type is accepted",
			data:     []byte{0x00, 0x01, 0x02},
			mimeType: "image/png",
			wantErr:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewImageData(tt.data, tt.mimeType)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewImageData() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestNewImageData_SniffsFormat(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))

	var pngBuf bytes.Buffer
	if err := png.Encode(&pngBuf, img); err != nil {
		t.Fatalf("Failed to create test PNG: %v", err)
	}
	var jpegBuf bytes.Buffer
	if err := jpeg.Encode(&jpegBuf, img, &jpeg.Options{Quality: 90}); err != nil {
		t.Fatalf("Failed to create test JPEG: %v", err)
	}

	tests := []struct {
		name string
		data []byte
		want string
	}{
		{name: "png", data: pngBuf.Bytes(), want: "image/png"},
		{name: "jpeg", data: jpegBuf.Bytes(), want: "image/jpeg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			imageData, err := NewImageData(tt.data, "")
			if err != nil {
				t.Fatalf("NewImageData() error = %v", err)
			}
			if imageData.MimeType() != tt.want {
				t.Errorf("Expected mime type %s, got %s", tt.want, imageData.MimeType())
			}
		})
	}
}

func TestImageData_DataURI(t *testing.T) {
	imageData, err := NewImageData([]byte("test data"), "image/png")
	if err != nil {
		t.Fatalf("Failed to create ImageData: %v", err)
	}

	want := "data:image/png;base64,dGVzdCBkYXRh"
	if got := imageData.DataURI(); got != want {
		t.Errorf("DataURI() = %q, want %q", got, want)
	}
	if !strings.HasPrefix(imageData.DataURI(), "data:") {
		t.Errorf("DataURI() should start with data:")
	}
}

func TestNewImageDataFromBase64(t *testing.T) {
	imageData, err := NewImageDataFromBase64("dGVzdCBkYXRh", "image/webp")
	if err != nil {
		t.Fatalf("NewImageDataFromBase64() error = %v", err)
	}
	if string(imageData.Data()) != "test data" {
		t.Errorf("Unexpected decoded data: %q", imageData.Data())
	}
	if imageData.Extension() != "webp" {
		t.Errorf("Expected extension webp, got %s", imageData.Extension())
	}

	if _, err := NewImageDataFromBase64("%%%", "image/png"); err == nil {
		t.Errorf("Expected error for invalid base64")
	}
}

func TestParseDataURI(t *testing.T) {
	original, err := NewImageData([]byte{1, 2, 3, 4}, "image/webp")
	if err != nil {
		t.Fatal(err)
	}

	parsed, err := ParseDataURI(original.DataURI())
	if err != nil {
		t.Fatalf("ParseDataURI() error = %v", err)
	}
	if parsed.MimeType() != "image/webp" || !bytes.Equal(parsed.Data(), original.Data()) {
		t.Errorf("Round trip mismatch: %q %v", parsed.MimeType(), parsed.Data())
	}

	for _, bad := range []string{
		"https://example.com/a.png",
		"data:image/png;base64",
		"data:image/png,AQID",
		"data:image/png;base64,!!!",
	} {
		if _, err := ParseDataURI(bad); err == nil {
			t.Errorf("ParseDataURI(%q) should fail", bad)
		}
	}
}
