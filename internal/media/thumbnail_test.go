// SPDX-License-Identifier: MIT
package media

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"
)

func encodeSolidPNG(t *testing.T, w, h int, c color.Color) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("Failed to encode test image: %v", err)
	}
	return buf.Bytes()
}

func TestThumbnail(t *testing.T) {
	src := encodeSolidPNG(t, 100, 100, color.RGBA{255, 0, 0, 255})

	out, err := Thumbnail(src, 50, 50)
	if err != nil {
		t.Fatalf("Thumbnail failed: %v", err)
	}

	img, err := jpeg.Decode(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("Thumbnail is not a JPEG: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 50 || b.Dy() != 50 {
		t.Errorf("Expected thumbnail 50x50, got %dx%d", b.Dx(), b.Dy())
	}
}

func TestPreviewSize(t *testing.T) {
	src := encodeSolidPNG(t, 800, 400, color.RGBA{0, 0, 255, 255})

	out, err := Preview(src)
	if err != nil {
		t.Fatalf("Preview failed: %v", err)
	}
	img, err := jpeg.Decode(bytes.NewReader(out))
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != PreviewWidth || b.Dy() != PreviewHeight {
		t.Errorf("Expected %dx%d, got %dx%d", PreviewWidth, PreviewHeight, b.Dx(), b.Dy())
	}
}

func TestCenterCrop(t *testing.T) {
	tests := []struct {
		name string
		src  image.Rectangle
		w, h int
		want image.Rectangle
	}{
		{"wide source", image.Rect(0, 0, 200, 100), 50, 50, image.Rect(50, 0, 150, 100)},
		{"tall source", image.Rect(0, 0, 100, 200), 50, 50, image.Rect(0, 50, 100, 150)},
		{"same aspect", image.Rect(0, 0, 800, 400), 600, 300, image.Rect(0, 0, 800, 400)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := centerCrop(tt.src, tt.w, tt.h); got != tt.want {
				t.Errorf("centerCrop = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestThumbnailRejectsGarbage(t *testing.T) {
	if _, err := Thumbnail([]byte("not an image"), 10, 10); err == nil {
		t.Error("expected decode error")
	}
	if _, err := Thumbnail(nil, 0, 10); err == nil {
		t.Error("expected size error")
	}
}
