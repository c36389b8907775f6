// SPDX-License-Identifier: MIT
package media

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png" // Register PNG decoder

	"golang.org/x/image/draw"
)

const (
	// PreviewWidth is the link preview width most messaging apps crop to
	PreviewWidth = 600
	// PreviewHeight keeps the preview at the 2:1 swatch aspect
	PreviewHeight = 300
)

// Preview creates the standard link preview for a rendered swatch
func Preview(src []byte) ([]byte, error) {
	return Thumbnail(src, PreviewWidth, PreviewHeight)
}

// Thumbnail scales an encoded image down to width x height and returns it
// as JPEG. The source is center cropped to the target aspect first.
func Thumbnail(src []byte, width, height int) ([]byte, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid thumbnail size %dx%d", width, height)
	}

	img, _, err := image.Decode(bytes.NewReader(src))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	cropRect := centerCrop(img.Bounds(), width, height)

	thumbnail := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(thumbnail, thumbnail.Bounds(), img, cropRect, draw.Over, nil)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, thumbnail, &jpeg.Options{Quality: 85}); err != nil {
		return nil, fmt.Errorf("failed to encode thumbnail: %w", err)
	}
	return buf.Bytes(), nil
}

// centerCrop returns the largest rectangle of src's aspect width:height
// centered in src
func centerCrop(src image.Rectangle, width, height int) image.Rectangle {
	srcWidth, srcHeight := src.Dx(), src.Dy()
	srcAspect := float64(srcWidth) / float64(srcHeight)
	dstAspect := float64(width) / float64(height)

	if srcAspect > dstAspect {
		// Source is wider - crop width
		newWidth := int(float64(srcHeight) * dstAspect)
		x := src.Min.X + (srcWidth-newWidth)/2
		return image.Rect(x, src.Min.Y, x+newWidth, src.Max.Y)
	}
	// Source is taller - crop height
	newHeight := int(float64(srcWidth) / dstAspect)
	y := src.Min.Y + (srcHeight-newHeight)/2
	return image.Rect(src.Min.X, y, src.Max.X, y+newHeight)
}
