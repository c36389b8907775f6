// SPDX-License-Identifier: MIT
package export

import (
	"encoding/base64"
	"fmt"
	"io"
	"mime"
	"os"
	"path/filepath"
)

// Filename is the name downloads are saved under
const Filename = "paleta-frutificando.png"

// Image is a rendered swatch, PNG encoded
type Image struct {
	PNG []byte
}

// DataURL embeds the image as a data: URL for use in an <img> src
func (img *Image) DataURL() string {
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(img.PNG)
}

// Download writes the image bytes to w
func Download(w io.Writer, img *Image) error {
	if img == nil {
		return fmt.Errorf("no image to download")
	}
	if _, err := w.Write(img.PNG); err != nil {
		return fmt.Errorf("failed to write image: %w", err)
	}
	return nil
}

// SaveFile writes the image into dir under name and returns the full path.
// An empty name uses Filename.
func SaveFile(dir, name string, img *Image) (string, error) {
	if name == "" {
		name = Filename
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create directory: %w", err)
	}

	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create image file: %w", err)
	}
	defer f.Close()

	if err := Download(f, img); err != nil {
		return "", err
	}
	return path, nil
}

// AttachmentHeader is the Content-Disposition value that makes a browser
// save the response as name
func AttachmentHeader(name string) string {
	if name == "" {
		name = Filename
	}
	return mime.FormatMediaType("attachment", map[string]string{"filename": name})
}
