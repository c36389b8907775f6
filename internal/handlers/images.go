// SPDX-License-Identifier: MIT
package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/thatcatcamp/paleta/internal/export"
	"github.com/thatcatcamp/paleta/internal/media"
)

// Rendering is a pure function of the query, so responses can be cached
const imageCacheControl = "public, max-age=86400"

// SwatchHandler renders the palette in the query as an inline PNG
func (h *Handler) SwatchHandler(c *gin.Context) {
	v, _ := h.loadView(c)

	img, err := v.Generate()
	if err != nil {
		log.Printf("Error rendering swatch: %v", err)
		c.String(http.StatusInternalServerError, "Failed to render swatch")
		return
	}

	c.Header("Cache-Control", imageCacheControl)
	c.Data(http.StatusOK, "image/png", img.PNG)
}

// DownloadHandler renders the palette and sends it as a file download
func (h *Handler) DownloadHandler(c *gin.Context) {
	v, _ := h.loadView(c)

	if _, err := v.Generate(); err != nil {
		log.Printf("Error rendering swatch for download: %v", err)
		c.String(http.StatusInternalServerError, "Failed to render swatch")
		return
	}

	c.Header("Content-Type", "image/png")
	c.Header("Content-Disposition", export.AttachmentHeader(h.cfg.Filename))
	c.Status(http.StatusOK)
	if err := v.Download(c.Writer); err != nil {
		log.Printf("Error writing download: %v", err)
	}
}

// PreviewHandler serves a small JPEG of the swatch for link unfurling
func (h *Handler) PreviewHandler(c *gin.Context) {
	v, _ := h.loadView(c)

	img, err := v.Generate()
	if err != nil {
		log.Printf("Error rendering swatch preview: %v", err)
		c.String(http.StatusInternalServerError, "Failed to render preview")
		return
	}

	preview, err := media.Preview(img.PNG)
	if err != nil {
		log.Printf("Error scaling swatch preview: %v", err)
		c.String(http.StatusInternalServerError, "Failed to render preview")
		return
	}

	c.Header("Cache-Control", imageCacheControl)
	c.Data(http.StatusOK, "image/jpeg", preview)
}
