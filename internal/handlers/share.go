// SPDX-License-Identifier: MIT
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/thatcatcamp/paleta/internal/themes"
	"github.com/thatcatcamp/paleta/internal/urlcodec"
)

// ShareHandler sends the browser to the messaging service with a message
// linking back to the current palette
func (h *Handler) ShareHandler(c *gin.Context) {
	v, _ := h.loadView(c)
	c.Redirect(http.StatusFound, v.ShareLink(h.publicBase(c), h.cfg.Share))
}

type presetResponse struct {
	Name   string   `json:"name"`
	Colors []string `json:"colors"`
	Link   string   `json:"link"`
}

// PresetsHandler lists the starter palettes with ready-made links
func (h *Handler) PresetsHandler(c *gin.Context) {
	base := h.publicBase(c)

	var presets []presetResponse
	for _, p := range themes.ListPalettes() {
		presets = append(presets, presetResponse{
			Name:   p.Name,
			Colors: p.Colors,
			Link:   urlcodec.Link(base, p.Colors),
		})
	}

	c.JSON(http.StatusOK, gin.H{"presets": presets})
}
