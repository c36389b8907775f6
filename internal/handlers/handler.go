// SPDX-License-Identifier: MIT
package handlers

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/thatcatcamp/paleta/internal/export"
	"github.com/thatcatcamp/paleta/internal/themes"
	"github.com/thatcatcamp/paleta/internal/urlcodec"
	"github.com/thatcatcamp/paleta/internal/view"
)

// renderedParam marks a page address whose swatch has been generated
const renderedParam = "rendered"

// Config carries what the handlers need beyond the palette itself
type Config struct {
	// BaseURL is the public address of the palette page used in share
	// links. Empty derives it from the request.
	BaseURL  string
	Filename string
	Share    export.ShareConfig
}

// Handler serves the palette pages. It keeps no state between requests:
// every request rebuilds its view from the query string.
type Handler struct {
	cfg      Config
	renderer view.Renderer
}

// New creates the palette handlers
func New(renderer view.Renderer, cfg Config) *Handler {
	if cfg.Filename == "" {
		cfg.Filename = export.Filename
	}
	if cfg.Share.Endpoint == "" {
		cfg.Share = export.DefaultShareConfig()
	}
	return &Handler{cfg: cfg, renderer: renderer}
}

// requestAddress is the browser address bar as seen by one request.
// Replace records the canonical query the page will write back with
// history.replaceState, so edits never add history entries.
type requestAddress struct {
	raw string
}

func newRequestAddress(rawQuery string) *requestAddress {
	return &requestAddress{raw: rawQuery}
}

func (a *requestAddress) Query() url.Values {
	return urlcodec.ParseQuery(a.raw)
}

func (a *requestAddress) Replace(rawQuery string) {
	a.raw = rawQuery
}

// loadView restores the palette for this request. Without color
// parameters a ?preset=name is honoured; otherwise the default palette
// is used. The address is always left in canonical form.
func (h *Handler) loadView(c *gin.Context) (*view.View, *requestAddress) {
	addr := newRequestAddress(c.Request.URL.RawQuery)
	v := view.New(addr, h.renderer)

	if !v.Load() {
		if preset := themes.GetPalette(c.Query("preset")); preset != nil {
			v.Replace(preset.Colors)
		}
	}
	v.Sync()
	return v, addr
}

// publicBase returns the page URL share links point at
func (h *Handler) publicBase(c *gin.Context) string {
	if h.cfg.BaseURL != "" {
		return h.cfg.BaseURL
	}

	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	} else if proto := c.GetHeader("X-Forwarded-Proto"); proto != "" {
		scheme = strings.ToLower(strings.TrimSpace(strings.Split(proto, ",")[0]))
	}
	return scheme + "://" + c.Request.Host + "/"
}

// HealthHandler reports liveness
func HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "paleta",
	})
}
