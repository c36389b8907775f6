// SPDX-License-Identifier: MIT
package handlers

import (
	"net/http"
	"slices"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/thatcatcamp/paleta/internal/urlcodec"
)

// PaletteActionHandler applies a form submission to the palette in the
// query and redirects to the resulting address.
//
// Posted color1..colorN fields replace the matching colors. The action
// field then picks one of add, remove:<n> (1-based), update or generate.
// Actions the palette bounds refuse are ignored.
func (h *Handler) PaletteActionHandler(c *gin.Context) {
	v, addr := h.loadView(c)
	before := v.Colors()

	for i := range before {
		if posted, ok := c.GetPostForm(urlcodec.Param(i)); ok && posted != v.Color(i) {
			v.Set(i, posted)
		}
	}

	generate := false
	action := c.PostForm("action")
	switch {
	case action == "add":
		v.Add()
	case strings.HasPrefix(action, "remove:"):
		if n, err := strconv.Atoi(strings.TrimPrefix(action, "remove:")); err == nil {
			v.Remove(n - 1)
		}
	case action == "generate":
		generate = true
	}

	// An untouched palette keeps its generated swatch
	rendered := generate || (c.Query(renderedParam) == "1" && slices.Equal(before, v.Colors()))

	target := "/?" + addr.raw
	if rendered {
		target += "&" + renderedParam + "=1"
	}
	c.Redirect(http.StatusSeeOther, target)
}
