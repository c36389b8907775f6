// SPDX-License-Identifier: MIT
package handlers

import (
	"encoding/json"
	"fmt"
	"html"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/thatcatcamp/paleta/internal/middleware"
	"github.com/thatcatcamp/paleta/internal/palette"
	"github.com/thatcatcamp/paleta/internal/swatch"
	"github.com/thatcatcamp/paleta/internal/themes"
	"github.com/thatcatcamp/paleta/internal/urlcodec"
	"github.com/thatcatcamp/paleta/internal/view"
)

// pageCSS styles the editor with the blue theme the tool shipped with
var pageCSS = themes.GenerateSchemeCSS(
	themes.GenerateColors(themes.GetPalette("blue-mono"), false),
	themes.GenerateColors(themes.GetPalette("blue-mono"), true),
)

// IndexHandler renders the palette editor for the palette in the query.
// With rendered=1 the swatch is generated and offered for download and
// sharing.
func (h *Handler) IndexHandler(c *gin.Context) {
	v, addr := h.loadView(c)

	rendered := c.Query(renderedParam) == "1"
	if rendered {
		if _, err := v.Generate(); err != nil {
			log.Printf("Error rendering swatch: %v", err)
			rendered = false
		}
	}

	query := addr.raw
	if rendered {
		query += "&" + renderedParam + "=1"
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(h.renderPage(c, v, query)))
}

// renderPage builds the editor HTML. query is the canonical address query.
func (h *Handler) renderPage(c *gin.Context, v *view.View, query string) string {
	colors := v.Colors()
	base := h.publicBase(c)
	colorQuery := urlcodec.Encode(colors)

	// history.replaceState keeps palette edits out of the back button
	canonical, _ := json.Marshal("?" + query)

	var b strings.Builder
	b.WriteString(`<!DOCTYPE html>
<html lang="pt-BR">
<head>
    <meta charset="utf-8">
    <meta name="viewport" content="width=device-width, initial-scale=1">
    <title>Paleta Frutificando</title>
    <meta property="og:title" content="Paleta Frutificando">
    <meta property="og:image" content="` + html.EscapeString(strings.TrimSuffix(base, "/")+"/preview.jpg?"+colorQuery) + `">
    <style>
` + pageCSS + `
        body { font-family: system-ui, sans-serif; margin: 0; }
        header, footer { background: var(--color-surface); border-bottom: 1px solid var(--color-border); text-align: center; padding: 24px 16px; }
        footer { border-top: 1px solid var(--color-border); border-bottom: none; margin-top: 64px; font-size: 14px; }
        main { max-width: 896px; margin: 0 auto; padding: 32px 16px; display: grid; gap: 32px; }
        .card-title { display: flex; justify-content: space-between; align-items: center; }
        .presets a { margin-right: 8px; font-size: 13px; }
    </style>
</head>
<body>
<header>
    <h1>Paleta Frutificando</h1>
    <p class="text-muted">Assembleia de Deus - Frutificando Vidas</p>
</header>
<main>
<section class="card">
    <h2 style="text-align:center">Crie sua Paleta de Cores</h2>
    <p class="text-muted" style="text-align:center">Selecione de 1 a 5 cores para criar sua paleta personalizada.
    Use esta ferramenta para padronizar as cores dos seus materiais gráficos.</p>
    <p class="presets text-muted">Paletas prontas:`)
	for _, p := range themes.ListPalettes() {
		b.WriteString(` <a href="/?` + html.EscapeString(urlcodec.Encode(p.Colors)) + `">` + html.EscapeString(p.Name) + `</a>`)
	}
	b.WriteString(`</p>
</section>
<form id="palette-form" class="card" method="POST" action="/palette?` + html.EscapeString(query) + `">
    ` + middleware.GetCSRFTokenHTML(c) + `
    <button name="action" value="update" tabindex="-1" aria-hidden="true" style="position:absolute;left:-9999px">Atualizar</button>
    <div class="card-title">
        <h2>Suas Cores (` + fmt.Sprintf("%d/%d", len(colors), palette.MaxColors) + `)</h2>
        <div>`)
	if v.CanRemove() {
		b.WriteString(fmt.Sprintf(`<button class="btn-outline" name="action" value="remove:%d" title="Remover a última cor">−</button> `, len(colors)))
	}
	if v.CanAdd() {
		b.WriteString(`<button class="btn-outline" name="action" value="add" title="Adicionar cor">+</button>`)
	}
	b.WriteString(`</div>
    </div>
    <div class="colors">`)

	for i, color := range colors {
		name := urlcodec.Param(i)
		b.WriteString(`
        <div>
            <label for="` + name + `">Cor ` + fmt.Sprint(i+1) + `</label>
            <div class="color-row">
                <input type="color" value="` + pickerValue(color) + `" oninput="document.getElementById('` + name + `').value=this.value">
                <input type="text" id="` + name + `" name="` + name + `" value="` + html.EscapeString(color) + `" placeholder="#000000">`)
		if v.CanRemove() {
			b.WriteString(fmt.Sprintf(`
                <button class="btn-outline" name="action" value="remove:%d" title="Remover">−</button>`, i+1))
		}
		b.WriteString(`
            </div>
        </div>`)
	}

	b.WriteString(`
    </div>
    <p style="text-align:right"><button class="btn-outline" name="action" value="update">Atualizar</button></p>
</form>
<section class="card">
    <h2>Preview da Paleta</h2>
    <div class="preview">`)
	for _, color := range colors {
		b.WriteString(`
        <div><div class="swatch"` + swatchStyle(color) + `></div><p class="swatch-label">` + html.EscapeString(color) + `</p></div>`)
	}
	b.WriteString(`
    </div>
</section>
<div class="actions">
    <button form="palette-form" name="action" value="generate">Gerar Designer</button>`)

	img := v.Image()
	if v.CanDownload() && img != nil {
		b.WriteString(`
    <a class="btn btn-outline" href="` + img.DataURL() + `" download="` + html.EscapeString(h.cfg.Filename) + `">Baixar Imagem</a>
    <a class="btn btn-share" href="` + html.EscapeString(v.ShareLink(base, h.cfg.Share)) + `" target="_blank" rel="noopener">Compartilhar no WhatsApp</a>`)
	}
	b.WriteString(`
</div>`)

	if v.CanDownload() && img != nil {
		b.WriteString(`
<section class="card generated">
    <h2>Sua Paleta Gerada</h2>
    <p style="text-align:center"><img src="` + img.DataURL() + `" alt="Paleta de cores gerada"></p>
</section>`)
	}

	b.WriteString(`
</main>
<footer class="text-muted">© Assembleia de Deus - Frutificando Vidas. Ministério de Mídia.</footer>
<script>history.replaceState(null, "", ` + string(canonical) + `);</script>
</body>
</html>
`)
	return b.String()
}

// pickerValue is the #rrggbb a native color input can show for color
func pickerValue(color string) string {
	c, err := swatch.ParseColor(color)
	if err != nil {
		return "#000000"
	}
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// swatchStyle paints a preview circle. Colors that do not parse get no fill.
func swatchStyle(color string) string {
	c, err := swatch.ParseColor(color)
	if err != nil {
		return ""
	}
	return fmt.Sprintf(` style="background-color: rgba(%d, %d, %d, %.3f)"`, c.R, c.G, c.B, float64(c.A)/255)
}
