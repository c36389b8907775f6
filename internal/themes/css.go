// SPDX-License-Identifier: MIT
package themes

import "fmt"

// GenerateCSS generates the page stylesheet with color variables from colors struct
func GenerateCSS(colors *Colors) string {
	return rootVariables(colors) + elementCSS
}

// GenerateSchemeCSS is GenerateCSS for light plus a dark override that
// follows the visitor's prefers-color-scheme setting
func GenerateSchemeCSS(light, dark *Colors) string {
	return GenerateCSS(light) + "\n@media (prefers-color-scheme: dark) {\n" + rootVariables(dark) + "}\n"
}

// rootVariables renders the :root custom properties for colors
func rootVariables(colors *Colors) string {
	return fmt.Sprintf(`:root {
  --color-primary: %s;
  --color-primary-contrast: %s;
  --color-accent: var(--color-primary);
  --color-accent-contrast: var(--color-primary-contrast);
  --color-secondary: %s;
  --color-bg: %s;
  --color-surface: %s;
  --color-text: %s;
  --color-text-muted: %s;
  --color-border: %s;
  --color-success: %s;
  --color-error: %s;
  --color-warning: %s;
}
`, colors.Primary, colors.PrimaryContrast, colors.Secondary, colors.Background,
		colors.Surface, colors.Text, colors.TextMuted, colors.Border,
		colors.Success, colors.Error, colors.Warning)
}

// elementCSS styles page elements through the variables
const elementCSS = `
/* Base element styles */
body {
  background-color: var(--color-bg);
  color: var(--color-text);
  transition: background-color 0.2s, color 0.2s;
}

a {
  color: var(--color-primary);
  text-decoration: none;
}

a:hover {
  text-decoration: underline;
}

/* Button styles */
button, .btn {
  background-color: var(--color-primary);
  color: var(--color-primary-contrast);
  border: none;
  padding: 8px 16px;
  border-radius: 4px;
  cursor: pointer;
  transition: opacity 0.2s;
}

button a, .btn a {
  color: inherit !important;
  text-decoration: none;
}

button:hover, .btn:hover {
  opacity: 0.9;
}

button:active, .btn:active {
  opacity: 0.8;
}

/* Card/surface styles */
.card, .surface {
  background-color: var(--color-surface);
  border: 1px solid var(--color-border);
  border-radius: 8px;
  padding: 16px;
}

/* Border and divider styles */
hr, .divider {
  border: none;
  border-top: 1px solid var(--color-border);
}

/* Input styles */
input, textarea, select {
  border: 1px solid var(--color-border);
  background-color: var(--color-surface);
  color: var(--color-text);
  padding: 8px;
  border-radius: 4px;
}

input:focus, textarea:focus, select:focus {
  outline: none;
  border-color: var(--color-primary);
  box-shadow: 0 0 0 3px rgba(var(--color-primary), 0.1);
}

/* Heading styles */
h1, h2, h3, h4, h5, h6 {
  color: var(--color-text);
}

/* Muted text */
.text-muted, .muted {
  color: var(--color-text-muted);
}

/* Status colors */
.success { color: var(--color-success); }
.error, .danger { color: var(--color-error); }
.warning { color: var(--color-warning); }

/* Palette editor */
.colors {
  display: grid;
  grid-template-columns: repeat(auto-fill, minmax(220px, 1fr));
  gap: 16px;
}

.color-row {
  display: flex;
  align-items: center;
  gap: 8px;
}

.color-row input[type=color] {
  width: 64px;
  height: 64px;
  padding: 0;
  cursor: pointer;
}

.color-row input[type=text] {
  flex: 1;
  font-family: ui-monospace, monospace;
}

/* Preview circles */
.preview {
  display: flex;
  flex-wrap: wrap;
  justify-content: center;
  gap: 16px;
}

.swatch {
  width: 80px;
  height: 80px;
  border-radius: 50%;
  border: 4px solid var(--color-border);
  box-shadow: 0 2px 6px rgba(0, 0, 0, 0.15);
}

.swatch-label {
  margin-top: 8px;
  font-size: 12px;
  font-family: ui-monospace, monospace;
  color: var(--color-text-muted);
  text-align: center;
}

.actions {
  display: flex;
  flex-wrap: wrap;
  justify-content: center;
  gap: 16px;
}

.btn-outline {
  background-color: transparent;
  color: var(--color-text);
  border: 1px solid var(--color-border);
}

.btn-share {
  background-color: transparent;
  color: var(--color-success);
  border: 1px solid var(--color-success);
}

.generated img {
  max-width: 100%;
  height: auto;
  border-radius: 8px;
}
`
