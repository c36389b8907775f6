// SPDX-License-Identifier: MIT
package export

import (
	"net/url"
	"strings"

	"github.com/thatcatcamp/paleta/internal/urlcodec"
)

// ShareConfig describes the messaging service a palette link is sent to
type ShareConfig struct {
	// Endpoint accepts the message in its "text" query parameter
	Endpoint string
	// Message holds the text sent; its first %s is replaced by the palette link
	Message string
}

// DefaultShareConfig targets WhatsApp's click-to-chat endpoint
func DefaultShareConfig() ShareConfig {
	return ShareConfig{
		Endpoint: "https://wa.me/",
		Message:  "Aqui está minha paleta de cores: %s",
	}
}

// ShareLink builds a pre-filled share URL for the current colors.
// base is the public address of the palette page.
func ShareLink(base string, colors []string, cfg ShareConfig) string {
	link := urlcodec.Link(base, colors)

	var message string
	if strings.Contains(cfg.Message, "%s") {
		// Other % signs in a configured message are literal text
		message = strings.Replace(cfg.Message, "%s", link, 1)
	} else {
		message = strings.TrimSpace(cfg.Message + " " + link)
	}

	// QueryEscape writes spaces as '+'; the share target expects %20
	text := strings.ReplaceAll(url.QueryEscape(message), "+", "%20")

	sep := "?"
	if strings.Contains(cfg.Endpoint, "?") {
		sep = "&"
	}
	return cfg.Endpoint + sep + "text=" + text
}
