// Package contact builds the WhatsApp deep links the storefront opens
// when a visitor wants to order or ask about a product.
package contact

import (
	"net/url"
	"strings"
)

// Link builds a https://wa.me/<number>?text=<message> deep link. The
// number is reduced to digits; nothing is ever sent to or read from the
// target.
func Link(number, message string) string {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, number)

	u := url.URL{Scheme: "https", Host: "wa.me", Path: "/" + digits}
	if message != "" {
		q := url.Values{}
		q.Set("text", message)
		u.RawQuery = q.Encode()
	}
	return u.String()
}
