// SPDX-License-Identifier: GPL-3.0-or-later
package mail

import (
	"regexp"
	"strings"

	"github.com/driftbox/go-driftbox/domain"
)

const PreviewLength = 120

var htmlTags = regexp.MustCompile(`<[^>]*>`)
var whitespace = regexp.MustCompile(`\s+`)

func ShortSubject(subject string) string {
	if (len(subject)) > 30 {
		subject = subject[:30] + "..."
	}
	return subject
}

// FormatAddress renders a sender the way an inbox list would show it,
// preferring the display name over the raw address.
func FormatAddress(addr domain.MailAddress) string {
	if len(strings.TrimSpace(addr.Name)) > 0 {
		return addr.Name + " <" + addr.Address + ">"
	}
	return addr.Address
}

// Preview derives an intro line from a message body for providers that don't
// supply one in the list payload. HTML is only consulted when there is no
// plain text part.
func Preview(textBody, htmlBody string) string {
	text := textBody
	if len(strings.TrimSpace(text)) == 0 {
		text = htmlTags.ReplaceAllString(htmlBody, " ")
	}

	text = strings.TrimSpace(whitespace.ReplaceAllString(text, " "))
	if len(text) > PreviewLength {
		text = text[:PreviewLength] + "..."
	}

	return text
}
