package export

import (
	"net/url"
	"regexp"
	"strings"
)

// DefaultSubject is used when a message has no "Assunto:" line.
const DefaultSubject = "Proposta de Parceria"

var subjectLabel = regexp.MustCompile(`(?i)assunto:`)

// Links are ready-to-open share targets for an outreach message.
type Links struct {
	WhatsApp string `json:"whatsapp"`
	Mailto   string `json:"mailto"`
}

func ShareLinks(message string) Links {
	return Links{WhatsApp: WhatsAppLink(message), Mailto: MailtoLink(message)}
}

func WhatsAppLink(message string) string {
	return "https://wa.me/?text=" + encodeComponent(message)
}

// MailtoLink builds a mailto URL, taking the subject from the first line
// when it carries an "Assunto:" label.
func MailtoLink(message string) string {
	subject, body := SplitSubject(message)
	return "mailto:?subject=" + encodeComponent(subject) + "&body=" + encodeComponent(body)
}

// SplitSubject separates a leading "Assunto: ..." line from the body.
func SplitSubject(message string) (subject, body string) {
	first, rest, _ := strings.Cut(message, "\n")
	loc := subjectLabel.FindStringIndex(first)
	if loc == nil {
		return DefaultSubject, message
	}
	subject = strings.TrimSpace(first[:loc[0]] + first[loc[1]:])
	return subject, strings.TrimSpace(rest)
}

// InstagramURL turns a handle such as "@loja" into a profile URL.
func InstagramURL(handle string) string {
	return "https://instagram.com/" + strings.Replace(strings.TrimSpace(handle), "@", "", 1)
}

// encodeComponent percent-encodes s with spaces as %20.
func encodeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
