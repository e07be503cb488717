package present

import (
	"net/url"
	"strings"
)

// SupportMessage собирает текст обращения в поддержку из строк результатов.
// Пустой список — пустое сообщение.
func SupportMessage(team string, items []string, exceeded bool) string {
	if len(items) == 0 {
		return ""
	}
	greeting := "Hello Team " + strings.ToUpper(team) + ",\n\n"
	body := strings.Join(items, "\n\n")
	if exceeded {
		return greeting + "My Door size exceeds the standard size limit. Please assist me with the following details:\n\n" +
			body + "\n\nThank you."
	}
	return greeting + "Please make note of my order:\n\n" + body + "\n\nThank you."
}

// SupportLink — ссылка wa.me с предзаполненным текстом.
func SupportLink(phone, message string) string {
	if message == "" || phone == "" {
		return ""
	}
	return "https://wa.me/" + url.PathEscape(phone) + "?text=" + encodeURIComponent(message)
}

// encodeURIComponent: QueryEscape кодирует пробел как '+', мессенджеру нужен %20.
func encodeURIComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
