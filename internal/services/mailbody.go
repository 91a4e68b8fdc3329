package services

import (
	"fmt"
	"strings"

	"portfolio-backend/internal/models"
)

// User-facing email text is Russian, matching the site's locale.
const (
	TranscriptSubject = "Переписка с ИИ-ассистентом на сайте"

	defaultTopic   = "Новая заявка с сайта"
	notProvided    = "не указан"
	topicLabel     = "Тема:"
	labelUser      = "Пользователь"
	labelAssistant = "Ассистент"
)

// RenderTranscript produces the plain-text transcript dump: one line per
// turn, 1-indexed, with localized role labels. Output is deterministic for a
// given history.
func RenderTranscript(turns []models.ChatTurn) string {
	var b strings.Builder
	for i, turn := range turns {
		fmt.Fprintf(&b, "%d. %s: %s\n", i+1, roleLabel(turn.Role), turn.Text)
	}
	return b.String()
}

func roleLabel(role string) string {
	switch role {
	case models.RoleAssistant:
		return labelAssistant
	case models.RoleUser:
		return labelUser
	default:
		return role
	}
}

// RenderContact builds the notification body for a contact submission:
// the optional prefilled-details block first, then a fixed-order field dump.
// A selected method whose matching field was left empty is reported with an
// explicit placeholder, never omitted.
func RenderContact(sub models.ContactSubmission) string {
	var b strings.Builder

	if details := strings.TrimSpace(sub.PrefilledDetails); details != "" {
		b.WriteString(details)
		b.WriteString("\n\n")
	}

	fmt.Fprintf(&b, "Имя: %s\n", sub.Name)
	fmt.Fprintf(&b, "Способ связи: %s\n", sub.ContactMethod)

	switch sub.ContactMethod {
	case models.MethodTelegram:
		fmt.Fprintf(&b, "Telegram: %s\n", orPlaceholder(sub.Telegram))
	case models.MethodWhatsApp:
		fmt.Fprintf(&b, "WhatsApp: %s\n", orPlaceholder(sub.WhatsApp))
		fmt.Fprintf(&b, "Можно звонить: %s\n", yesNo(sub.Callable))
	case models.MethodEmail:
		fmt.Fprintf(&b, "Email: %s\n", orPlaceholder(sub.Email))
	}

	return b.String()
}

// ContactSubject derives the subject line: the first line of the prefilled
// details (stripped of a leading «Тема:» label) or the default topic, with
// the submitter's name appended.
func ContactSubject(sub models.ContactSubmission) string {
	topic := defaultTopic

	if details := strings.TrimSpace(sub.PrefilledDetails); details != "" {
		firstLine, _, _ := strings.Cut(details, "\n")
		firstLine = strings.TrimSpace(strings.TrimPrefix(firstLine, topicLabel))
		if firstLine != "" {
			topic = firstLine
		}
	}

	return fmt.Sprintf("%s — %s", topic, sub.Name)
}

func orPlaceholder(value string) string {
	if strings.TrimSpace(value) == "" {
		return notProvided
	}
	return value
}

func yesNo(v bool) string {
	if v {
		return "Да"
	}
	return "Нет"
}
