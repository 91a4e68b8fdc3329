package models

// Contact method values accepted by the form.
const (
	MethodTelegram = "telegram"
	MethodWhatsApp = "whatsapp"
	MethodEmail    = "email"
)

// ContactSubmission is the lead-capture payload of POST /api/send-contact-form.
// Only the field matching ContactMethod is expected to be filled; the
// notification formatter inserts an explicit placeholder when it is not.
type ContactSubmission struct {
	Name             string `json:"name" validate:"required"`
	ContactMethod    string `json:"contact_method" validate:"required,oneof=telegram whatsapp email"`
	Telegram         string `json:"telegram,omitempty"`
	WhatsApp         string `json:"whatsapp,omitempty"`
	Email            string `json:"email,omitempty"`
	Callable         bool   `json:"callable,omitempty"`
	PrefilledDetails string `json:"prefilled_details,omitempty"`
}
