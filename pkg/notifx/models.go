package notifx

// EmailMessage represents an email to be sent.
//
// SenderName and SenderEmail identify the person who filled in a form; they
// are not the envelope sender. Providers that render hosted templates read
// Params instead of the bodies.
type EmailMessage struct {
	From        string            `json:"from,omitempty"`
	To          []string          `json:"to"`
	ReplyTo     string            `json:"reply_to,omitempty"`
	SenderName  string            `json:"sender_name,omitempty"`
	SenderEmail string            `json:"sender_email,omitempty"`
	Subject     string            `json:"subject"`
	TextBody    string            `json:"text_body,omitempty"`
	HTMLBody    string            `json:"html_body,omitempty"`
	Params      map[string]string `json:"params,omitempty"`
}
